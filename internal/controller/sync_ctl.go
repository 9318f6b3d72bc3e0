package controller

import (
	"context"
	"time"

	"storefront_dev_v1_202608/internal/task"

	"github.com/gin-gonic/gin"
)

type SyncController struct {
	salesTask *task.SalesStatsTask
}

func NewSyncController(salesTask *task.SalesStatsTask) *SyncController {
	return &SyncController{salesTask: salesTask}
}

// TriggerSalesRefresh 手动触发月销量重算
// @Summary 手动触发月销量重算（异步执行，受冷却限流保护）
// @Tags Sync
// @Success 202 {object} map[string]interface{}
// @Router /api/sync/sales [post]
func (ctrl *SyncController) TriggerSalesRefresh(c *gin.Context) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		ctrl.salesTask.RefreshAll(ctx)
	}()

	c.JSON(202, gin.H{"code": 0, "message": "销量重算已触发"})
}
