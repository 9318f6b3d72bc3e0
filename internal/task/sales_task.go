package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"storefront_dev_v1_202608/internal/model"
	"storefront_dev_v1_202608/internal/repository"
)

// ==================== SalesStatsTask 销量统计任务 ====================

// SalesStatsTask 月销量刷新定时任务
// 刷新策略：
//   - 每日凌晨 2 点全量重算 products.monthly_sales
//   - 启动后延迟 30 秒先跑一次，保证排序字段尽快可用
//
// 口径：completed/processing 订单行数量合计，自然月
type SalesStatsTask struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	cron        *cron.Cron

	// 任务生命周期上下文，Stop 时取消，所有刷新派生自它
	ctx    context.Context
	cancel context.CancelFunc

	firstRunDelay time.Duration
	batchSleep    time.Duration
}

// NewSalesStatsTask 创建销量统计任务
func NewSalesStatsTask(
	productRepo repository.ProductRepository,
	orderRepo   repository.OrderRepository,
) *SalesStatsTask {
	ctx, cancel := context.WithCancel(context.Background())
	return &SalesStatsTask{
		productRepo:   productRepo,
		orderRepo:     orderRepo,
		cron:          cron.New(),
		ctx:           ctx,
		cancel:        cancel,
		firstRunDelay: 30 * time.Second,
		batchSleep:    10 * time.Millisecond,
	}
}

// Start 启动定时任务
func (t *SalesStatsTask) Start() {
	// 首次执行（默认延迟 30 秒），Stop 后不再触发
	go func() {
		select {
		case <-time.After(t.firstRunDelay):
		case <-t.ctx.Done():
			return
		}
		ctx, cancel := context.WithTimeout(t.ctx, 30*time.Minute)
		defer cancel()
		t.RefreshAll(ctx)
	}()

	// 每日凌晨 2 点全量重算
	if _, err := t.cron.AddFunc("0 2 * * *", func() {
		ctx, cancel := context.WithTimeout(t.ctx, 30*time.Minute)
		defer cancel()
		t.RefreshAll(ctx)
	}); err != nil {
		log.Printf("[SalesStatsTask] 注册定时任务失败: %v", err)
		return
	}
	t.cron.Start()
	log.Println("[SalesStatsTask] 销量统计任务已启动")
}

// Stop 停止定时任务并取消进行中的刷新
func (t *SalesStatsTask) Stop() {
	t.cancel()
	t.cron.Stop()
}

// RefreshAll 全量重算月销量
func (t *SalesStatsTask) RefreshAll(ctx context.Context) {
	start := time.Now()
	ids, err := t.productRepo.ListIDs(ctx)
	if err != nil {
		log.Printf("[SalesStatsTask] 读取商品列表失败: %v", err)
		return
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)

	var updated, failed int
	for _, id := range ids {
		select {
		case <-ctx.Done():
			log.Printf("[SalesStatsTask] 任务被取消: %v", ctx.Err())
			return
		default:
		}

		sold, err := t.orderRepo.SumQuantityForProduct(ctx, id, model.SoldCountStatuses, monthStart, nextMonth)
		if err != nil {
			failed++
			continue
		}
		if err := t.productRepo.UpdateFields(ctx, id, map[string]interface{}{
			"monthly_sales": sold,
		}); err != nil {
			failed++
			continue
		}
		updated++
		time.Sleep(t.batchSleep)
	}

	log.Printf("[SalesStatsTask] 月销量刷新完成: 成功 %d, 失败 %d, 耗时 %v", updated, failed, time.Since(start))
}
