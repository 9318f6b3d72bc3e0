package controller

import (
	"errors"

	"storefront_dev_v1_202608/internal/api/dto"
	"storefront_dev_v1_202608/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// FilterProducts 多维度商品筛选
// @Summary 按 分类/平台/成色/题材/人数/类型/关键词/价格 筛选商品
// @Tags Catalog
// @Param categories query []int false "分类ID"
// @Param platforms query []int false "平台ID"
// @Param conditions query []int false "成色ID"
// @Param genres query []int false "题材ID"
// @Param players query []int false "人数ID"
// @Param product_types query []string false "商品类型ID或名称"
// @Param search query string false "关键词"
// @Param min_price query number false "最低价"
// @Param max_price query number false "最高价"
// @Param sort query string false "排序 price/price-desc/date/date-desc/popularity/title/title-desc"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(12)
// @Param lang query string false "语言代码"
// @Success 200 {object} dto.CatalogFilterResp
// @Router /api/catalog/products [get]
func (ctrl *CatalogController) FilterProducts(c *gin.Context) {
	var req dto.CatalogFilterReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数无效: " + err.Error()})
		return
	}

	resp, err := ctrl.catalogService.Filter(c.Request.Context(), req)
	if err != nil {
		var categoryErr *service.CategoryValidationError
		if errors.As(err, &categoryErr) {
			c.JSON(400, gin.H{
				"code":        400,
				"message":     categoryErr.Error(),
				"invalid_ids": categoryErr.InvalidIDs,
			})
			return
		}
		c.JSON(500, gin.H{"code": 500, "message": "商品查询失败: " + err.Error()})
		return
	}

	// 空结果不是错误：保留价格区间供前端滑块使用
	resp.Code = 0
	resp.Message = "success"
	if resp.Total == 0 {
		resp.Message = "未找到匹配商品"
	}
	c.JSON(200, resp)
}
