package controller

import (
	"storefront_dev_v1_202608/internal/api/dto"
	"storefront_dev_v1_202608/internal/service"

	"github.com/gin-gonic/gin"
)

type TaxController struct {
	taxService *service.TaxService
}

func NewTaxController(taxService *service.TaxService) *TaxController {
	return &TaxController{taxService: taxService}
}

// LookupRates 按地址查询适用税率
// @Summary 按 国家/州/邮编/城市 查询适用税率
// @Tags Tax
// @Param country query string true "国家代码"
// @Param state query string false "州/省代码"
// @Param postcode query string false "邮编"
// @Param city query string false "城市"
// @Param lang query string false "语言代码"
// @Success 200 {object} dto.TaxLookupResp
// @Router /api/taxes [get]
func (ctrl *TaxController) LookupRates(c *gin.Context) {
	var req dto.TaxLookupReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数无效: " + err.Error()})
		return
	}

	rates, err := ctrl.taxService.FindRates(c.Request.Context(), req)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "税率查询失败: " + err.Error()})
		return
	}

	c.JSON(200, dto.TaxLookupResp{
		Code:     0,
		Message:  "success",
		TaxRates: rates,
	})
}
