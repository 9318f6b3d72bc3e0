package controller

import (
	"errors"

	"storefront_dev_v1_202608/internal/api/dto"
	"storefront_dev_v1_202608/internal/service"

	"github.com/gin-gonic/gin"
)

type ShippingController struct {
	zoneService *service.ShippingZoneService
}

func NewShippingController(zoneService *service.ShippingZoneService) *ShippingController {
	return &ShippingController{zoneService: zoneService}
}

// ==================== 查询接口 ====================

// LookupMethods 按地址查询可用配送方式
// @Summary 按 国家/州/邮编 查询可用配送方式及费用
// @Tags Shipping
// @Param country query string true "国家代码"
// @Param state query string false "州/省代码"
// @Param postcode query string false "邮编"
// @Success 200 {object} dto.ShippingLookupResp
// @Router /api/shipping/methods [get]
func (ctrl *ShippingController) LookupMethods(c *gin.Context) {
	var req dto.ShippingLookupReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数无效: " + err.Error()})
		return
	}

	options, err := ctrl.zoneService.MatchAddress(c.Request.Context(), req.Country, req.State, req.Postcode)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "配送方式查询失败: " + err.Error()})
		return
	}

	c.JSON(200, dto.ShippingLookupResp{
		Code:    0,
		Message: "success",
		Options: options,
	})
}

// LookupByCountry 按国家代码查询配送方式详情
// @Summary 按国家代码查询配送方式详情（含兜底区域）
// @Tags Shipping
// @Param code path string true "国家代码"
// @Success 200 {object} dto.CountryMethodsResp
// @Router /api/shipping/countries/{code} [get]
func (ctrl *ShippingController) LookupByCountry(c *gin.Context) {
	code := c.Param("code")

	methods, err := ctrl.zoneService.MatchCountry(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrCountryUnknown) {
			c.JSON(400, gin.H{"code": 400, "message": "未知的国家代码: " + code})
			return
		}
		c.JSON(500, gin.H{"code": 500, "message": "配送方式查询失败: " + err.Error()})
		return
	}

	c.JSON(200, dto.CountryMethodsResp{
		Code:    0,
		Message: "success",
		Country: code,
		Methods: methods,
	})
}

// LookupByMethodType 按方式类型查询全部方式记录
// @Summary 按方式类型 ID 跨区域查询方式记录
// @Tags Shipping
// @Param method_id path string true "方式类型 flat_rate/free_shipping/local_pickup等"
// @Success 200 {object} dto.MethodTypeResp
// @Router /api/shipping/method-types/{method_id} [get]
func (ctrl *ShippingController) LookupByMethodType(c *gin.Context) {
	methodID := c.Param("method_id")

	methods, err := ctrl.zoneService.FindByMethodType(c.Request.Context(), methodID)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "配送方式查询失败: " + err.Error()})
		return
	}

	c.JSON(200, dto.MethodTypeResp{
		Code:     0,
		Message:  "success",
		MethodID: methodID,
		Methods:  methods,
	})
}
