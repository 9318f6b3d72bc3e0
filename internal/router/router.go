package router

import (
	"time"

	"storefront_dev_v1_202608/internal/controller"
	"storefront_dev_v1_202608/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Controllers 路由依赖的控制器集合
type Controllers struct {
	Tax      *controller.TaxController
	Shipping *controller.ShippingController
	Catalog  *controller.CatalogController
	Sync     *controller.SyncController
}

// SetupRouter 注册所有路由
func SetupRouter(ctrls *Controllers) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	api := r.Group("/api")
	{
		// tax 税率查询
		taxes := api.Group("/taxes")
		{
			// GET /api/taxes?country=US&state=CA&postcode=90210
			taxes.GET("", ctrls.Tax.LookupRates)
		}

		// shipping 配送查询
		shipping := api.Group("/shipping")
		{
			// GET /api/shipping/methods?country=US&state=CA&postcode=90210
			shipping.GET("/methods", ctrls.Shipping.LookupMethods)
			// GET /api/shipping/countries/DE
			shipping.GET("/countries/:code", ctrls.Shipping.LookupByCountry)
			// GET /api/shipping/method-types/flat_rate
			shipping.GET("/method-types/:method_id", ctrls.Shipping.LookupByMethodType)
		}

		// catalog 商品筛选
		catalog := api.Group("/catalog")
		{
			// GET /api/catalog/products?categories=1&platforms=2&sort=price&page=1
			catalog.GET("/products", ctrls.Catalog.FilterProducts)
		}

		// sync 手动刷新（限流保护）
		sync := api.Group("/sync")
		{
			sync.POST("/sales",
				middleware.RefreshRateLimit("sales_refresh", 10*time.Minute),
				ctrls.Sync.TriggerSalesRefresh)
		}
	}

	return r
}
