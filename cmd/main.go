package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront_dev_v1_202608/internal/controller"
	"storefront_dev_v1_202608/internal/model"
	"storefront_dev_v1_202608/internal/repository"
	"storefront_dev_v1_202608/internal/router"
	"storefront_dev_v1_202608/internal/service"
	"storefront_dev_v1_202608/internal/task"
	"storefront_dev_v1_202608/pkg/database"
	"storefront_dev_v1_202608/pkg/i18n"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	// 1. 初始化数据库
	db := initDatabase()

	// 2. 初始化依赖
	deps := initDependencies(db)

	// 3. 启动定时任务
	initTasks(deps)

	// 4. 初始化路由
	r := router.SetupRouter(deps.Controllers)

	// 5. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
	SalesTask   *task.SalesStatsTask
}

// Repositories 仓库集合
type Repositories struct {
	TaxRate     repository.TaxRateRepository
	Zone        repository.ShippingZoneRepository
	Product     repository.ProductRepository
	Term        repository.TermRepository
	Order       repository.OrderRepository
	Review      repository.ReviewRepository
	Translation repository.TranslationRepository
}

// Services 服务集合
type Services struct {
	I18n     *service.LocalizationService
	Tax      *service.TaxService
	Shipping *service.ShippingZoneService
	Catalog  *service.CatalogService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	dsn := getEnv("DATABASE_URL",
		"host=localhost user=storefront password=storefront dbname=storefront port=5432 sslmode=disable")
	return database.InitDB(dsn,
		// Tax
		&model.TaxRate{}, &model.TaxRateLocation{},
		// Shipping
		&model.ShippingZone{}, &model.ShippingZoneLocation{}, &model.ShippingMethod{},
		// Catalog
		&model.Product{}, &model.ProductVariant{}, &model.Term{},
		&model.ProductTerm{}, &model.ProductAttribute{},
		// Orders & Reviews
		&model.Order{}, &model.OrderItem{}, &model.ProductReview{},
		// i18n
		&model.Translation{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		TaxRate:     repository.NewTaxRateRepository(db),
		Zone:        repository.NewShippingZoneRepository(db),
		Product:     repository.NewProductRepository(db),
		Term:        repository.NewTermRepository(db),
		Order:       repository.NewOrderRepository(db),
		Review:      repository.NewReviewRepository(db),
		Translation: repository.NewTranslationRepository(db),
	}

	// -------- 基础服务 --------
	translateClient := i18n.NewTranslateClient(getEnv("TRANSLATE_API_URL", "http://localhost:8090"))
	i18nSvc := service.NewLocalizationService(
		repos.Translation, translateClient, getEnv("DEFAULT_LANGUAGE", "en"))

	// -------- 业务服务 --------
	services := &Services{
		I18n:     i18nSvc,
		Tax:      service.NewTaxService(repos.TaxRate, i18nSvc),
		Shipping: service.NewShippingZoneService(repos.Zone),
		Catalog: service.NewCatalogService(
			repos.Product, repos.Term, repos.Order, repos.Review,
			i18nSvc, getEnv("STORE_BASE_URL", "http://localhost:8080"),
		),
	}

	// -------- 定时任务 --------
	salesTask := task.NewSalesStatsTask(repos.Product, repos.Order)

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Tax:      controller.NewTaxController(services.Tax),
		Shipping: controller.NewShippingController(services.Shipping),
		Catalog:  controller.NewCatalogController(services.Catalog),
		Sync:     controller.NewSyncController(salesTask),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
		SalesTask:   salesTask,
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	deps.SalesTask.Start()
	log.Println("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
