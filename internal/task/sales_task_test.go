package task

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront_dev_v1_202608/internal/model"
	"storefront_dev_v1_202608/internal/repository"
)

func setupTaskTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Product{}, &model.Order{}, &model.OrderItem{}); err != nil {
		t.Fatalf("迁移测试表失败: %v", err)
	}
	return db
}

func newTestTask(db *gorm.DB) *SalesStatsTask {
	task := NewSalesStatsTask(
		repository.NewProductRepository(db),
		repository.NewOrderRepository(db),
	)
	task.batchSleep = 0
	return task
}

func seedSoldProduct(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	p := model.Product{
		Slug: "alpha-game", Type: model.ProductTypeSimple, Name: "Alpha Game",
		Status: model.ProductStatusPublish, PriceCents: 1999,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("写入商品失败: %v", err)
	}
	order := model.Order{Status: model.OrderStatusCompleted, GrandTotalCents: 3998}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("写入订单失败: %v", err)
	}
	item := model.OrderItem{OrderID: order.ID, ProductID: p.ID, Quantity: 2}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("写入订单行失败: %v", err)
	}
	return p.ID
}

func TestSalesStatsTask_RefreshAll(t *testing.T) {
	db := setupTaskTestDB(t)
	productID := seedSoldProduct(t, db)

	task := newTestTask(db)
	task.RefreshAll(context.Background())

	var p model.Product
	if err := db.First(&p, productID).Error; err != nil {
		t.Fatalf("读取商品失败: %v", err)
	}
	if p.MonthlySales != 2 {
		t.Errorf("月销量 = %d, 期望 2", p.MonthlySales)
	}
}

func TestSalesStatsTask_StopCancelsFirstRun(t *testing.T) {
	db := setupTaskTestDB(t)
	productID := seedSoldProduct(t, db)

	task := newTestTask(db)
	task.firstRunDelay = 50 * time.Millisecond
	task.Start()
	task.Stop()

	// 等待超过首跑延迟，确认 Stop 后首跑不再触发
	time.Sleep(150 * time.Millisecond)

	var p model.Product
	if err := db.First(&p, productID).Error; err != nil {
		t.Fatalf("读取商品失败: %v", err)
	}
	if p.MonthlySales != 0 {
		t.Errorf("Stop 后月销量仍被刷新为 %d, 期望 0", p.MonthlySales)
	}
}
