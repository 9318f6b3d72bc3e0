package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"storefront_dev_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// OrderRepository 订单仓储接口（本引擎只读）
type OrderRepository interface {
	// SumQuantityForProduct 统计指定状态、时间区间内某商品的订单行数量合计
	SumQuantityForProduct(ctx context.Context, productID int64, statuses []string, from, to time.Time) (int64, error)

	// 维护（测试与数据导入用）
	Create(ctx context.Context, order *model.Order) error
}

// ReviewRepository 商品评价仓储接口（只读聚合）
type ReviewRepository interface {
	// StatsForProduct 返回已审核评价的条数与平均分
	StatsForProduct(ctx context.Context, productID int64) (count int64, average float64, err error)

	Create(ctx context.Context, review *model.ProductReview) error
}

// ==================== Order 实现 ====================

type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) SumQuantityForProduct(ctx context.Context, productID int64, statuses []string, from, to time.Time) (int64, error) {
	var result struct {
		Total int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.OrderItem{}).
		Select("COALESCE(SUM(order_items.quantity), 0) as total").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.product_id = ?", productID).
		Where("orders.status IN ?", statuses).
		Where("orders.created_at >= ? AND orders.created_at < ?", from, to).
		Scan(&result).Error
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}

func (r *orderRepo) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// ==================== Review 实现 ====================

type reviewRepo struct {
	db *gorm.DB
}

// NewReviewRepository 创建评价仓储
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) StatsForProduct(ctx context.Context, productID int64) (int64, float64, error) {
	var result struct {
		Count   int64
		Average float64
	}
	err := r.db.WithContext(ctx).
		Model(&model.ProductReview{}).
		Select("COUNT(*) as count, COALESCE(AVG(rating), 0) as average").
		Where("product_id = ? AND approved = ?", productID, true).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Count, result.Average, nil
}

func (r *reviewRepo) Create(ctx context.Context, review *model.ProductReview) error {
	return r.db.WithContext(ctx).Create(review).Error
}
