package model

import "time"

// ==================== 订单状态常量 ====================

const (
	OrderStatusPending    = "pending"    // 待支付
	OrderStatusProcessing = "processing" // 处理中（已支付待发货）
	OrderStatusCompleted  = "completed"  // 已完成
	OrderStatusCanceled   = "canceled"   // 已取消
	OrderStatusRefunded   = "refunded"   // 已退款
)

// SoldCountStatuses 参与销量统计的订单状态
var SoldCountStatuses = []string{OrderStatusCompleted, OrderStatusProcessing}

// Order 订单主表
// 本引擎只读：销量统计来源，不在此写入
type Order struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Status    string `gorm:"size:32;index;default:pending"`
	Currency  string `gorm:"size:10;default:USD"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// 金额（单位：分）
	SubtotalCents   int64
	ShippingCents   int64
	TaxCents        int64
	GrandTotalCents int64

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

// OrderItem 订单行
type OrderItem struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	OrderID    int64 `gorm:"index;not null"`
	ProductID  int64 `gorm:"index;not null"`
	Quantity   int   `gorm:"default:1"`
	TotalCents int64 `gorm:"default:0"`
}

// ProductReview 商品评价表（只读聚合来源）
type ProductReview struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	ProductID int64 `gorm:"index;not null"`
	Rating    int   `gorm:"not null;comment:1-5"`
	Approved  bool  `gorm:"default:true;index"`
	CreatedAt time.Time
}

func (Order) TableName() string {
	return "orders"
}
func (OrderItem) TableName() string {
	return "order_items"
}
func (ProductReview) TableName() string {
	return "product_reviews"
}
