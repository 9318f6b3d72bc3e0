package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront_dev_v1_202608/internal/model"
)

// ==================== 排序常量 ====================

const (
	SortDefault    = ""           // 推荐排序：手工权重 + 最新
	SortPriceAsc   = "price"      // 价格升序
	SortPriceDesc  = "price-desc" // 价格降序
	SortDateAsc    = "date"       // 上架时间升序（最早优先）
	SortDateDesc   = "date-desc"  // 上架时间降序（新品优先）
	SortPopularity = "popularity" // 销量降序（月销优先）
	SortNameAsc    = "title"      // 名称 A-Z，字母排在非字母前
	SortNameDesc   = "title-desc" // 名称 Z-A，字母组仍在前、组内倒序
)

// ==================== 过滤条件 ====================

// TermConstraint 单个分类法维度的 IN 约束
type TermConstraint struct {
	Taxonomy string
	TermIDs  []int64
}

// CatalogQuery 商品查询计划
// 多个维度约束之间为 AND 语义；价格与分页仅作用于分页查询
type CatalogQuery struct {
	TermFilters []TermConstraint
	Search      string

	MinPriceCents *int64
	MaxPriceCents *int64

	Sort     string
	Page     int
	PageSize int
}

// ==================== 接口定义 ====================

// ProductRepository 商品仓储接口
type ProductRepository interface {
	// 基础读取
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	GetByIDWithRelations(ctx context.Context, id int64) (*model.Product, error)
	ListVariants(ctx context.Context, productID int64) ([]model.ProductVariant, error)

	// 查询计划执行
	QueryIDs(ctx context.Context, q CatalogQuery) ([]int64, int64, error)
	QueryAllIDs(ctx context.Context, q CatalogQuery) ([]int64, error)

	// 维护
	Create(ctx context.Context, product *model.Product) error
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	ListIDs(ctx context.Context) ([]int64, error)
}

// ==================== 实现 ====================

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) GetByIDWithRelations(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Variants", "enabled = ?", true).
		Preload("Attributes").
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) ListVariants(ctx context.Context, productID int64) ([]model.ProductVariant, error) {
	var variants []model.ProductVariant
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND enabled = ?", productID, true).
		Order("id ASC").
		Find(&variants).Error
	return variants, err
}

// buildConstraints 组装分类法与关键词约束（AND 语义）
// 只命中原文行：译文行与原文共享词条关联，不排除会让同一逻辑商品按语言重复命中；
// 译文由上层经 LocalizedID 解析成目标语言版本
func (r *productRepo) buildConstraints(ctx context.Context, q CatalogQuery) *gorm.DB {
	db := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("status = ?", model.ProductStatusPublish)

	translated := r.db.Model(&model.Translation{}).
		Select("element_id").
		Where("element_type = ? AND source_language <> ''", model.ElementTypeProduct)
	db = db.Where("products.id NOT IN (?)", translated)

	for _, tc := range q.TermFilters {
		if len(tc.TermIDs) == 0 {
			continue
		}
		sub := r.db.Model(&model.ProductTerm{}).
			Select("product_id").
			Where("term_id IN ?", tc.TermIDs)
		db = db.Where("products.id IN (?)", sub)
	}

	if q.Search != "" {
		like := "%" + q.Search + "%"
		db = db.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	return db
}

// QueryIDs 执行分页查询：约束 + 价格区间 + 排序 + 分页，返回命中 ID 与总数
func (r *productRepo) QueryIDs(ctx context.Context, q CatalogQuery) ([]int64, int64, error) {
	db := r.buildConstraints(ctx, q)

	if q.MinPriceCents != nil {
		db = db.Where("price_cents >= ?", *q.MinPriceCents)
	}
	if q.MaxPriceCents != nil {
		db = db.Where("price_cents <= ?", *q.MaxPriceCents)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = applySort(db, q.Sort)

	if q.Page > 0 && q.PageSize > 0 {
		db = db.Offset((q.Page - 1) * q.PageSize).Limit(q.PageSize)
	}

	var ids []int64
	if err := db.Pluck("products.id", &ids).Error; err != nil {
		return nil, 0, err
	}
	return ids, total, nil
}

// QueryAllIDs 执行全量查询：仅分类法与关键词约束，不加价格与分页
// 价格区间聚合用，结果与请求中的价格条件无关
func (r *productRepo) QueryAllIDs(ctx context.Context, q CatalogQuery) ([]int64, error) {
	var ids []int64
	err := r.buildConstraints(ctx, q).Pluck("products.id", &ids).Error
	return ids, err
}

// applySort 按排序枚举追加 ORDER BY
// 名称排序时字母开头的商品始终排在非字母开头之前
func applySort(db *gorm.DB, sort string) *gorm.DB {
	const letterFirst = "CASE WHEN upper(substr(name, 1, 1)) BETWEEN 'A' AND 'Z' THEN 0 ELSE 1 END ASC"

	switch sort {
	case SortPriceAsc:
		return db.Order("price_cents ASC, id ASC")
	case SortPriceDesc:
		return db.Order("price_cents DESC, id ASC")
	case SortDateAsc:
		return db.Order("created_at ASC, id ASC")
	case SortDateDesc:
		return db.Order("created_at DESC, id DESC")
	case SortPopularity:
		return db.Order("monthly_sales DESC, total_sales DESC, id ASC")
	case SortNameAsc:
		return db.Order(letterFirst).Order("name ASC")
	case SortNameDesc:
		return db.Order(letterFirst).Order("name DESC")
	default:
		return db.Order("menu_order ASC, created_at DESC, id DESC")
	}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *productRepo) ListIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}
