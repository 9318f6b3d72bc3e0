package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront_dev_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// TermRepository 分类法词条仓储接口
type TermRepository interface {
	GetByIDs(ctx context.Context, taxonomy string, ids []int64) ([]model.Term, error)
	FindIDsByNames(ctx context.Context, taxonomy string, names []string) ([]int64, error)
	ListByTaxonomy(ctx context.Context, taxonomy string) ([]model.Term, error)
	NamesForProduct(ctx context.Context, productID int64, taxonomy string) ([]string, error)

	// 维护
	Create(ctx context.Context, term *model.Term) error
	Attach(ctx context.Context, productID, termID int64) error
}

// ==================== 实现 ====================

type termRepo struct {
	db *gorm.DB
}

// NewTermRepository 创建词条仓储
func NewTermRepository(db *gorm.DB) TermRepository {
	return &termRepo{db: db}
}

func (r *termRepo) GetByIDs(ctx context.Context, taxonomy string, ids []int64) ([]model.Term, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var terms []model.Term
	err := r.db.WithContext(ctx).
		Where("taxonomy = ? AND id IN ?", taxonomy, ids).
		Find(&terms).Error
	return terms, err
}

// FindIDsByNames 按名称或 slug 解析词条 ID，未命中的名称直接忽略
func (r *termRepo) FindIDsByNames(ctx context.Context, taxonomy string, names []string) ([]int64, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.Term{}).
		Where("taxonomy = ? AND (name IN ? OR slug IN ?)", taxonomy, names, names).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *termRepo) ListByTaxonomy(ctx context.Context, taxonomy string) ([]model.Term, error) {
	var terms []model.Term
	err := r.db.WithContext(ctx).
		Where("taxonomy = ?", taxonomy).
		Order("name ASC").
		Find(&terms).Error
	return terms, err
}

// NamesForProduct 取商品在某分类法下关联的词条名
func (r *termRepo) NamesForProduct(ctx context.Context, productID int64, taxonomy string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&model.Term{}).
		Joins("JOIN product_terms ON product_terms.term_id = terms.id").
		Where("product_terms.product_id = ? AND terms.taxonomy = ?", productID, taxonomy).
		Order("terms.name ASC").
		Pluck("terms.name", &names).Error
	return names, err
}

func (r *termRepo) Create(ctx context.Context, term *model.Term) error {
	return r.db.WithContext(ctx).Create(term).Error
}

func (r *termRepo) Attach(ctx context.Context, productID, termID int64) error {
	return r.db.WithContext(ctx).Create(&model.ProductTerm{
		ProductID: productID,
		TermID:    termID,
	}).Error
}
