package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront_dev_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// TaxRateRepository 税率仓储接口
type TaxRateRepository interface {
	// 查询
	ListByCountry(ctx context.Context, country string) ([]model.TaxRate, error)
	GetByID(ctx context.Context, id int64) (*model.TaxRate, error)
	ListLocations(ctx context.Context, rateID int64, locationType string) ([]string, error)

	// 维护
	Create(ctx context.Context, rate *model.TaxRate) error
	Delete(ctx context.Context, id int64) error
}

// ==================== 实现 ====================

type taxRateRepo struct {
	db *gorm.DB
}

// NewTaxRateRepository 创建税率仓储
func NewTaxRateRepository(db *gorm.DB) TaxRateRepository {
	return &taxRateRepo{db: db}
}

// ListByCountry 取国家候选税率：命中国家 + 国家不限的全局税率
// 结果顺序：优先级、同优先级内排序、ID，后续环节保持此顺序不再重排
func (r *taxRateRepo) ListByCountry(ctx context.Context, country string) ([]model.TaxRate, error) {
	var rates []model.TaxRate
	err := r.db.WithContext(ctx).
		Where("country = ? OR country = ''", country).
		Order("priority ASC, sort_order ASC, id ASC").
		Find(&rates).Error
	return rates, err
}

func (r *taxRateRepo) GetByID(ctx context.Context, id int64) (*model.TaxRate, error) {
	var rate model.TaxRate
	err := r.db.WithContext(ctx).First(&rate, id).Error
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// ListLocations 取税率登记的位置列表（邮编规则或城市）
func (r *taxRateRepo) ListLocations(ctx context.Context, rateID int64, locationType string) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&model.TaxRateLocation{}).
		Where("tax_rate_id = ? AND location_type = ?", rateID, locationType).
		Order("id ASC").
		Pluck("location_code", &codes).Error
	return codes, err
}

func (r *taxRateRepo) Create(ctx context.Context, rate *model.TaxRate) error {
	return r.db.WithContext(ctx).Create(rate).Error
}

func (r *taxRateRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).
		Where("tax_rate_id = ?", id).
		Delete(&model.TaxRateLocation{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&model.TaxRate{}, id).Error
}
