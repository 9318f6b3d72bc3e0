package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storefront_dev_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// TranslationRepository 多语言映射仓储接口
type TranslationRepository interface {
	// GetByElement 取某语言版本对象的映射行，未登记返回 nil（不报错）
	GetByElement(ctx context.Context, elementID int64, elementType string) (*model.Translation, error)
	// ListGroup 取同一逻辑对象的全部语言版本
	ListGroup(ctx context.Context, groupID int64, elementType string) ([]model.Translation, error)

	// 维护
	Create(ctx context.Context, tr *model.Translation) error
}

// ==================== 实现 ====================

type translationRepo struct {
	db *gorm.DB
}

// NewTranslationRepository 创建多语言映射仓储
func NewTranslationRepository(db *gorm.DB) TranslationRepository {
	return &translationRepo{db: db}
}

func (r *translationRepo) GetByElement(ctx context.Context, elementID int64, elementType string) (*model.Translation, error) {
	var tr model.Translation
	err := r.db.WithContext(ctx).
		Where("element_id = ? AND element_type = ?", elementID, elementType).
		First(&tr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

func (r *translationRepo) ListGroup(ctx context.Context, groupID int64, elementType string) ([]model.Translation, error) {
	var list []model.Translation
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND element_type = ?", groupID, elementType).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *translationRepo) Create(ctx context.Context, tr *model.Translation) error {
	return r.db.WithContext(ctx).Create(tr).Error
}
