package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront_dev_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// ShippingZoneRepository 配送区域仓储接口
// 区域为只读参考数据，每次请求重新读取，不做进程内缓存
type ShippingZoneRepository interface {
	// ListZones 返回全部区域（含位置规则与配送方式），兜底区域合成后置于末尾
	ListZones(ctx context.Context) ([]model.ShippingZone, error)
	GetZone(ctx context.Context, id int64) (*model.ShippingZone, error)

	// 维护
	CreateZone(ctx context.Context, zone *model.ShippingZone) error
	CreateMethod(ctx context.Context, method *model.ShippingMethod) error
}

// ==================== 实现 ====================

type shippingZoneRepo struct {
	db *gorm.DB
}

// NewShippingZoneRepository 创建配送区域仓储
func NewShippingZoneRepository(db *gorm.DB) ShippingZoneRepository {
	return &shippingZoneRepo{db: db}
}

func (r *shippingZoneRepo) ListZones(ctx context.Context) ([]model.ShippingZone, error) {
	var zones []model.ShippingZone
	err := r.db.WithContext(ctx).
		Preload("Locations", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Methods", func(db *gorm.DB) *gorm.DB {
			return db.Order("instance_id ASC, id ASC")
		}).
		Order("sort_order ASC, id ASC").
		Find(&zones).Error
	if err != nil {
		return nil, err
	}

	restOfWorld, err := r.restOfWorldZone(ctx)
	if err != nil {
		return nil, err
	}
	return append(zones, *restOfWorld), nil
}

func (r *shippingZoneRepo) GetZone(ctx context.Context, id int64) (*model.ShippingZone, error) {
	if id == model.RestOfWorldZoneID {
		return r.restOfWorldZone(ctx)
	}
	var zone model.ShippingZone
	err := r.db.WithContext(ctx).
		Preload("Locations").
		Preload("Methods").
		First(&zone, id).Error
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

// restOfWorldZone 合成兜底区域：无数据行，方式挂在 zone_id = 0 下
func (r *shippingZoneRepo) restOfWorldZone(ctx context.Context) (*model.ShippingZone, error) {
	var methods []model.ShippingMethod
	err := r.db.WithContext(ctx).
		Where("zone_id = ?", model.RestOfWorldZoneID).
		Order("instance_id ASC, id ASC").
		Find(&methods).Error
	if err != nil {
		return nil, err
	}
	return &model.ShippingZone{
		ID:      model.RestOfWorldZoneID,
		Name:    "Rest of the world",
		Methods: methods,
	}, nil
}

func (r *shippingZoneRepo) CreateZone(ctx context.Context, zone *model.ShippingZone) error {
	return r.db.WithContext(ctx).Create(zone).Error
}

func (r *shippingZoneRepo) CreateMethod(ctx context.Context, method *model.ShippingMethod) error {
	return r.db.WithContext(ctx).Create(method).Error
}
