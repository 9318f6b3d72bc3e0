package model

import "gorm.io/datatypes"

// ==================== 区域位置类型常量 ====================

const (
	ZoneLocationCountry   = "country"   // 国家规则
	ZoneLocationState     = "state"     // 州规则，code 形如 "US:CA"
	ZoneLocationPostcode  = "postcode"  // 邮编规则（精确/通配/区间）
	ZoneLocationContinent = "continent" // 大洲规则，code 为大洲代码
)

// ==================== 配送方式类型常量 ====================

const (
	MethodFlatRate     = "flat_rate"     // 固定运费
	MethodFreeShipping = "free_shipping" // 免运费
	MethodLocalPickup  = "local_pickup"  // 本地自提
)

// RestOfWorldZoneID 兜底区域 ID
// 该区域无数据行，由仓储层合成，位置规则恒为空（匹配所有地址）
const RestOfWorldZoneID int64 = 0

// ShippingZone 配送区域表
type ShippingZone struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:128;not null;comment:区域名称"`
	SortOrder int    `gorm:"default:0;index;comment:区域排序"`

	// 关联数据（一对多）
	Locations []ShippingZoneLocation `gorm:"foreignKey:ZoneID"`
	Methods   []ShippingMethod       `gorm:"foreignKey:ZoneID"`
}

// ShippingZoneLocation 区域位置规则表
type ShippingZoneLocation struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	ZoneID int64  `gorm:"index;not null;comment:关联区域ID"`
	Type   string `gorm:"size:16;not null;comment:country/state/postcode/continent"`
	Code   string `gorm:"size:32;not null;comment:规则值"`
}

// ShippingMethod 配送方式实例表
// zone_id = 0 的行挂在兜底区域下
type ShippingMethod struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	ZoneID     int64  `gorm:"index;comment:关联区域ID,0为兜底区域"`
	MethodID   string `gorm:"size:32;not null;comment:方式类型 flat_rate/free_shipping/local_pickup等"`
	InstanceID int    `gorm:"default:0;comment:同类型方式在区域内的实例序号"`
	Title      string `gorm:"size:128;comment:显示名称"`
	Enabled    bool   `gorm:"default:true;index;comment:是否启用"`
	TaxStatus  string `gorm:"size:16;default:taxable;comment:taxable/none"`

	// 方式配置项（title/cost/min_amount/requires/estimated_delivery）
	Settings datatypes.JSONMap `gorm:"comment:方式配置"`
}

func (ShippingZone) TableName() string {
	return "shipping_zones"
}
func (ShippingZoneLocation) TableName() string {
	return "shipping_zone_locations"
}
func (ShippingMethod) TableName() string {
	return "shipping_methods"
}
