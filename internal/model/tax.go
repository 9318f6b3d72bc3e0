package model

import "github.com/shopspring/decimal"

// ==================== 税率位置类型常量 ====================

const (
	TaxLocationPostcode = "postcode" // 邮编位置
	TaxLocationCity     = "city"     // 城市位置
)

// TaxRate 税率表
// country/state 为空表示该维度不限制（全国/全州兜底税率）
type TaxRate struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Country  string `gorm:"size:2;index;comment:国家代码,空为不限"`
	State    string `gorm:"size:10;comment:州/省代码,空为不限"`
	Postcode string `gorm:"size:32;comment:邮编规则(精确/通配/区间),空为不限"`
	City     string `gorm:"size:64;comment:城市,空为不限"`

	Rate decimal.Decimal `gorm:"type:decimal(10,4);not null;comment:税率百分比"`
	Name string          `gorm:"size:64;comment:税率显示名"`
	Code string          `gorm:"size:64;comment:登记税率代码,空则运行时生成"`

	Shipping bool   `gorm:"default:false;comment:是否对运费征税"`
	Compound bool   `gorm:"default:false;comment:是否复合税"`
	Priority int    `gorm:"default:1;comment:优先级"`
	Class    string `gorm:"size:32;comment:税类,空为标准税类"`

	SortOrder int `gorm:"default:0;comment:同优先级内排序"`

	// 关联位置（邮编/城市登记表）
	Locations []TaxRateLocation `gorm:"foreignKey:TaxRateID"`
}

// TaxRateLocation 税率位置登记表
// 一条税率可登记多个邮编规则或城市
type TaxRateLocation struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	TaxRateID    int64  `gorm:"index;not null;comment:关联税率ID"`
	LocationCode string `gorm:"size:32;not null;comment:邮编规则或城市名"`
	LocationType string `gorm:"size:16;not null;default:postcode;comment:postcode/city"`
}

func (TaxRate) TableName() string {
	return "tax_rates"
}
func (TaxRateLocation) TableName() string {
	return "tax_rate_locations"
}
