package model

import (
	"gorm.io/datatypes"
)

// ==================== 商品类型常量 ====================

const (
	ProductTypeSimple   = "simple"   // 单一商品
	ProductTypeVariable = "variable" // 多变体商品，展示价为区间
)

// ProductStatusPublish 上架状态
const ProductStatusPublish = "publish"

// ==================== 分类法常量 ====================

const (
	TaxonomyCategory    = "product_cat"  // 商品分类
	TaxonomyPlatform    = "pa_platform"  // 平台
	TaxonomyCondition   = "pa_condition" // 成色
	TaxonomyGenre       = "pa_genre"     // 类型/题材
	TaxonomyPlayers     = "pa_players"   // 玩家人数
	TaxonomyProductType = "product_type" // 商品类型
)

// ==================== 属性种类常量 ====================

const (
	AttributeKindTaxonomy = "taxonomy" // 分类法属性，值经词条表解析
	AttributeKindCustom   = "custom"   // 自定义属性，值存在本行 values 字段
)

// Product 商品表
// 多语言：同一逻辑商品按语言各存一行，经 translations 表归组
type Product struct {
	BaseModel
	Slug     string `gorm:"size:255;index"`
	Type     string `gorm:"size:16;index;default:simple"` // simple, variable
	Name     string `gorm:"size:255;index"`
	Describe string `gorm:"column:description;type:text"`
	Status   string `gorm:"size:20;index;default:publish"`
	Language string `gorm:"size:10;index"`

	// --- 价格（单位：分） ---
	RegularPriceCents int64 `gorm:"default:0"`
	SalePriceCents    int64 `gorm:"default:0"` // 0 表示无促销价
	PriceCents        int64 `gorm:"index;default:0;comment:当前生效价,排序与价格过滤用"`

	// --- 销售计数 ---
	TotalSales   int64 `gorm:"default:0;index"`
	MonthlySales int64 `gorm:"default:0;index;comment:本月销量,由定时任务刷新"`

	// --- 展示 ---
	MenuOrder int    `gorm:"default:0;index;comment:手工排序权重"`
	ImageURL  string `gorm:"size:512"`

	// --- 关联关系 ---
	Variants   []ProductVariant   `gorm:"foreignKey:ProductID"`
	Attributes []ProductAttribute `gorm:"foreignKey:ProductID"`
}

// ProductVariant 商品变体表
type ProductVariant struct {
	BaseModel
	ProductID  int64  `gorm:"index;not null"`
	SKU        string `gorm:"size:100;index"`
	PriceCents int64  `gorm:"default:0"`
	Stock      int    `gorm:"default:0"`
	Enabled    bool   `gorm:"default:true"`
}

// Term 分类法词条表（分类/平台/成色/题材/人数/商品类型共用）
type Term struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Taxonomy string `gorm:"size:32;index:idx_taxonomy_name;not null"`
	Name     string `gorm:"size:128;index:idx_taxonomy_name;not null"`
	Slug     string `gorm:"size:128;index"`
	ParentID int64  `gorm:"default:0"`
}

// ProductTerm 商品-词条关联表
type ProductTerm struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	ProductID int64 `gorm:"uniqueIndex:idx_product_term;not null"`
	TermID    int64 `gorm:"uniqueIndex:idx_product_term;index;not null"`
}

// ProductAttribute 商品属性表
// 两种形态：taxonomy 属性值经词条表解析；custom 属性值直接存 values
type ProductAttribute struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ProductID int64  `gorm:"index;not null"`
	Name      string `gorm:"size:128;not null"`
	Kind      string `gorm:"size:16;not null;default:custom"` // taxonomy, custom
	Taxonomy  string `gorm:"size:32;comment:kind=taxonomy 时的分类法名"`

	// kind=custom 时的取值列表，JSON 字符串数组
	Values datatypes.JSON
}

func (Product) TableName() string {
	return "products"
}
func (ProductVariant) TableName() string {
	return "product_variants"
}
func (Term) TableName() string {
	return "terms"
}
func (ProductTerm) TableName() string {
	return "product_terms"
}
func (ProductAttribute) TableName() string {
	return "product_attributes"
}
