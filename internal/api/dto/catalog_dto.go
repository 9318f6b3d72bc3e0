package dto

// ==================== 请求 DTO ====================

// CatalogFilterReq 多维度商品筛选请求
// 各维度为空表示不限制；product_types 同时接受词条 ID 与名称
type CatalogFilterReq struct {
	Categories   []int64  `form:"categories"`
	Platforms    []int64  `form:"platforms"`
	Conditions   []int64  `form:"conditions"`
	Genres       []int64  `form:"genres"`
	Players      []int64  `form:"players"`
	ProductTypes []string `form:"product_types"`

	Search   string   `form:"search"`
	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`

	Sort     string `form:"sort"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Language string `form:"lang"`
}

// ==================== 响应 DTO ====================

// PriceRangeResp 全量命中集的价格区间（滑块边界）
// 与请求中的价格条件无关；空结果集时 min/max 为 null
type PriceRangeResp struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// CatalogItemResp 商品摘要
type CatalogItemResp struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url,omitempty"`

	// 价格：简单商品为 regular/sale，变体商品为 min/max 区间
	RegularPrice *float64 `json:"regular_price,omitempty"`
	SalePrice    *float64 `json:"sale_price,omitempty"`
	PriceMin     *float64 `json:"price_min,omitempty"`
	PriceMax     *float64 `json:"price_max,omitempty"`

	Categories    []string            `json:"categories,omitempty"`
	Attributes    map[string][]string `json:"attributes,omitempty"`
	ReviewCount   int64               `json:"review_count"`
	AverageRating float64             `json:"average_rating"`
	MonthlySold   int64               `json:"monthly_sold"`
}

// CatalogFilterResp 商品筛选响应
type CatalogFilterResp struct {
	Code       int               `json:"code"`
	Message    string            `json:"message"`
	Items      []CatalogItemResp `json:"items"`
	Total      int64             `json:"total_count"`
	TotalPages int               `json:"total_pages"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	PriceRange PriceRangeResp    `json:"price_range"`
}
