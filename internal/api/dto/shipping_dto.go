package dto

// ==================== 请求 DTO ====================

// ShippingLookupReq 按地址查询可用配送方式请求
type ShippingLookupReq struct {
	Country  string `form:"country" binding:"required,len=2"`
	State    string `form:"state"`
	Postcode string `form:"postcode"`
}

// ==================== 响应 DTO ====================

// ShippingOptionResp 地址匹配出的单个配送选项
type ShippingOptionResp struct {
	ZoneID                int64   `json:"zone_id"`
	ZoneName              string  `json:"zone_name"`
	MethodID              string  `json:"method_id"`
	InstanceID            int     `json:"instance_id"`
	Title                 string  `json:"title"`
	Cost                  float64 `json:"cost"`
	TaxStatus             string  `json:"tax_status,omitempty"`
	EstimatedDeliveryDays int     `json:"estimated_delivery_days,omitempty"`
}

// ShippingLookupResp 按地址查询响应
type ShippingLookupResp struct {
	Code    int                  `json:"code"`
	Message string               `json:"message"`
	Options []ShippingOptionResp `json:"options"`
}

// MethodDetailResp 按国家查询时的配送方式详情
// settings 只含实际配置且非空的固定键（title/cost/min_amount/requires/estimated_delivery）
type MethodDetailResp struct {
	ZoneID     int64             `json:"zone_id"`
	ZoneName   string            `json:"zone_name"`
	MethodID   string            `json:"method_id"`
	InstanceID int               `json:"instance_id"`
	Title      string            `json:"title"`
	Enabled    bool              `json:"enabled"`
	Settings   map[string]string `json:"settings,omitempty"`
}

// CountryMethodsResp 按国家查询响应
type CountryMethodsResp struct {
	Code    int                `json:"code"`
	Message string             `json:"message"`
	Country string             `json:"country"`
	Methods []MethodDetailResp `json:"methods"`
}

// MethodTypeResp 按方式类型查询响应
type MethodTypeResp struct {
	Code     int                `json:"code"`
	Message  string             `json:"message"`
	MethodID string             `json:"method_id"`
	Methods  []MethodDetailResp `json:"methods"`
}
