package dto

// ==================== 请求 DTO ====================

// TaxLookupReq 税率查询请求
// 假定入参已在接入层完成基础清洗（非空、去首尾空格）
type TaxLookupReq struct {
	Country  string `form:"country" binding:"required,len=2"`
	State    string `form:"state"`
	Postcode string `form:"postcode"`
	City     string `form:"city"`
	Language string `form:"lang"`
}

// ==================== 响应 DTO ====================

// TaxRateResp 命中的税率
type TaxRateResp struct {
	RateID   int64   `json:"rate_id"`
	Country  string  `json:"country"`
	State    string  `json:"state,omitempty"`
	City     string  `json:"city,omitempty"`
	Rate     float64 `json:"rate"`
	Code     string  `json:"rate_code"`
	Label    string  `json:"label"`
	Shipping bool    `json:"shipping"`
	Compound bool    `json:"compound"`
	Priority int     `json:"priority"`
	Class    string  `json:"class,omitempty"`
}

// TaxLookupResp 税率查询响应
type TaxLookupResp struct {
	Code     int           `json:"code"`
	Message  string        `json:"message"`
	TaxRates []TaxRateResp `json:"tax_rates"`
}
