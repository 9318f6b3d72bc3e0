package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"storefront_dev_v1_202608/internal/api/dto"
	"storefront_dev_v1_202608/internal/model"
	"storefront_dev_v1_202608/internal/repository"
	"storefront_dev_v1_202608/pkg/geo"
)

// TaxService 税率解析服务
// 按 国家/州/邮编/城市 从税率表筛出适用税率并生成展示标签与税率代码
type TaxService struct {
	rateRepo repository.TaxRateRepository
	i18n     *LocalizationService

	// strictPostcodeGate 历史口径开关：开启后无邮编限制的税率也要求
	// 请求邮编命中其登记邮编表才会返回（登记表为空则一律不返回）
	strictPostcodeGate bool
}

// NewTaxService 创建税率服务
func NewTaxService(rateRepo repository.TaxRateRepository, i18n *LocalizationService) *TaxService {
	return &TaxService{rateRepo: rateRepo, i18n: i18n}
}

// SetStrictPostcodeGate 切换历史口径（默认关闭）
func (s *TaxService) SetStrictPostcodeGate(on bool) {
	s.strictPostcodeGate = on
}

// ==================== 税率解析 ====================

// FindRates 解析适用税率
// 候选集：命中国家的税率 + 国家不限的全局税率；结果保持仓储返回顺序，不去重
func (s *TaxService) FindRates(ctx context.Context, req dto.TaxLookupReq) ([]dto.TaxRateResp, error) {
	candidates, err := s.rateRepo.ListByCountry(ctx, req.Country)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TaxRateResp, 0, len(candidates))
	for _, rate := range candidates {
		// 州限制：精确匹配
		if rate.State != "" && rate.State != req.State {
			continue
		}
		// 城市限制：大小写不敏感
		if rate.City != "" && !strings.EqualFold(rate.City, req.City) {
			continue
		}

		ok, err := s.postcodeAllowed(ctx, &rate, req.Postcode)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		result = append(result, s.annotate(ctx, &rate, req))
	}
	return result, nil
}

// postcodeAllowed 判断请求邮编是否满足税率的邮编限制
// 税率带邮编限制（规则列或登记表非空）时要求至少命中一条登记规则；
// 无限制的税率直接放行，除非开启历史口径
func (s *TaxService) postcodeAllowed(ctx context.Context, rate *model.TaxRate, postcode string) (bool, error) {
	patterns, err := s.rateRepo.ListLocations(ctx, rate.ID, model.TaxLocationPostcode)
	if err != nil {
		return false, err
	}

	restricted := rate.Postcode != "" || len(patterns) > 0
	if !restricted && !s.strictPostcodeGate {
		return true, nil
	}

	if len(patterns) == 0 && rate.Postcode != "" {
		patterns = []string{rate.Postcode}
	}
	for _, p := range patterns {
		if geo.MatchPostcode(postcode, p) {
			return true, nil
		}
	}
	return false, nil
}

// annotate 生成税率代码与展示标签
func (s *TaxService) annotate(ctx context.Context, rate *model.TaxRate, req dto.TaxLookupReq) dto.TaxRateResp {
	rateStr := formatRate(rate.Rate)

	code := rate.Code
	if code == "" {
		parts := []string{"TAX", rate.Country}
		if rate.State != "" {
			parts = append(parts, rate.State)
		}
		parts = append(parts, strings.ReplaceAll(rateStr, ".", ""))
		code = strings.Join(parts, "-")
	}

	name := rate.Name
	if name == "" {
		name = "Tax"
	}
	label := s.i18n.TranslateString(ctx, name, "tax", req.Language)
	if !strings.Contains(label, rateStr) {
		label = fmt.Sprintf("%s (%s%%)", label, rateStr)
	}

	city := rate.City
	if city == "" {
		city = req.City
	}

	return dto.TaxRateResp{
		RateID:   rate.ID,
		Country:  rate.Country,
		State:    rate.State,
		City:     city,
		Rate:     rate.Rate.InexactFloat64(),
		Code:     code,
		Label:    label,
		Shipping: rate.Shipping,
		Compound: rate.Compound,
		Priority: rate.Priority,
		Class:    rate.Class,
	}
}

// formatRate 税率百分比显示形式，去掉无意义的小数尾零
func formatRate(rate decimal.Decimal) string {
	s := rate.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "" {
		s = "0"
	}
	return s
}
