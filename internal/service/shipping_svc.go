package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"storefront_dev_v1_202608/internal/api/dto"
	"storefront_dev_v1_202608/internal/model"
	"storefront_dev_v1_202608/internal/repository"
	"storefront_dev_v1_202608/pkg/geo"
)

// ==================== 配送方式种类 ====================

// methodKind 封闭的方式种类枚举，费用提取按种类分派
type methodKind int

const (
	kindGeneric methodKind = iota
	kindFlatRate
	kindFreeShipping
	kindLocalPickup
)

func kindOf(methodID string) methodKind {
	switch methodID {
	case model.MethodFlatRate:
		return kindFlatRate
	case model.MethodFreeShipping:
		return kindFreeShipping
	case model.MethodLocalPickup:
		return kindLocalPickup
	default:
		return kindGeneric
	}
}

// settingKeys 方式详情提取的固定配置键
var settingKeys = []string{"title", "cost", "min_amount", "requires", "estimated_delivery"}

// ShippingZoneService 配送区域解析服务
type ShippingZoneService struct {
	zoneRepo repository.ShippingZoneRepository
}

// NewShippingZoneService 创建配送区域服务
func NewShippingZoneService(zoneRepo repository.ShippingZoneRepository) *ShippingZoneService {
	return &ShippingZoneService{zoneRepo: zoneRepo}
}

// ==================== 按地址解析 ====================

// MatchAddress 解析地址命中的全部配送选项
// 区域之间相互独立，不做先到先得：一个地址可同时命中多个区域的方式
func (s *ShippingZoneService) MatchAddress(ctx context.Context, country, state, postcode string) ([]dto.ShippingOptionResp, error) {
	zones, err := s.zoneRepo.ListZones(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]dto.ShippingOptionResp, 0)
	for _, zone := range zones {
		if !zoneMatchesAddress(&zone, country, state, postcode) {
			continue
		}
		for _, m := range zone.Methods {
			if !m.Enabled {
				continue
			}
			options = append(options, dto.ShippingOptionResp{
				ZoneID:                zone.ID,
				ZoneName:              zone.Name,
				MethodID:              m.MethodID,
				InstanceID:            m.InstanceID,
				Title:                 methodTitle(&m),
				Cost:                  extractCost(&m).InexactFloat64(),
				TaxStatus:             m.TaxStatus,
				EstimatedDeliveryDays: estimatedDays(&m),
			})
		}
	}
	return options, nil
}

// zoneMatchesAddress 地址匹配规则：
// 兜底区域恒匹配；无位置规则的区域匹配一切；否则任一规则命中即可
// （country 精确等于；state 等于 "国家:州"；postcode 走邮编规则匹配）
func zoneMatchesAddress(zone *model.ShippingZone, country, state, postcode string) bool {
	if zone.ID == model.RestOfWorldZoneID || len(zone.Locations) == 0 {
		return true
	}
	for _, loc := range zone.Locations {
		switch loc.Type {
		case model.ZoneLocationCountry:
			if loc.Code == country {
				return true
			}
		case model.ZoneLocationState:
			if loc.Code == fmt.Sprintf("%s:%s", country, state) {
				return true
			}
		case model.ZoneLocationPostcode:
			if geo.MatchPostcode(postcode, loc.Code) {
				return true
			}
		}
	}
	return false
}

// ==================== 按国家解析 ====================

// MatchCountry 解析国家可用的配送方式详情
// 兜底区域的启用方式无条件追加在结果末尾（与具体区域重叠时由调用方去重）
func (s *ShippingZoneService) MatchCountry(ctx context.Context, countryCode string) ([]dto.MethodDetailResp, error) {
	if !geo.IsKnownCountry(countryCode) {
		return nil, ErrCountryUnknown
	}

	zones, err := s.zoneRepo.ListZones(ctx)
	if err != nil {
		return nil, err
	}

	methods := make([]dto.MethodDetailResp, 0)
	var restOfWorld *model.ShippingZone
	for i := range zones {
		zone := &zones[i]
		if zone.ID == model.RestOfWorldZoneID {
			restOfWorld = zone
			continue
		}
		if !zoneMatchesCountry(zone, countryCode) {
			continue
		}
		methods = append(methods, enabledMethodDetails(zone)...)
	}

	if restOfWorld != nil {
		methods = append(methods, enabledMethodDetails(restOfWorld)...)
	}
	return methods, nil
}

// zoneMatchesCountry 国家匹配规则：无位置规则、country 规则相等、或 continent 规则展开后包含该国
func zoneMatchesCountry(zone *model.ShippingZone, countryCode string) bool {
	if len(zone.Locations) == 0 {
		return true
	}
	for _, loc := range zone.Locations {
		switch loc.Type {
		case model.ZoneLocationCountry:
			if loc.Code == countryCode {
				return true
			}
		case model.ZoneLocationContinent:
			for _, member := range geo.ContinentCountries(loc.Code) {
				if member == countryCode {
					return true
				}
			}
		}
	}
	return false
}

func enabledMethodDetails(zone *model.ShippingZone) []dto.MethodDetailResp {
	details := make([]dto.MethodDetailResp, 0, len(zone.Methods))
	for _, m := range zone.Methods {
		if !m.Enabled {
			continue
		}
		details = append(details, methodDetail(zone, &m))
	}
	return details
}

// ==================== 按方式类型解析 ====================

// FindByMethodType 跨全部区域按方式类型检索方式记录
// 购物车定价阶段回查既选方式的权威费用/配置用
func (s *ShippingZoneService) FindByMethodType(ctx context.Context, methodID string) ([]dto.MethodDetailResp, error) {
	zones, err := s.zoneRepo.ListZones(ctx)
	if err != nil {
		return nil, err
	}

	methods := make([]dto.MethodDetailResp, 0)
	for i := range zones {
		zone := &zones[i]
		for _, m := range zone.Methods {
			if m.MethodID != methodID {
				continue
			}
			methods = append(methods, methodDetail(zone, &m))
		}
	}
	return methods, nil
}

// ==================== 费用与配置提取 ====================

// extractCost 按方式种类提取费用
// 固定运费/本地自提读 cost 配置（缺失或非法按 0）；免运费恒为 0；
// 其他类型尝试通用 cost 读取，读不到按 0
func extractCost(m *model.ShippingMethod) decimal.Decimal {
	switch kindOf(m.MethodID) {
	case kindFreeShipping:
		return decimal.Zero
	default:
		raw := settingString(m, "cost")
		if raw == "" {
			return decimal.Zero
		}
		cost, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero
		}
		return cost
	}
}

// methodDetail 提取方式详情，settings 只保留实际配置且非空的固定键
func methodDetail(zone *model.ShippingZone, m *model.ShippingMethod) dto.MethodDetailResp {
	settings := make(map[string]string)
	for _, key := range settingKeys {
		if v := settingString(m, key); v != "" {
			settings[key] = v
		}
	}
	return dto.MethodDetailResp{
		ZoneID:     zone.ID,
		ZoneName:   zone.Name,
		MethodID:   m.MethodID,
		InstanceID: m.InstanceID,
		Title:      methodTitle(m),
		Enabled:    m.Enabled,
		Settings:   settings,
	}
}

func methodTitle(m *model.ShippingMethod) string {
	if m.Title != "" {
		return m.Title
	}
	return settingString(m, "title")
}

func estimatedDays(m *model.ShippingMethod) int {
	raw := settingString(m, "estimated_delivery")
	if raw == "" {
		return 0
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return days
}

// settingString 从方式配置 JSON 里读字符串值，数值自动转为十进制文本
func settingString(m *model.ShippingMethod, key string) string {
	if m.Settings == nil {
		return ""
	}
	v, ok := m.Settings[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprintf("%v", t)
	}
}
