package service

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"storefront_dev_v1_202608/internal/api/dto"
	"storefront_dev_v1_202608/internal/model"
	"storefront_dev_v1_202608/internal/repository"
)

// DefaultPageSize 默认每页数量
const DefaultPageSize = 12

// CatalogService 多维度商品筛选服务
// 组装查询计划交给商品仓储执行，并在全量命中集上聚合价格区间
type CatalogService struct {
	productRepo repository.ProductRepository
	termRepo    repository.TermRepository
	orderRepo   repository.OrderRepository
	reviewRepo  repository.ReviewRepository
	i18n        *LocalizationService
	baseURL     string
}

// NewCatalogService 创建商品筛选服务
// baseURL: 商品详情页地址前缀，如 https://shop.example.com
func NewCatalogService(
	productRepo repository.ProductRepository,
	termRepo repository.TermRepository,
	orderRepo repository.OrderRepository,
	reviewRepo repository.ReviewRepository,
	i18n *LocalizationService,
	baseURL string,
) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		termRepo:    termRepo,
		orderRepo:   orderRepo,
		reviewRepo:  reviewRepo,
		i18n:        i18n,
		baseURL:     baseURL,
	}
}

// ==================== 商品筛选 ====================

// Filter 执行多维度筛选
// 分类 ID 全量校验，其余维度空输入静默降级为不限制；
// 价格区间聚合在不带价格条件、不分页的同约束查询上计算
func (s *CatalogService) Filter(ctx context.Context, req dto.CatalogFilterReq) (*dto.CatalogFilterResp, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	lang := req.Language
	if lang == "" {
		lang = s.i18n.DefaultLanguage()
	}

	// 1. 分类维度硬校验：任一 ID 无效则整个请求失败
	if err := s.validateCategories(ctx, req.Categories); err != nil {
		return nil, err
	}

	// 2. 组装 AND 语义的维度约束
	filters, err := s.buildTermFilters(ctx, req)
	if err != nil {
		return nil, err
	}

	baseQuery := repository.CatalogQuery{
		TermFilters: filters,
		Search:      req.Search,
	}

	// 3. 价格区间聚合：同约束、无价格条件、不分页
	allIDs, err := s.productRepo.QueryAllIDs(ctx, baseQuery)
	if err != nil {
		return nil, err
	}
	priceRange, err := s.aggregatePriceRange(ctx, allIDs, lang)
	if err != nil {
		return nil, err
	}

	// 4. 分页查询：价格条件仅作用于此处
	pagedQuery := baseQuery
	pagedQuery.Sort = req.Sort
	pagedQuery.Page = page
	pagedQuery.PageSize = pageSize
	if req.MinPrice != nil {
		cents := toCents(*req.MinPrice)
		pagedQuery.MinPriceCents = &cents
	}
	if req.MaxPrice != nil {
		cents := toCents(*req.MaxPrice)
		pagedQuery.MaxPriceCents = &cents
	}

	ids, total, err := s.productRepo.QueryIDs(ctx, pagedQuery)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CatalogItemResp, 0, len(ids))
	for _, id := range ids {
		item, err := s.buildSummary(ctx, id, lang)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	return &dto.CatalogFilterResp{
		Items:      items,
		Total:      total,
		TotalPages: totalPages(total, pageSize),
		Page:       page,
		PageSize:   pageSize,
		PriceRange: priceRange,
	}, nil
}

// validateCategories 分类 ID 存在性校验，收集全部无效 ID
func (s *CatalogService) validateCategories(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	terms, err := s.termRepo.GetByIDs(ctx, model.TaxonomyCategory, ids)
	if err != nil {
		return err
	}
	found := make(map[int64]bool, len(terms))
	for _, t := range terms {
		found[t.ID] = true
	}
	var invalid []int64
	for _, id := range ids {
		if !found[id] {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		return &CategoryValidationError{InvalidIDs: invalid}
	}
	return nil
}

// buildTermFilters 组装分类法维度约束
// product_types 里的名称先解析成词条 ID，解析不到的名称直接丢弃
func (s *CatalogService) buildTermFilters(ctx context.Context, req dto.CatalogFilterReq) ([]repository.TermConstraint, error) {
	var filters []repository.TermConstraint
	add := func(taxonomy string, ids []int64) {
		if len(ids) > 0 {
			filters = append(filters, repository.TermConstraint{Taxonomy: taxonomy, TermIDs: ids})
		}
	}

	add(model.TaxonomyCategory, req.Categories)
	add(model.TaxonomyPlatform, req.Platforms)
	add(model.TaxonomyCondition, req.Conditions)
	add(model.TaxonomyGenre, req.Genres)
	add(model.TaxonomyPlayers, req.Players)

	if len(req.ProductTypes) > 0 {
		var ids []int64
		var names []string
		for _, raw := range req.ProductTypes {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
				ids = append(ids, id)
			} else {
				names = append(names, raw)
			}
		}
		if len(names) > 0 {
			resolved, err := s.termRepo.FindIDsByNames(ctx, model.TaxonomyProductType, names)
			if err != nil {
				return nil, err
			}
			ids = append(ids, resolved...)
		}
		add(model.TaxonomyProductType, ids)
	}

	return filters, nil
}

// ==================== 价格区间聚合 ====================

// aggregatePriceRange 在全量命中集上求全局最低/最高价
// 变体商品取各变体价的最小/最大值，简单商品取当前生效价
func (s *CatalogService) aggregatePriceRange(ctx context.Context, ids []int64, lang string) (dto.PriceRangeResp, error) {
	var result dto.PriceRangeResp
	for _, id := range ids {
		localID, err := s.i18n.LocalizedID(ctx, id, model.ElementTypeProduct, lang)
		if err != nil {
			return result, err
		}
		product, err := s.productRepo.GetByID(ctx, localID)
		if err != nil {
			return result, err
		}

		var lowCents, highCents int64
		if product.Type == model.ProductTypeVariable {
			variants, err := s.productRepo.ListVariants(ctx, localID)
			if err != nil {
				return result, err
			}
			if len(variants) == 0 {
				continue
			}
			lowCents, highCents = variants[0].PriceCents, variants[0].PriceCents
			for _, v := range variants[1:] {
				if v.PriceCents < lowCents {
					lowCents = v.PriceCents
				}
				if v.PriceCents > highCents {
					highCents = v.PriceCents
				}
			}
		} else {
			lowCents, highCents = product.PriceCents, product.PriceCents
		}

		low, high := fromCents(lowCents), fromCents(highCents)
		if result.Min == nil || low < *result.Min {
			result.Min = &low
		}
		if result.Max == nil || high > *result.Max {
			result.Max = &high
		}
	}
	return result, nil
}

// ==================== 摘要构建 ====================

// buildSummary 构建单个商品摘要（先解析到请求语言的版本 ID）
func (s *CatalogService) buildSummary(ctx context.Context, id int64, lang string) (*dto.CatalogItemResp, error) {
	localID, err := s.i18n.LocalizedID(ctx, id, model.ElementTypeProduct, lang)
	if err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByIDWithRelations(ctx, localID)
	if err != nil {
		return nil, err
	}

	item := &dto.CatalogItemResp{
		ID:          product.ID,
		Slug:        product.Slug,
		Type:        product.Type,
		Name:        product.Name,
		Description: product.Describe,
		URL:         s.baseURL + "/product/" + product.Slug,
		ImageURL:    product.ImageURL,
	}

	// 价格：变体商品给区间，简单商品给原价/促销价
	if product.Type == model.ProductTypeVariable && len(product.Variants) > 0 {
		lowCents, highCents := product.Variants[0].PriceCents, product.Variants[0].PriceCents
		for _, v := range product.Variants[1:] {
			if v.PriceCents < lowCents {
				lowCents = v.PriceCents
			}
			if v.PriceCents > highCents {
				highCents = v.PriceCents
			}
		}
		low, high := fromCents(lowCents), fromCents(highCents)
		item.PriceMin, item.PriceMax = &low, &high
	} else {
		regular := fromCents(product.RegularPriceCents)
		item.RegularPrice = &regular
		if product.SalePriceCents > 0 {
			sale := fromCents(product.SalePriceCents)
			item.SalePrice = &sale
		}
	}

	// 分类名
	categories, err := s.termRepo.NamesForProduct(ctx, localID, model.TaxonomyCategory)
	if err != nil {
		return nil, err
	}
	item.Categories = categories

	// 属性表：taxonomy 属性经词条解析，custom 属性读本行取值列表
	attributes, err := s.resolveAttributes(ctx, localID, product.Attributes)
	if err != nil {
		return nil, err
	}
	item.Attributes = attributes

	// 评价聚合
	count, average, err := s.reviewRepo.StatsForProduct(ctx, localID)
	if err != nil {
		return nil, err
	}
	item.ReviewCount = count
	item.AverageRating = average

	// 本月销量：completed/processing 订单行数量合计，自然月口径
	monthStart, nextMonth := currentMonthRange(time.Now())
	sold, err := s.orderRepo.SumQuantityForProduct(ctx, localID, model.SoldCountStatuses, monthStart, nextMonth)
	if err != nil {
		return nil, err
	}
	item.MonthlySold = sold

	return item, nil
}

// resolveAttributes 解析属性名 -> 取值列表
func (s *CatalogService) resolveAttributes(ctx context.Context, productID int64, attrs []model.ProductAttribute) (map[string][]string, error) {
	if len(attrs) == 0 {
		return nil, nil
	}
	result := make(map[string][]string, len(attrs))
	for _, attr := range attrs {
		switch attr.Kind {
		case model.AttributeKindTaxonomy:
			names, err := s.termRepo.NamesForProduct(ctx, productID, attr.Taxonomy)
			if err != nil {
				return nil, err
			}
			result[attr.Name] = names
		default:
			var values []string
			if len(attr.Values) > 0 {
				if err := json.Unmarshal(attr.Values, &values); err != nil {
					return nil, err
				}
			}
			result[attr.Name] = values
		}
	}
	return result, nil
}

// ==================== 辅助 ====================

func totalPages(total int64, pageSize int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// currentMonthRange 自然月区间 [本月1日, 下月1日)
func currentMonthRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}

func toCents(price float64) int64 {
	return int64(price*100 + 0.5)
}

func fromCents(cents int64) float64 {
	return float64(cents) / 100
}
