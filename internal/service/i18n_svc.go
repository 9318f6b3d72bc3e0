package service

import (
	"context"
	"log"

	"storefront_dev_v1_202608/internal/repository"
	"storefront_dev_v1_202608/pkg/i18n"
)

// LocalizationService 多语言身份解析与文案翻译
// 身份解析基于 translations 映射表；缺失翻译一律回退原 ID / 原文，不报错
type LocalizationService struct {
	trRepo          repository.TranslationRepository
	client          i18n.TranslateClient
	defaultLanguage string
}

// NewLocalizationService 创建多语言服务
func NewLocalizationService(
	trRepo repository.TranslationRepository,
	client i18n.TranslateClient,
	defaultLanguage string,
) *LocalizationService {
	if defaultLanguage == "" {
		defaultLanguage = "en"
	}
	return &LocalizationService{
		trRepo:          trRepo,
		client:          client,
		defaultLanguage: defaultLanguage,
	}
}

// DefaultLanguage 返回店铺默认语言
func (s *LocalizationService) DefaultLanguage() string {
	return s.defaultLanguage
}

// ==================== 身份解析 ====================

// CanonicalID 解析语言版本对象的规范 ID（原文版本的 ID）
// 未登记映射时返回原 ID
func (s *LocalizationService) CanonicalID(ctx context.Context, id int64, elementType string) (int64, error) {
	row, err := s.trRepo.GetByElement(ctx, id, elementType)
	if err != nil {
		return 0, err
	}
	if row == nil || row.SourceLanguage == "" {
		return id, nil
	}

	group, err := s.trRepo.ListGroup(ctx, row.GroupID, elementType)
	if err != nil {
		return 0, err
	}
	for _, tr := range group {
		if tr.SourceLanguage == "" {
			return tr.ElementID, nil
		}
	}
	return id, nil
}

// LocalizedID 解析对象在目标语言下的同组 ID
// 目标语言无翻译时返回原 ID
func (s *LocalizationService) LocalizedID(ctx context.Context, id int64, elementType, language string) (int64, error) {
	if language == "" {
		language = s.defaultLanguage
	}
	row, err := s.trRepo.GetByElement(ctx, id, elementType)
	if err != nil {
		return 0, err
	}
	if row == nil {
		return id, nil
	}
	if row.Language == language {
		return id, nil
	}

	group, err := s.trRepo.ListGroup(ctx, row.GroupID, elementType)
	if err != nil {
		return 0, err
	}
	for _, tr := range group {
		if tr.Language == language {
			return tr.ElementID, nil
		}
	}
	return id, nil
}

// TranslationsOf 返回对象全部语言版本的映射 language -> id
func (s *LocalizationService) TranslationsOf(ctx context.Context, id int64, elementType string) (map[string]int64, error) {
	row, err := s.trRepo.GetByElement(ctx, id, elementType)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return map[string]int64{}, nil
	}

	group, err := s.trRepo.ListGroup(ctx, row.GroupID, elementType)
	if err != nil {
		return nil, err
	}
	result := make(map[string]int64, len(group))
	for _, tr := range group {
		result[tr.Language] = tr.ElementID
	}
	return result, nil
}

// ==================== 文案翻译 ====================

// TranslateString 调远端翻译服务翻译界面文案
// 默认语言或服务异常时直接返回原文
func (s *LocalizationService) TranslateString(ctx context.Context, text, domain, language string) string {
	if text == "" || language == "" || language == s.defaultLanguage || s.client == nil {
		return text
	}
	translated, err := s.client.Translate(ctx, text, domain, language)
	if err != nil || translated == "" {
		log.Printf("[i18n] 翻译失败, 回退原文: %v", err)
		return text
	}
	return translated
}
