package service

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront_dev_v1_202608/internal/model"
	"storefront_dev_v1_202608/internal/repository"
)

// ==================== 测试辅助 ====================

func setupI18nTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Translation{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

// seedProductGroup 一个商品翻译组：en(10, 原文) / de(11) / fr(12)
func seedProductGroup(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, tr := range []model.Translation{
		{ElementID: 10, ElementType: model.ElementTypeProduct, GroupID: 7, Language: "en"},
		{ElementID: 11, ElementType: model.ElementTypeProduct, GroupID: 7, Language: "de", SourceLanguage: "en"},
		{ElementID: 12, ElementType: model.ElementTypeProduct, GroupID: 7, Language: "fr", SourceLanguage: "en"},
	} {
		if err := db.Create(&tr).Error; err != nil {
			t.Fatalf("写入翻译映射失败: %v", err)
		}
	}
}

func newI18nService(db *gorm.DB, client *stubTranslateClient) *LocalizationService {
	if client == nil {
		return NewLocalizationService(repository.NewTranslationRepository(db), nil, "en")
	}
	return NewLocalizationService(repository.NewTranslationRepository(db), client, "en")
}

// ==================== 身份解析测试 ====================

func TestLocalizationService_CanonicalID(t *testing.T) {
	db := setupI18nTestDB(t)
	seedProductGroup(t, db)
	svc := newI18nService(db, nil)
	ctx := context.Background()

	// 译文行解析到原文行
	if id, err := svc.CanonicalID(ctx, 11, model.ElementTypeProduct); err != nil || id != 10 {
		t.Errorf("CanonicalID(11) = %d, %v, 期望 10", id, err)
	}
	// 原文行返回自身
	if id, err := svc.CanonicalID(ctx, 10, model.ElementTypeProduct); err != nil || id != 10 {
		t.Errorf("CanonicalID(10) = %d, %v, 期望 10", id, err)
	}
	// 未登记映射返回原 ID
	if id, err := svc.CanonicalID(ctx, 99, model.ElementTypeProduct); err != nil || id != 99 {
		t.Errorf("CanonicalID(99) = %d, %v, 期望 99", id, err)
	}
}

func TestLocalizationService_LocalizedID(t *testing.T) {
	db := setupI18nTestDB(t)
	seedProductGroup(t, db)
	svc := newI18nService(db, nil)
	ctx := context.Background()

	cases := []struct {
		name     string
		id       int64
		language string
		want     int64
	}{
		{"原文到德语", 10, "de", 11},
		{"译文到另一译文", 11, "fr", 12},
		{"已是目标语言", 11, "de", 11},
		{"目标语言无翻译时回退原 ID", 10, "es", 10},
		{"未登记映射回退原 ID", 99, "de", 99},
		{"空语言按默认语言解释", 10, "", 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.LocalizedID(ctx, tc.id, model.ElementTypeProduct, tc.language)
			if err != nil {
				t.Fatalf("解析失败: %v", err)
			}
			if got != tc.want {
				t.Errorf("LocalizedID(%d, %q) = %d, 期望 %d", tc.id, tc.language, got, tc.want)
			}
		})
	}
}

func TestLocalizationService_TranslationsOf(t *testing.T) {
	db := setupI18nTestDB(t)
	seedProductGroup(t, db)
	svc := newI18nService(db, nil)
	ctx := context.Background()

	got, err := svc.TranslationsOf(ctx, 11, model.ElementTypeProduct)
	if err != nil {
		t.Fatalf("查询翻译组失败: %v", err)
	}
	want := map[string]int64{"en": 10, "de": 11, "fr": 12}
	if len(got) != len(want) {
		t.Fatalf("翻译组 = %v, 期望 %v", got, want)
	}
	for lang, id := range want {
		if got[lang] != id {
			t.Errorf("翻译组[%s] = %d, 期望 %d", lang, got[lang], id)
		}
	}

	// 未登记映射返回空表
	empty, err := svc.TranslationsOf(ctx, 99, model.ElementTypeProduct)
	if err != nil {
		t.Fatalf("查询翻译组失败: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("未登记对象的翻译组应为空, 实际 %v", empty)
	}
}

// 商品与词条的映射互相隔离
func TestLocalizationService_ElementTypeIsolation(t *testing.T) {
	db := setupI18nTestDB(t)
	seedProductGroup(t, db)
	svc := newI18nService(db, nil)

	id, err := svc.LocalizedID(context.Background(), 10, model.ElementTypeTerm, "de")
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if id != 10 {
		t.Errorf("词条类型不应命中商品映射, 实际 %d", id)
	}
}

// ==================== 文案翻译测试 ====================

func TestLocalizationService_TranslateString(t *testing.T) {
	db := setupI18nTestDB(t)
	ctx := context.Background()

	svc := newI18nService(db, &stubTranslateClient{translations: map[string]string{"Tax": "Steuer"}})
	if got := svc.TranslateString(ctx, "Tax", "tax", "de"); got != "Steuer" {
		t.Errorf("翻译结果 = %q, 期望 Steuer", got)
	}
	// 默认语言不走翻译
	if got := svc.TranslateString(ctx, "Tax", "tax", "en"); got != "Tax" {
		t.Errorf("默认语言应返回原文, 实际 %q", got)
	}
	// 空文案直接返回
	if got := svc.TranslateString(ctx, "", "tax", "de"); got != "" {
		t.Errorf("空文案应返回空串, 实际 %q", got)
	}

	// 服务异常回退原文
	failing := newI18nService(db, &stubTranslateClient{fail: true})
	if got := failing.TranslateString(ctx, "Tax", "tax", "de"); got != "Tax" {
		t.Errorf("翻译失败应回退原文, 实际 %q", got)
	}
}
