package repository

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront_dev_v1_202608/internal/model"
)

func setupTermRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Term{}, &model.ProductTerm{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

func mustCreateTerm(t *testing.T, repo TermRepository, taxonomy, name, slug string) int64 {
	t.Helper()
	term := model.Term{Taxonomy: taxonomy, Name: name, Slug: slug}
	if err := repo.Create(context.Background(), &term); err != nil {
		t.Fatalf("写入词条失败: %v", err)
	}
	return term.ID
}

func TestTermRepo_ListByTaxonomy(t *testing.T) {
	db := setupTermRepoDB(t)
	repo := NewTermRepository(db)
	ctx := context.Background()

	mustCreateTerm(t, repo, model.TaxonomyCategory, "Games", "games")
	mustCreateTerm(t, repo, model.TaxonomyCategory, "Accessories", "accessories")
	mustCreateTerm(t, repo, model.TaxonomyPlatform, "PS5", "ps5")

	terms, err := repo.ListByTaxonomy(ctx, model.TaxonomyCategory)
	if err != nil {
		t.Fatalf("查询词条失败: %v", err)
	}
	if len(terms) != 2 {
		t.Fatalf("词条数 = %d, 期望 2", len(terms))
	}
	// 按名称排序
	if terms[0].Name != "Accessories" || terms[1].Name != "Games" {
		t.Errorf("词条顺序 = %s, %s, 期望 Accessories, Games", terms[0].Name, terms[1].Name)
	}

	empty, err := repo.ListByTaxonomy(ctx, "pa_unknown")
	if err != nil {
		t.Fatalf("查询词条失败: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("未知分类法词条数 = %d, 期望 0", len(empty))
	}
}

func TestTermRepo_FindIDsByNames_NameOrSlug(t *testing.T) {
	db := setupTermRepoDB(t)
	repo := NewTermRepository(db)
	ctx := context.Background()

	games := mustCreateTerm(t, repo, model.TaxonomyCategory, "Games", "games")
	acc := mustCreateTerm(t, repo, model.TaxonomyCategory, "Accessories", "accessories")

	// 名称与 slug 混用，未命中的忽略
	ids, err := repo.FindIDsByNames(ctx, model.TaxonomyCategory, []string{"Games", "accessories", "missing"})
	if err != nil {
		t.Fatalf("解析词条失败: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("解析出 %d 个ID, 期望 2", len(ids))
	}
	found := map[int64]bool{}
	for _, id := range ids {
		found[id] = true
	}
	if !found[games] || !found[acc] {
		t.Errorf("解析结果 = %v, 期望含 %d 与 %d", ids, games, acc)
	}
}

func TestTermRepo_NamesForProduct(t *testing.T) {
	db := setupTermRepoDB(t)
	repo := NewTermRepository(db)
	ctx := context.Background()

	games := mustCreateTerm(t, repo, model.TaxonomyCategory, "Games", "games")
	acc := mustCreateTerm(t, repo, model.TaxonomyCategory, "Accessories", "accessories")
	ps5 := mustCreateTerm(t, repo, model.TaxonomyPlatform, "PS5", "ps5")

	const productID int64 = 42
	for _, termID := range []int64{games, acc, ps5} {
		if err := repo.Attach(ctx, productID, termID); err != nil {
			t.Fatalf("关联词条失败: %v", err)
		}
	}

	names, err := repo.NamesForProduct(ctx, productID, model.TaxonomyCategory)
	if err != nil {
		t.Fatalf("查询商品词条失败: %v", err)
	}
	if len(names) != 2 || names[0] != "Accessories" || names[1] != "Games" {
		t.Errorf("商品分类 = %v, 期望 [Accessories Games]", names)
	}
}
