package repository

import (
	"context"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront_dev_v1_202608/internal/model"
)

func setupZoneRepoDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	err = db.AutoMigrate(&model.ShippingZone{}, &model.ShippingZoneLocation{}, &model.ShippingMethod{})
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

// 兜底区域由仓储合成：无数据行，挂 zone_id = 0 的方式，恒在列表末尾
func TestShippingZoneRepo_ListZones_SynthesizesRestOfWorld(t *testing.T) {
	db := setupZoneRepoDB(t)
	repo := NewShippingZoneRepository(db)
	ctx := context.Background()

	err := repo.CreateZone(ctx, &model.ShippingZone{
		Name: "Domestic", SortOrder: 2,
		Locations: []model.ShippingZoneLocation{{Type: model.ZoneLocationCountry, Code: "US"}},
	})
	if err != nil {
		t.Fatalf("写入区域失败: %v", err)
	}
	err = repo.CreateZone(ctx, &model.ShippingZone{Name: "Priority", SortOrder: 1})
	if err != nil {
		t.Fatalf("写入区域失败: %v", err)
	}
	err = repo.CreateMethod(ctx, &model.ShippingMethod{
		ZoneID: model.RestOfWorldZoneID, MethodID: model.MethodFlatRate,
		Title: "International", Enabled: true,
		Settings: datatypes.JSONMap{"cost": "30"},
	})
	if err != nil {
		t.Fatalf("写入兜底方式失败: %v", err)
	}

	zones, err := repo.ListZones(ctx)
	if err != nil {
		t.Fatalf("查询区域失败: %v", err)
	}
	if len(zones) != 3 {
		t.Fatalf("区域数 = %d, 期望 3（含合成的兜底区域）", len(zones))
	}

	// sort_order 排序，兜底区域殿后
	if zones[0].Name != "Priority" || zones[1].Name != "Domestic" {
		t.Errorf("区域顺序 = %s, %s, 期望 Priority, Domestic", zones[0].Name, zones[1].Name)
	}
	rest := zones[2]
	if rest.ID != model.RestOfWorldZoneID || rest.Name != "Rest of the world" {
		t.Errorf("兜底区域 = %+v", rest)
	}
	if len(rest.Locations) != 0 {
		t.Errorf("兜底区域不应有位置规则: %+v", rest.Locations)
	}
	if len(rest.Methods) != 1 || rest.Methods[0].Title != "International" {
		t.Errorf("兜底区域方式 = %+v", rest.Methods)
	}
}

func TestShippingZoneRepo_GetZone_RestOfWorld(t *testing.T) {
	db := setupZoneRepoDB(t)
	repo := NewShippingZoneRepository(db)
	ctx := context.Background()

	err := repo.CreateMethod(ctx, &model.ShippingMethod{
		ZoneID: model.RestOfWorldZoneID, MethodID: model.MethodFlatRate, Title: "International", Enabled: true,
	})
	if err != nil {
		t.Fatalf("写入兜底方式失败: %v", err)
	}

	zone, err := repo.GetZone(ctx, model.RestOfWorldZoneID)
	if err != nil {
		t.Fatalf("查询兜底区域失败: %v", err)
	}
	if zone.Name != "Rest of the world" || len(zone.Methods) != 1 {
		t.Errorf("兜底区域 = %+v", zone)
	}
}
