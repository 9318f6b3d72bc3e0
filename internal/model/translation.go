package model

// ==================== 翻译元素类型常量 ====================

const (
	ElementTypeProduct = "product" // 商品
	ElementTypeTerm    = "term"    // 分类法词条
)

// Translation 多语言映射表
// 同一逻辑对象的各语言版本共享 group_id；source_language 为空的行是原文（规范 ID）
type Translation struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	ElementID      int64  `gorm:"uniqueIndex:idx_element;not null;comment:语言版本对象ID"`
	ElementType    string `gorm:"size:32;uniqueIndex:idx_element;not null"`
	GroupID        int64  `gorm:"index;not null;comment:同一逻辑对象的归组ID"`
	Language       string `gorm:"size:10;not null"`
	SourceLanguage string `gorm:"size:10;comment:译自语言,空表示原文"`
}

func (Translation) TableName() string {
	return "translations"
}
