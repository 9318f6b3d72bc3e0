package service

import (
	"errors"
	"fmt"
)

// ==================== 错误定义 ====================

// ErrCountryUnknown 国家代码不在国家表内
var ErrCountryUnknown = errors.New("未知的国家代码")

// CategoryValidationError 分类 ID 校验失败
// 分类维度采用全量校验：任一 ID 无效则整个请求失败，携带全部无效 ID
type CategoryValidationError struct {
	InvalidIDs []int64
}

func (e *CategoryValidationError) Error() string {
	return fmt.Sprintf("无效的分类ID: %v", e.InvalidIDs)
}
