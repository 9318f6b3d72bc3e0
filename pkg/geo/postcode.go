package geo

import (
	"regexp"
	"strings"
)

// ==================== 邮编匹配 ====================

// NormalizePostcode 标准化邮编：去空格、转大写
func NormalizePostcode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// MatchPostcode 判断邮编是否命中配置的邮编规则
// 支持三种规则形式：
//   - 通配符："SW1*" 匹配所有 SW1 开头的邮编
//   - 区间："90210-90215" 按字符串字典序比较（非数值比较，兼容字母数字混合邮编）
//   - 精确："90210" 标准化后全等
//
// 规则中出现多个 "*" 时全部作为通配符处理；多个 "-" 时只按第一个拆分区间
func MatchPostcode(candidate, pattern string) bool {
	candidate = NormalizePostcode(candidate)
	pattern = NormalizePostcode(pattern)

	switch {
	case strings.Contains(pattern, "*"):
		expr := "^" + strings.ReplaceAll(regexp.QuoteMeta(pattern), `\*`, ".*") + "$"
		matched, err := regexp.MatchString(expr, candidate)
		if err != nil {
			return false
		}
		return matched

	case strings.Contains(pattern, "-"):
		parts := strings.SplitN(pattern, "-", 2)
		start, end := parts[0], parts[1]
		return candidate >= start && candidate <= end

	default:
		return candidate == pattern
	}
}
