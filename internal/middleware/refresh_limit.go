package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// ==================== RefreshRateLimiter 刷新限流器 ====================

// RefreshRateLimiter 手动刷新限流器
// 防止前端频繁触发销量重算等重查询任务
type RefreshRateLimiter struct {
	locks sync.Map // key -> *lockEntry
}

type lockEntry struct {
	lastTime time.Time
	mu       sync.Mutex
}

// 全局限流器实例
var globalLimiter = &RefreshRateLimiter{}

// CheckResult 检查结果
type CheckResult struct {
	Allowed    bool          // 是否允许
	RetryAfter time.Duration // 剩余冷却时间
}

// Check 检查是否允许执行，允许时顺带记录本次执行时间
// key: 限流键，如 "sales_refresh"
// interval: 冷却间隔
func (r *RefreshRateLimiter) Check(key string, interval time.Duration) CheckResult {
	actual, _ := r.locks.LoadOrStore(key, &lockEntry{})
	entry := actual.(*lockEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(entry.lastTime)
	if elapsed < interval {
		return CheckResult{Allowed: false, RetryAfter: interval - elapsed}
	}

	entry.lastTime = now
	return CheckResult{Allowed: true}
}

// ==================== 限流中间件 ====================

// RefreshRateLimit 手动刷新限流中间件
// 冷却期内的请求直接 429 返回剩余等待秒数
func RefreshRateLimit(key string, interval time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := globalLimiter.Check(key, interval)
		if !result.Allowed {
			c.AbortWithStatusJSON(429, gin.H{
				"code":    429,
				"message": fmt.Sprintf("操作过于频繁, 请 %.0f 秒后重试", result.RetryAfter.Seconds()),
			})
			return
		}
		c.Next()
	}
}
