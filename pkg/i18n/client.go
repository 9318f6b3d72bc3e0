package i18n

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// TranslateClient 远端翻译服务客户端行为标准
type TranslateClient interface {
	// Translate 翻译一段界面文案
	// domain: 文案域（如 "tax"）；language: 目标语言代码
	Translate(ctx context.Context, text, domain, language string) (string, error)
}

// ==================== HTTP 实现 ====================

type httpTranslateClient struct {
	client *resty.Client
}

var _ TranslateClient = (*httpTranslateClient)(nil)

// NewTranslateClient 创建翻译服务客户端
// baseURL: 翻译服务地址，如 http://i18n.internal:8090
func NewTranslateClient(baseURL string) TranslateClient {
	client := resty.New()
	client.SetBaseURL(baseURL)
	// 设置超时和重试，防止网络波动
	client.SetTimeout(5 * time.Second)
	client.SetRetryCount(2)
	client.SetHeader("Content-Type", "application/json")
	return &httpTranslateClient{client: client}
}

type translateReq struct {
	Text     string `json:"text"`
	Domain   string `json:"domain"`
	Language string `json:"language"`
}

type translateResp struct {
	Translation string `json:"translation"`
}

func (c *httpTranslateClient) Translate(ctx context.Context, text, domain, language string) (string, error) {
	var result translateResp
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(translateReq{Text: text, Domain: domain, Language: language}).
		SetResult(&result).
		Post("/api/translate")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("翻译服务返回异常状态码: %d", resp.StatusCode())
	}
	return result.Translation, nil
}
