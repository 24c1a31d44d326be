// Package geocode は逆ジオコーディング連携機能を提供する。
//
// 緯度・経度から人間可読な住所文字列を取得する薄い外部呼び出しであり、
// レポート投稿フローが位置フィールドの事前入力に使用する。
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/hitoshi/civicpulse/internal/metrics"
	"github.com/hitoshi/civicpulse/internal/model"
)

// defaultEndpoint はNominatim逆ジオコーディングAPIのエンドポイント。
const defaultEndpoint = "https://nominatim.openstreetmap.org/reverse"

// Client は逆ジオコーディングAPIのクライアント。
// Nominatimの利用規約に従い、リクエストはレートリミッタで制限される
// （既定で1リクエスト/秒）。
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	collector  metrics.MetricsCollector
	limiter    *rate.Limiter
	endpoint   string // テスト用にエンドポイントを差し替え可能
}

// Option はClientの生成オプション。
type Option func(*Client)

// WithEndpoint はAPIエンドポイントを差し替える。
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithRateLimit は秒あたりのリクエスト上限を差し替える。
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// NewClient はClientの新しいインスタンスを生成する。
func NewClient(httpClient *http.Client, logger *slog.Logger, collector metrics.MetricsCollector, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		logger:     logger,
		collector:  collector,
		limiter:    rate.NewLimiter(rate.Limit(1), 1),
		endpoint:   defaultEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// reverseResponse はNominatimのレスポンスのうち使用するフィールド。
type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// ReverseGeocode は緯度・経度から人間可読な住所文字列を取得する。
// 失敗は原因分類済みのエラー（タイムアウト、位置情報取得不能、不明）として返す。
func (c *Client) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		c.collector.RecordGeocodeFailure("timeout")
		return "", model.NewGeoTimeoutError()
	}

	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("failed to parse geocode endpoint: %w", err)
	}

	q := reqURL.Query()
	q.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("format", "json")
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create geocode request: %w", err)
	}
	req.Header.Set("User-Agent", "CivicPulse/1.0 civic engagement app")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.collector.RecordGeocodeFailure("timeout")
			c.logger.Warn("reverse geocode request timed out",
				slog.String("error", err.Error()),
			)
			return "", model.NewGeoTimeoutError()
		}
		c.collector.RecordGeocodeFailure("unavailable")
		c.logger.Warn("reverse geocode request failed",
			slog.String("error", err.Error()),
		)
		return "", model.NewGeoPositionUnavailableError()
	}
	defer resp.Body.Close()

	c.collector.RecordGeocodeLatency(time.Since(start))

	if resp.StatusCode != http.StatusOK {
		c.collector.RecordGeocodeFailure("status")
		c.logger.Warn("reverse geocode returned error status",
			slog.Int("http_status", resp.StatusCode),
		)
		return "", model.NewGeoPositionUnavailableError()
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.collector.RecordGeocodeFailure("parse")
		c.logger.Warn("failed to decode reverse geocode response",
			slog.String("error", err.Error()),
		)
		return "", model.NewGeoUnknownError()
	}

	if body.DisplayName == "" {
		c.collector.RecordGeocodeFailure("empty")
		return "", model.NewGeoPositionUnavailableError()
	}

	return body.DisplayName, nil
}

// isTimeout はエラーがタイムアウト起因かを判定する。
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}
