package geocode

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hitoshi/civicpulse/internal/metrics"
	"github.com/hitoshi/civicpulse/internal/model"
)

// newTestClient はテストサーバーを向くClientを生成する。
// SSRFガード付きクライアントはループバックを遮断するため、
// テストでは素のhttp.Clientを注入する。
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(
		server.Client(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics.NopCollector{},
		WithEndpoint(server.URL),
		WithRateLimit(1000), // テストではレート制限で待たない
	)
}

// TestReverseGeocode_Success は正常系の住所解決を検証する。
// クエリパラメータとUser-Agentヘッダの送信内容も確認する。
func TestReverseGeocode_Success(t *testing.T) {
	var gotLat, gotLon, gotFormat, gotUA string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotLat = r.URL.Query().Get("lat")
		gotLon = r.URL.Query().Get("lon")
		gotFormat = r.URL.Query().Get("format")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"display_name":"City Hall, 200 E Santa Clara St, San Jose, CA"}`)
	})

	addr, err := client.ReverseGeocode(context.Background(), 37.3382, -121.8863)
	if err != nil {
		t.Fatalf("ReverseGeocode returned error: %v", err)
	}
	if addr != "City Hall, 200 E Santa Clara St, San Jose, CA" {
		t.Errorf("address = %q", addr)
	}
	if gotLat != "37.3382" || gotLon != "-121.8863" {
		t.Errorf("lat/lon = %q/%q, want 37.3382/-121.8863", gotLat, gotLon)
	}
	if gotFormat != "json" {
		t.Errorf("format = %q, want json", gotFormat)
	}
	if gotUA == "" || gotUA == "Go-http-client/1.1" {
		t.Errorf("User-Agent = %q, want identifying value", gotUA)
	}
}

// TestReverseGeocode_ErrorStatus は非200レスポンスが位置情報取得不能エラーに
// 分類されることを検証する。
func TestReverseGeocode_ErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.ReverseGeocode(context.Background(), 37.0, -121.0)
	if err == nil {
		t.Fatal("expected error for 503 response")
	}
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *model.APIError, got %T", err)
	}
	if apiErr.Code != "GEO_POSITION_UNAVAILABLE" {
		t.Errorf("Code = %q, want GEO_POSITION_UNAVAILABLE", apiErr.Code)
	}
}

// TestReverseGeocode_MalformedBody は不正なJSONが不明エラーに分類される
// ことを検証する。
func TestReverseGeocode_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{this is not json`)
	})

	_, err := client.ReverseGeocode(context.Background(), 37.0, -121.0)
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *model.APIError, got %T (%v)", err, err)
	}
	if apiErr.Code != "GEO_UNKNOWN" {
		t.Errorf("Code = %q, want GEO_UNKNOWN", apiErr.Code)
	}
}

// TestReverseGeocode_EmptyDisplayName は住所が解決できなかったレスポンスが
// 位置情報取得不能エラーになることを検証する。
func TestReverseGeocode_EmptyDisplayName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"error":"Unable to geocode"}`)
	})

	_, err := client.ReverseGeocode(context.Background(), 0, 0)
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *model.APIError, got %T (%v)", err, err)
	}
	if apiErr.Code != "GEO_POSITION_UNAVAILABLE" {
		t.Errorf("Code = %q, want GEO_POSITION_UNAVAILABLE", apiErr.Code)
	}
}

// TestReverseGeocode_Timeout はコンテキスト期限切れがタイムアウトエラーに
// 分類されることを検証する。
func TestReverseGeocode_Timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.ReverseGeocode(ctx, 37.0, -121.0)
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *model.APIError, got %T (%v)", err, err)
	}
	if apiErr.Code != "GEO_TIMEOUT" {
		t.Errorf("Code = %q, want GEO_TIMEOUT", apiErr.Code)
	}
}

// TestReverseGeocode_RateLimited はレートリミッタが連続リクエストの間隔を
// 空けることを検証する。
func TestReverseGeocode_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"display_name":"somewhere"}`)
	}))
	t.Cleanup(server.Close)

	client := NewClient(
		server.Client(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics.NopCollector{},
		WithEndpoint(server.URL),
		WithRateLimit(20), // 50ms間隔
	)

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := client.ReverseGeocode(context.Background(), 37.0, -121.0); err != nil {
			t.Fatalf("ReverseGeocode returned error: %v", err)
		}
	}
	// 3リクエスト目はトークン補充を2回待つ
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Errorf("3 requests finished in %v, expected rate limiting to spread them", elapsed)
	}
}
