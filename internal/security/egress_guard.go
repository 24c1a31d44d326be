// Package security はアプリケーションのセキュリティ機能を提供する。
package security

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/doyensec/safeurl"
)

// EgressGuardService は外部HTTP呼び出しの防護機能のインターフェースを定義する。
// 逆ジオコーディングなど、すべての外向きHTTP通信のクライアント生成に使用する。
type EgressGuardService interface {
	// NewSafeClient はSSRF防止機能付きのHTTPクライアントを生成する。
	// safeurlライブラリにより、プライベートIP、ループバック、リンクローカル、
	// メタデータIPへのリクエストが自動的にブロックされる。
	// DNS再バインディング攻撃への対策も有効化される。
	NewSafeClient(timeout time.Duration, maxResponseSize int64) *http.Client
}

// allowedSchemes は外向き通信で許可されるURLスキーム。
var allowedSchemes = []string{"http", "https"}

// egressGuard はEgressGuardServiceの実装。
type egressGuard struct{}

// NewEgressGuard はEgressGuardServiceの新しいインスタンスを生成する。
func NewEgressGuard() *egressGuard {
	return &egressGuard{}
}

// NewSafeClient はSSRF防止機能付きのHTTPクライアントを生成する。
// safeurlのデフォルト設定により以下がブロックされる:
//   - プライベートIPアドレス (10.0.0.0/8, 172.16.0.0/12, 192.168.0.0/16)
//   - ループバックアドレス (127.0.0.0/8, ::1)
//   - リンクローカルアドレス (169.254.0.0/16, fe80::/10)
//   - メタデータIPアドレス (169.254.169.254)
//
// safeurlはnet.DialerのControlフックでDNS解決後のIPアドレスを検証するため、
// DNS再バインディング攻撃にも対応している。
//
// maxResponseSizeが正ならレスポンスボディの読み取りをそのバイト数で打ち切る。
// 超過時の読み取りはErrResponseTooLargeを返す。
func (g *egressGuard) NewSafeClient(timeout time.Duration, maxResponseSize int64) *http.Client {
	config := safeurl.GetConfigBuilder().
		SetTimeout(timeout).
		SetAllowedSchemes(allowedSchemes...).
		SetAllowedPorts(80, 443).
		Build()

	wrappedClient := safeurl.Client(config)
	client := wrappedClient.Client
	if maxResponseSize > 0 {
		client.Transport = &sizeLimitRoundTripper{base: client.Transport, max: maxResponseSize}
	}
	return client
}

// ErrResponseTooLarge はレスポンスボディが上限を超えたことを示す。
var ErrResponseTooLarge = errors.New("response body exceeds size limit")

// sizeLimitRoundTripper はレスポンスボディを上限付きリーダーでラップする
// http.RoundTripper。上限はボディ読み取り時に適用される。
type sizeLimitRoundTripper struct {
	base http.RoundTripper
	max  int64
}

func (t *sizeLimitRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	resp.Body = &limitedReadCloser{rc: resp.Body, remaining: t.max}
	return resp, nil
}

// limitedReadCloser は残量を超える読み取りでErrResponseTooLargeを返す。
type limitedReadCloser struct {
	rc        io.ReadCloser
	remaining int64
}

func (l *limitedReadCloser) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		// ちょうど上限で終わるボディはEOF、それ以外は上限超過
		var one [1]byte
		n, err := l.rc.Read(one[:])
		if n > 0 {
			return 0, ErrResponseTooLarge
		}
		return 0, err
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.rc.Read(p)
	l.remaining -= int64(n)
	return n, err
}

func (l *limitedReadCloser) Close() error {
	return l.rc.Close()
}

// compile-time interface check
var _ EgressGuardService = (*egressGuard)(nil)
