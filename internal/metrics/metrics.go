// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// サービス層から利用する。
type MetricsCollector interface {
	RecordLoginSuccess()
	RecordLoginFailure()
	RecordSignup()
	RecordReportCreated(persisted bool)
	RecordRegistration()
	RecordUnregistration()
	RecordGeocodeFailure(reason string)
	RecordGeocodeLatency(duration time.Duration)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	loginSuccess    prometheus.Counter
	loginFail       prometheus.Counter
	signups         prometheus.Counter
	reportsCreated  *prometheus.CounterVec
	registrations   prometheus.Counter
	unregistrations prometheus.Counter
	geocodeFail     *prometheus.CounterVec
	geocodeLatency  prometheus.Histogram
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		loginSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "civicpulse_login_success_total",
			Help: "ログイン成功の合計数",
		}),
		loginFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "civicpulse_login_fail_total",
			Help: "ログイン失敗の合計数",
		}),
		signups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "civicpulse_signup_total",
			Help: "サインアップの合計数",
		}),
		reportsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "civicpulse_reports_created_total",
			Help: "作成された課題レポートの合計数（永続化有無別）",
		}, []string{"persisted"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "civicpulse_event_registrations_total",
			Help: "ボランティアイベント登録の合計数",
		}),
		unregistrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "civicpulse_event_unregistrations_total",
			Help: "ボランティアイベント登録解除の合計数",
		}),
		geocodeFail: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "civicpulse_geocode_fail_total",
			Help: "逆ジオコーディング失敗の合計数（原因別）",
		}, []string{"reason"}),
		geocodeLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "civicpulse_geocode_latency_seconds",
			Help:    "逆ジオコーディングのレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.loginSuccess,
		c.loginFail,
		c.signups,
		c.reportsCreated,
		c.registrations,
		c.unregistrations,
		c.geocodeFail,
		c.geocodeLatency,
	)

	return c
}

// RecordLoginSuccess はログイン成功を記録する。
func (c *Collector) RecordLoginSuccess() {
	c.loginSuccess.Inc()
}

// RecordLoginFailure はログイン失敗を記録する。
func (c *Collector) RecordLoginFailure() {
	c.loginFail.Inc()
}

// RecordSignup はサインアップを記録する。
func (c *Collector) RecordSignup() {
	c.signups.Inc()
}

// RecordReportCreated は課題レポート作成を記録する。
// persistedは永続化されたか（匿名投稿はメモリ内のみでfalse）を示す。
func (c *Collector) RecordReportCreated(persisted bool) {
	label := "false"
	if persisted {
		label = "true"
	}
	c.reportsCreated.WithLabelValues(label).Inc()
}

// RecordRegistration はイベント登録を記録する。
func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

// RecordUnregistration はイベント登録解除を記録する。
func (c *Collector) RecordUnregistration() {
	c.unregistrations.Inc()
}

// RecordGeocodeFailure は逆ジオコーディング失敗を原因別に記録する。
func (c *Collector) RecordGeocodeFailure(reason string) {
	c.geocodeFail.WithLabelValues(reason).Inc()
}

// RecordGeocodeLatency は逆ジオコーディングのレイテンシを記録する。
func (c *Collector) RecordGeocodeLatency(duration time.Duration) {
	c.geocodeLatency.Observe(duration.Seconds())
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
// 組み込みホストが任意のマウントポイントに取り付けることを想定している。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// compile-time interface check
var _ MetricsCollector = (*Collector)(nil)

// NopCollector は何も記録しないMetricsCollector実装。
// メトリクスを必要としないテストや組み込みホスト用。
type NopCollector struct{}

// RecordLoginSuccess は何もしない。
func (NopCollector) RecordLoginSuccess() {}

// RecordLoginFailure は何もしない。
func (NopCollector) RecordLoginFailure() {}

// RecordSignup は何もしない。
func (NopCollector) RecordSignup() {}

// RecordReportCreated は何もしない。
func (NopCollector) RecordReportCreated(persisted bool) {}

// RecordRegistration は何もしない。
func (NopCollector) RecordRegistration() {}

// RecordUnregistration は何もしない。
func (NopCollector) RecordUnregistration() {}

// RecordGeocodeFailure は何もしない。
func (NopCollector) RecordGeocodeFailure(reason string) {}

// RecordGeocodeLatency は何もしない。
func (NopCollector) RecordGeocodeLatency(duration time.Duration) {}
