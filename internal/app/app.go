// Package app はアプリケーションの合成ルートを提供する。
//
// 全サービスを明示的な依存注入でワイヤリングし、組み込みホスト（UI層）へ
// 参照渡しする。グローバルなシングルトンは作らない。
package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/civicpulse/internal/catalog"
	"github.com/hitoshi/civicpulse/internal/config"
	"github.com/hitoshi/civicpulse/internal/database"
	"github.com/hitoshi/civicpulse/internal/geocode"
	"github.com/hitoshi/civicpulse/internal/logger"
	"github.com/hitoshi/civicpulse/internal/metrics"
	"github.com/hitoshi/civicpulse/internal/report"
	"github.com/hitoshi/civicpulse/internal/repository"
	"github.com/hitoshi/civicpulse/internal/security"
	"github.com/hitoshi/civicpulse/internal/session"
	"github.com/hitoshi/civicpulse/internal/theme"
	"github.com/hitoshi/civicpulse/internal/volunteer"
)

// App はワイヤリング済みの全サービスを保持する合成ルート。
type App struct {
	Config    *config.Config
	Store     repository.KVStore
	Session   *session.Service
	Theme     *theme.Service
	Reports   *report.Service
	Volunteer *volunteer.Service
	Geocoder  *geocode.Client
	Sanitizer security.ContentSanitizerService
	Metrics   *metrics.Collector
	Registry  *prometheus.Registry

	db *sql.DB
}

// Init はアプリケーションの初期化を行う。
// 環境変数からConfigを読み込み、JSON構造化ログをセットアップする。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.SetupDefault(w, logger.ParseLevel(cfg.LogLevel))

	return cfg, nil
}

// New は全依存関係をワイヤリングしたAppを生成する。
// マイグレーションを適用し、SQLiteストアを開き、各サービスを構築して、
// レジャーとレジストリをセッションのプリンシパル変更イベントに購読させる。
// systemPrefersDark はOS報告のテーマ設定（組み込みホストが提供する）。
func New(cfg *config.Config, systemPrefersDark func() bool) (*App, error) {
	log := slog.Default()

	if err := database.RunMigrations(cfg.DatabasePath); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := repository.NewSQLiteKVStore(db)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	sanitizer := security.NewContentSanitizer()
	egress := security.NewEgressGuard()

	sess := session.NewService(store, collector, log, session.ServiceConfig{
		LoginDelay: cfg.LoginDelay,
	})

	if systemPrefersDark == nil {
		systemPrefersDark = func() bool { return false }
	}
	themes := theme.NewService(store, theme.PreferenceFunc(systemPrefersDark), log)

	ledger := report.NewService(store, sanitizer, collector, log)
	registryVolunteer := volunteer.NewService(store, collector, log)

	// プリンシパル変更の購読はRestoreより前に行う（復元結果の通知を受けるため）
	sess.Subscribe(ledger.HandlePrincipalChange)
	sess.Subscribe(registryVolunteer.HandlePrincipalChange)

	geocoder := geocode.NewClient(
		egress.NewSafeClient(cfg.GeocodeTimeout, cfg.GeocodeMaxResponseSize),
		log,
		collector,
		geocode.WithEndpoint(cfg.GeocodeEndpoint),
		geocode.WithRateLimit(cfg.GeocodeRatePerSecond),
	)

	return &App{
		Config:    cfg,
		Store:     store,
		Session:   sess,
		Theme:     themes,
		Reports:   ledger,
		Volunteer: registryVolunteer,
		Geocoder:  geocoder,
		Sanitizer: sanitizer,
		Metrics:   collector,
		Registry:  registry,
		db:        db,
	}, nil
}

// Start はセッションとテーマを保存値から復元する。
// 認証状態に依存する処理はStart完了後にのみ呼び出すこと（明示的なロード段階）。
func (a *App) Start(ctx context.Context) error {
	if err := a.Theme.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore theme: %w", err)
	}
	if err := a.Session.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	return nil
}

// Close は保持するリソースを解放する。
func (a *App) Close() error {
	return a.db.Close()
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで実行する。
// argsにはos.Args[1:]を渡す。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("database_path", cfg.DatabasePath),
	)

	switch cmd {
	case CommandMigrate:
		if err := database.RunMigrations(cfg.DatabasePath); err != nil {
			return err
		}
		slog.Info("migrations applied")
		return nil
	default:
		return runBootstrap(cfg)
	}
}

// runBootstrap はストアの初期化とセッション復元を実行して終了する。
// 組み込みホストの起動前検証に使用する。
func runBootstrap(cfg *config.Config) error {
	a, err := New(cfg, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Start(context.Background()); err != nil {
		return err
	}

	slog.Info("bootstrap completed",
		slog.Bool("authenticated", a.Session.IsAuthenticated()),
		slog.Bool("dark_mode", a.Theme.IsDarkMode()),
		slog.Int("loaded_reports", a.Reports.TotalReports()),
		slog.Int("registered_events", len(a.Volunteer.RegisteredEventIDs())),
		slog.Int("education_entries", len(catalog.SanitizedEducationEntries(a.Sanitizer))),
	)

	return nil
}
