// Package session は認証セッション管理のドメインロジックを提供する。
//
// アクティブなプリンシパルの保持、ログイン/サインアップ/ログアウト、
// ストアからの起動時復元、およびプリンシパル変更イベントの発行を担う。
// レジャーとレジストリはSubscribeで変更を購読し、決定的に再同期する。
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/civicpulse/internal/metrics"
	"github.com/hitoshi/civicpulse/internal/model"
	"github.com/hitoshi/civicpulse/internal/repository"
)

// Credential は許可リストの1エントリを表す。
// 一致したエントリのPrincipalテンプレートからプリンシパルが構築される。
type Credential struct {
	Email     string
	Password  string
	Principal model.Principal
}

// DefaultCredentials は現行スコープの固定許可リスト（2件）を返す。
func DefaultCredentials() []Credential {
	return []Credential{
		{
			Email:    "alex.admin@gmail.com",
			Password: "password123",
			Principal: model.Principal{
				ID:     "1",
				Name:   "Alex",
				Email:  "alex.admin@gmail.com",
				Role:   model.RoleAdmin,
				Points: 250,
			},
		},
		{
			Email:    "justjeevan@gmail.com",
			Password: "password123",
			Principal: model.Principal{
				ID:     "2",
				Name:   "Jeevan",
				Email:  "justjeevan@gmail.com",
				Role:   model.RoleUser,
				Points: 125,
			},
		},
	}
}

// Listener はプリンシパル変更イベントの購読者。
// 変更を引き起こした操作と同期的に呼び出される。pがnilの場合は匿名状態を表す。
type Listener func(ctx context.Context, p *model.Principal)

// ServiceConfig はセッションサービスの設定。
type ServiceConfig struct {
	// LoginDelay はログイン/サインアップの人工遅延。ゼロ以下で無効。
	LoginDelay time.Duration
	// Credentials は許可リスト。nilの場合はDefaultCredentialsが使用される。
	Credentials []Credential
}

// Service は認証セッションのサービス層。
// すべての状態変更は返却前にストアへ書き込まれる（永続コピー先行）。
type Service struct {
	store     repository.KVStore
	collector metrics.MetricsCollector
	logger    *slog.Logger
	delay     time.Duration
	creds     []Credential

	mu        sync.Mutex
	current   *model.Principal
	ready     bool
	listeners []Listener
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(store repository.KVStore, collector metrics.MetricsCollector, logger *slog.Logger, cfg ServiceConfig) *Service {
	creds := cfg.Credentials
	if creds == nil {
		creds = DefaultCredentials()
	}
	return &Service{
		store:     store,
		collector: collector,
		logger:    logger,
		delay:     cfg.LoginDelay,
		creds:     creds,
	}
}

// Subscribe はプリンシパル変更イベントの購読者を登録する。
// Restoreより前に登録された購読者は復元結果の通知も受け取る。
func (s *Service) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Restore はストアからアクティブなプリンシパルを復元し、購読者へ通知する。
// 値が存在しないか破損している場合は匿名状態に倒す（フェイルオープン）。
// 認証状態に依存する処理はRestore完了前に判断してはならない。
func (s *Service) Restore(ctx context.Context) error {
	value, ok, err := s.store.Get(ctx, repository.KeyActivePrincipal)
	if err != nil {
		return fmt.Errorf("failed to read stored principal: %w", err)
	}

	var restored *model.Principal
	if ok {
		var p model.Principal
		if err := json.Unmarshal([]byte(value), &p); err != nil {
			// 破損した永続値は不在として扱う
			s.logger.Warn("stored principal is corrupt, falling back to anonymous",
				slog.String("error", err.Error()),
			)
		} else {
			restored = &p
		}
	}

	s.mu.Lock()
	s.current = restored
	s.ready = true
	s.mu.Unlock()

	if restored != nil {
		s.logger.Info("session restored",
			slog.String("principal_id", restored.ID),
			slog.String("role", string(restored.Role)),
		)
	}

	s.notify(ctx, restored)
	return nil
}

// Ready はRestoreが完了したかを返す。
func (s *Service) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Login は許可リストと照合してログインする。
// 人工遅延の経過後に解決され、遅延中のセッション状態は変化しない。
// 不一致の場合はINVALID_CREDENTIALSエラーを返す。
func (s *Service) Login(ctx context.Context, email, password string) (*model.Principal, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	for _, cred := range s.creds {
		if cred.Email != email || cred.Password != password {
			continue
		}

		p := cred.Principal
		p.IssuedReports = []string{}
		p.CreatedAt = time.Now()

		if err := s.activate(ctx, &p); err != nil {
			return nil, err
		}

		s.collector.RecordLoginSuccess()
		s.logger.Info("login succeeded",
			slog.String("principal_id", p.ID),
			slog.String("role", string(p.Role)),
		)
		return &p, nil
	}

	s.collector.RecordLoginFailure()
	s.logger.Info("login rejected", slog.String("email", email))
	return nil, model.NewInvalidCredentialsError()
}

// Signup は新規プリンシパルを作成してログインする。常に成功する。
func (s *Service) Signup(ctx context.Context, name, email, password string) (*model.Principal, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	p := &model.Principal{
		ID:            uuid.New().String(),
		Name:          name,
		Email:         email,
		Role:          model.RoleUser,
		Points:        0,
		IssuedReports: []string{},
		CreatedAt:     time.Now(),
	}

	if err := s.activate(ctx, p); err != nil {
		return nil, err
	}

	s.collector.RecordSignup()
	s.logger.Info("signup completed", slog.String("principal_id", p.ID))
	return p, nil
}

// Logout はアクティブなプリンシパルを破棄し、永続コピーを削除する。
// 失敗モードはない（ストア削除の失敗はログに残し、無視する）。
func (s *Service) Logout() {
	ctx := context.Background()

	s.mu.Lock()
	prev := s.current
	s.current = nil
	s.mu.Unlock()

	if err := s.store.Delete(ctx, repository.KeyActivePrincipal); err != nil {
		s.logger.Warn("failed to delete stored principal on logout",
			slog.String("error", err.Error()),
		)
	}

	if prev != nil {
		s.logger.Info("logout completed", slog.String("principal_id", prev.ID))
	}

	s.notify(ctx, nil)
}

// Current はアクティブなプリンシパルを返す。匿名の場合はnilを返す。
func (s *Service) Current() *model.Principal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// IsAuthenticated はプリンシパルがアクティブかを返す。
func (s *Service) IsAuthenticated() bool {
	return s.Current() != nil
}

// wait は人工遅延の経過を待つ。コンテキストの中断で早期に打ち切られる。
func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// activate はプリンシパルを永続化してからアクティブにし、購読者へ通知する。
// 永続コピーの書き込みが先、メモリ状態の更新が後。書込失敗時は状態を変えない。
func (s *Service) activate(ctx context.Context, p *model.Principal) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to serialize principal: %w", err)
	}

	if err := s.store.Set(ctx, repository.KeyActivePrincipal, string(data)); err != nil {
		return fmt.Errorf("failed to persist principal: %w", err)
	}

	s.mu.Lock()
	s.current = p
	s.mu.Unlock()

	s.notify(ctx, p)
	return nil
}

// notify は登録済み購読者へ同期的に通知する。
func (s *Service) notify(ctx context.Context, p *model.Principal) {
	s.mu.Lock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l(ctx, p)
	}
}
