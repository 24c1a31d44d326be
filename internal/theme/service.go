// Package theme はテーマ設定（ダーク/ライト）のドメインロジックを提供する。
//
// 設定はブラウジングコンテキスト全体で1つ（プリンシパル単位ではない）。
// シード優先順位: 明示的に保存された値 > OS設定。OS設定の変更は、
// 明示的な値が一度も保存されていない間のみ反映される。
package theme

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hitoshi/civicpulse/internal/repository"
)

// SystemPreference はOS/ブラウザ報告のテーマ設定のインターフェース。
type SystemPreference interface {
	// PrefersDark はOSがダークテーマを希望しているかを返す。
	PrefersDark() bool
}

// PreferenceFunc は関数をSystemPreferenceとして使用するためのアダプタ。
type PreferenceFunc func() bool

// PrefersDark はSystemPreferenceを実装する。
func (f PreferenceFunc) PrefersDark() bool {
	return f()
}

// Service はテーマ設定のサービス層。
type Service struct {
	store  repository.KVStore
	system SystemPreference
	logger *slog.Logger

	mu     sync.Mutex
	dark   bool
	stored bool // 明示的な値が保存済みか
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(store repository.KVStore, system SystemPreference, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		system: system,
		logger: logger,
	}
}

// Restore は保存済み設定からテーマをシードする。
// 保存値が存在しない場合はOS設定を使用するが、その値は保存しない
// （最初の明示的なToggleまで永続化は発生しない）。
// 破損した保存値はOS設定にフォールバックする（フェイルオープン）。
func (s *Service) Restore(ctx context.Context) error {
	value, ok, err := s.store.Get(ctx, repository.KeyDarkMode)

	dark := false
	stored := false
	switch {
	case err != nil:
		s.logger.Warn("failed to read stored theme, falling back to system preference",
			slog.String("error", err.Error()),
		)
		dark = s.system.PrefersDark()
	case ok:
		if jsonErr := json.Unmarshal([]byte(value), &dark); jsonErr != nil {
			s.logger.Warn("stored theme is corrupt, falling back to system preference",
				slog.String("error", jsonErr.Error()),
			)
			dark = s.system.PrefersDark()
		} else {
			stored = true
		}
	default:
		dark = s.system.PrefersDark()
	}

	s.mu.Lock()
	s.dark = dark
	s.stored = stored
	s.mu.Unlock()

	return nil
}

// IsDarkMode は現在のテーマがダークかを返す。
func (s *Service) IsDarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

// Toggle はテーマを反転し、同期的に永続化して新しい値を返す。
// 永続コピーの書き込みが先、メモリ状態の更新が後。書込失敗時は状態を変えず、
// 反転前の値とエラーを返す。成功以降、OS設定の変更は無視される。
func (s *Service) Toggle(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := !s.dark
	data, err := json.Marshal(next)
	if err != nil {
		return s.dark, fmt.Errorf("failed to serialize theme preference: %w", err)
	}
	if err := s.store.Set(ctx, repository.KeyDarkMode, string(data)); err != nil {
		return s.dark, fmt.Errorf("failed to persist theme preference: %w", err)
	}

	s.dark = next
	s.stored = true

	s.logger.Info("theme toggled", slog.Bool("dark_mode", next))
	return next, nil
}

// HandleSystemChange はOS設定の変更を処理する。
// 明示的な値が保存されていない間のみ反映される。
func (s *Service) HandleSystemChange(dark bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stored {
		return
	}
	s.dark = dark
}
