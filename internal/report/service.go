// Package report はプリンシパル単位の課題レポートレジャーを提供する。
//
// レジャーは追記専用で、アクティブなプリンシパルのキー
// ("reports_{principalID}") 配下に全件がJSON配列として永続化される。
// プリンシパルの変更ごとにメモリ内の一覧を破棄し、新しいプリンシパルの
// 保存値から再読込する（プリンシパル間の分離がこのコンポーネントの
// 主要な正しさ不変条件）。
package report

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
	"github.com/hitoshi/civicpulse/internal/security"
)

// Service は課題レポートレジャーのサービス層。
type Service struct {
	store     repository.KVStore
	sanitizer security.ContentSanitizerService
	collector metrics.MetricsCollector
	logger    *slog.Logger

	mu        sync.Mutex
	principal *model.Principal
	reports   []model.IssueReport
}

// NewService はServiceの新しいインスタンスを生成する。
// セッションのプリンシパル変更イベントにHandlePrincipalChangeを購読させること。
func NewService(store repository.KVStore, sanitizer security.ContentSanitizerService, collector metrics.MetricsCollector, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		sanitizer: sanitizer,
		collector: collector,
		logger:    logger,
	}
}

// HandlePrincipalChange はプリンシパル変更イベントを処理する。
// メモリ内の一覧を破棄し、新しいプリンシパルの保存値から再読込する。
// 保存値が存在しないか破損している場合は空の一覧から開始する。
func (s *Service) HandlePrincipalChange(ctx context.Context, p *model.Principal) {
	var loaded []model.IssueReport

	if p != nil {
		value, ok, err := s.store.Get(ctx, repository.ReportsKey(p.ID))
		if err != nil {
			s.logger.Warn("failed to load stored reports, starting empty",
				slog.String("principal_id", p.ID),
				slog.String("error", err.Error()),
			)
		} else if ok {
			if jsonErr := json.Unmarshal([]byte(value), &loaded); jsonErr != nil {
				s.logger.Warn("stored reports are corrupt, starting empty",
					slog.String("principal_id", p.ID),
					slog.String("error", jsonErr.Error()),
				)
				loaded = nil
			}
		}
	}

	s.mu.Lock()
	s.principal = p
	s.reports = loaded
	s.mu.Unlock()
}

// AddReport はレポートを作成してレジャーへ追記する。
// IDとCreatedAtはここで割り当てられ、以後不変。説明文は保存前にサニタイズされる。
// プリンシパルがアクティブな場合は更新後の全一覧を同期的に永続化してから
// メモリ状態を更新する。匿名の場合はメモリ内のみに保持される（永続化なし）。
func (s *Service) AddReport(ctx context.Context, draft model.ReportDraft) (*model.IssueReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := model.IssueReport{
		ID:          uuid.New().String(),
		LocationID:  draft.LocationID,
		UserID:      draft.UserID,
		UserName:    draft.UserName,
		Description: s.sanitizer.SanitizeText(draft.Description),
		Priority:    draft.Priority,
		Status:      draft.Status,
		Images:      draft.Images,
		CreatedAt:   time.Now(),
	}
	if r.Status == "" {
		r.Status = model.ReportStatusPending
	}
	if s.principal != nil {
		if r.UserID == "" {
			r.UserID = s.principal.ID
		}
		if r.UserName == "" {
			r.UserName = s.principal.Name
		}
	}

	updated := make([]model.IssueReport, len(s.reports), len(s.reports)+1)
	copy(updated, s.reports)
	updated = append(updated, r)

	persisted := false
	if s.principal != nil {
		data, err := json.Marshal(updated)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize reports: %w", err)
		}
		if err := s.store.Set(ctx, repository.ReportsKey(s.principal.ID), string(data)); err != nil {
			return nil, fmt.Errorf("failed to persist reports: %w", err)
		}
		persisted = true
	}

	s.reports = updated

	s.collector.RecordReportCreated(persisted)
	s.logger.Info("report added",
		slog.String("report_id", r.ID),
		slog.String("location_id", r.LocationID),
		slog.String("priority", string(r.Priority)),
		slog.Bool("persisted", persisted),
	)

	return &r, nil
}

// Reports は現在読み込まれているレポート一覧のコピーを返す。
func (s *Service) Reports() []model.IssueReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.IssueReport, len(s.reports))
	copy(out, s.reports)
	return out
}

// TotalReports は現在読み込まれているレポート件数を返す。
func (s *Service) TotalReports() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reports)
}

// ReportsByUser は現在読み込まれている一覧から指定ユーザーのレポートを抽出する。
// ページングや件数制限は行わない純粋なフィルタ。
func (s *Service) ReportsByUser(principalID string) []model.IssueReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.IssueReport
	for _, r := range s.reports {
		if r.UserID == principalID {
			out = append(out, r)
		}
	}
	return out
}
