// Package volunteer はプリンシパル単位のボランティアイベント登録レジストリを提供する。
//
// 登録集合はイベントIDの集合として "registeredEvents_{principalID}" キー配下に
// JSON文字列配列で永続化される。派生する詳細一覧（解決済みイベント）は
// 常に開催日の昇順（同日はイベントIDの昇順）で維持され、そのID集合は
// 登録集合と厳密に一致する。
package volunteer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/hitoshi/civicpulse/internal/catalog"
	"github.com/hitoshi/civicpulse/internal/metrics"
	"github.com/hitoshi/civicpulse/internal/model"
	"github.com/hitoshi/civicpulse/internal/repository"
)

// Service はボランティア登録レジストリのサービス層。
type Service struct {
	store     repository.KVStore
	collector metrics.MetricsCollector
	logger    *slog.Logger

	mu        sync.Mutex
	principal *model.Principal
	ids       []string
	members   map[string]struct{}
	details   []model.VolunteerEvent
}

// NewService はServiceの新しいインスタンスを生成する。
// セッションのプリンシパル変更イベントにHandlePrincipalChangeを購読させること。
func NewService(store repository.KVStore, collector metrics.MetricsCollector, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		collector: collector,
		logger:    logger,
		members:   make(map[string]struct{}),
	}
}

// HandlePrincipalChange はプリンシパル変更イベントを処理する。
// 登録集合を破棄し、新しいプリンシパルの保存値から再読込する。
// 保存値が存在しないか破損している場合は空集合から開始する。
// 過去の挙動で保存された重複IDは読込時に除去される。
func (s *Service) HandlePrincipalChange(ctx context.Context, p *model.Principal) {
	var loaded []string

	if p != nil {
		value, ok, err := s.store.Get(ctx, repository.RegisteredEventsKey(p.ID))
		if err != nil {
			s.logger.Warn("failed to load stored registrations, starting empty",
				slog.String("principal_id", p.ID),
				slog.String("error", err.Error()),
			)
		} else if ok {
			if jsonErr := json.Unmarshal([]byte(value), &loaded); jsonErr != nil {
				s.logger.Warn("stored registrations are corrupt, starting empty",
					slog.String("principal_id", p.ID),
					slog.String("error", jsonErr.Error()),
				)
				loaded = nil
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.principal = p
	s.ids = s.ids[:0]
	s.members = make(map[string]struct{})
	for _, id := range loaded {
		if _, seen := s.members[id]; seen {
			continue
		}
		s.members[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
	s.recomputeDetails()
}

// Register はアクティブなプリンシパルの登録集合にイベントを追加する。
// 匿名状態ではLOGIN_REQUIREDエラーで拒否される（黙ってバッファしない）。
// 既登録IDの再登録は冪等（集合・詳細一覧・カウンタは変化しない）。
func (s *Service) Register(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.principal == nil {
		return model.NewLoginRequiredError()
	}
	if catalog.EventByID(eventID) == nil {
		return model.NewEventNotFoundError(eventID)
	}
	if _, ok := s.members[eventID]; ok {
		// 重複登録は集合として冪等に扱う
		return nil
	}

	updated := make([]string, len(s.ids), len(s.ids)+1)
	copy(updated, s.ids)
	updated = append(updated, eventID)

	if err := s.persist(ctx, updated); err != nil {
		return err
	}

	s.ids = updated
	s.members[eventID] = struct{}{}
	s.recomputeDetails()

	s.collector.RecordRegistration()
	s.logger.Info("event registration added",
		slog.String("principal_id", s.principal.ID),
		slog.String("event_id", eventID),
		slog.Int("registered_count", len(s.ids)),
	)
	return nil
}

// Unregister は登録集合からイベントを取り除く。
// 未登録IDの解除は何もしない（エラーではない）。
func (s *Service) Unregister(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[eventID]; !ok {
		return nil
	}

	updated := make([]string, 0, len(s.ids)-1)
	for _, id := range s.ids {
		if id != eventID {
			updated = append(updated, id)
		}
	}

	if err := s.persist(ctx, updated); err != nil {
		return err
	}

	s.ids = updated
	delete(s.members, eventID)
	s.recomputeDetails()

	s.collector.RecordUnregistration()
	s.logger.Info("event registration removed",
		slog.String("principal_id", s.principal.ID),
		slog.String("event_id", eventID),
		slog.Int("registered_count", len(s.ids)),
	)
	return nil
}

// IsRegistered は指定イベントが登録済みかをO(1)で返す。
func (s *Service) IsRegistered(eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.members[eventID]
	return ok
}

// RegisteredEventIDs は登録中のイベントID一覧のコピーを返す。
func (s *Service) RegisteredEventIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// EventDetails は登録イベントの解決済み詳細一覧のコピーを返す。
// 開催日の昇順（同日はイベントIDの昇順）で整列される。
func (s *Service) EventDetails() []model.VolunteerEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.VolunteerEvent, len(s.details))
	copy(out, s.details)
	return out
}

// Count は登録カウンタを返す。値は len(集合) + 1。
// +1のオフセットは移行元の挙動から引き継いだ規約であり、
// 既存の表示がこの値に依存しているため文字どおり維持する。
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids) + 1
}

// PotentialPoints は登録イベントで獲得可能なポイントの合計を返す。
func (s *Service) PotentialPoints() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, e := range s.details {
		total += e.PointsEarned
	}
	return total
}

// persist は登録ID一覧をアクティブなプリンシパルのキーへ書き込む。
// 呼び出し側がロックを保持していること。
func (s *Service) persist(ctx context.Context, ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to serialize registrations: %w", err)
	}
	if err := s.store.Set(ctx, repository.RegisteredEventsKey(s.principal.ID), string(data)); err != nil {
		return fmt.Errorf("failed to persist registrations: %w", err)
	}
	return nil
}

// recomputeDetails は登録集合から詳細一覧を再計算する。
// カタログで解決できないIDは詳細一覧から除外される（集合には残る）。
// 整列は開催日の昇順、同日はイベントIDの昇順（決定的な全順序）。
// 呼び出し側がロックを保持していること。
func (s *Service) recomputeDetails() {
	details := make([]model.VolunteerEvent, 0, len(s.ids))
	for _, id := range s.ids {
		if e := catalog.EventByID(id); e != nil {
			details = append(details, *e)
		}
	}
	// Dateは "2006-01-02" 形式のため辞書順比較が日付順と一致する
	sort.Slice(details, func(i, j int) bool {
		if details[i].Date != details[j].Date {
			return details[i].Date < details[j].Date
		}
		return details[i].ID < details[j].ID
	})
	s.details = details
}
