// Package model はドメインモデルを定義する。
package model

import "time"

// Priority は課題レポートの優先度を表す。
type Priority string

const (
	// PriorityLow は低優先度。
	PriorityLow Priority = "low"
	// PriorityMedium は中優先度。
	PriorityMedium Priority = "medium"
	// PriorityHigh は高優先度。
	PriorityHigh Priority = "high"
)

// ReportStatus は課題レポートの対応状況を表す。
type ReportStatus string

const (
	// ReportStatusPending は未対応状態。
	ReportStatusPending ReportStatus = "pending"
	// ReportStatusInProgress は対応中状態。
	ReportStatusInProgress ReportStatus = "in-progress"
	// ReportStatusResolved は解決済み状態。
	ReportStatusResolved ReportStatus = "resolved"
)

// IssueReport は公共衛生設備に対する課題レポートを表す。
// IDとCreatedAtは作成時にサービス層が割り当て、以後不変。
// JSONタグは永続化フォーマット（"reports_{principalID}"キー配下）と一致させること。
type IssueReport struct {
	ID          string       `json:"id"`
	LocationID  string       `json:"locationId"`
	UserID      string       `json:"userId"`
	UserName    string       `json:"userName"`
	Description string       `json:"description"`
	Priority    Priority     `json:"priority"`
	Status      ReportStatus `json:"status"`
	Images      []string     `json:"images,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	ResolvedAt  *time.Time   `json:"resolvedAt,omitempty"`
}

// ReportDraft はID・CreatedAt割り当て前のレポート入力を表す。
// UserID・UserName・Statusが空の場合はサービス層が補完する。
type ReportDraft struct {
	LocationID  string
	UserID      string
	UserName    string
	Description string
	Priority    Priority
	Status      ReportStatus
	Images      []string
}
