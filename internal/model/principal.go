// Package model はドメインモデルを定義する。
package model

import "time"

// Role はプリンシパルの権限区分を表す。
type Role string

const (
	// RoleUser は一般ユーザー。
	RoleUser Role = "user"
	// RoleAdmin は管理者。
	RoleAdmin Role = "admin"
)

// Principal は現在操作中のユーザーアイデンティティを表す。
// ブラウジングコンテキストごとに高々1つアクティブになる（匿名の場合は不在）。
// JSONタグは永続化フォーマット（"user"キー配下）と一致させること。
type Principal struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          Role      `json:"role"`
	Points        int       `json:"points"`
	IssuedReports []string  `json:"issuedReports"`
	CreatedAt     time.Time `json:"createdAt"`
}

// IsAdmin は管理者権限を持つかを返す。
func (p *Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
