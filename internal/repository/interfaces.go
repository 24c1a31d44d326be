// Package repository はデータ永続化のインターフェースを定義する。
//
// 永続化層はオリジンスコープの文字列キー・バリューストアとしてモデル化される。
// キーごとに論理的な所有者は1つ（セッション→ "user"、テーマ→ "darkMode"、
// レジャー→ "reports_{principalID}"、レジストリ→ "registeredEvents_{principalID}"）。
// キー間のトランザクション保証は提供しない。
package repository

import "context"

// 固定キーとプリンシパルスコープのキー接頭辞。
// ビット単位で互換性を保つこと（既存の保存データを読めなくなるため変更禁止）。
const (
	// KeyActivePrincipal はアクティブなプリンシパルのJSONを保持するキー。
	KeyActivePrincipal = "user"
	// KeyDarkMode はテーマ設定のJSON真偽値を保持するキー。
	KeyDarkMode = "darkMode"

	reportsKeyPrefix          = "reports_"
	registeredEventsKeyPrefix = "registeredEvents_"
)

// ReportsKey は指定プリンシパルのレポート一覧を保持するキーを返す。
func ReportsKey(principalID string) string {
	return reportsKeyPrefix + principalID
}

// RegisteredEventsKey は指定プリンシパルの登録イベントID一覧を保持するキーを返す。
func RegisteredEventsKey(principalID string) string {
	return registeredEventsKeyPrefix + principalID
}

// KVStore は耐久性のある文字列キー・バリューストアのインターフェース。
// Getはキーが存在しない場合 ok=false を返す（エラーではない）。
// Setは同一キーへの書き込みで値を上書きする。
// Deleteは存在しないキーに対しても成功する（冪等）。
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
