// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, catalog, geo, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeInvalidCredentials     = "INVALID_CREDENTIALS"
	ErrCodeLoginRequired          = "LOGIN_REQUIRED"
	ErrCodeEventNotFound          = "EVENT_NOT_FOUND"
	ErrCodeLocationNotFound       = "LOCATION_NOT_FOUND"
	ErrCodeGeoPermissionDenied    = "GEO_PERMISSION_DENIED"
	ErrCodeGeoPositionUnavailable = "GEO_POSITION_UNAVAILABLE"
	ErrCodeGeoTimeout             = "GEO_TIMEOUT"
	ErrCodeGeoUnknown             = "GEO_UNKNOWN"
)

// NewInvalidCredentialsError はログイン失敗エラーを生成する。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "Invalid credentials",
		Category: "auth",
		Action:   "Check your email address and password, then try again.",
	}
}

// NewLoginRequiredError は認証が必要な操作を匿名状態で実行した場合のエラーを生成する。
func NewLoginRequiredError() *APIError {
	return &APIError{
		Code:     ErrCodeLoginRequired,
		Message:  "You must be logged in to perform this action",
		Category: "auth",
		Action:   "Log in or create an account, then try again.",
	}
}

// NewEventNotFoundError はイベント未検出エラーを生成する。
func NewEventNotFoundError(eventID string) *APIError {
	return &APIError{
		Code:     ErrCodeEventNotFound,
		Message:  fmt.Sprintf("Volunteer event not found: %s", eventID),
		Category: "catalog",
		Action:   "Refresh the event list and try again.",
	}
}

// NewLocationNotFoundError は設備未検出エラーを生成する。
func NewLocationNotFoundError(locationID string) *APIError {
	return &APIError{
		Code:     ErrCodeLocationNotFound,
		Message:  fmt.Sprintf("Location not found: %s", locationID),
		Category: "catalog",
		Action:   "Refresh the map and try again.",
	}
}

// NewGeoPermissionDeniedError は位置情報アクセス拒否エラーを生成する。
func NewGeoPermissionDeniedError() *APIError {
	return &APIError{
		Code:     ErrCodeGeoPermissionDenied,
		Message:  "Location access was denied",
		Category: "geo",
		Action:   "Please enable location services to use this feature.",
	}
}

// NewGeoPositionUnavailableError は位置情報取得不能エラーを生成する。
func NewGeoPositionUnavailableError() *APIError {
	return &APIError{
		Code:     ErrCodeGeoPositionUnavailable,
		Message:  "Location information is unavailable",
		Category: "geo",
		Action:   "Please try again.",
	}
}

// NewGeoTimeoutError は位置情報取得タイムアウトエラーを生成する。
func NewGeoTimeoutError() *APIError {
	return &APIError{
		Code:     ErrCodeGeoTimeout,
		Message:  "Location request timed out",
		Category: "geo",
		Action:   "Please try again.",
	}
}

// NewGeoUnknownError は位置情報関連の不明エラーを生成する。
func NewGeoUnknownError() *APIError {
	return &APIError{
		Code:     ErrCodeGeoUnknown,
		Message:  "An unknown error occurred while resolving your location",
		Category: "geo",
		Action:   "Please try again later.",
	}
}
