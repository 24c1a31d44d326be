// Package model はドメインモデルを定義する。
package model

// EventCategory はボランティアイベントの分類を表す。
type EventCategory string

const (
	// EventCategoryCleanup は清掃活動。
	EventCategoryCleanup EventCategory = "cleanup"
	// EventCategoryEducation は教育活動。
	EventCategoryEducation EventCategory = "education"
	// EventCategoryDistribution は物資配布活動。
	EventCategoryDistribution EventCategory = "distribution"
)

// VolunteerEvent はボランティアイベントを表す。静的カタログ由来の読み取り専用エンティティ。
// Dateは "2006-01-02" 形式の日付文字列。
type VolunteerEvent struct {
	ID              string
	Title           string
	Description     string
	Date            string
	Time            string
	Location        string
	Address         string
	PointsEarned    int
	ImageURL        string
	MaxParticipants int
	Category        EventCategory
}

// LocationType は公共衛生設備の種別を表す。
type LocationType string

const (
	// LocationTypeRestroom は公衆トイレ。
	LocationTypeRestroom LocationType = "restroom"
	// LocationTypeTrash はゴミ箱。
	LocationTypeTrash LocationType = "trash"
	// LocationTypeMenstrual は生理用品ステーション。
	LocationTypeMenstrual LocationType = "menstrual"
)

// LocationStatus は設備の状態評価を表す。
type LocationStatus string

const (
	// LocationStatusGood は良好な状態。
	LocationStatusGood LocationStatus = "good"
	// LocationStatusNeedsAttention は要注意状態。
	LocationStatusNeedsAttention LocationStatus = "needs-attention"
	// LocationStatusCritical は危機的状態。
	LocationStatusCritical LocationStatus = "critical"
)

// Location は地図上の公共衛生設備を表す。静的カタログ由来の読み取り専用エンティティ。
type Location struct {
	ID          string
	Type        LocationType
	Name        string
	Latitude    float64
	Longitude   float64
	Address     string
	Status      LocationStatus
	Cleanliness int
	LastChecked string
	ReportCount int
	Available   bool
	Images      []string
	Description string
}

// EducationCategory は教育コンテンツの分類を表す。
type EducationCategory string

const (
	// EducationCategoryHygiene は衛生啓発。
	EducationCategoryHygiene EducationCategory = "hygiene"
	// EducationCategoryWaste は廃棄物啓発。
	EducationCategoryWaste EducationCategory = "waste"
	// EducationCategoryMenstrual は月経衛生啓発。
	EducationCategoryMenstrual EducationCategory = "menstrual"
)

// EducationContent は教育記事を表す。静的カタログ由来の読み取り専用エンティティ。
// ContentはサニタイズされたHTML本文。
type EducationContent struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	Category    EducationCategory
	Content     string
	VideoURL    string
}
