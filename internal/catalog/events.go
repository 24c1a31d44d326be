// Package catalog は読み取り専用の静的コンテンツカタログを提供する。
//
// ボランティアイベント、公共衛生設備、教育コンテンツ、初期レポートの各配列と、
// それらに対する純粋で全域的な問い合わせ関数を含む。カタログのエンティティは
// 構築後に変更されない。
package catalog

import (
	"time"

	"github.com/hitoshi/civicpulse/internal/model"
)

// volunteerEvents はボランティアイベントの静的カタログ。
var volunteerEvents = []model.VolunteerEvent{
	{
		ID:              "event4",
		Title:           "Guadalupe River Park Cleanup",
		Description:     "Join our effort to clean up Guadalupe River Park. We'll be removing trash from the river and surrounding areas.",
		Date:            "2025-04-29",
		Time:            "8:30 AM - 11:30 AM",
		Location:        "Guadalupe River Park",
		Address:         "W Santa Clara St, San Jose, CA 95113",
		PointsEarned:    75,
		ImageURL:        "https://images.pexels.com/photos/6647175/pexels-photo-6647175.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		MaxParticipants: 25,
		Category:        model.EventCategoryCleanup,
	},
	{
		ID:              "event5",
		Title:           "Community Education Workshop",
		Description:     "Help us organize a workshop to provide essential learning skills to underserved communities in San Jose.",
		Date:            "2025-05-03",
		Time:            "10:00 AM - 1:00 PM",
		Location:        "San Jose Public Library",
		Address:         "150 E San Fernando St, San Jose, CA 95112",
		PointsEarned:    100,
		ImageURL:        "https://images.pexels.com/photos/7516363/pexels-photo-7516363.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		MaxParticipants: 20,
		Category:        model.EventCategoryEducation,
	},
	{
		ID:              "event6",
		Title:           "Food Distribution Drive",
		Description:     "Join hands to distribute food packages to families in need across downtown San Jose.",
		Date:            "2025-05-10",
		Time:            "11:00 AM - 2:00 PM",
		Location:        "Downtown San Jose Community Center",
		Address:         "200 E Santa Clara St, San Jose, CA 95113",
		PointsEarned:    80,
		ImageURL:        "https://images.pexels.com/photos/6590920/pexels-photo-6590920.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		MaxParticipants: 30,
		Category:        model.EventCategoryDistribution,
	},
	{
		ID:              "event7",
		Title:           "Clothes Donation and Distribution",
		Description:     "Help us collect and distribute clothing items to low-income families and shelters in San Jose.",
		Date:            "2025-05-18",
		Time:            "9:00 AM - 12:00 PM",
		Location:        "San Jose Civic Center",
		Address:         "200 E Santa Clara St, San Jose, CA 95113",
		PointsEarned:    85,
		ImageURL:        "https://images.pexels.com/photos/7319324/pexels-photo-7319324.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		MaxParticipants: 25,
		Category:        model.EventCategoryDistribution,
	},
}

// Events は全ボランティアイベントのコピーを返す。
func Events() []model.VolunteerEvent {
	out := make([]model.VolunteerEvent, len(volunteerEvents))
	copy(out, volunteerEvents)
	return out
}

// EventByID は指定IDのイベントを返す。見つからない場合はnilを返す。
func EventByID(id string) *model.VolunteerEvent {
	for i := range volunteerEvents {
		if volunteerEvents[i].ID == id {
			e := volunteerEvents[i]
			return &e
		}
	}
	return nil
}

// UpcomingEvents は開催日がnowの暦日以降のイベントを返す。当日開催も含む。
// 日付のパースに失敗したイベントは除外される。
func UpcomingEvents(now time.Time) []model.VolunteerEvent {
	// nowのタイムゾーンにおける暦日で比較する。ISO形式の日付文字列は
	// 辞書順と時系列順が一致する。
	today := now.Format("2006-01-02")
	var out []model.VolunteerEvent
	for _, e := range volunteerEvents {
		if _, err := time.Parse("2006-01-02", e.Date); err != nil {
			continue
		}
		if e.Date >= today {
			out = append(out, e)
		}
	}
	return out
}

// EventsByCategory は指定カテゴリのイベント一覧を返す。
func EventsByCategory(category model.EventCategory) []model.VolunteerEvent {
	var out []model.VolunteerEvent
	for _, e := range volunteerEvents {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}
