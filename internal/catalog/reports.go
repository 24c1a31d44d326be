package catalog

import (
	"time"

	"github.com/hitoshi/civicpulse/internal/model"
)

// seedReports は初期表示用の課題レポートカタログ。
// プリンシパル固有のレジャーとは独立した、公開ビュー用の読み取り専用データ。
var seedReports = []model.IssueReport{
	{
		ID:          "rep1",
		LocationID:  "t2",
		UserID:      "2",
		UserName:    "Regular User",
		Description: "Trash bin is overflowing and needs immediate attention. There is litter spreading to nearby areas.",
		Priority:    model.PriorityHigh,
		Status:      model.ReportStatusPending,
		Images:      []string{"https://images.pexels.com/photos/2682683/pexels-photo-2682683.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"},
		CreatedAt:   time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	},
	{
		ID:          "rep2",
		LocationID:  "r3",
		UserID:      "3",
		UserName:    "Jane Smith",
		Description: "Restroom is out of paper towels and soap dispenser is broken. Needs maintenance.",
		Priority:    model.PriorityMedium,
		Status:      model.ReportStatusInProgress,
		CreatedAt:   time.Date(2025, 3, 13, 14, 45, 0, 0, time.UTC),
	},
	{
		ID:          "rep3",
		LocationID:  "m2",
		UserID:      "4",
		UserName:    "Alex Johnson",
		Description: "Menstrual product dispenser is almost empty. Please refill.",
		Priority:    model.PriorityLow,
		Status:      model.ReportStatusPending,
		CreatedAt:   time.Date(2025, 3, 15, 11, 20, 0, 0, time.UTC),
	},
	{
		ID:          "rep4",
		LocationID:  "t3",
		UserID:      "5",
		UserName:    "Maria Garcia",
		Description: "Trash bin is starting to fill up and may need service soon.",
		Priority:    model.PriorityLow,
		Status:      model.ReportStatusResolved,
		CreatedAt:   time.Date(2025, 3, 12, 16, 10, 0, 0, time.UTC),
		ResolvedAt:  timePtr(time.Date(2025, 3, 13, 9, 20, 0, 0, time.UTC)),
	},
	{
		ID:          "rep5",
		LocationID:  "t2",
		UserID:      "6",
		UserName:    "David Wong",
		Description: "Still overflowing. This needs to be addressed ASAP as it's attracting pests.",
		Priority:    model.PriorityHigh,
		Status:      model.ReportStatusPending,
		CreatedAt:   time.Date(2025, 3, 14, 15, 5, 0, 0, time.UTC),
	},
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// SeedReports は初期レポート全件のコピーを返す。
func SeedReports() []model.IssueReport {
	out := make([]model.IssueReport, len(seedReports))
	copy(out, seedReports)
	return out
}

// ReportsByLocationID は指定設備に対するレポート一覧を返す。
func ReportsByLocationID(locationID string) []model.IssueReport {
	var out []model.IssueReport
	for _, r := range seedReports {
		if r.LocationID == locationID {
			out = append(out, r)
		}
	}
	return out
}

// ReportsByStatus は指定状態のレポート一覧を返す。
func ReportsByStatus(status model.ReportStatus) []model.IssueReport {
	var out []model.IssueReport
	for _, r := range seedReports {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// PendingReportCount は未対応レポートの件数を返す。
func PendingReportCount() int {
	count := 0
	for _, r := range seedReports {
		if r.Status == model.ReportStatusPending {
			count++
		}
	}
	return count
}
