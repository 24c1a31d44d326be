package catalog

import "github.com/hitoshi/civicpulse/internal/model"

// locations は公共衛生設備の静的カタログ。
// IDの接頭辞は種別を表す（r=restroom, t=trash, m=menstrual）。
var locations = []model.Location{
	{
		ID:          "r1",
		Type:        model.LocationTypeRestroom,
		Name:        "Plaza de Cesar Chavez Restroom",
		Latitude:    37.3326,
		Longitude:   -121.8906,
		Address:     "1 Paseo De San Antonio, San Jose, CA 95113",
		Status:      model.LocationStatusGood,
		Cleanliness: 4,
		LastChecked: "2025-03-15",
		Available:   true,
	},
	{
		ID:          "r3",
		Type:        model.LocationTypeRestroom,
		Name:        "San Jose City Hall Restroom",
		Latitude:    37.3382,
		Longitude:   -121.8863,
		Address:     "200 E Santa Clara St, San Jose, CA 95113",
		Status:      model.LocationStatusNeedsAttention,
		Cleanliness: 2,
		LastChecked: "2025-03-13",
		ReportCount: 1,
		Available:   true,
	},
	{
		ID:          "t2",
		Type:        model.LocationTypeTrash,
		Name:        "St James Park Trash Bin",
		Latitude:    37.3397,
		Longitude:   -121.8897,
		Address:     "199 N 3rd St, San Jose, CA 95112",
		Status:      model.LocationStatusCritical,
		LastChecked: "2025-03-14",
		ReportCount: 2,
		Available:   true,
	},
	{
		ID:          "t3",
		Type:        model.LocationTypeTrash,
		Name:        "SAP Center Trash Bin",
		Latitude:    37.3328,
		Longitude:   -121.9012,
		Address:     "525 W Santa Clara St, San Jose, CA 95113",
		Status:      model.LocationStatusGood,
		LastChecked: "2025-03-13",
		ReportCount: 1,
		Available:   true,
	},
	{
		ID:          "m2",
		Type:        model.LocationTypeMenstrual,
		Name:        "MLK Library Product Station",
		Latitude:    37.3352,
		Longitude:   -121.8851,
		Address:     "150 E San Fernando St, San Jose, CA 95112",
		Status:      model.LocationStatusNeedsAttention,
		LastChecked: "2025-03-15",
		ReportCount: 1,
		Available:   true,
	},
}

// Locations は全設備のコピーを返す。
func Locations() []model.Location {
	out := make([]model.Location, len(locations))
	copy(out, locations)
	return out
}

// LocationByID は指定IDの設備を返す。見つからない場合はnilを返す。
func LocationByID(id string) *model.Location {
	for i := range locations {
		if locations[i].ID == id {
			l := locations[i]
			return &l
		}
	}
	return nil
}

// LocationsByType は指定種別の設備一覧を返す。
func LocationsByType(t model.LocationType) []model.Location {
	var out []model.Location
	for _, l := range locations {
		if l.Type == t {
			out = append(out, l)
		}
	}
	return out
}
