package utils

import (
	"sort"
	"time"

	"github.com/dtei-informatika/kegiatan-app/internal/models"
)

// ActivityDateLayout is the legacy DD-MM-YYYY form activities keep their
// dates in.
const ActivityDateLayout = "02-01-2006"

// ParseActivityDate parses a stored activity date. Malformed values return the
// zero time and false; callers treat that as the earliest possible date so a
// bad row can never break the listing.
func ParseActivityDate(value string) (time.Time, bool) {
	parsed, err := time.Parse(ActivityDateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// FormatActivityDate renders a date in the stored form.
func FormatActivityDate(t time.Time) string {
	return t.Format(ActivityDateLayout)
}

// SortActivityDetails orders listing rows by parsed date descending, then name
// ascending. Rows with unparseable dates sort as the zero time and therefore
// sink to the bottom of the listing.
func SortActivityDetails(details []models.ActivityDetail) {
	sort.SliceStable(details, func(i, j int) bool {
		di, _ := ParseActivityDate(details[i].Date)
		dj, _ := ParseActivityDate(details[j].Date)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return details[i].Name < details[j].Name
	})
}
