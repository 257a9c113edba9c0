package dto

import (
	"time"

	"github.com/dtei-informatika/kegiatan-app/internal/models"
)

// ActivityRequest carries the activity form fields. The date stays in the
// legacy DD-MM-YYYY text form end to end; the datetime tag rejects anything
// that would not survive the listing sort.
type ActivityRequest struct {
	ID            string `json:"id" validate:"required,max=10"`
	Name          string `json:"name" validate:"required,max=100"`
	Date          string `json:"date" validate:"required,datetime=02-01-2006"`
	Location      string `json:"location" validate:"max=100"`
	Category      string `json:"category" validate:"max=50"`
	ResponsibleID *int   `json:"responsible_id"`
}

// ActivityDetailResponse is one row of the listing, joined with the
// responsible user's name and role. ParsedDate is the sort key derived from
// Date; it is the zero time when Date is malformed.
type ActivityDetailResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Date            string    `json:"date"`
	ParsedDate      time.Time `json:"parsed_date"`
	Location        string    `json:"location"`
	Category        string    `json:"category"`
	ResponsibleName *string   `json:"responsible_name"`
	ResponsibleRole *string   `json:"responsible_role"`
	ResponsibleID   *int      `json:"responsible_id"`
}

// NewActivityDetailResponse maps a view row to its response form.
func NewActivityDetailResponse(detail models.ActivityDetail, parsed time.Time) ActivityDetailResponse {
	return ActivityDetailResponse{
		ID:              detail.ID,
		Name:            detail.Name,
		Date:            detail.Date,
		ParsedDate:      parsed,
		Location:        detail.Location,
		Category:        detail.Category,
		ResponsibleName: detail.ResponsibleName,
		ResponsibleRole: detail.ResponsibleRole,
		ResponsibleID:   detail.ResponsibleID,
	}
}
