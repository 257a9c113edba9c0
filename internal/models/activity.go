package models

import (
	"fmt"
	"strconv"
)

// Activity is the primary schedulable entity: a seminar, practicum or meeting
// owned by a responsible user. The date column keeps the legacy DD-MM-YYYY
// text form; parsing happens at the edges (see utils.ParseActivityDate).
// Mutations go through the activity repository only, so that every change is
// paired with an audit entry in the same transaction.
type Activity struct {
	ID            string `gorm:"column:activity_id;primaryKey;size:10" json:"id"`
	Name          string `gorm:"column:name;size:100;not null" json:"name"`
	Date          string `gorm:"column:date;size:20" json:"date"`
	Location      string `gorm:"column:location;size:100" json:"location"`
	Category      string `gorm:"column:category;size:50" json:"category"`
	ResponsibleID *int   `gorm:"column:responsible_user" json:"responsible_id"`
	Responsible   *User  `gorm:"foreignKey:ResponsibleID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE" json:"responsible,omitempty"`
}

// TableName overrides the default pluralisation.
func (Activity) TableName() string {
	return "activities"
}

// AuditState renders the row as the stable textual form stored in audit
// entries. Equality of two states is plain string comparison, so the field
// order must never change.
func (a Activity) AuditState() string {
	responsible := "NULL"
	if a.ResponsibleID != nil {
		responsible = strconv.Itoa(*a.ResponsibleID)
	}
	return fmt.Sprintf("ID: %s, Name: %s, Date: %s, Location: %s, Category: %s, ResponsibleID: %s",
		a.ID, a.Name, a.Date, a.Location, a.Category, responsible)
}

// ActivityDetail is one denormalised row of the read-only listing view that
// left-joins activities with their responsible user and role. Activities whose
// responsible user was deleted still appear, with nil responsible fields.
type ActivityDetail struct {
	ID              string  `gorm:"column:activity_id" json:"id"`
	Name            string  `gorm:"column:name" json:"name"`
	Date            string  `gorm:"column:date" json:"date"`
	Location        string  `gorm:"column:location" json:"location"`
	Category        string  `gorm:"column:category" json:"category"`
	ResponsibleName *string `gorm:"column:responsible_name" json:"responsible_name"`
	ResponsibleRole *string `gorm:"column:responsible_role_name" json:"responsible_role_name"`
	ResponsibleID   *int    `gorm:"column:responsible_user_id" json:"responsible_id"`
}

// TableName points the model at the view; it is never written to.
func (ActivityDetail) TableName() string {
	return "activity_detail_view"
}
