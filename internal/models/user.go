package models

// User represents a department member that can sign in and be responsible for
// activities. Identifiers are assigned as max(user_id)+1 at signup and are not
// reused after deletion. Passwords are stored as given by the legacy dataset;
// authentication compares them verbatim.
type User struct {
	ID         int    `gorm:"column:user_id;primaryKey" json:"id"`
	Name       string `gorm:"column:name;size:100;not null" json:"name"`
	RoleID     *int   `gorm:"column:role_id" json:"role_id"`
	Role       *Role  `gorm:"foreignKey:RoleID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE" json:"role,omitempty"`
	ExternalID string `gorm:"column:external_id;size:50;uniqueIndex" json:"external_id"`
	Username   string `gorm:"column:username;size:50;uniqueIndex;not null" json:"username"`
	Password   string `gorm:"column:password;size:255;not null" json:"-"`
}

// TableName overrides the default pluralisation.
func (User) TableName() string {
	return "users"
}
