package models

// Role is static reference data for user roles (Mahasiswa, Dosen, Staff).
type Role struct {
	ID   int    `gorm:"column:role_id;primaryKey" json:"id"`
	Name string `gorm:"column:name;size:100;not null" json:"name"`
}

// TableName overrides the default pluralisation.
func (Role) TableName() string {
	return "roles"
}
