package models

// Role is the rank a volunteer holds in the organization
type Role struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Name       string      `gorm:"size:120;not null" json:"name"`
	Volunteers []Volunteer `gorm:"foreignKey:RoleID" json:"-"`
}
