package models

// Group is a working area volunteers can join
type Group struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Name       string      `gorm:"size:120;not null" json:"name"`
	Volunteers []Volunteer `gorm:"many2many:volunteer_groups;" json:"-"`
}
