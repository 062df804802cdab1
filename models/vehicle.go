package models

import "time"

// Vehicle is a unit of the organization's fleet
type Vehicle struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:30;not null" json:"name" validate:"max=30"`
	Brand     string    `gorm:"size:12;not null" json:"brand" validate:"max=12"`
	License   string    `gorm:"size:7;not null" json:"license" validate:"max=7"`
	Year      int64     `gorm:"not null" json:"year"`
	NextITV   time.Time `gorm:"column:next_itv;type:date;not null" json:"next_itv"`
	Incidents *string   `gorm:"size:200" json:"incidents" validate:"omitempty,max=200"`
	Active    bool      `gorm:"not null" json:"active"`

	Services []Service `gorm:"many2many:service_vehicles;" json:"-" validate:"-"`
}
