package models

import "time"

// Service is an event the organization covers with volunteers and vehicles.
// VehiclesNum and VolunteersNum are the declared headcounts and are not
// checked against the attached relations.
type Service struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:120;not null" json:"name" validate:"max=120"`
	Place         string    `gorm:"size:120;not null" json:"place" validate:"max=120"`
	Date          time.Time `gorm:"not null" json:"date"`
	VehiclesNum   int64     `gorm:"not null" json:"vehicles_num" validate:"gte=0"`
	VolunteersNum int64     `gorm:"not null" json:"volunteers_num" validate:"gte=0"`
	ContactName   *string   `gorm:"size:60" json:"contact_name" validate:"omitempty,max=60"`
	ContactPhone  *int64    `json:"contact_phone"`

	Vehicles   []Vehicle   `gorm:"many2many:service_vehicles;" json:"-" validate:"-"`
	Volunteers []Volunteer `gorm:"many2many:service_volunteers;" json:"-" validate:"-"`
}

// VehicleIDs returns the ids of the attached vehicles
func (s *Service) VehicleIDs() []uint {
	ids := make([]uint, 0, len(s.Vehicles))
	for _, v := range s.Vehicles {
		ids = append(ids, v.ID)
	}
	return ids
}

// VolunteerIDs returns the ids of the attached volunteers
func (s *Service) VolunteerIDs() []uint {
	ids := make([]uint, 0, len(s.Volunteers))
	for _, v := range s.Volunteers {
		ids = append(ids, v.ID)
	}
	return ids
}

// HasPassed reports whether the service date is before the wall clock of now
func (s *Service) HasPassed(now time.Time) bool {
	return s.Date.Before(WallClock(now))
}
