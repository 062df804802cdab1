package models

import "time"

// Volunteer is a member of the organization
type Volunteer struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Name     string    `gorm:"size:12;not null" json:"name" validate:"max=12"`
	Surnames string    `gorm:"size:40;not null" json:"surnames" validate:"max=40"`
	Birthday time.Time `gorm:"type:date;not null" json:"birthday"`
	Document string    `gorm:"size:12;not null" json:"document" validate:"max=12"`
	Address  string    `gorm:"size:120;not null" json:"address" validate:"max=120"`
	Email    *string   `gorm:"size:20" json:"email" validate:"omitempty,max=20"`
	Phone1   int64     `gorm:"not null" json:"phone1"`
	Phone2   *int64    `json:"phone2"`
	Active   bool      `gorm:"not null" json:"active"`

	RoleID   uint      `gorm:"not null;index" json:"role_id"`
	Role     Role      `gorm:"foreignKey:RoleID" json:"-" validate:"-"`
	Groups   []Group   `gorm:"many2many:volunteer_groups;" json:"-" validate:"-"`
	Services []Service `gorm:"many2many:service_volunteers;" json:"-" validate:"-"`
}

// FullName returns name and surnames separated by a space
func (v *Volunteer) FullName() string {
	return v.Name + " " + v.Surnames
}

// GroupIDs returns the ids of the groups the volunteer belongs to
func (v *Volunteer) GroupIDs() []uint {
	ids := make([]uint, 0, len(v.Groups))
	for _, g := range v.Groups {
		ids = append(ids, g.ID)
	}
	return ids
}

// GroupNames returns the names of the groups the volunteer belongs to
func (v *Volunteer) GroupNames() []string {
	names := make([]string, 0, len(v.Groups))
	for _, g := range v.Groups {
		names = append(names, g.Name)
	}
	return names
}
