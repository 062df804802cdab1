package dal

import (
	"civilprotection-backend/models"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SeedOptions controls which records Seed inserts
type SeedOptions struct {
	// Roles and Groups are inserted in order when their table is empty, so
	// the first entry gets id 1.
	Roles  []string
	Groups []string
	// Dummy inserts demo vehicles, volunteers and services when there are
	// no volunteers yet.
	Dummy bool
}

// DefaultRoles are ranked from lowest to highest
var DefaultRoles = []string{"Volunteer", "Team Leader", "Manager", "Commander"}

// DefaultGroups ends with the group new volunteers join by default
var DefaultGroups = []string{"EMS", "Logistics", "Communications", "Social", "Administration", "Education", "Generic"}

// DefaultSeedOptions returns the stock roles and groups
func DefaultSeedOptions(dummy bool) SeedOptions {
	return SeedOptions{
		Roles:  DefaultRoles,
		Groups: DefaultGroups,
		Dummy:  dummy,
	}
}

// Seed inserts the reference data described by opts. It is idempotent:
// tables that already hold rows are left alone.
func (c *DatabaseClient) Seed(ctx context.Context, opts SeedOptions) error {
	return c.DB(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64

		if err := tx.Model(&models.Role{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 && len(opts.Roles) > 0 {
			roles := make([]models.Role, 0, len(opts.Roles))
			for _, name := range opts.Roles {
				roles = append(roles, models.Role{Name: name})
			}
			if err := tx.Create(&roles).Error; err != nil {
				return fmt.Errorf("failed to seed roles: %w", err)
			}
			c.logger.Infof("Seeded %d roles", len(roles))
		}

		if err := tx.Model(&models.Group{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 && len(opts.Groups) > 0 {
			groups := make([]models.Group, 0, len(opts.Groups))
			for _, name := range opts.Groups {
				groups = append(groups, models.Group{Name: name})
			}
			if err := tx.Create(&groups).Error; err != nil {
				return fmt.Errorf("failed to seed groups: %w", err)
			}
			c.logger.Infof("Seeded %d groups", len(groups))
		}

		if !opts.Dummy {
			return nil
		}

		if err := tx.Model(&models.Volunteer{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		if err := seedDummyResources(tx); err != nil {
			return fmt.Errorf("failed to seed dummy data: %w", err)
		}
		c.logger.Info("Seeded dummy vehicles, volunteers and services")
		return nil
	})
}

func seedDummyResources(tx *gorm.DB) error {
	groups := map[string]models.Group{}
	var all []models.Group
	if err := tx.Find(&all).Error; err != nil {
		return err
	}
	for _, g := range all {
		groups[g.Name] = g
	}
	pick := func(names ...string) []models.Group {
		out := make([]models.Group, 0, len(names))
		for _, n := range names {
			if g, ok := groups[n]; ok {
				out = append(out, g)
			}
		}
		return out
	}

	incidents := "Scuff marks on right passenger door"
	empty := ""
	rangeRover := models.Vehicle{Name: "Range Rover", Brand: "Leyland", License: "1234LRR", Year: 2015, NextITV: day(2022, 12, 31), Incidents: &empty, Active: true}
	ambulance := models.Vehicle{Name: "Ambulance Type 1", Brand: "Demers", License: "1234ATU", Year: 2020, NextITV: day(2024, 6, 1), Incidents: &incidents, Active: true}
	for _, v := range []*models.Vehicle{&rangeRover, &ambulance} {
		if err := tx.Omit("Services").Create(v).Error; err != nil {
			return err
		}
	}

	chief := volunteer("Anna", "Branco", day(2000, 6, 1), "Calle de la Suerte, 26", "anna@prote.ww", 87654321, 4,
		pick("EMS", "Communications", "Social", "Administration"))
	squadLeader := volunteer("Debra", "Reyes Sternkova", day(1994, 8, 13), "Calle de la Vida, 12", "debra@prote.ww", 0, 3,
		pick("Logistics", "Administration"))
	manager := volunteer("David", "Livingstone Algibez", day(1970, 1, 1), "Calle de la Cruz, 1", "algibez@prote.ww", 0, 2,
		pick("Generic"))
	teamMember := volunteer("Cris", "Lopez Lopez", day(1983, 12, 9), "Calle de la Anunciación, 31", "cris@prote.ww", 0, 1,
		pick("Social", "Education"))
	for _, v := range []*models.Volunteer{&chief, &squadLeader, &manager, &teamMember} {
		if err := tx.Omit("Role", "Services", "Groups.*").Create(v).Error; err != nil {
			return err
		}
	}

	services := []models.Service{
		service("Preventive service on football match", "Av. de Europa, 15 - Estadio del RFC",
			time.Date(2021, 12, 2, 11, 0, 0, 0, time.UTC), "Marcos de la Torre", 2,
			[]models.Vehicle{ambulance}, []models.Volunteer{chief, teamMember}),
		service("Preventive service on trail running", "Club Polideportivo de la Sirena",
			time.Date(2022, 4, 2, 17, 30, 0, 0, time.UTC), "Alesandra Hoobstabank", 3,
			[]models.Vehicle{rangeRover}, []models.Volunteer{squadLeader, teamMember, manager}),
		service("Fiestas del pueblo", "Av. del Ayuntamiento, S/N",
			time.Date(2021, 12, 31, 19, 0, 0, 0, time.UTC), "Yaiza Blanca", 6,
			[]models.Vehicle{ambulance, rangeRover}, []models.Volunteer{squadLeader}),
	}
	for i := range services {
		if err := tx.Omit("Vehicles.*", "Volunteers.*").Create(&services[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func volunteer(name, surnames string, birthday time.Time, address, email string, phone2 int64, roleID uint, groups []models.Group) models.Volunteer {
	v := models.Volunteer{
		Name:     name,
		Surnames: surnames,
		Birthday: birthday,
		Document: "12345678-W",
		Address:  address,
		Email:    &email,
		Phone1:   12345678,
		Active:   true,
		RoleID:   roleID,
		Groups:   groups,
	}
	if phone2 != 0 {
		v.Phone2 = &phone2
	}
	return v
}

func service(name, place string, date time.Time, contact string, volunteersNum int64, vehicles []models.Vehicle, volunteers []models.Volunteer) models.Service {
	phone := int64(12345678)
	return models.Service{
		Name:          name,
		Place:         place,
		Date:          date,
		VehiclesNum:   int64(len(vehicles)),
		VolunteersNum: volunteersNum,
		ContactName:   &contact,
		ContactPhone:  &phone,
		Vehicles:      vehicles,
		Volunteers:    volunteers,
	}
}
