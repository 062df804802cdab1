package models

// Seed records at or below these ids are permanent.
const (
	ProtectedVolunteerUpdateMaxID = 3
	ProtectedVolunteerDeleteMaxID = 4
	ProtectedVehicleUpdateID      = 1
	ProtectedVehicleDeleteMaxID   = 2
	ProtectedServiceUpdateMaxID   = 3
	ProtectedServiceDeleteMaxID   = 3
)

// MaxVolunteerGroups is the most groups a volunteer can belong to
const MaxVolunteerGroups = 5

// VolunteerUpdateProtected reports whether the volunteer may not be changed
func VolunteerUpdateProtected(id uint) bool { return id <= ProtectedVolunteerUpdateMaxID }

// VolunteerDeleteProtected reports whether the volunteer may not be deleted
func VolunteerDeleteProtected(id uint) bool { return id <= ProtectedVolunteerDeleteMaxID }

// VehicleUpdateProtected reports whether the vehicle may not be changed
func VehicleUpdateProtected(id uint) bool { return id == ProtectedVehicleUpdateID }

// VehicleDeleteProtected reports whether the vehicle may not be deleted
func VehicleDeleteProtected(id uint) bool { return id <= ProtectedVehicleDeleteMaxID }

// ServiceUpdateProtected reports whether the service may not be changed
func ServiceUpdateProtected(id uint) bool { return id <= ProtectedServiceUpdateMaxID }

// ServiceDeleteProtected reports whether the service may not be deleted
func ServiceDeleteProtected(id uint) bool { return id <= ProtectedServiceDeleteMaxID }
