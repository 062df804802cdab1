package models

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of an access token issued by the identity
// provider. Permissions is nil when the token carries no permissions claim.
type Claims struct {
	jwt.RegisteredClaims
	Permissions []string `json:"permissions"`
}

// HasPermission reports whether the permission was granted to the caller.
func (c *Claims) HasPermission(permission string) bool {
	if c == nil {
		return false
	}
	return slices.Contains(c.Permissions, permission)
}

// Permission names granted by the identity provider
const (
	PermGetVolunteersDetails = "get:volunteers-details"
	PermGetVolunteersFull    = "get:volunteers-full"
	PermPostVolunteers       = "post:volunteers"
	PermPatchVolunteers      = "patch:volunteers"
	PermDeleteVolunteers     = "delete:volunteers"

	PermGetVehiclesDetails = "get:vehicles-details"
	PermGetVehiclesFull    = "get:vehicles-full"
	PermPostVehicles       = "post:vehicles"
	PermPatchVehicles      = "patch:vehicles"
	PermDeleteVehicles     = "delete:vehicles"

	PermGetServicesDetails = "get:services-details"
	PermGetServicesFull    = "get:services-full"
	PermPostServices       = "post:services"
	PermPatchServices      = "patch:services"
	PermDeleteServices     = "delete:services"
)
