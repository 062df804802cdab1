// Package visibility projects entities onto the field set a caller may see.
//
// Tiers are strictly additive: every field visible at Info is visible at
// Details, and every field visible at Details is visible at Full.
package visibility

import (
	"civilprotection-backend/models"
)

// Tier is a visibility level
type Tier int

const (
	Info Tier = iota
	Details
	Full
)

func (t Tier) String() string {
	switch t {
	case Details:
		return "details"
	case Full:
		return "fullData"
	default:
		return "info"
	}
}

// TierFor picks the highest tier the claims grant. Anonymous callers get Info.
func TierFor(claims *models.Claims, detailsPermission, fullPermission string) Tier {
	switch {
	case claims.HasPermission(fullPermission):
		return Full
	case claims.HasPermission(detailsPermission):
		return Details
	default:
		return Info
	}
}

// Field is one entry of a projection. It is emitted when the requested tier
// is at least Tier.
type Field[T any] struct {
	Name  string
	Tier  Tier
	Value func(T) interface{}
}

// Projection is a static per-field allow-list for one entity type
type Projection[T any] []Field[T]

// Project renders v with every field visible at tier
func (p Projection[T]) Project(v T, tier Tier) map[string]interface{} {
	out := make(map[string]interface{}, len(p))
	for _, f := range p {
		if f.Tier <= tier {
			out[f.Name] = f.Value(v)
		}
	}
	return out
}

// ProjectAll renders every element of vs at tier
func (p Projection[T]) ProjectAll(vs []T, tier Tier) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(vs))
	for _, v := range vs {
		out = append(out, p.Project(v, tier))
	}
	return out
}

// Fields returns the names visible at tier, in declaration order
func (p Projection[T]) Fields(tier Tier) []string {
	var names []string
	for _, f := range p {
		if f.Tier <= tier {
			names = append(names, f.Name)
		}
	}
	return names
}
