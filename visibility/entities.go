package visibility

import (
	"civilprotection-backend/models"
)

// Volunteer fields by tier
var Volunteer = Projection[*models.Volunteer]{
	{"id", Info, func(v *models.Volunteer) interface{} { return v.ID }},
	{"name", Info, func(v *models.Volunteer) interface{} { return v.Name }},
	{"surnames", Info, func(v *models.Volunteer) interface{} { return v.Surnames }},
	{"groups", Info, func(v *models.Volunteer) interface{} { return v.GroupNames() }},
	{"role", Info, func(v *models.Volunteer) interface{} { return v.Role.Name }},
	{"active", Info, func(v *models.Volunteer) interface{} { return v.Active }},
	{"birthday", Details, func(v *models.Volunteer) interface{} { return models.FormatDate(v.Birthday) }},
	{"phone1", Details, func(v *models.Volunteer) interface{} { return v.Phone1 }},
	{"phone2", Details, func(v *models.Volunteer) interface{} { return v.Phone2 }},
	{"services", Details, func(v *models.Volunteer) interface{} { return serviceNames(v.Services) }},
	{"document", Full, func(v *models.Volunteer) interface{} { return v.Document }},
	{"address", Full, func(v *models.Volunteer) interface{} { return v.Address }},
	{"email", Full, func(v *models.Volunteer) interface{} { return v.Email }},
}

// Vehicle fields by tier
var Vehicle = Projection[*models.Vehicle]{
	{"id", Info, func(v *models.Vehicle) interface{} { return v.ID }},
	{"name", Info, func(v *models.Vehicle) interface{} { return v.Name }},
	{"brand", Info, func(v *models.Vehicle) interface{} { return v.Brand }},
	{"license", Info, func(v *models.Vehicle) interface{} { return v.License }},
	{"active", Info, func(v *models.Vehicle) interface{} { return v.Active }},
	{"year", Details, func(v *models.Vehicle) interface{} { return v.Year }},
	{"next_itv", Details, func(v *models.Vehicle) interface{} { return models.FormatDate(v.NextITV) }},
	{"incidents", Full, func(v *models.Vehicle) interface{} { return v.Incidents }},
	{"services", Full, func(v *models.Vehicle) interface{} { return serviceNames(v.Services) }},
}

// Service fields by tier
var Service = Projection[*models.Service]{
	{"id", Info, func(s *models.Service) interface{} { return s.ID }},
	{"name", Info, func(s *models.Service) interface{} { return s.Name }},
	{"place", Info, func(s *models.Service) interface{} { return s.Place }},
	{"date", Info, func(s *models.Service) interface{} { return models.FormatFullDate(s.Date) }},
	{"vehicles_num", Details, func(s *models.Service) interface{} { return s.VehiclesNum }},
	{"vehicles", Details, func(s *models.Service) interface{} { return vehicleSummaries(s.Vehicles) }},
	{"volunteers_num", Details, func(s *models.Service) interface{} { return s.VolunteersNum }},
	{"volunteers", Details, func(s *models.Service) interface{} { return volunteerSummaries(s.Volunteers) }},
	{"contact_name", Full, func(s *models.Service) interface{} { return s.ContactName }},
	{"contact_phone", Full, func(s *models.Service) interface{} { return s.ContactPhone }},
}

// Role is public and has a single tier
var Role = Projection[*models.Role]{
	{"id", Info, func(r *models.Role) interface{} { return r.ID }},
	{"name", Info, func(r *models.Role) interface{} { return r.Name }},
	{"volunteers", Info, func(r *models.Role) interface{} {
		out := make([]map[string]interface{}, 0, len(r.Volunteers))
		for i := range r.Volunteers {
			out = append(out, map[string]interface{}{
				"name":   r.Volunteers[i].FullName(),
				"groups": r.Volunteers[i].GroupNames(),
			})
		}
		return out
	}},
}

// Group is public and has a single tier
var Group = Projection[*models.Group]{
	{"id", Info, func(g *models.Group) interface{} { return g.ID }},
	{"name", Info, func(g *models.Group) interface{} { return g.Name }},
	{"volunteers", Info, func(g *models.Group) interface{} {
		out := make([]map[string]interface{}, 0, len(g.Volunteers))
		for i := range g.Volunteers {
			out = append(out, map[string]interface{}{
				"name": g.Volunteers[i].FullName(),
				"role": g.Volunteers[i].Role.Name,
			})
		}
		return out
	}},
}

func serviceNames(services []models.Service) []string {
	names := make([]string, 0, len(services))
	for _, s := range services {
		names = append(names, s.Name)
	}
	return names
}

func vehicleSummaries(vehicles []models.Vehicle) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, map[string]interface{}{
			"id":      v.ID,
			"name":    v.Name,
			"license": v.License,
		})
	}
	return out
}

func volunteerSummaries(volunteers []models.Volunteer) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(volunteers))
	for _, v := range volunteers {
		out = append(out, map[string]interface{}{
			"id":       v.ID,
			"name":     v.Name,
			"surnames": v.Surnames,
		})
	}
	return out
}
