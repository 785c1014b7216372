package model

// Representative specialty constants.
const (
	SpecialtyPlumber     = "Plumber"
	SpecialtyElectrician = "Electrician"
	SpecialtyMechanic    = "Mechanic"
	SpecialtyGardener    = "Gardener"
	SpecialtyCleaner     = "Cleaner"
	SpecialtyOther       = "Other"
)

// Representative availability constants.
const (
	RepStatusAvailable   = "Available"
	RepStatusBusy        = "Busy"
	RepStatusUnavailable = "Unavailable"
)

// RepSpecialties lists the representative trade categories in display order.
var RepSpecialties = []string{
	SpecialtyPlumber,
	SpecialtyElectrician,
	SpecialtyMechanic,
	SpecialtyGardener,
	SpecialtyCleaner,
	SpecialtyOther,
}

// RepStatuses lists the representative availability states.
var RepStatuses = []string{
	RepStatusAvailable,
	RepStatusBusy,
	RepStatusUnavailable,
}

// Representative is a service provider eligible for assignment to issues
// of a matching specialty.
type Representative struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Category string `json:"category" db:"category"`
	Contact  string `json:"contact" db:"contact"`
	Email    string `json:"email" db:"email"`
	Status   string `json:"status" db:"status"`
}
