package domain

// Location is a geographic coordinate pair
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// PreferredLocation is a named area a contact wants to live near
type PreferredLocation struct {
	Location
	Name string `json:"name"`
}

// Property represents a real-estate listing. Listings are immutable once
// loaded at startup and are identified by their integer ID.
type Property struct {
	ID            int      `json:"id"`
	Address       string   `json:"address"`
	Location      Location `json:"location"`
	Price         float64  `json:"price"`
	AreaSqm       int      `json:"area_sqm"`
	PropertyType  string   `json:"property_type"`
	NumberOfRooms int      `json:"number_of_rooms"`
	Description   string   `json:"description,omitempty"`
}

// DisplayDescription returns the listing description, or a placeholder
// when the listing has none.
func (p Property) DisplayDescription() string {
	if p.Description == "" {
		return "No description available"
	}
	return p.Description
}

// PricePerSqm returns the unit price of the listing. A zero area is a
// data-validation failure in this domain (even land records carry a
// minimal area), so it is reported as ErrInvalidInput rather than
// allowed to divide by zero.
func (p Property) PricePerSqm() (float64, error) {
	if p.AreaSqm == 0 {
		return 0, ErrInvalidInput
	}
	return p.Price / float64(p.AreaSqm), nil
}

// Contact represents a client record with their search preferences.
// Contacts are immutable once loaded at startup.
type Contact struct {
	ID                 int                 `json:"id"`
	Name               string              `json:"name"`
	PreferredLocations []PreferredLocation `json:"preferred_locations"`
	MinBudget          float64             `json:"min_budget"`
	MaxBudget          float64             `json:"max_budget"`
	MinAreaSqm         int                 `json:"min_area_sqm"`
	MaxAreaSqm         int                 `json:"max_area_sqm"`
	PropertyTypes      []string            `json:"property_types"`
	MinRooms           int                 `json:"min_rooms"`
}

// MatchesBudget reports whether the listing price falls inside the
// contact's budget range (inclusive on both ends).
func (c Contact) MatchesBudget(p Property) bool {
	return c.MinBudget <= p.Price && p.Price <= c.MaxBudget
}

// MatchesArea reports whether the listing area falls inside the
// contact's preferred area range (inclusive on both ends).
func (c Contact) MatchesArea(p Property) bool {
	return c.MinAreaSqm <= p.AreaSqm && p.AreaSqm <= c.MaxAreaSqm
}

// MatchesRooms reports whether the listing has at least the contact's
// minimum room count.
func (c Contact) MatchesRooms(p Property) bool {
	return p.NumberOfRooms >= c.MinRooms
}

// MatchesType reports whether the listing type is one of the contact's
// preferred property types.
func (c Contact) MatchesType(p Property) bool {
	for _, t := range c.PropertyTypes {
		if t == p.PropertyType {
			return true
		}
	}
	return false
}

// PreferredLocationNames returns the names of the contact's preferred
// locations in their stored order.
func (c Contact) PreferredLocationNames() []string {
	names := make([]string, len(c.PreferredLocations))
	for i, loc := range c.PreferredLocations {
		names[i] = loc.Name
	}
	return names
}
