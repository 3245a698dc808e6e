package domain

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is a named delivery address. Names are unique within the saved list.
type Location struct {
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// DefaultLocations are used when nothing has been saved yet.
func DefaultLocations() []Location {
	return []Location{
		{Name: "Home", Address: "Jl. Kpg Sutoyo"},
		{Name: "Office", Address: "Jl. Workstreet CBD"},
		{Name: "Apartment", Address: "Jl. Apartment Complex"},
	}
}

type LocationState struct {
	CurrentLocation Location   `json:"currentLocation"`
	SavedLocations  []Location `json:"savedLocations"`
	IsPickerOpen    bool       `json:"isPickerOpen"`
	IsAddingAddress bool       `json:"isAddingAddress"`
	FormError       *string    `json:"formError"`
}
