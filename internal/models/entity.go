package models

// Unknown is stored for text attributes the source does not provide.
const Unknown = "Unknown"

// Identifiable is implemented by every entity kept in the cache.
type Identifiable interface {
	EntityID() string
}

// Character is a person of the saga.
type Character struct {
	ID         string
	Name       string
	FilmsCount int
	BirthYear  string
	EyeColor   string
	Gender     string
	HairColor  string
	Height     int
	Mass       float64
	SkinColor  string
	// Homeworld is the planet name, nil when unknown.
	Homeworld *string
	// IsFavorite is owned by the local cache; the remote source has no such concept.
	IsFavorite bool
}

func (c Character) EntityID() string { return c.ID }

// Starship is a vessel. Crew and Passengers stay strings because the source
// data contains ranges such as "30-165".
type Starship struct {
	ID                   string
	Name                 string
	Model                string
	StarshipClass        string
	Manufacturers        []string
	Length               float64
	Crew                 string
	Passengers           string
	MaxAtmospheringSpeed int
	HyperdriveRating     float64
}

func (s Starship) EntityID() string { return s.ID }

// Planet is a world.
type Planet struct {
	ID             string
	Name           string
	Climates       []string
	Diameter       int
	RotationPeriod int
	OrbitalPeriod  int
	Gravity        string
	Population     float64
	Terrains       []string
	SurfaceWater   float64
}

func (p Planet) EntityID() string { return p.ID }

// StringOr returns s, or Unknown when s is empty.
func StringOr(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
