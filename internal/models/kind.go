package models

import "fmt"

// Kind names one of the entity kinds served by the catalog.
type Kind string

const (
	KindCharacter Kind = "character"
	KindStarship  Kind = "starship"
	KindPlanet    Kind = "planet"
)

// Kinds lists every entity kind in a stable order.
var Kinds = []Kind{KindCharacter, KindStarship, KindPlanet}

// ParseKind accepts singular and plural spellings ("planet", "planets").
func ParseKind(s string) (Kind, error) {
	switch s {
	case "character", "characters", "people":
		return KindCharacter, nil
	case "starship", "starships", "ship", "ships":
		return KindStarship, nil
	case "planet", "planets":
		return KindPlanet, nil
	}
	return "", fmt.Errorf("unknown kind %q", s)
}
