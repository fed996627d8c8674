package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/actor"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
)

func onlineLabel(online bool) string {
	if online {
		return "online"
	}
	return "offline"
}

// summary renders a sync state as one line.
func summary(s actor.SyncState) string {
	switch s := s.(type) {
	case actor.Loading:
		return "Loading..."
	case actor.DataLoaded:
		return fmt.Sprintf("Loaded %d characters, %d starships, %d planets (%s)",
			len(s.VisibleCharacters()), len(s.Starships), len(s.Planets), onlineLabel(s.NetworkAvailable))
	case actor.EmptyLocalNoNetwork:
		return "No cached data and no network connection"
	case actor.Error:
		return "Error: " + s.Message
	}
	return actor.StateName(s)
}

func characterLine(c models.Character) string {
	star := " "
	if c.IsFavorite {
		star = "*"
	}
	return fmt.Sprintf("%s %-6s %s", star, c.ID, c.Name)
}

func starshipLine(s models.Starship) string {
	return fmt.Sprintf("  %-6s %s (%s)", s.ID, s.Name, s.Model)
}

func planetLine(p models.Planet) string {
	return fmt.Sprintf("  %-6s %s", p.ID, p.Name)
}

func characterDetail(c models.Character) string {
	homeworld := models.Unknown
	if c.Homeworld != nil {
		homeworld = *c.Homeworld
	}
	return detail(c.Name,
		"id", c.ID,
		"favorite", strconv.FormatBool(c.IsFavorite),
		"films", strconv.Itoa(c.FilmsCount),
		"birth year", c.BirthYear,
		"gender", c.Gender,
		"height", strconv.Itoa(c.Height),
		"mass", formatFloat(c.Mass),
		"eye color", c.EyeColor,
		"hair color", c.HairColor,
		"skin color", c.SkinColor,
		"homeworld", homeworld,
	)
}

func starshipDetail(s models.Starship) string {
	return detail(s.Name,
		"id", s.ID,
		"model", s.Model,
		"class", s.StarshipClass,
		"manufacturers", strings.Join(s.Manufacturers, ", "),
		"length", formatFloat(s.Length),
		"crew", s.Crew,
		"passengers", s.Passengers,
		"max atmosphering speed", strconv.Itoa(s.MaxAtmospheringSpeed),
		"hyperdrive rating", formatFloat(s.HyperdriveRating),
	)
}

func planetDetail(p models.Planet) string {
	return detail(p.Name,
		"id", p.ID,
		"climates", strings.Join(p.Climates, ", "),
		"terrains", strings.Join(p.Terrains, ", "),
		"diameter", strconv.Itoa(p.Diameter),
		"rotation period", strconv.Itoa(p.RotationPeriod),
		"orbital period", strconv.Itoa(p.OrbitalPeriod),
		"gravity", p.Gravity,
		"population", formatFloat(p.Population),
		"surface water", formatFloat(p.SurfaceWater),
	)
}

// detail renders a title followed by one indented "label: value" line per pair.
func detail(title string, pairs ...string) string {
	var b strings.Builder
	b.WriteString(title)
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(&b, "\n  %-22s %s", pairs[i]+":", pairs[i+1])
	}
	return b.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
