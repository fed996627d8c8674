package cli

import (
	"testing"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/client/actor"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	loaded := actor.DataLoaded{
		Characters:        []models.Character{{ID: "1", IsFavorite: true}, {ID: "2"}},
		Planets:           []models.Planet{{ID: "1"}},
		NetworkAvailable:  true,
		ShowOnlyFavorites: true,
	}

	assert.Equal(t, "Loading...", summary(actor.Loading{}))
	assert.Equal(t, "Loaded 1 characters, 0 starships, 1 planets (online)", summary(loaded))
	assert.Equal(t, "No cached data and no network connection", summary(actor.EmptyLocalNoNetwork{}))
	assert.Equal(t, "Error: disk full", summary(actor.Error{Message: "disk full"}))
}

func TestCharacterRendering(t *testing.T) {
	c := models.Character{ID: "1", Name: "Luke Skywalker", Mass: 77.5, Height: 172}

	assert.Equal(t, "  1      Luke Skywalker", characterLine(c))
	c.IsFavorite = true
	assert.Equal(t, "* 1      Luke Skywalker", characterLine(c))

	d := characterDetail(c)
	assert.Contains(t, d, "Luke Skywalker\n")
	assert.Contains(t, d, "mass:")
	assert.Contains(t, d, "77.5")
	assert.Regexp(t, `homeworld:\s+Unknown`, d)
}

func TestStarshipAndPlanetDetail(t *testing.T) {
	s := starshipDetail(models.Starship{ID: "9", Name: "Death Star", Manufacturers: []string{"Imperial", "Sienar"}})
	assert.Contains(t, s, "Imperial, Sienar")

	p := planetDetail(models.Planet{ID: "1", Name: "Tatooine", Climates: []string{"arid"}, Population: 200000})
	assert.Contains(t, p, "arid")
	assert.Contains(t, p, "200000")
}
