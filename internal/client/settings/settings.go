// Package settings persists display preferences.
// Preferences are stored as TOML, by default in ~/.config/starwars/prefs.toml.
package settings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/filex"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultPath       = "~/.config/starwars/prefs.toml"
	DefaultTheme      = "Classic"
	DefaultTypography = "Default"
)

// Preferences holds the display choices of the user.
type Preferences struct {
	Theme      string `toml:"theme"`
	Typography string `toml:"typography"`
	DarkMode   bool   `toml:"dark_mode"`
}

func Defaults() Preferences {
	return Preferences{Theme: DefaultTheme, Typography: DefaultTypography}
}

type Store interface {
	Load(ctx context.Context) (Preferences, error)
	Save(ctx context.Context, p Preferences) error
}

// TOMLStore keeps preferences in one TOML file.
type TOMLStore struct {
	path string
}

func NewTOMLStore(path string) *TOMLStore {
	return &TOMLStore{path: path}
}

// Load reads preferences, falling back to defaults if the file is missing or unreadable.
func (s *TOMLStore) Load(ctx context.Context) (Preferences, error) {
	prefs := Defaults()

	resolved, err := resolvePath(s.path)
	if err != nil {
		return prefs, nil
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, nil // Graceful degradation
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return Defaults(), nil // Graceful degradation
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = DefaultTheme
	}
	if strings.TrimSpace(prefs.Typography) == "" {
		prefs.Typography = DefaultTypography
	}
	return prefs, nil
}

// Save writes preferences, creating directories as needed.
func (s *TOMLStore) Save(ctx context.Context, p Preferences) error {
	resolved, err := resolvePath(s.path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := filex.EnsureParentDir(resolved); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	return filex.ExpandPath(path)
}
