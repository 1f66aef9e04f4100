package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/derekprior/roster/internal/league"
)

type Player struct {
	FirstName    string `yaml:"first_name"`
	LastName     string `yaml:"last_name"`
	HeightInches int    `yaml:"height_inches"`
	Experienced  bool   `yaml:"experienced"`
}

// Team is a team to create when the league is built.
type Team struct {
	Name  string `yaml:"name"`
	Coach string `yaml:"coach"`
}

type Config struct {
	Players []Player `yaml:"players"`
	Teams   []Team   `yaml:"teams"`
}

// LoadFromBytes parses YAML bytes into a Config and validates it.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromFile reads and parses a YAML config file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

// LeaguePlayers converts the player list into league players.
func (c *Config) LeaguePlayers() []league.Player {
	players := make([]league.Player, len(c.Players))
	for i, p := range c.Players {
		players[i] = league.Player{
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			HeightInches: p.HeightInches,
			Experienced:  p.Experienced,
		}
	}
	return players
}

// Build creates a league from the player list and creates the configured
// teams in file order. Team names are validated by the league, not here.
func (c *Config) Build() (*league.League, error) {
	l, err := league.New(c.LeaguePlayers())
	if err != nil {
		return nil, err
	}
	for _, t := range c.Teams {
		if _, err := l.CreateTeam(strings.TrimSpace(t.Name), strings.TrimSpace(t.Coach)); err != nil {
			return nil, fmt.Errorf("creating team %q: %w", t.Name, err)
		}
	}
	return l, nil
}

func (c *Config) validate() error {
	if len(c.Players) == 0 {
		return fmt.Errorf("at least one player is required")
	}

	// Check for duplicate player names
	seen := make(map[string]int)
	for i, p := range c.Players {
		if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
			return fmt.Errorf("player %d: first_name and last_name are required", i+1)
		}
		if p.HeightInches <= 0 {
			return fmt.Errorf("player %s %s: height_inches must be positive, got %d", p.FirstName, p.LastName, p.HeightInches)
		}
		key := p.FirstName + " " + p.LastName
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("player %q appears at positions %d and %d", key, prev, i+1)
		}
		seen[key] = i + 1
	}

	return nil
}
