package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
)

type contentEntry struct {
	Key         string `json:"key"`
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	Database *struct {
		Path string `json:"path"`
	} `json:"database"`
	// Optional display metadata for spells and monster abilities. Entries
	// are keyed by the engine's kind strings; unknown keys are rejected so
	// a typo never silently falls back to placeholder icons.
	Spells    []contentEntry `json:"spells"`
	Abilities []contentEntry `json:"abilities"`
	// Optional override of the spell kinds mixed into a standard deck.
	BaseSpells []string `json:"base_spells"`
}

// LoadedConfig contains the server address, database location and the
// display-metadata snapshot handed to each new run.
type LoadedConfig struct {
	ServerAddress string
	DatabasePath  string
	Content       game.ContentMeta
}

// LoadConfig reads the configuration file at path. Every section is optional;
// a missing file is an error but an empty object yields usable defaults.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	content := game.ContentMeta{}
	if len(rc.Spells) > 0 {
		content.Spells = make(map[game.SpellKind]game.CardMeta, len(rc.Spells))
		for _, e := range rc.Spells {
			k := game.SpellKind(strings.TrimSpace(e.Key))
			if !knownSpell(k) {
				return nil, fmt.Errorf("config file %s: unknown spell key '%s'", path, e.Key)
			}
			if _, exists := content.Spells[k]; exists {
				return nil, fmt.Errorf("config file %s: duplicate spell key '%s'", path, e.Key)
			}
			content.Spells[k] = game.CardMeta{Icon: e.Icon, Name: e.Name, Description: e.Description}
		}
	}
	if len(rc.Abilities) > 0 {
		content.Abilities = make(map[game.AbilityKind]game.CardMeta, len(rc.Abilities))
		for _, e := range rc.Abilities {
			k := game.AbilityKind(strings.TrimSpace(e.Key))
			if !knownAbility(k) {
				return nil, fmt.Errorf("config file %s: unknown ability key '%s'", path, e.Key)
			}
			if _, exists := content.Abilities[k]; exists {
				return nil, fmt.Errorf("config file %s: duplicate ability key '%s'", path, e.Key)
			}
			content.Abilities[k] = game.CardMeta{Icon: e.Icon, Name: e.Name, Description: e.Description}
		}
	}
	for _, s := range rc.BaseSpells {
		k := game.SpellKind(strings.TrimSpace(s))
		if !knownSpell(k) {
			return nil, fmt.Errorf("config file %s: unknown base spell '%s'", path, s)
		}
		content.BaseSpells = append(content.BaseSpells, k)
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}
	dbPath := ""
	if rc.Database != nil {
		dbPath = strings.TrimSpace(rc.Database.Path)
	}

	return &LoadedConfig{
		ServerAddress: addr,
		DatabasePath:  dbPath,
		Content:       content,
	}, nil
}

// ValidateDeck checks a stored deck template before it can start a run: every
// value positive, every spell and ability known, and at least one full table
// of cards overall.
func ValidateDeck(dc *game.DeckConfig) error {
	if dc == nil {
		return fmt.Errorf("deck config is empty")
	}
	for _, group := range [][]int{dc.Coins, dc.Potions, dc.Shields, dc.Weapons} {
		for _, v := range group {
			if v <= 0 {
				return fmt.Errorf("card value must be positive, got %d", v)
			}
		}
	}
	for _, s := range dc.Spells {
		if !knownSpell(s) {
			return fmt.Errorf("unknown spell '%s'", s)
		}
	}
	for _, g := range dc.Monsters {
		if g.Value <= 0 {
			return fmt.Errorf("monster value must be positive, got %d", g.Value)
		}
		if g.Count <= 0 {
			return fmt.Errorf("monster count must be positive, got %d", g.Count)
		}
		if g.Ability != "" && !knownAbility(g.Ability) {
			return fmt.Errorf("unknown ability '%s'", g.Ability)
		}
	}
	if dc.CardCount() < game.TableSize {
		return fmt.Errorf("deck needs at least %d cards, got %d", game.TableSize, dc.CardCount())
	}
	return nil
}

func knownSpell(k game.SpellKind) bool {
	for _, s := range game.Spells {
		if s == k {
			return true
		}
	}
	return false
}

func knownAbility(k game.AbilityKind) bool {
	for _, a := range game.Abilities {
		if a == k {
			return true
		}
	}
	return false
}
