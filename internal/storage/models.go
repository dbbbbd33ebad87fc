package storage

import (
	"gorm.io/gorm"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
)

// RunSummary is the persisted record of one finished run. It is written once
// when the run reaches a terminal status and never updated afterwards.
type RunSummary struct {
	gorm.Model
	RunID          string `json:"run_id" gorm:"uniqueIndex"`
	Status         string `json:"status"`
	RunType        string `json:"run_type"`
	TemplateName   string `json:"template_name"`
	Curse          string `json:"curse"`
	Rounds         int    `json:"rounds"`
	MonstersKilled int    `json:"monsters_killed"`
	CoinsCollected int    `json:"coins_collected"`
	HPHealed       int    `json:"hp_healed"`
	DamageDealt    int    `json:"damage_dealt"`
	DamageBlocked  int    `json:"damage_blocked"`
	DamageTaken    int    `json:"damage_taken"`
	ResetsUsed     int    `json:"resets_used"`
	ItemsSold      int    `json:"items_sold"`
	Overheal       int    `json:"overheal"`
	Overdamage     int    `json:"overdamage"`
	Overdef        int    `json:"overdef"`
	StartedAt      int64  `json:"started_at"`
	EndedAt        int64  `json:"ended_at"`
}

// NewRunSummary flattens a terminal state into its persisted form.
func NewRunSummary(runID, templateName string, s *game.State) *RunSummary {
	return &RunSummary{
		RunID:          runID,
		Status:         string(s.Status),
		RunType:        string(s.Stats.RunType),
		TemplateName:   templateName,
		Curse:          string(s.Curse),
		Rounds:         s.Round,
		MonstersKilled: s.Stats.MonstersKilled,
		CoinsCollected: s.Stats.CoinsCollected,
		HPHealed:       s.Stats.HPHealed,
		DamageDealt:    s.Stats.DamageDealt,
		DamageBlocked:  s.Stats.DamageBlocked,
		DamageTaken:    s.Stats.DamageTaken,
		ResetsUsed:     s.Stats.ResetsUsed,
		ItemsSold:      s.Stats.ItemsSold,
		Overheal:       s.Overhead.Overheal,
		Overdamage:     s.Overhead.Overdamage,
		Overdef:        s.Overhead.Overdef,
		StartedAt:      s.Stats.StartedAt,
		EndedAt:        s.Stats.EndedAt,
	}
}

// DeckTemplate is a named custom deck stored as a JSON blob. The config is
// validated on write so a stored template always starts a playable run.
type DeckTemplate struct {
	gorm.Model
	Name       string `json:"name" gorm:"uniqueIndex"`
	ConfigJSON string `json:"-" gorm:"column:config_json;type:text"`
}
