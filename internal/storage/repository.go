package storage

import "github.com/beliaevvc/EmojiCrawl-sub000/internal/game"

type Repository interface {
	// SaveRunSummary persists a finished run exactly once; saving the same
	// run ID again is a no-op.
	SaveRunSummary(s *RunSummary) error
	GetRunSummary(runID string) (*RunSummary, error)
	// GetTopRuns returns finished runs ordered for the leaderboard: won runs
	// first, then by monsters killed and by damage dealt.
	GetTopRuns(limit int) ([]RunSummary, error)

	CreateTemplate(name string, cfg *game.DeckConfig) error
	GetTemplate(name string) (*game.DeckConfig, error)
	ListTemplates() ([]string, error)
	DeleteTemplate(name string) error
}
