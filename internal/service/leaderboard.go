package service

import (
	"fmt"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/dedupe"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/storage"
)

// Leaderboard returns the top finished runs. Concurrent requests for the
// same limit share a single database query.
func (m *Manager) Leaderboard(limit int) ([]storage.RunSummary, error) {
	key := fmt.Sprintf("top:%d", limit)
	v, err, _ := dedupe.LeaderboardGroup.Do(key, func() (interface{}, error) {
		return m.repo.GetTopRuns(limit)
	})
	if err != nil {
		return nil, err
	}
	runs, _ := v.([]storage.RunSummary)
	return runs, nil
}
