package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent read-side queries. Using a centralized singleflight.Group
// ensures that only one query runs for a given key while other callers
// wait for the result.

import "golang.org/x/sync/singleflight"

// LeaderboardGroup deduplicates leaderboard aggregation queries keyed by
// the requested limit.
var LeaderboardGroup singleflight.Group
