package engine

import (
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/deck"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
)

const (
	startingHP = 15

	// merchantChance is the per-run probability that a merchant visit gets
	// scheduled at all.
	merchantChance = 0.4
)

// startGame assembles a fresh run. Returns false when the requested deck is
// too small to deal a table, in which case the command is rejected.
func (rc *runContext) startGame(prev game.State, c game.StartGame) bool {
	cards := deck.New(c.Deck, c.Content, rc.env.Rand)
	if len(cards) < game.TableSize {
		return false
	}

	s := rc.s
	s.Deck = cards
	s.Player = game.Player{HP: startingHP, MaxHP: startingHP}
	s.Round = 1
	s.Status = game.StatusPlaying
	// The debug toggle survives across runs; everything else is fresh.
	s.GodMode = prev.GodMode

	runType := c.RunType
	if runType == "" {
		runType = game.RunStandard
	}
	if c.Deck != nil {
		runType = game.RunCustom
	}
	s.Stats.RunType = runType
	s.Stats.StartedAt = rc.env.Clock.Now()

	rc.scheduleMerchant(len(cards))
	rc.log("НОВЫЙ ЗАБЕГ: Колода собрана и перетасована")
	rc.refillTable()
	rc.enforceDefeat()
	return true
}

// scheduleMerchant rolls the once-per-run merchant visit. The target round
// is >= 2 and bounded by the run's card supply so the visit cannot land
// after the deck would already be exhausted.
func (rc *runContext) scheduleMerchant(totalCards int) {
	if rc.env.Rand.NextFloat() >= merchantChance {
		return
	}
	lastRound := totalCards / game.TableSize
	if lastRound < 2 {
		return
	}
	rc.s.Merchant.ScheduledRound = 2 + rc.pick(lastRound-1)
}
