package engine

import (
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
)

// maybeAdvanceRound runs the round lifecycle check: reveal fog on a thinning
// table, declare victory on an exhausted run, open a due merchant, or clear
// blocked slots and refill.
func (rc *runContext) maybeAdvanceRound() {
	s := rc.s
	if s.Status != game.StatusPlaying || s.Merchant.Active {
		return
	}
	rc.revealFogOnThinTable()
	if s.TableCount() > 1 {
		return
	}
	if len(s.Deck) == 0 {
		if s.TableCount() == 0 {
			s.Status = game.StatusWon
			s.Stats.EndedAt = rc.env.Clock.Now()
			rc.log("ПОБЕДА! Подземелье пройдено")
		}
		return
	}
	// A due visit fires at the next round boundary even if the table skipped
	// the one-card state, e.g. a volley clearing two monsters at once.
	if s.Merchant.ScheduledRound > 0 && s.Round+1 >= s.Merchant.ScheduledRound {
		rc.openMerchant()
		return
	}
	rc.advanceRound()
}

// advanceRound is the actual round transition: blocked slots clear, the
// counter increments and the table refills.
func (rc *runContext) advanceRound() {
	rc.clearBlockedSlots()
	rc.s.Round++
	rc.refillTable()
}

// clearBlockedSlots empties blocked hand slots and unblocks them.
func (rc *runContext) clearBlockedSlots() {
	for _, slot := range rc.s.HandSlots() {
		if !slot.Blocked {
			continue
		}
		if slot.Card != nil {
			rc.discard(*slot.Card)
			slot.Card = nil
		}
		slot.Blocked = false
	}
}

// refillTable draws up to four cards into empty slots, fires on-spawn
// abilities for the newly drawn cards only, and applies fog hiding to them.
func (rc *runContext) refillTable() {
	drawn := make([]int, 0, game.TableSize)
	for i := range rc.s.Table {
		if rc.s.Table[i] != nil {
			continue
		}
		c, ok := rc.drawCard()
		if !ok {
			break
		}
		cc := c
		rc.s.Table[i] = &cc
		drawn = append(drawn, i)
	}
	rc.applyFog(drawn)
	for _, i := range drawn {
		if rc.s.Table[i].IsMonster() {
			rc.onSpawn(rc.s.Table[i])
		}
	}
}
