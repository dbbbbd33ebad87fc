// Package engine implements the command-driven state transition function of
// the card crawl. Apply is a total function: illegal or currently-impossible
// commands return the input snapshot unchanged, with feedback (if any) going
// only to the gameplay log ring.
package engine

import (
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/rng"
)

// Env carries the injected randomness and time capabilities. A fixed-seed
// Rand plus a FixedClock makes every transition reproducible.
type Env struct {
	Rand  rng.Rand
	Clock rng.Clock
}

// Apply computes the next snapshot for one command. The input state is never
// mutated; callers own both snapshots.
func Apply(s game.State, cmd game.Command, env Env) game.State {
	// Meta commands work regardless of run status.
	switch c := cmd.(type) {
	case game.InitGame:
		return game.State{}
	case game.StartGame:
		rc := &runContext{s: &game.State{}, env: env}
		if !rc.startGame(s, c) {
			return s
		}
		return *rc.s
	case game.ToggleGodMode:
		next := s.Clone()
		next.GodMode = !next.GodMode
		return next
	}

	if s.Status != game.StatusPlaying {
		return s
	}

	next := s.Clone()
	rc := &runContext{s: &next, env: env}

	if next.Merchant.Active {
		switch c := cmd.(type) {
		case game.MerchantBuy:
			rc.merchantBuy(c)
		case game.MerchantLeave:
			rc.merchantLeave()
		case game.SellItem:
			rc.merchantSell(c)
		case game.AddCoins:
			rc.addCoins(c)
		case game.ScheduleMerchantNextRound:
			rc.s.Merchant.ScheduledRound = rc.s.Round + 1
		default:
			return s
		}
		rc.enforceDefeat()
		return next
	}

	// A reset can leave the table empty; finish the pending round
	// transition before the new command is interpreted.
	rc.maybeAdvanceRound()

	acted := false
	switch c := cmd.(type) {
	case game.ActivateCurse:
		rc.activateCurse(c)
	case game.TakeCardToHand:
		acted = rc.takeCardToHand(c)
	case game.InteractWithMonster:
		acted = rc.interactWithMonster(c)
	case game.UseSpellOnTarget:
		acted = rc.useSpell(c)
	case game.SellItem:
		acted = rc.sellItem(c)
	case game.ResetHand:
		acted = rc.resetHand()
		if acted {
			// The lifecycle check is deliberately skipped here: a reset
			// clears the table and the refill happens on the next command.
			rc.s.HasActed = true
			rc.repegMirrors()
			rc.enforceDefeat()
			return next
		}
	case game.AddCoins:
		rc.addCoins(c)
	case game.ScheduleMerchantNextRound:
		rc.s.Merchant.ScheduledRound = rc.s.Round + 1
	case game.ClearScout:
		rc.s.Scout = nil
	default:
		return s
	}

	if acted {
		rc.s.HasActed = true
	}
	rc.maybeAdvanceRound()
	rc.repegMirrors()
	rc.enforceDefeat()
	return next
}
