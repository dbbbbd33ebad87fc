package engine

import (
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/deck"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
)

// runContext wraps the snapshot being built plus the injected capabilities.
// All handlers mutate rc.s, which is always a private clone.
type runContext struct {
	s   *game.State
	env Env
}

func (rc *runContext) log(msg string) {
	rc.s.Logs = append(rc.s.Logs, game.LogEntry{Message: msg, At: rc.env.Clock.Now()})
	if n := len(rc.s.Logs); n > game.MaxLogEntries {
		rc.s.Logs = rc.s.Logs[n-game.MaxLogEntries:]
	}
}

// pick maps one random draw onto [0, n).
func (rc *runContext) pick(n int) int {
	i := int(rc.env.Rand.NextFloat() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// findTable locates a table card by id. Returns slot -1 when absent.
func (rc *runContext) findTable(id string) (int, *game.Card) {
	for i, c := range rc.s.Table {
		if c != nil && c.ID == id {
			return i, c
		}
	}
	return -1, nil
}

// findHand locates a card held in one of the three hand slots.
func (rc *runContext) findHand(id string) *game.HandSlot {
	for _, slot := range rc.s.HandSlots() {
		if slot.Card != nil && slot.Card.ID == id {
			return slot
		}
	}
	return nil
}

func (rc *runContext) discard(c game.Card) {
	c.Hidden = false
	rc.s.Discard = append(rc.s.Discard, c)
}

// returnToDeck shuffles a card back into the deck.
func (rc *runContext) returnToDeck(c game.Card) {
	c.Hidden = false
	rc.s.Deck = append(rc.s.Deck, c)
	deck.Shuffle(rc.s.Deck, rc.env.Rand)
}

// drawCard pops the deck top. Second return is false on an empty deck.
func (rc *runContext) drawCard() (game.Card, bool) {
	n := len(rc.s.Deck)
	if n == 0 {
		return game.Card{}, false
	}
	c := rc.s.Deck[n-1]
	rc.s.Deck = rc.s.Deck[:n-1]
	return c, true
}

// hasTableAbility reports whether any table monster carries the ability.
func (rc *runContext) hasTableAbility(k game.AbilityKind) bool {
	for _, c := range rc.s.Table {
		if c.IsMonster() && c.Ability == k {
			return true
		}
	}
	return false
}

// damagePlayer applies damage to the hero, honoring god mode, and returns
// the HP actually lost.
func (rc *runContext) damagePlayer(n int) int {
	if n <= 0 {
		return 0
	}
	if rc.s.GodMode {
		rc.log("РЕЖИМ БОГА: урон проигнорирован")
		return 0
	}
	if n > rc.s.Player.HP {
		n = rc.s.Player.HP
	}
	rc.s.Player.HP -= n
	rc.s.Stats.DamageTaken += n
	return n
}

// healPlayer restores HP up to the maximum and returns the amount applied;
// the excess is the caller's to account for.
func (rc *runContext) healPlayer(n int) (applied, excess int) {
	if n <= 0 {
		return 0, 0
	}
	needed := rc.s.Player.MaxHP - rc.s.Player.HP
	applied = n
	if applied > needed {
		applied = needed
	}
	rc.s.Player.HP += applied
	rc.s.Stats.HPHealed += applied
	return applied, n - applied
}

// bestWeaponDamage is the strongest hit the hero could land right now with
// an equipped weapon, tempering included.
func (rc *runContext) bestWeaponDamage() int {
	best := 0
	for _, slot := range rc.s.HandSlots() {
		if slot.Card.IsWeapon() {
			d := slot.Card.Value + rc.temperingBonus()
			if d > best {
				best = d
			}
		}
	}
	return best
}

// repegMirrors re-pins every mirror monster's HP to the best available
// weapon damage. Runs after every state change.
func (rc *runContext) repegMirrors() {
	for _, c := range rc.s.Table {
		if !c.IsMonster() || c.Ability != game.AbilityMirror {
			continue
		}
		best := rc.bestWeaponDamage()
		if best <= 0 {
			c.Value = c.MaxValue
			continue
		}
		if best > c.MaxValue {
			best = c.MaxValue
		}
		if best < 1 {
			best = 1
		}
		c.Value = best
	}
}

// enforceDefeat is the one hard invariant: a dead hero ends the run no
// matter which command path got here.
func (rc *runContext) enforceDefeat() {
	if rc.s.Status != game.StatusPlaying {
		return
	}
	if rc.s.Player.HP <= 0 {
		rc.s.Player.HP = 0
		rc.s.Status = game.StatusLost
		rc.s.Stats.EndedAt = rc.env.Clock.Now()
		rc.log("ПОРАЖЕНИЕ: Герой пал в подземелье")
	}
}

func (rc *runContext) addCoins(c game.AddCoins) {
	if c.Amount <= 0 {
		return
	}
	rc.s.Player.Coins += c.Amount
}
