package engine

import (
	"strconv"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/deck"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
)

// takeCardToHand moves a table card into an empty, unblocked hand slot.
// Coins and potions are consumed on the spot unless stashed in the backpack.
func (rc *runContext) takeCardToHand(c game.TakeCardToHand) bool {
	s := rc.s
	idx, card := rc.findTable(c.CardID)
	if card == nil || card.IsMonster() {
		return false
	}
	if card.Hidden {
		rc.log("ТУМАН: Карта скрыта!")
		return false
	}
	slot := s.Hand(c.Hand)
	if slot == nil || slot.Card != nil || slot.Blocked {
		return false
	}
	if c.Hand == game.HandBackpack && rc.hasTableAbility(game.AbilityWeb) {
		rc.log("ПАУТИНА: Рюкзак заблокирован!")
		return false
	}

	stash := c.Hand == game.HandBackpack
	switch card.Kind {
	case game.KindCoin:
		if stash {
			break
		}
		amount := card.Value + rc.coinBonus()
		s.Player.Coins += amount
		s.Stats.CoinsCollected += amount
		rc.discard(*card)
		s.Table[idx] = nil
		slot.Blocked = true
		rc.log("МОНЕТЫ: +" + strconv.Itoa(amount))
		return true
	case game.KindPotion, game.KindElixir:
		if stash {
			break
		}
		rc.drinkPotion(*card)
		rc.discard(*card)
		s.Table[idx] = nil
		slot.Blocked = true
		return true
	}

	// Weapons, shields, spells, skulls and stashed consumables sit in the
	// slot unconsumed.
	held := *card
	slot.Card = &held
	s.Table[idx] = nil
	return true
}

// drinkPotion applies the potion's healing with poison, overheal and snack
// accounting.
func (rc *runContext) drinkPotion(card game.Card) {
	effective := card.Value - rc.potionPenalty()
	if effective < 0 {
		effective = 0
	}
	applied, excess := rc.healPlayer(effective)
	if excess > 0 {
		if rc.s.ConsumeEffect(game.EffectSnack) {
			rc.s.Player.Coins += excess
			rc.s.Stats.CoinsCollected += excess
			rc.log("ПЕРЕКУС: Излишек лечения обращён в " + strconv.Itoa(excess) + " монет")
		} else {
			rc.s.Overhead.Overheal += excess
		}
	}
	rc.log("ЗЕЛЬЕ: +" + strconv.Itoa(applied) + " ОЗ")
}

// sellItem discards a card from hand, backpack or table and credits its
// price. Monsters and the talisman are never sellable; a screaming monster
// blocks the shop entirely.
func (rc *runContext) sellItem(c game.SellItem) bool {
	if rc.hasTableAbility(game.AbilityScream) {
		rc.log("КРИК: Торговля заблокирована!")
		return false
	}
	if slot := rc.findHand(c.CardID); slot != nil {
		if !sellable(slot.Card) {
			return false
		}
		return rc.creditSale(slot.Card, func() { slot.Card = nil })
	}
	if idx, card := rc.findTable(c.CardID); card != nil {
		if card.Hidden {
			rc.log("ТУМАН: Карта скрыта!")
			return false
		}
		if !sellable(card) {
			return false
		}
		return rc.creditSale(card, func() { rc.s.Table[idx] = nil })
	}
	return false
}

func sellable(c *game.Card) bool {
	return c != nil && c.Kind != game.KindMonster && c.Kind != game.KindTalisman
}

func (rc *runContext) creditSale(card *game.Card, remove func()) bool {
	credit := card.Price()
	rc.s.Player.Coins += credit
	rc.s.Stats.ItemsSold++
	rc.discard(*card)
	remove()
	rc.log("ПРОДАНО: +" + strconv.Itoa(credit) + " монет")
	return true
}

// resetHand returns all four table cards to the deck for 5 HP. Requires a
// fully occupied table and enough HP to survive the price.
func (rc *runContext) resetHand() bool {
	s := rc.s
	if s.TableCount() != game.TableSize {
		return false
	}
	cost := 5
	if s.GodMode {
		cost = 0
	}
	if s.Player.HP <= 5 && !s.GodMode {
		return false
	}
	for i, card := range s.Table {
		if card != nil {
			cc := *card
			cc.Hidden = false
			s.Deck = append(s.Deck, cc)
			s.Table[i] = nil
		}
	}
	deck.Shuffle(s.Deck, rc.env.Rand)
	s.Player.HP -= cost
	s.Stats.ResetsUsed++
	rc.log("СБРОС: Стол возвращён в колоду, -" + strconv.Itoa(cost) + " ОЗ")
	return true
}
