package engine

import (
	"strconv"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/deck"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
)

// onSpawn fires when a monster card newly appears on the table. Refills
// call it for freshly drawn cards only, never for cards already in place.
func (rc *runContext) onSpawn(c *game.Card) {
	switch c.Ability {
	case game.AbilityAmbush:
		rc.log("ЗАСАДА: Монстр атакует из тени!")
		rc.damagePlayer(1)
	case game.AbilityCorpseEater:
		coins := 0
		for _, d := range rc.s.Discard {
			if d.Kind == game.KindCoin {
				coins++
			}
		}
		if coins > 0 {
			c.Value += coins
			c.MaxValue += coins
			rc.log("ТРУПОЕД: Монстр усилился на " + strconv.Itoa(coins))
		}
	case game.AbilityExhaustion:
		rc.s.Player.MaxHP--
		if rc.s.Player.HP > rc.s.Player.MaxHP {
			rc.s.Player.HP = rc.s.Player.MaxHP
		}
		rc.log("ИСТОЩЕНИЕ: Максимум здоровья снижен")
	}
}

// killMonster processes the death of the table monster at idx: on-kill
// effects fire first, then the card moves to the discard pile.
func (rc *runContext) killMonster(idx int) {
	c := rc.s.Table[idx]
	rc.s.Table[idx] = nil
	rc.s.Stats.MonstersKilled++
	rc.onKill(*c)
	rc.discard(*c)
}

// onKill layers the global kill triggers (curse, buffs, parasites) on top
// of the dead monster's own ability.
func (rc *runContext) onKill(c game.Card) {
	if rc.s.Curse == game.CurseFullMoon {
		rc.healTableMonsters(1)
	}
	if rc.s.ConsumeEffect(game.EffectTrophy) {
		rc.s.Player.Coins += 2
		rc.s.Stats.CoinsCollected += 2
		rc.log("ТРОФЕЙ: +2 монеты")
	}
	for _, slot := range rc.s.HandSlots() {
		if slot.Card != nil && slot.Card.Kind == game.KindTalisman {
			rc.s.Player.Coins++
			rc.s.Stats.CoinsCollected++
		}
	}
	for _, t := range rc.s.Table {
		if t.IsMonster() && t.Ability == game.AbilityParasite {
			if t.Value < t.MaxValue {
				t.Value++
			}
		}
	}

	switch c.Ability {
	case game.AbilityCommission:
		rc.s.Player.Coins -= 3
		if rc.s.Player.Coins < 0 {
			rc.s.Player.Coins = 0
		}
		rc.log("КОМИССИЯ: -3 монеты")
	case game.AbilityWhisper:
		rc.scoutDeck(1)
		rc.log("ШЁПОТ: Следующая карта раскрыта")
	case game.AbilityBeacon:
		rc.scoutDeck(3)
		rc.log("МАЯК: Три карты раскрыты")
	case game.AbilityBreach:
		rc.destroyRandomEquipped(func(card *game.Card) bool { return card.Kind == game.KindShield })
	case game.AbilityDisarm:
		rc.destroyRandomEquipped(func(card *game.Card) bool { return card.IsWeapon() })
	case game.AbilityTheft:
		rc.destroyRandomEquipped(func(card *game.Card) bool { return true })
	case game.AbilityBlessing:
		if rc.s.Player.HP > 0 {
			applied, excess := rc.healPlayer(2)
			rc.s.Overhead.Overheal += excess
			rc.log("БЛАГОСЛОВЕНИЕ: +" + strconv.Itoa(applied) + " ОЗ")
		}
	case game.AbilityBones:
		rc.returnToDeck(deck.SkullCard(rc.env.Rand))
		rc.log("КОСТИ: Череп зарыт в колоду")
	case game.AbilityJunk:
		if rc.s.Backpack.Card == nil && !rc.s.Backpack.Blocked {
			skull := deck.SkullCard(rc.env.Rand)
			rc.s.Backpack.Card = &skull
			rc.log("ХЛАМ: Череп подброшен в рюкзак")
		}
	case game.AbilityLegacy:
		rc.healTableMonsters(1)
		rc.log("НАСЛЕДИЕ: Монстры усилились")
	case game.AbilityCorrosion:
		rc.corrodeRandomEquipped()
	case game.AbilityMiss:
		rc.s.Effects = append(rc.s.Effects, game.EffectMiss)
		rc.log("ПРОМАХ: Следующий удар ослаблен")
	}
}

// healTableMonsters gives every table monster +1 HP up to its maximum.
func (rc *runContext) healTableMonsters(n int) {
	for _, t := range rc.s.Table {
		if t.IsMonster() {
			t.Value += n
			if t.Value > t.MaxValue {
				t.Value = t.MaxValue
			}
		}
	}
}

// scoutDeck reveals the next n deck cards in draw order.
func (rc *runContext) scoutDeck(n int) {
	top := make([]game.Card, 0, n)
	for i := len(rc.s.Deck) - 1; i >= 0 && len(top) < n; i-- {
		top = append(top, rc.s.Deck[i])
	}
	rc.s.Scout = top
}

// destroyRandomEquipped discards a random held card matching the filter.
func (rc *runContext) destroyRandomEquipped(match func(*game.Card) bool) {
	slots := rc.equippedSlots(match)
	if len(slots) == 0 {
		return
	}
	slot := slots[rc.pick(len(slots))]
	rc.log("УНИЧТОЖЕНО: " + string(slot.Card.Kind))
	rc.discard(*slot.Card)
	slot.Card = nil
}

// corrodeRandomEquipped knocks 2 value off a random held item, destroying
// it at zero.
func (rc *runContext) corrodeRandomEquipped() {
	slots := rc.equippedSlots(func(card *game.Card) bool { return card.Value > 0 })
	if len(slots) == 0 {
		return
	}
	slot := slots[rc.pick(len(slots))]
	slot.Card.Value -= 2
	if slot.Card.Value <= 0 {
		broken := *slot.Card
		broken.Value = 0
		rc.discard(broken)
		slot.Card = nil
		rc.log("КОРРОЗИЯ: Предмет рассыпался")
	} else {
		rc.log("КОРРОЗИЯ: Предмет повреждён")
	}
}

func (rc *runContext) equippedSlots(match func(*game.Card) bool) []*game.HandSlot {
	out := make([]*game.HandSlot, 0, 3)
	for _, slot := range rc.s.HandSlots() {
		if slot.Card != nil && match(slot.Card) {
			out = append(out, slot)
		}
	}
	return out
}
