package engine

import (
	"strconv"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/deck"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
)

// useSpell casts a spell card held in a hand slot or lying on the table.
// Validation happens before anything is consumed, so a rejected cast leaves
// the snapshot untouched apart from an explanatory log line.
func (rc *runContext) useSpell(c game.UseSpellOnTarget) bool {
	spell, remove := rc.locateSpell(c.SpellCardID)
	if spell == nil {
		return false
	}
	if rc.hasTableAbility(game.AbilitySilence) {
		rc.log("МОЛЧАНИЕ: Магия заблокирована!")
		return false
	}

	ok := rc.castSpell(spell.Spell, c.TargetID)
	if !ok {
		return false
	}
	rc.discard(*spell)
	remove()
	return true
}

// locateSpell finds a castable spell card and a closure that removes it
// from wherever it sits.
func (rc *runContext) locateSpell(id string) (*game.Card, func()) {
	for _, slot := range rc.s.HandSlots() {
		if slot.Card != nil && slot.Card.ID == id {
			if slot.Blocked || slot.Card.Kind != game.KindSpell {
				return nil, nil
			}
			s := slot
			return slot.Card, func() { s.Card = nil }
		}
	}
	if idx, card := rc.findTable(id); card != nil {
		if card.Kind != game.KindSpell || card.Hidden {
			if card.Hidden {
				rc.log("ТУМАН: Карта скрыта!")
			}
			return nil, nil
		}
		i := idx
		return card, func() { rc.s.Table[i] = nil }
	}
	return nil, nil
}

// prismBonus is the extra spell damage granted by a held prism artifact.
func (rc *runContext) prismBonus() int {
	for _, slot := range rc.s.HandSlots() {
		if slot.Card != nil && slot.Card.Kind == game.KindPrism {
			return 1
		}
	}
	return 0
}

// echoTimes consumes a pending echo for damaging spells.
func (rc *runContext) echoTimes() int {
	if rc.s.ConsumeEffect(game.EffectEcho) {
		rc.log("ЭХО: Заклинание сработает дважды")
		return 2
	}
	return 1
}

// castSpell executes one spell kind against an optional target. Returns
// false when the target is missing or invalid; in that case nothing has
// been consumed.
func (rc *runContext) castSpell(kind game.SpellKind, targetID string) bool {
	switch kind {
	case game.SpellFireball:
		return rc.damageSpell(targetID, 3, "ОГНЕННЫЙ ШАР")
	case game.SpellFrost:
		idx, m := rc.spellMonsterTarget(targetID)
		if m == nil {
			return false
		}
		times := rc.echoTimes()
		rc.log("МОРОЗ: Монстр ослаблен")
		for t := 0; t < times; t++ {
			// Halving never kills: the cut is always below the current value.
			cut := m.Value - (m.Value+1)/2
			if cut > 0 {
				rc.hitMonster(idx, cut)
			}
		}
		return true
	case game.SpellStorm:
		return rc.damageSpell(targetID, rc.s.Round, "БУРЯ")
	case game.SpellWeaken:
		return rc.damageSpell(targetID, 2, "СЛАБОСТЬ")
	case game.SpellVolley:
		times := rc.echoTimes()
		dmg := 1 + rc.prismBonus()
		rc.log("ЗАЛП: Удар по всем монстрам")
		for t := 0; t < times; t++ {
			for i := range rc.s.Table {
				if rc.s.Table[i].IsMonster() {
					rc.hitMonster(i, dmg)
				}
			}
		}
		return true
	case game.SpellHeal:
		applied, excess := rc.healPlayer(4)
		rc.s.Overhead.Overheal += excess
		rc.log("ИСЦЕЛЕНИЕ: +" + strconv.Itoa(applied) + " ОЗ")
		return true
	case game.SpellExecution:
		idx, m := rc.spellMonsterTarget(targetID)
		if m == nil || m.Value > 4 {
			return false
		}
		rc.log("КАЗНЬ: Монстр повержен")
		rc.killMonster(idx)
		return true
	case game.SpellSacrifice:
		idx, card := rc.findTable(targetID)
		if card == nil || card.Hidden {
			return false
		}
		rc.damagePlayer(3)
		rc.discard(*card)
		rc.s.Table[idx] = nil
		rc.log("ЖЕРТВА: Карта уничтожена ценой крови")
		return true
	case game.SpellMidas:
		_, card := rc.findTable(targetID)
		if card == nil || card.IsMonster() || card.Hidden {
			return false
		}
		card.Kind = game.KindCoin
		card.Icon = "🪙"
		card.Spell = ""
		card.MaxValue = 0
		rc.log("МИДАС: Карта обращена в золото")
		return true
	case game.SpellAlchemy:
		_, card := rc.findTable(targetID)
		if card == nil || card.IsMonster() || card.Hidden {
			return false
		}
		card.Value = 2 + rc.pick(9)
		rc.log("АЛХИМИЯ: Ценность карты изменена")
		return true
	case game.SpellScout:
		rc.scoutDeck(3)
		rc.log("РАЗВЕДКА: Верх колоды раскрыт")
		return true
	case game.SpellSplit:
		return rc.splitMonster(targetID)
	case game.SpellRecall:
		idx, card := rc.findTable(targetID)
		if card == nil || card.Hidden {
			return false
		}
		rc.returnToDeck(*card)
		rc.s.Table[idx] = nil
		rc.log("ВОЗВРАТ: Карта ушла в колоду")
		return true
	case game.SpellBloodPact:
		rc.damagePlayer(2)
		rc.s.Player.Coins += 4
		rc.s.Stats.CoinsCollected += 4
		rc.log("КРОВАВЫЙ ДОГОВОР: +4 монеты")
		return true
	case game.SpellPurify:
		for _, card := range rc.s.Table {
			if card != nil {
				card.Hidden = false
			}
		}
		rc.log("ОЧИЩЕНИЕ: Туман рассеян")
		return true
	case game.SpellEcho:
		return rc.pushEffect(game.EffectEcho, "ЭХО: Следующее заклинание удвоится")
	case game.SpellSnack:
		return rc.pushEffect(game.EffectSnack, "ПЕРЕКУС: Излишек лечения станет золотом")
	case game.SpellArmor:
		return rc.pushEffect(game.EffectArmor, "БРОНЯ: Следующий удар будет поглощён")
	case game.SpellDeflection:
		return rc.pushEffect(game.EffectDeflection, "ОТРАЖЕНИЕ: Следующий удар отскочит")
	case game.SpellTrophy:
		return rc.pushEffect(game.EffectTrophy, "ТРОФЕЙ: Следующее убийство принесёт золото")
	}
	return false
}

func (rc *runContext) pushEffect(e game.EffectKind, msg string) bool {
	rc.s.Effects = append(rc.s.Effects, e)
	rc.log(msg)
	return true
}

// damageSpell is the shared path for single-target damaging spells: prism
// bonus, echo doubling and overkill accounting all apply.
func (rc *runContext) damageSpell(targetID string, base int, label string) bool {
	idx, m := rc.spellMonsterTarget(targetID)
	if m == nil {
		return false
	}
	times := rc.echoTimes()
	dmg := base + rc.prismBonus()
	rc.log(label + ": " + strconv.Itoa(dmg) + " урона")
	for t := 0; t < times; t++ {
		if !rc.s.Table[idx].IsMonster() || rc.s.Table[idx].ID != m.ID {
			break
		}
		rc.hitMonster(idx, dmg)
	}
	return true
}

// spellMonsterTarget resolves a targeted spell's monster, honoring fog and
// stealth.
func (rc *runContext) spellMonsterTarget(targetID string) (int, *game.Card) {
	idx, m := rc.findTable(targetID)
	if !m.IsMonster() {
		return -1, nil
	}
	if m.Hidden {
		rc.log("ТУМАН: Карта скрыта!")
		return -1, nil
	}
	if rc.stealthBlocked(m) {
		rc.log("СКРЫТНОСТЬ: Цель в тени!")
		return -1, nil
	}
	return idx, m
}

// splitMonster replaces a monster with two halves; the second half needs a
// free table slot.
func (rc *runContext) splitMonster(targetID string) bool {
	_, m := rc.spellMonsterTarget(targetID)
	if m == nil || m.Value < 2 {
		return false
	}
	free := -1
	for i, c := range rc.s.Table {
		if c == nil {
			free = i
			break
		}
	}
	if free == -1 {
		return false
	}
	hi := (m.Value + 1) / 2
	lo := m.Value - hi
	twin := *m
	twin.ID = deck.NewCardID(rc.env.Rand)
	twin.Value = lo
	twin.MaxValue = lo
	m.Value = hi
	m.MaxValue = hi
	rc.s.Table[free] = &twin
	rc.log("РАСКОЛ: Монстр разделён надвое")
	return true
}
