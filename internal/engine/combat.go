package engine

import (
	"strconv"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
)

// interactWithMonster resolves one of the three attack shapes: monster vs
// body, monster vs a held shield, or a held weapon vs the monster.
func (rc *runContext) interactWithMonster(c game.InteractWithMonster) bool {
	idx, monster := rc.findTable(c.MonsterID)
	if !monster.IsMonster() {
		return false
	}
	if monster.Hidden {
		rc.log("ТУМАН: Карта скрыта!")
		return false
	}
	if rc.stealthBlocked(monster) {
		rc.log("СКРЫТНОСТЬ: Цель в тени!")
		return false
	}

	if c.Target == game.TargetBody {
		rc.bodyAttack(idx)
		return true
	}

	slot := rc.s.Hand(game.HandKind(c.Target))
	if slot == nil || slot.Card == nil || slot.Blocked {
		return false
	}
	switch {
	case slot.Card.IsWeapon():
		rc.weaponAttack(idx, slot)
	case slot.Card.Kind == game.KindShield:
		rc.shieldBlock(idx, slot)
	default:
		return false
	}
	return true
}

// stealthBlocked reports whether the monster hides behind another,
// non-stealth monster still on the table.
func (rc *runContext) stealthBlocked(m *game.Card) bool {
	if m.Ability != game.AbilityStealth {
		return false
	}
	for _, c := range rc.s.Table {
		if c.IsMonster() && c != m && c.Ability != game.AbilityStealth {
			return true
		}
	}
	return false
}

// bodyAttack: the hero absorbs the monster's full value. Armor negates it,
// deflection redirects it into another monster; either buff is consumed.
// The attacking monster is spent either way.
func (rc *runContext) bodyAttack(idx int) {
	monster := rc.s.Table[idx]
	dmg := monster.Value
	switch {
	case rc.s.ConsumeEffect(game.EffectArmor):
		rc.log("БРОНЯ: Удар поглощён")
	case rc.s.ConsumeEffect(game.EffectDeflection):
		others := make([]int, 0, game.TableSize)
		for i, c := range rc.s.Table {
			if c.IsMonster() && i != idx {
				others = append(others, i)
			}
		}
		if len(others) > 0 {
			t := others[rc.pick(len(others))]
			rc.log("ОТРАЖЕНИЕ: Удар перенаправлен")
			rc.hitMonster(t, dmg)
		} else {
			rc.log("ОТРАЖЕНИЕ: Монстр ранил сам себя")
		}
	default:
		lost := rc.damagePlayer(dmg)
		if lost > 0 {
			rc.log("БОЙ: Герой принял " + strconv.Itoa(lost) + " урона")
		}
	}
	rc.killMonster(idx)
}

// shieldBlock: the monster spends itself against a held shield. Trample
// bypasses the block math and destroys the shield outright.
func (rc *runContext) shieldBlock(idx int, slot *game.HandSlot) {
	monster := rc.s.Table[idx]
	shield := slot.Card
	if monster.Ability == game.AbilityTrample {
		rc.discard(*shield)
		slot.Card = nil
		rc.log("ТАРАН: Щит уничтожен!")
		rc.killMonster(idx)
		return
	}

	dmg := monster.Value
	blocked := dmg
	if shield.Value < blocked {
		blocked = shield.Value
	}
	overflow := dmg - blocked
	if over := shield.Value - dmg; over > 0 {
		rc.s.Overhead.Overdef += over
	}
	rc.s.Stats.DamageBlocked += blocked
	rc.log("ЩИТ: Заблокировано " + strconv.Itoa(blocked) + " урона")
	if overflow > 0 {
		rc.damagePlayer(overflow)
	}
	if shield.Value <= dmg {
		rc.discard(*shield)
		slot.Card = nil
	} else {
		shield.Value -= dmg
	}
	rc.killMonster(idx)
}

// weaponAttack swings a held weapon at the monster. Normal weapons are
// spent in one use; a claymore instead loses durability equal to the
// monster's pre-hit HP.
func (rc *runContext) weaponAttack(idx int, slot *game.HandSlot) {
	monster := rc.s.Table[idx]
	weapon := slot.Card
	preHP := monster.Value

	dmg := weapon.Value + rc.temperingBonus()
	if rc.s.ConsumeEffect(game.EffectMiss) {
		dmg -= 2
		rc.log("ПРОМАХ: Удар ослаблен")
	}
	if dmg < 0 {
		dmg = 0
	}

	if dmg >= preHP {
		rc.s.Stats.DamageDealt += preHP
		rc.s.Overhead.Overdamage += dmg - preHP
		rc.killMonster(idx)
	} else {
		rc.s.Stats.DamageDealt += dmg
		left := preHP - dmg
		if monster.Ability == game.AbilityFlee && left <= 3 {
			fled := *monster
			fled.Value = left
			rc.s.Table[idx] = nil
			rc.returnToDeck(fled)
			rc.log("БЕГСТВО: Монстр скрылся в колоде")
		} else {
			monster.Value = left
		}
	}

	if weapon.Kind == game.KindClaymore {
		weapon.Value -= preHP
		if weapon.Value <= 0 {
			broken := *weapon
			broken.Value = 0
			rc.discard(broken)
			slot.Card = nil
			rc.log("КЛЕЙМОР: Клинок сломан")
		}
	} else {
		rc.discard(*weapon)
		slot.Card = nil
	}
}

// hitMonster applies flat damage with overkill accounting; used by spells
// and redirected attacks.
func (rc *runContext) hitMonster(idx, dmg int) {
	monster := rc.s.Table[idx]
	pre := monster.Value
	if dmg >= pre {
		rc.s.Stats.DamageDealt += pre
		rc.s.Overhead.Overdamage += dmg - pre
		rc.killMonster(idx)
		return
	}
	rc.s.Stats.DamageDealt += dmg
	monster.Value = pre - dmg
}
