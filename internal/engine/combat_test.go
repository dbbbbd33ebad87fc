package engine

import (
	"testing"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
)

func TestBodyAttackAbsorbsMonster(t *testing.T) {
	s := playingState(monster("m1", 4), monster("m2", 6))
	next := Apply(s, game.InteractWithMonster{MonsterID: "m1", Target: game.TargetBody}, testEnv())

	if next.Player.HP != 11 {
		t.Fatalf("expected HP 11, got %d", next.Player.HP)
	}
	if next.Stats.DamageTaken != 4 {
		t.Fatalf("expected 4 damage taken, got %d", next.Stats.DamageTaken)
	}
	if next.Table[0] != nil {
		t.Fatalf("a body attack spends the monster")
	}
	if next.Stats.MonstersKilled != 1 {
		t.Fatalf("expected a kill, got %d", next.Stats.MonstersKilled)
	}
}

func TestArmorNegatesBodyAttack(t *testing.T) {
	s := playingState(monster("m1", 5), monster("m2", 6))
	s.Effects = []game.EffectKind{game.EffectArmor}
	next := Apply(s, game.InteractWithMonster{MonsterID: "m1", Target: game.TargetBody}, testEnv())

	if next.Player.HP != 15 {
		t.Fatalf("armor must absorb the hit, got HP %d", next.Player.HP)
	}
	if len(next.Effects) != 0 {
		t.Fatalf("armor must be consumed")
	}
	if next.Table[0] != nil {
		t.Fatalf("the monster is still spent")
	}
}

func TestDeflectionRedirectsIntoAnotherMonster(t *testing.T) {
	s := playingState(monster("m1", 5), monster("m2", 8))
	s.Effects = []game.EffectKind{game.EffectDeflection}
	next := Apply(s, game.InteractWithMonster{MonsterID: "m1", Target: game.TargetBody}, testEnv())

	if next.Player.HP != 15 {
		t.Fatalf("deflection must spare the hero, got HP %d", next.Player.HP)
	}
	if next.Table[1] == nil || next.Table[1].Value != 3 {
		t.Fatalf("expected the other monster at 3 HP, got %+v", next.Table[1])
	}
	if next.Stats.DamageDealt != 5 {
		t.Fatalf("redirected damage counts as dealt, got %d", next.Stats.DamageDealt)
	}
}

func TestDeflectionAloneSelfHits(t *testing.T) {
	s := playingState(monster("m1", 5), item("c1", game.KindCoin, 2))
	s.Effects = []game.EffectKind{game.EffectDeflection}
	next := Apply(s, game.InteractWithMonster{MonsterID: "m1", Target: game.TargetBody}, testEnv())

	if next.Player.HP != 15 {
		t.Fatalf("self-hit must not damage the hero, got HP %d", next.Player.HP)
	}
	if next.Table[0] != nil {
		t.Fatalf("the lone monster is still spent")
	}
}

func TestShieldBlocksWithOverdef(t *testing.T) {
	s := playingState(monster("m1", 3), monster("m2", 6))
	shield := item("s1", game.KindShield, 5)
	s.Left.Card = &shield

	next := Apply(s, game.InteractWithMonster{MonsterID: "m1", Target: game.TargetLeft}, testEnv())
	if next.Stats.DamageBlocked != 3 {
		t.Fatalf("expected 3 blocked, got %d", next.Stats.DamageBlocked)
	}
	if next.Overhead.Overdef != 2 {
		t.Fatalf("expected 2 overdef, got %d", next.Overhead.Overdef)
	}
	if next.Left.Card == nil || next.Left.Card.Value != 2 {
		t.Fatalf("shield must survive at value 2, got %+v", next.Left.Card)
	}
	if next.Player.HP != 15 {
		t.Fatalf("fully blocked hit must not hurt, got HP %d", next.Player.HP)
	}
	if next.Table[0] != nil {
		t.Fatalf("the blocked monster is spent")
	}
}

func TestShieldOverflowHitsHero(t *testing.T) {
	s := playingState(monster("m1", 7), monster("m2", 6))
	shield := item("s1", game.KindShield, 2)
	s.Left.Card = &shield

	next := Apply(s, game.InteractWithMonster{MonsterID: "m1", Target: game.TargetLeft}, testEnv())
	if next.Stats.DamageBlocked != 2 {
		t.Fatalf("expected 2 blocked, got %d", next.Stats.DamageBlocked)
	}
	if next.Player.HP != 10 {
		t.Fatalf("expected 5 overflow damage, got HP %d", next.Player.HP)
	}
	if next.Left.Card != nil {
		t.Fatalf("overwhelmed shield must break")
	}
}

func TestTrampleDestroysShield(t *testing.T) {
	s := playingState(monsterWith("m1", 4, game.AbilityTrample), monster("m2", 6))
	shield := item("s1", game.KindShield, 9)
	s.Left.Card = &shield

	next := Apply(s, game.InteractWithMonster{MonsterID: "m1", Target: game.TargetLeft}, testEnv())
	if next.Left.Card != nil {
		t.Fatalf("trample must destroy the shield outright")
	}
	if next.Player.HP != 15 {
		t.Fatalf("trample deals no HP damage, got %d", next.Player.HP)
	}
	if next.Stats.DamageBlocked != 0 {
		t.Fatalf("trample records no block, got %d", next.Stats.DamageBlocked)
	}
}

func TestWeaponKillWithOverdamage(t *testing.T) {
	s := playingState(monster("m1", 3), monster("m2", 6))
	weapon := item("w1", game.KindWeapon, 7)
	s.Right.Card = &weapon

	next := Apply(s, game.InteractWithMonster{MonsterID: "m1", Target: game.TargetRight}, testEnv())
	if next.Stats.DamageDealt != 3 {
		t.Fatalf("dealt damage caps at the monster's HP, got %d", next.Stats.DamageDealt)
	}
	if next.Overhead.Overdamage != 4 {
		t.Fatalf("expected 4 overdamage, got %d", next.Overhead.Overdamage)
	}
	if next.Right.Card != nil {
		t.Fatalf("a normal weapon is spent in one swing")
	}
	if next.Stats.MonstersKilled != 1 {
		t.Fatalf("expected a kill")
	}
}

func TestWeaponPartialHit(t *testing.T) {
	s := playingState(monster("m1", 8), monster("m2", 6))
	weapon := item("w1", game.KindWeapon, 3)
	s.Right.Card = &weapon

	next := Apply(s, game.InteractWithMonster{MonsterID: "m1", Target: game.TargetRight}, testEnv())
	if next.Table[0] == nil || next.Table[0].Value != 5 {
		t.Fatalf("expected the monster at 5 HP, got %+v", next.Table[0])
	}
	if next.Overhead.Overdamage != 0 {
		t.Fatalf("partial hit has no overdamage, got %d", next.Overhead.Overdamage)
	}
	if next.Right.Card != nil {
		t.Fatalf("the weapon is spent even on a partial hit")
	}
}

func TestClaymoreLosesDurability(t *testing.T) {
	s := playingState(monster("m1", 3), monster("m2", 6))
	claymore := game.Card{ID: "cl", Kind: game.KindClaymore, Value: 7, MaxValue: 7}
	s.Right.Card = &claymore

	next := Apply(s, game.InteractWithMonster{MonsterID: "m1", Target: game.TargetRight}, testEnv())
	if next.Right.Card == nil || next.Right.Card.Value != 4 {
		t.Fatalf("claymore must lose durability equal to the monster's HP, got %+v", next.Right.Card)
	}
	if next.Stats.MonstersKilled != 1 {
		t.Fatalf("expected a kill")
	}

	next = Apply(next, game.InteractWithMonster{MonsterID: "m2", Target: game.TargetRight}, testEnv())
	if next.Right.Card != nil {
		t.Fatalf("claymore must break at zero durability")
	}
}

func TestMissWeakensWeaponSwing(t *testing.T) {
	s := playingState(monster("m1", 6), monster("m2", 6))
	weapon := item("w1", game.KindWeapon, 5)
	s.Right.Card = &weapon
	s.Effects = []game.EffectKind{game.EffectMiss}

	next := Apply(s, game.InteractWithMonster{MonsterID: "m1", Target: game.TargetRight}, testEnv())
	if next.Table[0] == nil || next.Table[0].Value != 3 {
		t.Fatalf("expected a weakened 3-damage hit, got %+v", next.Table[0])
	}
	if len(next.Effects) != 0 {
		t.Fatalf("the miss debuff must be consumed")
	}
}

func TestFleeMonsterReturnsToDeck(t *testing.T) {
	s := playingState(monsterWith("m1", 5, game.AbilityFlee), monster("m2", 6), item("c1", game.KindCoin, 2))
	weapon := item("w1", game.KindWeapon, 2)
	s.Right.Card = &weapon

	next := Apply(s, game.InteractWithMonster{MonsterID: "m1", Target: game.TargetRight}, testEnv())
	if next.Table[0] != nil {
		t.Fatalf("the monster must flee the table")
	}
	if len(next.Deck) != 1 || next.Deck[0].ID != "m1" || next.Deck[0].Value != 3 {
		t.Fatalf("the fled monster keeps its wounds in the deck, got %+v", next.Deck)
	}
	if next.Stats.MonstersKilled != 0 {
		t.Fatalf("fleeing is not a kill")
	}
}

func TestStealthShieldsBehindOthers(t *testing.T) {
	s := playingState(monsterWith("m1", 4, game.AbilityStealth), monster("m2", 6))
	next := Apply(s, game.InteractWithMonster{MonsterID: "m1", Target: game.TargetBody}, testEnv())
	if next.Table[0] == nil || next.Player.HP != 15 {
		t.Fatalf("a stealthed monster must be untargetable")
	}

	// Alone (or with only stealth company) it becomes attackable.
	s2 := playingState(monsterWith("m1", 4, game.AbilityStealth), item("c1", game.KindCoin, 2))
	next = Apply(s2, game.InteractWithMonster{MonsterID: "m1", Target: game.TargetBody}, testEnv())
	if next.Table[0] != nil {
		t.Fatalf("a lone stealth monster must be attackable")
	}
}

func TestHiddenMonsterUntargetable(t *testing.T) {
	hidden := monster("m1", 4)
	hidden.Hidden = true
	s := playingState(hidden, monster("m2", 6), monster("m3", 6))
	next := Apply(s, game.InteractWithMonster{MonsterID: "m1", Target: game.TargetBody}, testEnv())
	if next.Table[0] == nil || next.Player.HP != 15 {
		t.Fatalf("a fogged monster must be untargetable")
	}
	if next.HasActed {
		t.Fatalf("a rejected attack is not an action")
	}
}

func TestGodModeNullifiesDamage(t *testing.T) {
	s := playingState(monster("m1", 9), monster("m2", 6))
	s.GodMode = true
	next := Apply(s, game.InteractWithMonster{MonsterID: "m1", Target: game.TargetBody}, testEnv())
	if next.Player.HP != 15 {
		t.Fatalf("god mode must nullify damage, got HP %d", next.Player.HP)
	}
	if next.Table[0] != nil {
		t.Fatalf("the monster is still spent in god mode")
	}
}

func TestMirrorPegsToBestWeapon(t *testing.T) {
	s := playingState(monsterWith("m1", 8, game.AbilityMirror), monster("m2", 6))
	s.Table[0].MaxValue = 8
	weapon := item("w1", game.KindWeapon, 3)
	s.Left.Card = &weapon

	next := Apply(s, game.AddCoins{Amount: 1}, testEnv())
	if next.Table[0].Value != 3 {
		t.Fatalf("mirror must peg to the best weapon damage, got %d", next.Table[0].Value)
	}

	next = Apply(next, game.SellItem{CardID: "w1"}, testEnv())
	if next.Table[0].Value != 8 {
		t.Fatalf("mirror must revert to max HP without a weapon, got %d", next.Table[0].Value)
	}
}
