package engine

import (
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
)

// activateCurse locks in the run's curse. Only legal before the first
// effect-producing action, and only once.
func (rc *runContext) activateCurse(c game.ActivateCurse) {
	s := rc.s
	if s.HasActed || s.Curse != game.CurseNone {
		return
	}
	valid := false
	for _, k := range game.Curses {
		if k == c.Curse {
			valid = true
			break
		}
	}
	if !valid {
		return
	}
	s.Curse = c.Curse
	name := c.Meta.Name
	if name == "" {
		name = string(c.Curse)
	}
	rc.log("ПРОКЛЯТИЕ: " + name)
	if c.Curse == game.CurseFog {
		occupied := make([]int, 0, game.TableSize)
		for i, card := range s.Table {
			if card != nil {
				occupied = append(occupied, i)
			}
		}
		rc.hideTwo(occupied)
	}
}

// temperingBonus is the extra weapon damage granted by the tempering curse.
func (rc *runContext) temperingBonus() int {
	if rc.s.Curse == game.CurseTempering {
		return 1
	}
	return 0
}

// potionPenalty is the healing reduction imposed by the poison curse.
func (rc *runContext) potionPenalty() int {
	if rc.s.Curse == game.CursePoison {
		return 1
	}
	return 0
}

// coinBonus is the extra coin yield granted by the greed curse.
func (rc *runContext) coinBonus() int {
	if rc.s.Curse == game.CurseGreed {
		return 2
	}
	return 0
}

// applyFog hides two of the freshly drawn cards under the fog curse.
func (rc *runContext) applyFog(drawn []int) {
	if rc.s.Curse != game.CurseFog {
		return
	}
	rc.hideTwo(drawn)
}

// hideTwo marks up to two randomly chosen slots (out of the given ones) as
// hidden. Works on its own copy: the caller still iterates the original
// slice after this returns.
func (rc *runContext) hideTwo(slots []int) {
	rest := append([]int(nil), slots...)
	want := 2
	if want > len(rest) {
		want = len(rest)
	}
	for n := 0; n < want; n++ {
		i := rc.pick(len(rest))
		rc.s.Table[rest[i]].Hidden = true
		rest = append(rest[:i], rest[i+1:]...)
	}
}

// revealFogOnThinTable clears all hidden flags once two or fewer cards
// remain on the table.
func (rc *runContext) revealFogOnThinTable() {
	if rc.s.TableCount() > 2 {
		return
	}
	revealed := false
	for _, c := range rc.s.Table {
		if c != nil && c.Hidden {
			c.Hidden = false
			revealed = true
		}
	}
	if revealed {
		rc.log("ТУМАН: Карты раскрыты")
	}
}
