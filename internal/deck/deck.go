// Package deck assembles and shuffles run decks. The standard deck is 54
// cards; custom decks are built from an explicit DeckConfig. All randomness
// routes through the injected rng.Rand.
package deck

import (
	"strconv"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/rng"
)

// Standard deck composition: 19 monsters (2-10, heavier at 10), 9 coins,
// 9 potions, 6 shields, 6 weapons, 5 base spells.
var (
	standardMonsterValues = []int{2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 10}
	standardCoinValues    = []int{2, 3, 4, 5, 6, 7, 8, 9, 10}
	standardPotionValues  = []int{2, 3, 4, 5, 6, 7, 8, 9, 10}
	standardShieldValues  = []int{2, 3, 4, 5, 6, 7}
	standardWeaponValues  = []int{2, 3, 4, 5, 6, 7}
)

// abilityChance is the probability a standard-run monster spawns with an
// ability.
const abilityChance = 0.35

// NewCardID derives a short unique id from the injected Rand so deck
// assembly stays reproducible per seed.
func NewCardID(r rng.Rand) string {
	n := int64(r.NextFloat() * (1 << 52))
	return "c" + strconv.FormatInt(n, 36)
}

// New builds a shuffled deck. A nil config produces the standard 54-card
// deck; otherwise the config's explicit categories are used.
func New(cfg *game.DeckConfig, content game.ContentMeta, r rng.Rand) []game.Card {
	var cards []game.Card
	if cfg == nil {
		cards = standardCards(content, r)
	} else {
		cards = customCards(cfg, content, r)
	}
	Shuffle(cards, r)
	return cards
}

func standardCards(content game.ContentMeta, r rng.Rand) []game.Card {
	cards := make([]game.Card, 0, 54)
	for _, v := range standardMonsterValues {
		m := monsterCard(v, "", labelForValue(v), content, r)
		if r.NextFloat() < abilityChance {
			m.Ability = game.Abilities[index(r, len(game.Abilities))]
			meta := content.AbilityMeta(m.Ability)
			m.Name = meta.Name
			m.Description = meta.Description
		}
		cards = append(cards, m)
	}
	for _, v := range standardCoinValues {
		cards = append(cards, itemCard(game.KindCoin, v, "🪙", r))
	}
	for _, v := range standardPotionValues {
		cards = append(cards, itemCard(game.KindPotion, v, "🧪", r))
	}
	for _, v := range standardShieldValues {
		cards = append(cards, itemCard(game.KindShield, v, "🛡️", r))
	}
	for _, v := range standardWeaponValues {
		cards = append(cards, itemCard(game.KindWeapon, v, "🗡️", r))
	}
	for _, sp := range content.SpellList() {
		cards = append(cards, SpellCard(sp, content, r))
	}
	return cards
}

func customCards(cfg *game.DeckConfig, content game.ContentMeta, r rng.Rand) []game.Card {
	cards := make([]game.Card, 0, cfg.CardCount())
	for _, g := range cfg.Monsters {
		for i := 0; i < g.Count; i++ {
			label := g.Label
			if label == "" {
				label = labelForValue(g.Value)
			}
			m := monsterCard(g.Value, g.Ability, label, content, r)
			cards = append(cards, m)
		}
	}
	for _, v := range cfg.Coins {
		cards = append(cards, itemCard(game.KindCoin, v, "🪙", r))
	}
	for _, v := range cfg.Potions {
		cards = append(cards, itemCard(game.KindPotion, v, "🧪", r))
	}
	for _, v := range cfg.Shields {
		cards = append(cards, itemCard(game.KindShield, v, "🛡️", r))
	}
	for _, v := range cfg.Weapons {
		cards = append(cards, itemCard(game.KindWeapon, v, "🗡️", r))
	}
	for _, sp := range cfg.Spells {
		cards = append(cards, SpellCard(sp, content, r))
	}
	return cards
}

// SpellCard builds a spell card labeled from the content snapshot. The
// engine also uses it for spells produced mid-run.
func SpellCard(kind game.SpellKind, content game.ContentMeta, r rng.Rand) game.Card {
	meta := content.SpellMeta(kind)
	return game.Card{
		ID:          NewCardID(r),
		Kind:        game.KindSpell,
		Spell:       kind,
		Icon:        meta.Icon,
		Name:        meta.Name,
		Description: meta.Description,
	}
}

// SkullCard builds a worthless skull card inserted by bones/junk abilities.
func SkullCard(r rng.Rand) game.Card {
	return game.Card{ID: NewCardID(r), Kind: game.KindSkull, Icon: "💀", Name: "Череп"}
}

func monsterCard(value int, ability game.AbilityKind, label game.LabelKind, content game.ContentMeta, r rng.Rand) game.Card {
	c := game.Card{
		ID:       NewCardID(r),
		Kind:     game.KindMonster,
		Value:    value,
		MaxValue: value,
		Label:    label,
		Icon:     "👹",
		Ability:  ability,
	}
	if ability != "" {
		meta := content.AbilityMeta(ability)
		c.Name = meta.Name
		c.Description = meta.Description
	}
	return c
}

func itemCard(kind game.CardKind, value int, icon string, r rng.Rand) game.Card {
	return game.Card{ID: NewCardID(r), Kind: kind, Value: value, Icon: icon}
}

func labelForValue(v int) game.LabelKind {
	switch {
	case v >= 10:
		return game.LabelBoss
	case v >= 8:
		return game.LabelTank
	case v >= 5:
		return game.LabelMedium
	default:
		return game.LabelOrdinary
	}
}

// Shuffle performs an in-place Fisher-Yates shuffle driven by the injected
// Rand. Every permutation is equally likely for a uniform source.
func Shuffle(cards []game.Card, r rng.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := index(r, i+1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// index maps one NextFloat draw onto [0, n).
func index(r rng.Rand, n int) int {
	i := int(r.NextFloat() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
