package game

// Command is the closed set of inputs the transition function accepts. The
// marker method keeps the union sealed inside this package.
type Command interface {
	isCommand()
}

// InitGame resets everything to the zero state (main menu).
type InitGame struct{}

// StartGame produces a fresh run. Deck is nil for a standard run; Content is
// the read-only display-metadata snapshot supplied by the caller.
type StartGame struct {
	Deck         *DeckConfig `json:"deck,omitempty"`
	RunType      RunType     `json:"run_type"`
	TemplateName string      `json:"template_name,omitempty"`
	Content      ContentMeta `json:"content"`
}

// ToggleGodMode flips the damage-nullifying debug toggle.
type ToggleGodMode struct{}

// ActivateCurse picks the run's curse. Valid only before the first action.
type ActivateCurse struct {
	Curse Curse    `json:"curse"`
	Meta  CardMeta `json:"meta"`
}

// TakeCardToHand moves a table card into an empty, unblocked hand slot.
type TakeCardToHand struct {
	CardID string   `json:"card_id"`
	Hand   HandKind `json:"hand"`
}

// InteractWithMonster resolves a monster against the body or a hand slot.
type InteractWithMonster struct {
	MonsterID string         `json:"monster_id"`
	Target    InteractTarget `json:"target"`
}

// UseSpellOnTarget casts a spell card. TargetID is empty for untargeted spells.
type UseSpellOnTarget struct {
	SpellCardID string `json:"spell_card_id"`
	TargetID    string `json:"target_id,omitempty"`
}

// SellItem discards a card from hand, backpack or table for coins.
type SellItem struct {
	CardID string `json:"card_id"`
}

// ResetHand returns all four table cards to the deck for 5 HP.
type ResetHand struct{}

// MerchantBuy purchases one of the merchant's offers into a hand slot.
type MerchantBuy struct {
	OfferID string   `json:"offer_id"`
	Hand    HandKind `json:"hand"`
}

// MerchantLeave closes the merchant and performs the deferred refill.
type MerchantLeave struct{}

// AddCoins is a cheat command.
type AddCoins struct {
	Amount int `json:"amount"`
}

// ScheduleMerchantNextRound is a cheat command forcing a merchant visit.
type ScheduleMerchantNextRound struct{}

// ClearScout dismisses the currently revealed deck peek.
type ClearScout struct{}

func (InitGame) isCommand()                  {}
func (StartGame) isCommand()                 {}
func (ToggleGodMode) isCommand()             {}
func (ActivateCurse) isCommand()             {}
func (TakeCardToHand) isCommand()            {}
func (InteractWithMonster) isCommand()       {}
func (UseSpellOnTarget) isCommand()          {}
func (SellItem) isCommand()                  {}
func (ResetHand) isCommand()                 {}
func (MerchantBuy) isCommand()               {}
func (MerchantLeave) isCommand()             {}
func (AddCoins) isCommand()                  {}
func (ScheduleMerchantNextRound) isCommand() {}
func (ClearScout) isCommand()                {}

// DeckConfig describes a custom run: explicit value arrays per category plus
// explicit monster groups. The factory shuffles the combined set.
type DeckConfig struct {
	Coins    []int          `json:"coins"`
	Potions  []int          `json:"potions"`
	Shields  []int          `json:"shields"`
	Weapons  []int          `json:"weapons"`
	Spells   []SpellKind    `json:"spells"`
	Monsters []MonsterGroup `json:"monsters"`
}

// MonsterGroup is one row of a custom deck's monster table.
type MonsterGroup struct {
	Value   int         `json:"value"`
	Count   int         `json:"count"`
	Ability AbilityKind `json:"ability,omitempty"`
	Label   LabelKind   `json:"label,omitempty"`
}

// CardCount is the total number of cards the config produces.
func (dc *DeckConfig) CardCount() int {
	n := len(dc.Coins) + len(dc.Potions) + len(dc.Shields) + len(dc.Weapons) + len(dc.Spells)
	for _, g := range dc.Monsters {
		n += g.Count
	}
	return n
}

// CardMeta is the minimal display metadata for one piece of content.
type CardMeta struct {
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ContentMeta is the read-only snapshot of display metadata attached to
// StartGame. The engine never queries a content store; it only labels the
// cards it generates from this snapshot, falling back to placeholders.
type ContentMeta struct {
	Spells     map[SpellKind]CardMeta   `json:"spells,omitempty"`
	Abilities  map[AbilityKind]CardMeta `json:"abilities,omitempty"`
	BaseSpells []SpellKind              `json:"base_spells,omitempty"`
}

// SpellMeta returns display metadata for a spell, or a generic placeholder.
func (m ContentMeta) SpellMeta(k SpellKind) CardMeta {
	if meta, ok := m.Spells[k]; ok {
		return meta
	}
	return CardMeta{Icon: "📜", Name: string(k)}
}

// AbilityMeta returns display metadata for an ability, or a placeholder.
func (m ContentMeta) AbilityMeta(k AbilityKind) CardMeta {
	if meta, ok := m.Abilities[k]; ok {
		return meta
	}
	return CardMeta{Icon: "❔", Name: string(k)}
}

// SpellList returns the configured base spell list or the built-in default.
func (m ContentMeta) SpellList() []SpellKind {
	if len(m.BaseSpells) > 0 {
		return m.BaseSpells
	}
	return BaseSpells
}
