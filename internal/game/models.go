package game

// CardKind identifies what a card does when interacted with. The closed set
// includes the purchasable artifact kinds offered by the traveling merchant.
type CardKind string

const (
	KindMonster CardKind = "monster"
	KindWeapon  CardKind = "weapon"
	KindShield  CardKind = "shield"
	KindPotion  CardKind = "potion"
	KindCoin    CardKind = "coin"
	KindSpell   CardKind = "spell"
	KindSkull   CardKind = "skull"

	// Merchant artifacts.
	KindClaymore CardKind = "claymore" // durable weapon, loses durability instead of breaking in one hit
	KindElixir   CardKind = "elixir"   // strong potion, consumed on purchase
	KindTalisman CardKind = "talisman" // +1 coin per kill while held; cannot be sold
	KindPrism    CardKind = "prism"    // +1 spell damage while held; sells at double price
)

// LabelKind is a cosmetic tier shown on monster cards.
type LabelKind string

const (
	LabelOrdinary LabelKind = "ordinary"
	LabelMedium   LabelKind = "medium"
	LabelTank     LabelKind = "tank"
	LabelMiniBoss LabelKind = "miniboss"
	LabelBoss     LabelKind = "boss"
)

// SpellKind is the closed set of spell effects.
type SpellKind string

const (
	SpellFireball   SpellKind = "fireball"
	SpellHeal       SpellKind = "heal"
	SpellVolley     SpellKind = "volley"
	SpellMidas      SpellKind = "midas"
	SpellScout      SpellKind = "scout"
	SpellFrost      SpellKind = "frost"
	SpellExecution  SpellKind = "execution"
	SpellSacrifice  SpellKind = "sacrifice"
	SpellEcho       SpellKind = "echo"
	SpellSnack      SpellKind = "snack"
	SpellArmor      SpellKind = "armor"
	SpellDeflection SpellKind = "deflection"
	SpellTrophy     SpellKind = "trophy"
	SpellStorm      SpellKind = "storm"
	SpellSplit      SpellKind = "split"
	SpellWeaken     SpellKind = "weaken"
	SpellBloodPact  SpellKind = "bloodpact"
	SpellPurify     SpellKind = "purify"
	SpellRecall     SpellKind = "recall"
	SpellAlchemy    SpellKind = "alchemy"
)

// BaseSpells are the five spells present in the standard 54-card deck.
var BaseSpells = []SpellKind{SpellFireball, SpellHeal, SpellVolley, SpellMidas, SpellScout}

// Spells lists every spell kind; template validation checks against it.
var Spells = []SpellKind{
	SpellFireball, SpellHeal, SpellVolley, SpellMidas, SpellScout,
	SpellFrost, SpellExecution, SpellSacrifice, SpellEcho, SpellSnack,
	SpellArmor, SpellDeflection, SpellTrophy, SpellStorm, SpellSplit,
	SpellWeaken, SpellBloodPact, SpellPurify, SpellRecall, SpellAlchemy,
}

// AbilityKind is the closed set of monster abilities.
type AbilityKind string

const (
	// On-spawn abilities.
	AbilityAmbush      AbilityKind = "ambush"       // 1 damage to the player on spawn
	AbilityCorpseEater AbilityKind = "corpse_eater" // gains HP per coin card in the discard pile
	AbilityExhaustion  AbilityKind = "exhaustion"   // player max HP -1

	// On-kill abilities.
	AbilityCommission AbilityKind = "commission" // -3 player coins
	AbilityWhisper    AbilityKind = "whisper"    // peek the next deck card
	AbilityBeacon     AbilityKind = "beacon"     // peek the next three deck cards
	AbilityBreach     AbilityKind = "breach"     // destroys a random equipped shield
	AbilityDisarm     AbilityKind = "disarm"     // destroys a random equipped weapon
	AbilityTheft      AbilityKind = "theft"      // destroys a random equipped item
	AbilityBlessing   AbilityKind = "blessing"   // +2 player HP
	AbilityBones      AbilityKind = "bones"      // shuffles a skull into the deck
	AbilityJunk       AbilityKind = "junk"       // drops a skull into the backpack
	AbilityLegacy     AbilityKind = "legacy"     // +1 HP to all other table monsters
	AbilityCorrosion  AbilityKind = "corrosion"  // -2 value to a random equipped item
	AbilityMiss       AbilityKind = "miss"       // next weapon attack is weakened

	// Passive abilities.
	AbilityStealth  AbilityKind = "stealth"  // untargetable while a non-stealth monster remains
	AbilitySilence  AbilityKind = "silence"  // blocks all spell casts while on the table
	AbilityMirror   AbilityKind = "mirror"   // HP pegged to the best available weapon damage
	AbilityFlee     AbilityKind = "flee"     // returns to the deck instead of dropping to low HP
	AbilityTrample  AbilityKind = "trample"  // destroys shields outright
	AbilityScream   AbilityKind = "scream"   // blocks all selling while on the table
	AbilityWeb      AbilityKind = "web"      // blocks the backpack slot while on the table
	AbilityParasite AbilityKind = "parasite" // +1 HP on every kill
)

// Abilities lists every monster ability; the deck factory draws from it when
// assigning abilities to standard-run monsters.
var Abilities = []AbilityKind{
	AbilityAmbush, AbilityCorpseEater, AbilityExhaustion,
	AbilityCommission, AbilityWhisper, AbilityBeacon,
	AbilityBreach, AbilityDisarm, AbilityTheft,
	AbilityBlessing, AbilityBones, AbilityJunk,
	AbilityLegacy, AbilityCorrosion, AbilityMiss,
	AbilityStealth, AbilitySilence, AbilityMirror,
	AbilityFlee, AbilityTrample, AbilityScream,
	AbilityWeb, AbilityParasite,
}

// Curse is a run-long modifier picked once before the first action.
type Curse string

const (
	CurseNone      Curse = ""
	CurseFog       Curse = "fog"       // hides 2 of 4 table cards at each refill
	CurseFullMoon  Curse = "fullmoon"  // every kill heals the other monsters +1 HP
	CursePoison    Curse = "poison"    // potions heal 1 less
	CurseTempering Curse = "tempering" // weapons deal 1 more
	CurseGreed     Curse = "greed"     // +2 bonus coins per collected coin card
)

// Curses lists the selectable curse kinds.
var Curses = []Curse{CurseFog, CurseFullMoon, CursePoison, CurseTempering, CurseGreed}

// EffectKind is a one-shot buff (or debuff) sitting in the active-effects
// multiset until something consumes it.
type EffectKind string

const (
	EffectTrophy     EffectKind = "trophy"     // +2 coins on the next kill
	EffectDeflection EffectKind = "deflection" // redirects the next body attack
	EffectEcho       EffectKind = "echo"       // the next damaging spell fires twice
	EffectSnack      EffectKind = "snack"      // next potion overheal converts to coins
	EffectArmor      EffectKind = "armor"      // negates the next body attack
	EffectMiss       EffectKind = "miss"       // next weapon attack deals 2 less
)

// HandKind addresses one of the three hand slots.
type HandKind string

const (
	HandLeft     HandKind = "left"
	HandRight    HandKind = "right"
	HandBackpack HandKind = "backpack"
)

// InteractTarget says what a monster interaction is resolved against: the
// player's body or whatever occupies the named hand slot.
type InteractTarget string

const (
	TargetBody     InteractTarget = "body"
	TargetLeft     InteractTarget = "left"
	TargetRight    InteractTarget = "right"
	TargetBackpack InteractTarget = "backpack"
)

// Status is the run lifecycle state. Won and lost are terminal.
type Status string

const (
	StatusIdle    Status = ""
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// RunType distinguishes standard runs from template/custom ones.
type RunType string

const (
	RunStandard RunType = "standard"
	RunCustom   RunType = "custom"
)

// Card is the universal entity: monsters, items, coins, spells and merchant
// artifacts are all cards. Value is current HP for monsters and magnitude for
// everything else; MaxValue is set for monsters (and claymores) so current
// and maximum stay distinguishable.
type Card struct {
	ID          string      `json:"id"`
	Kind        CardKind    `json:"kind"`
	Value       int         `json:"value"`
	MaxValue    int         `json:"max_value,omitempty"`
	Spell       SpellKind   `json:"spell,omitempty"`
	Ability     AbilityKind `json:"ability,omitempty"`
	Label       LabelKind   `json:"label,omitempty"`
	Icon        string      `json:"icon,omitempty"`
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	// PriceMultiplier scales the sell/buy price; 0 means 1x.
	PriceMultiplier float64 `json:"price_multiplier,omitempty"`
	// Hidden marks a card concealed by the fog curse.
	Hidden bool `json:"hidden,omitempty"`
}

// IsMonster reports whether the card fights back.
func (c *Card) IsMonster() bool { return c != nil && c.Kind == KindMonster }

// IsWeapon reports whether the card can be swung at a monster.
func (c *Card) IsWeapon() bool {
	return c != nil && (c.Kind == KindWeapon || c.Kind == KindClaymore)
}

// Price is the coin value of the card when sold or bought.
func (c *Card) Price() int {
	m := c.PriceMultiplier
	if m == 0 {
		m = 1
	}
	return int(float64(c.Value) * m)
}

// Player is the hero: hit points and the coin purse.
type Player struct {
	HP    int `json:"hp"`
	MaxHP int `json:"max_hp"`
	Coins int `json:"coins"`
}

// HandSlot holds at most one card. A blocked slot stays locked until the
// next round transition clears it.
type HandSlot struct {
	Card    *Card `json:"card"`
	Blocked bool  `json:"blocked"`
}

// LogEntry is one line of the bounded gameplay log ring.
type LogEntry struct {
	Message string `json:"message"`
	At      int64  `json:"at"`
}

// MaxLogEntries bounds the log ring kept on the state.
const MaxLogEntries = 30

// Overheads are monotonic waste counters for the whole run.
type Overheads struct {
	Overheal   int `json:"overheal"`
	Overdamage int `json:"overdamage"`
	Overdef    int `json:"overdef"`
}

// Stats accumulates run totals handed to storage after the run ends.
type Stats struct {
	MonstersKilled int     `json:"monsters_killed"`
	CoinsCollected int     `json:"coins_collected"`
	HPHealed       int     `json:"hp_healed"`
	DamageDealt    int     `json:"damage_dealt"`
	DamageBlocked  int     `json:"damage_blocked"`
	DamageTaken    int     `json:"damage_taken"`
	ResetsUsed     int     `json:"resets_used"`
	ItemsSold      int     `json:"items_sold"`
	StartedAt      int64   `json:"started_at"`
	EndedAt        int64   `json:"ended_at"`
	RunType        RunType `json:"run_type"`
}

// Merchant is the traveling-merchant sub-state. ScheduledRound is 0 when no
// visit is scheduled for the run.
type Merchant struct {
	Active         bool   `json:"active"`
	ScheduledRound int    `json:"scheduled_round"`
	Offers         []Card `json:"offers,omitempty"`
	SoldThisVisit  bool   `json:"sold_this_visit"`
}

// TableSize is the number of table slots cards are drawn onto.
const TableSize = 4

// State is the full snapshot the transition function maps over. The deck top
// is the end of the slice.
type State struct {
	Deck     []Card              `json:"deck"`
	Discard  []Card              `json:"discard"`
	Table    [TableSize]*Card    `json:"table"`
	Left     HandSlot            `json:"left_hand"`
	Right    HandSlot            `json:"right_hand"`
	Backpack HandSlot            `json:"backpack"`
	Player   Player              `json:"player"`
	Round    int                 `json:"round"`
	Status   Status              `json:"status"`
	Logs     []LogEntry          `json:"logs"`
	Overhead Overheads           `json:"overheads"`
	Stats    Stats               `json:"stats"`
	Effects  []EffectKind        `json:"active_effects,omitempty"`
	Curse    Curse               `json:"curse,omitempty"`
	HasActed bool                `json:"has_acted"`
	Merchant Merchant            `json:"merchant"`
	GodMode  bool                `json:"god_mode"`
	// Scout holds cards revealed by peek effects until explicitly cleared.
	Scout []Card `json:"scout,omitempty"`
}

// Hand returns the addressed hand slot, or nil for an unknown kind.
func (s *State) Hand(h HandKind) *HandSlot {
	switch h {
	case HandLeft:
		return &s.Left
	case HandRight:
		return &s.Right
	case HandBackpack:
		return &s.Backpack
	}
	return nil
}

// HandSlots returns the three hand slots in a fixed order.
func (s *State) HandSlots() []*HandSlot {
	return []*HandSlot{&s.Left, &s.Right, &s.Backpack}
}

// TableCount is the number of occupied table slots.
func (s *State) TableCount() int {
	n := 0
	for _, c := range s.Table {
		if c != nil {
			n++
		}
	}
	return n
}

// HasEffect reports whether at least one instance of the effect is active.
func (s *State) HasEffect(e EffectKind) bool {
	for _, v := range s.Effects {
		if v == e {
			return true
		}
	}
	return false
}

// ConsumeEffect removes one instance of the effect and reports whether one
// was present.
func (s *State) ConsumeEffect(e EffectKind) bool {
	for i, v := range s.Effects {
		if v == e {
			s.Effects = append(s.Effects[:i], s.Effects[i+1:]...)
			return true
		}
	}
	return false
}

// Clone deep-copies the snapshot so the transition function never aliases
// the caller's state.
func (s State) Clone() State {
	out := s
	out.Deck = cloneCards(s.Deck)
	out.Discard = cloneCards(s.Discard)
	for i, c := range s.Table {
		if c != nil {
			cc := *c
			out.Table[i] = &cc
		}
	}
	out.Left = s.Left.clone()
	out.Right = s.Right.clone()
	out.Backpack = s.Backpack.clone()
	out.Logs = append([]LogEntry(nil), s.Logs...)
	out.Effects = append([]EffectKind(nil), s.Effects...)
	out.Merchant.Offers = cloneCards(s.Merchant.Offers)
	out.Scout = cloneCards(s.Scout)
	return out
}

func (h HandSlot) clone() HandSlot {
	if h.Card != nil {
		cc := *h.Card
		h.Card = &cc
	}
	return h
}

func cloneCards(cs []Card) []Card {
	if cs == nil {
		return nil
	}
	return append([]Card(nil), cs...)
}
