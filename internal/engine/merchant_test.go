package engine

import (
	"testing"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
)

// merchantState builds a snapshot one command away from the scheduled visit.
func merchantState() game.State {
	s := playingState(item("c1", game.KindCoin, 2))
	s.Deck = []game.Card{monster("m9", 4), item("p9", game.KindPotion, 3), item("w9", game.KindWeapon, 5), item("s9", game.KindShield, 5)}
	s.Merchant.ScheduledRound = 2
	return s
}

func openedMerchant(t *testing.T) game.State {
	t.Helper()
	s := Apply(merchantState(), game.AddCoins{Amount: 50}, testEnv())
	if !s.Merchant.Active {
		t.Fatalf("expected the merchant to open, got %+v", s.Merchant)
	}
	return s
}

func TestMerchantOpensOnScheduledRound(t *testing.T) {
	s := openedMerchant(t)
	if len(s.Merchant.Offers) != 3 {
		t.Fatalf("expected 3 offers, got %d", len(s.Merchant.Offers))
	}
	if s.Merchant.ScheduledRound != 0 {
		t.Fatalf("the visit must consume its schedule")
	}
	if s.Round != 1 {
		t.Fatalf("the round transition is deferred during the visit, got round %d", s.Round)
	}
	if s.TableCount() != 1 {
		t.Fatalf("the refill is deferred during the visit, got %d cards", s.TableCount())
	}
}

func TestScheduledVisitSurvivesEmptiedTable(t *testing.T) {
	// A volley can clear the last two cards in one command, skipping the
	// one-card state; the scheduled visit still fires at the boundary.
	s := withSpell(playingState(monster("m1", 1), monster("m2", 1)), game.SpellVolley)
	s.Merchant.ScheduledRound = 2
	s.Deck = []game.Card{item("d1", game.KindCoin, 2), item("d2", game.KindCoin, 3)}

	next := Apply(s, game.UseSpellOnTarget{SpellCardID: "sp"}, testEnv())
	if !next.Merchant.Active {
		t.Fatalf("the due visit must open even when the table empties at once")
	}
	if len(next.Merchant.Offers) != 3 {
		t.Fatalf("expected 3 offers, got %d", len(next.Merchant.Offers))
	}
}

func TestMerchantLeaveResumesRound(t *testing.T) {
	s := openedMerchant(t)
	next := Apply(s, game.MerchantLeave{}, testEnv())
	if next.Merchant.Active {
		t.Fatalf("leave must close the visit")
	}
	if next.Round != 2 {
		t.Fatalf("expected the deferred transition to round 2, got %d", next.Round)
	}
	if next.TableCount() != game.TableSize {
		t.Fatalf("expected the deferred refill, got %d cards", next.TableCount())
	}
}

func TestMerchantBuyArtifact(t *testing.T) {
	s := openedMerchant(t)
	var offer game.Card
	found := false
	for _, o := range s.Merchant.Offers {
		if o.Kind != game.KindElixir {
			offer = o
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected a non-elixir offer in %+v", s.Merchant.Offers)
	}

	coins := s.Player.Coins
	next := Apply(s, game.MerchantBuy{OfferID: offer.ID, Hand: game.HandLeft}, testEnv())
	if next.Left.Card == nil || next.Left.Card.Kind != offer.Kind {
		t.Fatalf("the bought artifact must land in the chosen hand, got %+v", next.Left.Card)
	}
	if next.Player.Coins != coins-offer.Price() {
		t.Fatalf("expected %d coins after the purchase, got %d", coins-offer.Price(), next.Player.Coins)
	}
	if next.Merchant.Active {
		t.Fatalf("a purchase ends the visit")
	}
	if next.Round != 2 {
		t.Fatalf("the deferred transition must run after the purchase, got round %d", next.Round)
	}
	if !next.HasActed {
		t.Fatalf("a purchase is an action")
	}
}

func TestMerchantRejectsPoorBuyer(t *testing.T) {
	s := Apply(merchantState(), game.AddCoins{Amount: 1}, testEnv())
	if !s.Merchant.Active {
		t.Fatalf("expected the merchant to open")
	}
	offer := s.Merchant.Offers[0]
	next := Apply(s, game.MerchantBuy{OfferID: offer.ID, Hand: game.HandLeft}, testEnv())
	if !next.Merchant.Active || next.Left.Card != nil {
		t.Fatalf("a buyer who cannot pay keeps browsing")
	}
	last := next.Logs[len(next.Logs)-1].Message
	if last != "ТОРГОВЕЦ: Не хватает монет" {
		t.Fatalf("expected the refusal log line, got %q", last)
	}
}

func TestMerchantSellOnePerVisit(t *testing.T) {
	s := openedMerchant(t)
	potion := item("p1", game.KindPotion, 6)
	s.Backpack.Card = &potion
	coins := s.Player.Coins

	next := Apply(s, game.SellItem{CardID: "p1"}, testEnv())
	if next.Backpack.Card != nil {
		t.Fatalf("the backpack sale must go through")
	}
	if next.Player.Coins != coins+6 {
		t.Fatalf("expected +6 coins, got %d", next.Player.Coins)
	}
	if !next.Merchant.SoldThisVisit {
		t.Fatalf("the visit must remember the sale")
	}

	second := item("p2", game.KindPotion, 4)
	next.Backpack.Card = &second
	after := Apply(next, game.SellItem{CardID: "p2"}, testEnv())
	if after.Backpack.Card == nil {
		t.Fatalf("only one sale per visit is allowed")
	}
}

func TestMerchantIgnoresTableCommands(t *testing.T) {
	s := openedMerchant(t)
	next := Apply(s, game.TakeCardToHand{CardID: "c1", Hand: game.HandLeft}, testEnv())
	if next.Left.Card != nil || next.Player.Coins != s.Player.Coins {
		t.Fatalf("table commands must be inert during the visit")
	}
	next = Apply(s, game.ResetHand{}, testEnv())
	if next.Stats.ResetsUsed != 0 {
		t.Fatalf("resets must be inert during the visit")
	}
}

func TestScheduleMerchantCheat(t *testing.T) {
	s := playingState(monster("m1", 5), monster("m2", 5))
	next := Apply(s, game.ScheduleMerchantNextRound{}, testEnv())
	if next.Merchant.ScheduledRound != next.Round+1 {
		t.Fatalf("expected a visit scheduled for the next round, got %d", next.Merchant.ScheduledRound)
	}
}

func TestElixirDrunkOnPurchase(t *testing.T) {
	s := openedMerchant(t)
	var elixir game.Card
	found := false
	for _, o := range s.Merchant.Offers {
		if o.Kind == game.KindElixir {
			elixir = o
			found = true
			break
		}
	}
	if !found {
		t.Skip("the draw left the elixir out of this visit's offers")
	}
	s.Player.HP = 5
	next := Apply(s, game.MerchantBuy{OfferID: elixir.ID}, testEnv())
	if next.Player.HP != 13 {
		t.Fatalf("the elixir heals 8 on purchase, got HP %d", next.Player.HP)
	}
	if next.Left.Card != nil || next.Right.Card != nil || next.Backpack.Card != nil {
		t.Fatalf("an elixir never occupies a slot")
	}
}
