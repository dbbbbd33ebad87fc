package engine

import (
	"strconv"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/deck"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
)

// merchant offer pool. Three of these are drawn per visit.
func (rc *runContext) offerPool() []game.Card {
	r := rc.env.Rand
	return []game.Card{
		{ID: deck.NewCardID(r), Kind: game.KindClaymore, Value: 7, MaxValue: 7, Icon: "⚔️", Name: "Клеймор", PriceMultiplier: 1.5},
		{ID: deck.NewCardID(r), Kind: game.KindElixir, Value: 8, Icon: "🍾", Name: "Эликсир"},
		{ID: deck.NewCardID(r), Kind: game.KindTalisman, Value: 5, Icon: "🧿", Name: "Талисман", PriceMultiplier: 2},
		{ID: deck.NewCardID(r), Kind: game.KindPrism, Value: 4, Icon: "🔮", Name: "Призма", PriceMultiplier: 2},
	}
}

// openMerchant replaces the due round transition with the merchant overlay.
// The refill is deferred until the visit ends.
func (rc *runContext) openMerchant() {
	pool := rc.offerPool()
	offers := make([]game.Card, 0, 3)
	for n := 0; n < 3; n++ {
		i := rc.pick(len(pool))
		offers = append(offers, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}
	rc.s.Merchant.Active = true
	rc.s.Merchant.SoldThisVisit = false
	rc.s.Merchant.Offers = offers
	rc.s.Merchant.ScheduledRound = 0
	rc.log("ТОРГОВЕЦ: Странник раскладывает товар")
}

// merchantLeave closes the visit and performs the deferred refill.
func (rc *runContext) merchantLeave() {
	rc.closeMerchant()
}

func (rc *runContext) closeMerchant() {
	rc.s.Merchant.Active = false
	rc.s.Merchant.Offers = nil
	rc.log("ТОРГОВЕЦ: Странник уходит")
	rc.advanceRound()
	rc.repegMirrors()
}

// merchantBuy purchases one offer. An elixir is drunk on the spot; other
// artifacts go into the chosen hand slot. Completing a purchase ends the
// visit.
func (rc *runContext) merchantBuy(c game.MerchantBuy) {
	var offer *game.Card
	oi := -1
	for i := range rc.s.Merchant.Offers {
		if rc.s.Merchant.Offers[i].ID == c.OfferID {
			offer = &rc.s.Merchant.Offers[i]
			oi = i
			break
		}
	}
	if offer == nil {
		return
	}
	price := offer.Price()
	if rc.s.Player.Coins < price {
		rc.log("ТОРГОВЕЦ: Не хватает монет")
		return
	}

	if offer.Kind == game.KindElixir {
		rc.s.Player.Coins -= price
		rc.drinkPotion(*offer)
	} else {
		slot := rc.s.Hand(c.Hand)
		if slot == nil || slot.Card != nil || slot.Blocked {
			return
		}
		if c.Hand == game.HandBackpack && rc.hasTableAbility(game.AbilityWeb) {
			rc.log("ПАУТИНА: Рюкзак заблокирован!")
			return
		}
		rc.s.Player.Coins -= price
		bought := *offer
		slot.Card = &bought
	}
	rc.s.HasActed = true
	rc.s.Merchant.Offers = append(rc.s.Merchant.Offers[:oi], rc.s.Merchant.Offers[oi+1:]...)
	rc.log("ПОКУПКА: -" + strconv.Itoa(price) + " монет")
	rc.closeMerchant()
}

// merchantSell allows exactly one sale per visit, from the backpack only.
func (rc *runContext) merchantSell(c game.SellItem) {
	if rc.s.Merchant.SoldThisVisit {
		return
	}
	card := rc.s.Backpack.Card
	if card == nil || card.ID != c.CardID || !sellable(card) {
		return
	}
	if rc.hasTableAbility(game.AbilityScream) {
		rc.log("КРИК: Торговля заблокирована!")
		return
	}
	rc.s.Merchant.SoldThisVisit = true
	rc.creditSale(card, func() { rc.s.Backpack.Card = nil })
	rc.s.HasActed = true
}
