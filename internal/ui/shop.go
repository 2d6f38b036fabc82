package ui

import (
	"fmt"

	"clear-skies/internal/core"
	"clear-skies/internal/world"
)

// Offer is a shop line.
type Offer struct {
	Item     string
	Price    int
	Cosmetic bool
}

// DefaultStock lists what the shop sells.
var DefaultStock = []Offer{
	{Item: "tomato seed", Price: 5},
	{Item: "corn seed", Price: 8},
	{Item: world.CosmeticGoggles, Price: 40, Cosmetic: true},
	{Item: world.CosmeticHat, Price: 25, Cosmetic: true},
}

// DefaultBuyback lists what the shop pays for produce.
var DefaultBuyback = []Offer{
	{Item: "tomato", Price: 12},
	{Item: "corn", Price: 20},
}

// Shop trades seeds, produce and cosmetics for money.
type Shop struct {
	*List
	player  *world.Player
	stock   []Offer
	buyback []Offer
	sw      Switcher
	status  string
}

// NewShop returns the shop menu. Escape leaves the shop.
func NewShop(player *world.Player, sw Switcher) *Shop {
	s := &Shop{List: NewList("Shop"), player: player, stock: DefaultStock, buyback: DefaultBuyback, sw: sw}
	s.OnBack(func() { sw.Switch(core.StatePlay) })
	s.refresh("")
	return s
}

// Buy purchases one unit of item. It reports whether the trade happened.
func (s *Shop) Buy(item string) bool {
	for _, o := range s.stock {
		if o.Item != item {
			continue
		}
		if s.player.Money < o.Price || (o.Cosmetic && s.player.Owns(o.Item)) {
			return false
		}
		s.player.Money -= o.Price
		if o.Cosmetic {
			s.player.Grant(o.Item)
		} else {
			s.player.Add(o.Item, 1)
		}
		return true
	}
	return false
}

// Sell trades one unit of item for money. It reports whether the trade happened.
func (s *Shop) Sell(item string) bool {
	for _, o := range s.buyback {
		if o.Item != item || s.player.Count(item) == 0 {
			continue
		}
		s.player.Add(item, -1)
		s.player.Money += o.Price
		return true
	}
	return false
}

// Update keeps the counts and balance current.
func (s *Shop) Update(dt float64) {
	s.List.Update(dt)
	s.refresh(s.status)
}

func (s *Shop) refresh(status string) {
	s.status = status
	var opts []Option
	for _, o := range s.stock {
		o := o
		opts = append(opts, Option{
			Label: fmt.Sprintf("Buy %s  %s", itemName(o.Item), money(o.Price)),
			Action: func() {
				if s.Buy(o.Item) {
					s.refresh("Bought " + o.Item)
				} else {
					s.refresh("Cannot buy " + o.Item)
				}
			},
		})
	}
	for _, o := range s.buyback {
		o := o
		opts = append(opts, Option{
			Label: fmt.Sprintf("Sell %s  %s  (have %d)", itemName(o.Item), money(o.Price), s.player.Count(o.Item)),
			Action: func() {
				if s.Sell(o.Item) {
					s.refresh("Sold " + o.Item)
				} else {
					s.refresh("No " + o.Item + " to sell")
				}
			},
		})
	}
	opts = append(opts, Option{Label: "Leave", Action: func() { s.sw.Switch(core.StatePlay) }})
	s.SetOptions(opts)
	s.Footer = []string{"Money: " + money(s.player.Money)}
	if status != "" {
		s.Footer = append(s.Footer, status)
	}
}
