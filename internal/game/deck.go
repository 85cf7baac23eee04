package game

import (
	"fmt"
	"math/rand"
)

// ReplacementWindow is how many cards a replacement draw reveals from the
// top of the deck.
const ReplacementWindow = 6

// Deck is a zone whose order is load-bearing: the front of the sequence is
// the top of the deck, and draws pop from the front.
type Deck struct {
	Zone
}

// NewDeck creates a deck from the given cards, capturing them as the
// reset template.
func NewDeck(cards []*Card) *Deck {
	return &Deck{Zone: *NewZone(cards)}
}

// DrawN removes and returns up to k cards from the top in order. Drawing
// from a short or empty deck is legal and returns whatever remains.
func (d *Deck) DrawN(k int) ([]*Card, error) {
	if k <= 0 {
		return nil, fmt.Errorf("draw %d: %w: count must be positive", k, ErrInvalidArgument)
	}
	if k > len(d.cards) {
		k = len(d.cards)
	}
	drawn := make([]*Card, k)
	copy(drawn, d.cards[:k])
	d.cards = d.cards[k:]
	return drawn, nil
}

// BottomCards appends cards to the bottom of the deck, optionally
// randomizing their relative order first. The deck's existing order is
// untouched either way.
func (d *Deck) BottomCards(cards []*Card, randomOrder bool, rng *rand.Rand) {
	if len(cards) == 0 {
		return
	}
	if randomOrder {
		shuffled := make([]*Card, len(cards))
		copy(shuffled, cards)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		cards = shuffled
	}
	d.cards = append(d.cards, cards...)
}

// TopCards prepends cards to the top of the deck, preserving their given
// order: the first card ends up on top, drawn soonest.
func (d *Deck) TopCards(cards []*Card) {
	if len(cards) == 0 {
		return
	}
	d.cards = append(append(make([]*Card, 0, len(cards)+len(d.cards)), cards...), d.cards...)
}

// Reset restores the deck to its template and optionally shuffles it.
// This is the standard per-trial entry point.
func (d *Deck) Reset(shuffle bool, rng *rand.Rand) {
	d.Zone.Reset()
	if shuffle {
		d.Shuffle(rng)
	}
}

// ResolveReplacementDraw models the "virgin birth" rule: reveal the top six
// cards (fewer if the deck is short), take one chosen by policy, return the
// rest to the top in revealed order, and bury the placeholder at the bottom.
//
// The optimizing policies prefer the non-lost-soul with the fewest actual
// brigades. When no card satisfies any priority tier, and under the uniform
// policy, the first revealed card is taken. A non-empty window always
// yields a card.
func (d *Deck) ResolveReplacementDraw(placeholder *Card, policy SelectionPolicy, rng *rand.Rand) (*Card, error) {
	window, err := d.DrawN(ReplacementWindow)
	if err != nil {
		return nil, err
	}
	if len(window) == 0 {
		// Deck was empty: nothing to take, the placeholder stays drawn.
		return placeholder, nil
	}

	pick := 0
	if policy == SelectMostBrigades || policy == SelectFewestBrigades {
		pick = -1
		best := -1
		for i, c := range window {
			if c.Type == CardTypeLostSoul {
				continue
			}
			if n := ActualBrigadeCount(c.Brigades); pick < 0 || n < best {
				best = n
				pick = i
			}
		}
		if pick < 0 {
			pick = 0
		}
	}

	chosen := window[pick]
	rest := append(window[:pick:pick], window[pick+1:]...)
	d.TopCards(rest)
	d.BottomCards([]*Card{placeholder}, false, rng)
	return chosen, nil
}
