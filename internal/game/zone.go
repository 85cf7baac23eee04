package game

import "math/rand"

// Zone is an ordered, mutable collection of cards representing one named
// area of play. A card belongs to exactly one zone at a time: movement
// between zones is always a remove followed by an add, never a copy.
//
// Zones constructed with cards capture an immutable template snapshot so
// Reset can restore the starting list between trials. Zones constructed
// empty simply clear on Reset.
type Zone struct {
	cards    []*Card
	template []*Card // nil when no template was captured
}

// NewZone creates a zone holding the given cards and captures them as the
// zone's template. The snapshot is a copy: later mutation of the live zone
// never corrupts the template.
func NewZone(cards []*Card) *Zone {
	z := &Zone{}
	if cards != nil {
		z.cards = make([]*Card, len(cards))
		copy(z.cards, cards)
		z.template = make([]*Card, len(cards))
		copy(z.template, cards)
	}
	return z
}

// NewEmptyZone creates a zone with no cards and no template.
func NewEmptyZone() *Zone {
	return &Zone{}
}

// Len returns the number of cards in the zone.
func (z *Zone) Len() int {
	return len(z.cards)
}

// Cards returns the zone's cards in order for read-only scans.
// Callers must not mutate the returned slice.
func (z *Zone) Cards() []*Card {
	return z.cards
}

// Add appends cards to the end of the zone. Adding none is a no-op.
func (z *Zone) Add(cards ...*Card) {
	z.cards = append(z.cards, cards...)
}

// Count returns the number of cards matching all supplied criteria.
func (z *Zone) Count(q Query) (int, error) {
	if q.Empty() {
		return 0, ErrInvalidQuery
	}
	n := 0
	for _, c := range z.cards {
		if q.Matches(c) {
			n++
		}
	}
	return n, nil
}

// Contains reports whether any card matches the query.
func (z *Zone) Contains(q Query) (bool, error) {
	n, err := z.Count(q)
	return n > 0, err
}

// Remove removes and returns the first card matching the query in sequence
// order. A missing card is a normal result: (nil, nil), never an error.
func (z *Zone) Remove(q Query) (*Card, error) {
	return z.SearchFor(q, 0)
}

// SearchFor is Remove restricted to the first topN cards of the zone when
// topN > 0, modeling "look at the top N" game actions. topN <= 0 searches
// the whole zone.
func (z *Zone) SearchFor(q Query, topN int) (*Card, error) {
	if q.Empty() {
		return nil, ErrInvalidQuery
	}
	limit := len(z.cards)
	if topN > 0 && topN < limit {
		limit = topN
	}
	for i := 0; i < limit; i++ {
		if q.Matches(z.cards[i]) {
			return z.removeAt(i), nil
		}
	}
	return nil, nil
}

// RemoveByPolicy removes and returns a non-lost-soul card chosen by the
// given policy over the whole zone, or nil when no candidate exists.
func (z *Zone) RemoveByPolicy(p SelectionPolicy, rng *rand.Rand) *Card {
	return z.removeByPolicy(func(c *Card) bool { return c.Type != CardTypeLostSoul }, p, rng)
}

// RemoveMatchingByPolicy is RemoveByPolicy with the candidate set narrowed
// to cards matching the query instead of all non-lost-souls.
func (z *Zone) RemoveMatchingByPolicy(q Query, p SelectionPolicy, rng *rand.Rand) (*Card, error) {
	if q.Empty() {
		return nil, ErrInvalidQuery
	}
	return z.removeByPolicy(q.Matches, p, rng), nil
}

func (z *Zone) removeByPolicy(match func(*Card) bool, p SelectionPolicy, rng *rand.Rand) *Card {
	var candidates []int
	for i, c := range z.cards {
		if match(c) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	pick := candidates[0]
	switch p {
	case SelectUniform:
		pick = candidates[rng.Intn(len(candidates))]
	case SelectMostBrigades:
		best := -1
		for _, i := range candidates {
			if n := ActualBrigadeCount(z.cards[i].Brigades); n > best {
				best = n
				pick = i
			}
		}
	case SelectFewestBrigades:
		best := -1
		for _, i := range candidates {
			if n := ActualBrigadeCount(z.cards[i].Brigades); best < 0 || n < best {
				best = n
				pick = i
			}
		}
	}
	return z.removeAt(pick)
}

// Shuffle produces a uniformly random permutation of the zone's contents.
func (z *Zone) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(z.cards), func(i, j int) {
		z.cards[i], z.cards[j] = z.cards[j], z.cards[i]
	})
}

// Reset restores the zone to its captured template, or clears it when no
// template was captured.
func (z *Zone) Reset() {
	if z.template == nil {
		z.cards = z.cards[:0]
		return
	}
	z.cards = make([]*Card, len(z.template))
	copy(z.cards, z.template)
}

// UniqueBrigades returns the number of distinct real brigades across all
// cards in the zone, with multi pseudo-brigades expanded.
func (z *Zone) UniqueBrigades() int {
	seen := make(map[string]bool)
	for _, c := range z.cards {
		for b := range ExpandBrigades(c.Brigades) {
			seen[b] = true
		}
	}
	return len(seen)
}

func (z *Zone) removeAt(i int) *Card {
	c := z.cards[i]
	z.cards = append(z.cards[:i], z.cards[i+1:]...)
	return c
}
