package game

import "math/rand"

// Resolver applies the chain reactions that fire when lost souls reach the
// hand. All randomness flows through the injected source, so a seeded run
// replays identically.
type Resolver struct {
	Registry *EffectRegistry
	Policy   SelectionPolicy

	// Goal is what a cycler digs for. While the hand holds a goal card the
	// cycler stands down. The zero Query means no goal: always cycle.
	Goal Query

	// CycleTargets narrows which hand cards a cycling soul may give up.
	// The zero Query allows any non-lost-soul. Synthetic decks set this to
	// the filler type so tutors are never bottomed.
	CycleTargets Query

	// ReplaceDraws enables virgin-birth substitution on drawn batches.
	// Left off when the deck runs no placeholder, since the scan costs a
	// pass over every draw.
	ReplaceDraws bool

	rng *rand.Rand
}

// NewResolver creates a resolver using the default effect registry.
func NewResolver(policy SelectionPolicy, rng *rand.Rand) *Resolver {
	return &Resolver{
		Registry: DefaultRegistry(),
		Policy:   policy,
		rng:      rng,
	}
}

// Rand exposes the resolver's random source to effect handlers.
func (r *Resolver) Rand() *rand.Rand {
	return r.rng
}

// IsReplacementPlaceholder reports whether a card triggers a replacement
// draw when drawn, by name or by synthetic subtype.
func IsReplacementPlaceholder(c *Card) bool {
	return c.Name == VirginBirthName || c.Subtype == SubtypeVirgin
}

// DrawToHand draws n cards into the hand, substituting any replacement
// placeholders in the drawn batch first, then resolves triggers to a fixed
// point. This is the single entry point for every scripted draw.
func (r *Resolver) DrawToHand(st *State, n int) error {
	drawn, err := r.draw(st, n)
	if err != nil {
		return err
	}
	st.Hand.Add(drawn...)
	return r.ResolveTriggers(st)
}

// ResolveTriggers plays out lost souls from the hand until none remain:
// move the first lost soul in sequence order to territory, draw one
// replacement if the deck allows, then run the soul's registered effect.
//
// Termination: each iteration strictly removes a lost soul from the hand,
// and souls re-enter the hand only via deck draws, so the loop runs at most
// |hand| + |deck| times.
func (r *Resolver) ResolveTriggers(st *State) error {
	for {
		soul, err := st.Hand.Remove(ByType(CardTypeLostSoul))
		if err != nil {
			return err
		}
		if soul == nil {
			return nil
		}
		st.Territory.Add(soul)

		if st.Deck.Len() > 0 {
			if err := r.redraw(st, 1); err != nil {
				return err
			}
		}

		if fn := r.Registry.Lookup(soul); fn != nil {
			if err := fn(r, st, soul); err != nil {
				return err
			}
		}
	}
}

// redraw draws n cards straight into the hand without re-entering the
// trigger loop; the caller's loop picks up any souls drawn this way.
func (r *Resolver) redraw(st *State, n int) error {
	drawn, err := r.draw(st, n)
	if err != nil {
		return err
	}
	st.Hand.Add(drawn...)
	return nil
}

// draw pulls n cards off the deck, substituting replacement placeholders
// in the batch when enabled.
func (r *Resolver) draw(st *State, n int) ([]*Card, error) {
	drawn, err := st.Deck.DrawN(n)
	if err != nil {
		return nil, err
	}
	if !r.ReplaceDraws {
		return drawn, nil
	}
	for i, c := range drawn {
		if !IsReplacementPlaceholder(c) {
			continue
		}
		got, err := st.Deck.ResolveReplacementDraw(c, r.Policy, r.rng)
		if err != nil {
			return nil, err
		}
		drawn[i] = got
	}
	return drawn, nil
}

// cycleCandidate picks the hand card a cycling soul gives up, honoring the
// CycleTargets restriction when one is set.
func (r *Resolver) cycleCandidate(st *State) (*Card, error) {
	if r.CycleTargets.Empty() {
		return st.Hand.RemoveByPolicy(r.Policy, r.rng), nil
	}
	return st.Hand.RemoveMatchingByPolicy(r.CycleTargets, r.Policy, r.rng)
}

// handHasGoal reports whether the hand already holds the cycler's goal.
func (r *Resolver) handHasGoal(st *State) (bool, error) {
	if r.Goal.Empty() {
		return false, nil
	}
	return st.Hand.Contains(r.Goal)
}
