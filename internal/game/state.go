package game

import "math/rand"

// State holds the four zones of one solitaire playthrough. The deck carries
// the trial template; the other zones start empty and clear on reset.
type State struct {
	Deck      *Deck
	Hand      *Zone
	Territory *Zone
	Discard   *Zone
}

// NewState builds a fresh state around the given deck template.
func NewState(template []*Card) *State {
	return &State{
		Deck:      NewDeck(template),
		Hand:      NewEmptyZone(),
		Territory: NewEmptyZone(),
		Discard:   NewEmptyZone(),
	}
}

// ResetTrial restores the deck from its template, shuffles it, and clears
// the other zones. Called at the top of every trial.
func (s *State) ResetTrial(rng *rand.Rand) {
	s.Deck.Reset(true, rng)
	s.Hand.Reset()
	s.Territory.Reset()
	s.Discard.Reset()
}

// TotalCards returns the card count summed across all zones. Cards are only
// relocated within a trial, so this is constant and equal to the template
// size at every observation point.
func (s *State) TotalCards() int {
	return s.Deck.Len() + s.Hand.Len() + s.Territory.Len() + s.Discard.Len()
}
