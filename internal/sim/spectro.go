package sim

import (
	"math/rand"

	"github.com/timothestes/redemption-probability-simulation/internal/game"
	"github.com/timothestes/redemption-probability-simulation/internal/simlog"
)

// SpectroConfig configures the spectrograph analysis: how many distinct
// brigades an opposing Matthew draw would see in this deck's opening hand.
type SpectroConfig struct {
	Policy game.SelectionPolicy
	RunID  string

	// AccountForCrowds models the Crowds soul's hand protection. When it
	// is in territory the Matthew draw sees nothing, except the fraction
	// of games (CrowdsIneffectiveness) where the opponent answers it.
	AccountForCrowds      bool
	CrowdsIneffectiveness float64

	// FizzleRate is the fraction of games where the opponent never gets
	// Matthew into play at all.
	FizzleRate float64
}

// SpectroTrial plays one opening hand from a real decklist and records the
// spectrograph statistic. One record per trial.
type SpectroTrial struct {
	cfg            SpectroConfig
	state          *game.State
	deckSize       int
	hasVirginBirth bool
}

// NewSpectroTrial builds the trial around an already-expanded card list
// (see game.BuildFromMetadata).
func NewSpectroTrial(template []*game.Card, cfg SpectroConfig) *SpectroTrial {
	hasVB := false
	for _, c := range template {
		if game.IsReplacementPlaceholder(c) {
			hasVB = true
			break
		}
	}
	return &SpectroTrial{
		cfg:            cfg,
		state:          game.NewState(template),
		deckSize:       len(template),
		hasVirginBirth: hasVB,
	}
}

// State exposes the trial's zones for test assertions.
func (t *SpectroTrial) State() *game.State {
	return t.state
}

// RunTrial resets the zones, draws the opening eight with replacement and
// trigger resolution, then scores the hand from the opponent's seat.
func (t *SpectroTrial) RunTrial(trial int, rng *rand.Rand) ([]simlog.Record, error) {
	t.state.ResetTrial(rng)

	r := game.NewResolver(t.cfg.Policy, rng)
	r.ReplaceDraws = t.hasVirginBirth

	if err := r.DrawToHand(t.state, OpeningHandSize); err != nil {
		return nil, err
	}

	brigades, err := t.scoreHand(rng)
	if err != nil {
		return nil, err
	}

	return []simlog.Record{simlog.SpectroRecord{
		RunID:             t.cfg.RunID,
		SimNumber:         trial,
		NCardsMatthewDrew: brigades,
		DeckSize:          t.deckSize,
	}}, nil
}

// scoreHand counts unique brigades in hand, then samples the opponent's
// behavior: a fizzled Matthew draws nothing, and an unanswered Crowds soul
// protects the hand entirely.
func (t *SpectroTrial) scoreHand(rng *rand.Rand) (int, error) {
	if t.cfg.FizzleRate > 0 && rng.Float64() < t.cfg.FizzleRate {
		return 0, nil
	}

	if t.cfg.AccountForCrowds {
		crowds, err := t.state.Territory.Count(game.ByName(game.CrowdsName))
		if err != nil {
			return 0, err
		}
		if crowds > 0 && rng.Float64() >= t.cfg.CrowdsIneffectiveness {
			return 0, nil
		}
	}

	return t.state.Hand.UniqueBrigades(), nil
}
