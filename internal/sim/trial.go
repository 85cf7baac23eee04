package sim

import (
	"fmt"
	"math/rand"

	"github.com/timothestes/redemption-probability-simulation/internal/game"
	"github.com/timothestes/redemption-probability-simulation/internal/simlog"
)

const (
	// OpeningHandSize is the number of cards drawn before turn one.
	OpeningHandSize = 8
	// PerTurnDraw is the number of cards drawn at the start of each turn.
	PerTurnDraw = 3
)

// TrialConfig describes one cell of a parametric sweep.
type TrialConfig struct {
	Recipe     game.Recipe
	NTurns     int
	GoingFirst bool
	Policy     game.SelectionPolicy
	RunID      string
}

// Trial plays a full solitaire game from a synthetic recipe: shuffle, draw
// an opening hand, then a fixed number of turns of draw → trigger
// resolution → macguffin/tutor play, emitting one record per turn.
type Trial struct {
	cfg         TrialConfig
	state       *game.State
	soulsInDeck int
}

// NewTrial builds the deck template once; every RunTrial resets from it.
func NewTrial(cfg TrialConfig) (*Trial, error) {
	if cfg.NTurns <= 0 {
		return nil, fmt.Errorf("trial config: %w: n_turns must be positive", game.ErrInvalidArgument)
	}
	template, err := cfg.Recipe.Build()
	if err != nil {
		return nil, err
	}
	souls, err := game.LostSoulsRequired(cfg.Recipe.DeckSize)
	if err != nil {
		return nil, err
	}
	return &Trial{
		cfg:         cfg,
		state:       game.NewState(template),
		soulsInDeck: souls,
	}, nil
}

// State exposes the trial's zones for test assertions.
func (t *Trial) State() *game.State {
	return t.state
}

// RunTrial resets the zones, draws the opening hand (resolving triggers
// immediately), and plays the configured number of turns.
func (t *Trial) RunTrial(trial int, rng *rand.Rand) ([]simlog.Record, error) {
	t.state.ResetTrial(rng)

	r := game.NewResolver(t.cfg.Policy, rng)
	r.Goal = game.ByType(game.CardTypeMacguffin)
	// Cyclers may only give up filler; bottoming a tutor would distort the
	// very tutor-count effect the sweep measures.
	r.CycleTargets = game.ByType(game.CardTypeNonLostSoul)

	if err := r.DrawToHand(t.state, OpeningHandSize); err != nil {
		return nil, err
	}

	records := make([]simlog.Record, 0, t.cfg.NTurns)
	for turn := 1; turn <= t.cfg.NTurns; turn++ {
		rec, err := t.takeTurn(r, trial, turn)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// takeTurn plays one turn: draw for turn (skipped on turn one when going
// first), resolve triggers, then put the macguffin into play — from hand
// if drawn, otherwise by spending a tutor to search the deck.
func (t *Trial) takeTurn(r *game.Resolver, trial, turn int) (simlog.Record, error) {
	st := t.state

	if !(t.cfg.GoingFirst && turn == 1) {
		if err := r.DrawToHand(st, PerTurnDraw); err != nil {
			return nil, err
		}
	}

	macguffin := game.ByType(game.CardTypeMacguffin)
	if card, err := st.Hand.Remove(macguffin); err != nil {
		return nil, err
	} else if card != nil {
		st.Territory.Add(card)
	}

	// No macguffin drawn yet: spend a tutor if one is in hand and the
	// macguffin is still in the deck.
	inDeck, err := st.Deck.Count(macguffin)
	if err != nil {
		return nil, err
	}
	if inDeck > 0 {
		tutor, err := st.Hand.Remove(game.ByType(game.CardTypeTutor))
		if err != nil {
			return nil, err
		}
		if tutor != nil {
			st.Territory.Add(tutor)
			found, err := st.Deck.SearchFor(macguffin, 0)
			if err != nil {
				return nil, err
			}
			if found != nil {
				st.Territory.Add(found)
			}
		}
	}

	soulsInPlay, err := st.Territory.Count(game.ByType(game.CardTypeLostSoul))
	if err != nil {
		return nil, err
	}
	inTerritory, err := st.Territory.Count(macguffin)
	if err != nil {
		return nil, err
	}

	return simlog.TurnRecord{
		RunID:                    t.cfg.RunID,
		Simulation:               trial,
		Turn:                     turn,
		NCardsInDeck:             st.Deck.Len(),
		NCardsInHand:             st.Hand.Len(),
		NLostSoulsInPlay:         soulsInPlay,
		NLostSoulsInStartingDeck: t.soulsInDeck,
		GoingFirst:               t.cfg.GoingFirst,
		MacguffinInTerritory:     inTerritory > 0,
		NTutorsInStartingDeck:    t.cfg.Recipe.NTutors,
		DeckSize:                 t.cfg.Recipe.DeckSize,
		NCyclerSouls:             t.cfg.Recipe.NCyclerSouls,
		HasHopper:                t.cfg.Recipe.IncludeHopper,
	}, nil
}
