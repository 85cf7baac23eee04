package simlog

import "strconv"

// Record is one row of the tabular trial log. Every record emitted in a
// single run shares the same header, so the sink writes it exactly once.
type Record interface {
	Header() []string
	Row() []string
}

// TurnRecord is one row of the parametric sweep log: the observable state
// after one turn of one trial, plus the configuration columns the
// aggregation groups by.
type TurnRecord struct {
	RunID                    string
	Simulation               int
	Turn                     int
	NCardsInDeck             int
	NCardsInHand             int
	NLostSoulsInPlay         int
	NLostSoulsInStartingDeck int
	GoingFirst               bool
	MacguffinInTerritory     bool
	NTutorsInStartingDeck    int
	DeckSize                 int
	NCyclerSouls             int
	HasHopper                bool
}

var turnHeader = []string{
	"run_id",
	"simulation",
	"turn",
	"n_cards_in_deck",
	"n_cards_in_hand",
	"n_lost_souls_in_play",
	"n_lost_souls_in_starting_deck",
	"going_first",
	"macguffin_in_territory",
	"n_tutors_in_starting_deck",
	"deck_size",
	"n_cycler_souls",
	"has_hopper",
}

func (r TurnRecord) Header() []string { return turnHeader }

func (r TurnRecord) Row() []string {
	return []string{
		r.RunID,
		strconv.Itoa(r.Simulation),
		strconv.Itoa(r.Turn),
		strconv.Itoa(r.NCardsInDeck),
		strconv.Itoa(r.NCardsInHand),
		strconv.Itoa(r.NLostSoulsInPlay),
		strconv.Itoa(r.NLostSoulsInStartingDeck),
		strconv.FormatBool(r.GoingFirst),
		strconv.FormatBool(r.MacguffinInTerritory),
		strconv.Itoa(r.NTutorsInStartingDeck),
		strconv.Itoa(r.DeckSize),
		strconv.Itoa(r.NCyclerSouls),
		strconv.FormatBool(r.HasHopper),
	}
}

// SpectroRecord is one row of the spectrograph log: how many distinct
// brigades the opposing Matthew draw would see after one trial's opening
// hand settles.
type SpectroRecord struct {
	RunID             string
	SimNumber         int
	NCardsMatthewDrew int
	DeckSize          int
}

var spectroHeader = []string{
	"run_id",
	"sim_number",
	"n_cards_matthew_drew",
	"deck_size",
}

func (r SpectroRecord) Header() []string { return spectroHeader }

func (r SpectroRecord) Row() []string {
	return []string{
		r.RunID,
		strconv.Itoa(r.SimNumber),
		strconv.Itoa(r.NCardsMatthewDrew),
		strconv.Itoa(r.DeckSize),
	}
}
