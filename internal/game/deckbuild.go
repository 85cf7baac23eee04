package game

import (
	"fmt"
	"sort"
)

// Subtype tags carried by synthetic lost souls.
const (
	SubtypeCycler  = "cycler"
	SubtypeMeek    = "meek"
	SubtypeHopper  = "hopper"
	SubtypeVirgin  = "virgin_birth"
	SubtypeProsper = "prosperity"
)

// LostSoulsRequired returns the number of lost souls a legal deck of the
// given size must run. Sizes outside 50-105 are not legal decks.
func LostSoulsRequired(deckSize int) (int, error) {
	if deckSize < 50 || deckSize > 105 {
		return 0, &ConfigError{Reason: fmt.Sprintf("deck size %d out of range for lost soul calculation", deckSize)}
	}
	// 7 souls at 50 cards, one more per 7 cards after 56.
	return 7 + (deckSize-50)/7, nil
}

// Recipe describes a synthetic parametric deck: one macguffin, a number of
// tutors, the legally required lost souls (some of them cyclers, optionally
// a hopper on top), and filler non-lost-souls up to DeckSize.
type Recipe struct {
	DeckSize      int
	NTutors       int
	NCyclerSouls  int
	IncludeHopper bool
}

// Build expands the recipe into an ordered card list of exactly DeckSize
// cards. Recipes that cannot fit return a ConfigError.
func (r Recipe) Build() ([]*Card, error) {
	souls, err := LostSoulsRequired(r.DeckSize)
	if err != nil {
		return nil, err
	}
	if r.NTutors < 0 || r.NCyclerSouls < 0 {
		return nil, &ConfigError{Reason: "tutor and cycler counts must be non-negative"}
	}
	if r.NCyclerSouls > souls {
		return nil, &ConfigError{Reason: fmt.Sprintf("%d cycler souls exceed the %d lost souls a %d-card deck runs", r.NCyclerSouls, souls, r.DeckSize)}
	}

	hopper := 0
	if r.IncludeHopper {
		hopper = 1
	}
	filler := r.DeckSize - souls - r.NTutors - hopper - 1
	if filler < 0 {
		return nil, &ConfigError{Reason: fmt.Sprintf("deck size %d cannot fit %d tutors plus %d lost souls and the macguffin", r.DeckSize, r.NTutors, souls+hopper)}
	}

	cards := make([]*Card, 0, r.DeckSize)
	cards = append(cards, &Card{Type: CardTypeMacguffin})
	for i := 0; i < r.NTutors; i++ {
		cards = append(cards, &Card{Type: CardTypeTutor})
	}
	for i := 0; i < r.NCyclerSouls; i++ {
		cards = append(cards, &Card{Type: CardTypeLostSoul, Subtype: SubtypeCycler})
	}
	for i := 0; i < souls-r.NCyclerSouls; i++ {
		cards = append(cards, &Card{Type: CardTypeLostSoul, Subtype: SubtypeMeek})
	}
	if r.IncludeHopper {
		cards = append(cards, &Card{Type: CardTypeLostSoul, Subtype: SubtypeHopper})
	}
	for i := 0; i < filler; i++ {
		cards = append(cards, &Card{Type: CardTypeNonLostSoul})
	}
	return cards, nil
}

// CardMeta is the deck builder's input contract for real decks: one record
// per distinct card name, produced by a decklist loader.
type CardMeta struct {
	Type      string
	Alignment string
	Brigades  []string
	Quantity  int
	Tags      map[string]string
}

// BuildFromMetadata expands a name → metadata mapping into a flat ordered
// card list of length sum(quantities). Each copy is its own Card. Names are
// expanded in sorted order so the same deck always yields the same template;
// a seeded shuffle of the template is then reproducible across runs.
func BuildFromMetadata(meta map[string]CardMeta) ([]*Card, error) {
	names := make([]string, 0, len(meta))
	for name := range meta {
		names = append(names, name)
	}
	sort.Strings(names)

	var cards []*Card
	for _, name := range names {
		m := meta[name]
		if m.Quantity <= 0 {
			return nil, &ConfigError{Reason: fmt.Sprintf("card %q has non-positive quantity %d", name, m.Quantity)}
		}
		ct := ParseCardType(m.Type)
		if ct == CardTypeNone {
			return nil, &ConfigError{Reason: fmt.Sprintf("card %q has no type", name)}
		}
		for i := 0; i < m.Quantity; i++ {
			cards = append(cards, &Card{
				Name:      name,
				Type:      ct,
				Alignment: ParseAlignment(m.Alignment),
				Brigades:  m.Brigades,
				Tags:      m.Tags,
			})
		}
	}
	return cards, nil
}
