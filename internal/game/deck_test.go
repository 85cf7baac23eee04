package game

import (
	"errors"
	"math/rand"
	"testing"
)

func TestDrawNUnderDraw(t *testing.T) {
	d := NewDeck([]*Card{filler(), filler(), filler()})

	drawn, err := d.DrawN(5)
	if err != nil {
		t.Fatalf("DrawN: %v", err)
	}
	if len(drawn) != 3 {
		t.Errorf("Expected 3 cards from a 3-card deck, got %d", len(drawn))
	}
	if d.Len() != 0 {
		t.Errorf("Expected empty deck, got %d cards", d.Len())
	}

	// Drawing from an empty deck is legal and yields nothing.
	drawn, err = d.DrawN(1)
	if err != nil {
		t.Fatalf("DrawN on empty deck: %v", err)
	}
	if len(drawn) != 0 {
		t.Errorf("Expected no cards from empty deck, got %d", len(drawn))
	}
}

func TestDrawNRejectsNonPositive(t *testing.T) {
	d := NewDeck([]*Card{filler()})
	for _, k := range []int{0, -1} {
		if _, err := d.DrawN(k); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("DrawN(%d): expected ErrInvalidArgument, got %v", k, err)
		}
	}
}

func TestDrawNPreservesOrder(t *testing.T) {
	a, b, c := filler(), filler(), filler()
	d := NewDeck([]*Card{a, b, c})

	drawn, err := d.DrawN(2)
	if err != nil {
		t.Fatalf("DrawN: %v", err)
	}
	if drawn[0] != a || drawn[1] != b {
		t.Errorf("DrawN changed top-of-deck order")
	}
}

func TestBottomCardsThenDrawAll(t *testing.T) {
	cards := []*Card{filler(), filler(), soul("meek"), &Card{Type: CardTypeMacguffin}}
	d := NewDeck(cards)

	drawn, err := d.DrawN(2)
	if err != nil {
		t.Fatalf("DrawN: %v", err)
	}
	d.BottomCards(drawn, true, rand.New(rand.NewSource(3)))

	all, err := d.DrawN(d.Len())
	if err != nil {
		t.Fatalf("DrawN: %v", err)
	}
	if len(all) != len(cards) {
		t.Fatalf("Expected full cycle to return %d cards, got %d", len(cards), len(all))
	}
	seen := make(map[*Card]bool)
	for _, c := range all {
		seen[c] = true
	}
	for _, c := range cards {
		if !seen[c] {
			t.Errorf("Card %v lost across bottom-then-draw cycle", c)
		}
	}
}

func TestTopCardsOrder(t *testing.T) {
	base := filler()
	d := NewDeck([]*Card{base})

	x, y := soul("meek"), filler()
	d.TopCards([]*Card{x, y})

	drawn, err := d.DrawN(3)
	if err != nil {
		t.Fatalf("DrawN: %v", err)
	}
	if drawn[0] != x || drawn[1] != y || drawn[2] != base {
		t.Errorf("TopCards did not preserve relative order: got %v", drawn)
	}
}

func TestDeckResetShuffles(t *testing.T) {
	cards := make([]*Card, 30)
	for i := range cards {
		cards[i] = filler()
	}
	d := NewDeck(cards)

	if _, err := d.DrawN(10); err != nil {
		t.Fatalf("DrawN: %v", err)
	}
	d.Reset(true, rand.New(rand.NewSource(5)))
	if d.Len() != 30 {
		t.Errorf("Expected 30 cards after reset, got %d", d.Len())
	}

	// Without shuffling, reset restores template order exactly.
	d2 := NewDeck(cards)
	d2.Reset(false, nil)
	for i, c := range d2.Cards() {
		if c != cards[i] {
			t.Errorf("Unshuffled reset broke template order at %d", i)
		}
	}
}

func TestReplacementDrawPrefersFewestBrigades(t *testing.T) {
	placeholder := &Card{Name: VirginBirthName, Type: CardTypeHero}
	mono := &Card{Type: CardTypeHero, Brigades: []string{"Gold"}}
	multi := &Card{Type: CardTypeHero, Brigades: []string{BrigadeGoodMulti}}
	dual := &Card{Type: CardTypeHero, Brigades: []string{"Red", "Blue"}}
	triple := &Card{Type: CardTypeEvilCharacter, Brigades: []string{"Black", "Brown", "Gray"}}
	souls := []*Card{soul("meek"), soul("meek")}
	below := filler()
	d := NewDeck([]*Card{souls[0], multi, mono, souls[1], dual, triple, below})

	got, err := d.ResolveReplacementDraw(placeholder, SelectFewestBrigades, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("ResolveReplacementDraw: %v", err)
	}
	if got != mono {
		t.Errorf("Expected the fewest-brigade non-lost-soul, got %v", got)
	}

	// The other five revealed cards go back on top in revealed order, the
	// placeholder ends at the bottom.
	cards := d.Cards()
	if cards[0] != souls[0] || cards[1] != multi {
		t.Errorf("Revealed cards not returned to the top in order")
	}
	if cards[len(cards)-1] != placeholder {
		t.Errorf("Placeholder not buried at the bottom of the deck")
	}
}

func TestReplacementDrawUniformTakesFirst(t *testing.T) {
	placeholder := &Card{Name: VirginBirthName, Type: CardTypeHero}
	first := filler()
	d := NewDeck([]*Card{first, filler(), filler()})

	got, err := d.ResolveReplacementDraw(placeholder, SelectUniform, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("ResolveReplacementDraw: %v", err)
	}
	if got != first {
		t.Errorf("Uniform policy should take the first revealed card, got %v", got)
	}
	if d.Cards()[d.Len()-1] != placeholder {
		t.Errorf("Placeholder not buried at the bottom")
	}
}

func TestReplacementDrawAllLostSoulsFallsBack(t *testing.T) {
	placeholder := &Card{Name: VirginBirthName, Type: CardTypeHero}
	window := []*Card{soul("a"), soul("b"), soul("c")}
	d := NewDeck(window)

	got, err := d.ResolveReplacementDraw(placeholder, SelectFewestBrigades, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("ResolveReplacementDraw: %v", err)
	}
	if got != window[0] {
		t.Errorf("Expected first revealed card when no priority tier matches, got %v", got)
	}
}

func TestReplacementDrawEmptyDeck(t *testing.T) {
	placeholder := &Card{Name: VirginBirthName, Type: CardTypeHero}
	d := NewDeck(nil)

	got, err := d.ResolveReplacementDraw(placeholder, SelectUniform, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("ResolveReplacementDraw: %v", err)
	}
	if got != placeholder {
		t.Errorf("Empty deck should hand the placeholder back, got %v", got)
	}
}
