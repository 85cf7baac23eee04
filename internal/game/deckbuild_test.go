package game

import (
	"errors"
	"fmt"
	"testing"
)

func TestLostSoulsRequired(t *testing.T) {
	cases := []struct {
		deckSize int
		want     int
	}{
		{50, 7}, {56, 7},
		{57, 8}, {63, 8},
		{64, 9}, {70, 9},
		{71, 10}, {77, 10},
		{78, 11}, {84, 11},
		{85, 12}, {91, 12},
		{92, 13}, {98, 13},
		{99, 14}, {105, 14},
	}
	for _, c := range cases {
		got, err := LostSoulsRequired(c.deckSize)
		if err != nil {
			t.Errorf("LostSoulsRequired(%d): %v", c.deckSize, err)
			continue
		}
		if got != c.want {
			t.Errorf("LostSoulsRequired(%d) = %d, want %d", c.deckSize, got, c.want)
		}
	}

	for _, size := range []int{49, 106, 0, -1} {
		var cfgErr *ConfigError
		if _, err := LostSoulsRequired(size); !errors.As(err, &cfgErr) {
			t.Errorf("LostSoulsRequired(%d): expected ConfigError, got %v", size, err)
		}
	}
}

func TestRecipeBuildComposition(t *testing.T) {
	r := Recipe{DeckSize: 50, NTutors: 3, NCyclerSouls: 2, IncludeHopper: true}
	cards, err := r.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(cards) != 50 {
		t.Fatalf("Expected exactly 50 cards, got %d", len(cards))
	}

	counts := map[CardType]int{}
	subtypes := map[string]int{}
	for _, c := range cards {
		counts[c.Type]++
		subtypes[c.Subtype]++
	}
	if counts[CardTypeMacguffin] != 1 {
		t.Errorf("Expected 1 macguffin, got %d", counts[CardTypeMacguffin])
	}
	if counts[CardTypeTutor] != 3 {
		t.Errorf("Expected 3 tutors, got %d", counts[CardTypeTutor])
	}
	// 7 required souls plus the hopper.
	if counts[CardTypeLostSoul] != 8 {
		t.Errorf("Expected 8 lost souls, got %d", counts[CardTypeLostSoul])
	}
	if subtypes[SubtypeCycler] != 2 {
		t.Errorf("Expected 2 cycler souls, got %d", subtypes[SubtypeCycler])
	}
	if subtypes[SubtypeHopper] != 1 {
		t.Errorf("Expected 1 hopper, got %d", subtypes[SubtypeHopper])
	}
	if counts[CardTypeNonLostSoul] != 50-1-3-8 {
		t.Errorf("Expected %d filler cards, got %d", 50-1-3-8, counts[CardTypeNonLostSoul])
	}
}

func TestRecipeBuildRejectsImpossible(t *testing.T) {
	cases := []Recipe{
		{DeckSize: 50, NTutors: 50},              // no room for filler
		{DeckSize: 50, NTutors: -1},              // negative counts
		{DeckSize: 50, NCyclerSouls: 8},          // more cyclers than souls
		{DeckSize: 40},                           // illegal deck size
	}
	for _, r := range cases {
		var cfgErr *ConfigError
		if _, err := r.Build(); !errors.As(err, &cfgErr) {
			t.Errorf("Recipe %+v: expected ConfigError, got %v", r, err)
		}
	}
}

func TestBuildFromMetadata(t *testing.T) {
	meta := map[string]CardMeta{
		"Matthew": {Type: "Hero", Alignment: "good", Brigades: []string{"Gold"}, Quantity: 1},
		"Filler":  {Type: "Enhancement", Alignment: "good", Quantity: 3},
	}
	cards, err := BuildFromMetadata(meta)
	if err != nil {
		t.Fatalf("BuildFromMetadata: %v", err)
	}
	if len(cards) != 4 {
		t.Fatalf("Expected 4 cards from quantities 1+3, got %d", len(cards))
	}

	matthews := 0
	for _, c := range cards {
		if c.Name == "Matthew" {
			matthews++
			if c.Type != CardTypeHero || c.Alignment != AlignmentGood {
				t.Errorf("Matthew metadata not applied: %+v", c)
			}
		}
	}
	if matthews != 1 {
		t.Errorf("Expected 1 Matthew, got %d", matthews)
	}
}

func TestBuildFromMetadataOrderIsDeterministic(t *testing.T) {
	meta := make(map[string]CardMeta)
	for i := 0; i < 12; i++ {
		meta[fmt.Sprintf("Card %02d", i)] = CardMeta{Type: "Hero", Quantity: 1}
	}

	first, err := BuildFromMetadata(meta)
	if err != nil {
		t.Fatalf("BuildFromMetadata: %v", err)
	}
	second, err := BuildFromMetadata(meta)
	if err != nil {
		t.Fatalf("BuildFromMetadata: %v", err)
	}

	// Identical metadata must yield identically ordered templates, or a
	// seeded shuffle cannot reproduce the same deck across runs.
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Fatalf("Template order differs between builds at index %d: %q vs %q",
				i, first[i].Name, second[i].Name)
		}
	}
}

func TestBuildFromMetadataRejectsBadQuantity(t *testing.T) {
	meta := map[string]CardMeta{
		"Broken": {Type: "Hero", Quantity: 0},
	}
	var cfgErr *ConfigError
	if _, err := BuildFromMetadata(meta); !errors.As(err, &cfgErr) {
		t.Errorf("Expected ConfigError for zero quantity, got %v", err)
	}
}

func TestNewCardRequiresType(t *testing.T) {
	if _, err := NewCard("x", CardTypeNone); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for missing type, got %v", err)
	}
	c, err := NewCard("Matthew", CardTypeHero)
	if err != nil {
		t.Fatalf("NewCard: %v", err)
	}
	if c.Name != "Matthew" || c.Type != CardTypeHero {
		t.Errorf("NewCard produced %+v", c)
	}
}
