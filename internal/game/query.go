package game

// Query is a tagged predicate over cards. Zero-valued fields are wildcards;
// a card matches when it satisfies every supplied criterion. The zero Query
// matches nothing and is rejected by zone operations with ErrInvalidQuery.
type Query struct {
	Name string
	Type CardType
	Tag  string
}

// ByName matches cards with the exact given name.
func ByName(name string) Query { return Query{Name: name} }

// ByType matches cards of the given type.
func ByType(ct CardType) Query { return Query{Type: ct} }

// ByTag matches cards carrying the given tag key.
func ByTag(tag string) Query { return Query{Tag: tag} }

// Empty reports whether the query supplies no criteria at all.
func (q Query) Empty() bool {
	return q.Name == "" && q.Type == CardTypeNone && q.Tag == ""
}

// Matches reports whether the card satisfies all supplied criteria.
func (q Query) Matches(c *Card) bool {
	if q.Name != "" && c.Name != q.Name {
		return false
	}
	if q.Type != CardTypeNone && c.Type != q.Type {
		return false
	}
	if q.Tag != "" && !c.HasTag(q.Tag) {
		return false
	}
	return true
}

// SelectionPolicy chooses a card from a set of candidates when a rule says
// "pick a card" without naming one. The policy is selected once per run
// configuration and injected into the resolver and deck operations.
type SelectionPolicy int

const (
	// SelectUniform picks uniformly at random.
	SelectUniform SelectionPolicy = iota
	// SelectMostBrigades picks the candidate with the highest actual
	// brigade count (multi pseudo-brigades expanded).
	SelectMostBrigades
	// SelectFewestBrigades picks the candidate with the lowest actual
	// brigade count.
	SelectFewestBrigades
)

func (p SelectionPolicy) String() string {
	switch p {
	case SelectMostBrigades:
		return "most-brigades"
	case SelectFewestBrigades:
		return "fewest-brigades"
	default:
		return "uniform"
	}
}

// ParseSelectionPolicy maps the CLI spelling of a cycler-logic mode to a
// policy. "optimized" underdecks the most-colored cards to starve the
// opposing draw engine; anything else is uniform random.
func ParseSelectionPolicy(s string) SelectionPolicy {
	switch s {
	case "optimized", "underdeck_colors", "most-brigades":
		return SelectMostBrigades
	case "fewest-brigades":
		return SelectFewestBrigades
	default:
		return SelectUniform
	}
}
