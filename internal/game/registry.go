package game

// EffectFunc is the sub-effect a card runs after it enters play from the
// hand during trigger resolution.
type EffectFunc func(r *Resolver, st *State, src *Card) error

// EffectRegistry maps card identity to effect handlers. Exact names win
// over subtype entries, so a named printing can override the generic
// behavior of its class.
type EffectRegistry struct {
	byName    map[string]EffectFunc
	bySubtype map[string]EffectFunc
}

func NewEffectRegistry() *EffectRegistry {
	return &EffectRegistry{
		byName:    make(map[string]EffectFunc),
		bySubtype: make(map[string]EffectFunc),
	}
}

// Register binds an effect to an exact card name.
func (er *EffectRegistry) Register(name string, fn EffectFunc) {
	er.byName[name] = fn
}

// RegisterSubtype binds an effect to a card subtype.
func (er *EffectRegistry) RegisterSubtype(subtype string, fn EffectFunc) {
	er.bySubtype[subtype] = fn
}

// Lookup returns the effect for a card, or nil when it has none.
func (er *EffectRegistry) Lookup(c *Card) EffectFunc {
	if fn, ok := er.byName[c.Name]; ok && c.Name != "" {
		return fn
	}
	if fn, ok := er.bySubtype[c.Subtype]; ok && c.Subtype != "" {
		return fn
	}
	return nil
}

// Named printings with bespoke behavior. This list is game content and
// tracks the card pool, not the resolver.
const (
	VirginBirthName = "Virgin Birth"
	ProsperityName  = `Lost Soul "Prosperity" [Deuteronomy 30:15]`
	CrowdsName      = `Lost Soul "Crowds" [Luke 5:15] [2016 - Local]`
	DarknessName    = `Lost Soul "Darkness" [John 3:19-21]`
	LawlessName     = `Lost Soul "Lawless" [2 Thessalonians 2:8-9]`
)

// CyclerSoulNames lists the lost soul printings that cycle a hand card to
// the bottom of the deck for a redraw.
var CyclerSoulNames = []string{
	`Lost Soul "Cycler" [Ezekiel 34:16]`,
	`Lost Soul [Ezekiel 34:16] (Cycler)`,
}

// DefaultRegistry returns the registry covering the known card pool: the
// cycler souls (by name and by synthetic subtype), Prosperity, Darkness,
// and Lawless.
func DefaultRegistry() *EffectRegistry {
	er := NewEffectRegistry()
	for _, name := range CyclerSoulNames {
		er.Register(name, cyclerEffect)
	}
	er.RegisterSubtype(SubtypeCycler, cyclerEffect)
	er.Register(ProsperityName, prosperityEffect)
	er.RegisterSubtype(SubtypeProsper, prosperityEffect)
	er.Register(DarknessName, darknessEffect)
	er.Register(LawlessName, lawlessEffect)
	return er
}
