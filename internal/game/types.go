package game

import (
	"fmt"
	"strings"
)

// --- Enums ---

type CardType int

const (
	CardTypeNone CardType = iota
	CardTypeLostSoul
	CardTypeNonLostSoul
	CardTypeMacguffin
	CardTypeTutor
	CardTypeHero
	CardTypeEvilCharacter
	CardTypeEnhancement
	CardTypeEvilEnhancement
	CardTypeArtifact
	CardTypeSite
	CardTypeFortress
	CardTypeDominant
	CardTypeCovenant
	CardTypeCurse
)

func (ct CardType) String() string {
	switch ct {
	case CardTypeLostSoul:
		return "Lost Soul"
	case CardTypeNonLostSoul:
		return "Non Lost Soul"
	case CardTypeMacguffin:
		return "Macguffin"
	case CardTypeTutor:
		return "Tutor"
	case CardTypeHero:
		return "Hero"
	case CardTypeEvilCharacter:
		return "Evil Character"
	case CardTypeEnhancement:
		return "Enhancement"
	case CardTypeEvilEnhancement:
		return "Evil Enhancement"
	case CardTypeArtifact:
		return "Artifact"
	case CardTypeSite:
		return "Site"
	case CardTypeFortress:
		return "Fortress"
	case CardTypeDominant:
		return "Dominant"
	case CardTypeCovenant:
		return "Covenant"
	case CardTypeCurse:
		return "Curse"
	default:
		return "None"
	}
}

// ParseCardType maps a card-database type string to a CardType.
// Unrecognized strings fall back to CardTypeNonLostSoul: every card that is
// not a lost soul looks the same to the trigger resolver.
func ParseCardType(s string) CardType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lost soul", "lost_soul":
		return CardTypeLostSoul
	case "macguffin":
		return CardTypeMacguffin
	case "tutor":
		return CardTypeTutor
	case "hero":
		return CardTypeHero
	case "evil character":
		return CardTypeEvilCharacter
	case "enhancement", "good enhancement":
		return CardTypeEnhancement
	case "evil enhancement":
		return CardTypeEvilEnhancement
	case "artifact":
		return CardTypeArtifact
	case "site":
		return CardTypeSite
	case "fortress":
		return CardTypeFortress
	case "dominant":
		return CardTypeDominant
	case "covenant":
		return CardTypeCovenant
	case "curse":
		return CardTypeCurse
	case "":
		return CardTypeNone
	default:
		return CardTypeNonLostSoul
	}
}

type Alignment int

const (
	AlignmentNone Alignment = iota
	AlignmentGood
	AlignmentEvil
	AlignmentNeutral
)

func (a Alignment) String() string {
	switch a {
	case AlignmentGood:
		return "Good"
	case AlignmentEvil:
		return "Evil"
	case AlignmentNeutral:
		return "Neutral"
	default:
		return ""
	}
}

// ParseAlignment maps a card-database alignment string to an Alignment.
func ParseAlignment(s string) Alignment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "good":
		return AlignmentGood
	case "evil":
		return AlignmentEvil
	case "neutral":
		return AlignmentNeutral
	default:
		return AlignmentNone
	}
}

// --- Brigades ---

// GoodBrigades and EvilBrigades enumerate the real brigade colors that the
// "Good Multi" and "Evil Multi" pseudo-brigades expand into.
var (
	GoodBrigades = []string{"Blue", "Clay", "Gold", "Green", "Purple", "Red", "Silver", "White"}
	EvilBrigades = []string{"Black", "Brown", "Crimson", "Gold", "Gray", "Orange", "Pale Green"}
)

const (
	BrigadeGoodMulti = "Good Multi"
	BrigadeEvilMulti = "Evil Multi"
)

// ActualBrigadeCount counts brigades with the multi pseudo-brigades expanded:
// "Good Multi" counts as all 8 good brigades, "Evil Multi" as all 7 evil.
func ActualBrigadeCount(brigades []string) int {
	count := 0
	for _, b := range brigades {
		switch b {
		case BrigadeGoodMulti:
			count += len(GoodBrigades)
		case BrigadeEvilMulti:
			count += len(EvilBrigades)
		default:
			count++
		}
	}
	return count
}

// ExpandBrigades returns the set of real brigades covered by the given list,
// expanding the multi pseudo-brigades.
func ExpandBrigades(brigades []string) map[string]bool {
	expanded := make(map[string]bool)
	for _, b := range brigades {
		switch b {
		case BrigadeGoodMulti:
			for _, g := range GoodBrigades {
				expanded[g] = true
			}
		case BrigadeEvilMulti:
			for _, e := range EvilBrigades {
				expanded[e] = true
			}
		default:
			expanded[b] = true
		}
	}
	return expanded
}

// --- Card ---

// Card is an immutable description of a single physical card. Two cards with
// identical attributes are still distinct cards: identity is the pointer, so
// a deck may hold several copies of the same printing.
type Card struct {
	Name      string // empty for synthetic, type-only cards
	Type      CardType
	Subtype   string // free-form secondary tag, e.g. "cycler", "hopper"
	Alignment Alignment
	Brigades  []string // empty for colorless cards
	Tags      map[string]string
}

// NewCard constructs a card, failing only when no type is given.
func NewCard(name string, ct CardType) (*Card, error) {
	if ct == CardTypeNone {
		return nil, fmt.Errorf("new card %q: %w: card type is required", name, ErrInvalidArgument)
	}
	return &Card{Name: name, Type: ct}, nil
}

func (c *Card) String() string {
	if c == nil {
		return "(empty)"
	}
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("%s card", c.Type)
}

// HasTag reports whether the card carries the given tag key.
func (c *Card) HasTag(tag string) bool {
	_, ok := c.Tags[tag]
	return ok
}
