package decklist

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/timothestes/redemption-probability-simulation/internal/game"
)

// Row is one card database record, keyed by lower-cased column names from
// the TSV header.
type Row struct {
	Name      string
	Type      string
	Brigade   string
	Alignment string
	Tags      map[string]string
}

// CardDatabase indexes the card metadata TSV by normalized card name.
type CardDatabase struct {
	rows map[string]Row
}

// LoadCardDatabase reads the tab-separated card database. The first line
// is a header; keys are lower-cased and card names apostrophe-normalized.
func LoadCardDatabase(path string) (*CardDatabase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open card database: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read card database: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("card database %q is empty", path)
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	db := &CardDatabase{rows: make(map[string]Row, len(records)-1)}
	for _, rec := range records[1:] {
		fields := make(map[string]string, len(header))
		for i, v := range rec {
			if i < len(header) {
				fields[header[i]] = v
			}
		}
		name := normalizeApostrophes(fields["name"])
		if name == "" {
			continue
		}
		db.rows[name] = Row{
			Name:      name,
			Type:      fields["type"],
			Brigade:   fields["brigade"],
			Alignment: fields["alignment"],
			Tags:      fields,
		}
	}
	return db, nil
}

// Lookup finds a card row by its apostrophe-normalized name.
func (db *CardDatabase) Lookup(name string) (Row, bool) {
	row, ok := db.rows[normalizeApostrophes(name)]
	return row, ok
}

// Len returns the number of cards in the database.
func (db *CardDatabase) Len() int {
	return len(db.rows)
}

// NormalizeBrigades turns a raw brigade field into the brigade list the
// simulation counts. The special cases are ordered; their precedence
// follows the historical cleaning rules and must be preserved:
//
//  1. "multi" expands by alignment — good decks get the Good Multi
//     pseudo-brigade, evil get Evil Multi, neutral gets both.
//  2. Everything else splits on "/", one brigade per part.
//
// The card name parameter exists so future named exceptions to the
// alignment mapping stay in this one clause list.
func NormalizeBrigades(brigade, alignment, _ string) []string {
	brigade = strings.TrimSpace(brigade)
	if brigade == "" {
		return nil
	}
	if brigade == "multi" {
		switch strings.ToLower(strings.TrimSpace(alignment)) {
		case "good":
			return []string{game.BrigadeGoodMulti}
		case "evil":
			return []string{game.BrigadeEvilMulti}
		default:
			return []string{game.BrigadeGoodMulti, game.BrigadeEvilMulti}
		}
	}
	parts := strings.Split(brigade, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		switch p {
		case "Good Multi", "good multi":
			out = append(out, game.BrigadeGoodMulti)
		case "Evil Multi", "evil multi":
			out = append(out, game.BrigadeEvilMulti)
		default:
			out = append(out, p)
		}
	}
	return out
}

// LoadDeck is the one-call path from a deck file to the deck builder's
// input: parse the deck file, load the database, and join them.
func LoadDeck(deckPath, cardDataPath string) (map[string]game.CardMeta, *Decklist, []string, error) {
	dl, err := ParseFile(deckPath)
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := LoadCardDatabase(cardDataPath)
	if err != nil {
		return nil, nil, nil, err
	}
	meta, warnings := dl.MapMetadata(db, dl.MainDeck)
	if len(meta) == 0 {
		return nil, nil, warnings, &game.ConfigError{Reason: "no deck cards were found in the card database"}
	}
	return meta, dl, warnings, nil
}
