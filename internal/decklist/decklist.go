// Package decklist loads deck files in the tab-separated export format and
// joins them against the card database to produce the metadata mapping the
// deck builder consumes.
package decklist

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/timothestes/redemption-probability-simulation/internal/game"
)

// Entry is one parsed decklist line: a quantity and a card name.
type Entry struct {
	Quantity int
	Name     string
}

// Decklist holds the parsed main deck and reserve of one deck file.
type Decklist struct {
	MainDeck []Entry
	Reserve  []Entry
}

// DeckSize returns the total number of main-deck cards.
func (d *Decklist) DeckSize() int {
	n := 0
	for _, e := range d.MainDeck {
		n += e.Quantity
	}
	return n
}

// HasReserve reports whether the deck file declared a reserve section.
func (d *Decklist) HasReserve() bool {
	return len(d.Reserve) > 0
}

const (
	minMainDeck = 50
	maxReserve  = 10
)

// normalizeApostrophes replaces curly apostrophes with straight ones so
// deck files and the card database agree on names.
func normalizeApostrophes(s string) string {
	return strings.ReplaceAll(s, "’", "'")
}

// ParseFile parses a deck file: tab-separated "qty<TAB>name" lines, with a
// "Reserve:" line switching buckets and a "Tokens:" line ending the parse.
func ParseFile(path string) (*Decklist, error) {
	if path == "" {
		return nil, &game.ConfigError{Reason: "a deck file path is required"}
	}
	if !strings.HasSuffix(path, ".txt") {
		return nil, &game.ConfigError{Reason: fmt.Sprintf("deck file %q must be a .txt file", path)}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(bufio.NewScanner(f))
}

func parse(scanner *bufio.Scanner) (*Decklist, error) {
	d := &Decklist{}
	inReserve := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "Tokens:") {
			break
		}
		if strings.HasPrefix(line, "Reserve:") {
			inReserve = true
			continue
		}

		qty, name, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(qty))
		if err != nil || n <= 0 {
			continue
		}
		entry := Entry{Quantity: n, Name: normalizeApostrophes(strings.TrimSpace(name))}
		if inReserve {
			d.Reserve = append(d.Reserve, entry)
		} else {
			d.MainDeck = append(d.MainDeck, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(d.MainDeck) == 0 {
		return nil, &game.ConfigError{Reason: "deck file holds no main-deck cards"}
	}
	if d.DeckSize() < minMainDeck {
		return nil, &game.ConfigError{Reason: fmt.Sprintf("main deck holds %d cards; at least %d required", d.DeckSize(), minMainDeck)}
	}
	reserveSize := 0
	for _, e := range d.Reserve {
		reserveSize += e.Quantity
	}
	if reserveSize > maxReserve {
		return nil, &game.ConfigError{Reason: fmt.Sprintf("reserve holds %d cards; at most %d allowed", reserveSize, maxReserve)}
	}
	return d, nil
}

// MapMetadata joins decklist entries against the card database. Names
// missing from the database are skipped and reported in the returned
// warnings, matching how the tool has always tolerated stale deck files.
func (d *Decklist) MapMetadata(db *CardDatabase, entries []Entry) (map[string]game.CardMeta, []string) {
	result := make(map[string]game.CardMeta, len(entries))
	var warnings []string
	for _, e := range entries {
		row, ok := db.Lookup(e.Name)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("could not find %q in the card database; skipping it", e.Name))
			continue
		}
		result[e.Name] = game.CardMeta{
			Type:      row.Type,
			Alignment: row.Alignment,
			Brigades:  NormalizeBrigades(row.Brigade, row.Alignment, e.Name),
			Quantity:  e.Quantity,
			Tags:      row.Tags,
		}
	}
	return result, warnings
}
