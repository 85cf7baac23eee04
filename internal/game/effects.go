package game

// Sub-effects run by the trigger resolver after a lost soul enters play.
// Each receives the resolver for policy/randomness and recursion.

// cyclerEffect digs for the goal card: unless the hand already holds it,
// bottom one policy-chosen cycle target from the hand and draw a
// replacement.
func cyclerEffect(r *Resolver, st *State, _ *Card) error {
	hasGoal, err := r.handHasGoal(st)
	if err != nil {
		return err
	}
	if hasGoal {
		return nil
	}
	card, err := r.cycleCandidate(st)
	if err != nil {
		return err
	}
	if card == nil {
		return nil
	}
	st.Deck.BottomCards([]*Card{card}, false, r.Rand())
	return r.redraw(st, 1)
}

// prosperityEffect trades a policy-chosen non-lost-soul from the hand into
// the discard for two fresh cards.
func prosperityEffect(r *Resolver, st *State, _ *Card) error {
	if card := st.Hand.RemoveByPolicy(r.Policy, r.Rand()); card != nil {
		st.Discard.Add(card)
	}
	return r.redraw(st, 2)
}

// darknessEffect searches the whole deck for an evil character and takes it
// into hand. No effect when the deck has none.
func darknessEffect(r *Resolver, st *State, _ *Card) error {
	card, err := st.Deck.SearchFor(ByType(CardTypeEvilCharacter), 0)
	if err != nil {
		return err
	}
	if card != nil {
		st.Hand.Add(card)
	}
	return nil
}

// lawlessEffect reveals the top six cards of the deck. Revealed lost souls
// go straight to territory, running their own effects recursively; the
// first revealed evil character is taken into hand; everything else
// returns to the bottom of the deck in revealed order.
func lawlessEffect(r *Resolver, st *State, _ *Card) error {
	window, err := st.Deck.DrawN(ReplacementWindow)
	if err != nil {
		return err
	}

	var rest []*Card
	tookCharacter := false
	for _, c := range window {
		switch {
		case c.Type == CardTypeLostSoul:
			st.Territory.Add(c)
			if fn := r.Registry.Lookup(c); fn != nil {
				if err := fn(r, st, c); err != nil {
					return err
				}
			}
		case c.Type == CardTypeEvilCharacter && !tookCharacter:
			st.Hand.Add(c)
			tookCharacter = true
		default:
			rest = append(rest, c)
		}
	}
	st.Deck.BottomCards(rest, false, r.Rand())
	return nil
}
