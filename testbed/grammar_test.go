package testbed

import (
	"testing"
	"unicode/utf8"
)

func TestGrammar_CleanText(t *testing.T) {
	v := newFinnish(t)

	found, err := v.GrammarErrors("Kissa istuu katolla.", "en")
	if err != nil {
		t.Fatalf("grammar: %v", err)
	}
	if len(found) != 0 {
		t.Errorf("expected no findings in clean text, got %v", found)
	}
}

func TestGrammar_FindingsAreWellFormed(t *testing.T) {
	v := newFinnish(t)

	// Exact findings depend on the grammar rules shipped with the
	// dictionary; the shape of whatever comes back does not.
	text := "Joukkueet pelasivat pelin pelin. ja toinen lause."
	found, err := v.GrammarErrors(text, "en")
	if err != nil {
		t.Fatalf("grammar: %v", err)
	}

	chars := utf8.RuneCountInString(text)
	prevEnd := 0
	for _, ge := range found {
		if ge.StartPos < 0 || ge.Length <= 0 || ge.StartPos+ge.Length > chars {
			t.Errorf("finding out of bounds: %+v", ge)
		}
		if ge.StartPos+ge.Length <= prevEnd {
			t.Errorf("findings not in scan order: %+v after end %d", ge, prevEnd)
		}
		if ge.Description == "" {
			t.Errorf("finding without description: %+v", ge)
		}
		prevEnd = ge.StartPos + ge.Length
	}
}
