// Package testbed exercises the library against the real libvoikko
// shared library and a Finnish dictionary. Every test skips when the
// dictionary is not installed, so the suite is safe to run anywhere.
package testbed

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/tekstikone/voikko"
	"github.com/tekstikone/voikko/errors"
)

// newFinnish opens a standard Finnish session or skips the test.
func newFinnish(t *testing.T) *voikko.Voikko {
	t.Helper()
	v, err := voikko.New("fi")
	if err != nil {
		t.Skipf("Finnish dictionary not available: %v", err)
	}
	t.Cleanup(func() { v.Close() })
	return v
}

func TestSpell(t *testing.T) {
	v := newFinnish(t)

	result, err := v.Spell("kuningas")
	if err != nil {
		t.Fatalf("spell: %v", err)
	}
	if result != voikko.SpellOk {
		t.Errorf("spell kuningas = %v, want ok", result)
	}

	result, err = v.Spell("adfasdf")
	if err != nil {
		t.Fatalf("spell: %v", err)
	}
	if result != voikko.SpellFailed {
		t.Errorf("spell adfasdf = %v, want failed", result)
	}
}

func TestSuggest(t *testing.T) {
	v := newFinnish(t)

	suggestions, err := v.Suggest("koirra")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	found := false
	for _, s := range suggestions {
		if s == "koira" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("suggest koirra = %v, want koira included", suggestions)
	}
}

func TestHyphenate(t *testing.T) {
	v := newFinnish(t)

	got, err := v.Hyphenate("koira", "-")
	if err != nil {
		t.Fatalf("hyphenate: %v", err)
	}
	if got != "koi-ra" {
		t.Errorf("hyphenate koira = %q, want koi-ra", got)
	}

	// The raw mask has one symbol per character of the word.
	pattern, err := v.Hyphens("koira")
	if err != nil {
		t.Fatalf("hyphens: %v", err)
	}
	if len([]rune(pattern)) != len([]rune("koira")) {
		t.Errorf("pattern %q length mismatch for koira", pattern)
	}
}

func TestInsertHyphens(t *testing.T) {
	v := newFinnish(t)

	got, err := v.InsertHyphens("koira", "-", false)
	if err != nil {
		// Engines before 4.2.0 cannot do this; the gate reports it
		// without crashing.
		var e *errors.Error
		if stderrors.As(err, &e) && e.Kind == errors.KindUnsupported {
			t.Skipf("engine %s has no native hyphen insertion", voikko.Version())
		}
		t.Fatalf("insert hyphens: %v", err)
	}
	if got != "koi-ra" {
		t.Errorf("insert hyphens koira = %q, want koi-ra", got)
	}
}

func TestAnalyze(t *testing.T) {
	v := newFinnish(t)

	readings, err := v.Analyze("kahvikuppi")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(readings) == 0 {
		t.Fatal("expected at least one reading for kahvikuppi")
	}
	if got := readings[0]["BASEFORM"]; got != "kahvikuppi" {
		t.Errorf("BASEFORM = %q, want kahvikuppi", got)
	}

	readings, err = v.Analyze("adfasdf")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(readings) != 0 {
		t.Errorf("expected no readings for adfasdf, got %d", len(readings))
	}
}

func TestTokens(t *testing.T) {
	v := newFinnish(t)

	input := "Kissa ja koira istuvat."
	tokens, err := v.Tokens(input)
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}

	var joined string
	words := 0
	for _, tok := range tokens {
		joined += tok.Text
		if tok.Kind == voikko.TokenWord {
			words++
		}
	}
	if joined != input {
		t.Errorf("tokens do not reassemble the input: %q", joined)
	}
	if words != 4 {
		t.Errorf("expected 4 word tokens, got %d: %v", words, tokens)
	}
}

func TestSentences(t *testing.T) {
	v := newFinnish(t)

	input := "Kissa istuu katolla. Koira haukkuu pihalla."
	sentences, err := v.Sentences(input)
	if err != nil {
		t.Fatalf("sentences: %v", err)
	}
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(sentences), sentences)
	}
	if !strings.HasPrefix(sentences[0].Text, "Kissa") {
		t.Errorf("unexpected first sentence %q", sentences[0].Text)
	}
	if sentences[len(sentences)-1].NextStartType != voikko.SentenceNone {
		t.Errorf("expected the final sentence to carry SentenceNone")
	}

	var joined string
	for _, s := range sentences {
		joined += s.Text
	}
	if joined != input {
		t.Errorf("sentences do not reassemble the input: %q", joined)
	}
}

func TestOptionsChangeBehavior(t *testing.T) {
	v := newFinnish(t)

	// A trailing dot fails by default and passes with ignore dot set.
	result, err := v.Spell("kissa.")
	if err != nil {
		t.Fatalf("spell: %v", err)
	}
	if result != voikko.SpellFailed {
		t.Errorf("spell kissa. = %v, want failed", result)
	}

	if !v.SetIgnoreDot(true) {
		t.Fatal("SetIgnoreDot rejected")
	}
	result, err = v.Spell("kissa.")
	if err != nil {
		t.Fatalf("spell: %v", err)
	}
	if result != voikko.SpellOk {
		t.Errorf("spell kissa. with ignore dot = %v, want ok", result)
	}
}

func TestMinHyphenatedWordLength(t *testing.T) {
	v := newFinnish(t)

	if !v.SetMinHyphenatedWordLength(6) {
		t.Fatal("SetMinHyphenatedWordLength rejected")
	}
	got, err := v.Hyphenate("koira", "-")
	if err != nil {
		t.Fatalf("hyphenate: %v", err)
	}
	if got != "koira" {
		t.Errorf("hyphenate koira with min length 6 = %q, want unbroken", got)
	}
}
