// Package enginetest provides a scripted engine.Engine for exercising
// the library without the native backend. The fake records every call
// so tests can verify cursor advancement, handle discipline, and that
// no operation reaches a terminated session.
package enginetest

import (
	"sync"
	"unicode/utf8"

	"github.com/tekstikone/voikko/engine"
	"github.com/tekstikone/voikko/errors"
)

// TokenStep scripts one NextToken response.
type TokenStep struct {
	Code  engine.TokenCode
	Chars int
}

// SentenceStep scripts one NextSentence response.
type SentenceStep struct {
	Code  engine.SentenceCode
	Chars int
}

// Fake implements engine.Engine with scripted responses.
//
// Zero value behavior: sessions initialize, spell checks fail, list
// and suggestion queries are empty, tokenization ends immediately, and
// the version reports 4.3.2. Populate the script fields before use;
// the recording fields fill in as the library runs.
type Fake struct {
	mu sync.Mutex

	// Script.
	InitError     error                          // returned by Init when set
	InitErrorAt   int                            // 1-based Init call that fails; 0 fails every call
	EngineVersion string                         // Version result, default "4.3.2"
	SpellCodes    map[string]int                 // word to raw code, default SpellCodeFailed
	Suggestions   map[string][]string            // word to suggestions
	Patterns      map[string]string              // word to hyphenation pattern; absent words have none
	Inserted      map[string]string              // word to native hyphenation result
	Readings      map[string][]map[string]string // word to morphological readings
	TokenSteps    []TokenStep                    // consumed one per NextToken call
	SentenceSteps []SentenceStep                 // consumed one per NextSentence call
	GrammarRecs   []engine.GrammarRecord         // consumed one per NextGrammarError call
	Dicts         []engine.DictRecord
	SpellingLangs []string
	HyphenLangs   []string
	GrammarLangs  []string
	RejectOptions bool // make every option setter report rejection

	// Recording.
	InitCount      int
	TerminateCount int
	TokenTexts     []string // the remaining text seen by each NextToken call
	SentenceTexts  []string // the remaining text seen by each NextSentence call
	GrammarOffsets []int    // the resume offset seen by each NextGrammarError call
	BoolOpts       map[int]bool
	IntOpts        map[int]int
	Faults         []string // operations that reached a dead or foreign handle

	nextHandle  engine.Handle
	live        map[engine.Handle]bool
	tokenIdx    int
	sentenceIdx int
	grammarIdx  int
}

var _ engine.Engine = (*Fake)(nil)

// check validates that an operation arrived on a live handle.
func (f *Fake) check(op string, h engine.Handle) bool {
	if f.live[h] {
		return true
	}
	f.Faults = append(f.Faults, op)
	return false
}

func (f *Fake) Init(language, path string) (engine.Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.InitCount++
	if f.InitError != nil && (f.InitErrorAt == 0 || f.InitCount >= f.InitErrorAt) {
		return 0, f.InitError
	}
	if f.live == nil {
		f.live = make(map[engine.Handle]bool)
	}
	f.nextHandle++
	f.live[f.nextHandle] = true
	return f.nextHandle, nil
}

func (f *Fake) Terminate(h engine.Handle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.check("terminate", h) {
		return
	}
	delete(f.live, h)
	f.TerminateCount++
}

// Live returns the number of sessions initialized but not terminated.
func (f *Fake) Live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.live)
}

func (f *Fake) SetBooleanOption(h engine.Handle, option int, value bool) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.check("set boolean option", h) {
		return false
	}
	if f.RejectOptions {
		return false
	}
	if f.BoolOpts == nil {
		f.BoolOpts = make(map[int]bool)
	}
	f.BoolOpts[option] = value
	return true
}

func (f *Fake) SetIntegerOption(h engine.Handle, option int, value int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.check("set integer option", h) {
		return false
	}
	if f.RejectOptions {
		return false
	}
	if f.IntOpts == nil {
		f.IntOpts = make(map[int]int)
	}
	f.IntOpts[option] = value
	return true
}

func (f *Fake) Spell(h engine.Handle, word string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.check("spell", h) {
		return engine.SpellCodeInternalError
	}
	return f.SpellCodes[word]
}

func (f *Fake) Suggest(h engine.Handle, word string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.check("suggest", h) {
		return nil
	}
	return f.Suggestions[word]
}

func (f *Fake) HyphenationPattern(h engine.Handle, word string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.check("hyphenation pattern", h) {
		return "", false
	}
	pattern, ok := f.Patterns[word]
	return pattern, ok
}

func (f *Fake) InsertHyphens(h engine.Handle, word, hyphen string, allowContextChanges bool) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.check("insert hyphens", h) {
		return "", false
	}
	out, ok := f.Inserted[word]
	return out, ok
}

func (f *Fake) NextToken(h engine.Handle, text string) (engine.TokenCode, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.check("next token", h) {
		return engine.TokenNone, 0
	}
	f.TokenTexts = append(f.TokenTexts, text)
	if f.tokenIdx >= len(f.TokenSteps) {
		return engine.TokenNone, 0
	}
	step := f.TokenSteps[f.tokenIdx]
	f.tokenIdx++
	return step.Code, step.Chars
}

func (f *Fake) NextSentence(h engine.Handle, text string) (engine.SentenceCode, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.check("next sentence", h) {
		return engine.SentenceNone, 0
	}
	f.SentenceTexts = append(f.SentenceTexts, text)
	if f.sentenceIdx >= len(f.SentenceSteps) {
		// Out of script: close out the scan with the full remainder.
		return engine.SentenceNone, utf8.RuneCountInString(text)
	}
	step := f.SentenceSteps[f.sentenceIdx]
	f.sentenceIdx++
	return step.Code, step.Chars
}

func (f *Fake) NextGrammarError(h engine.Handle, text string, offset int, descLang string) (engine.GrammarRecord, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.check("next grammar error", h) {
		return engine.GrammarRecord{}, false
	}
	f.GrammarOffsets = append(f.GrammarOffsets, offset)
	if f.grammarIdx >= len(f.GrammarRecs) {
		return engine.GrammarRecord{}, false
	}
	rec := f.GrammarRecs[f.grammarIdx]
	f.grammarIdx++
	return rec, true
}

func (f *Fake) Analyses(h engine.Handle, word string) []map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.check("analyze", h) {
		return nil
	}
	return f.Readings[word]
}

func (f *Fake) Dictionaries(path string) []engine.DictRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Dicts
}

func (f *Fake) SpellingLanguages(path string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.SpellingLangs
}

func (f *Fake) HyphenationLanguages(path string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.HyphenLangs
}

func (f *Fake) GrammarLanguages(path string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.GrammarLangs
}

func (f *Fake) Version() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.EngineVersion == "" {
		return "4.3.2"
	}
	return f.EngineVersion
}

// FailingInit returns a fake whose session creation fails the way the
// native engine does, with the given diagnostic.
func FailingInit(language, diagnostic string) *Fake {
	return &Fake{InitError: errors.InitFailed(language, diagnostic)}
}
