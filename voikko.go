package voikko

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/tekstikone/voikko/engine"
	"github.com/tekstikone/voikko/errors"
)

var (
	defaultEng     engine.Engine
	defaultEngOnce sync.Once
)

// defaultEngine returns the process-wide native engine shared by all
// sessions that do not bring their own backend.
func defaultEngine() engine.Engine {
	defaultEngOnce.Do(func() {
		defaultEng = engine.NewNative()
	})
	return defaultEng
}

// Voikko is one configured engine session for one language variant.
//
// A Voikko owns its engine session exclusively. Close releases the
// session exactly once; every operation after Close fails with a
// KindClosed error before reaching the engine. A Voikko must not be
// used from multiple goroutines at once; see Pool for that.
type Voikko struct {
	eng      engine.Engine
	handle   engine.Handle
	language string
	closed   bool
}

type config struct {
	path string
	eng  engine.Engine
}

// Option configures session creation.
type Option func(*config)

// WithDictionaryPath sets a directory searched for dictionaries before
// the standard locations.
func WithDictionaryPath(dir string) Option {
	return func(c *config) { c.path = dir }
}

// WithEngine substitutes the backend the session talks to. The default
// is the process-wide native engine.
func WithEngine(e engine.Engine) Option {
	return func(c *config) { c.eng = e }
}

// New creates a session for a BCP 47 language tag such as "fi" or
// "fi-x-morphoid". Private-use subtags select dictionary variants.
func New(language string, opts ...Option) (*Voikko, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.eng == nil {
		cfg.eng = defaultEngine()
	}

	if err := checkNUL(errors.OpInit, "language", language); err != nil {
		return nil, err
	}
	if err := checkNUL(errors.OpInit, "path", cfg.path); err != nil {
		return nil, err
	}

	h, err := cfg.eng.Init(language, cfg.path)
	if err != nil {
		return nil, err
	}

	Logger().Debug("session ready", zap.String("language", language))
	return &Voikko{eng: cfg.eng, handle: h, language: language}, nil
}

// Language returns the tag the session was created for.
func (v *Voikko) Language() string {
	return v.language
}

// Close terminates the engine session. Close is idempotent; only the
// first call reaches the engine.
func (v *Voikko) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	v.eng.Terminate(v.handle)
	v.handle = 0
	Logger().Debug("session closed", zap.String("language", v.language))
	return nil
}

// guard rejects operations on a closed session.
func (v *Voikko) guard(op errors.Op) error {
	if v.closed {
		return errors.Closed(op)
	}
	return nil
}

// checkNUL rejects strings that cannot cross the C boundary intact.
func checkNUL(op errors.Op, what, s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return errors.EmbeddedNUL(op, what, i)
	}
	return nil
}

// Spell checks the spelling of word.
func (v *Voikko) Spell(word string) (SpellResult, error) {
	if err := v.guard(errors.OpSpell); err != nil {
		return SpellInternalError, err
	}
	if err := checkNUL(errors.OpSpell, "word", word); err != nil {
		return SpellInternalError, err
	}
	return spellResult(v.eng.Spell(v.handle, word)), nil
}

// Suggest returns correct spellings for a misspelled word, best match
// first. A word without suggestions yields an empty slice.
func (v *Voikko) Suggest(word string) ([]string, error) {
	if err := v.guard(errors.OpSuggest); err != nil {
		return nil, err
	}
	if err := checkNUL(errors.OpSuggest, "word", word); err != nil {
		return nil, err
	}
	return v.eng.Suggest(v.handle, word), nil
}

// Tokens splits text into tokens. The token texts concatenate back to
// exactly the input.
func (v *Voikko) Tokens(text string) ([]Token, error) {
	if err := v.guard(errors.OpTokenize); err != nil {
		return nil, err
	}
	if err := checkNUL(errors.OpTokenize, "text", text); err != nil {
		return nil, err
	}

	tokens := drive(text, TokenNone, false,
		func(rest string) (TokenKind, int) {
			code, n := v.eng.NextToken(v.handle, rest)
			return tokenKind(code), n
		},
		func(slice string, kind TokenKind) Token {
			return Token{Text: slice, Kind: kind}
		})
	return tokens, nil
}

// Sentences splits text into sentences. Each result names how
// confidently the engine expects the next sentence to start after it;
// the final one carries SentenceNone.
func (v *Voikko) Sentences(text string) ([]Sentence, error) {
	if err := v.guard(errors.OpSentences); err != nil {
		return nil, err
	}
	if err := checkNUL(errors.OpSentences, "text", text); err != nil {
		return nil, err
	}

	sentences := drive(text, SentenceNone, true,
		func(rest string) (SentenceKind, int) {
			code, n := v.eng.NextSentence(v.handle, rest)
			return sentenceKind(code), n
		},
		func(slice string, kind SentenceKind) Sentence {
			return Sentence{Text: slice, NextStartType: kind}
		})
	return sentences, nil
}

// Analyze returns the morphological readings of word in the engine's
// ranking order. A word the dictionaries do not recognize yields an
// empty slice, not an error.
func (v *Voikko) Analyze(word string) ([]Analysis, error) {
	if err := v.guard(errors.OpAnalyze); err != nil {
		return nil, err
	}
	if err := checkNUL(errors.OpAnalyze, "word", word); err != nil {
		return nil, err
	}

	raw := v.eng.Analyses(v.handle, word)
	out := make([]Analysis, 0, len(raw))
	for _, reading := range raw {
		out = append(out, Analysis(reading))
	}
	return out, nil
}

// GrammarErrors finds the grammar errors in text, with descriptions
// localized for descLang. Text should begin at a paragraph or sentence
// start for sensible results.
func (v *Voikko) GrammarErrors(text, descLang string) ([]GrammarError, error) {
	if err := v.guard(errors.OpGrammar); err != nil {
		return nil, err
	}
	if err := checkNUL(errors.OpGrammar, "text", text); err != nil {
		return nil, err
	}
	if err := checkNUL(errors.OpGrammar, "descLang", descLang); err != nil {
		return nil, err
	}

	var out []GrammarError
	offset := 0
	for {
		rec, ok := v.eng.NextGrammarError(v.handle, text, offset, descLang)
		if !ok {
			return out, nil
		}
		out = append(out, GrammarError{
			Code:        rec.Code,
			StartPos:    rec.StartPos,
			Length:      rec.Length,
			Suggestions: rec.Suggestions,
			Description: rec.Description,
		})

		// A scan position that fails to advance would report the same
		// error forever.
		next := rec.StartPos + rec.Length
		if next <= offset {
			return nil, errors.NonMonotonic(offset, next)
		}
		offset = next
	}
}

// ListDictionaries lists the dictionaries installed under path and the
// standard locations. An empty path searches the standard locations
// only.
func ListDictionaries(path string) ([]Dictionary, error) {
	if err := checkNUL(errors.OpList, "path", path); err != nil {
		return nil, err
	}
	raw := defaultEngine().Dictionaries(path)
	out := make([]Dictionary, 0, len(raw))
	for _, d := range raw {
		out = append(out, Dictionary{
			Language:    d.Language,
			Script:      d.Script,
			Variant:     d.Variant,
			Description: d.Description,
		})
	}
	return out, nil
}

// SupportedSpellingLanguages lists the BCP 47 tags for which a spell
// checking dictionary is available. An empty path searches the standard
// locations only.
func SupportedSpellingLanguages(path string) ([]string, error) {
	if err := checkNUL(errors.OpList, "path", path); err != nil {
		return nil, err
	}
	return defaultEngine().SpellingLanguages(path), nil
}

// SupportedHyphenationLanguages is SupportedSpellingLanguages for
// hyphenation.
func SupportedHyphenationLanguages(path string) ([]string, error) {
	if err := checkNUL(errors.OpList, "path", path); err != nil {
		return nil, err
	}
	return defaultEngine().HyphenationLanguages(path), nil
}

// SupportedGrammarCheckingLanguages is SupportedSpellingLanguages for
// grammar checking.
func SupportedGrammarCheckingLanguages(path string) ([]string, error) {
	if err := checkNUL(errors.OpList, "path", path); err != nil {
		return nil, err
	}
	return defaultEngine().GrammarLanguages(path), nil
}
