package engine

// Handle identifies one live engine session. The zero value is never a
// valid session.
type Handle uint32

// TokenCode is the engine's raw classification of a token.
type TokenCode int

const (
	TokenNone TokenCode = iota // end of input, never part of a result
	TokenWord
	TokenPunctuation
	TokenWhitespace
	TokenUnknown
)

// SentenceCode is the engine's raw classification of a sentence boundary.
type SentenceCode int

const (
	SentenceNone SentenceCode = iota // no further sentences
	SentenceNoStart
	SentenceProbable
	SentencePossible
)

// Spell check return codes. Values outside this set indicate an engine
// fault rather than a spelling verdict.
const (
	SpellCodeFailed        = 0
	SpellCodeOk            = 1
	SpellCodeInternalError = 2
	SpellCodeCharsetFailed = 3
)

// Engine option identifiers. The numeric values belong to the C API and
// must not be renumbered.
const (
	OptIgnoreDot                      = 0  // boolean
	OptIgnoreNumbers                  = 1  // boolean
	OptIgnoreUppercase                = 3  // boolean
	OptNoUglyHyphenation              = 4  // boolean
	OptAcceptFirstUppercase           = 6  // boolean
	OptAcceptAllUppercase             = 7  // boolean
	OptOCRSuggestions                 = 8  // boolean
	OptMinHyphenatedWordLength        = 9  // integer
	OptIgnoreNonwords                 = 10 // boolean
	OptAcceptExtraHyphens             = 11 // boolean
	OptAcceptMissingHyphens           = 12 // boolean
	OptAcceptTitlesInGc               = 13 // boolean
	OptAcceptUnfinishedParagraphsInGc = 14 // boolean
	OptHyphenateUnknownWords          = 15 // boolean
	OptAcceptBulletedListsInGc        = 16 // boolean
	OptSpellerCacheSize               = 17 // integer
)

// GrammarRecord is one grammar error as reported by the engine.
// StartPos and Length are measured in Unicode characters of the checked
// text, not bytes.
type GrammarRecord struct {
	Code        int
	StartPos    int
	Length      int
	Suggestions []string
	Description string
}

// DictRecord describes one installed dictionary.
type DictRecord struct {
	Language    string
	Script      string
	Variant     string
	Description string
}

// Engine is the boundary contract for the native linguistic backend.
//
// Strings passed in must be free of NUL bytes; callers validate before
// crossing this boundary. Every returned value is an owned Go copy and
// holds no foreign memory.
type Engine interface {
	// Init creates a session for a BCP 47 language tag. path names a
	// directory searched for dictionaries before the standard locations;
	// empty means standard locations only. A failed init returns the
	// engine's own diagnostic inside the error.
	Init(language, path string) (Handle, error)

	// Terminate destroys the session. Terminating an unknown or already
	// terminated handle is a no-op.
	Terminate(h Handle)

	// SetBooleanOption reports whether the engine accepted the option.
	SetBooleanOption(h Handle, option int, value bool) bool

	// SetIntegerOption reports whether the engine accepted the option.
	SetIntegerOption(h Handle, option int, value int) bool

	// Spell returns the raw spell check code for word.
	Spell(h Handle, word string) int

	// Suggest returns corrections for a misspelled word, best first.
	// No suggestions yields an empty result, never an error.
	Suggest(h Handle, word string) []string

	// HyphenationPattern returns the hyphenation mask for word, one
	// symbol per grapheme cluster, or ok=false when the engine produced
	// none.
	HyphenationPattern(h Handle, word string) (pattern string, ok bool)

	// InsertHyphens returns word with hyphen inserted at every
	// hyphenation point. Available from engine version 4.2.0 on.
	InsertHyphens(h Handle, word, hyphen string, allowContextChanges bool) (string, bool)

	// NextToken classifies the first token of text and returns its
	// length in characters. TokenNone means no token was found.
	NextToken(h Handle, text string) (TokenCode, int)

	// NextSentence returns the classification of the boundary that
	// follows the first sentence of text, and that sentence's length in
	// characters.
	NextSentence(h Handle, text string) (SentenceCode, int)

	// NextGrammarError scans text forward from offset (in characters)
	// and returns the next error with its description localized for
	// descLang. ok=false means the rest of the text is clean.
	NextGrammarError(h Handle, text string, offset int, descLang string) (GrammarRecord, bool)

	// Analyses returns the morphological readings of word, one
	// attribute map per reading, in the engine's ranking order. An
	// unknown word yields an empty result, never an error.
	Analyses(h Handle, word string) []map[string]string

	// Dictionaries lists the dictionaries installed under path and the
	// standard locations. Empty path means standard locations only.
	Dictionaries(path string) []DictRecord

	// SpellingLanguages lists BCP 47 tags with spell checking support.
	SpellingLanguages(path string) []string

	// HyphenationLanguages lists BCP 47 tags with hyphenation support.
	HyphenationLanguages(path string) []string

	// GrammarLanguages lists BCP 47 tags with grammar checking support.
	GrammarLanguages(path string) []string

	// Version returns the engine library's version string.
	Version() string
}
