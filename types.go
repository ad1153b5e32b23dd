package voikko

import "github.com/tekstikone/voikko/engine"

// TokenKind classifies one token produced by Tokens.
type TokenKind int

const (
	// TokenNone is the tokenizer's end sentinel; it never appears in
	// results.
	TokenNone TokenKind = iota
	TokenWord
	TokenPunctuation
	TokenWhitespace
	TokenUnknown
)

func (k TokenKind) String() string {
	switch k {
	case TokenWord:
		return "word"
	case TokenPunctuation:
		return "punctuation"
	case TokenWhitespace:
		return "whitespace"
	case TokenNone:
		return "none"
	default:
		return "unknown"
	}
}

// Token is one tokenizer result. Text is a contiguous substring of the
// input; consecutive tokens partition the input without gaps or
// overlaps.
type Token struct {
	Text string
	Kind TokenKind
}

// SentenceKind classifies a candidate sentence boundary.
type SentenceKind int

const (
	// SentenceNone means no further sentence follows.
	SentenceNone SentenceKind = iota
	SentenceNoStart
	SentenceProbable
	SentencePossible
)

func (k SentenceKind) String() string {
	switch k {
	case SentenceNoStart:
		return "no start"
	case SentenceProbable:
		return "probable"
	case SentencePossible:
		return "possible"
	default:
		return "none"
	}
}

// Sentence is one segment produced by Sentences. NextStartType describes
// the confidence of the boundary that follows this segment, not the
// segment itself; the final segment always carries SentenceNone.
type Sentence struct {
	Text          string
	NextStartType SentenceKind
}

// GrammarError is one grammar checker finding. StartPos and Length are
// measured in Unicode characters of the checked text, not bytes.
type GrammarError struct {
	Code        int
	StartPos    int
	Length      int
	Suggestions []string
	Description string
}

// Analysis is one morphological reading of a word, mapping attribute
// names to values. A word may have any number of readings.
type Analysis map[string]string

// Dictionary describes one installed dictionary.
type Dictionary struct {
	Language    string
	Script      string
	Variant     string
	Description string
}

// SpellResult classifies the outcome of a spell check.
type SpellResult int

const (
	SpellFailed SpellResult = iota
	SpellOk
	SpellInternalError
	SpellCharsetConversionFailed
)

func (r SpellResult) String() string {
	switch r {
	case SpellOk:
		return "ok"
	case SpellFailed:
		return "failed"
	case SpellCharsetConversionFailed:
		return "charset conversion failed"
	default:
		return "internal error"
	}
}

// tokenKind maps the engine's raw token classification to the public
// one. Codes outside the documented set come back as TokenUnknown.
func tokenKind(code engine.TokenCode) TokenKind {
	switch code {
	case engine.TokenNone:
		return TokenNone
	case engine.TokenWord:
		return TokenWord
	case engine.TokenPunctuation:
		return TokenPunctuation
	case engine.TokenWhitespace:
		return TokenWhitespace
	default:
		return TokenUnknown
	}
}

// sentenceKind maps the engine's raw boundary classification to the
// public one. Codes outside the documented set come back as
// SentenceNone, which ends the scan.
func sentenceKind(code engine.SentenceCode) SentenceKind {
	switch code {
	case engine.SentenceNoStart:
		return SentenceNoStart
	case engine.SentenceProbable:
		return SentenceProbable
	case engine.SentencePossible:
		return SentencePossible
	default:
		return SentenceNone
	}
}

// spellResult classifies the engine's raw spell check code. Codes
// outside the documented set are engine faults, distinct from a plain
// spelling failure.
func spellResult(code int) SpellResult {
	switch code {
	case engine.SpellCodeFailed:
		return SpellFailed
	case engine.SpellCodeOk:
		return SpellOk
	case engine.SpellCodeCharsetFailed:
		return SpellCharsetConversionFailed
	default:
		return SpellInternalError
	}
}
