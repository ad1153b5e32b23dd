package voikko

import (
	"go.uber.org/zap"

	"github.com/tekstikone/voikko/engine"
)

// Option setters configure the engine session. Each returns whether the
// engine accepted the option; false means the id/value combination was
// rejected, or the session is closed. Options apply to all later
// operations on the same session.

func (v *Voikko) setBool(option int, value bool) bool {
	if v.closed {
		return false
	}
	ok := v.eng.SetBooleanOption(v.handle, option, value)
	if !ok {
		Logger().Debug("boolean option rejected",
			zap.Int("option", option), zap.Bool("value", value))
	}
	return ok
}

func (v *Voikko) setInt(option int, value int) bool {
	if v.closed {
		return false
	}
	ok := v.eng.SetIntegerOption(v.handle, option, value)
	if !ok {
		Logger().Debug("integer option rejected",
			zap.Int("option", option), zap.Int("value", value))
	}
	return ok
}

// SetIgnoreDot makes spell checking and hyphenation retry a word
// without its trailing dot when the dotted form yields nothing, and
// the tokenizer count a trailing dot as part of the word. Needed by
// some word processors.
//
// Default: false.
func (v *Voikko) SetIgnoreDot(value bool) bool {
	return v.setBool(engine.OptIgnoreDot, value)
}

// SetIgnoreNumbers makes spell checking ignore words containing
// numbers.
//
// Default: false.
func (v *Voikko) SetIgnoreNumbers(value bool) bool {
	return v.setBool(engine.OptIgnoreNumbers, value)
}

// SetIgnoreUppercase accepts words written completely in uppercase
// without checking them at all.
//
// Default: false.
func (v *Voikko) SetIgnoreUppercase(value bool) bool {
	return v.setBool(engine.OptIgnoreUppercase, value)
}

// SetAcceptFirstUppercase accepts words whose first letter is
// uppercase, as at the start of a sentence.
//
// Default: true.
func (v *Voikko) SetAcceptFirstUppercase(value bool) bool {
	return v.setBool(engine.OptAcceptFirstUppercase, value)
}

// SetAcceptAllUppercase accepts words written fully in uppercase. The
// word is still checked, only case differences are ignored; this is
// not the same as SetIgnoreUppercase.
//
// Default: true.
func (v *Voikko) SetAcceptAllUppercase(value bool) bool {
	return v.setBool(engine.OptAcceptAllUppercase, value)
}

// SetNoUglyHyphenation suppresses hyphenation points that are correct
// but considered ugly.
//
// Default: false.
func (v *Voikko) SetNoUglyHyphenation(value bool) bool {
	return v.setBool(engine.OptNoUglyHyphenation, value)
}

// SetOCRSuggestions optimizes suggestions for text produced by optical
// character recognition instead of the default typing errors.
//
// Default: false.
func (v *Voikko) SetOCRSuggestions(value bool) bool {
	return v.setBool(engine.OptOCRSuggestions, value)
}

// SetIgnoreNonwords makes spell checking ignore non-words such as URLs
// and email addresses.
//
// Default: true.
func (v *Voikko) SetIgnoreNonwords(value bool) bool {
	return v.setBool(engine.OptIgnoreNonwords, value)
}

// SetAcceptExtraHyphens relaxes hyphen checking to work around
// unresolved issues in the underlying morphology. May let some
// incorrect words through; the exact behavior is unspecified. Spell
// checking only.
//
// Default: false.
func (v *Voikko) SetAcceptExtraHyphens(value bool) bool {
	return v.setBool(engine.OptAcceptExtraHyphens, value)
}

// SetAcceptMissingHyphens accepts words missing hyphens at their start
// or end. A workaround for applications whose tokenizer does not treat
// hyphens as word characters, which is wrong for Finnish. Spell
// checking only.
//
// Default: false.
func (v *Voikko) SetAcceptMissingHyphens(value bool) bool {
	return v.setBool(engine.OptAcceptMissingHyphens, value)
}

// SetAcceptTitlesInGc accepts incomplete sentences that could occur in
// titles or headings. Grammar checking only.
//
// Default: false.
func (v *Voikko) SetAcceptTitlesInGc(value bool) bool {
	return v.setBool(engine.OptAcceptTitlesInGc, value)
}

// SetAcceptUnfinishedParagraphsInGc accepts incomplete sentences at the
// end of a paragraph, as when text is still being written. Grammar
// checking only.
//
// Default: false.
func (v *Voikko) SetAcceptUnfinishedParagraphsInGc(value bool) bool {
	return v.setBool(engine.OptAcceptUnfinishedParagraphsInGc, value)
}

// SetHyphenateUnknownWords hyphenates words the dictionaries do not
// recognize. Hyphenation only.
//
// Default: true.
func (v *Voikko) SetHyphenateUnknownWords(value bool) bool {
	return v.setBool(engine.OptHyphenateUnknownWords, value)
}

// SetAcceptBulletedListsInGc accepts paragraphs that would be valid
// inside bulleted lists. Grammar checking only.
//
// Default: false.
func (v *Voikko) SetAcceptBulletedListsInGc(value bool) bool {
	return v.setBool(engine.OptAcceptBulletedListsInGc, value)
}

// SetMinHyphenatedWordLength sets the minimum length for words that may
// be hyphenated. The limit also applies to the parts of compound words.
//
// Default: 2.
func (v *Voikko) SetMinHyphenatedWordLength(value int) bool {
	return v.setInt(engine.OptMinHyphenatedWordLength, value)
}

// SetSpellerCacheSize sizes the spell checker cache: -1 disables it,
// values >= 0 scale the cache exponentially.
//
// Default: 0.
func (v *Voikko) SetSpellerCacheSize(value int) bool {
	return v.setInt(engine.OptSpellerCacheSize, value)
}
