package voikko

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/tekstikone/voikko/errors"
)

// Hyphens returns the raw hyphenation pattern for word. The pattern has
// one symbol per grapheme cluster of the word:
//
//	' '  no hyphenation point at this character
//	'-'  hyphenation point, the character is kept
//	'='  hyphenation point, the character is replaced by the separator
func (v *Voikko) Hyphens(word string) (string, error) {
	if err := v.guard(errors.OpHyphenate); err != nil {
		return "", err
	}
	if err := checkNUL(errors.OpHyphenate, "word", word); err != nil {
		return "", err
	}

	pattern, ok := v.eng.HyphenationPattern(v.handle, word)
	if !ok {
		return "", errors.NoResult(errors.OpHyphenate, "hyphenation pattern")
	}
	return pattern, nil
}

// Hyphenate returns word with separator inserted at every hyphenation
// point.
func (v *Voikko) Hyphenate(word, separator string) (string, error) {
	pattern, err := v.Hyphens(word)
	if err != nil {
		return "", err
	}
	return applyPattern(word, pattern, separator), nil
}

// InsertHyphens returns word hyphenated by the engine itself, which may
// also adjust spelling around the break points when allowContextChanges
// is set. Needs engine version 4.2.0 or later; older engines yield a
// KindUnsupported error without being called.
func (v *Voikko) InsertHyphens(word, separator string, allowContextChanges bool) (string, error) {
	if err := v.guard(errors.OpHyphenate); err != nil {
		return "", err
	}
	if err := checkNUL(errors.OpHyphenate, "word", word); err != nil {
		return "", err
	}
	if err := checkNUL(errors.OpHyphenate, "separator", separator); err != nil {
		return "", err
	}
	if err := requireVersion(v.eng, errors.OpHyphenate, "hyphen insertion", insertHyphensMin); err != nil {
		return "", err
	}

	out, ok := v.eng.InsertHyphens(v.handle, word, separator, allowContextChanges)
	if !ok {
		return "", errors.NoResult(errors.OpHyphenate, "hyphenated form")
	}
	return out, nil
}

// applyPattern aligns the hyphenation pattern with the word grapheme
// cluster by grapheme cluster. The zip ends with the shorter of the
// two; a well-behaved engine produces patterns of exactly the word's
// cluster length.
func applyPattern(word, pattern, separator string) string {
	var b strings.Builder
	wordG := uniseg.NewGraphemes(word)
	patG := uniseg.NewGraphemes(pattern)
	for wordG.Next() && patG.Next() {
		g := wordG.Str()
		switch patG.Str() {
		case "-":
			b.WriteString(separator)
			b.WriteString(g)
		case "=":
			b.WriteString(separator)
		default:
			// ' ' and any unknown pattern symbol keep the character.
			b.WriteString(g)
		}
	}
	return b.String()
}
