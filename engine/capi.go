package engine

/*
#cgo LDFLAGS: -lvoikko
#include <stdlib.h>
#include <stddef.h>

struct VoikkoHandle;
struct VoikkoGrammarError;
struct voikko_dict;
struct voikko_mor_analysis;

enum voikko_token_type {TOKEN_NONE, TOKEN_WORD, TOKEN_PUNCTUATION,
                        TOKEN_WHITESPACE, TOKEN_UNKNOWN};
enum voikko_sentence_type {SENTENCE_NONE, SENTENCE_NO_START,
                           SENTENCE_PROBABLE, SENTENCE_POSSIBLE};

struct VoikkoHandle * voikkoInit(const char ** error, const char * langcode,
                                 const char * path);
void voikkoTerminate(struct VoikkoHandle * handle);
int voikkoSetBooleanOption(struct VoikkoHandle * handle, int option, int value);
int voikkoSetIntegerOption(struct VoikkoHandle * handle, int option, int value);
int voikkoSpellCstr(struct VoikkoHandle * handle, const char * word);
char ** voikkoSuggestCstr(struct VoikkoHandle * handle, const char * word);
char * voikkoHyphenateCstr(struct VoikkoHandle * handle, const char * word);
char * voikkoInsertHyphensCstr(struct VoikkoHandle * handle, const char * word,
                               const char * hyphen, int allowContextChanges);
void voikkoFreeCstrArray(char ** cstrArray);
void voikkoFreeCstr(char * cstr);
enum voikko_token_type voikkoNextTokenCstr(struct VoikkoHandle * handle,
        const char * text, size_t textlen, size_t * tokenlen);
enum voikko_sentence_type voikkoNextSentenceStartCstr(struct VoikkoHandle * handle,
        const char * text, size_t textlen, size_t * sentencelen);
struct VoikkoGrammarError * voikkoNextGrammarErrorCstr(struct VoikkoHandle * handle,
        const char * text, size_t textlen, size_t startpos, int skiperrors);
int voikkoGetGrammarErrorCode(const struct VoikkoGrammarError * error);
size_t voikkoGetGrammarErrorStartPos(const struct VoikkoGrammarError * error);
size_t voikkoGetGrammarErrorLength(const struct VoikkoGrammarError * error);
const char ** voikkoGetGrammarErrorSuggestions(const struct VoikkoGrammarError * error);
void voikkoFreeGrammarError(struct VoikkoGrammarError * error);
char * voikkoGetGrammarErrorShortDescription(struct VoikkoGrammarError * error,
                                             const char * language);
void voikkoFreeErrorMessageCstr(char * message);
struct voikko_dict ** voikko_list_dicts(const char * path);
void voikko_free_dicts(struct voikko_dict ** dicts);
const char * voikko_dict_language(const struct voikko_dict * dict);
const char * voikko_dict_script(const struct voikko_dict * dict);
const char * voikko_dict_variant(const struct voikko_dict * dict);
const char * voikko_dict_description(const struct voikko_dict * dict);
const char ** voikkoListSupportedSpellingLanguages(const char * path);
const char ** voikkoListSupportedHyphenationLanguages(const char * path);
const char ** voikkoListSupportedGrammarCheckingLanguages(const char * path);
const char * voikkoGetVersion(void);
struct voikko_mor_analysis ** voikkoAnalyzeWordCstr(struct VoikkoHandle * handle,
                                                    const char * word);
void voikko_free_mor_analysis(struct voikko_mor_analysis ** analysis);
const char ** voikko_mor_analysis_keys(const struct voikko_mor_analysis * analysis);
char * voikko_mor_analysis_value_cstr(const struct voikko_mor_analysis * analysis,
                                      const char * key);
void voikko_free_mor_analysis_value_cstr(char * analysis_value);
*/
import "C"

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/tekstikone/voikko/errors"
)

// Native is the Engine implementation linked against the system's
// libvoikko shared library.
type Native struct {
	sessions sessionTable
}

// NewNative creates a Native engine. The underlying library is loaded by
// the process linker; creation itself performs no native calls.
func NewNative() *Native {
	return &Native{}
}

var _ Engine = (*Native)(nil)

// session resolves a handle to its C session pointer.
func (n *Native) session(h Handle) (*C.struct_VoikkoHandle, bool) {
	ptr, ok := n.sessions.get(h)
	if !ok {
		return nil, false
	}
	return (*C.struct_VoikkoHandle)(ptr), true
}

// Open returns the number of live sessions.
func (n *Native) Open() int {
	return n.sessions.len()
}

func (n *Native) Init(language, path string) (Handle, error) {
	cLang, freeLang := cString(language)
	defer freeLang()

	// Null path means standard dictionary locations only.
	var cPath *C.char
	if path != "" {
		p, freePath := cString(path)
		defer freePath()
		cPath = p
	}

	var cDiag *C.char
	ptr := C.voikkoInit(&cDiag, cLang, cPath)
	if ptr == nil {
		// The diagnostic is engine-owned static text, not freed.
		diag := ""
		if cDiag != nil {
			diag = C.GoString(cDiag)
		}
		return 0, errors.InitFailed(language, diag)
	}

	h := n.sessions.insert(unsafe.Pointer(ptr))
	Logger().Debug("session created",
		zap.String("language", language),
		zap.Uint32("handle", uint32(h)),
		zap.Int("open", n.sessions.len()))
	return h, nil
}

func (n *Native) Terminate(h Handle) {
	ptr, ok := n.sessions.drop(h)
	if !ok {
		return
	}
	C.voikkoTerminate((*C.struct_VoikkoHandle)(ptr))
	Logger().Debug("session terminated",
		zap.Uint32("handle", uint32(h)),
		zap.Int("open", n.sessions.len()))
}

func (n *Native) SetBooleanOption(h Handle, option int, value bool) bool {
	s, ok := n.session(h)
	if !ok {
		return false
	}
	v := C.int(0)
	if value {
		v = 1
	}
	return C.voikkoSetBooleanOption(s, C.int(option), v) != 0
}

func (n *Native) SetIntegerOption(h Handle, option int, value int) bool {
	s, ok := n.session(h)
	if !ok {
		return false
	}
	return C.voikkoSetIntegerOption(s, C.int(option), C.int(value)) != 0
}

func (n *Native) Spell(h Handle, word string) int {
	s, ok := n.session(h)
	if !ok {
		return SpellCodeInternalError
	}
	cWord, free := cString(word)
	defer free()
	return int(C.voikkoSpellCstr(s, cWord))
}

func (n *Native) Suggest(h Handle, word string) []string {
	s, ok := n.session(h)
	if !ok {
		return nil
	}
	cWord, free := cString(word)
	defer free()

	arr := C.voikkoSuggestCstr(s, cWord)
	if arr == nil {
		return nil
	}
	defer C.voikkoFreeCstrArray(arr)
	return goStrings(arr)
}

func (n *Native) HyphenationPattern(h Handle, word string) (string, bool) {
	s, ok := n.session(h)
	if !ok {
		return "", false
	}
	cWord, free := cString(word)
	defer free()

	ptr := C.voikkoHyphenateCstr(s, cWord)
	if ptr == nil {
		return "", false
	}
	defer C.voikkoFreeCstr(ptr)
	return C.GoString(ptr), true
}

func (n *Native) InsertHyphens(h Handle, word, hyphen string, allowContextChanges bool) (string, bool) {
	s, ok := n.session(h)
	if !ok {
		return "", false
	}
	cWord, freeWord := cString(word)
	defer freeWord()
	cHyphen, freeHyphen := cString(hyphen)
	defer freeHyphen()

	allow := C.int(0)
	if allowContextChanges {
		allow = 1
	}
	ptr := C.voikkoInsertHyphensCstr(s, cWord, cHyphen, allow)
	if ptr == nil {
		return "", false
	}
	defer C.voikkoFreeCstr(ptr)
	return C.GoString(ptr), true
}

func (n *Native) NextToken(h Handle, text string) (TokenCode, int) {
	s, ok := n.session(h)
	if !ok || text == "" {
		return TokenNone, 0
	}
	cText, free := cString(text)
	defer free()

	var tokenLen C.size_t
	kind := C.voikkoNextTokenCstr(s, cText, C.size_t(len(text)), &tokenLen)
	return TokenCode(kind), int(tokenLen)
}

func (n *Native) NextSentence(h Handle, text string) (SentenceCode, int) {
	s, ok := n.session(h)
	if !ok || text == "" {
		return SentenceNone, 0
	}
	cText, free := cString(text)
	defer free()

	var sentLen C.size_t
	kind := C.voikkoNextSentenceStartCstr(s, cText, C.size_t(len(text)), &sentLen)
	return SentenceCode(kind), int(sentLen)
}

func (n *Native) NextGrammarError(h Handle, text string, offset int, descLang string) (GrammarRecord, bool) {
	s, ok := n.session(h)
	if !ok {
		return GrammarRecord{}, false
	}
	cText, free := cString(text)
	defer free()

	rec := C.voikkoNextGrammarErrorCstr(s, cText, C.size_t(len(text)), C.size_t(offset), 0)
	if rec == nil {
		return GrammarRecord{}, false
	}
	defer C.voikkoFreeGrammarError(rec)

	out := GrammarRecord{
		Code:     int(C.voikkoGetGrammarErrorCode(rec)),
		StartPos: int(C.voikkoGetGrammarErrorStartPos(rec)),
		Length:   int(C.voikkoGetGrammarErrorLength(rec)),
	}

	// The suggestion array is a view into the record, freed with it.
	out.Suggestions = goStrings(C.voikkoGetGrammarErrorSuggestions(rec))

	cLang, freeLang := cString(descLang)
	defer freeLang()
	if desc := C.voikkoGetGrammarErrorShortDescription(rec, cLang); desc != nil {
		out.Description = C.GoString(desc)
		C.voikkoFreeErrorMessageCstr(desc)
	}

	return out, true
}

func (n *Native) Analyses(h Handle, word string) []map[string]string {
	s, ok := n.session(h)
	if !ok {
		return nil
	}
	cWord, free := cString(word)
	defer free()

	arr := C.voikkoAnalyzeWordCstr(s, cWord)
	if arr == nil {
		return nil
	}
	defer C.voikko_free_mor_analysis(arr)

	var out []map[string]string
	for p := arr; *p != nil; p = (**C.struct_voikko_mor_analysis)(unsafe.Add(unsafe.Pointer(p), unsafe.Sizeof(*p))) {
		rec := *p
		reading := make(map[string]string)

		// Key strings are views into the record; only each value buffer
		// is a fresh allocation to release.
		keys := C.voikko_mor_analysis_keys(rec)
		if keys != nil {
			for k := keys; *k != nil; k = (**C.char)(unsafe.Add(unsafe.Pointer(k), unsafe.Sizeof(*k))) {
				if val := C.voikko_mor_analysis_value_cstr(rec, *k); val != nil {
					reading[C.GoString(*k)] = C.GoString(val)
					C.voikko_free_mor_analysis_value_cstr(val)
				}
			}
		}
		out = append(out, reading)
	}
	return out
}

func (n *Native) Dictionaries(path string) []DictRecord {
	cPath, free := cString(path)
	defer free()

	arr := C.voikko_list_dicts(cPath)
	if arr == nil {
		return nil
	}
	defer C.voikko_free_dicts(arr)

	var out []DictRecord
	for p := arr; *p != nil; p = (**C.struct_voikko_dict)(unsafe.Add(unsafe.Pointer(p), unsafe.Sizeof(*p))) {
		d := *p
		out = append(out, DictRecord{
			Language:    C.GoString(C.voikko_dict_language(d)),
			Script:      C.GoString(C.voikko_dict_script(d)),
			Variant:     C.GoString(C.voikko_dict_variant(d)),
			Description: C.GoString(C.voikko_dict_description(d)),
		})
	}
	return out
}

func (n *Native) SpellingLanguages(path string) []string {
	cPath, free := cString(path)
	defer free()

	// Engine-owned list, not freed.
	return goStrings(C.voikkoListSupportedSpellingLanguages(cPath))
}

func (n *Native) HyphenationLanguages(path string) []string {
	cPath, free := cString(path)
	defer free()

	// Engine-owned list, not freed.
	return goStrings(C.voikkoListSupportedHyphenationLanguages(cPath))
}

func (n *Native) GrammarLanguages(path string) []string {
	cPath, free := cString(path)
	defer free()

	// Engine-owned list, not freed.
	return goStrings(C.voikkoListSupportedGrammarCheckingLanguages(cPath))
}

func (n *Native) Version() string {
	// Static engine string, not freed.
	return C.GoString(C.voikkoGetVersion())
}
