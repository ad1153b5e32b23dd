package errors

import (
	"fmt"
	"strings"
)

// Op identifies the operation that produced the error
type Op string

const (
	OpInit      Op = "init"      // session creation
	OpSpell     Op = "spell"     // spell check
	OpSuggest   Op = "suggest"   // spelling suggestions
	OpHyphenate Op = "hyphenate" // hyphenation pattern and alignment
	OpTokenize  Op = "tokenize"  // token extraction
	OpSentences Op = "sentences" // sentence segmentation
	OpGrammar   Op = "grammar"   // grammar error scanning
	OpAnalyze   Op = "analyze"   // morphological analysis
	OpList      Op = "list"      // dictionary and language enumeration
	OpPool      Op = "pool"      // session pool management
)

// Kind categorizes the error
type Kind string

const (
	KindInitFailed   Kind = "init_failed"   // engine refused to create a session
	KindBadInput     Kind = "bad_input"     // input rejected before reaching the engine
	KindNoResult     Kind = "no_result"     // engine produced nothing for a single-value operation
	KindInternal     Kind = "internal"      // engine behaved outside its documented contract
	KindNonMonotonic Kind = "non_monotonic" // grammar scan position failed to advance
	KindUnsupported  Kind = "unsupported"   // feature missing from the linked engine version
	KindClosed       Kind = "closed"        // session or pool used after Close
	KindExhausted    Kind = "exhausted"     // pool acquire gave up before a session freed
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Op       Op
	Kind     Kind
	Language string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Language != "" {
		b.WriteString(" (")
		b.WriteString(e.Language)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Op == t.Op && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op Op, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// Language sets the language tag of the session the error belongs to
func (b *Builder) Language(tag string) *Builder {
	b.err.Language = tag
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InitFailed creates a session initialization error carrying the engine's
// own diagnostic text, when it produced one
func InitFailed(language, diagnostic string) *Error {
	detail := "engine returned no session"
	if diagnostic != "" {
		detail = diagnostic
	}
	return &Error{
		Op:       OpInit,
		Kind:     KindInitFailed,
		Language: language,
		Detail:   detail,
	}
}

// EmbeddedNUL creates a bad-input error for a string that cannot cross the
// C boundary intact
func EmbeddedNUL(op Op, what string, pos int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindBadInput,
		Detail: fmt.Sprintf("%s contains NUL byte at index %d", what, pos),
		Value:  pos,
	}
}

// NoResult creates an error for an engine call that yielded nothing where
// a value is mandatory
func NoResult(op Op, what string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindNoResult,
		Detail: fmt.Sprintf("engine produced no %s", what),
	}
}

// Internal creates an error for engine behavior outside its contract
func Internal(op Op, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInternal,
		Detail: detail,
	}
}

// NonMonotonic creates an error for a grammar scan whose resume position
// failed to advance past the previous match
func NonMonotonic(prev, next int) *Error {
	return &Error{
		Op:     OpGrammar,
		Kind:   KindNonMonotonic,
		Detail: fmt.Sprintf("scan position moved from %d to %d", prev, next),
		Value:  next,
	}
}

// Unsupported creates an error for a feature the linked engine is too old
// to provide
func Unsupported(op Op, what, haveVersion string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindUnsupported,
		Detail: fmt.Sprintf("%s requires a newer engine (have %s)", what, haveVersion),
	}
}

// Closed creates a use-after-close error
func Closed(op Op) *Error {
	return &Error{
		Op:     op,
		Kind:   KindClosed,
		Detail: "session is closed",
	}
}

// PoolClosed creates an error for operations on a closed pool
func PoolClosed() *Error {
	return &Error{
		Op:     OpPool,
		Kind:   KindClosed,
		Detail: "pool is closed",
	}
}

// Exhausted creates an error for an acquire that ended before a session
// became available
func Exhausted(cause error) *Error {
	return &Error{
		Op:     OpPool,
		Kind:   KindExhausted,
		Detail: "no session became available",
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(op Op, kind Kind, cause error, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
