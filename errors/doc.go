// Package errors provides structured error types for the voikko library.
//
// Errors are categorized by Op (which operation failed) and Kind (error
// category). The Error type includes rich context: the session language,
// the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.OpGrammar, errors.KindInternal).
//		Language("fi").
//		Detail("error record without a position").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.EmbeddedNUL(errors.OpSpell, "word", 3)
//	err := errors.InitFailed("fi", "Specified dictionary variant was not found")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
