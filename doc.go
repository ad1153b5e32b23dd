// Package voikko provides Go bindings for the voikko natural-language
// engine: spell checking, hyphenation, tokenization, sentence
// splitting, grammar checking, and morphological analysis.
//
// The library is a mediation layer over the native C engine. It owns
// every engine allocation for exactly the duration of one call, settles
// the engine's character-based offsets against Go's byte-indexed
// strings, and keeps all foreign pointers confined below the engine
// boundary.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	voikko/              Root package with the session API
//	├── engine/          The C boundary: Engine contract and native backend
//	├── errors/          Structured error types with Op/Kind taxonomy
//	├── internal/        Test support (scripted fake engine)
//	├── cmd/voikko/      Command line and interactive shell
//	├── examples/        Runnable usage walkthroughs
//	└── testbed/         Integration tests against an installed engine
//
// # Quick Start
//
// Create a session for a language and use it:
//
//	v, err := voikko.New("fi")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer v.Close()
//
//	result, err := v.Spell("kuningas")
//	fmt.Println(result) // ok
//
//	hyphenated, err := v.Hyphenate("kuningas", "-")
//	fmt.Println(hyphenated) // "ku-nin-gas"
//
// # Units
//
// The engine reports offsets and lengths in Unicode characters.
// Everything this package returns is plain Go string slicing territory:
// token and sentence texts are exact substrings of the input, and the
// character arithmetic stays internal. Only GrammarError carries
// character units outward, because the engine's positions refer to the
// whole checked text.
//
// # Thread Safety
//
// A Voikko session is NOT safe for concurrent use: the engine keeps
// per-session state behind the handle. Use one session per goroutine,
// serialize access externally, or use Pool, which hands out exclusive
// sessions from a fixed set.
//
// # Engine Requirements
//
// Building needs cgo and the voikko shared library visible to the
// linker. Operations run against the dictionaries installed on the
// system; sessions fail to initialize when no dictionary matches the
// requested language.
package voikko
