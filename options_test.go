package voikko

import (
	"testing"

	"github.com/tekstikone/voikko/engine"
	"github.com/tekstikone/voikko/internal/enginetest"
)

func boolSetters(v *Voikko) []struct {
	name   string
	set    func(bool) bool
	option int
} {
	return []struct {
		name   string
		set    func(bool) bool
		option int
	}{
		{"SetIgnoreDot", v.SetIgnoreDot, engine.OptIgnoreDot},
		{"SetIgnoreNumbers", v.SetIgnoreNumbers, engine.OptIgnoreNumbers},
		{"SetIgnoreUppercase", v.SetIgnoreUppercase, engine.OptIgnoreUppercase},
		{"SetAcceptFirstUppercase", v.SetAcceptFirstUppercase, engine.OptAcceptFirstUppercase},
		{"SetAcceptAllUppercase", v.SetAcceptAllUppercase, engine.OptAcceptAllUppercase},
		{"SetNoUglyHyphenation", v.SetNoUglyHyphenation, engine.OptNoUglyHyphenation},
		{"SetOCRSuggestions", v.SetOCRSuggestions, engine.OptOCRSuggestions},
		{"SetIgnoreNonwords", v.SetIgnoreNonwords, engine.OptIgnoreNonwords},
		{"SetAcceptExtraHyphens", v.SetAcceptExtraHyphens, engine.OptAcceptExtraHyphens},
		{"SetAcceptMissingHyphens", v.SetAcceptMissingHyphens, engine.OptAcceptMissingHyphens},
		{"SetAcceptTitlesInGc", v.SetAcceptTitlesInGc, engine.OptAcceptTitlesInGc},
		{"SetAcceptUnfinishedParagraphsInGc", v.SetAcceptUnfinishedParagraphsInGc, engine.OptAcceptUnfinishedParagraphsInGc},
		{"SetHyphenateUnknownWords", v.SetHyphenateUnknownWords, engine.OptHyphenateUnknownWords},
		{"SetAcceptBulletedListsInGc", v.SetAcceptBulletedListsInGc, engine.OptAcceptBulletedListsInGc},
	}
}

func TestOptionSetters_Boolean(t *testing.T) {
	fake := &enginetest.Fake{}
	v := newSession(t, fake)
	defer v.Close()

	for _, tc := range boolSetters(v) {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.set(true) {
				t.Fatal("Expected the engine to accept the option")
			}
			if got, ok := fake.BoolOpts[tc.option]; !ok || !got {
				t.Fatalf("Expected option %d set to true, got %v (present %v)", tc.option, got, ok)
			}
			if !tc.set(false) {
				t.Fatal("Expected the engine to accept the option")
			}
			if got := fake.BoolOpts[tc.option]; got {
				t.Fatalf("Expected option %d set to false, got %v", tc.option, got)
			}
		})
	}

	if len(fake.BoolOpts) != 14 {
		t.Fatalf("Expected 14 distinct boolean options, got %d", len(fake.BoolOpts))
	}
}

func TestOptionSetters_Integer(t *testing.T) {
	fake := &enginetest.Fake{}
	v := newSession(t, fake)
	defer v.Close()

	if !v.SetMinHyphenatedWordLength(4) {
		t.Fatal("Expected the engine to accept the option")
	}
	if got := fake.IntOpts[engine.OptMinHyphenatedWordLength]; got != 4 {
		t.Fatalf("Expected minimum length 4, got %d", got)
	}

	if !v.SetSpellerCacheSize(-1) {
		t.Fatal("Expected the engine to accept the option")
	}
	if got := fake.IntOpts[engine.OptSpellerCacheSize]; got != -1 {
		t.Fatalf("Expected cache size -1, got %d", got)
	}
}

func TestOptionSetters_Rejected(t *testing.T) {
	fake := &enginetest.Fake{RejectOptions: true}
	v := newSession(t, fake)
	defer v.Close()

	if v.SetIgnoreDot(true) {
		t.Fatal("Expected a rejected boolean option to report false")
	}
	if v.SetSpellerCacheSize(2) {
		t.Fatal("Expected a rejected integer option to report false")
	}
}

func TestOptionSetters_ClosedSession(t *testing.T) {
	fake := &enginetest.Fake{}
	v := newSession(t, fake)
	v.Close()

	for _, tc := range boolSetters(v) {
		if tc.set(true) {
			t.Fatalf("%s succeeded on a closed session", tc.name)
		}
	}
	if v.SetMinHyphenatedWordLength(3) {
		t.Fatal("SetMinHyphenatedWordLength succeeded on a closed session")
	}
	if v.SetSpellerCacheSize(1) {
		t.Fatal("SetSpellerCacheSize succeeded on a closed session")
	}

	// The closed check fires before the engine is consulted.
	if len(fake.Faults) != 0 {
		t.Fatalf("Expected no engine faults, got %v", fake.Faults)
	}
	if len(fake.BoolOpts) != 0 || len(fake.IntOpts) != 0 {
		t.Fatal("Expected no options to reach the engine")
	}
}
