package voikko

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/tekstikone/voikko/errors"
	"github.com/tekstikone/voikko/internal/enginetest"
)

func TestPool_AcquireRelease(t *testing.T) {
	fake := &enginetest.Fake{}
	p, err := NewPool("fi", 2, WithEngine(fake))
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer p.Close()

	if fake.InitCount != 2 {
		t.Fatalf("Expected 2 sessions created, got %d", fake.InitCount)
	}

	ctx := context.Background()
	v1, err := p.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	v2, err := p.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if v1 == v2 {
		t.Fatal("Expected distinct sessions")
	}

	p.Release(v1)
	v3, err := p.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	if v3 != v1 {
		t.Fatal("Expected the released session back")
	}
	p.Release(v2)
	p.Release(v3)
}

func TestPool_SizeValidation(t *testing.T) {
	for _, size := range []int{0, -3} {
		_, err := NewPool("fi", size, WithEngine(&enginetest.Fake{}))
		wantError(t, err, errors.OpPool, errors.KindBadInput)
	}
}

func TestPool_CreationIsAllOrNothing(t *testing.T) {
	fake := &enginetest.Fake{
		InitError:   errors.InitFailed("fi", "no dictionaries"),
		InitErrorAt: 3,
	}

	_, err := NewPool("fi", 3, WithEngine(fake))
	wantError(t, err, errors.OpInit, errors.KindInitFailed)

	// The two sessions created before the failure are closed again.
	if fake.InitCount != 3 {
		t.Fatalf("Expected 3 init attempts, got %d", fake.InitCount)
	}
	if fake.TerminateCount != 2 {
		t.Fatalf("Expected 2 terminates, got %d", fake.TerminateCount)
	}
	if fake.Live() != 0 {
		t.Fatalf("Expected no live sessions, got %d", fake.Live())
	}
}

func TestPool_AcquireBlocksUntilRelease(t *testing.T) {
	fake := &enginetest.Fake{}
	p, err := NewPool("fi", 1, WithEngine(fake))
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer p.Close()

	ctx := context.Background()
	v, err := p.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	got := make(chan *Voikko, 1)
	go func() {
		w, err := p.Acquire(ctx)
		if err != nil {
			t.Errorf("Blocked Acquire: %v", err)
		}
		got <- w
	}()

	select {
	case <-got:
		t.Fatal("Acquire returned while the session was checked out")
	case <-time.After(20 * time.Millisecond):
	}

	p.Release(v)
	select {
	case w := <-got:
		if w != v {
			t.Fatal("Expected the released session")
		}
		p.Release(w)
	case <-time.After(time.Second):
		t.Fatal("Acquire did not wake after release")
	}
}

func TestPool_AcquireHonorsContext(t *testing.T) {
	fake := &enginetest.Fake{}
	p, err := NewPool("fi", 1, WithEngine(fake))
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer p.Close()

	v, err := p.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer p.Release(v)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Acquire(ctx)
	wantError(t, err, errors.OpPool, errors.KindExhausted)
	if !stderrors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled in the chain, got %v", err)
	}
}

func TestPool_Close(t *testing.T) {
	fake := &enginetest.Fake{}
	p, err := NewPool("fi", 2, WithEngine(fake))
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}

	v, err := p.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Second Close: %v", err)
	}

	// The idle session is gone; the checked out one goes when released.
	if fake.TerminateCount != 1 {
		t.Fatalf("Expected 1 terminate after Close, got %d", fake.TerminateCount)
	}
	p.Release(v)
	if fake.TerminateCount != 2 {
		t.Fatalf("Expected 2 terminates after release, got %d", fake.TerminateCount)
	}
	if fake.Live() != 0 {
		t.Fatalf("Expected no live sessions, got %d", fake.Live())
	}

	_, err = p.Acquire(context.Background())
	wantError(t, err, errors.OpPool, errors.KindClosed)
}

func TestPool_CloseWakesBlockedAcquire(t *testing.T) {
	fake := &enginetest.Fake{}
	p, err := NewPool("fi", 1, WithEngine(fake))
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}

	v, err := p.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	got := make(chan error, 1)
	go func() {
		_, err := p.Acquire(context.Background())
		got <- err
	}()

	time.Sleep(20 * time.Millisecond)
	p.Close()

	select {
	case err := <-got:
		wantError(t, err, errors.OpPool, errors.KindClosed)
	case <-time.After(time.Second):
		t.Fatal("Close did not wake the blocked Acquire")
	}
	p.Release(v)
}

func TestPool_ReleaseBeyondCapacityCloses(t *testing.T) {
	fake := &enginetest.Fake{}
	p, err := NewPool("fi", 1, WithEngine(fake))
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer p.Close()

	// The pool is full, so a foreign session cannot be adopted.
	stray := newSession(t, fake)
	p.Release(stray)

	_, err = stray.Spell("kissa")
	wantError(t, err, errors.OpSpell, errors.KindClosed)
}

func TestPool_Do(t *testing.T) {
	fake := &enginetest.Fake{}
	p, err := NewPool("fi", 1, WithEngine(fake))
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer p.Close()

	ran := false
	err = p.Do(context.Background(), func(v *Voikko) error {
		ran = true
		_, err := v.Spell("kissa")
		return err
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !ran {
		t.Fatal("Expected fn to run")
	}

	// The session went back to the pool even though fn could have
	// failed.
	failure := stderrors.New("boom")
	err = p.Do(context.Background(), func(*Voikko) error { return failure })
	if err != failure {
		t.Fatalf("Expected fn error back, got %v", err)
	}

	v, err := p.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire after Do: %v", err)
	}
	p.Release(v)
}
