package session

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
)

func TestStartAssignsID(t *testing.T) {
	a := Start()
	b := Start()
	defer a.Close()
	defer b.Close()

	if _, err := uuid.Parse(a.ID()); err != nil {
		t.Errorf("ID() = %q is not a uuid: %v", a.ID(), err)
	}
	if a.ID() == b.ID() {
		t.Error("two sessions share an id")
	}
}

func TestMarkOnce(t *testing.T) {
	f := Start()
	defer f.Close()

	if !f.MarkOnce("hasShownReminder") {
		t.Fatal("first MarkOnce should set the flag")
	}
	if f.MarkOnce("hasShownReminder") {
		t.Error("second MarkOnce should report the flag as already set")
	}
	if !f.MarkOnce("other") {
		t.Error("flags leak between keys")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	a := Start()
	b := Start()
	defer a.Close()
	defer b.Close()

	a.MarkOnce("hasShownReminder")
	if !b.MarkOnce("hasShownReminder") {
		t.Error("flag leaked into another session")
	}
}

func TestMarkOnceConcurrent(t *testing.T) {
	f := Start()
	defer f.Close()

	var winners int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if f.MarkOnce("hasShownReminder") {
				atomic.AddInt32(&winners, 1)
			}
		}()
	}
	wg.Wait()

	if winners != 1 {
		t.Errorf("MarkOnce won %d times, want 1", winners)
	}
}

func TestClose(t *testing.T) {
	f := Start()
	f.MarkOnce("hasShownReminder")
	f.Close()
	f.Close()

	if f.MarkOnce("hasShownReminder") {
		t.Error("MarkOnce should be a no-op after Close")
	}
}
