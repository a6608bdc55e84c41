package clients

import (
	"sync/atomic"
	"testing"
)

type stubSession struct {
	id     string
	reg    *Registry
	closed atomic.Bool
}

func (s *stubSession) ID() string { return s.id }

func (s *stubSession) Close() {
	if s.closed.CompareAndSwap(false, true) && s.reg != nil {
		s.reg.Remove(s.id)
	}
}

func TestRegistryAddRemove(t *testing.T) {
	reg := NewRegistry()
	a := &stubSession{id: "a"}
	b := &stubSession{id: "b"}

	reg.Add(a)
	reg.Add(b)
	if n := reg.Len(); n != 2 {
		t.Fatalf("Len = %d, want 2", n)
	}

	reg.Remove("a")
	if n := reg.Len(); n != 1 {
		t.Fatalf("Len after remove = %d, want 1", n)
	}
	reg.Remove("a") // removing twice is harmless
	if n := reg.Len(); n != 1 {
		t.Fatalf("Len after double remove = %d, want 1", n)
	}
}

func TestCloseAll(t *testing.T) {
	reg := NewRegistry()
	sessions := []*stubSession{
		{id: "a", reg: reg},
		{id: "b", reg: reg},
		{id: "c", reg: reg},
	}
	for _, s := range sessions {
		reg.Add(s)
	}

	// Close re-enters Remove; CloseAll must tolerate that.
	reg.CloseAll()

	for _, s := range sessions {
		if !s.closed.Load() {
			t.Errorf("session %s not closed", s.id)
		}
	}
	if n := reg.Len(); n != 0 {
		t.Errorf("Len after CloseAll = %d, want 0", n)
	}
}
