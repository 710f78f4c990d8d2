package session

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestMapperNewMappingIsIdempotent(t *testing.T) {
	m := NewMapper()
	connID := "conn-1"
	clientSession := "session-abc"

	first := m.Map(connID, clientSession)
	second := m.Map(connID, clientSession)

	if first != second {
		t.Fatalf("expected same server session id across calls, got %q then %q", first, second)
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("expected a valid UUID, got %q: %v", first, err)
	}
}

func TestMapperDifferentConnectionsDoNotCollide(t *testing.T) {
	m := NewMapper()
	clientSession := "session-xyz"

	a := m.Map("conn-1", clientSession)
	b := m.Map("conn-2", clientSession)

	if a == b {
		t.Fatalf("expected distinct server session ids for distinct connections sharing a client session id, got %q for both", a)
	}
}

func TestMapperLookupBeforeAndAfterMap(t *testing.T) {
	m := NewMapper()
	connID := "conn-1"
	clientSession := "session-def"

	if _, ok := m.Lookup(connID, clientSession); ok {
		t.Fatal("expected no mapping before Map is called")
	}

	serverSession := m.Map(connID, clientSession)

	got, ok := m.Lookup(connID, clientSession)
	if !ok {
		t.Fatal("expected a mapping after Map")
	}
	if got != serverSession {
		t.Fatalf("Lookup returned %q, want %q", got, serverSession)
	}
}

func TestMapperCleanupRemovesOnlyItsConnection(t *testing.T) {
	m := NewMapper()
	m.Map("conn-1", "session-a")
	m.Map("conn-1", "session-b")
	m.Map("conn-2", "session-c")

	if got := m.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	cleaned := m.Cleanup("conn-1")
	if cleaned != 2 {
		t.Fatalf("Cleanup returned %d, want 2", cleaned)
	}
	if got := m.Len(); got != 1 {
		t.Fatalf("Len() after cleanup = %d, want 1", got)
	}

	if _, ok := m.Lookup("conn-2", "session-c"); !ok {
		t.Fatal("expected conn-2's mapping to survive conn-1's cleanup")
	}
	if _, ok := m.Lookup("conn-1", "session-a"); ok {
		t.Fatal("expected conn-1's mapping to be gone after cleanup")
	}
	if _, ok := m.Lookup("conn-1", "session-b"); ok {
		t.Fatal("expected conn-1's mapping to be gone after cleanup")
	}
}

func TestMapperEmpty(t *testing.T) {
	m := NewMapper()
	if !m.Empty() {
		t.Fatal("expected a fresh mapper to be empty")
	}

	m.Map("conn-1", "session-1")
	if m.Empty() {
		t.Fatal("expected mapper to be non-empty after Map")
	}

	m.Cleanup("conn-1")
	if !m.Empty() {
		t.Fatal("expected mapper to be empty after cleanup")
	}
}

func TestMapperConcurrentAccess(t *testing.T) {
	m := NewMapper()
	const goroutines = 64
	const iterations = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer wg.Done()
			connID := "conn"
			for i := 0; i < iterations; i++ {
				clientSession := "session"
				m.Map(connID, clientSession)
				m.Lookup(connID, clientSession)
			}
		}(g)
	}
	wg.Wait()

	// All goroutines shared one (connID, clientSession) pair, so exactly
	// one mapping should have been created regardless of interleaving.
	if got := m.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1 after concurrent Map on a shared key", got)
	}
}
