// Package session isolates client-supplied session identifiers across
// stdio connections before they are forwarded to upstream category
// servers. Two different clients that happen to pick the same session id
// must never collide on the same upstream session.
package session

import (
	"hash/fnv"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const shardCount = 16

type sessionKey struct {
	connectionID     string
	clientSessionID  string
}

type shard struct {
	mu   sync.RWMutex
	data map[sessionKey]string
}

// Mapper maps (connection_id, client_session_id) pairs to a server-side
// UUID, isolating sessions between stdio connections proxied to the same
// upstream HTTP server. It is safe for concurrent use.
type Mapper struct {
	shards [shardCount]*shard
}

// NewMapper returns an empty, ready-to-use Mapper.
func NewMapper() *Mapper {
	m := &Mapper{}
	for i := range m.shards {
		m.shards[i] = &shard{data: make(map[sessionKey]string)}
	}
	return m
}

func (m *Mapper) shardFor(key sessionKey) *shard {
	h := fnv.New32a()
	h.Write([]byte(key.connectionID))
	h.Write([]byte{0})
	h.Write([]byte(key.clientSessionID))
	return m.shards[h.Sum32()%shardCount]
}

// Map returns the server session id for a (connectionID, clientSessionID)
// pair, generating and storing a fresh UUID v4 the first time the pair is
// seen. Subsequent calls with the same pair return the same id.
func (m *Mapper) Map(connectionID, clientSessionID string) string {
	key := sessionKey{connectionID, clientSessionID}
	sh := m.shardFor(key)

	sh.mu.RLock()
	if existing, ok := sh.data[key]; ok {
		sh.mu.RUnlock()
		return existing
	}
	sh.mu.RUnlock()

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if existing, ok := sh.data[key]; ok {
		return existing
	}
	serverSessionID := uuid.NewString()
	sh.data[key] = serverSessionID
	log.Debug().
		Str("connection_id", connectionID).
		Str("client_session_id", clientSessionID).
		Str("server_session_id", serverSessionID).
		Msg("mapped session")
	return serverSessionID
}

// Lookup returns the server session id for a pair without creating one.
func (m *Mapper) Lookup(connectionID, clientSessionID string) (string, bool) {
	key := sessionKey{connectionID, clientSessionID}
	sh := m.shardFor(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	serverSessionID, ok := sh.data[key]
	return serverSessionID, ok
}

// Cleanup removes every mapping belonging to connectionID and returns how
// many were removed. Call it once a stdio connection closes.
func (m *Mapper) Cleanup(connectionID string) int {
	cleaned := 0
	for _, sh := range m.shards {
		sh.mu.Lock()
		for key := range sh.data {
			if key.connectionID == connectionID {
				delete(sh.data, key)
				cleaned++
			}
		}
		sh.mu.Unlock()
	}
	if cleaned > 0 {
		log.Info().
			Str("connection_id", connectionID).
			Int("count", cleaned).
			Msg("cleaned up session mappings")
	}
	return cleaned
}

// Len returns the total number of active mappings across all shards.
func (m *Mapper) Len() int {
	total := 0
	for _, sh := range m.shards {
		sh.mu.RLock()
		total += len(sh.data)
		sh.mu.RUnlock()
	}
	return total
}

// Empty reports whether there are no active mappings.
func (m *Mapper) Empty() bool {
	return m.Len() == 0
}
