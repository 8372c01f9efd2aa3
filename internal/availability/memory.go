package availability

import (
	"context"
	"hash/fnv"
	"sync"
)

// ======================================================
// STORE EM MEMÓRIA (LOCK STRIPING)
// ======================================================

// shardCount fixo: tabela indexada de células de lock, para que slots
// de datas diferentes quase nunca disputem o mesmo mutex.
const shardCount = 64

type memoryShard struct {
	mu      sync.Mutex
	claimed map[string]struct{}
}

type MemoryStore struct {
	shards [shardCount]memoryShard
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	for i := range s.shards {
		s.shards[i].claimed = make(map[string]struct{})
	}
	return s
}

func (s *MemoryStore) shardFor(key string) *memoryShard {
	h := fnv.New32a()
	h.Write([]byte(key))
	return &s.shards[h.Sum32()%shardCount]
}

func (s *MemoryStore) IsFree(_ context.Context, key string) (bool, error) {
	sh := s.shardFor(key)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	_, taken := sh.claimed[key]
	return !taken, nil
}

// TryClaim é um compare-and-set de Free para Claimed: adquire no máximo
// um recurso (o shard da chave), então nunca deadlocka.
func (s *MemoryStore) TryClaim(_ context.Context, key string) (bool, error) {
	sh := s.shardFor(key)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, taken := sh.claimed[key]; taken {
		return false, nil
	}

	sh.claimed[key] = struct{}{}
	return true, nil
}

func (s *MemoryStore) Release(_ context.Context, key string) error {
	sh := s.shardFor(key)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	delete(sh.claimed, key)
	return nil
}

var _ Store = (*MemoryStore)(nil)
