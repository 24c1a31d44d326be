package repository

import (
	"context"
	"sync"
)

// MemoryKVStore はメモリ上のキー・バリューストア。
// テストおよび永続化を必要としない組み込みホスト用の代替実装。
type MemoryKVStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryKVStore はMemoryKVStoreを生成する。
func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{entries: make(map[string]string)}
}

// Get は指定キーの値を取得する。キーが存在しない場合は ok=false を返す。
func (s *MemoryKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[key]
	return value, ok, nil
}

// Set は指定キーに値を書き込む。既存キーは上書きされる。
func (s *MemoryKVStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

// Delete は指定キーを削除する。存在しないキーに対しても成功する。
func (s *MemoryKVStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Keys は保存中の全キーを返す。テストでのキー存在検証用。
func (s *MemoryKVStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}

// compile-time interface check
var _ KVStore = (*MemoryKVStore)(nil)
