package kv

import "sync"

// MockClient is an in-memory Client for tests and for running without Redis.
type MockClient struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMockClient initializes an empty MockClient.
func NewMockClient() *MockClient {
	return &MockClient{data: make(map[string]string)}
}

// Set stores a key-value pair.
func (m *MockClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value; missing keys read as empty, like the Redis wrapper.
func (m *MockClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key], nil
}

// Del removes a key.
func (m *MockClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
