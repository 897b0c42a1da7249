package oidc

import "errors"

// errStoreFailed is returned by the mock store when failure mode is on.
var errStoreFailed = errors.New("store failed")

// mockStore is an in-memory implementation of the Store interface.
type mockStore struct {
	values map[string]string

	// Failure switches for the individual operations.
	failSet    bool
	failRemove bool
	failClear  bool
}

func newMockStore() *mockStore {
	return &mockStore{values: map[string]string{}}
}

func (m *mockStore) Set(key, value string) error {
	if m.failSet {
		return errStoreFailed
	}
	m.values[key] = value
	return nil
}

func (m *mockStore) Get(key string) (string, bool) {
	value, found := m.values[key]
	return value, found
}

func (m *mockStore) Remove(key string) error {
	if m.failRemove {
		return errStoreFailed
	}
	delete(m.values, key)
	return nil
}

func (m *mockStore) Clear() error {
	if m.failClear {
		return errStoreFailed
	}
	m.values = map[string]string{}
	return nil
}
