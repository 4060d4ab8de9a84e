package service

import "github.com/MKhiriev/go-key-keeper/models"

// KeyStore is the ordered set of keys by id, soft-deleted keys included.
// It is not safe for concurrent use; [State] serializes access to it. Every
// accessor hands out clones.
type KeyStore struct {
	keys  []models.Key
	index map[string]int
}

// NewKeyStore builds a store holding keys in the given order.
func NewKeyStore(keys []models.Key) *KeyStore {
	s := &KeyStore{
		keys:  make([]models.Key, 0, len(keys)),
		index: make(map[string]int, len(keys)),
	}
	for _, key := range keys {
		s.Put(key)
	}
	return s
}

// Get returns the key with id, deleted or not.
func (s *KeyStore) Get(id string) (models.Key, bool) {
	i, ok := s.index[id]
	if !ok {
		return models.Key{}, false
	}
	return s.keys[i].Clone(), true
}

// Put inserts key at the end or replaces the key with the same id in place.
func (s *KeyStore) Put(key models.Key) {
	key = key.Clone()
	if i, ok := s.index[key.ID]; ok {
		s.keys[i] = key
		return
	}
	s.index[key.ID] = len(s.keys)
	s.keys = append(s.keys, key)
}

// ActiveByCode returns the non-deleted key labelled code. Codes are compared
// exactly.
func (s *KeyStore) ActiveByCode(code string) (models.Key, bool) {
	for _, key := range s.keys {
		if key.IsActive() && key.VisibleCode == code {
			return key.Clone(), true
		}
	}
	return models.Key{}, false
}

// Active lists non-deleted keys in creation order.
func (s *KeyStore) Active() []models.Key {
	active := make([]models.Key, 0, len(s.keys))
	for _, key := range s.keys {
		if key.IsActive() {
			active = append(active, key.Clone())
		}
	}
	return active
}

// All lists every key in creation order.
func (s *KeyStore) All() []models.Key {
	all := make([]models.Key, len(s.keys))
	for i, key := range s.keys {
		all[i] = key.Clone()
	}
	return all
}

// Codes returns every visible code ever assigned to a stored key.
func (s *KeyStore) Codes() map[string]struct{} {
	codes := make(map[string]struct{}, len(s.keys))
	for _, key := range s.keys {
		codes[key.VisibleCode] = struct{}{}
	}
	return codes
}

func (s *KeyStore) Len() int {
	return len(s.keys)
}
