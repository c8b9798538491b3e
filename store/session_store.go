package store

import (
	"sync"

	"github.com/yeremiapane/matcha-kasir-bot/models"
)

// SessionStore menyimpan sesi percakapan per user id. Update menjalankan fn
// sambil memegang lock per-user, sehingga dua event untuk user yang sama
// tidak pernah memutasi sesi secara bersamaan (transport Telegram bisa saja
// mengirim event tumpang tindih untuk satu chat).
type SessionStore interface {
	Get(uid int64) (models.Session, bool)
	Update(uid int64, fn func(*models.Session))
	Delete(uid int64)
}

type sessionSlot struct {
	mu      sync.Mutex
	session models.Session
}

type memorySessionStore struct {
	mu    sync.RWMutex
	slots map[int64]*sessionSlot
}

// NewSessionStore membuat session store in-memory. Sesi dibuat lazily pada
// Update pertama dan hilang saat proses berhenti.
func NewSessionStore() SessionStore {
	return &memorySessionStore{slots: make(map[int64]*sessionSlot)}
}

func (s *memorySessionStore) slot(uid int64) *sessionSlot {
	s.mu.RLock()
	slot, ok := s.slots[uid]
	s.mu.RUnlock()
	if ok {
		return slot
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if slot, ok = s.slots[uid]; ok {
		return slot
	}
	slot = &sessionSlot{session: models.NewSession(uid)}
	s.slots[uid] = slot
	return slot
}

func (s *memorySessionStore) Get(uid int64) (models.Session, bool) {
	s.mu.RLock()
	slot, ok := s.slots[uid]
	s.mu.RUnlock()
	if !ok {
		return models.Session{}, false
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()
	// Salin keranjang supaya pemanggil tidak memegang map yang hidup
	out := slot.session
	out.Cart = slot.session.Cart.Clone()
	return out, true
}

func (s *memorySessionStore) Update(uid int64, fn func(*models.Session)) {
	slot := s.slot(uid)
	slot.mu.Lock()
	defer slot.mu.Unlock()
	fn(&slot.session)
}

func (s *memorySessionStore) Delete(uid int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, uid)
}
