package store

import (
	"sort"
	"sync"
	"time"

	"wheel/internal/models"
)

// MemStore holds all collections in process memory. Ids are assigned from
// per-collection counters and are never reused within a process lifetime.
// Every exposed operation takes the mutex once, so each operation is atomic
// with respect to concurrent handlers.
type MemStore struct {
	mu    sync.RWMutex
	users map[int]models.User
	items map[int]models.WheelItem
	spins map[int]models.SpinHistory

	nextUserID int
	nextItemID int
	nextSpinID int
}

// NewMemStore creates an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		users:      make(map[int]models.User),
		items:      make(map[int]models.WheelItem),
		spins:      make(map[int]models.SpinHistory),
		nextUserID: 1,
		nextItemID: 1,
		nextSpinID: 1,
	}
}

// CreateItem inserts a new wheel item and returns the stored record.
func (s *MemStore) CreateItem(text, color string, order int) models.WheelItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.WheelItem{
		ID:    s.nextItemID,
		Text:  text,
		Color: color,
		Order: order,
	}
	s.nextItemID++
	s.items[item.ID] = item
	return item
}

// ListItems returns all items sorted ascending by Order. Ties are broken by
// insertion order (ascending id), so the sort must be stable.
func (s *MemStore) ListItems() []models.WheelItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.WheelItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	return items
}

// DeleteItem removes the item if present and reports whether a removal
// occurred. A missing id is not an error.
func (s *MemStore) DeleteItem(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

// ClearItems empties the item collection unconditionally.
func (s *MemStore) ClearItems() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[int]models.WheelItem)
	return true
}

// SeedDefaults inserts the four default items when the collection is empty.
// It reports how many items were inserted.
func (s *MemStore) SeedDefaults() int {
	defaults := []models.WheelItem{
		{Text: "PIZZA", Color: "#FF1493"},
		{Text: "BURGER", Color: "#00FFFF"},
		{Text: "SUSHI", Color: "#FFB000"},
		{Text: "TACOS", Color: "#00FF41"},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) > 0 {
		return 0
	}
	for i, d := range defaults {
		item := models.WheelItem{
			ID:    s.nextItemID,
			Text:  d.Text,
			Color: d.Color,
			Order: i,
		}
		s.nextItemID++
		s.items[item.ID] = item
	}
	return len(defaults)
}

// CreateSpinRecord appends a spin outcome to the history.
func (s *MemStore) CreateSpinRecord(result, spunAt string) models.SpinHistory {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := models.SpinHistory{
		ID:     s.nextSpinID,
		Result: result,
		SpunAt: spunAt,
	}
	s.nextSpinID++
	s.spins[rec.ID] = rec
	return rec
}

// ListSpinHistory returns all spin records, most recent first. SpunAt is
// compared as a parsed instant, not as a raw string, so mixed UTC offsets
// still order chronologically. Equal or unparseable timestamps fall back
// to id order so a later record still sorts first.
func (s *MemStore) ListSpinHistory() []models.SpinHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type timedRecord struct {
		rec models.SpinHistory
		at  time.Time
		ok  bool
	}
	history := make([]timedRecord, 0, len(s.spins))
	for _, rec := range s.spins {
		at, err := time.Parse(time.RFC3339, rec.SpunAt)
		history = append(history, timedRecord{rec: rec, at: at, ok: err == nil})
	}
	sort.Slice(history, func(i, j int) bool {
		if history[i].ok && history[j].ok && !history[i].at.Equal(history[j].at) {
			return history[i].at.After(history[j].at)
		}
		return history[i].rec.ID > history[j].rec.ID
	})

	out := make([]models.SpinHistory, len(history))
	for i, tr := range history {
		out[i] = tr.rec
	}
	return out
}

// GetSpinStats computes the derived stats projection from the history.
func (s *MemStore) GetSpinStats() models.SpinStats {
	history := s.ListSpinHistory()
	stats := models.SpinStats{TotalSpins: len(history)}
	if len(history) > 0 {
		stats.LastWinner = &history[0].Result
	}
	return stats
}

// CreateUser inserts a new user account.
func (s *MemStore) CreateUser(username, password string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:       s.nextUserID,
		Username: username,
		Password: password,
	}
	s.nextUserID++
	s.users[user.ID] = user
	return user
}

// GetUser looks a user up by id.
func (s *MemStore) GetUser(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	return user, ok
}

// GetUserByUsername looks a user up by username.
func (s *MemStore) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, true
		}
	}
	return models.User{}, false
}
