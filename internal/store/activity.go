package store

import "time"

// activityLimit — сколько последних действий храним в памяти.
const activityLimit = 500

// ActivityEntry — одна запись журнала действий.
type ActivityEntry struct {
	At       time.Time
	Username string
	Entity   string // "equipment", "user", "import"
	EntityID int64
	Action   string // "create", "update", "delete" и т.п.
	Details  string
}

// LogActivity добавляет запись в журнал действий.
func (s *Store) LogActivity(username, entity string, entityID int64, action, details string) {
	entry := ActivityEntry{
		At:       time.Now().UTC(),
		Username: username,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity = append(s.activity, entry)
	if len(s.activity) > activityLimit {
		s.activity = s.activity[len(s.activity)-activityLimit:]
	}
}

// Activity возвращает записи журнала, новые первыми.
func (s *Store) Activity() []ActivityEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ActivityEntry, len(s.activity))
	for i, e := range s.activity {
		out[len(s.activity)-1-i] = e
	}
	return out
}
