package convo

import "sync"

// MemoryStore keeps all conversation records in process memory. Nothing
// survives a restart; that is the intended default behavior.
type MemoryStore struct {
	mu             sync.Mutex
	records        map[string]*Record
	defaultPersona string
	maxTurns       int
}

func NewMemoryStore(defaultPersona string, maxPairs int) *MemoryStore {
	return &MemoryStore{
		records:        make(map[string]*Record),
		defaultPersona: defaultPersona,
		maxTurns:       maxPairs * 2,
	}
}

// record returns the live record for userID, creating the default one on
// first access. Callers must hold s.mu.
func (s *MemoryStore) record(userID string) *Record {
	rec, ok := s.records[userID]
	if !ok {
		rec = &Record{
			PersonaKey:       s.defaultPersona,
			History:          []Turn{},
			ActiveEngagement: true,
		}
		s.records[userID] = rec
	}
	return rec
}

func (s *MemoryStore) Get(userID string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(userID)
	// Copy the history slice so callers can't race with later appends
	out := *rec
	out.History = make([]Turn, len(rec.History))
	copy(out.History, rec.History)
	return out, nil
}

func (s *MemoryStore) SetPersona(userID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(userID)
	rec.PersonaKey = key
	rec.History = []Turn{}
	return nil
}

func (s *MemoryStore) ResetHistory(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(userID).History = []Turn{}
	return nil
}

func (s *MemoryStore) ToggleEngagement(userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(userID)
	rec.ActiveEngagement = !rec.ActiveEngagement
	return rec.ActiveEngagement, nil
}

func (s *MemoryStore) AppendExchange(userID string, userTurn, assistantTurn Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(userID)
	rec.History = append(rec.History, userTurn, assistantTurn)
	if len(rec.History) > s.maxTurns {
		rec.History = rec.History[len(rec.History)-s.maxTurns:]
	}
	return nil
}
