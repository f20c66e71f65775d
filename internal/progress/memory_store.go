package progress

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ Store = (*MemoryStore)(nil)

type dayKey struct {
	userID uuid.UUID
	day    time.Time
}

// MemoryStore is a Store kept in process memory. Used for local development
// without postgres and in tests; it enforces the same (user, day) uniqueness
// and atomic counter updates as the postgres repo.
type MemoryStore struct {
	mutex   sync.Mutex
	lastID  int
	records map[int]*Record
	byDay   map[dayKey]int
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[int]*Record),
		byDay:   make(map[dayKey]int),
		now:     time.Now,
	}
}

func (s *MemoryStore) FindByDay(_ context.Context, userID uuid.UUID, day time.Time) (*Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	id, ok := s.byDay[dayKey{userID: userID, day: day}]
	if !ok {
		return nil, ErrRecordNotFound
	}
	rec := *s.records[id]
	return &rec, nil
}

func (s *MemoryStore) FindLatestBefore(_ context.Context, userID uuid.UUID, day time.Time) (*Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var latest *Record
	for _, rec := range s.records {
		if rec.UserID != userID || !rec.Day.Before(day) {
			continue
		}
		if latest == nil || rec.Day.After(latest.Day) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, ErrRecordNotFound
	}
	rec := *latest
	return &rec, nil
}

func (s *MemoryStore) Insert(_ context.Context, record Record) (*Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	key := dayKey{userID: record.UserID, day: record.Day}
	if _, taken := s.byDay[key]; taken {
		return nil, ErrDayTaken
	}

	s.lastID++
	now := s.now()
	record.ID = s.lastID
	record.CreatedAt = now
	record.UpdatedAt = now

	stored := record
	s.records[record.ID] = &stored
	s.byDay[key] = record.ID

	return &record, nil
}

func (s *MemoryStore) update(id int, apply func(rec *Record)) (*Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	apply(rec)
	rec.UpdatedAt = s.now()

	updated := *rec
	return &updated, nil
}

func (s *MemoryStore) AddVolume(_ context.Context, id int, delta float64) (*Record, error) {
	return s.update(id, func(rec *Record) {
		rec.TrainingVolume += delta
	})
}

func (s *MemoryStore) AddWater(_ context.Context, id int, deltaMl int) (*Record, error) {
	return s.update(id, func(rec *Record) {
		switch {
		case deltaMl > 0 && rec.WaterMl > math.MaxInt-deltaMl:
			rec.WaterMl = math.MaxInt
		default:
			rec.WaterMl = max(0, rec.WaterMl+deltaMl)
		}
	})
}

func (s *MemoryStore) SetBodyWeight(_ context.Context, id int, weight float64) (*Record, error) {
	return s.update(id, func(rec *Record) {
		rec.BodyWeight = weight
	})
}

func (s *MemoryStore) userRecords(userID uuid.UUID) []Record {
	var records []Record
	for _, rec := range s.records {
		if rec.UserID == userID {
			records = append(records, *rec)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Day.After(records[j].Day)
	})
	return records
}

func (s *MemoryStore) List(_ context.Context, userID uuid.UUID, page, size int) ([]Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	records := s.userRecords(userID)
	from := (page - 1) * size
	if from < 0 || from >= len(records) {
		return []Record{}, nil
	}
	to := min(from+size, len(records))
	return records[from:to], nil
}

func (s *MemoryStore) Count(_ context.Context, userID uuid.UUID) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return len(s.userRecords(userID)), nil
}

func (s *MemoryStore) Delete(_ context.Context, userID uuid.UUID, id int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	rec, ok := s.records[id]
	if !ok || rec.UserID != userID {
		return ErrRecordNotFound
	}
	delete(s.byDay, dayKey{userID: rec.UserID, day: rec.Day})
	delete(s.records, id)
	return nil
}

// Seed stores a record as is, overwriting the one for the same user and day.
// Meant for tests and local fixtures.
func (s *MemoryStore) Seed(record Record) *Record {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	key := dayKey{userID: record.UserID, day: record.Day}
	if oldID, ok := s.byDay[key]; ok {
		delete(s.records, oldID)
	}

	s.lastID++
	record.ID = s.lastID
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now()
	}
	record.UpdatedAt = record.CreatedAt

	stored := record
	s.records[record.ID] = &stored
	s.byDay[key] = record.ID
	return &record
}

// CountDay returns how many records the user has for the given day.
func (s *MemoryStore) CountDay(userID uuid.UUID, day time.Time) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	count := 0
	for _, rec := range s.records {
		if rec.UserID == userID && rec.Day.Equal(day) {
			count++
		}
	}
	return count
}
