// Package fontlist provides the ordered, observable font list rendered by the UI.
package fontlist

import (
	"image"
	"sort"

	"github.com/bnema/fontview/internal/application/port"
	"github.com/bnema/fontview/internal/domain/entity"
)

// Observer receives change notifications from a Store.
type Observer interface {
	RowInserted(pos int, rec entity.FontRecord)
	RowChanged(pos int, rec entity.FontRecord)
	Cleared()
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnInserted func(pos int, rec entity.FontRecord)
	OnChanged  func(pos int, rec entity.FontRecord)
	OnCleared  func()
}

func (f ObserverFuncs) RowInserted(pos int, rec entity.FontRecord) {
	if f.OnInserted != nil {
		f.OnInserted(pos, rec)
	}
}

func (f ObserverFuncs) RowChanged(pos int, rec entity.FontRecord) {
	if f.OnChanged != nil {
		f.OnChanged(pos, rec)
	}
}

func (f ObserverFuncs) Cleared() {
	if f.OnCleared != nil {
		f.OnCleared()
	}
}

type row struct {
	handle entity.RecordHandle
	rec    entity.FontRecord
}

type subscription struct {
	id       int
	observer Observer
}

// Store keeps font records sorted by collation key.
// It is owned by the UI goroutine and is not safe for concurrent use.
type Store struct {
	rows       []*row
	byHandle   map[entity.RecordHandle]*row
	byIdentity map[string]entity.RecordHandle
	nextHandle entity.RecordHandle

	observers []subscription
	nextSubID int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		byHandle:   make(map[entity.RecordHandle]*row),
		byIdentity: make(map[string]entity.RecordHandle),
	}
}

// Subscribe registers an observer and returns a function that removes it.
func (s *Store) Subscribe(o Observer) func() {
	s.nextSubID++
	id := s.nextSubID
	s.observers = append(s.observers, subscription{id: id, observer: o})

	return func() {
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Insert implements port.FontListStore.
// Records with equal sort keys keep their insertion order.
func (s *Store) Insert(rec entity.FontRecord) entity.RecordHandle {
	if h, ok := s.byIdentity[rec.Identity()]; ok {
		return h
	}

	s.nextHandle++
	r := &row{handle: s.nextHandle, rec: rec}

	pos := sort.Search(len(s.rows), func(i int) bool {
		return s.rows[i].rec.SortKey > rec.SortKey
	})
	s.rows = append(s.rows, nil)
	copy(s.rows[pos+1:], s.rows[pos:])
	s.rows[pos] = r

	s.byHandle[r.handle] = r
	s.byIdentity[rec.Identity()] = r.handle

	for _, sub := range s.observers {
		sub.observer.RowInserted(pos, rec)
	}
	return r.handle
}

// FindByIdentity implements port.FontListStore.
// The scan compares display names only, so when two files share a name the
// first row in display order wins.
func (s *Store) FindByIdentity(name string) (entity.RecordHandle, bool) {
	for _, r := range s.rows {
		if r.rec.Name == name {
			return r.handle, true
		}
	}
	return 0, false
}

// Lookup implements port.FontListStore.
func (s *Store) Lookup(h entity.RecordHandle) (entity.FontRecord, bool) {
	r, ok := s.byHandle[h]
	if !ok {
		return entity.FontRecord{}, false
	}
	return r.rec, true
}

// SetIcon implements port.FontListStore.
func (s *Store) SetIcon(h entity.RecordHandle, icon image.Image) bool {
	r, ok := s.byHandle[h]
	if !ok {
		return false
	}
	r.rec.Icon = icon
	r.rec.Preview = icon != nil

	pos := s.indexOf(r)
	for _, sub := range s.observers {
		sub.observer.RowChanged(pos, r.rec)
	}
	return true
}

// Clear implements port.FontListStore.
// Handles issued before Clear never resolve again.
func (s *Store) Clear() {
	s.rows = nil
	s.byHandle = make(map[entity.RecordHandle]*row)
	s.byIdentity = make(map[string]entity.RecordHandle)

	for _, sub := range s.observers {
		sub.observer.Cleared()
	}
}

// Len implements port.FontListStore.
func (s *Store) Len() int {
	return len(s.rows)
}

// At returns the handle and record at display position i.
func (s *Store) At(i int) (entity.RecordHandle, entity.FontRecord) {
	r := s.rows[i]
	return r.handle, r.rec
}

// Records implements port.FontListStore.
func (s *Store) Records() []entity.FontRecord {
	out := make([]entity.FontRecord, len(s.rows))
	for i, r := range s.rows {
		out[i] = r.rec
	}
	return out
}

// indexOf finds target by binary search on its sort key, then scans the run
// of rows sharing that key.
func (s *Store) indexOf(target *row) int {
	key := target.rec.SortKey
	i := sort.Search(len(s.rows), func(i int) bool {
		return s.rows[i].rec.SortKey >= key
	})
	for ; i < len(s.rows) && s.rows[i].rec.SortKey == key; i++ {
		if s.rows[i] == target {
			return i
		}
	}
	return -1
}

var _ port.FontListStore = (*Store)(nil)
