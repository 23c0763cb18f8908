// Package memory contains the in-process implementation of the persistence layer.
// All collections live behind a single Store guarded by one RWMutex, so id
// assignment and every check-then-insert sequence are atomic.
package memory

import (
	"cmp"
	"slices"
	"sync"

	"crowdmap/internal/domain/entity"
	"crowdmap/internal/domain/geo"
)

type favoriteKey struct {
	userID     int64
	locationID int64
}

// sequences holds the last id handed out per entity kind. Ids are never reused.
type sequences struct {
	user       int64
	location   int64
	crowdLevel int64
	checkIn    int64
	review     int64
	favorite   int64
}

// Store owns every entity record for the lifetime of the process.
type Store struct {
	mu  sync.RWMutex
	seq sequences

	users     map[int64]*entity.User
	usernames map[string]int64

	locations map[int64]*entity.Location
	placeIDs  map[string][]int64
	grid      *gridIndex

	crowdLevels       map[int64]*entity.CrowdLevel
	samplesByLocation map[int64][]int64

	checkIns map[int64]*entity.CheckIn
	reviews  map[int64]*entity.Review

	favorites     map[int64]*entity.Favorite
	favoritePairs map[favoriteKey]int64
}

// Option configures a Store.
type Option func(*Store)

// WithGridCellSize sets the spatial index cell size in degrees.
// Sizing cells to the dedup tolerance keeps a resolve lookup within a 3x3 block.
func WithGridCellSize(degrees float64) Option {
	return func(s *Store) {
		if degrees > 0 {
			s.grid = newGridIndex(degrees)
		}
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		users:             make(map[int64]*entity.User),
		usernames:         make(map[string]int64),
		locations:         make(map[int64]*entity.Location),
		placeIDs:          make(map[string][]int64),
		grid:              newGridIndex(geo.DefaultTolerance),
		crowdLevels:       make(map[int64]*entity.CrowdLevel),
		samplesByLocation: make(map[int64][]int64),
		checkIns:          make(map[int64]*entity.CheckIn),
		reviews:           make(map[int64]*entity.Review),
		favorites:         make(map[int64]*entity.Favorite),
		favoritePairs:     make(map[favoriteKey]int64),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// txState journals the inverse of every write made inside a transaction.
type txState struct {
	undo []func()
}

func (t *txState) record(fn func()) {
	if t != nil {
		t.undo = append(t.undo, fn)
	}
}

func (t *txState) rollback() {
	for _, fn := range slices.Backward(t.undo) {
		fn()
	}
	t.undo = nil
}

// scope is embedded by every repository. A nil tx means the repository takes
// the store lock itself; otherwise the enclosing transaction already holds it.
type scope struct {
	store *Store
	tx    *txState
}

func (sc scope) rlock() func() {
	if sc.tx != nil {
		return func() {}
	}
	sc.store.mu.RLock()

	return sc.store.mu.RUnlock
}

func (sc scope) lock() func() {
	if sc.tx != nil {
		return func() {}
	}
	sc.store.mu.Lock()

	return sc.store.mu.Unlock
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	c.DisplayName = cloneString(u.DisplayName)
	c.Initials = cloneString(u.Initials)

	return &c
}

func cloneLocation(l *entity.Location) *entity.Location {
	c := *l
	c.Description = cloneString(l.Description)
	c.ImageURL = cloneString(l.ImageURL)
	c.Distance = cloneFloat(l.Distance)
	c.PlaceID = cloneString(l.PlaceID)

	return &c
}

func cloneCrowdLevel(cl *entity.CrowdLevel) *entity.CrowdLevel {
	c := *cl
	c.WaitTime = cloneInt(cl.WaitTime)

	return &c
}

func sortByID[T any](items []T, id func(T) int64) []T {
	slices.SortFunc(items, func(a, b T) int {
		return cmp.Compare(id(a), id(b))
	})

	return items
}
