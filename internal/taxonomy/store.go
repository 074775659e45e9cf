package taxonomy

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// Snapshot is the store's current taxonomy plus the generation it belongs
// to. Generations are monotonic and bump on every successful Load or Save,
// so callers can key caches on them and discard stale fetch results.
type Snapshot struct {
	Taxonomy   Taxonomy
	Generation uint64
}

// Store holds the single process-wide taxonomy, persisted as a YAML file
// under the data dir. Listener callbacks registered via Subscribe fire
// after every successful save; they carry no payload, subscribers re-pull
// whatever they depend on.
type Store struct {
	path string

	mu        sync.Mutex
	cur       Taxonomy
	gen       uint64
	listeners map[int]func()
	nextID    int
}

func NewStore(path string) *Store {
	return &Store{
		path:      path,
		cur:       DefaultSeed(),
		gen:       1,
		listeners: make(map[int]func()),
	}
}

// Load reads the persisted taxonomy. A missing or unreadable file is not
// fatal: classification keeps running against the hardcoded seed.
func (s *Store) Load() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		log.Printf("level=warn msg=\"taxonomy load failed, using seed\" path=%s err=%v", s.path, err)
		return err
	}

	var t Taxonomy
	if err := yaml.Unmarshal(b, &t); err != nil {
		log.Printf("level=warn msg=\"taxonomy parse failed, using seed\" path=%s err=%v", s.path, err)
		return err
	}
	if len(t.DomesticKeywords) == 0 && len(t.OverseasKeywords) == 0 && len(t.GlobalKeywords) == 0 {
		log.Printf("level=warn msg=\"taxonomy file empty, using seed\" path=%s", s.path)
		return fmt.Errorf("taxonomy file %s has no keyword lists", s.path)
	}

	s.mu.Lock()
	s.cur = t
	s.gen++
	s.mu.Unlock()
	return nil
}

// Save validates, persists atomically, swaps the in-memory taxonomy, and
// notifies subscribers. On failure the in-memory state is left alone; the
// admin retries.
func (s *Store) Save(t Taxonomy) error {
	if vr := Validate(t); !vr.OK() {
		return fmt.Errorf("taxonomy rejected: %v", vr.Errors)
	}

	if err := s.writeAtomic(t); err != nil {
		return err
	}

	s.mu.Lock()
	s.cur = t.Clone()
	s.gen++
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return nil
}

// writeAtomic writes tmp, keeps the previous file as .bak, and renames,
// under a file lock so two engine processes sharing a data dir cannot
// interleave. Two admin sessions racing through here are still
// last-write-wins.
func (s *Store) writeAtomic(t Taxonomy) error {
	b, err := yaml.Marshal(&t)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	lk := flock.New(s.path + ".lock")
	if err := lk.Lock(); err != nil {
		return fmt.Errorf("lock taxonomy file: %w", err)
	}
	defer func() { _ = lk.Unlock() }()

	tmp := s.path + ".tmp"
	bak := s.path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	_ = os.Remove(bak)
	_ = os.Rename(s.path, bak)
	return os.Rename(tmp, s.path)
}

// Snapshot returns the current taxonomy (deep copy) and its generation.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Taxonomy: s.cur.Clone(), Generation: s.gen}
}

// Subscribe registers fn to run after every successful save. The returned
// func unsubscribes; it is safe to call more than once.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
