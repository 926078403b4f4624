package sequence

import (
	"fmt"
	"sort"
	"sync"
)

// A Selector identifies a sequence held in a Store, by name, by
// insertion index, or by default (the first loaded sequence). The zero
// value selects the first loaded sequence.
type Selector struct {
	name    string
	index   int
	byName  bool
	byIndex bool
}

// ByName selects the sequence loaded under name.
func ByName(name string) Selector {
	return Selector{name: name, byName: true}
}

// ByIndex selects the sequence at insertion position i.
func ByIndex(i int) Selector {
	return Selector{index: i, byIndex: true}
}

// First selects the first loaded sequence.
func First() Selector {
	return Selector{}
}

// A Store holds an ordered collection of named sequences. A Store can
// be used simultaneously from multiple goroutines; reads return copies,
// so callers never share mutable state with the store.
type Store struct {
	mu     sync.RWMutex
	seqs   []*Sequence
	byName map[string]int
}

// NewStore creates and initializes a new Store.
func NewStore() *Store {
	return &Store{byName: make(map[string]int)}
}

// Load adds a sequence to the store under name, replacing any sequence
// already loaded under that name. The values are validated eagerly;
// ErrNonNumeric is returned and the store is left unchanged if any
// element is not a finite real number. An empty name is allowed for
// single-sequence use; such sequences are reachable by index or by the
// default selector.
func (st *Store) Load(name string, values []float64) error {
	seq, err := New(values)
	if err != nil {
		return err
	}
	seq.Name = name

	st.mu.Lock()
	defer st.mu.Unlock()
	if name != "" {
		if i, ok := st.byName[name]; ok {
			st.seqs[i] = seq
			return nil
		}
		st.byName[name] = len(st.seqs)
	}
	st.seqs = append(st.seqs, seq)
	return nil
}

// LoadMap loads multiple named sequences at once. Names are inserted in
// sorted order so that insertion indices are deterministic. Validation
// happens before any sequence is added; on error the store is left
// unchanged.
func (st *Store) LoadMap(data map[string][]float64) error {
	names := make([]string, 0, len(data))
	for name := range data {
		if err := Validate(data[name]); err != nil {
			return fmt.Errorf("sequence %q: %w", name, err)
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := st.Load(name, data[name]); err != nil {
			return err
		}
	}
	return nil
}

// Read returns a copy of the sequence identified by sel. ErrNoData is
// returned if nothing matches.
func (st *Store) Read(sel Selector) (*Sequence, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	i, err := st.locate(sel)
	if err != nil {
		return nil, err
	}
	return st.seqs[i].Copy(), nil
}

// Append adds values to the end of the sequence identified by sel.
func (st *Store) Append(sel Selector, values ...float64) error {
	if err := Validate(values); err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	i, err := st.locate(sel)
	if err != nil {
		return err
	}
	return st.seqs[i].Append(values...)
}

// Clear removes the sequence identified by sel from the store.
func (st *Store) Clear(sel Selector) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	i, err := st.locate(sel)
	if err != nil {
		return err
	}
	st.seqs = append(st.seqs[:i], st.seqs[i+1:]...)
	st.byName = make(map[string]int, len(st.seqs))
	for j, seq := range st.seqs {
		if seq.Name != "" {
			st.byName[seq.Name] = j
		}
	}
	return nil
}

// ClearAll removes every sequence from the store.
func (st *Store) ClearAll() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.seqs = nil
	st.byName = make(map[string]int)
}

// Len returns the number of sequences held in the store.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.seqs)
}

// Names returns the names of the loaded sequences in insertion order.
// Unnamed sequences contribute an empty string.
func (st *Store) Names() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	names := make([]string, len(st.seqs))
	for i, seq := range st.seqs {
		names[i] = seq.Name
	}
	return names
}

// locate resolves sel to an index. Callers must hold the lock.
func (st *Store) locate(sel Selector) (int, error) {
	switch {
	case sel.byName:
		i, ok := st.byName[sel.name]
		if !ok {
			return 0, fmt.Errorf("no sequence named %q: %w", sel.name, ErrNoData)
		}
		return i, nil
	case sel.byIndex:
		if sel.index < 0 || sel.index >= len(st.seqs) {
			return 0, fmt.Errorf("no sequence at index %d: %w", sel.index, ErrNoData)
		}
		return sel.index, nil
	default:
		if len(st.seqs) == 0 {
			return 0, fmt.Errorf("store is empty: %w", ErrNoData)
		}
		return 0, nil
	}
}
