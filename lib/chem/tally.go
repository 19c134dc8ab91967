package chem

import (
	"errors"
	"fmt"
	"modchem-backend/lib/periodic"
)

var (
	ErrUnknownButton = errors.New("unknown button")
	ErrNegativeCount = errors.New("click count cannot be negative")
)

// Tally holds the click count of every button on the table. Duplicated
// elements (K and K1, ...) are counted separately.
//
// A Tally is not safe for concurrent use.
type Tally struct {
	counts map[string]int
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// TallyFrom builds a tally out of a set of counts keyed by button id.
func TallyFrom(counts map[string]int) (*Tally, error) {
	t := NewTally()
	for id, n := range counts {
		err := t.Set(id, n)
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Tally) Click(id string) error {
	if _, ok := periodic.Lookup(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownButton, id)
	}
	t.counts[id]++
	return nil
}

func (t *Tally) Set(id string, n int) error {
	if _, ok := periodic.Lookup(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownButton, id)
	}
	if n < 0 {
		return fmt.Errorf("%w: %s=%d", ErrNegativeCount, id, n)
	}
	if n == 0 {
		delete(t.counts, id)
		return nil
	}
	t.counts[id] = n
	return nil
}

// Reset zeroes every counter.
func (t *Tally) Reset() {
	clear(t.counts)
}

func (t *Tally) Count(id string) int {
	return t.counts[id]
}

// Total is the sum of every counter.
func (t *Tally) Total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Snapshot returns a copy of the non-zero counters.
func (t *Tally) Snapshot() map[string]int {
	out := make(map[string]int, len(t.counts))
	for id, n := range t.counts {
		out[id] = n
	}
	return out
}
