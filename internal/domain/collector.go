package domain

import (
	"sort"
	"sync"

	m "github.com/mouse-blink/cyclact/internal/model"
)

// Collector accumulates accepted signatures of a single run. It keeps one
// representative per equivalence class, the smallest one merged, and is safe
// for concurrent use by search workers.
type Collector struct {
	mu         sync.Mutex
	policy     m.RelabelPolicy
	index      map[string]int
	signatures []m.Signature
}

// NewCollector creates an empty Collector deduplicating under policy.
func NewCollector(policy m.RelabelPolicy) *Collector {
	return &Collector{
		policy: policy,
		index:  make(map[string]int),
	}
}

// Merge adds a batch of signatures and returns how many new equivalence
// classes it contained.
func (c *Collector) Merge(batch []m.Signature) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	added := 0

	for _, sig := range batch {
		sig.Points = sig.Points.Sorted()
		key := sig.Key(c.policy)

		if i, dup := c.index[key]; dup {
			if sig.Compare(c.signatures[i]) < 0 {
				c.signatures[i] = sig
			}

			continue
		}

		c.index[key] = len(c.signatures)
		c.signatures = append(c.signatures, sig)
		added++
	}

	return added
}

// Len returns the number of distinct signatures collected so far.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.signatures)
}

// Signatures returns the collected signatures ordered by group order, then
// point list, then quotient genus.
func (c *Collector) Signatures() []m.Signature {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]m.Signature, len(c.signatures))
	copy(out, c.signatures)

	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })

	return out
}
