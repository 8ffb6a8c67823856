package state

import (
	"fmt"
	"slices"
	"sync"

	"wine-explorer/models"
)

// MaxCompareSelection caps how many wines can be compared at once.
const MaxCompareSelection = 5

// CompareSelection is the set of wines picked for comparison, keyed by wine
// name. Two records sharing a name are indistinguishable here.
type CompareSelection struct {
	mu    sync.RWMutex
	names []string
}

func NewCompareSelection() *CompareSelection {
	return &CompareSelection{}
}

// Toggle adds name if absent or removes it if present. It reports whether
// name is selected afterwards.
func (c *CompareSelection) Toggle(name string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := slices.Index(c.names, name); i >= 0 {
		c.names = slices.Delete(c.names, i, i+1)
		return false, nil
	}
	if len(c.names) >= MaxCompareSelection {
		return false, fmt.Errorf("%w: at most %d wines", ErrSelectionFull, MaxCompareSelection)
	}
	c.names = append(c.names, name)
	return true, nil
}

func (c *CompareSelection) Contains(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Contains(c.names, name)
}

// Names returns the selection in the order it was made.
func (c *CompareSelection) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.names)
}

func (c *CompareSelection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.names)
}

func (c *CompareSelection) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names = nil
}

// Resolve returns the catalog records whose names are selected, in catalog
// order. Only the first record per name is returned.
func (c *CompareSelection) Resolve(catalog []models.Wine) []models.Wine {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Wine, 0, len(c.names))
	seen := make(map[string]struct{}, len(c.names))
	for _, w := range catalog {
		if _, dup := seen[w.WineName]; dup || !slices.Contains(c.names, w.WineName) {
			continue
		}
		seen[w.WineName] = struct{}{}
		out = append(out, w)
	}
	return out
}
