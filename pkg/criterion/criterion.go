// Package criterion provides pluggable split-quality measures for
// decision-tree induction, with conditional entropy (ID3) as the
// default and Gini impurity and C4.5 gain ratio as alternatives.
package criterion

import (
	"sync"

	"github.com/cockroachdb/errors"

	"gainsel/pkg/frame"
)

// Criterion scores the label impurity remaining after splitting a frame
// on a feature. Lower is better for every registered criterion.
type Criterion interface {
	Name() string
	Impurity(f *frame.Frame, feature, label string) (float64, error)
}

type registry struct {
	mu       sync.RWMutex
	criteria map[string]Criterion
}

var defaultRegistry = &registry{
	criteria: make(map[string]Criterion),
}

// Register adds a criterion to the registry, replacing any previous
// criterion with the same name.
func Register(c Criterion) {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	defaultRegistry.criteria[c.Name()] = c
}

// Get returns the criterion registered under name.
func Get(name string) (Criterion, error) {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()
	if c, ok := defaultRegistry.criteria[name]; ok {
		return c, nil
	}
	return nil, errors.Newf("criterion %q not registered", name)
}

func init() {
	Register(Entropy{})
	Register(Gini{})
	Register(GainRatio{})
}
