package resolve

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/semaphore"

	"github.com/lintrig/lintrig/src/rules"
)

// FileRules pairs a file path with the rule codes in force for it.
type FileRules struct {
	Path  string       `json:"path" yaml:"path"`
	Codes []rules.Code `json:"rules" yaml:"rules"`
}

// Batch resolves effective rules for many files concurrently. Results come
// back sorted by path regardless of worker scheduling.
func Batch(ctx context.Context, r *Resolver, paths []string) ([]FileRules, error) {
	weight := int64(runtime.NumCPU() * 2)
	sem := semaphore.NewWeighted(weight)
	out := make([]FileRules, len(paths))

	for i, p := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		go func(i int, p string) {
			defer sem.Release(1)
			out[i] = FileRules{Path: p, Codes: r.EffectiveRules(p)}
		}(i, p)
	}

	// Draining the semaphore waits for every worker.
	if err := sem.Acquire(ctx, weight); err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}
