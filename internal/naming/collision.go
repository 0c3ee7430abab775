package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// CollisionResolver tracks which source claimed each rename target in a
// batch and moves later claimants to "<stem>.N<ext>" variants. All methods
// are goroutine-safe.
type CollisionResolver struct {
	mu       sync.Mutex
	owners   map[string]string // target path -> source path that claimed it
	counters map[string]int    // requested target -> next suffix to try
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{
		owners:   make(map[string]string),
		counters: make(map[string]int),
	}
}

// Claim records source as the owner of its own path, so no other file in the
// batch can be renamed onto a file that is staying put.
func (cr *CollisionResolver) Claim(source string) {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	if _, taken := cr.owners[source]; !taken {
		cr.owners[source] = source
	}
}

// Resolve returns the final target for source. The requested target is
// returned unchanged when it is free or already owned by source.
func (cr *CollisionResolver) Resolve(source, target string) string {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if owner, taken := cr.owners[target]; !taken || owner == source {
		cr.owners[target] = source
		return target
	}

	dir := filepath.Dir(target)
	base := filepath.Base(target)
	stem, ext := splitExt(base)

	n := cr.counters[target]
	if n == 0 {
		n = 2
	}
	for ; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s.%d%s", strings.TrimRight(stem, ". "), n, ext))
		if owner, taken := cr.owners[candidate]; !taken || owner == source {
			cr.counters[target] = n + 1
			cr.owners[candidate] = source
			return candidate
		}
	}
}
