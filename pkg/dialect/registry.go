package dialect

import (
	"sort"
	"strings"
	"sync"
)

// Dialect registry
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Dialect)
	byExt      = make(map[string]*Dialect)
)

// Register registers a dialect in the global registry.
// Called by dialect definitions in their init() functions.
func Register(d *Dialect) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[strings.ToLower(d.ID)] = d
	for _, ext := range d.Extensions {
		byExt[strings.ToLower(ext)] = d
	}
}

// Get returns a dialect by identifier.
func Get(id string) (*Dialect, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[strings.ToLower(id)]
	return d, ok
}

// List returns all registered dialect identifiers (sorted).
func List() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	ids := make([]string, 0, len(dialects))
	for id := range dialects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// byExtension returns the dialect claiming the extension, or nil.
func byExtension(ext string) *Dialect {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	return byExt[ext]
}
