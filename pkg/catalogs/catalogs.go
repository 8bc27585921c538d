// Package catalogs provides the external package catalog used as the match
// universe for candidate selection.
//
// A catalog is an explicit, caller-owned, immutable snapshot of the
// (source name, version) pairs known to a distribution at fetch time. The
// orchestrator fetches it once, builds a Reader, and shares it across any
// number of concurrent selections; nothing in this package mutates a
// catalog after construction.
package catalogs

import "sort"

// Entry is one catalog record: an external source package name and one of
// its published version strings.
type Entry struct {
	SourceName string `json:"source_name" yaml:"source_name"`
	Version    string `json:"version" yaml:"version"`
}

// Reader is a read-only view over a catalog snapshot.
type Reader interface {
	// Names returns the distinct source names, sorted.
	Names() []string
	// VersionsOf returns the version strings published under name, in
	// catalog order. Nil when the name is unknown.
	VersionsOf(name string) []string
	// List returns all entries in catalog order.
	List() []Entry
	// Len returns the number of entries.
	Len() int
}

// catalog is the in-memory Reader implementation.
type catalog struct {
	entries []Entry
	byName  map[string][]string
	names   []string
}

// New builds an immutable catalog snapshot from entries. The input slice
// is copied; later mutation of it does not affect the catalog.
func New(entries []Entry) Reader {
	c := &catalog{
		entries: make([]Entry, len(entries)),
		byName:  make(map[string][]string),
	}
	copy(c.entries, entries)

	for _, e := range c.entries {
		if _, seen := c.byName[e.SourceName]; !seen {
			c.names = append(c.names, e.SourceName)
		}
		c.byName[e.SourceName] = append(c.byName[e.SourceName], e.Version)
	}
	sort.Strings(c.names)

	return c
}

// Names returns the distinct source names, sorted.
func (c *catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// VersionsOf returns the version strings published under name.
func (c *catalog) VersionsOf(name string) []string {
	versions, ok := c.byName[name]
	if !ok {
		return nil
	}
	out := make([]string, len(versions))
	copy(out, versions)
	return out
}

// List returns all entries in catalog order.
func (c *catalog) List() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *catalog) Len() int {
	return len(c.entries)
}
