// Package models defines the domain types for list-posts.
package models

// Field is one "key: value" line from a post header.
type Field struct {
	Key   string
	Value string
}

// Post is the metadata extracted from a single post file.
type Post struct {
	Path   string
	Fields []Field
	// SortKey is the packed date; meaningful only when HasDate is set.
	SortKey int64
	HasDate bool
}

// Get returns the value of the first field named key.
func (p *Post) Get(key string) (string, bool) {
	for _, f := range p.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}
