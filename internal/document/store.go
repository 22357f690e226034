package document

import "sync"

// Document is a live, editable text buffer. The host mutates it on every
// user edit, concurrently with annotation passes reading it, so all access
// goes through the lock. Annotation passes work on a Snapshot and only come
// back to the live document to re-check its current length.
type Document struct {
	uri string

	mu      sync.RWMutex
	content string
	version int
	lines   []int
}

// NewDocument creates a live document with initial content.
func NewDocument(uri, content string, version int) *Document {
	return &Document{
		uri:     uri,
		content: content,
		version: version,
		lines:   computeLineOffsets(content),
	}
}

// URI returns the document's URI.
func (d *Document) URI() string { return d.uri }

// Update replaces the document's content, recomputing the line table.
func (d *Document) Update(content string, version int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.content = content
	d.version = version
	d.lines = computeLineOffsets(content)
}

// Len returns the current content length in bytes. This is the bound
// stale-range validation checks mapped offsets against.
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.content)
}

// Version returns the current document version.
func (d *Document) Version() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.version
}

// Text returns the current content.
func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.content
}

// Snapshot captures the current content and line table as an immutable view.
func (d *Document) Snapshot() *Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return &Snapshot{
		uri:     d.uri,
		text:    d.content,
		version: d.version,
		lines:   d.lines,
	}
}

// Store manages the open documents by URI.
type Store struct {
	mu        sync.RWMutex
	documents map[string]*Document
}

// NewStore creates an empty document store.
func NewStore() *Store {
	return &Store{documents: make(map[string]*Document)}
}

// Open adds or replaces a document in the store.
func (s *Store) Open(uri, content string, version int) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := NewDocument(uri, content, version)
	s.documents[uri] = doc
	return doc
}

// Get retrieves a document by URI, nil if not open.
func (s *Store) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documents[uri]
}

// Update modifies an open document's content. Reports whether the document
// was open.
func (s *Store) Update(uri, content string, version int) bool {
	s.mu.RLock()
	doc := s.documents[uri]
	s.mu.RUnlock()
	if doc == nil {
		return false
	}
	doc.Update(content, version)
	return true
}

// Close removes a document from the store.
func (s *Store) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, uri)
}

// List returns all open document URIs.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	uris := make([]string, 0, len(s.documents))
	for uri := range s.documents {
		uris = append(uris, uri)
	}
	return uris
}
