// Package document provides the host editor's text-buffer model: live,
// concurrently edited documents and the immutable snapshots an annotation
// pass runs against.
package document

// Snapshot is a read-only capture of a document's text and line-offset
// table, taken at the start of one annotation pass. The live document may be
// edited while the pass runs; a snapshot never changes, which is exactly why
// offsets computed from it must be re-validated against the live document
// before use.
type Snapshot struct {
	uri     string
	text    string
	version int
	lines   []int // byte offsets of line starts, lines[0] == 0
}

// URI returns the URI of the document the snapshot was taken from.
func (s *Snapshot) URI() string { return s.uri }

// Text returns the full captured text.
func (s *Snapshot) Text() string { return s.text }

// Version returns the document version the snapshot captured.
func (s *Snapshot) Version() int { return s.version }

// Len returns the captured text length in bytes.
func (s *Snapshot) Len() int { return len(s.text) }

// LineCount returns the number of lines in the captured text.
func (s *Snapshot) LineCount() int { return len(s.lines) }

// LineStart returns the absolute offset of the start of the given 1-based
// line. ok is false when the line is outside the captured table.
func (s *Snapshot) LineStart(line int) (offset int, ok bool) {
	if line < 1 || line > len(s.lines) {
		return 0, false
	}
	return s.lines[line-1], true
}

// LineEnd returns the absolute offset of the end of the given 1-based line,
// excluding the trailing newline. ok is false when the line is outside the
// captured table.
func (s *Snapshot) LineEnd(line int) (offset int, ok bool) {
	if line < 1 || line > len(s.lines) {
		return 0, false
	}
	if line < len(s.lines) {
		return s.lines[line] - 1, true
	}
	return len(s.text), true
}

// LineColForOffset converts an absolute offset into 0-based line and
// character coordinates, clamping to the captured text's bounds. Hosts use
// this to turn annotation offsets back into protocol positions.
func (s *Snapshot) LineColForOffset(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(s.text) {
		offset = len(s.text)
	}
	for i, lineOffset := range s.lines {
		if lineOffset > offset {
			break
		}
		line = i
	}
	return line, offset - s.lines[line]
}

// computeLineOffsets calculates byte offsets for each line start.
func computeLineOffsets(content string) []int {
	offsets := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}
