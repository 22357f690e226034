package lsp

import (
	"encoding/json"
	"sync"

	"github.com/lintwire-labs/lintwire/internal/document"
	"github.com/lintwire-labs/lintwire/pkg/annotation"
)

// fixCache stores the suppression handles from each document's latest
// annotation pass, keyed by URI and rule ID. Code-action requests reference
// diagnostics by code; the cache turns that back into descriptors.
type fixCache struct {
	mu    sync.RWMutex
	fixes map[string]map[string][]annotation.QuickFixDescriptor // URI -> RuleID -> descriptors
}

func newFixCache() *fixCache {
	return &fixCache{
		fixes: make(map[string]map[string][]annotation.QuickFixDescriptor),
	}
}

// replaceURI swaps in the full handle set from a fresh pass.
func (c *fixCache) replaceURI(uri string, fixes map[string][]annotation.QuickFixDescriptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fixes[uri] = fixes
}

// get retrieves the handles for a URI and rule ID.
func (c *fixCache) get(uri, ruleID string) []annotation.QuickFixDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.fixes[uri] == nil {
		return nil
	}
	return c.fixes[uri][ruleID]
}

// clearURI removes all cached handles for a URI.
func (c *fixCache) clearURI(uri string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.fixes, uri)
}

// handleCodeAction handles the textDocument/codeAction request.
func (s *Server) handleCodeAction(msg *JSONRPCMessage) error {
	var params CodeActionParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		s.sendResponse(msg.ID, nil, &JSONRPCError{Code: -32602, Message: err.Error()})
		return err
	}

	actions := s.getCodeActions(params)
	s.sendResponse(msg.ID, actions, nil)
	return nil
}

// getCodeActions builds suppression quick-fixes for the diagnostics the
// client asked about. The descriptor only identifies the rule and location;
// the edit itself — appending the suppression marker comment to the
// violation's first line — is constructed here against the document's
// current state.
func (s *Server) getCodeActions(params CodeActionParams) []CodeAction {
	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return nil
	}
	snap := doc.Snapshot()

	var actions []CodeAction
	for _, diag := range params.Context.Diagnostics {
		for _, fix := range s.fixes.get(params.TextDocument.URI, diag.Code) {
			// Several violations of one rule can coexist; match the handle
			// to its diagnostic by first line.
			if fix.BeginLine-1 != int(diag.Range.Start.Line) {
				continue
			}

			edit, ok := s.suppressionEdit(snap, fix)
			if !ok {
				continue
			}

			actions = append(actions, CodeAction{
				Title:       fix.Title(),
				Kind:        CodeActionKindQuickFix,
				Diagnostics: []Diagnostic{diag},
				IsPreferred: true,
				Edit: &WorkspaceEdit{
					Changes: map[string][]TextEdit{
						params.TextDocument.URI: {edit},
					},
				},
			})
		}
	}

	return actions
}

// suppressionEdit builds the insertion of the suppression comment at the end
// of the violation's first line. ok is false when the line no longer exists.
func (s *Server) suppressionEdit(snap *document.Snapshot, fix annotation.QuickFixDescriptor) (TextEdit, bool) {
	endOffset, ok := snap.LineEnd(fix.BeginLine)
	if !ok {
		return TextEdit{}, false
	}
	line, col := snap.LineColForOffset(endOffset)
	pos := Position{Line: uint32(line), Character: uint32(col)} //nolint:gosec // G115: line/column are always non-negative

	return TextEdit{
		Range:   Range{Start: pos, End: pos},
		NewText: fix.SuppressionComment(s.cfg.SuppressMarker),
	}, true
}
