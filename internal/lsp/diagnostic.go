package lsp

import (
	"context"
	"errors"

	"github.com/lintwire-labs/lintwire/pkg/annotation"
	"github.com/lintwire-labs/lintwire/pkg/dialect"
)

// publishAnnotations runs one annotation pass for the document and publishes
// the result as diagnostics.
//
// A "not applicable" pass (no configured rule set targets the document's
// dialect) publishes nothing at all, leaving whatever the client currently
// shows untouched. Publishing an empty list would wrongly tell the client
// the document is clean.
func (s *Server) publishAnnotations(ctx context.Context, uri string) {
	doc := s.documents.Get(uri)
	if doc == nil {
		return
	}

	res := dialect.Resolve(URIToPath(uri), s.cfg.Versions)
	snap := doc.Snapshot()

	result, err := s.aggregator.Annotate(ctx, snap, doc, res, s.cfg.RuleSets)
	if err != nil {
		// Cancelled mid-pass; a newer pass owns the document now.
		if errors.Is(err, context.Canceled) {
			s.logger.Debug("annotation pass superseded", "uri", uri)
		} else {
			s.logger.Error("annotation pass failed", "uri", uri, "error", err)
		}
		return
	}
	if !result.Applicable() {
		s.logger.Debug("no applicable rule sets", "uri", uri, "dialect", res.ID())
		return
	}

	diagnostics := make([]Diagnostic, 0, result.Len())
	fixes := make(map[string][]annotation.QuickFixDescriptor)
	for _, ann := range result.Annotations {
		startLine, startCol := snap.LineColForOffset(ann.StartOffset)
		endLine, endCol := snap.LineColForOffset(ann.EndOffset)

		diagnostics = append(diagnostics, Diagnostic{
			Range: Range{
				Start: Position{Line: uint32(startLine), Character: uint32(startCol)}, //nolint:gosec // G115: line/column are always non-negative
				End:   Position{Line: uint32(endLine), Character: uint32(endCol)},     //nolint:gosec // G115: line/column are always non-negative
			},
			Severity: toLSPSeverity(ann.Severity),
			Code:     ann.Fix.RuleID,
			Source:   "lintwire",
			Message:  ann.Message,
		})
		fixes[ann.Fix.RuleID] = append(fixes[ann.Fix.RuleID], ann.Fix)
	}

	// Replace the fix handles atomically with the diagnostics they belong to.
	s.fixes.replaceURI(uri, fixes)

	s.sendNotification("textDocument/publishDiagnostics", &PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// toLSPSeverity converts annotation.Severity to LSP DiagnosticSeverity.
// The four levels map onto LSP's four in order.
func toLSPSeverity(s annotation.Severity) DiagnosticSeverity {
	switch s {
	case annotation.SeverityError:
		return DiagnosticSeverityError
	case annotation.SeverityWarning:
		return DiagnosticSeverityWarning
	case annotation.SeverityWeakWarning:
		return DiagnosticSeverityInformation
	case annotation.SeverityInformation:
		return DiagnosticSeverityHint
	default:
		return DiagnosticSeverityWarning
	}
}
