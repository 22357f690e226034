package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/fsnotify/fsnotify"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/lintwire-labs/lintwire/internal/annotate"
	"github.com/lintwire-labs/lintwire/internal/config"
	"github.com/lintwire-labs/lintwire/internal/document"
	"github.com/lintwire-labs/lintwire/internal/engine"
	"github.com/lintwire-labs/lintwire/pkg/annotation"
	"github.com/lintwire-labs/lintwire/pkg/dialect"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Paths  []string // Files to annotate
	Format string   // Output format: table, json
	Watch  bool     // Re-run on file changes
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Annotate files with the configured rule sets",
		Long: `Run one annotation pass per file and print the findings.

Each file's dialect is resolved from its extension; only the configured
rule sets matching that dialect are run. Files whose dialect matches no
rule set are reported as skipped, which is different from a file that was
analyzed and came back clean.`,
		Example: `  # Annotate two files
  lintwire check src/main/java/App.java src/main/kotlin/Util.kt

  # Machine-readable output
  lintwire check --format json src/main/java/App.java

  # Re-annotate whenever a file changes
  lintwire check --watch src/main/java/App.java`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "table", "Output format: table, json")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run when a checked file changes")

	return cmd
}

// fileReport is the per-file outcome of one check run.
type fileReport struct {
	Path        string                  `json:"path"`
	Dialect     string                  `json:"dialect"`
	Skipped     bool                    `json:"skipped"`
	Annotations []annotation.Annotation `json:"annotations"`

	// Line/column render positions parallel to Annotations, 1-based.
	positions []position
}

type position struct {
	Line int
	Col  int
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cfg := ConfigFrom(cmd.Context())
	logger := LoggerFrom(cmd.Context())
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}

	eng := engine.NewRemote(cfg.Engine)
	aggregator := annotate.New(eng, logger)

	run := func() error {
		reports, err := checkFiles(cmd.Context(), aggregator, cfg, opts.Paths)
		if err != nil {
			return err
		}
		return renderReports(cmd.OutOrStdout(), reports, opts.Format)
	}

	if err := run(); err != nil {
		return err
	}

	if opts.Watch {
		return watchAndRerun(cmd.Context(), logger, opts.Paths, run)
	}
	return nil
}

// checkFiles runs one annotation pass per path, in path order.
func checkFiles(ctx context.Context, aggregator *annotate.Aggregator, cfg *config.Config, paths []string) ([]fileReport, error) {
	store := document.NewStore()

	reports := make([]fileReport, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		res := dialect.Resolve(path, cfg.Versions)
		doc := store.Open(path, string(content), 1)
		snap := doc.Snapshot()

		result, err := aggregator.Annotate(ctx, snap, doc, res, cfg.RuleSets)
		if err != nil {
			return nil, err
		}

		report := fileReport{Path: path, Dialect: res.ID()}
		if !result.Applicable() {
			report.Skipped = true
		} else {
			report.Annotations = result.Annotations
			report.positions = make([]position, len(result.Annotations))
			for i, ann := range result.Annotations {
				line, col := snap.LineColForOffset(ann.StartOffset)
				report.positions[i] = position{Line: line + 1, Col: col + 1}
			}
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func renderReports(w io.Writer, reports []fileReport, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	total := 0
	skipped := 0
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Position", "Severity", "Rule", "Message"})

	for _, r := range reports {
		if r.Skipped {
			skipped++
			continue
		}
		for i, ann := range r.Annotations {
			pos := r.positions[i]
			t.AppendRow(table.Row{
				r.Path,
				fmt.Sprintf("%d:%d", pos.Line, pos.Col),
				ann.Severity.String(),
				ann.Fix.RuleID,
				ann.Message,
			})
			total++
		}
	}

	if total > 0 {
		t.Render()
	}
	_, _ = fmt.Fprintf(w, "%d finding(s) in %d file(s)", total, len(reports)-skipped)
	if skipped > 0 {
		_, _ = fmt.Fprintf(w, ", %d file(s) skipped (no applicable rule sets)", skipped)
	}
	_, _ = fmt.Fprintln(w)
	return nil
}

// watchAndRerun re-runs the check whenever a watched file is written.
func watchAndRerun(ctx context.Context, logger *slog.Logger, paths []string, run func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	// Watch parent directories; editors often replace files on save, which
	// drops per-file watches.
	dirs := make(map[string]bool)
	watched := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	sorted := make([]string, 0, len(dirs))
	for dir := range dirs {
		sorted = append(sorted, dir)
	}
	sort.Strings(sorted)
	for _, dir := range sorted {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	logger.Info("watching for changes", "files", len(watched))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			logger.Debug("file changed, re-running", "path", event.Name)
			if err := run(); err != nil {
				logger.Error("check run failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}
