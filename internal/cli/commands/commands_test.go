package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintwire-labs/lintwire/internal/annotate"
	"github.com/lintwire-labs/lintwire/internal/config"
	"github.com/lintwire-labs/lintwire/internal/testutil"
	"github.com/lintwire-labs/lintwire/pkg/analysis"
	"github.com/lintwire-labs/lintwire/pkg/annotation"
)

func TestContextAccessors(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ConfigFrom(ctx))
	assert.NotNil(t, LoggerFrom(ctx)) // falls back to the default logger

	cfg := &config.Config{}
	logger := slog.Default()
	ctx = WithConfig(ctx, cfg)
	ctx = WithLogger(ctx, logger)
	assert.Same(t, cfg, ConfigFrom(ctx))
	assert.Same(t, logger, LoggerFrom(ctx))
}

func TestCheckCommandMetadata(t *testing.T) {
	cmd := NewCheckCommand()
	assert.Equal(t, "check <file>...", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("format"))
	assert.NotNil(t, cmd.Flags().Lookup("watch"))
	assert.Equal(t, "table", cmd.Flags().Lookup("format").DefValue)

	// At least one file argument is required.
	assert.Error(t, cmd.Args(cmd, nil))
	assert.NoError(t, cmd.Args(cmd, []string{"A.java"}))
}

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.Run(cmd, nil)
	assert.Contains(t, out.String(), "lintwire v1.2.3")
}

func TestRuleSetsCommand(t *testing.T) {
	cfg := &config.Config{RuleSets: []string{
		"category/java/bestpractices.xml",
		"category/kotlin/errorprone.xml",
	}}
	config.ApplyDefaults(cfg)

	cmd := NewRuleSetsCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetContext(WithConfig(context.Background(), cfg))
	require.NoError(t, cmd.RunE(cmd, nil))

	assert.Contains(t, out.String(), "category/java/bestpractices.xml")
	assert.Contains(t, out.String(), "category/kotlin/errorprone.xml")
	assert.Contains(t, out.String(), "yes")
}

func TestRuleSetsCommandNoConfig(t *testing.T) {
	cmd := NewRuleSetsCommand()
	cmd.SetContext(context.Background())
	assert.Error(t, cmd.RunE(cmd, nil))
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheckFiles(t *testing.T) {
	cfg := &config.Config{RuleSets: []string{"category/java/bestpractices.xml"}}
	config.ApplyDefaults(cfg)

	engine := analysis.EngineFunc(func(context.Context, string, string, string, string) ([]analysis.Violation, error) {
		return []analysis.Violation{{
			RuleID:      "java/UnusedLocalVariable",
			RuleName:    "UnusedLocalVariable",
			Description: "Avoid unused local variables such as 'x'.",
			Priority:    analysis.PriorityMedium,
			BeginLine:   1, BeginColumn: 1,
			EndLine: 1, EndColumn: 5,
		}}, nil
	})
	aggregator := annotate.New(engine, testutil.DiscardLogger())

	javaFile := writeSource(t, "A.java", "class A {}\n")
	kotlinFile := writeSource(t, "U.kt", "fun u() {}\n")

	reports, err := checkFiles(context.Background(), aggregator, cfg, []string{javaFile, kotlinFile})
	require.NoError(t, err)
	require.Len(t, reports, 2)

	java := reports[0]
	assert.Equal(t, javaFile, java.Path)
	assert.Equal(t, "java", java.Dialect)
	assert.False(t, java.Skipped)
	require.Len(t, java.Annotations, 1)
	assert.Equal(t, "PMD: Avoid unused local variables such as 'x'.", java.Annotations[0].Message)
	require.Len(t, java.positions, 1)
	assert.Equal(t, position{Line: 1, Col: 1}, java.positions[0])

	// No kotlin rule set configured: skipped, not clean.
	kotlin := reports[1]
	assert.Equal(t, "kotlin", kotlin.Dialect)
	assert.True(t, kotlin.Skipped)
	assert.Empty(t, kotlin.Annotations)
}

func TestCheckFilesMissingFile(t *testing.T) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	aggregator := annotate.New(nil, testutil.DiscardLogger())

	_, err := checkFiles(context.Background(), aggregator, cfg, []string{"/does/not/exist.java"})
	assert.Error(t, err)
}

func TestRenderReportsTable(t *testing.T) {
	reports := []fileReport{{
		Path:    "A.java",
		Dialect: "java",
		Annotations: []annotation.Annotation{{
			Severity: annotation.SeverityWarning,
			Message:  "PMD: Avoid unused local variables such as 'x'.",
			Fix:      annotation.QuickFixDescriptor{RuleID: "java/UnusedLocalVariable"},
		}},
		positions: []position{{Line: 3, Col: 9}},
	}}

	var out bytes.Buffer
	require.NoError(t, renderReports(&out, reports, "table"))

	assert.Contains(t, out.String(), "A.java")
	assert.Contains(t, out.String(), "3:9")
	assert.Contains(t, out.String(), "warning")
	assert.Contains(t, out.String(), "java/UnusedLocalVariable")
	assert.Contains(t, out.String(), "1 finding(s) in 1 file(s)")
}

func TestRenderReportsJSON(t *testing.T) {
	reports := []fileReport{
		{Path: "A.java", Dialect: "java"},
		{Path: "U.kt", Dialect: "kotlin", Skipped: true},
	}

	var out bytes.Buffer
	require.NoError(t, renderReports(&out, reports, "json"))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "A.java", decoded[0]["path"])
	assert.Equal(t, false, decoded[0]["skipped"])
	assert.Equal(t, true, decoded[1]["skipped"])
}

func TestRenderReportsSummaryLine(t *testing.T) {
	reports := []fileReport{
		{Path: "A.java", Dialect: "java"},
		{Path: "U.kt", Dialect: "kotlin", Skipped: true},
	}

	var out bytes.Buffer
	require.NoError(t, renderReports(&out, reports, "table"))

	assert.Contains(t, out.String(), "0 finding(s) in 1 file(s)")
	assert.Contains(t, out.String(), "1 file(s) skipped")
}
