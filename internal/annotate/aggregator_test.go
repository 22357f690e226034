package annotate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintwire-labs/lintwire/internal/document"
	"github.com/lintwire-labs/lintwire/internal/testutil"
	"github.com/lintwire-labs/lintwire/pkg/analysis"
	"github.com/lintwire-labs/lintwire/pkg/dialect"
)

func javaResolution(t *testing.T) dialect.Resolution {
	t.Helper()
	d, ok := dialect.Get("java")
	require.True(t, ok)
	return dialect.Resolution{Dialect: d, Version: "17"}
}

func singleViolation(ruleID, description string) analysis.Violation {
	return analysis.Violation{
		RuleID:      ruleID,
		RuleName:    ruleID,
		Description: description,
		Priority:    analysis.PriorityMedium,
		BeginLine:   1, BeginColumn: 1,
		EndLine: 1, EndColumn: 1,
	}
}

func TestAnnotateNotApplicable(t *testing.T) {
	engine := analysis.EngineFunc(func(context.Context, string, string, string, string) ([]analysis.Violation, error) {
		t.Fatal("engine must not run when no rule set applies")
		return nil, nil
	})
	agg := New(engine, testutil.DiscardLogger())

	doc := document.NewDocument("file:///a.java", "class A {}", 1)
	result, err := agg.Annotate(context.Background(), doc.Snapshot(), doc,
		javaResolution(t), []string{"category/kotlin/errorprone.xml"})

	require.NoError(t, err)
	assert.Nil(t, result)
	assert.False(t, result.Applicable())
	assert.Equal(t, 0, result.Len())
}

func TestAnnotateEmptyIsNotNotApplicable(t *testing.T) {
	engine := analysis.EngineFunc(func(context.Context, string, string, string, string) ([]analysis.Violation, error) {
		return nil, nil
	})
	agg := New(engine, testutil.DiscardLogger())

	doc := document.NewDocument("file:///a.java", "class A {}", 1)
	result, err := agg.Annotate(context.Background(), doc.Snapshot(), doc,
		javaResolution(t), []string{"category/java/design.xml"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Applicable())
	assert.Equal(t, 0, result.Len())
	assert.NotEmpty(t, result.PassID)
	assert.Equal(t, 1, result.SnapshotVersion)
}

func TestAnnotateMergesInConfiguredOrder(t *testing.T) {
	configured := []string{
		"category/java/bestpractices.xml",
		"category/java/design.xml",
		"category/java/errorprone.xml",
	}

	// Finish in reverse order to make completion order diverge from
	// configured order.
	var mu sync.Mutex
	started := 0
	engine := analysis.EngineFunc(func(ctx context.Context, _, _, _, ruleSetID string) ([]analysis.Violation, error) {
		mu.Lock()
		started++
		order := started
		mu.Unlock()
		time.Sleep(time.Duration(len(configured)-order) * 5 * time.Millisecond)
		return []analysis.Violation{singleViolation("rule", "from "+ruleSetID)}, nil
	})
	agg := New(engine, testutil.DiscardLogger())

	doc := document.NewDocument("file:///a.java", "class A {}", 1)
	result, err := agg.Annotate(context.Background(), doc.Snapshot(), doc, javaResolution(t), configured)

	require.NoError(t, err)
	require.Equal(t, 3, result.Len())
	for i, ruleSetID := range configured {
		assert.Equal(t, "PMD: from "+ruleSetID, result.Annotations[i].Message)
	}
}

func TestAnnotateContainsEngineFailure(t *testing.T) {
	engine := analysis.EngineFunc(func(ctx context.Context, _, _, _, ruleSetID string) ([]analysis.Violation, error) {
		if ruleSetID == "category/java/design.xml" {
			return nil, fmt.Errorf("engine unreachable")
		}
		return []analysis.Violation{singleViolation("rule", "kept")}, nil
	})
	agg := New(engine, testutil.DiscardLogger())

	doc := document.NewDocument("file:///a.java", "class A {}", 1)
	result, err := agg.Annotate(context.Background(), doc.Snapshot(), doc, javaResolution(t),
		[]string{"category/java/design.xml", "category/java/bestpractices.xml"})

	require.NoError(t, err)
	require.Equal(t, 1, result.Len())
	assert.Equal(t, "PMD: kept", result.Annotations[0].Message)
}

func TestAnnotateDropsStaleViolations(t *testing.T) {
	engine := analysis.EngineFunc(func(context.Context, string, string, string, string) ([]analysis.Violation, error) {
		stale := singleViolation("stale", "gone")
		stale.BeginLine, stale.EndLine = 3, 3
		stale.EndColumn = 3
		return []analysis.Violation{singleViolation("fresh", "still here"), stale}, nil
	})
	agg := New(engine, testutil.DiscardLogger())

	doc := document.NewDocument("file:///a.java", "a\nbb\nccc\n", 1)
	snap := doc.Snapshot()
	doc.Update("a\n", 2)

	result, err := agg.Annotate(context.Background(), snap, doc, javaResolution(t),
		[]string{"category/java/design.xml"})

	require.NoError(t, err)
	require.Equal(t, 1, result.Len())
	assert.Equal(t, "PMD: still here", result.Annotations[0].Message)
}

func TestAnnotateCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	engine := analysis.EngineFunc(func(ctx context.Context, _, _, _, _ string) ([]analysis.Violation, error) {
		cancel()
		<-ctx.Done()
		return nil, ctx.Err()
	})
	agg := New(engine, testutil.DiscardLogger())

	doc := document.NewDocument("file:///a.java", "class A {}", 1)
	result, err := agg.Annotate(ctx, doc.Snapshot(), doc, javaResolution(t),
		[]string{"category/java/design.xml"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, result)
}

func TestAnnotatePassIDsAreUnique(t *testing.T) {
	engine := analysis.EngineFunc(func(context.Context, string, string, string, string) ([]analysis.Violation, error) {
		return nil, nil
	})
	agg := New(engine, testutil.DiscardLogger())

	doc := document.NewDocument("file:///a.java", "class A {}", 1)
	res := javaResolution(t)
	configured := []string{"category/java/design.xml"}

	first, err := agg.Annotate(context.Background(), doc.Snapshot(), doc, res, configured)
	require.NoError(t, err)
	second, err := agg.Annotate(context.Background(), doc.Snapshot(), doc, res, configured)
	require.NoError(t, err)

	assert.NotEqual(t, first.PassID, second.PassID)
}
