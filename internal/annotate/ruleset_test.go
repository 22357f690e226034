package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicableRuleSets(t *testing.T) {
	configured := []string{
		"category/java/bestpractices.xml",
		"category/kotlin/errorprone.xml",
		"category/java/design.xml",
	}

	tests := []struct {
		dialectID string
		expected  Selection
	}{
		{"java", Selection{"category/java/bestpractices.xml", "category/java/design.xml"}},
		{"kotlin", Selection{"category/kotlin/errorprone.xml"}},
		{"apex", nil},
	}

	for _, tt := range tests {
		t.Run(tt.dialectID, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplicableRuleSets(configured, tt.dialectID))
		})
	}
}

func TestApplicableRuleSetsDeduplicates(t *testing.T) {
	configured := []string{
		"category/java/design.xml",
		"category/java/bestpractices.xml",
		"category/java/design.xml",
	}

	sel := ApplicableRuleSets(configured, "java")
	assert.Equal(t, Selection{
		"category/java/design.xml",
		"category/java/bestpractices.xml",
	}, sel)
}

func TestApplicableRuleSetsMatchesAnywhereInIdentifier(t *testing.T) {
	// The dialect id may appear anywhere in the path, not only as a
	// directory segment.
	sel := ApplicableRuleSets([]string{"/home/user/kotlin/acme-java-rules.xml"}, "java")
	assert.Equal(t, Selection{"/home/user/kotlin/acme-java-rules.xml"}, sel)
}

func TestSelectionEmpty(t *testing.T) {
	assert.True(t, Selection(nil).Empty())
	assert.True(t, Selection{}.Empty())
	assert.False(t, Selection{"category/java/design.xml"}.Empty())
}
