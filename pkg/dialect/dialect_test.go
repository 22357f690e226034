package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveByExtension(t *testing.T) {
	versions := map[string]string{"java": "17", "kotlin": "1.9"}

	tests := []struct {
		fileName string
		dialect  string
		version  string
	}{
		{"App.java", "java", "17"},
		{"src/main/kotlin/Util.kt", "kotlin", "1.9"},
		{"build.gradle.kts", "kotlin", "1.9"},
		{"UPPER.JAVA", "java", "17"},
		// Unrecognized extensions fall back to the default dialect.
		{"notes.txt", "java", "17"},
		{"Makefile", "java", "17"},
	}

	for _, tt := range tests {
		res := Resolve(tt.fileName, versions)
		assert.Equal(t, tt.dialect, res.ID(), "file %s", tt.fileName)
		assert.Equal(t, tt.version, res.Version, "file %s", tt.fileName)
	}
}

func TestResolveUnconfiguredVersion(t *testing.T) {
	// A missing version entry is passed through empty, not rejected:
	// the engine's own version lookup is the authority.
	res := Resolve("App.java", nil)
	assert.Equal(t, "java", res.ID())
	assert.Equal(t, "", res.Version)
}

func TestRegistry(t *testing.T) {
	d, ok := Get("java")
	require.True(t, ok)
	assert.Equal(t, "java", d.ID)

	_, ok = Get("cobol")
	assert.False(t, ok)

	ids := List()
	assert.Contains(t, ids, "java")
	assert.Contains(t, ids, "kotlin")
}
