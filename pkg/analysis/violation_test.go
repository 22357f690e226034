package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityString(t *testing.T) {
	tests := []struct {
		priority Priority
		expected string
	}{
		{PriorityHigh, "HIGH"},
		{PriorityMediumHigh, "MEDIUM_HIGH"},
		{PriorityMedium, "MEDIUM"},
		{PriorityMediumLow, "MEDIUM_LOW"},
		{PriorityLow, "LOW"},
		{Priority(0), "UNKNOWN"},
		{Priority(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.priority.String())
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input    string
		expected Priority
		valid    bool
	}{
		{"HIGH", PriorityHigh, true},
		{"MEDIUM_HIGH", PriorityMediumHigh, true},
		{"medium", PriorityMedium, true},
		{" low ", PriorityLow, true},
		{"MEDIUM_LOW", PriorityMediumLow, true},
		{"URGENT", PriorityMedium, false},
		{"", PriorityMedium, false},
	}

	for _, tt := range tests {
		got, ok := ParsePriority(tt.input)
		assert.Equal(t, tt.valid, ok, "input %q", tt.input)
		assert.Equal(t, tt.expected, got, "input %q", tt.input)
	}
}

func TestPriorityValid(t *testing.T) {
	for p := PriorityHigh; p <= PriorityLow; p++ {
		assert.True(t, p.Valid(), "priority %d", p)
	}
	assert.False(t, Priority(0).Valid())
	assert.False(t, Priority(6).Valid())
}

func TestPriorityJSONRoundTrip(t *testing.T) {
	for p := PriorityHigh; p <= PriorityLow; p++ {
		data, err := json.Marshal(p)
		require.NoError(t, err)

		var decoded Priority
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, p, decoded)
	}
}

func TestPriorityUnmarshalUnknown(t *testing.T) {
	var p Priority
	err := json.Unmarshal([]byte(`"CRITICAL"`), &p)
	assert.Error(t, err)
}

func TestViolationDecodesEngineWireFormat(t *testing.T) {
	payload := `{
		"ruleId": "java/bestpractices/UnusedLocalVariable",
		"ruleName": "UnusedLocalVariable",
		"ruleDescription": "Unused variables add noise.",
		"description": "Avoid unused local variables such as 'x'.",
		"priority": "MEDIUM",
		"beginLine": 3, "beginColumn": 9, "endLine": 3, "endColumn": 10
	}`

	var v Violation
	require.NoError(t, json.Unmarshal([]byte(payload), &v))
	assert.Equal(t, "UnusedLocalVariable", v.RuleName)
	assert.Equal(t, PriorityMedium, v.Priority)
	assert.Equal(t, 3, v.BeginLine)
	assert.Equal(t, 0, v.LineSpan())
}

func TestViolationLineSpan(t *testing.T) {
	v := Violation{BeginLine: 2, EndLine: 10}
	assert.Equal(t, 8, v.LineSpan())
}
