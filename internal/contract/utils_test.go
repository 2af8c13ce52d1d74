package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		target   float64
		expected string
	}{
		{name: "no coverage", ratio: 0, target: 0.2, expected: NoneValue},
		{name: "below target", ratio: 0.1, target: 0.2, expected: PartialValue},
		{name: "exactly target", ratio: 0.2, target: 0.2, expected: MetValue},
		{name: "above target", ratio: 0.5, target: 0.2, expected: MetValue},
		{name: "no target configured", ratio: 0.01, target: 0, expected: MetValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.ratio, tt.target))
		})
	}
}

func TestGetColorLabelWithoutColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	assert.Equal(t, "50%", GetColorLabel("50%", 0.5, 0.2))
	assert.Equal(t, "0%", GetColorLabel("0%", 0, 0.2))
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "out.csv")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.FileExists(t, path)
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "North Reef", TruncateText("North Reef", 20))
	assert.Equal(t, "North R...", TruncateText("North Reef Marine Park", 10))
	assert.Equal(t, "abcdef", TruncateText("abcdef", 3), "too narrow to truncate")
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"eez", "offshore"}, SplitList(" eez ,, offshore,"))
	assert.Nil(t, SplitList(""))
}

func TestGetDBFilePath(t *testing.T) {
	assert.Contains(t, GetDBFilePath(), ".sizecard_results.db")
}
