package dialog

import (
	"os"
	"path/filepath"
	"testing"

	"rungoal/app/util/isodur"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalogEmbedded(t *testing.T) {
	msgs, err := LoadCatalog("")
	require.NoError(t, err)

	assert.NotEmpty(t, msgs.StartLaunch)
	assert.Contains(t, msgs.ConfirmGoal, "{distance}")
	assert.Contains(t, msgs.ConfirmGoal, "{duration}")
}

func TestLoadCatalogCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yaml")
	require.NoError(t, os.WriteFile(path, defaultMessages, 0644))

	msgs, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.NotEmpty(t, msgs.Praise)
}

func TestLoadCatalogRejectsIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start_launch: hello\n"), 0644))

	_, err := LoadCatalog(path)
	assert.Error(t, err)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDurationPhrase(t *testing.T) {
	msgs, err := LoadCatalog("")
	require.NoError(t, err)

	tests := []struct {
		name     string
		d        isodur.Components
		expected string
	}{
		{
			name:     "hours and minutes",
			d:        isodur.Components{Hours: 1, Minutes: 30, HasHours: true, HasMinutes: true},
			expected: "1時間30分",
		},
		{
			name:     "minutes only, no separator artifacts",
			d:        isodur.Components{Minutes: 45, HasMinutes: true},
			expected: "45分",
		},
		{
			name:     "seconds only",
			d:        isodur.Components{Seconds: 50, HasSeconds: true},
			expected: "50秒",
		},
		{
			name: "all three in fixed order",
			d: isodur.Components{
				Hours: 2, Minutes: 5, Seconds: 30,
				HasHours: true, HasMinutes: true, HasSeconds: true,
			},
			expected: "2時間5分30秒",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, msgs.DurationPhrase(tt.d))
		})
	}
}

func TestGoalPhraseFallsBackToRaw(t *testing.T) {
	msgs, err := LoadCatalog("")
	require.NoError(t, err)

	assert.Equal(t, "1時間", msgs.goalPhrase("PT1H"))
	assert.Equal(t, "garbage", msgs.goalPhrase("garbage"))
}

func TestRender(t *testing.T) {
	result := render("{distance}km in {duration}", map[string]any{
		"distance": 10,
		"duration": "1時間",
	})

	assert.Equal(t, "10km in 1時間", result)
}
