package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propbind/binding"
	"propbind/primitive"
)

func TestParseCategories(t *testing.T) {
	got, err := ParseCategories(nil)
	require.NoError(t, err)
	assert.Equal(t, primitive.CategoryAll, got)

	got, err = ParseCategories([]string{"safe_number", "TextNumber", "enum-string"})
	require.NoError(t, err)
	assert.Equal(t, primitive.CategorySafeNumber|primitive.CategoryTextNumber|primitive.CategoryEnumString, got)

	_, err = ParseCategories([]string{"safe_number", "telepathy"})
	require.Error(t, err)
}

func TestParseDetect(t *testing.T) {
	tests := []struct {
		input string
		want  binding.ChangeDetection
	}{
		{"", binding.DetectLegacy},
		{"legacy", binding.DetectLegacy},
		{"changes", binding.DetectChanges},
		{"DetectChanges", binding.DetectChanges},
		{"detect_changes", binding.DetectChanges},
	}

	for _, tt := range tests {
		got, err := ParseDetect(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := ParseDetect("sometimes")
	require.Error(t, err)
}
