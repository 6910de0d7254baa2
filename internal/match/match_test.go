package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"Score", "Score", 0},
		{"", "Text", 4},
		{"Text", "", 4},
		{"Score", "Scroe", 2},
		{"Health", "Heath", 1},
		{"Visible", "Visibility", 4},
		{"kitten", "sitting", 3},
		{"Label", "label", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "distance must be symmetric")
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	assert.InDelta(t, 1.0, LevenshteinNormalized("", ""), 0.001)
	assert.InDelta(t, 0.0, LevenshteinNormalized("abc", "xyz"), 0.001)
	assert.InDelta(t, 1.0-3.0/7.0, LevenshteinNormalized("kitten", "sitting"), 0.001)
}

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"OneTime", "onetime"},
		{"one_time", "onetime"},
		{"one-time", "onetime"},
		{"ONE_TIME", "onetime"},
		{"TwoWay", "twoway"},
		{"OneWayToTarget", "onewaytotarget"},
		{"HTTPStatus", "httpstatus"},
		{"Spawned At", "spawnedat"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIdent(tt.input))
		})
	}
}

func TestNormalizeIdentWithSuffixStrip(t *testing.T) {
	assert.Equal(t, "player", NormalizeIdentWithSuffixStrip("PlayerID"))
	assert.Equal(t, "spawned", NormalizeIdentWithSuffixStrip("SpawnedAt"))
	assert.Equal(t, "id", NormalizeIdentWithSuffixStrip("ID"))
	assert.Equal(t, "score", NormalizeIdentWithSuffixStrip("Score"))
}

func TestRankCandidates(t *testing.T) {
	ranked := RankCandidates("Scroe", []string{"Name", "Score", "Scope", "Health"})

	assert.Len(t, ranked, 4)
	assert.Equal(t, "Scope", ranked[0].Name)
	assert.Equal(t, "Score", ranked[1].Name)
	assert.GreaterOrEqual(t, ranked[1].Score, ranked[2].Score)
}

func TestSuggest(t *testing.T) {
	known := []string{"Name", "Score", "Stats", "Level", "Title"}

	assert.Equal(t, []string{"Score"}, Suggest("Scor", known, 3))
	assert.Equal(t, []string{"Level"}, Suggest("level_", known, 3))
	assert.Empty(t, Suggest("Inventory", known, 3))
	assert.Empty(t, Suggest("Score", nil, 3))
}
