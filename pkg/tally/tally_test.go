package tally

import (
	"testing"

	"github.com/iNinad/chair-counting-tool/pkg/floorplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustAnalyze parses and counts a plan that the test expects to be well formed.
func mustAnalyze(t *testing.T, text string) *Survey {
	t.Helper()
	s, err := Analyze(text)
	require.NoError(t, err)
	return s
}

func TestCountClassification(t *testing.T) {
	s := mustAnalyze(t, "(study)\nWWPSC\n")

	require.Len(t, s.Rooms, 1)
	assert.Equal(t, "study", s.Rooms[0].Room)
	assert.Equal(t, Tally{Wooden: 2, Plastic: 1, Sofa: 1, China: 1}, s.Rooms[0].Counts)
}

func TestCountMultiRoomTotal(t *testing.T) {
	s := mustAnalyze(t, "(a)\nWW\n(b)\nPPP\n")

	require.Len(t, s.Rooms, 2)
	assert.Equal(t, "a", s.Rooms[0].Room)
	assert.Equal(t, "b", s.Rooms[1].Room)
	assert.Equal(t, Tally{Wooden: 2, Plastic: 0, Sofa: 0, China: 0}, s.Rooms[0].Counts)
	assert.Equal(t, Tally{Wooden: 0, Plastic: 3, Sofa: 0, China: 0}, s.Rooms[1].Counts)
	assert.Equal(t, Tally{Wooden: 2, Plastic: 3, Sofa: 0, China: 0}, s.Total)
}

func TestTotalEqualsSumOfRooms(t *testing.T) {
	s := mustAnalyze(t, `+----------+
|(hall) W S|
| C  C     |
+----------+
|(den) P  W|
|  S S S   |
+----------+
`)

	for _, ct := range Types {
		sum := 0
		for _, rt := range s.Rooms {
			sum += rt.Counts[ct]
		}
		assert.Equal(t, sum, s.Total[ct], "total for %s", ct)
	}
	assert.Equal(t, 9, s.Total.Sum())
}

func TestAnalyzeIdempotent(t *testing.T) {
	const text = "(a)\nW P\n(b)\nS C\n"

	first := mustAnalyze(t, text)
	second := mustAnalyze(t, text)
	assert.Equal(t, first, second)
}

func TestNoiseDoesNotChangeCounts(t *testing.T) {
	clean := mustAnalyze(t, "(a)\nW P S C\n")
	noisy := mustAnalyze(t, "(a)\n|W /P\\ +S- 4C!|\n")

	assert.Equal(t, clean.Rooms[0].Counts, noisy.Rooms[0].Counts)
	assert.Equal(t, clean.Total, noisy.Total)
}

func TestLowercaseSymbolsNotCounted(t *testing.T) {
	s := mustAnalyze(t, "(a)\nw p s c\n")

	assert.Equal(t, 0, s.Total.Sum())
}

func TestCountEmptyRoom(t *testing.T) {
	s := mustAnalyze(t, "(a)\n")

	require.Len(t, s.Rooms, 1)
	assert.Len(t, s.Rooms[0].Counts, 4, "zero counts stay visible per type")
	assert.Equal(t, 0, s.Rooms[0].Counts.Sum())
}

func TestAnalyzeParseFailure(t *testing.T) {
	_, err := Analyze("no rooms here\n")
	require.Error(t, err)

	var pe *floorplan.ParseError
	assert.ErrorAs(t, err, &pe)
}
