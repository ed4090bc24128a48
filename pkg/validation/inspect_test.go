package validation

import (
	"testing"

	"github.com/iNinad/chair-counting-tool/pkg/floorplan"
	"github.com/iNinad/chair-counting-tool/pkg/tally"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inspectText parses, counts, and inspects a plan in one step.
func inspectText(t *testing.T, text string) *Report {
	t.Helper()
	plan, err := floorplan.Parse(text)
	require.NoError(t, err)
	return Inspect(plan, tally.Count(plan))
}

func TestInspectCleanPlan(t *testing.T) {
	r := inspectText(t, "(hall)\nW W\n(den)\nP\n")

	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
	require.Len(t, r.Info, 1)
	assert.Equal(t, "2 room sections, 3 chairs counted", r.Info[0].Message)
}

func TestInspectChairlessRoom(t *testing.T) {
	r := inspectText(t, "(hall)\nW\n(storage)\n| |\n")

	assert.True(t, r.Valid, "warnings alone keep the report valid")
	require.Len(t, r.Warnings, 1)
	w := r.Warnings[0]
	assert.Equal(t, LevelSurvey, w.Level)
	assert.Equal(t, "storage", w.Room)
	assert.Equal(t, 3, w.Line)
	assert.Contains(t, w.Message, "no chairs")
}

func TestInspectChairlessPlan(t *testing.T) {
	r := inspectText(t, "(a)\n| |\n(b)\n| |\n")

	// One warning per room plus the plan-wide one.
	assert.Len(t, r.Warnings, 3)
	assert.True(t, r.Valid)
}

func TestInspectBlankRoomName(t *testing.T) {
	r := inspectText(t, "(  )\nW\n")

	assert.False(t, r.Valid)
	require.Len(t, r.Errors, 1)
	e := r.Errors[0]
	assert.Equal(t, LevelStructure, e.Level)
	assert.Equal(t, 1, e.Line)
	assert.Contains(t, e.Message, "blank name")
}

func TestInspectEmptyRoomName(t *testing.T) {
	r := inspectText(t, "()\nW\n")

	assert.False(t, r.Valid)
	require.Len(t, r.Errors, 1)
}
