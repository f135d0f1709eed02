// file: internals/features/school/timetables/service/sequencer_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "schoolku_backend/internals/features/school/timetables/model"
)

func TestRecompute_ChainsFromStartTime(t *testing.T) {
	slots := []SlotDraft{
		{Type: m.SlotPeriod, DurationMinutes: 45},
		{Type: m.SlotShortBreak, DurationMinutes: 10},
	}
	slots = Recompute(slots, "08:00")

	require.Len(t, slots, 2)
	assert.Equal(t, "08:00", slots[0].StartTime)
	assert.Equal(t, "08:45", slots[0].EndTime)
	assert.Equal(t, "08:45", slots[1].StartTime)
	assert.Equal(t, "08:55", slots[1].EndTime)
	assert.Equal(t, 1, slots[0].Order)
	assert.Equal(t, 2, slots[1].Order)
}

func TestRecompute_FivePeriods(t *testing.T) {
	slots := make([]SlotDraft, 0, 5)
	for i := 0; i < 5; i++ {
		slots = append(slots, SlotDraft{Type: m.SlotPeriod, DurationMinutes: 45})
	}
	slots = Recompute(slots, "09:00")

	assert.Equal(t, "12:00", slots[4].StartTime)
	assert.Equal(t, "12:45", slots[4].EndTime)
}

func TestRecompute_Idempotent(t *testing.T) {
	slots := []SlotDraft{
		{Type: m.SlotPeriod, DurationMinutes: 45},
		{Type: m.SlotLunchBreak, DurationMinutes: 30},
		{Type: m.SlotPeriod, DurationMinutes: 40},
	}
	once := Recompute(slots, "07:15")
	again := Recompute(append([]SlotDraft(nil), once...), "07:15")
	assert.Equal(t, once, again)
}

func TestRenumberPeriods_SkipsBreaks(t *testing.T) {
	slots := []SlotDraft{
		{Type: m.SlotPeriod},
		{Type: m.SlotShortBreak, Label: "Short Break"},
		{Type: m.SlotPeriod},
		{Type: m.SlotLunchBreak, Label: "Lunch Break"},
		{Type: m.SlotPeriod},
	}
	RenumberPeriods(slots)

	assert.Equal(t, "Period 1", slots[0].Label)
	assert.Equal(t, "Short Break", slots[1].Label)
	assert.Equal(t, "Period 2", slots[2].Label)
	assert.Equal(t, "Lunch Break", slots[3].Label)
	assert.Equal(t, "Period 3", slots[4].Label)
}
