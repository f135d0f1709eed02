// file: internals/features/school/timetables/service/builder_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "schoolku_backend/internals/features/school/timetables/model"
)

func TestBuilder_AddSlotDefaults(t *testing.T) {
	b := NewTemplateBuilder("Jadwal Reguler", "08:00")
	require.NoError(t, b.AddSlot(m.SlotPeriod))
	require.NoError(t, b.AddSlot(m.SlotShortBreak))
	require.NoError(t, b.AddSlot(m.SlotPeriod))
	require.NoError(t, b.AddSlot(m.SlotLunchBreak))

	require.Len(t, b.Slots, 4)
	assert.Equal(t, "Period 1", b.Slots[0].Label)
	assert.Equal(t, 45, b.Slots[0].DurationMinutes)
	assert.Equal(t, "Short Break", b.Slots[1].Label)
	assert.Equal(t, 10, b.Slots[1].DurationMinutes)
	assert.Equal(t, "Period 2", b.Slots[2].Label)
	assert.Equal(t, "Lunch Break", b.Slots[3].Label)
	assert.Equal(t, 30, b.Slots[3].DurationMinutes)

	// jam turunan langsung terisi
	assert.Equal(t, "08:00", b.Slots[0].StartTime)
	assert.Equal(t, "08:45", b.Slots[0].EndTime)
	assert.Equal(t, "08:55", b.Slots[2].StartTime)

	assert.Error(t, b.AddSlot(m.SlotTypeEnum("recess")))
}

func TestBuilder_SetStartTimeShiftsAll(t *testing.T) {
	b := NewTemplateBuilder("Jadwal", "08:00")
	require.NoError(t, b.AddSlot(m.SlotPeriod))
	require.NoError(t, b.AddSlot(m.SlotPeriod))

	b.SetStartTime("09:30")
	assert.Equal(t, "09:30", b.Slots[0].StartTime)
	assert.Equal(t, "10:15", b.Slots[0].EndTime)
	assert.Equal(t, "10:15", b.Slots[1].StartTime)
	assert.Equal(t, "11:00", b.Slots[1].EndTime)
}

func TestBuilder_SetSlotType(t *testing.T) {
	b := NewTemplateBuilder("Jadwal", "08:00")
	require.NoError(t, b.AddSlot(m.SlotPeriod))
	require.NoError(t, b.AddSlot(m.SlotPeriod))
	require.NoError(t, b.AddSlot(m.SlotPeriod))

	// period tengah jadi lunch break: label kanonik + renumber sisanya
	require.NoError(t, b.SetSlotType(1, m.SlotLunchBreak))
	assert.Equal(t, "Period 1", b.Slots[0].Label)
	assert.Equal(t, "Lunch Break", b.Slots[1].Label)
	assert.Equal(t, "Period 2", b.Slots[2].Label)

	// balik lagi jadi period: masuk hitungan nomor
	require.NoError(t, b.SetSlotType(1, m.SlotPeriod))
	assert.Equal(t, "Period 2", b.Slots[1].Label)
	assert.Equal(t, "Period 3", b.Slots[2].Label)

	assert.Error(t, b.SetSlotType(9, m.SlotPeriod))
}

func TestBuilder_SetSlotDurationRecomputes(t *testing.T) {
	b := NewTemplateBuilder("Jadwal", "08:00")
	require.NoError(t, b.AddSlot(m.SlotPeriod))
	require.NoError(t, b.AddSlot(m.SlotPeriod))

	require.NoError(t, b.SetSlotDuration(0, 60))
	assert.Equal(t, "09:00", b.Slots[0].EndTime)
	assert.Equal(t, "09:00", b.Slots[1].StartTime)
}

func TestBuilder_RemoveSlotRenumbers(t *testing.T) {
	b := NewTemplateBuilder("Jadwal", "08:00")
	require.NoError(t, b.AddSlot(m.SlotPeriod))
	require.NoError(t, b.AddSlot(m.SlotPeriod))
	require.NoError(t, b.AddSlot(m.SlotShortBreak))
	require.NoError(t, b.AddSlot(m.SlotPeriod))

	require.NoError(t, b.RemoveSlot(1))

	// Period 1..N rapat tanpa lubang
	require.Len(t, b.Slots, 3)
	assert.Equal(t, "Period 1", b.Slots[0].Label)
	assert.Equal(t, "Short Break", b.Slots[1].Label)
	assert.Equal(t, "Period 2", b.Slots[2].Label)

	// jam ikut bergeser
	assert.Equal(t, "08:45", b.Slots[1].StartTime)
}

func TestBuilder_MoveSlot(t *testing.T) {
	b := NewTemplateBuilder("Jadwal", "08:00")
	require.NoError(t, b.AddSlot(m.SlotPeriod))
	require.NoError(t, b.AddSlot(m.SlotShortBreak))

	// no-op di ujung list
	require.NoError(t, b.MoveSlot(0, -1))
	assert.Equal(t, m.SlotPeriod, b.Slots[0].Type)
	require.NoError(t, b.MoveSlot(1, +1))
	assert.Equal(t, m.SlotShortBreak, b.Slots[1].Type)

	// tukar + recompute
	require.NoError(t, b.MoveSlot(0, +1))
	assert.Equal(t, m.SlotShortBreak, b.Slots[0].Type)
	assert.Equal(t, "08:00", b.Slots[0].StartTime)
	assert.Equal(t, "08:10", b.Slots[0].EndTime)
	assert.Equal(t, "08:10", b.Slots[1].StartTime)
}

func TestBuilder_ToggleDay(t *testing.T) {
	b := NewTemplateBuilder("Jadwal", "08:00")
	assert.False(t, b.HasActiveDay())

	require.NoError(t, b.ToggleDay(0))
	require.NoError(t, b.ToggleDay(4))
	assert.True(t, b.ActiveDays[0])
	assert.True(t, b.ActiveDays[4])
	assert.True(t, b.HasActiveDay())

	require.NoError(t, b.ToggleDay(4))
	assert.False(t, b.ActiveDays[4])

	assert.Error(t, b.ToggleDay(-1))
	assert.Error(t, b.ToggleDay(m.WeekdayCount))
}
