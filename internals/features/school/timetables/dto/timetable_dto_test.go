// file: internals/features/school/timetables/dto/timetable_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }

func TestSaveStructureRequest_ToBuilder(t *testing.T) {
	req := SaveStructureRequest{
		TimetableName:       "Jadwal Reguler",
		TimetableStartTime:  "08:00",
		TimetableActiveDays: []int{0, 1, 2, 3, 4},
		TimetableSlots: []SlotDraftRequest{
			{TimetableSlotType: "period"},
			{TimetableSlotType: "short_break"},
			{TimetableSlotType: "period", TimetableSlotDurationMinutes: intptr(60)},
			{TimetableSlotType: "period", TimetableSlotLabel: strptr("Tahfidz")},
		},
	}

	b, err := req.ToBuilder()
	require.NoError(t, err)

	// hari aktif mengikuti index yang dikirim
	for i := 0; i < 5; i++ {
		assert.True(t, b.ActiveDays[i])
	}
	assert.False(t, b.ActiveDays[5])

	// default builder jalan: label period otomatis, break kanonik
	require.Len(t, b.Slots, 4)
	assert.Equal(t, "Period 1", b.Slots[0].Label)
	assert.Equal(t, "Short Break", b.Slots[1].Label)
	assert.Equal(t, 45, b.Slots[0].DurationMinutes)

	// override dari request menang
	assert.Equal(t, 60, b.Slots[2].DurationMinutes)
	assert.Equal(t, "Tahfidz", b.Slots[3].Label)

	// jam turunan sudah dihitung ulang server-side
	assert.Equal(t, "08:55", b.Slots[2].StartTime)
	assert.Equal(t, "09:55", b.Slots[2].EndTime)
	assert.Equal(t, "09:55", b.Slots[3].StartTime)
}

func TestSaveStructureRequest_ToBuilderDedupesActiveDays(t *testing.T) {
	b, err := SaveStructureRequest{
		TimetableName:       "Jadwal",
		TimetableStartTime:  "08:00",
		TimetableActiveDays: []int{0, 0, 3, 3, 3},
	}.ToBuilder()
	require.NoError(t, err)

	// index duplikat tidak boleh men-toggle hari balik jadi nonaktif
	assert.True(t, b.ActiveDays[0])
	assert.True(t, b.ActiveDays[3])
	assert.False(t, b.ActiveDays[1])
}

func TestSaveStructureRequest_ToBuilderRejectsBadInput(t *testing.T) {
	_, err := SaveStructureRequest{
		TimetableName:       "Jadwal",
		TimetableStartTime:  "08:00",
		TimetableActiveDays: []int{7},
	}.ToBuilder()
	assert.Error(t, err)

	_, err = SaveStructureRequest{
		TimetableName:      "Jadwal",
		TimetableStartTime: "08:00",
		TimetableSlots:     []SlotDraftRequest{{TimetableSlotType: "recess"}},
	}.ToBuilder()
	assert.Error(t, err)
}
