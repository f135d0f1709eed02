// file: internals/features/school/timetables/service/persistence_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "schoolku_backend/internals/features/school/timetables/model"
)

func buildValidDraft(t *testing.T) *TemplateBuilder {
	t.Helper()
	b := NewTemplateBuilder("Jadwal Reguler", "08:00")
	require.NoError(t, b.AddSlot(m.SlotPeriod))
	require.NoError(t, b.AddSlot(m.SlotShortBreak))
	require.NoError(t, b.AddSlot(m.SlotPeriod))
	for i := 0; i < 5; i++ { // Senin..Jumat aktif
		require.NoError(t, b.ToggleDay(i))
	}
	return b
}

func TestSaveStructure_NoActiveSession(t *testing.T) {
	store := newSpyStore() // tanpa session
	scope := TenantScope{SchoolID: uuid.New()}

	_, err := SaveStructure(context.Background(), store, scope, buildValidDraft(t))
	require.ErrorIs(t, err, ErrNoActiveSession)
	assert.Zero(t, store.writes)
}

func TestSaveStructure_ValidationRejectsBeforeAnyWrite(t *testing.T) {
	schoolID := uuid.New()

	t.Run("tanpa slot", func(t *testing.T) {
		store := newSpyStore().withActiveSession(schoolID)
		b := NewTemplateBuilder("Jadwal", "08:00")
		require.NoError(t, b.ToggleDay(0))

		_, err := SaveStructure(context.Background(), store, TenantScope{SchoolID: schoolID}, b)
		require.ErrorIs(t, err, ErrNoSlots)
		assert.Zero(t, store.writes)
	})

	t.Run("tanpa hari aktif", func(t *testing.T) {
		store := newSpyStore().withActiveSession(schoolID)
		b := NewTemplateBuilder("Jadwal", "08:00")
		require.NoError(t, b.AddSlot(m.SlotPeriod))

		_, err := SaveStructure(context.Background(), store, TenantScope{SchoolID: schoolID}, b)
		require.ErrorIs(t, err, ErrNoActiveDays)
		assert.Zero(t, store.writes)
	})

	t.Run("jam masuk rusak", func(t *testing.T) {
		store := newSpyStore().withActiveSession(schoolID)
		b := buildValidDraft(t)
		b.StartTime = "25:99"

		_, err := SaveStructure(context.Background(), store, TenantScope{SchoolID: schoolID}, b)
		_, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Zero(t, store.writes)
	})

	t.Run("durasi di luar batas", func(t *testing.T) {
		store := newSpyStore().withActiveSession(schoolID)
		b := buildValidDraft(t)
		require.NoError(t, b.SetSlotDuration(0, MaxSlotDurationMinutes+1))

		_, err := SaveStructure(context.Background(), store, TenantScope{SchoolID: schoolID}, b)
		_, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Zero(t, store.writes)
	})
}

func TestSaveStructure_FirstSave(t *testing.T) {
	schoolID := uuid.New()
	store := newSpyStore().withActiveSession(schoolID)
	b := buildValidDraft(t)

	saved, err := SaveStructure(context.Background(), store, TenantScope{SchoolID: schoolID}, b)
	require.NoError(t, err)

	// template aktif, scoped ke session aktif
	assert.True(t, saved.Template.TimetableIsActive)
	assert.Equal(t, store.session.AcademicSessionID, saved.Template.TimetableSessionID)
	assert.Equal(t, "08:00", saved.Template.TimetableStartTime.Clock())

	// enam baris day, flag aktif mengikuti builder
	require.Len(t, saved.Days, m.WeekdayCount)
	for i, d := range saved.Days {
		assert.Equal(t, i, d.TimetableDayIndex)
		assert.Equal(t, i < 5, d.TimetableDayIsActive)
	}

	// slot tersimpan urut builder, jam turunan ikut
	require.Len(t, saved.Slots, 3)
	assert.Equal(t, 1, saved.Slots[0].TimetableSlotOrder)
	assert.Equal(t, 3, saved.Slots[2].TimetableSlotOrder)
	assert.Equal(t, "08:55", saved.Slots[2].TimetableSlotStartTime.Clock())
	assert.Equal(t, "09:40", saved.Slots[2].TimetableSlotEndTime.Clock())

	// draft builder di-refresh dengan ID terbitan store
	for i := range b.Slots {
		require.NotNil(t, b.Slots[i].SlotID)
		assert.Equal(t, saved.Slots[i].TimetableSlotID, *b.Slots[i].SlotID)
	}
}

func TestSaveStructure_ResaveCascadesEntries(t *testing.T) {
	schoolID := uuid.New()
	store := newSpyStore().withActiveSession(schoolID)
	b := buildValidDraft(t)

	first, err := SaveStructure(context.Background(), store, TenantScope{SchoolID: schoolID}, b)
	require.NoError(t, err)

	// simulasikan entry yang sudah ditempel ke struktur lama
	store.entries = append(store.entries, m.TimetableEntryModel{
		TimetableEntryID:             uuid.New(),
		TimetableEntryTimetableID:    first.Template.TimetableID,
		TimetableEntrySchoolID:       schoolID,
		TimetableEntryDayID:          first.Days[0].TimetableDayID,
		TimetableEntrySlotID:         first.Slots[0].TimetableSlotID,
		TimetableEntryClassSectionID: uuid.New(),
	})

	second, err := SaveStructure(context.Background(), store, TenantScope{SchoolID: schoolID}, b)
	require.NoError(t, err)

	// baris template dipertahankan (update), bukan dibuat baru
	assert.Equal(t, first.Template.TimetableID, second.Template.TimetableID)

	// day & slot diganti total: ID lama mati semua
	oldDayIDs := map[uuid.UUID]bool{}
	for _, d := range first.Days {
		oldDayIDs[d.TimetableDayID] = true
	}
	for _, d := range second.Days {
		assert.False(t, oldDayIDs[d.TimetableDayID])
	}

	// entry lama ikut terhapus (cascade)
	assert.Empty(t, store.entries)
}

func TestSaveStructure_MidSaveFailureLeavesNothing(t *testing.T) {
	schoolID := uuid.New()
	store := newSpyStore().withActiveSession(schoolID)
	store.failInsertSlots = true

	_, err := SaveStructure(context.Background(), store, TenantScope{SchoolID: schoolID}, buildValidDraft(t))
	require.ErrorIs(t, err, errStoreDown)

	// transaksi rollback: tidak ada state parsial
	assert.Nil(t, store.template)
	assert.Empty(t, store.days)
	assert.Empty(t, store.slots)
}

func TestLoadActiveStructure(t *testing.T) {
	schoolID := uuid.New()
	store := newSpyStore().withActiveSession(schoolID)
	scope := TenantScope{SchoolID: schoolID}

	_, err := LoadActiveStructure(context.Background(), store, scope)
	require.ErrorIs(t, err, ErrNoTemplate)

	saved, err := SaveStructure(context.Background(), store, scope, buildValidDraft(t))
	require.NoError(t, err)

	got, err := LoadActiveStructure(context.Background(), store, scope)
	require.NoError(t, err)
	assert.Equal(t, saved.Template.TimetableID, got.Template.TimetableID)
	assert.Len(t, got.Days, m.WeekdayCount)
	assert.Len(t, got.Slots, 3)
}
