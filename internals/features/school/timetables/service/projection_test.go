// file: internals/features/school/timetables/service/projection_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	submodel "schoolku_backend/internals/features/school/academics/subjects/model"
	tchmodel "schoolku_backend/internals/features/school/academics/teachers/model"
)

func TestBuildClassView(t *testing.T) {
	f := newGridFixture(t)
	ctx := context.Background()

	// directory: satu mapel + satu guru yang mengampu mapel itu
	mathID := uuid.New()
	teacherID := uuid.New()
	f.store.subjects = []submodel.SubjectModel{{
		SubjectID:       mathID,
		SubjectSchoolID: f.scope.SchoolID,
		SubjectName:     "Mathematics",
	}}
	f.store.teachers = []tchmodel.SchoolTeacherModel{{
		SchoolTeacherID:       teacherID,
		SchoolTeacherSchoolID: f.scope.SchoolID,
		SchoolTeacherName:     "Bu Sari",
	}}
	f.store.teacherSubjects = []tchmodel.TeacherSubjectModel{{
		TeacherSubjectSchoolID:  f.scope.SchoolID,
		TeacherSubjectSessionID: f.store.session.AcademicSessionID,
		TeacherSubjectTeacherID: teacherID,
		TeacherSubjectSubjectID: mathID,
	}}

	// isi satu sel: Senin × Period 1
	g := f.loadGrid(t)
	_, err := g.Assign(ctx, f.saved.Days[0].TimetableDayID, f.saved.Slots[0].TimetableSlotID, &mathID, &teacherID)
	require.NoError(t, err)

	view, err := BuildClassView(ctx, f.store, f.store, f.scope, f.sectionID)
	require.NoError(t, err)

	assert.Equal(t, f.saved.Template.TimetableID, view.TimetableID)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, view.ActiveDays)

	// baris mengikuti urutan slot: period, break, period
	require.Len(t, view.Rows, 3)

	p1 := view.Rows[0]
	assert.Equal(t, "Period 1", p1.SlotLabel)
	assert.Equal(t, "8:00 AM", p1.StartTime)
	assert.Equal(t, "8:45 AM", p1.EndTime)
	require.Len(t, p1.Cells, 5) // satu sel per hari aktif

	// sel Senin terisi: nama mapel + label guru "Nama (Mapel)"
	monday := p1.Cells[0]
	assert.Equal(t, "Monday", monday.DayName)
	assert.True(t, monday.Assigned)
	assert.Equal(t, "Mathematics", monday.SubjectName)
	assert.Equal(t, "Bu Sari (Mathematics)", monday.TeacherName)

	// sisa sel period belum di-assign
	for _, cell := range p1.Cells[1:] {
		assert.False(t, cell.Assigned)
		assert.Equal(t, NotAssignedLabel, cell.SubjectName)
		assert.Empty(t, cell.TeacherName)
	}

	// break = placeholder tetap tanpa sel per hari
	br := view.Rows[1]
	assert.True(t, br.IsBreak)
	assert.Equal(t, "Short Break", br.SlotLabel)
	assert.Equal(t, "8:45 AM", br.StartTime)
	assert.Empty(t, br.Cells)

	p2 := view.Rows[2]
	assert.Equal(t, "Period 2", p2.SlotLabel)
	for _, cell := range p2.Cells {
		assert.Equal(t, NotAssignedLabel, cell.SubjectName)
	}
}

func TestBuildClassView_TeacherWithoutSubjectIndex(t *testing.T) {
	f := newGridFixture(t)
	ctx := context.Background()

	teacherID := uuid.New()
	f.store.teachers = []tchmodel.SchoolTeacherModel{{
		SchoolTeacherID:       teacherID,
		SchoolTeacherSchoolID: f.scope.SchoolID,
		SchoolTeacherName:     "Pak Budi",
	}}

	g := f.loadGrid(t)
	_, err := g.Assign(ctx, f.saved.Days[0].TimetableDayID, f.saved.Slots[0].TimetableSlotID, nil, &teacherID)
	require.NoError(t, err)

	view, err := BuildClassView(ctx, f.store, f.store, f.scope, f.sectionID)
	require.NoError(t, err)

	// guru tanpa index mapel: label nama polos, sel tetap Not Assigned
	cell := view.Rows[0].Cells[0]
	assert.Equal(t, "Pak Budi", cell.TeacherName)
	assert.False(t, cell.Assigned)
	assert.Equal(t, NotAssignedLabel, cell.SubjectName)
}

func TestBuildClassView_NoTemplate(t *testing.T) {
	schoolID := uuid.New()
	store := newSpyStore().withActiveSession(schoolID)

	_, err := BuildClassView(context.Background(), store, store,
		TenantScope{SchoolID: schoolID}, uuid.New())
	require.ErrorIs(t, err, ErrNoTemplate)
}
