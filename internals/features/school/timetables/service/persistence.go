// file: internals/features/school/timetables/service/persistence.go
package service

import (
	"context"
	"fmt"

	"schoolku_backend/internals/helpers/dbtime"

	m "schoolku_backend/internals/features/school/timetables/model"
)

const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 120
)

// SavedStructure = hasil save: template + baris day/slot dengan ID yang
// baru diterbitkan store. ID inilah yang boleh dipakai AssignmentGrid;
// ID dari state sebelum save terakhir sudah tidak berlaku.
type SavedStructure struct {
	Template m.TimetableModel      `json:"template"`
	Days     []m.TimetableDayModel `json:"days"`
	Slots    []m.TimetableSlotModel `json:"slots"`
}

func validateBuilder(b *TemplateBuilder) error {
	if len(b.Slots) == 0 {
		return ErrNoSlots
	}
	if !b.HasActiveDay() {
		return ErrNoActiveDays
	}
	if _, ok := parseClock(b.StartTime); !ok {
		return &ValidationError{Msg: fmt.Sprintf("jam masuk %q bukan format HH:MM", b.StartTime)}
	}
	for i, s := range b.Slots {
		if !s.Type.Valid() {
			return &ValidationError{Msg: fmt.Sprintf("slot %d: tipe %q tidak dikenal", i+1, s.Type)}
		}
		if s.DurationMinutes < MinSlotDurationMinutes || s.DurationMinutes > MaxSlotDurationMinutes {
			return &ValidationError{Msg: fmt.Sprintf("slot %d: durasi %d menit di luar %d..%d",
				i+1, s.DurationMinutes, MinSlotDurationMinutes, MaxSlotDurationMinutes)}
		}
	}
	return nil
}

// SaveStructure menyimpan struktur builder dengan strategi replace-on-save:
// upsert baris template, lalu enam baris day dan semua baris slot dihapus
// dan ditulis ulang. Seluruh urutan jalan dalam SATU transaksi — gagal di
// tengah berarti tidak ada yang berubah.
//
// Entry lama ikut dihapus saat resave (kebijakan cascade): identifier
// day/slot lamanya pasti mati, jadi mempertahankan entry hanya menyisakan
// baris yatim.
//
// Prasyarat dicek sebelum ada tulisan apa pun: session aktif ada, slot
// tidak kosong, minimal satu hari aktif. Pelanggaran → *ValidationError.
func SaveStructure(ctx context.Context, store Store, scope TenantScope, b *TemplateBuilder) (*SavedStructure, error) {
	sess, err := store.FindActiveSession(ctx, scope.SchoolID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoActiveSession
	}
	if err := validateBuilder(b); err != nil {
		return nil, err
	}
	scope.SessionID = sess.AcademicSessionID

	// jam turunan harus segar sebelum dipersist; idempoten jadi aman diulang
	b.Slots = Recompute(b.Slots, b.StartTime)

	startTod, err := dbtime.Parse(b.StartTime)
	if err != nil {
		return nil, &ValidationError{Msg: fmt.Sprintf("jam masuk %q bukan format HH:MM", b.StartTime)}
	}

	var out SavedStructure
	err = store.WithinTx(ctx, func(tx Store) error {
		// 1) upsert template
		tpl, err := tx.FindTemplate(ctx, scope)
		if err != nil {
			return err
		}
		resave := tpl != nil
		if !resave {
			tpl = &m.TimetableModel{
				TimetableSchoolID:  scope.SchoolID,
				TimetableSessionID: scope.SessionID,
				TimetableName:      b.Name,
				TimetableStartTime: startTod,
				TimetableIsActive:  true,
			}
			if err := tx.InsertTemplate(ctx, tpl); err != nil {
				return err
			}
		} else {
			tpl.TimetableName = b.Name
			tpl.TimetableStartTime = startTod
			if err := tx.UpdateTemplate(ctx, tpl); err != nil {
				return err
			}
		}

		// 2) entry lama menunjuk day/slot yang sebentar lagi diganti → cascade
		if resave {
			if err := tx.DeleteEntriesByTimetable(ctx, tpl.TimetableID); err != nil {
				return err
			}
		}

		// 3) replace enam baris day
		if err := tx.DeleteDays(ctx, tpl.TimetableID); err != nil {
			return err
		}
		days := make([]m.TimetableDayModel, 0, m.WeekdayCount)
		for i := 0; i < m.WeekdayCount; i++ {
			days = append(days, m.TimetableDayModel{
				TimetableDayTimetableID: tpl.TimetableID,
				TimetableDaySchoolID:    scope.SchoolID,
				TimetableDayIndex:       i,
				TimetableDayIsActive:    b.ActiveDays[i],
			})
		}
		days, err = tx.InsertDays(ctx, days)
		if err != nil {
			return err
		}

		// 4) replace baris slot, urut builder
		if err := tx.DeleteSlots(ctx, tpl.TimetableID); err != nil {
			return err
		}
		slots := make([]m.TimetableSlotModel, 0, len(b.Slots))
		for i, d := range b.Slots {
			st, err := dbtime.Parse(d.StartTime)
			if err != nil {
				return err
			}
			en, err := dbtime.Parse(d.EndTime)
			if err != nil {
				return err
			}
			slots = append(slots, m.TimetableSlotModel{
				TimetableSlotTimetableID:     tpl.TimetableID,
				TimetableSlotSchoolID:        scope.SchoolID,
				TimetableSlotOrder:           i + 1,
				TimetableSlotType:            d.Type,
				TimetableSlotLabel:           d.Label,
				TimetableSlotDurationMinutes: d.DurationMinutes,
				TimetableSlotStartTime:       st,
				TimetableSlotEndTime:         en,
			})
		}
		slots, err = tx.InsertSlots(ctx, slots)
		if err != nil {
			return err
		}

		out = SavedStructure{Template: *tpl, Days: days, Slots: slots}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 5) refresh draft builder dengan ID yang baru terbit supaya UI &
	// AssignmentGrid langsung bisa mengalamatinya
	for i := range b.Slots {
		id := out.Slots[i].TimetableSlotID
		b.Slots[i].SlotID = &id
	}

	return &out, nil
}

// LoadActiveStructure membaca template aktif (session aktif) berikut
// day & slot-nya. Belum ada template → ErrNoTemplate.
func LoadActiveStructure(ctx context.Context, store Store, scope TenantScope) (*SavedStructure, error) {
	sess, err := store.FindActiveSession(ctx, scope.SchoolID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoActiveSession
	}
	scope.SessionID = sess.AcademicSessionID

	tpl, err := store.FindTemplate(ctx, scope)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, ErrNoTemplate
	}

	days, err := store.ListDays(ctx, tpl.TimetableID)
	if err != nil {
		return nil, err
	}
	slots, err := store.ListSlots(ctx, tpl.TimetableID)
	if err != nil {
		return nil, err
	}
	return &SavedStructure{Template: *tpl, Days: days, Slots: slots}, nil
}
