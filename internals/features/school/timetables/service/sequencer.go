// file: internals/features/school/timetables/service/sequencer.go
package service

import (
	"fmt"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/timetables/model"
)

// SlotDraft = satu posisi di urutan harian sebelum/selepas disimpan.
// SlotID baru terisi setelah save struktur berhasil.
type SlotDraft struct {
	SlotID          *uuid.UUID     `json:"slot_id,omitempty"`
	Order           int            `json:"order"` // 1-based, rapat
	Type            m.SlotTypeEnum `json:"type"`
	Label           string         `json:"label"`
	DurationMinutes int            `json:"duration_minutes"`
	StartTime       string         `json:"start_time"` // "HH:MM", turunan
	EndTime         string         `json:"end_time"`   // "HH:MM", turunan
}

// Tabel default per tipe slot (durasi menit + label kanonik).
// Label period di-generate dinamis: "Period N".
var slotDefaults = map[m.SlotTypeEnum]struct {
	DurationMinutes int
	Label           string
}{
	m.SlotPeriod:     {45, ""},
	m.SlotShortBreak: {10, "Short Break"},
	m.SlotLunchBreak: {30, "Lunch Break"},
}

func periodLabel(n int) string { return fmt.Sprintf("Period %d", n) }

// Recompute menghitung ulang start/end tiap slot dari jam masuk sekolah:
// kursor mulai di startTime, tiap slot start=kursor, end=kursor+durasi.
// WAJIB dipanggil setelah mutasi apa pun yang mengubah urutan, durasi,
// atau jam masuk — kalau tidak, jam turunan jadi basi.
func Recompute(slots []SlotDraft, startTime string) []SlotDraft {
	cursor := startTime
	for i := range slots {
		slots[i].Order = i + 1
		slots[i].StartTime = cursor
		slots[i].EndTime = AddMinutes(cursor, slots[i].DurationMinutes)
		cursor = slots[i].EndTime
	}
	return slots
}

// RenumberPeriods melabeli ulang slot bertipe period jadi
// "Period 1, Period 2, ..." tanpa lubang, urut posisi.
func RenumberPeriods(slots []SlotDraft) {
	n := 0
	for i := range slots {
		if slots[i].Type == m.SlotPeriod {
			n++
			slots[i].Label = periodLabel(n)
		}
	}
}
