// file: internals/features/school/timetables/service/errors.go
package service

import "errors"

// ValidationError = prasyarat save yang belum terpenuhi; belum ada
// tulisan apa pun ke store saat error ini keluar. Bisa diperbaiki user.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

var (
	ErrNoActiveSession = &ValidationError{Msg: "belum ada academic session aktif"}
	ErrNoSlots         = &ValidationError{Msg: "struktur harus punya minimal satu slot"}
	ErrNoActiveDays    = &ValidationError{Msg: "minimal satu hari harus aktif"}
	ErrBreakSlotEntry  = &ValidationError{Msg: "slot break tidak bisa diberi entry; pilih slot period"}
)

// AsValidationError: helper errors.As untuk mapping di controller.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// ErrStaleReference: assign memakai (day_id, slot_id) dari state template
// yang lebih tua daripada save terakhir. Ditolak supaya tidak lahir entry
// yatim yang menunjuk baris day/slot yang sudah diganti.
var ErrStaleReference = errors.New("day/slot reference sudah basi; muat ulang struktur timetable")

// ErrNoTemplate: belum ada template tersimpan untuk session ini.
var ErrNoTemplate = errors.New("belum ada timetable tersimpan untuk session aktif")
