// file: internals/features/school/timetables/service/builder.go
package service

import (
	"fmt"
	"strings"

	m "schoolku_backend/internals/features/school/timetables/model"
)

// TemplateBuilder = model in-memory struktur harian sebuah template:
// hari aktif + daftar slot terurut. Validasi hanya terjadi saat save;
// builder boleh ada di state transien apa pun (0 slot, 0 hari aktif).
type TemplateBuilder struct {
	Name       string
	StartTime  string // "HH:MM"
	ActiveDays [m.WeekdayCount]bool
	Slots      []SlotDraft
}

func NewTemplateBuilder(name, startTime string) *TemplateBuilder {
	return &TemplateBuilder{
		Name:      strings.TrimSpace(name),
		StartTime: strings.TrimSpace(startTime),
	}
}

func (b *TemplateBuilder) recompute() {
	b.Slots = Recompute(b.Slots, b.StartTime)
}

// SetStartTime mengganti jam masuk sekolah; semua jam slot ikut bergeser.
func (b *TemplateBuilder) SetStartTime(startTime string) {
	b.StartTime = strings.TrimSpace(startTime)
	b.recompute()
}

// AddSlot menambah slot baru di ekor dengan durasi & label default tipenya.
// Label period dinomori otomatis dari jumlah period yang sudah ada.
func (b *TemplateBuilder) AddSlot(t m.SlotTypeEnum) error {
	def, ok := slotDefaults[t]
	if !ok {
		return fmt.Errorf("slot type tidak dikenal: %q", t)
	}
	label := def.Label
	if t == m.SlotPeriod {
		n := 0
		for _, s := range b.Slots {
			if s.Type == m.SlotPeriod {
				n++
			}
		}
		label = periodLabel(n + 1)
	}
	b.Slots = append(b.Slots, SlotDraft{
		Type:            t,
		Label:           label,
		DurationMinutes: def.DurationMinutes,
	})
	b.recompute()
	return nil
}

func (b *TemplateBuilder) checkIndex(i int) error {
	if i < 0 || i >= len(b.Slots) {
		return fmt.Errorf("slot index %d di luar jangkauan (len=%d)", i, len(b.Slots))
	}
	return nil
}

// SetSlotType mengganti tipe satu slot. Pindah ke tipe break memakai label
// kanonik break-nya; pindah ke period dinomori ulang bersama period lain.
func (b *TemplateBuilder) SetSlotType(i int, t m.SlotTypeEnum) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	def, ok := slotDefaults[t]
	if !ok {
		return fmt.Errorf("slot type tidak dikenal: %q", t)
	}
	b.Slots[i].Type = t
	if t.IsBreak() {
		b.Slots[i].Label = def.Label
	}
	RenumberPeriods(b.Slots)
	b.recompute()
	return nil
}

func (b *TemplateBuilder) SetSlotLabel(i int, label string) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.Slots[i].Label = strings.TrimSpace(label)
	return nil
}

func (b *TemplateBuilder) SetSlotDuration(i int, minutes int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.Slots[i].DurationMinutes = minutes
	b.recompute()
	return nil
}

// RemoveSlot menghapus satu slot lalu menomori ulang period yang tersisa
// mulai dari 1.
func (b *TemplateBuilder) RemoveSlot(i int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.Slots = append(b.Slots[:i], b.Slots[i+1:]...)
	RenumberPeriods(b.Slots)
	b.recompute()
	return nil
}

// MoveSlot menukar slot dengan tetangganya. dir: -1 naik, +1 turun.
// No-op di kedua ujung list.
func (b *TemplateBuilder) MoveSlot(i, dir int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	j := i + dir
	if j < 0 || j >= len(b.Slots) {
		return nil
	}
	b.Slots[i], b.Slots[j] = b.Slots[j], b.Slots[i]
	b.recompute()
	return nil
}

// ToggleDay membalik flag aktif satu hari (0..5).
func (b *TemplateBuilder) ToggleDay(i int) error {
	if i < 0 || i >= m.WeekdayCount {
		return fmt.Errorf("day index %d di luar jangkauan 0..%d", i, m.WeekdayCount-1)
	}
	b.ActiveDays[i] = !b.ActiveDays[i]
	return nil
}

func (b *TemplateBuilder) HasActiveDay() bool {
	for _, on := range b.ActiveDays {
		if on {
			return true
		}
	}
	return false
}
