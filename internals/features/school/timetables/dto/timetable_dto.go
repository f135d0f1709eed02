// internals/features/school/timetables/dto/timetable_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/timetables/model"
	svc "schoolku_backend/internals/features/school/timetables/service"
)

/* =========================================================
   1) REQUESTS (struktur)
   ========================================================= */

type SlotDraftRequest struct {
	TimetableSlotType            string  `json:"timetable_slot_type" validate:"required,oneof=period short_break lunch_break"`
	TimetableSlotLabel           *string `json:"timetable_slot_label" validate:"omitempty,max=80"`
	TimetableSlotDurationMinutes *int    `json:"timetable_slot_duration_minutes" validate:"omitempty,min=5,max=120"`
}

// SaveStructureRequest = draft builder utuh dari klien; waktu slot tidak
// diterima dari luar, selalu hasil recompute server.
type SaveStructureRequest struct {
	TimetableName       string             `json:"timetable_name" validate:"required,max=120"`
	TimetableStartTime  string             `json:"timetable_start_time" validate:"required,datetime=15:04"`
	TimetableActiveDays []int              `json:"timetable_active_days" validate:"omitempty,unique,dive,min=0,max=5"`
	TimetableSlots      []SlotDraftRequest `json:"timetable_slots" validate:"omitempty,dive"`
}

// ToBuilder memutar ulang draft lewat operasi builder supaya default label
// (penomoran period, label break kanonik) dan recompute jalan persis sama
// dengan alur edit interaktif.
func (r SaveStructureRequest) ToBuilder() (*svc.TemplateBuilder, error) {
	b := svc.NewTemplateBuilder(r.TimetableName, r.TimetableStartTime)
	// ToggleDay membalik flag; index duplikat akan mematikan hari lagi,
	// jadi dedupe dulu (validator sudah menolak, ini jaring kedua)
	seen := map[int]bool{}
	for _, d := range r.TimetableActiveDays {
		if seen[d] {
			continue
		}
		seen[d] = true
		if err := b.ToggleDay(d); err != nil {
			return nil, err
		}
	}
	for i, s := range r.TimetableSlots {
		if err := b.AddSlot(model.SlotTypeEnum(s.TimetableSlotType)); err != nil {
			return nil, err
		}
		if s.TimetableSlotLabel != nil && strings.TrimSpace(*s.TimetableSlotLabel) != "" {
			if err := b.SetSlotLabel(i, *s.TimetableSlotLabel); err != nil {
				return nil, err
			}
		}
		if s.TimetableSlotDurationMinutes != nil {
			if err := b.SetSlotDuration(i, *s.TimetableSlotDurationMinutes); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

/* =========================================================
   2) RESPONSES (struktur)
   ========================================================= */

type SlotResponse struct {
	TimetableSlotID              uuid.UUID          `json:"timetable_slot_id"`
	TimetableSlotOrder           int                `json:"timetable_slot_order"`
	TimetableSlotType            model.SlotTypeEnum `json:"timetable_slot_type"`
	TimetableSlotLabel           string             `json:"timetable_slot_label"`
	TimetableSlotDurationMinutes int                `json:"timetable_slot_duration_minutes"`
	TimetableSlotStartTime       string             `json:"timetable_slot_start_time"` // "HH:MM"
	TimetableSlotEndTime         string             `json:"timetable_slot_end_time"`
	TimetableSlotStartTime12h    string             `json:"timetable_slot_start_time_12h"`
	TimetableSlotEndTime12h      string             `json:"timetable_slot_end_time_12h"`
}

type DayResponse struct {
	TimetableDayID       uuid.UUID `json:"timetable_day_id"`
	TimetableDayIndex    int       `json:"timetable_day_index"`
	TimetableDayName     string    `json:"timetable_day_name"`
	TimetableDayIsActive bool      `json:"timetable_day_is_active"`
}

type StructureResponse struct {
	TimetableID        uuid.UUID      `json:"timetable_id"`
	TimetableName      string         `json:"timetable_name"`
	TimetableStartTime string         `json:"timetable_start_time"`
	TimetableIsActive  bool           `json:"timetable_is_active"`
	Days               []DayResponse  `json:"days"`
	Slots              []SlotResponse `json:"slots"`
}

func FromSavedStructure(st *svc.SavedStructure) StructureResponse {
	out := StructureResponse{
		TimetableID:        st.Template.TimetableID,
		TimetableName:      st.Template.TimetableName,
		TimetableStartTime: st.Template.TimetableStartTime.Clock(),
		TimetableIsActive:  st.Template.TimetableIsActive,
	}
	for _, d := range st.Days {
		out.Days = append(out.Days, DayResponse{
			TimetableDayID:       d.TimetableDayID,
			TimetableDayIndex:    d.TimetableDayIndex,
			TimetableDayName:     model.WeekdayNames[d.TimetableDayIndex],
			TimetableDayIsActive: d.TimetableDayIsActive,
		})
	}
	for _, s := range st.Slots {
		start := s.TimetableSlotStartTime.Clock()
		end := s.TimetableSlotEndTime.Clock()
		out.Slots = append(out.Slots, SlotResponse{
			TimetableSlotID:              s.TimetableSlotID,
			TimetableSlotOrder:           s.TimetableSlotOrder,
			TimetableSlotType:            s.TimetableSlotType,
			TimetableSlotLabel:           s.TimetableSlotLabel,
			TimetableSlotDurationMinutes: s.TimetableSlotDurationMinutes,
			TimetableSlotStartTime:       start,
			TimetableSlotEndTime:         end,
			TimetableSlotStartTime12h:    svc.Format12h(start),
			TimetableSlotEndTime12h:      svc.Format12h(end),
		})
	}
	return out
}

// PreviewResponse: hasil recompute draft tanpa menyentuh store.
type PreviewResponse struct {
	TimetableStartTime string             `json:"timetable_start_time"`
	Slots              []PreviewSlot      `json:"slots"`
}

type PreviewSlot struct {
	Order           int                `json:"order"`
	Type            model.SlotTypeEnum `json:"type"`
	Label           string             `json:"label"`
	DurationMinutes int                `json:"duration_minutes"`
	StartTime       string             `json:"start_time"`
	EndTime         string             `json:"end_time"`
	StartTime12h    string             `json:"start_time_12h"`
	EndTime12h      string             `json:"end_time_12h"`
}

func FromBuilderPreview(b *svc.TemplateBuilder) PreviewResponse {
	out := PreviewResponse{TimetableStartTime: b.StartTime}
	for _, s := range b.Slots {
		out.Slots = append(out.Slots, PreviewSlot{
			Order:           s.Order,
			Type:            s.Type,
			Label:           s.Label,
			DurationMinutes: s.DurationMinutes,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			StartTime12h:    svc.Format12h(s.StartTime),
			EndTime12h:      svc.Format12h(s.EndTime),
		})
	}
	return out
}
