// file: internals/features/school/timetables/service/clock.go
package service

import (
	"fmt"
	"strings"
)

const minutesPerDay = 24 * 60

// parseClock: "HH:MM" → menit sejak 00:00. Input di luar format → 0, false.
func parseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func formatClock(mins int) string {
	mins %= minutesPerDay
	if mins < 0 {
		mins += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// AddMinutes menambah n menit ke jam "HH:MM", wrap modulo 24 jam.
// Tidak ada carry ke hitungan hari.
func AddMinutes(clock string, n int) string {
	base, ok := parseClock(clock)
	if !ok {
		return clock
	}
	return formatClock(base + n)
}

// Format12h mengubah "HH:MM" (24 jam) jadi "h:mm AM/PM".
// String kosong dikembalikan apa adanya (sel kosong di UI).
func Format12h(clock string) string {
	if strings.TrimSpace(clock) == "" {
		return ""
	}
	mins, ok := parseClock(clock)
	if !ok {
		return clock
	}
	h := mins / 60
	m := mins % 60
	suffix := "AM"
	switch {
	case h == 0:
		h = 12
	case h == 12:
		suffix = "PM"
	case h > 12:
		h -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, m, suffix)
}
