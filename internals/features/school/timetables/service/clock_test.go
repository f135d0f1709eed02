// file: internals/features/school/timetables/service/clock_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddMinutes(t *testing.T) {
	assert.Equal(t, "08:45", AddMinutes("08:00", 45))
	assert.Equal(t, "08:55", AddMinutes("08:45", 10))
	assert.Equal(t, "09:00", AddMinutes("08:00", 60))

	// wrap modulo 24 jam, tanpa carry hari
	assert.Equal(t, "00:15", AddMinutes("23:30", 45))
	assert.Equal(t, "00:00", AddMinutes("23:00", 60))
	assert.Equal(t, "23:30", AddMinutes("00:00", -30))

	// input rusak dikembalikan apa adanya
	assert.Equal(t, "8:00", AddMinutes("8:00", 45))
	assert.Equal(t, "abc", AddMinutes("abc", 45))
}

func TestParseClock(t *testing.T) {
	mins, ok := parseClock("07:30")
	assert.True(t, ok)
	assert.Equal(t, 7*60+30, mins)

	_, ok = parseClock("24:00")
	assert.False(t, ok)
	_, ok = parseClock("12:60")
	assert.False(t, ok)
	_, ok = parseClock("1200")
	assert.False(t, ok)
	_, ok = parseClock("")
	assert.False(t, ok)
}

func TestFormat12h(t *testing.T) {
	assert.Equal(t, "8:00 AM", Format12h("08:00"))
	assert.Equal(t, "12:30 PM", Format12h("12:30"))
	assert.Equal(t, "1:05 PM", Format12h("13:05"))
	assert.Equal(t, "11:59 PM", Format12h("23:59"))
	assert.Equal(t, "12:00 AM", Format12h("00:00"))

	// string kosong = sel kosong di UI
	assert.Equal(t, "", Format12h(""))
	assert.Equal(t, "", Format12h("   "))
}
