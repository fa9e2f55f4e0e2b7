package dbtime

import (
	"time"

	"skm_backend/internals/configs"
)

// MonthBounds: [awal bulan, awal bulan berikutnya) dalam zona loc, dikembalikan dalam UTC
// karena kolom timestamp disimpan UTC.
func MonthBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = configs.Location()
	}
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)
	return start.UTC(), end.UTC()
}

// StartOfDay memotong t ke 00:00 di zona loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = configs.Location()
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// TrailingDaysStart: awal hari (zona loc) dari n hari terakhir termasuk hari ini.
func TrailingDaysStart(now time.Time, days int, loc *time.Location) time.Time {
	return StartOfDay(now, loc).AddDate(0, 0, -(days - 1))
}

// FormatLongID: "19 Oktober 2026" untuk subjek email dan judul laporan.
func FormatLongID(t time.Time) string {
	return t.Format("2") + " " + monthsID[t.Month()-1] + " " + t.Format("2006")
}

var monthsID = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}
