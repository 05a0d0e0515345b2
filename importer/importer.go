// Package importer parses the spreadsheets the front office uploads:
// student lists, test schedules and result sheets. Only the first sheet is
// read; row 0 is the header; rows with fewer than the minimum column count
// are dropped.
package importer

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/IshaanAggrawal/InstituteManager/models"
)

var (
	ErrNoSheet = errors.New("spreadsheet has no sheets")
	ErrNoRows  = errors.New("no valid rows in spreadsheet")
)

// Columns expected for each import kind.
const (
	studentMinCols  = 4 // name, roll_no, batch, parent_phone
	scheduleMinCols = 5 // subject, date, time, batch, duration
)

func firstSheetRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoSheet
	}
	return f.GetRows(sheet)
}

// ParseStudents maps rows positionally into students: name, roll number,
// batch, parent phone.
func ParseStudents(r io.Reader) ([]models.Student, error) {
	rows, err := firstSheetRows(r)
	if err != nil {
		return nil, err
	}

	var out []models.Student
	for i, row := range rows {
		if i == 0 || len(row) < studentMinCols {
			continue
		}
		s := models.Student{
			Name:        strings.TrimSpace(row[0]),
			RollNo:      strings.TrimSpace(row[1]),
			Batch:       strings.TrimSpace(row[2]),
			ParentPhone: strings.TrimSpace(row[3]),
		}
		if s.Name == "" || s.RollNo == "" {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, ErrNoRows
	}
	return out, nil
}

// ParseSchedules maps rows positionally into test schedules: subject, date,
// time, batch, duration. Date and time cells may arrive as spreadsheet
// serial numbers and are normalized.
func ParseSchedules(r io.Reader) ([]models.TestSchedule, error) {
	rows, err := firstSheetRows(r)
	if err != nil {
		return nil, err
	}

	var out []models.TestSchedule
	for i, row := range rows {
		if i == 0 || len(row) < scheduleMinCols {
			continue
		}
		ts := models.TestSchedule{
			Subject:   strings.TrimSpace(row[0]),
			TestDate:  NormalizeCell(row[1]),
			StartTime: NormalizeCell(row[2]),
			Batch:     strings.TrimSpace(row[3]),
			Duration:  strings.TrimSpace(row[4]),
		}
		if ts.Subject == "" || ts.TestDate == "" {
			continue
		}
		out = append(out, ts)
	}
	if len(out) == 0 {
		return nil, ErrNoRows
	}
	return out, nil
}

// ParseRecords returns header-keyed rows (used for result sheets, whose
// columns are institute-defined). Cells are normalized the same way as
// schedule cells. Rows that are entirely blank are dropped.
func ParseRecords(r io.Reader) ([]map[string]string, error) {
	rows, err := firstSheetRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	header := rows[0]
	var out []map[string]string
	for _, row := range rows[1:] {
		rec := map[string]string{}
		empty := true
		for j, key := range header {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			var val string
			if j < len(row) {
				val = NormalizeCell(row[j])
			}
			if val != "" {
				empty = false
			}
			rec[key] = val
		}
		if !empty {
			out = append(out, rec)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoRows
	}
	return out, nil
}

// NormalizeCell trims a cell and converts spreadsheet serial numbers:
// values above 40000 are day serials (days since 1900) rendered as an ISO
// date; fractions of a day become HH:MM. Everything else passes through.
func NormalizeCell(s string) string {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	switch {
	case v > 40000:
		return serialToDate(v)
	case v > 0 && v < 1:
		return serialToClock(v)
	default:
		return s
	}
}

// serialToDate: spreadsheet epoch is 1900; 25569 days offset lands on the
// Unix epoch (1970-01-01).
func serialToDate(v float64) string {
	days := int64(math.Floor(v)) - 25569
	return time.Unix(days*86400, 0).UTC().Format("2006-01-02")
}

func serialToClock(v float64) string {
	secs := int(math.Round(v * 86400))
	h := secs / 3600
	m := (secs % 3600) / 60
	return padTwo(h) + ":" + padTwo(m)
}

func padTwo(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
