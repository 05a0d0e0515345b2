package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func sheetOf(t *testing.T, rows [][]string) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellStr("Sheet1", cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write sheet: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestNormalizeCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"date serial", "45000", "2023-03-15"},
		{"date serial with fraction", "45000.5", "2023-03-15"},
		{"time serial morning", "0.4375", "10:30"},
		{"time serial noon", "0.5", "12:00"},
		{"below cutoff stays numeric", "120", "120"},
		{"plain text", "Mathematics", "Mathematics"},
		{"trims whitespace", "  2 hours ", "2 hours"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCell(tt.in))
		})
	}
}

func TestParseStudents(t *testing.T) {
	r := sheetOf(t, [][]string{
		{"Name", "Roll No", "Batch", "Parent Phone"},
		{" Aarav Shah ", "101", "Class 12-A", "9876500001"},
		{"Diya Patel", "102", "Class 12-B", "9876500002"},
		{"too", "short"}, // fewer than 4 columns: dropped
	})

	students, err := ParseStudents(r)
	assert.NoError(t, err)
	assert.Len(t, students, 2)
	assert.Equal(t, "Aarav Shah", students[0].Name)
	assert.Equal(t, "101", students[0].RollNo)
	assert.Equal(t, "Class 12-B", students[1].Batch)
}

func TestParseStudentsEmptySheet(t *testing.T) {
	r := sheetOf(t, [][]string{
		{"Name", "Roll No", "Batch", "Parent Phone"},
	})
	_, err := ParseStudents(r)
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestParseSchedules(t *testing.T) {
	r := sheetOf(t, [][]string{
		{"Subject", "Date", "Time", "Batch", "Duration"},
		{"Mathematics", "45000", "0.4375", "Class 12-A", "2 hours"},
		{"Physics", "2024-01-17", "11:00", "Class 12-B", "2 hours"},
	})

	schedules, err := ParseSchedules(r)
	assert.NoError(t, err)
	assert.Len(t, schedules, 2)
	assert.Equal(t, "2023-03-15", schedules[0].TestDate)
	assert.Equal(t, "10:30", schedules[0].StartTime)
	assert.Equal(t, "2024-01-17", schedules[1].TestDate)
	assert.Equal(t, "11:00", schedules[1].StartTime)
}

func TestParseRecords(t *testing.T) {
	r := sheetOf(t, [][]string{
		{"RollNo", "Subject", "Marks"},
		{"101", "Maths", "87"},
		{"", "", ""}, // blank row: dropped
		{"102", "Maths", "91"},
	})

	recs, err := ParseRecords(r)
	assert.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, "87", recs[0]["Marks"])
	assert.Equal(t, "102", recs[1]["RollNo"])
}

func TestParseRecordsEmpty(t *testing.T) {
	r := sheetOf(t, [][]string{{"RollNo", "Subject", "Marks"}})
	_, err := ParseRecords(r)
	assert.ErrorIs(t, err, ErrNoRows)
}
