package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"smartconstruction/estimate"
)

// RoomImportField describes one column of the room import template.
type RoomImportField struct {
	Key         string
	Label       string
	Required    bool
	Description string
	Example     string
}

// RoomImportFields lists the template columns in order.
func RoomImportFields() []RoomImportField {
	return []RoomImportField{
		{Key: "floor", Label: "Floor", Required: true, Description: "Rows with the same floor name are grouped together", Example: "Ground Floor"},
		{Key: "room", Label: "Room", Required: true, Description: "Room type or a custom name", Example: "Living Room"},
		{Key: "length", Label: "Length (ft)", Required: true, Description: "Inner length in feet", Example: "12"},
		{Key: "width", Label: "Width (ft)", Required: true, Description: "Inner width in feet", Example: "10"},
		{Key: "height", Label: "Height (ft)", Required: true, Description: "Wall height in feet", Example: "10"},
		{Key: "window_width", Label: "Window Width (ft)", Description: "Blank means no window", Example: "4"},
		{Key: "window_height", Label: "Window Height (ft)", Description: "Blank means no window", Example: "4"},
		{Key: "window_material", Label: "Window Material", Description: "Wood or Aluminium, Wood when blank", Example: "Wood"},
	}
}

// RoomImportError is a single field-level problem on one row.
type RoomImportError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RoomImportResult is the outcome of reading a room file. Floors holds the
// valid rows only, grouped by floor name in order of first appearance.
type RoomImportResult struct {
	FileName  string            `json:"fileName"`
	TotalRows int               `json:"totalRows"`
	ValidRows int               `json:"validRows"`
	ErrorRows int               `json:"errorRows"`
	Errors    []RoomImportError `json:"errors"`
	Floors    []Floor           `json:"floors"`

	// IgnoredColumns lists headers that matched no template column.
	IgnoredColumns []string `json:"ignoredColumns"`
}

// RoomCount returns the number of imported rooms.
func (r *RoomImportResult) RoomCount() int {
	return lo.SumBy(r.Floors, func(f Floor) int { return len(f.Rooms) })
}

// ErrUnsupportedImportFormat is returned for files that are neither .csv nor .xlsx.
var ErrUnsupportedImportFormat = errors.New("unsupported file format: must be .csv or .xlsx")

// ParseRoomFile reads a .csv or .xlsx room list and validates every row.
func ParseRoomFile(file io.Reader, fileName string) (*RoomImportResult, error) {
	var headers []string
	var dataRows [][]string
	var err error

	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		headers, dataRows, err = parseCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"):
		headers, dataRows, err = parseExcel(file)
	default:
		return nil, ErrUnsupportedImportFormat
	}
	if err != nil {
		return nil, err
	}

	fields := RoomImportFields()
	columnKeys, ignored := mapHeadersToFields(headers, fields)
	for _, f := range fields {
		if f.Required && !lo.Contains(columnKeys, f.Key) {
			return nil, errors.Errorf("missing column %q", f.Label)
		}
	}

	result := &RoomImportResult{FileName: fileName, IgnoredColumns: ignored}
	for rowIdx, row := range dataRows {
		rowNum := rowIdx + 2 // 1-indexed, +1 for header row
		data := make(map[string]string, len(columnKeys))
		for colIdx, key := range columnKeys {
			if key != "" && colIdx < len(row) {
				data[key] = strings.TrimSpace(row[colIdx])
			}
		}
		if lo.EveryBy(lo.Values(data), func(v string) bool { return v == "" }) {
			continue
		}
		result.TotalRows++

		room, rowErrors := roomFromImportRow(rowNum, data, fields)
		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors, rowErrors...)
			result.ErrorRows++
			continue
		}
		result.ValidRows++
		result.Floors = appendImportedRoom(result.Floors, data["floor"], room)
	}
	return result, nil
}

// roomFromImportRow converts one mapped row into a room.
func roomFromImportRow(rowNum int, data map[string]string, fields []RoomImportField) (Room, []RoomImportError) {
	var errs []RoomImportError
	for _, f := range fields {
		if f.Required && data[f.Key] == "" {
			errs = append(errs, RoomImportError{Row: rowNum, Field: f.Label, Message: f.Label + " is required"})
		}
	}

	number := func(key, label string, positive bool) float64 {
		raw := data[key]
		if raw == "" {
			return 0
		}
		v, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil || math.IsNaN(v) || math.IsInf(v, 0):
			errs = append(errs, RoomImportError{Row: rowNum, Field: label, Message: fmt.Sprintf("%s must be a number", label)})
		case v < 0 || (positive && v == 0):
			errs = append(errs, RoomImportError{Row: rowNum, Field: label, Message: fmt.Sprintf("%s must be greater than 0", label)})
		}
		return v
	}

	room := Room{ID: uuid.NewString(), Type: data["room"]}
	room.Length = number("length", "Length (ft)", true)
	room.Width = number("width", "Width (ft)", true)
	room.Height = number("height", "Height (ft)", true)
	room.WindowWidth = number("window_width", "Window Width (ft)", false)
	room.WindowHeight = number("window_height", "Window Height (ft)", false)

	room.WindowMaterial = estimate.Wood
	if raw := data["window_material"]; raw != "" {
		m, err := estimate.ParseWindowMaterial(raw)
		if err != nil {
			errs = append(errs, RoomImportError{Row: rowNum, Field: "Window Material", Message: "Window Material must be Wood or Aluminium"})
		}
		room.WindowMaterial = m
	}
	return room, errs
}

// appendImportedRoom adds room to the floor named name, creating it if needed.
func appendImportedRoom(floors []Floor, name string, room Room) []Floor {
	_, idx, ok := lo.FindIndexOf(floors, func(f Floor) bool { return strings.EqualFold(f.Name, name) })
	if !ok {
		return append(floors, Floor{ID: uuid.NewString(), Name: name, Expanded: true, Rooms: []Room{room}})
	}
	floors[idx].Rooms = append(floors[idx].Rooms, room)
	return floors
}

// MergeImportedFloors appends imported rooms to q. Rooms whose floor name
// matches an existing floor join it; other floors are appended.
func (q Quotation) MergeImportedFloors(imported []Floor) Quotation {
	q.Floors = cloneFloors(q.Floors)
	for _, f := range imported {
		_, idx, ok := lo.FindIndexOf(q.Floors, func(existing Floor) bool { return strings.EqualFold(existing.Name, f.Name) })
		if !ok {
			q.Floors = append(q.Floors, f)
			continue
		}
		q.Floors[idx].Rooms = append(cloneRooms(q.Floors[idx].Rooms), f.Rooms...)
	}
	return q
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse CSV")
	}
	if len(allRows) < 2 {
		return nil, nil, errors.New("file must contain a header row and at least one data row")
	}
	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the first sheet.
func parseExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read sheet")
	}
	if len(rows) < 2 {
		return nil, nil, errors.New("file must contain a header row and at least one data row")
	}
	return rows[0], rows[1:], nil
}

// mapHeadersToFields maps uploaded column headers to field keys. It returns
// one key per column ("" when unrecognized) and the unrecognized headers.
func mapHeadersToFields(headers []string, fields []RoomImportField) ([]string, []string) {
	labelToKey := make(map[string]string, len(fields)*2)
	for _, f := range fields {
		labelToKey[strings.ToLower(f.Label)] = f.Key
		labelToKey[f.Key] = f.Key
	}

	mapped := make([]string, len(headers))
	var unrecognized []string
	for i, h := range headers {
		// The template marks required columns with a trailing " *".
		norm := strings.TrimSpace(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(h)), " *"))
		if key, ok := labelToKey[norm]; ok {
			mapped[i] = key
		} else if norm != "" {
			unrecognized = append(unrecognized, strings.TrimSpace(h))
		}
	}
	return mapped, unrecognized
}

// GenerateRoomTemplate creates the downloadable .xlsx template for room import.
func GenerateRoomTemplate() ([]byte, error) {
	fields := RoomImportFields()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Rooms"
	f.SetSheetName(f.GetSheetName(0), sheetName)

	requiredHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E8590C"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})
	optionalHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#6B7280"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})

	columns := columnLetters(len(fields))
	for i, field := range fields {
		cell := columns[i] + "1"
		header, style := field.Label, optionalHeaderStyle
		if field.Required {
			header, style = field.Label+" *", requiredHeaderStyle
		}
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, style)
		f.SetColWidth(sheetName, columns[i], columns[i], math.Max(15, float64(len(field.Label))*1.3))

		rangeRef := fmt.Sprintf("%s2:%s1048576", columns[i], columns[i])
		switch field.Key {
		case "floor":
			addDropList(f, sheetName, rangeRef, FloorPresets, false)
		case "room":
			addDropList(f, sheetName, rangeRef, RoomTypeOptions, false)
		case "window_material":
			addDropList(f, sheetName, rangeRef, lo.Map(estimate.WindowMaterials(), func(m estimate.WindowMaterial, _ int) string { return m.String() }), true)
		}
	}

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	addRoomInstructionsSheet(f, fields)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "write room template")
	}
	return buf.Bytes(), nil
}

// addDropList suggests options for a column. Strict lists reject other values;
// otherwise Excel only warns so custom floor and room names stay possible.
func addDropList(f *excelize.File, sheet, sqref string, options []string, strict bool) {
	dv := excelize.NewDataValidation(true)
	dv.Sqref = sqref
	if err := dv.SetDropList(options); err != nil {
		return
	}
	if !strict {
		dv.SetError(excelize.DataValidationErrorStyleWarning, "", "")
	}
	f.AddDataValidation(sheet, dv)
}

// addRoomInstructionsSheet creates a hidden sheet describing each column.
func addRoomInstructionsSheet(f *excelize.File, fields []RoomImportField) {
	instSheet := "Instructions"
	f.NewSheet(instSheet)

	titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E5E7EB"}, Pattern: 1},
	})

	f.SetCellValue(instSheet, "A1", "Room Import - Instructions")
	f.SetCellStyle(instSheet, "A1", "A1", titleStyle)

	cols := columnLetters(4)
	for i, h := range []string{"Column", "Required?", "Description", "Example"} {
		cell := cols[i] + "3"
		f.SetCellValue(instSheet, cell, h)
		f.SetCellStyle(instSheet, cell, cell, headerStyle)
	}
	for i, field := range fields {
		row := strconv.Itoa(i + 4)
		f.SetCellValue(instSheet, cols[0]+row, field.Label)
		f.SetCellValue(instSheet, cols[1]+row, lo.Ternary(field.Required, "Required", "Optional"))
		f.SetCellValue(instSheet, cols[2]+row, field.Description)
		f.SetCellValue(instSheet, cols[3]+row, field.Example)
	}
	for i, w := range []float64{20, 12, 50, 18} {
		f.SetColWidth(instSheet, cols[i], cols[i], w)
	}

	f.SetSheetVisible(instSheet, false)
}

// GenerateImportErrorReport creates a downloadable .xlsx listing import errors.
func GenerateImportErrorReport(importErrors []RoomImportError) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Errors"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DC2626"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})

	f.SetCellValue(sheet, "A1", "Row #")
	f.SetCellValue(sheet, "B1", "Field")
	f.SetCellValue(sheet, "C1", "Error")
	f.SetCellStyle(sheet, "A1", "C1", headerStyle)
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 22)
	f.SetColWidth(sheet, "C", "C", 55)

	for i, e := range importErrors {
		row := strconv.Itoa(i + 2)
		f.SetCellValue(sheet, "A"+row, e.Row)
		f.SetCellValue(sheet, "B"+row, sanitizeExcelCell(e.Field))
		f.SetCellValue(sheet, "C"+row, sanitizeExcelCell(e.Message))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "write error report")
	}
	return buf.Bytes(), nil
}

// columnLetters returns Excel column letters for n columns: A, B, ... Z, AA, AB ...
func columnLetters(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i], _ = excelize.ColumnNumberToName(i + 1)
	}
	return cols
}
