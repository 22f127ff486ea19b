package manifest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	manifestSheet = "Manifest"
	summarySheet  = "Summary"
)

// BuildXLSX returns a workbook (as bytes) with a Manifest sheet holding every row and
// a Summary sheet holding the counts.
func BuildXLSX(rows []Row, s Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", manifestSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}
	activeIndex, _ := f.GetSheetIndex(manifestSheet)
	f.SetActiveSheet(activeIndex)

	write := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	for i, h := range Header {
		write(manifestSheet, i+1, 1, h)
	}
	for i, r := range rows {
		line := i + 2
		write(manifestSheet, 1, line, r.SurveyNo)
		write(manifestSheet, 2, line, r.PDFFile)
		write(manifestSheet, 3, line, r.Page)
		write(manifestSheet, 4, line, r.ImageNum)
		write(manifestSheet, 5, line, r.OutputFile)
		write(manifestSheet, 6, line, r.Title)
		write(manifestSheet, 7, line, r.Width)
		write(manifestSheet, 8, line, r.Height)
	}

	// Widen a few columns
	_ = f.SetColWidth(manifestSheet, "A", "A", 12) // survey
	_ = f.SetColWidth(manifestSheet, "B", "B", 36) // pdf
	_ = f.SetColWidth(manifestSheet, "C", "D", 10) // page, image
	_ = f.SetColWidth(manifestSheet, "E", "E", 28) // output
	_ = f.SetColWidth(manifestSheet, "F", "F", 48) // title
	_ = f.SetColWidth(manifestSheet, "G", "H", 10) // size

	summaryLines := [][2]any{
		{"total_images", s.TotalImages},
		{"surveys", s.Surveys},
		{"images_with_title", s.ImagesWithTitle},
	}
	for i, kv := range summaryLines {
		write(summarySheet, 1, i+1, kv[0])
		write(summarySheet, 2, i+1, kv[1])
	}
	first := len(summaryLines) + 2
	write(summarySheet, 1, first, "survey_no")
	write(summarySheet, 2, first, "images")
	for i, rc := range s.PerSurvey {
		write(summarySheet, 1, first+1+i, rc.SurveyNo)
		write(summarySheet, 2, first+1+i, rc.Images)
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
