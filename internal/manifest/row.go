// Package manifest writes the sorted record of every extracted figure plus a summary.
package manifest

import (
	"sort"
	"strconv"

	"github.com/joseph-ayodele/heritage-figures/internal/entity"
)

// Header is the column order of every tabular manifest.
var Header = []string{
	"survey_no",
	"pdf_file",
	"page",
	"image_num",
	"output_file",
	"title",
	"width",
	"height",
}

// Row is one extracted figure.
type Row struct {
	SurveyNo   string `json:"survey_no"`
	PDFFile    string `json:"pdf_file"`
	Page       int    `json:"page"`
	ImageNum   int    `json:"image_num"`
	OutputFile string `json:"output_file"`
	Title      string `json:"title"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// FromImage projects a materialised image onto a manifest row.
func FromImage(img entity.OutputImage) Row {
	return Row{
		SurveyNo:   img.Code,
		PDFFile:    img.Document,
		Page:       img.Page,
		ImageNum:   img.Index,
		OutputFile: img.DestPath,
		Title:      img.Caption,
		Width:      img.Width,
		Height:     img.Height,
	}
}

// FromImages projects and sorts.
func FromImages(images []entity.OutputImage) []Row {
	rows := make([]Row, 0, len(images))
	for _, img := range images {
		rows = append(rows, FromImage(img))
	}
	Sort(rows)
	return rows
}

// Record returns the row's cells in Header order.
func (r Row) Record() []string {
	return []string{
		r.SurveyNo,
		r.PDFFile,
		strconv.Itoa(r.Page),
		strconv.Itoa(r.ImageNum),
		r.OutputFile,
		r.Title,
		strconv.Itoa(r.Width),
		strconv.Itoa(r.Height),
	}
}

func less(a, b Row) bool {
	if a.SurveyNo != b.SurveyNo {
		return a.SurveyNo < b.SurveyNo
	}
	if a.Page != b.Page {
		return a.Page < b.Page
	}
	return a.ImageNum < b.ImageNum
}

// Sort orders rows by (survey_no, page, image_num). It is stable, so rows with
// equal keys keep their processing order.
func Sort(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
}

// IsSorted reports whether rows are already in manifest order.
func IsSorted(rows []Row) bool {
	return sort.SliceIsSorted(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
}
