package manifest

import (
	"fmt"
	"io"
	"sort"
)

// RecordCount is the number of figures extracted for one record.
type RecordCount struct {
	SurveyNo string `json:"survey_no"`
	Images   int    `json:"images"`
}

// Summary aggregates a manifest.
type Summary struct {
	TotalImages     int           `json:"total_images"`
	Surveys         int           `json:"surveys"`
	ImagesWithTitle int           `json:"images_with_title"`
	PerSurvey       []RecordCount `json:"per_survey"`
}

// Summarize counts images, distinct records and captioned images. PerSurvey is
// sorted by record code.
func Summarize(rows []Row) Summary {
	counts := map[string]int{}
	s := Summary{TotalImages: len(rows)}
	for _, r := range rows {
		counts[r.SurveyNo]++
		if r.Title != "" {
			s.ImagesWithTitle++
		}
	}
	s.Surveys = len(counts)
	s.PerSurvey = make([]RecordCount, 0, len(counts))
	for code, n := range counts {
		s.PerSurvey = append(s.PerSurvey, RecordCount{SurveyNo: code, Images: n})
	}
	sort.Slice(s.PerSurvey, func(i, j int) bool { return s.PerSurvey[i].SurveyNo < s.PerSurvey[j].SurveyNo })
	return s
}

// WriteSummary writes the plain-text report.
func WriteSummary(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintf(w, "PDF image extraction result\ntotal_images=%d\nsurveys=%d\nimages_with_title=%d\n\n",
		s.TotalImages, s.Surveys, s.ImagesWithTitle); err != nil {
		return err
	}
	for _, rc := range s.PerSurvey {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", rc.SurveyNo, rc.Images); err != nil {
			return err
		}
	}
	return nil
}
