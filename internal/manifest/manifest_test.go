package manifest

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/heritage-figures/constants"
	"github.com/joseph-ayodele/heritage-figures/internal/entity"
)

func sampleImages() []entity.OutputImage {
	return []entity.OutputImage{
		{Code: "CD456", Seq: 1, Document: "b.pdf", DestPath: "CD456/CD456_001.jpg", Page: 3, Index: 2, Width: 640, Height: 480},
		{Code: "AB123", Seq: 2, Document: "a.pdf", DestPath: "AB123/AB123_002.jpg", Page: 10, Index: 4, Width: 300, Height: 200},
		{Code: "AB123", Seq: 1, Document: "a.pdf", DestPath: "AB123/AB123_001.jpg", Page: 9, Index: 30, Width: 300, Height: 200, Caption: "동굴 입구 전경"},
		{Code: "AB123", Seq: 3, Document: "a.pdf", DestPath: "AB123/AB123_003.png", Page: 10, Index: 12, Width: 300, Height: 200, Caption: "동굴, \"내부\" 사진"},
	}
}

func TestSortNumericAndIdempotent(t *testing.T) {
	rows := FromImages(sampleImages())

	require.True(t, IsSorted(rows))
	assert.Equal(t, []string{"AB123/AB123_001.jpg", "AB123/AB123_002.jpg", "AB123/AB123_003.png", "CD456/CD456_001.jpg"},
		[]string{rows[0].OutputFile, rows[1].OutputFile, rows[2].OutputFile, rows[3].OutputFile})

	again := append([]Row(nil), rows...)
	Sort(again)
	assert.Equal(t, rows, again)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, FromImages(sampleImages())))

	want := "survey_no,pdf_file,page,image_num,output_file,title,width,height\r\n" +
		"AB123,a.pdf,9,30,AB123/AB123_001.jpg,동굴 입구 전경,300,200\r\n" +
		"AB123,a.pdf,10,4,AB123/AB123_002.jpg,,300,200\r\n" +
		"AB123,a.pdf,10,12,AB123/AB123_003.png,\"동굴, \"\"내부\"\" 사진\",300,200\r\n" +
		"CD456,b.pdf,3,2,CD456/CD456_001.jpg,,640,480\r\n"
	assert.Equal(t, want, buf.String())
}

func TestSummary(t *testing.T) {
	s := Summarize(FromImages(sampleImages()))

	assert.Equal(t, Summary{
		TotalImages:     4,
		Surveys:         2,
		ImagesWithTitle: 2,
		PerSurvey:       []RecordCount{{SurveyNo: "AB123", Images: 3}, {SurveyNo: "CD456", Images: 1}},
	}, s)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, s))
	assert.Equal(t, "PDF image extraction result\ntotal_images=4\nsurveys=2\nimages_with_title=2\n\nAB123\t3\nCD456\t1\n", buf.String())
}

func TestBuildJSONValidates(t *testing.T) {
	rows := FromImages(sampleImages())
	b, err := BuildJSON(rows, Summarize(rows))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"survey_no": "AB123"`)

	empty, err := BuildJSON(nil, Summarize(nil))
	require.NoError(t, err)
	assert.Contains(t, string(empty), `"rows": []`)

	bad := []Row{{SurveyNo: "ab1", PDFFile: "a.pdf", Page: 1, OutputFile: "x.jpg"}}
	_, err = BuildJSON(bad, Summarize(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestBuildXLSX(t *testing.T) {
	rows := FromImages(sampleImages())
	b, err := BuildXLSX(rows, Summarize(rows))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(manifestSheet)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, Header, got[0])
	assert.Equal(t, "동굴 입구 전경", got[1][5])

	summary, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"total_images", "4"}, summary[0])
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := filepath.Join(t.TempDir(), "manifest.db")
	rows := FromImages(sampleImages())

	require.NoError(t, WriteSQLite(ctx, p, rows))
	// writing twice replaces rather than duplicates
	require.NoError(t, WriteSQLite(ctx, p, rows))

	got, err := ReadSQLite(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestWriterWritesArtifactsDeterministically(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	w := NewWriter(dir, Options{XLSX: true, JSON: true, SQLite: true}, nil)

	res, err := w.Write(ctx, sampleImages())
	require.NoError(t, err)
	assert.Len(t, res.Files, 5)
	for _, name := range []string{constants.ManifestCSV, constants.SummaryFile, constants.ManifestXLSX, constants.ManifestJSON, constants.ManifestSQLite} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	first, err := os.ReadFile(filepath.Join(dir, constants.ManifestCSV))
	require.NoError(t, err)

	// same images in a different order produce the same bytes
	imgs := sampleImages()
	imgs[0], imgs[3] = imgs[3], imgs[0]
	_, err = w.Write(ctx, imgs)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, constants.ManifestCSV))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
