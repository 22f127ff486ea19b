package associate

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/heritage-figures/internal/entity"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(name), 0o644))
	return p
}

func TestPairingByRank(t *testing.T) {
	p := NewPairing()
	p.AddDocument("a.pdf", map[int][]string{6: {"동굴 입구 전경", "동굴 내부 사진"}, 7: {}})

	assert.Equal(t, Caption{Text: "동굴 입구 전경", OK: true}, p.CaptionFor("a.pdf", 6, 0))
	assert.Equal(t, "동굴 내부 사진", p.CaptionFor("a.pdf", 6, 1).String())
	assert.Equal(t, NoCaption, p.CaptionFor("a.pdf", 6, 2))
	assert.Equal(t, NoCaption, p.CaptionFor("a.pdf", 7, 0))
	assert.Equal(t, NoCaption, p.CaptionFor("b.pdf", 6, 0))
	assert.Equal(t, "", NoCaption.String())
}

func TestPaddingProbeOrder(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "report-0010.png")
	touch(t, dir, "report-10.jpg")
	touch(t, dir, "report-012.ppm")
	touch(t, dir, "report-012.jpg")
	touch(t, dir, "report-7.tif")

	probe := PaddingProbe{Dir: dir, Prefix: "report"}

	got, ok, err := probe.Resolve(10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "report-0010.png"), got, "4-digit beats unpadded")

	got, ok, err = probe.Resolve(12)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "report-012.jpg"), got, "lexicographically first match")

	got, ok, err = probe.Resolve(7)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "report-7.tif"), got)

	_, ok, err = probe.Resolve(99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPaddingProbeEscapesPrefix(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "survey[1]-001.jpg")

	got, ok, err := PaddingProbe{Dir: dir, Prefix: "survey[1]"}.Resolve(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "survey[1]-001.jpg"), got)
}

func TestAssociateSequencesAcrossDocuments(t *testing.T) {
	seq := NewSequencer()
	pairing := NewPairing()
	pairing.AddPage("a.pdf", 6, []string{"동굴 입구 전경"})

	selA := []entity.SelectedImage{
		{Row: entity.InventoryRow{Page: 6, Index: 10, Width: 300, Height: 200}, Code: "AB123", Offset: 1, Rank: 0},
		{Row: entity.InventoryRow{Page: 6, Index: 11, Width: 300, Height: 200}, Code: "AB123", Offset: 1, Rank: 1},
		{Row: entity.InventoryRow{Page: 6, Index: 12, Width: 300, Height: 200}, Code: "AB123", Offset: 1, Rank: 2},
	}
	rawA := IndexedFiles{10: "/w/a-010.jpg", 12: "/w/a-012.PNG"}

	planA, err := Associate("a.pdf", selA, pairing, rawA, seq)
	require.NoError(t, err)
	require.Len(t, planA.Images, 2)
	require.Len(t, planA.Missing, 1)
	assert.Equal(t, 11, planA.Missing[0].Row.Index)

	assert.Equal(t, entity.OutputImage{
		Code: "AB123", Seq: 1, Document: "a.pdf",
		SourcePath: "/w/a-010.jpg", DestPath: "AB123/AB123_001.jpg",
		Page: 6, Index: 10, Width: 300, Height: 200, Caption: "동굴 입구 전경",
	}, planA.Images[0])
	assert.Equal(t, "AB123/AB123_002.png", planA.Images[1].DestPath)
	assert.Equal(t, "", planA.Images[1].Caption, "rank 2 has no caption")

	selB := []entity.SelectedImage{
		{Row: entity.InventoryRow{Page: 3, Index: 1, Width: 500, Height: 400}, Code: "AB123", Offset: 2},
	}
	planB, err := Associate("b.pdf", selB, pairing, IndexedFiles{1: "/w/b-1"}, seq)
	require.NoError(t, err)
	require.Len(t, planB.Images, 1)
	assert.Equal(t, "AB123/AB123_003.jpg", planB.Images[0].DestPath)
	assert.Equal(t, 3, seq.Current("AB123"))
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "XY001/XY001_001.jpg", OutputName("XY001", 1, "/tmp/a-001"))
	assert.Equal(t, "XY001/XY001_012.tif", OutputName("XY001", 12, "/tmp/a-001.TIF"))
	assert.Equal(t, "XY001/XY001_1000.ppm", OutputName("XY001", 1000, "a-2.ppm"))
}

func TestMaterializerCopiesWithModTime(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	p := touch(t, src, "doc-010.jpg")
	mtime := time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(p, mtime, mtime))

	m := NewMaterializer(out, nil)
	err := m.Write(context.Background(), []entity.OutputImage{{
		Code: "AB123", Seq: 1, SourcePath: p, DestPath: "AB123/AB123_001.jpg",
	}})
	require.NoError(t, err)

	dst := filepath.Join(out, "AB123", "AB123_001.jpg")
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "doc-010.jpg", string(b))

	st, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, st.ModTime().Equal(mtime))
}

func TestMaterializerMissingSource(t *testing.T) {
	m := NewMaterializer(t.TempDir(), nil)
	err := m.Write(context.Background(), []entity.OutputImage{{
		Code: "AB123", Seq: 1, SourcePath: "/does/not/exist.jpg", DestPath: "AB123/AB123_001.jpg",
	}})
	assert.Error(t, err)
}
