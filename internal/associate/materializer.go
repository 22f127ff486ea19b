package associate

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/heritage-figures/internal/common"
	"github.com/joseph-ayodele/heritage-figures/internal/entity"
)

// Materializer copies planned images into the output tree.
type Materializer struct {
	root   string
	logger *slog.Logger
}

func NewMaterializer(root string, logger *slog.Logger) *Materializer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Materializer{root: root, logger: logger}
}

// Write copies every image of the plan, creating record directories on demand.
func (m *Materializer) Write(ctx context.Context, images []entity.OutputImage) error {
	for _, img := range images {
		if err := ctx.Err(); err != nil {
			return err
		}
		dst := filepath.Join(m.root, filepath.FromSlash(img.DestPath))
		if err := copyFile(img.SourcePath, dst); err != nil {
			return err
		}
		m.logger.Debug("image written",
			"code", img.Code, "seq", img.Seq,
			"page", img.Page, "index", img.Index,
			"dest", img.DestPath, "captioned", img.Caption != "")
	}
	return nil
}

// copyFile copies src to dst keeping the permission bits and modification time.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return common.IOError("mkdir", filepath.Dir(dst), err)
	}

	in, err := os.Open(src)
	if err != nil {
		return common.IOError("open", src, err)
	}
	defer in.Close()

	st, err := in.Stat()
	if err != nil {
		return common.IOError("stat", src, err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, st.Mode().Perm())
	if err != nil {
		return common.IOError("create", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return common.IOError("copy", dst, err)
	}
	if err := out.Close(); err != nil {
		return common.IOError("close", dst, err)
	}
	if err := os.Chtimes(dst, st.ModTime(), st.ModTime()); err != nil {
		return common.IOError("chtimes", dst, err)
	}
	return nil
}
