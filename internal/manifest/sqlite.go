package manifest

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/joseph-ayodele/heritage-figures/internal/survey"
)

const createFiguresTable = `
CREATE TABLE IF NOT EXISTS figures (
	survey_no   TEXT    NOT NULL,
	pdf_file    TEXT    NOT NULL,
	page        INTEGER NOT NULL,
	image_num   INTEGER NOT NULL,
	output_file TEXT    NOT NULL PRIMARY KEY,
	title       TEXT    NOT NULL DEFAULT '',
	width       INTEGER NOT NULL,
	height      INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS figures_survey_no ON figures (survey_no, page, image_num);
`

const insertFigure = `INSERT INTO figures
	(survey_no, pdf_file, page, image_num, output_file, title, width, height)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

// WriteSQLite stores rows in the figures table of the SQLite database at path,
// replacing any previous contents of the table.
func WriteSQLite(ctx context.Context, path string, rows []Row) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, createFiguresTable); err != nil {
		return fmt.Errorf("create figures table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM figures`); err != nil {
		return fmt.Errorf("clear figures: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, insertFigure)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if !survey.IsRecordCode(r.SurveyNo) {
			return fmt.Errorf("row %s: invalid survey code %q", r.OutputFile, r.SurveyNo)
		}
		if _, err := stmt.ExecContext(ctx, r.SurveyNo, r.PDFFile, r.Page, r.ImageNum, r.OutputFile, r.Title, r.Width, r.Height); err != nil {
			return fmt.Errorf("insert %s: %w", r.OutputFile, err)
		}
	}
	return tx.Commit()
}

// ReadSQLite loads the figures table in manifest order.
func ReadSQLite(ctx context.Context, path string) ([]Row, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	rs, err := db.QueryContext(ctx, `SELECT survey_no, pdf_file, page, image_num, output_file, title, width, height
		FROM figures ORDER BY survey_no, page, image_num`)
	if err != nil {
		return nil, fmt.Errorf("query figures: %w", err)
	}
	defer rs.Close()

	var out []Row
	for rs.Next() {
		var r Row
		if err := rs.Scan(&r.SurveyNo, &r.PDFFile, &r.Page, &r.ImageNum, &r.OutputFile, &r.Title, &r.Width, &r.Height); err != nil {
			return nil, fmt.Errorf("scan figure: %w", err)
		}
		out = append(out, r)
	}
	return out, rs.Err()
}
