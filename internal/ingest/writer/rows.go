package writer

import (
	"context"
	"database/sql"

	"datcheck/internal/datfile"
)

// Payload is one parsed extract destined for a target table. SourceFile
// keys the DELETE-then-INSERT so reloading the same file is idempotent.
type Payload struct {
	Table      string
	SourceFile string
	Columns    []datfile.Column
	Rows       []datfile.Row
}

// InsertRows replaces all previously loaded rows for the same source file,
// then bulk-inserts in chunks of 2000.
func InsertRows(ctx context.Context, db *sql.DB, p Payload) error {
	if _, err := db.ExecContext(ctx,
		"DELETE FROM "+p.Table+" WHERE source_file=?", p.SourceFile,
	); err != nil {
		return err
	}

	cols := make([]string, 0, len(p.Columns)+1)
	for _, c := range p.Columns {
		cols = append(cols, c.Name)
	}
	cols = append(cols, "source_file")

	rows := make([][]any, 0, len(p.Rows))
	for _, r := range p.Rows {
		vals := make([]any, 0, len(cols))
		for _, c := range p.Columns {
			vals = append(vals, r[c.Name])
		}
		vals = append(vals, p.SourceFile)
		rows = append(rows, vals)
	}

	return chunkedExec(ctx, db, p.Table, cols, rows, 2000)
}
