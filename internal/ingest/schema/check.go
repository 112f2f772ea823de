package schema

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Target tables for loaded extracts.
const (
	TblTable  = "tax1099_tbl"
	TranTable = "tax1099_tran"
)

// Check verifies the required tables exist in the currently selected
// database. Returns which of the two targets are present.
func Check(ctx context.Context, conn *sql.DB) (hasTbl, hasTran bool, err error) {
	var dbName sql.NullString
	if err := conn.QueryRowContext(ctx, "SELECT DATABASE()").Scan(&dbName); err != nil {
		return false, false, fmt.Errorf("SELECT DATABASE() failed: %w", err)
	}
	if !dbName.Valid || strings.TrimSpace(dbName.String) == "" {
		return false, false, fmt.Errorf("no active database selected")
	}

	const q = `
		SELECT TABLE_NAME
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = ?
	`
	rows, err := conn.QueryContext(ctx, q, dbName.String)
	if err != nil {
		return false, false, fmt.Errorf("schema list query failed: %w", err)
	}
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return false, false, fmt.Errorf("scan table failed: %w", err)
		}
		found[t] = true
	}
	if err := rows.Err(); err != nil {
		return false, false, fmt.Errorf("rows err: %w", err)
	}

	return found[TblTable], found[TranTable], nil
}
