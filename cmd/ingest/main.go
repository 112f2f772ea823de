package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"
	"time"

	"datcheck/internal/datfile"
	"datcheck/internal/ingest/config"
	"datcheck/internal/ingest/db"
	"datcheck/internal/ingest/lock"
	"datcheck/internal/ingest/schema"
	"datcheck/internal/ingest/writer"
	"datcheck/internal/scan"
)

func main() {
	var (
		flagDat    string
		flagKind   string
		flagDryRun bool
		flagCheck  bool
		flagForce  bool
	)
	flag.StringVar(&flagDat, "dat", "", "Path to the .dat extract (default from .env DAT_PATH)")
	flag.StringVar(&flagKind, "kind", "tran", "Extract kind: tbl | tran")
	flag.BoolVar(&flagDryRun, "dry-run", false, "Do not write to DB (just parse and log)")
	flag.BoolVar(&flagCheck, "check-schema", false, "Only check schema and exit")
	flag.BoolVar(&flagForce, "force", false, "Load even when the delimiter scan reports a mismatch")
	flag.Parse()

	var cols []datfile.Column
	var table string
	switch flagKind {
	case "tbl":
		cols, table = datfile.TblColumns, schema.TblTable
	case "tran":
		cols, table = datfile.TranColumns, schema.TranTable
	default:
		log.Fatalf("unknown kind: %s (use tbl or tran)", flagKind)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	if flagDat != "" {
		cfg.DatPath = flagDat
	}

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer conn.Close()

	if flagCheck {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		hasTbl, hasTran, err := schema.Check(ctx, conn)
		if err != nil {
			log.Fatalf("[SCHEMA] error: %v", err)
		}
		log.Printf("[SCHEMA] %s present=%v, %s present=%v", schema.TblTable, hasTbl, schema.TranTable, hasTran)
		log.Printf("[SCHEMA] check completed (only-check mode). Exiting.")
		return
	}

	// Delimiter guard before touching the DB. Column count is informational
	// in the scan itself; a mismatch means at least one row will be skipped.
	res := scan.File(cfg.DatPath, len(cols))
	switch res.Status {
	case scan.Success:
		log.Printf("[INFO] scan ok: %d lines, encoding=%s", res.Lines, res.Encoding)
	case scan.Mismatch:
		if !flagForce {
			log.Fatalf("scan mismatch at line %d (expected %d delimiters, found %d) — rerun with -force to load anyway",
				res.LineNumber, res.ExpectedDelims, res.ActualDelims)
		}
		log.Printf("[WARN] scan mismatch at line %d, loading anyway (-force)", res.LineNumber)
	default:
		log.Fatalf("scan failed: %s", res.Status)
	}

	rows, stats, err := datfile.Load(cfg.DatPath, cols)
	if err != nil {
		log.Fatalf("load error: %v", err)
	}
	log.Printf("[INFO] parsed rows=%d malformed=%d encoding=%s", stats.Rows, stats.Malformed, stats.Encoding)

	if flagDryRun {
		log.Printf("[DRY] would load %d rows into %s", len(rows), table)
		log.Printf("[DONE] Dry-run finished.")
		return
	}

	// Advisory lock keyed per target table.
	lockKey := "datcheck_ingest_" + table
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		got, err := lock.Get(ctx, conn, lockKey, 10)
		cancel()
		if err != nil {
			log.Fatalf("GET_LOCK error: %v", err)
		}
		if !got {
			log.Fatalf("another ingest run is active for %s", table)
		}
		defer func() { _ = lock.Release(context.Background(), conn, lockKey) }()
	}

	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		hasTbl, hasTran, err := schema.Check(ctx, conn)
		cancel()
		if err != nil {
			log.Fatalf("[SCHEMA] error: %v", err)
		}
		if (table == schema.TblTable && !hasTbl) || (table == schema.TranTable && !hasTran) {
			log.Fatalf("[SCHEMA] required table missing: %s", table)
		}
	}

	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		err = writer.InsertRows(ctx, conn, writer.Payload{
			Table:      table,
			SourceFile: filepath.Base(cfg.DatPath),
			Columns:    cols,
			Rows:       rows,
		})
		if err != nil {
			log.Fatalf("insert error: %v", err)
		}
	}

	log.Printf("✅ ingest finished: %d rows into %s at %s", len(rows), table, time.Now().Format(time.RFC3339))
}
