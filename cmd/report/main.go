package main

import (
	"flag"
	"log"
	"path/filepath"
	"time"

	"datcheck/internal/datfile"
	"datcheck/internal/report"
	"datcheck/internal/rowio"
)

func main() {
	tblPath := flag.String("tbl", "1099MTbl.dat", "Path to the 1099MTbl extract")
	tranPath := flag.String("tran", "1099MTran.dat", "Path to the 1099MTran extract")
	outDir := flag.String("out-dir", ".", "Directory for generated reports")
	validate := flag.Bool("validate", false, "Also save the transformed Tran table for review")
	flag.Parse()

	start := time.Now()
	defer func() {
		log.Printf("⏱️ completed in %v", time.Since(start))
	}()

	tbl, tblStats, err := datfile.Load(*tblPath, datfile.TblColumns)
	if err != nil {
		log.Fatalf("load tbl: %v", err)
	}
	logLoad(*tblPath, tblStats)

	tran, tranStats, err := datfile.Load(*tranPath, datfile.TranColumns)
	if err != nil {
		log.Fatalf("load tran: %v", err)
	}
	logLoad(*tranPath, tranStats)

	now := time.Now()

	if *validate {
		path := filepath.Join(*outDir, report.TimestampedName("Validation_1099MTran", now))
		if err := writeRows(path, datfile.TranColumns, tran); err != nil {
			log.Fatalf("write validation file: %v", err)
		}
		log.Printf("[OK] validation file saved: %s", path)
	}

	joined := report.Join(tbl, tran)
	final := report.FilterInterest(joined)
	if len(final) == 0 {
		log.Fatalf("report query produced no rows (no INT-classified transactions with amounts)")
	}

	outPath := filepath.Join(*outDir, report.TimestampedName("Final_Report", now))
	if err := rowio.WriteAll(outPath, report.Columns, final); err != nil {
		log.Fatalf("write report: %v", err)
	}
	log.Printf("✅ report done. joined=%d final=%d → %s", len(joined), len(final), outPath)
}

func logLoad(path string, s datfile.LoadStats) {
	log.Printf("[INFO] %s: rows=%d malformed=%d encoding=%s", path, s.Rows, s.Malformed, s.Encoding)
	for _, ln := range s.MalformedLines {
		log.Printf("[WARN] %s: skipped malformed line %d", path, ln)
	}
}

func writeRows(path string, cols []datfile.Column, rows []datfile.Row) error {
	recs := make([][]string, 0, len(rows))
	for _, r := range rows {
		rec := make([]string, len(cols))
		for i, c := range cols {
			rec[i] = r[c.Name]
		}
		recs = append(recs, rec)
	}
	return rowio.WriteAll(path, datfile.Header(cols), recs)
}
