package main

import (
	"flag"
	"log"
	"time"

	"datcheck/internal/reshape"
	"datcheck/internal/rowio"
)

func main() {
	inPath := flag.String("in", "", "Input table (.xlsx, .csv or .csv.gz) with CIF/ID/Amt_Old/Amt_New columns")
	outPath := flag.String("out", "", "Output table (.xlsx or .csv), one wide row per CIF")
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		log.Fatalf("--in and --out are required")
	}
	if *inPath == *outPath {
		log.Fatalf("input and output paths must differ (got %q)", *inPath)
	}

	start := time.Now()

	header, rows, err := rowio.ReadAll(*inPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	log.Printf("[INFO] read %d rows, %d columns from %s", len(rows), len(header), *inPath)

	wide, stats := reshape.Wide(rows)
	if stats.Overflow > 0 {
		log.Printf("[WARN] %d row(s) dropped: CIF already had %d ID groups", stats.Overflow, reshape.MaxTriples)
	}

	if err := rowio.WriteAll(*outPath, reshape.Header(), wide); err != nil {
		log.Fatalf("write output: %v", err)
	}

	log.Printf("✅ reshape done. in=%d out=%d time=%s", stats.RowsIn, stats.RowsOut, time.Since(start))
}
