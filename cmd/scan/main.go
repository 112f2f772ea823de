package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"

	"datcheck/internal/manifest"
	"datcheck/internal/scan"
)

var version = "v1.1"

func main() {
	manifestPath := flag.String("manifest", "", "Manifest file (.json or .yaml) listing {path, columns} pairs; default: built-in file set")
	asJSON := flag.Bool("json", false, "Emit structured JSON results instead of text reports")
	noPause := flag.Bool("no-pause", false, "Skip the final press-enter pause")
	flag.Parse()

	entries, err := manifest.Load(*manifestPath)
	if err != nil {
		log.Fatalf("manifest load error: %v", err)
	}

	if !*asJSON {
		fmt.Printf("==== datcheck scan %s: %d file(s) ====\n", version, len(entries))
	}

	results := make([]scan.Result, 0, len(entries))
	mismatches := 0
	for _, e := range entries {
		res := scan.File(e.Path, e.Columns)
		results = append(results, res)
		if res.Status == scan.Mismatch {
			mismatches++
		}
		if !*asJSON {
			fmt.Print(res.Report())
		}
	}

	if *asJSON {
		b, err := sonic.MarshalIndent(results, "", "  ")
		if err != nil {
			log.Fatalf("marshal results: %v", err)
		}
		fmt.Println(string(b))
	} else {
		fmt.Printf("==== scan complete: %d file(s), %d mismatch(es) ====\n", len(entries), mismatches)
	}

	// Interactive pause so the window does not close under a double-click
	// launch. Presentation only; the scan itself is done by now.
	if !*noPause && !*asJSON {
		fmt.Print("Press Enter to exit...")
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	}
}
