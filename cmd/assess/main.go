// Command assess scores a single image from the command line, prints
// the text report and writes a JSON copy of the structured results next
// to the image.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-image-quality/internal/assessor"
	"go-image-quality/internal/loader"
)

func main() {
	jsonPath := flag.String("json", "", "path for the JSON results dump (default: <image>_quality_report.json)")
	noJSON := flag.Bool("no-json", false, "skip writing the JSON results dump")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <image_path>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	imagePath := flag.Arg(0)

	engine, err := assessor.NewDefault()
	if err != nil {
		fatalf("invalid assessment configuration: %v", err)
	}

	img, err := loader.NewFileSource(nil).Load(imagePath)
	if err != nil {
		fatalf("could not load image: %v", err)
	}

	report, err := engine.Assess(img, filepath.Base(imagePath))
	if err != nil {
		fatalf("assessment failed: %v", err)
	}

	fmt.Println(assessor.RenderText(report))

	if *noJSON {
		return
	}
	out := *jsonPath
	if out == "" {
		out = strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + "_quality_report.json"
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fatalf("could not encode results: %v", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fatalf("could not write results: %v", err)
	}
	fmt.Printf("\nDetailed results saved to: %s\n", out)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
