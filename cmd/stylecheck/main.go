// Command stylecheck scans source files for violations of the house
// style and exits non-zero when any are found, making it usable as a
// pre-commit or CI gate.
//
// Usage:
//
//	stylecheck [flags] [path]
//
// The path may be a single file or a directory tree; it defaults to
// the current directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/olypsys/stylecheck/pkg/config"
	"github.com/olypsys/stylecheck/pkg/domain"
	"github.com/olypsys/stylecheck/pkg/lint"
	"github.com/olypsys/stylecheck/pkg/scanner"
)

// ANSI escapes, matching the tones the team is used to from CI logs.
const (
	colorRed   = "\033[1;91m"
	colorGreen = "\033[1;92m"
	colorReset = "\033[0m"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to YAML configuration file")
	workers := flag.Int("workers", 0, "number of files checked concurrently (0 = config value)")
	year := flag.Int("year", 0, "calendar year expected in copyright banners (0 = current year)")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Print(err)
			return 2
		}
		cfg = loaded
	}
	if *workers > 0 {
		cfg.Discovery.Workers = *workers
	}
	if *year > 0 {
		cfg.Checks.Year = *year
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("invalid config: %v", err)
		return 2
	}

	checker := lint.NewChecker(
		lint.WithLineLengthCheck(cfg.Checks.LineLength),
		lint.WithMaxLineLength(cfg.Checks.MaxLineLength),
		lint.WithYear(cfg.Checks.Year),
	)

	sc := scanner.New(
		scanner.WithChecker(checker),
		scanner.WithWorkers(cfg.Discovery.Workers),
		scanner.WithMaxFileSize(cfg.Discovery.MaxFileSize),
		scanner.WithIncludePatterns(cfg.Discovery.Include),
		scanner.WithExcludeDirs(cfg.Discovery.ExcludeDirs),
		scanner.WithCPathFilters(cfg.Discovery.CppPaths),
		scanner.WithSwiftPathFilters(cfg.Discovery.SwiftPaths),
	)

	target := "."
	if flag.NArg() > 0 {
		target = flag.Arg(0)
	}

	info, err := os.Stat(target)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ctx := context.Background()

	var (
		reports []domain.Report
		summary domain.Summary
	)
	if info.IsDir() {
		result, err := sc.Scan(ctx, target)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		reports = result.Reports
		summary = result.Summary
	} else {
		report, err := sc.ScanFile(ctx, target)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		reports = []domain.Report{*report}
		summary.Add(report)
	}

	paint := func(color, s string) string {
		if *noColor {
			return s
		}
		return color + s + colorReset
	}

	for _, r := range reports {
		for _, d := range r.Diagnostics {
			fmt.Println(paint(colorRed, "Error, "+d.String()))
		}
	}

	if !summary.OK() {
		plural := ""
		if summary.Violations > 1 {
			plural = "s"
		}
		fmt.Println(paint(colorRed, fmt.Sprintf("%d error%s found in %d files.", summary.Violations, plural, summary.Files)))
		return 1
	}

	fmt.Println(paint(colorGreen, fmt.Sprintf("All %d source files passed linting", summary.Files)))
	return 0
}
