package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/heinvv/ariatabs"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "check":
		if err := runCheck(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "repair":
		if err := runRepair(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("ariatabs version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`ariatabs - accessible tabs markup tooling

Usage:
  ariatabs <command> [arguments]

Commands:
  check <files...>      Strict-validate tabs widgets in HTML files
  repair <files...>     Repair tabs markup (forgiving mode), print result
  version               Print version
  help                  Show this help

Options for repair:
  -w                    Write result back to the file instead of stdout

Examples:
  ariatabs check templates/settings.html
  ariatabs repair -w templates/settings.html`)
}

// quietLogger keeps library warnings out of tool output; findings are
// reported explicitly per file.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runCheck(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("check requires at least one file")
	}

	failed := false
	for _, path := range args {
		doc, err := loadDocument(path)
		if err != nil {
			return err
		}

		containers := doc.Find(`[data-component="tabs"]`)
		if containers.Length() == 0 {
			fmt.Printf("%s: no tabs widgets found\n", path)
			continue
		}

		containers.Each(func(i int, sel *goquery.Selection) {
			cfg := ariatabs.ConfigFromAttrs(sel)
			cfg.Strict = true
			cfg.Logger = quietLogger()
			ctrl, err := ariatabs.Init(sel, cfg)
			switch {
			case err != nil:
				failed = true
				fmt.Printf("%s: widget %d: %v\n", path, i, err)
			case ctrl.Inert():
				failed = true
				fmt.Printf("%s: widget %d: incomplete structure (missing tablist, tabs, or panels)\n", path, i)
			default:
				fmt.Printf("%s: widget %d: ok (%d tabs)\n", path, i, len(ctrl.Tabs()))
			}
		})
	}

	if failed {
		return fmt.Errorf("validation failed")
	}
	return nil
}

func runRepair(args []string) error {
	var write bool
	var paths []string
	for _, arg := range args {
		if arg == "-w" {
			write = true
		} else {
			paths = append(paths, arg)
		}
	}
	if len(paths) == 0 {
		return fmt.Errorf("repair requires at least one file")
	}

	for _, path := range paths {
		doc, err := loadDocument(path)
		if err != nil {
			return err
		}

		reg := ariatabs.NewRegistry()
		reg.OnError = func(sel *goquery.Selection, err error) {
			fmt.Fprintf(os.Stderr, "%s: skipped container: %v\n", path, err)
		}
		reg.Mount(doc, ariatabs.Config{Logger: quietLogger()})

		out, err := doc.Html()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if write {
			if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
				return err
			}
			fmt.Printf("%s: repaired\n", path)
		} else {
			fmt.Println(out)
		}
	}
	return nil
}

func loadDocument(path string) (*goquery.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
