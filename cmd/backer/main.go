// Package main provides the backer command for inspecting layout blueprints.
//
// Usage:
//
//	backer dump [-size WxH] [-watch] file       Print leaf rectangles and the layout tree
//	backer preview [-size WxH] [-color] file    Render leaves as boxes in the terminal
//	backer convert -to toml file                Re-encode a blueprint
//	backer help                                 Show help
//
// Set BACKER_DEBUG to a file path to log layout passes.
package main

import (
	"fmt"
	"os"

	"github.com/ejjonny/backer-sub000/internal/debug"
)

const version = "0.1.0"

const usage = `backer - layout blueprint inspector

Usage:
  backer <command> [options] file

Commands:
  dump        Print leaf rectangles and the laid out tree
  preview     Render leaves as ASCII boxes
  convert     Re-encode a blueprint as YAML or TOML
  version     Print version information
  help        Show this help message

Options:
  -size WxH   Layout area (dump default 100x100, preview default terminal size)
  -watch      Re-run whenever the file changes (dump, preview)
  -color      Color boxes in preview output
  -to FORMAT  Target format for convert (yaml or toml)

Examples:
  backer dump layout.yaml
  backer dump -size 320x240 -watch layout.toml
  backer preview -color layout.yaml
  backer convert -to toml layout.yaml > layout.toml
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}
	defer debug.Close()

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "dump":
		err = runDump(args)
	case "preview":
		err = runPreview(args)
	case "convert":
		err = runConvert(args)
	case "version":
		fmt.Printf("backer version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		debug.Close()
		os.Exit(1)
	}
}
