package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ejjonny/backer-sub000/internal/blueprint"
)

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	to := fs.String("to", string(blueprint.FormatTOML), "Target format (yaml or toml)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("convert needs exactly one blueprint file")
	}

	bp, err := blueprint.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	data, err := blueprint.Marshal(bp, blueprint.Format(*to))
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
