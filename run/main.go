package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
)

// Version of the hydrocorrect command.
const Version = "0.3.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := Meta{
		Ctx:       ctx,
		FS:        afero.NewOsFs(),
		Ui:        &cli.BasicUi{Reader: os.Stdin, Writer: os.Stdout, ErrorWriter: os.Stderr},
		LogOutput: os.Stderr,
	}
	c := cli.NewCLI("hydrocorrect", Version)
	c.Args = os.Args[1:]
	c.Commands = commands(m)

	code, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hydrocorrect: %v\n", err)
	}
	stop()
	os.Exit(code)
}

func commands(m Meta) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"fill": func() (cli.Command, error) {
			return &FillCommand{Meta: m}, nil
		},
		"locate": func() (cli.Command, error) {
			return &LocateCommand{Meta: m}, nil
		},
		"version": func() (cli.Command, error) {
			return &VersionCommand{Meta: m}, nil
		},
	}
}
