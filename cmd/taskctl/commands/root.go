package commands

import (
	"taskhub/version"

	"github.com/urfave/cli/v3"
)

// NewApp creates the root CLI application
func NewApp() *cli.Command {
	return &cli.Command{
		Name:    "taskctl",
		Usage:   "Taskhub CLI - manage tasks",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "server",
				Usage: "Taskhub server URL",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output format: json or yaml",
				Value: "json",
			},
		},
		Commands: []*cli.Command{
			TaskCommand(),
		},
	}
}
