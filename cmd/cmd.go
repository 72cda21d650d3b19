// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// participantFlag is shared by every command that takes group preferences.
func participantFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:     "participant",
		Aliases:  []string{"p"},
		Usage:    "Participant as age:genre,genre (repeatable), e.g. -p \"25:Trap,Hip Hop\"",
		Required: true,
	}
}

// serveCommand runs the aggregator HTTP service.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the playlist aggregator service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Interface to bind",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on",
			},
		},
		Action: r.Serve,
	}
}

// generateCommand runs a one-shot aggregation without the HTTP layer.
func generateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate a shuffled group playlist and print it",
		Flags: []cli.Flag{
			participantFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Generate,
	}
}

// playCommand launches the interactive playback TUI.
func playCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "play",
		Aliases: []string{"tui"},
		Usage:   "Generate a playlist and play it interactively",
		Flags: []cli.Flag{
			participantFlag(),
		},
		Action: r.Play,
	}
}

// genresCommand prints the supported genre catalog.
func genresCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "genres",
		Usage: "List the supported genres",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Genres,
	}
}

// configCommand handles configuration file management.
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write an example config file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path for the new config file",
						Value:   "config.toml",
					},
				},
				Action: r.ConfigInit,
			},
		},
	}
}
