package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"tripline/internal/di"
	"tripline/internal/structures"
)

func main() {
	app := &cli.App{
		Name:  "tripline",
		Usage: "interactive travel itinerary manager",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the yaml config file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "mirror log output to stderr",
			},
		},
		Action: func(c *cli.Context) error {
			_, err := di.InitApp(&structures.CliFlags{
				ConfigPath: c.String("config"),
				DebugMode:  c.Bool("debug"),
			})
			return err
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
