package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/tilemap"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
)

const (
	defaultDB     = "tilemap.db"
	defaultOutput = "test.ppm"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	if !c.Bool("verbose") {
		return log.New(io.Discard)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "tilemap",
	})
}

func withDB(c *cli.Context, fn func(*tilemap.TileMap) error) error {
	db, err := tilemap.NewMapDB(c.String("db"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer db.Close()

	if err := fn(tilemap.New(db, newLogger(c))); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "tilemap"
	app.Usage = "Character tile map to PPM image renderer"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"TILEMAP_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "render",
			Usage:       "Render a map file to a PPM image",
			Description: "Without a FILE the built-in default map is rendered.",
			ArgsUsage:   "[FILE]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   defaultOutput,
					Usage:   "path to output image",
				},
			},
			Action: func(c *cli.Context) error {
				t := tilemap.New(nil, newLogger(c))
				if err := t.RenderFile(c.Args().First(), c.String("output")); err != nil {
					return cli.NewExitError(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "import",
			Usage:     "Import map files into the database",
			ArgsUsage: "FILE...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				return withDB(c, func(t *tilemap.TileMap) error {
					return t.Import(c.Args().Slice()...)
				})
			},
		},
		{
			Name:      "export",
			Usage:     "Render a map from the database to a PPM image",
			ArgsUsage: "NAME",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "path to output image (default: NAME.ppm)",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				name := c.Args().First()
				out := c.String("output")
				if out == "" {
					out = name + ".ppm"
				}

				return withDB(c, func(t *tilemap.TileMap) error {
					return t.Export(name, out)
				})
			},
		},
		{
			Name:  "list",
			Usage: "List the maps in the database",
			Action: func(c *cli.Context) error {
				return withDB(c, func(t *tilemap.TileMap) error {
					names, err := t.List()
					if err != nil {
						return err
					}
					for _, name := range names {
						fmt.Fprintln(c.App.Writer, name)
					}
					return nil
				})
			},
		},
		{
			Name:      "scan",
			Usage:     "Render every map file under a directory",
			ArgsUsage: "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				t := tilemap.New(nil, newLogger(c))
				if err := t.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
