package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bodgit/tilemap/hexcolor"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
)

const (
	prompt = "Enter hex color string: "
	quit   = "quit"
)

// convert reads one color code per line from r and writes its vec4 form to
// w until it reads "quit" or reaches the end of the input. Lines that fail
// to parse are reported and skipped.
func convert(r io.Reader, w io.Writer, logger *log.Logger) error {
	s := bufio.NewScanner(r)
	for {
		if _, err := fmt.Fprint(w, prompt); err != nil {
			return err
		}

		if !s.Scan() {
			break
		}

		line := strings.TrimSpace(s.Text())
		if line == quit {
			break
		}

		v, err := hexcolor.Parse(line)
		if err != nil {
			logger.Error("skipping", "err", err)
			continue
		}

		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}

	return s.Err()
}

func main() {
	app := cli.NewApp()

	app.Name = "hex2vec4"
	app.Usage = "Convert RRGGBB hex colors into normalized vec4 literals"
	app.Version = "1.0.0"

	app.Action = func(c *cli.Context) error {
		logger := log.NewWithOptions(c.App.ErrWriter, log.Options{
			Prefix: "hex2vec4",
		})

		if err := convert(c.App.Reader, c.App.Writer, logger); err != nil {
			return cli.NewExitError(err, 1)
		}

		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
