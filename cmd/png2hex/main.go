package main

import (
	"fmt"
	"log"
	"os"

	"github.com/SwapBan/spritemem"
	"github.com/urfave/cli/v2"
)

const usage = "Usage: png2hex <input.png> <output.hex>"

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "png2hex"
	app.Usage = "Convert a sprite to a 1024 word RGB565 $readmemh file"
	app.ArgsUsage = "INPUT OUTPUT"
	app.HideVersion = true
	app.HideHelp = true

	// Flags are not accepted, so -h and friends get the plain usage line
	app.OnUsageError = func(c *cli.Context, err error, isSubcommand bool) error {
		return cli.NewExitError(usage, 1)
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() != 2 {
			return cli.NewExitError(usage, 1)
		}

		out := c.Args().Get(1)
		n, err := spritemem.ConvertHex(c.Args().Get(0), out)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		fmt.Fprintf(c.App.Writer, "Wrote %d words to %s\n", n, out)
		return nil
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
