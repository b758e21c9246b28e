package main

import (
	"fmt"
	"log"
	"os"

	"github.com/SwapBan/spritemem"
	"github.com/urfave/cli/v2"
)

const (
	inputImage = "sprite.png"
	outputMIF  = "sprite_output.mif"

	usage = "Usage: png2mif"
)

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "png2mif"
	app.Usage = fmt.Sprintf("Convert %s to the 1024 word RGB565 memory %s", inputImage, outputMIF)
	app.HideVersion = true
	app.HideHelp = true

	// Flags are not accepted, so -h and friends get the plain usage line
	app.OnUsageError = func(c *cli.Context, err error, isSubcommand bool) error {
		return cli.NewExitError(usage, 1)
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() != 0 {
			return cli.NewExitError(usage, 1)
		}

		if _, err := spritemem.ConvertMIF(inputImage, outputMIF); err != nil {
			return cli.NewExitError(err, 1)
		}

		fmt.Fprintln(c.App.Writer, "✅ 1024-depth MIF file created.")
		return nil
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
