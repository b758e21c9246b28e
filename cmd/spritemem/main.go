package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/SwapBan/spritemem"
	"github.com/SwapBan/spritemem/memfile"
	"github.com/urfave/cli/v2"
)

const defaultDB = "spritemem.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// usageError shows the command help and exits with status 1.
func usageError(c *cli.Context) error {
	cli.ShowCommandHelp(c, c.Command.Name)
	return cli.NewExitError("", 1)
}

func format(c *cli.Context) (memfile.Format, error) {
	f, err := memfile.ParseFormat(c.String("format"))
	if err != nil {
		return 0, cli.NewExitError(err, 1)
	}
	return f, nil
}

func open(c *cli.Context) (*spritemem.SpriteMem, error) {
	m, err := spritemem.New(c.String("db"), newLogger(c))
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return m, nil
}

func newApp(cwd string) *cli.App {
	app := cli.NewApp()

	app.Name = "spritemem"
	app.Usage = "RGB565 sprite memory generator"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"SPRITEMEM_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to sprite library",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	formatFlag := &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "hex",
		Usage:   "output format, hex or mif",
	}

	app.Commands = []*cli.Command{
		{
			Name:      "hex",
			Usage:     "Convert an image to a $readmemh file, transparent pixels become magenta",
			ArgsUsage: "INPUT OUTPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return usageError(c)
				}

				n, err := spritemem.ConvertHex(c.Args().Get(0), c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Fprintf(c.App.Writer, "Wrote %d words to %s\n", n, c.Args().Get(1))
				return nil
			},
		},
		{
			Name:      "mif",
			Usage:     "Convert an image to a Memory Initialization File, alpha is ignored",
			ArgsUsage: "INPUT OUTPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return usageError(c)
				}

				n, err := spritemem.ConvertMIF(c.Args().Get(0), c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Fprintf(c.App.Writer, "Wrote %d words to %s\n", n, c.Args().Get(1))
				return nil
			},
		},
		{
			Name:      "preview",
			Usage:     "Render a .hex or .mif sprite memory as a PNG image",
			ArgsUsage: "INPUT OUTPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return usageError(c)
				}

				if err := spritemem.Preview(c.Args().Get(0), c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "palette",
			Usage:       "Convert an image to a 16 color palette and 4-bit index memory",
			Description: "Sprites with more than 16 colors are reduced with a median cut.",
			ArgsUsage:   "INPUT PALETTE INDEX",
			Flags:       []cli.Flag{formatFlag},
			Action: func(c *cli.Context) error {
				if c.NArg() != 3 {
					return usageError(c)
				}

				f, err := format(c)
				if err != nil {
					return err
				}

				if err := spritemem.Palette(c.Args().Get(0), c.Args().Get(1), c.Args().Get(2), f); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "import",
			Usage:     "Import every image in a directory into the sprite library",
			ArgsUsage: "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					return usageError(c)
				}

				m, err := open(c)
				if err != nil {
					return err
				}
				defer m.Close()

				if err := m.Import(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "export",
			Usage:     "Write a single library sprite",
			ArgsUsage: "NAME OUTPUT",
			Flags:     []cli.Flag{formatFlag},
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return usageError(c)
				}

				f, err := format(c)
				if err != nil {
					return err
				}

				m, err := open(c)
				if err != nil {
					return err
				}
				defer m.Close()

				if err := m.Export(c.Args().Get(0), c.Args().Get(1), f); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "bank",
			Usage:     "Write every library sprite as one memory",
			ArgsUsage: "OUTPUT",
			Flags:     []cli.Flag{formatFlag},
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return usageError(c)
				}

				f, err := format(c)
				if err != nil {
					return err
				}

				m, err := open(c)
				if err != nil {
					return err
				}
				defer m.Close()

				names, err := m.ExportBank(c.Args().First(), f)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Fprintf(c.App.Writer, "Wrote %d sprites to %s\n", len(names), c.Args().First())
				return nil
			},
		},
		{
			Name:  "list",
			Usage: "List the sprites in the library",
			Action: func(c *cli.Context) error {
				m, err := open(c)
				if err != nil {
					return err
				}
				defer m.Close()

				names, err := m.Names()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, name := range names {
					fmt.Fprintln(c.App.Writer, name)
				}
				return nil
			},
		},
	}

	return app
}

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	if err := newApp(cwd).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
