package main

import (
	"os"
	"runtime"

	"github.com/urfave/cli"

	"github.com/bytearena/sightline/common/utils"
)

func main() {
	app := makeapp()

	if err := app.Run(os.Args); err != nil {
		utils.FailWith(err)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "sightline"
	app.Usage = "Which segments can be seen from a point"
	app.Description = "Reads a viewpoint and segments (first line \"px py\", then one \"x1 y1 x2 y2\" line per segment) and finds the segments visible from the viewpoint"
	app.Version = utils.GetVersion()

	splitFlag := cli.BoolFlag{Name: "split-crossings", Usage: "Split crossing segments before the sweep"}
	configFlag := cli.StringFlag{Name: "config", Value: "", Usage: "Render configuration file (JSON or YAML)"}

	app.Commands = []cli.Command{
		{
			Name:      "compute",
			Aliases:   []string{"c"},
			Usage:     "Print the visible and obscured segments of a scene",
			ArgsUsage: "<file>",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "json", Usage: "Print the result as JSON"},
				splitFlag,
				cli.BoolFlag{Name: "debug", Usage: "Dump the result structure"},
			},
			Action: func(c *cli.Context) error {
				file, err := fileArgument(c)
				if err != nil {
					return err
				}

				return computeAction(os.Stdout, file, computeOptions{
					json:           c.Bool("json"),
					splitCrossings: c.Bool("split-crossings"),
					debug:          c.Bool("debug"),
				})
			},
		},
		{
			Name:      "render",
			Aliases:   []string{"r"},
			Usage:     "Draw a scene as a TikZ document and compile it to PDF",
			ArgsUsage: "<file>",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "out", Value: "", Usage: "Destination .tex file; defaults to the scene file name"},
				configFlag,
				splitFlag,
				cli.BoolFlag{Name: "no-compile", Usage: "Only write the .tex document"},
				cli.BoolFlag{Name: "open", Usage: "Open the PDF once compiled"},
			},
			Action: func(c *cli.Context) error {
				file, err := fileArgument(c)
				if err != nil {
					return err
				}

				return renderAction(file, renderOptions{
					out:            c.String("out"),
					config:         c.String("config"),
					splitCrossings: c.Bool("split-crossings"),
					noCompile:      c.Bool("no-compile"),
					open:           c.Bool("open"),
				})
			},
		},
		{
			Name:      "svg",
			Usage:     "Draw a scene as an SVG document",
			ArgsUsage: "<file>",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "out", Value: "", Usage: "Destination .svg file; defaults to the scene file name"},
				configFlag,
				splitFlag,
				cli.BoolFlag{Name: "open", Usage: "Open the SVG once written"},
			},
			Action: func(c *cli.Context) error {
				file, err := fileArgument(c)
				if err != nil {
					return err
				}

				return svgAction(file, renderOptions{
					out:            c.String("out"),
					config:         c.String("config"),
					splitCrossings: c.Bool("split-crossings"),
					open:           c.Bool("open"),
				})
			},
		},
		{
			Name:      "batch",
			Aliases:   []string{"b"},
			Usage:     "Compute many scenes concurrently",
			ArgsUsage: "<file>...",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "workers", Value: runtime.NumCPU(), Usage: "Number of scenes computed at the same time"},
				splitFlag,
				cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() == 0 {
					return cli.NewExitError("Please, specify at least one scene file", 1)
				}

				return batchAction(os.Stdout, c.Args(), batchOptions{
					workers:        c.Int("workers"),
					splitCrossings: c.Bool("split-crossings"),
					debug:          c.Bool("debug"),
				})
			},
		},
		{
			Name:  "serve",
			Usage: "Serve visibility queries over HTTP",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "addr", Value: ":8080", Usage: "Address to listen on"},
				configFlag,
			},
			Action: func(c *cli.Context) error {
				return serveAction(c.String("addr"), c.String("config"))
			},
		},
	}

	return app
}

func fileArgument(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", cli.NewExitError("Please, specify exactly one scene file", 1)
	}

	return c.Args().First(), nil
}
