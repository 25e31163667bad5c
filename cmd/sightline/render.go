package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/skratchdot/open-golang/open"

	"github.com/bytearena/sightline/common/config"
	"github.com/bytearena/sightline/common/render"
	"github.com/bytearena/sightline/common/visibility2d"
)

type renderOptions struct {
	out            string
	config         string
	splitCrossings bool
	noCompile      bool
	open           bool
}

func loadRenderConfig(filename string) (config.RenderConfig, error) {
	if filename == "" {
		return config.DefaultRenderConfig(), nil
	}

	return config.LoadRenderConfig(filename)
}

// outputPath replaces the extension of the scene file unless out is set.
func outputPath(file string, out string, ext string) string {
	if out != "" {
		return out
	}

	return strings.TrimSuffix(file, filepath.Ext(file)) + ext
}

type documentWriter func(w io.Writer, viewpoint visibility2d.Point, result visibility2d.Result, opts render.Options) error

func writeDocument(path string, write documentWriter, viewpoint visibility2d.Point, result visibility2d.Result, opts render.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", path)
	}

	if err := write(f, viewpoint, result, opts); err != nil {
		f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "could not write %s", path)
}

func renderAction(file string, options renderOptions) error {
	cfg, err := loadRenderConfig(options.config)
	if err != nil {
		return failure("Could not load the render configuration", options.config, err)
	}

	s, result, err := computeScene(file, options.splitCrossings)
	if err != nil {
		return failure("Could not compute visibility", file, err)
	}

	texPath := outputPath(file, options.out, ".tex")

	if err := writeDocument(texPath, render.WriteTikZ, s.Viewpoint, result, cfg.RenderOptions()); err != nil {
		return failure("Could not write the TikZ document", texPath, err)
	}

	log.Println("Wrote " + texPath)

	if options.noCompile {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Println("Compiling " + texPath + " to PDF...")

	pdfPath, err := cfg.NewCompiler().Compile(ctx, texPath)
	if err != nil {
		return failure("Could not compile the TikZ document", texPath, err)
	}

	log.Println("PDF generated successfully: " + pdfPath)

	if options.open {
		return errors.Wrapf(open.Run(pdfPath), "could not open %s", pdfPath)
	}

	return nil
}

func svgAction(file string, options renderOptions) error {
	cfg, err := loadRenderConfig(options.config)
	if err != nil {
		return failure("Could not load the render configuration", options.config, err)
	}

	s, result, err := computeScene(file, options.splitCrossings)
	if err != nil {
		return failure("Could not compute visibility", file, err)
	}

	svgPath := outputPath(file, options.out, ".svg")

	if err := writeDocument(svgPath, render.WriteSVG, s.Viewpoint, result, cfg.RenderOptions()); err != nil {
		return failure("Could not write the SVG diagram", svgPath, err)
	}

	log.Println("Wrote " + svgPath)

	if options.open {
		return errors.Wrapf(open.Run(svgPath), "could not open %s", svgPath)
	}

	return nil
}
