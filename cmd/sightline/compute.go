package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/bytearena/sightline/common/scene"
	"github.com/bytearena/sightline/common/utils"
	"github.com/bytearena/sightline/common/visibility2d"
	"github.com/bytearena/sightline/common/visibility2d/breakintersections"
)

type computeOptions struct {
	json           bool
	splitCrossings bool
	debug          bool
}

type calculateFunc func(visibility2d.Point, []visibility2d.Segment) (visibility2d.Result, error)

func calculator(splitCrossings bool) calculateFunc {
	if splitCrossings {
		return breakintersections.CalculateVisibility
	}

	return visibility2d.CalculateVisibility
}

// loadScene reads a scene file and warns about segments given twice.
func loadScene(file string) (*scene.Scene, error) {
	s, err := scene.Load(file)
	if err != nil {
		return nil, err
	}

	for _, pair := range visibility2d.NewIndex(s.Segments).Duplicates() {
		utils.WarnWith(bettererrors.
			New(fmt.Sprintf("Segments #%d and #%d are the same segment", pair[0], pair[1])).
			SetContext("file", file))
	}

	return s, nil
}

func computeScene(file string, splitCrossings bool) (*scene.Scene, visibility2d.Result, error) {
	s, err := loadScene(file)
	if err != nil {
		return nil, visibility2d.Result{}, err
	}

	result, err := calculator(splitCrossings)(s.Viewpoint, s.Segments)
	if err != nil {
		return nil, visibility2d.Result{}, errors.Wrapf(err, "could not compute visibility for %s", file)
	}

	return s, result, nil
}

// failure puts err under a message naming what the command was doing.
func failure(message string, file string, err error) error {
	return bettererrors.
		New(message).
		SetContext("file", file).
		With(err)
}

func computeAction(out io.Writer, file string, options computeOptions) error {
	s, result, err := computeScene(file, options.splitCrossings)
	if err != nil {
		return failure("Could not compute visibility", file, err)
	}

	if options.debug {
		spew.Fdump(out, result)
	}

	if options.json {
		data, err := json.MarshalIndent(struct {
			Viewpoint visibility2d.Point `json:"viewpoint"`
			visibility2d.Result
		}{s.Viewpoint, result}, "", "  ")

		if err != nil {
			return failure("Could not encode the result", file, err)
		}

		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Viewpoint %s\n", s.Viewpoint)

	fmt.Fprintln(out, chalk.Green.Color(fmt.Sprintf("Visible (%d):", len(result.Visible))))
	for _, segment := range result.Visible {
		fmt.Fprintf(out, "  %s\n", segment)
	}

	fmt.Fprintln(out, chalk.Red.Color(fmt.Sprintf("Obscured (%d):", len(result.Obscured))))
	for _, segment := range result.Obscured {
		fmt.Fprintf(out, "  %s\n", segment)
	}

	return nil
}
