package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ttacon/chalk"
	bettererrors "github.com/xtuc/better-errors"
	bettererrorstree "github.com/xtuc/better-errors/printer/tree"
)

func FailWith(err error) {
	failWith(os.Stderr, err)
	os.Exit(1)
}

func failWith(w io.Writer, err error) {
	command := strings.Join(os.Args, " ")

	berror := bettererrors.
		New(command).
		SetContext("version", GetVersion()).
		With(err)

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, chalk.Red.Color("❌  An error occurred."))
	fmt.Fprintln(w, "")

	fmt.Fprint(w, bettererrorstree.PrintChain(berror))

	fmt.Fprintln(w, "")
}

func WarnWith(err error) {
	warnWith(os.Stderr, err)
}

func warnWith(w io.Writer, err error) {
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, chalk.Yellow.Color("⚠️  Warning"))
	fmt.Fprintln(w, "")

	if bettererrors.IsBetterError(err) {
		fmt.Fprint(w, bettererrorstree.PrintChain(err.(*bettererrors.Chain)))
	} else {
		fmt.Fprintln(w, err.Error())
	}

	fmt.Fprintln(w, "")
}
