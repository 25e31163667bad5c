package utils

import (
	"log"

	"github.com/ttacon/chalk"
)

// Check panics on errors that leave the process in an unusable state.
func Check(err error, msg string) {
	if err != nil {
		log.Print(chalk.Red.Color(msg))
		log.Panicln(err)
	}
}
