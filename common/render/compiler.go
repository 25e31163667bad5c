package render

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Compiler turns a TikZ document into a PDF with an external LaTeX engine.
type Compiler struct {
	Command string
	Args    []string

	// KeepAux keeps the .aux and .log files next to the document.
	KeepAux bool

	Stdout io.Writer
	Stderr io.Writer
}

func NewCompiler(command string, args []string) *Compiler {
	return &Compiler{
		Command: command,
		Args:    args,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Compile runs the engine in the directory of texPath and returns the path
// of the produced PDF.
func (c *Compiler) Compile(ctx context.Context, texPath string) (string, error) {
	dir := filepath.Dir(texPath)
	file := filepath.Base(texPath)
	stem := strings.TrimSuffix(file, filepath.Ext(file))

	args := make([]string, 0, len(c.Args)+1)
	args = append(args, c.Args...)
	args = append(args, file)

	cmd := exec.CommandContext(ctx, c.Command, args...)
	cmd.Dir = dir
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	runErr := cmd.Run()

	if !c.KeepAux {
		for _, ext := range []string{".aux", ".log"} {
			if err := os.Remove(filepath.Join(dir, stem+ext)); err != nil && !os.IsNotExist(err) {
				return "", errors.Wrapf(err, "could not remove %s%s", stem, ext)
			}
		}
	}

	if runErr != nil {
		return "", errors.Wrapf(runErr, "%s failed on %s", c.Command, texPath)
	}

	return filepath.Join(dir, stem+".pdf"), nil
}
