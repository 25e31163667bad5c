package config

import (
	"encoding/json"
	"io/ioutil"
	"path"
	"path/filepath"
	"strings"

	"github.com/kardianos/osext"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v3"

	"github.com/bytearena/sightline/common/render"
)

type RenderConfig struct {
	Margin        float64 `json:"margin" yaml:"margin"`
	Scale         float64 `json:"scale" yaml:"scale"`
	GridStep      float64 `json:"gridStep" yaml:"gridStep"`
	PixelsPerUnit float64 `json:"pixelsPerUnit" yaml:"pixelsPerUnit"`

	Compiler     string   `json:"compiler" yaml:"compiler"`
	CompilerArgs []string `json:"compilerArgs" yaml:"compilerArgs"`
	KeepAux      bool     `json:"keepAux" yaml:"keepAux"`
}

func DefaultRenderConfig() RenderConfig {
	opts := render.DefaultOptions()

	return RenderConfig{
		Margin:        opts.Margin,
		Scale:         opts.Scale,
		GridStep:      opts.GridStep,
		PixelsPerUnit: opts.PixelsPerUnit,
		Compiler:      "pdflatex",
		CompilerArgs:  []string{"-interaction=batchmode"},
	}
}

// LoadRenderConfig reads a JSON file, or a YAML one when the extension is
// .yml or .yaml. Missing settings keep their default value.
func LoadRenderConfig(filename string) (RenderConfig, error) {
	config := DefaultRenderConfig()

	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "could not read configuration %s", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}

	if err != nil {
		return config, errors.Wrapf(err, "could not decode configuration %s", filename)
	}

	if err := config.Validate(); err != nil {
		return config, errors.Wrapf(err, "invalid configuration %s", filename)
	}

	if config.Compiler, err = resolveCommand(config.Compiler); err != nil {
		return config, err
	}

	return config, nil
}

func (c RenderConfig) Validate() error {
	if c.Margin < 0 {
		return errors.New("margin must not be negative")
	}

	if c.Scale <= 0 {
		return errors.New("scale must be positive")
	}

	if c.GridStep <= 0 {
		return errors.New("gridStep must be positive")
	}

	if c.PixelsPerUnit <= 0 {
		return errors.New("pixelsPerUnit must be positive")
	}

	if c.Compiler == "" {
		return errors.New("compiler must be provided")
	}

	return nil
}

func (c RenderConfig) RenderOptions() render.Options {
	return render.Options{
		Margin:        c.Margin,
		Scale:         c.Scale,
		GridStep:      c.GridStep,
		PixelsPerUnit: c.PixelsPerUnit,
	}
}

func (c RenderConfig) NewCompiler() *render.Compiler {
	compiler := render.NewCompiler(c.Compiler, c.CompilerArgs)
	compiler.KeepAux = c.KeepAux

	return compiler
}

// resolveCommand leaves bare command names to the PATH lookup and anchors
// relative paths to the folder of the running executable.
func resolveCommand(command string) (string, error) {
	if !strings.ContainsRune(command, '/') || path.IsAbs(command) {
		return command, nil
	}

	return getAbsoluteDir(command)
}

func getAbsoluteDir(relative string) (string, error) {
	exfolder, err := osext.ExecutableFolder()
	if err != nil {
		return "", errors.Wrap(err, "could not locate the executable folder")
	}

	return path.Join(exfolder, relative), nil
}
