package config

import (
	_ "embed"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"
	AppLogName        = "app.log"
)

// Configuration holds the tunable values for the interpreter. Every field
// has a compiled-in default so the shell runs without any file on disk.
type Configuration struct {
	configFs afero.Fs

	// Prompt is written before each read, without a trailing newline.
	Prompt string `json:"prompt" validate:"required"`
	// Farewell is printed by the exit builtin.
	Farewell string `json:"farewell"`
	// Motd is printed once at startup when non-empty.
	Motd string `json:"motd"`
	// MaxLineLength bounds one input line including its terminator; longer
	// input is truncated, never rejected.
	MaxLineLength int `json:"max_line_length" validate:"gte=2"`
	// MaxArgs bounds the argument vector. One slot is reserved, so at most
	// MaxArgs-1 words of a command line are kept.
	MaxArgs int `json:"max_args" validate:"gte=2"`
	// LogCommands enables the JSON-lines invocation log.
	LogCommands bool `json:"log_commands"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		c.configFs = afero.NewMemMapFs()
	}
	return c.configFs
}

// OpenAppLog opens the application log in an append only state.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	return c.fs().OpenFile(AppLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// Default returns the compiled-in configuration. Its filesystem is
// in-memory, so enabling the app log without a config directory is safe.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
