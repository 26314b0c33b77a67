package config

import (
	_ "embed"
	"errors"
	"os"
	"reflect"
	"strconv"
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
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrNoEventLog is returned when event logging is disabled.
var ErrNoEventLog = errors.New("event log disabled")

type Configuration struct {
	configFs afero.Fs

	Prompt   string `json:"prompt"`
	Banner   bool   `json:"banner"`
	Farewell string `json:"farewell" validate:"required"`

	SearchPath []string `json:"search_path" validate:"min=1,dive,required,startswith=/"`

	RedirectFileMode string `json:"redirect_file_mode" validate:"required,filemode"`

	Color string `json:"color" validate:"oneof=auto always never"`

	EventLog string `json:"event_log"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})
	if err := validate.RegisterValidation("filemode", validateFileMode); err != nil {
		return err
	}

	return validate.Struct(c)
}

func validateFileMode(fl validator.FieldLevel) bool {
	_, err := parseFileMode(fl.Field().String())
	return err == nil
}

func parseFileMode(mode string) (os.FileMode, error) {
	perm, err := strconv.ParseUint(mode, 8, 32)
	if err != nil {
		return 0, err
	}
	if perm > 0777 {
		return 0, strconv.ErrRange
	}
	return os.FileMode(perm), nil
}

// FileMode returns the permissions for files created by output redirection.
func (c *Configuration) FileMode() os.FileMode {
	mode, err := parseFileMode(c.RedirectFileMode)
	if err != nil {
		return 0640
	}
	return mode
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewOsFs()
	}
	return c.configFs
}

// OpenEventLog opens the event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	if c.EventLog == "" {
		return nil, ErrNoEventLog
	}
	return c.fs().OpenFile(c.EventLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

func (c *Configuration) ReadEventLog() (afero.File, error) {
	if c.EventLog == "" {
		return nil, ErrNoEventLog
	}
	return c.fs().OpenFile(c.EventLog, os.O_RDONLY, 0600)
}

// Default returns the built-in configuration used when no configuration
// directory is given. Event logging is off.
func Default() *Configuration {
	cfg := defaultConfig()
	cfg.EventLog = ""
	return cfg
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
