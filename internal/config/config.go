// Package config provides configuration management for shelfpage using
// Viper for loading from files, environment variables, and command-line
// flags.
//
// Values come from .shelfpage.yml (or the file named by --config or
// SHELFPAGE_CONFIG_FILE), overridden by SHELFPAGE_<SECTION>_<OPTION>
// environment variables and bound flags. Load fills defaults for anything
// left unset and validates the result.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	shelferrors "github.com/conneroisu/shelfpage/internal/errors"
	"github.com/conneroisu/shelfpage/internal/logging"
	"github.com/conneroisu/shelfpage/internal/page"
	"github.com/conneroisu/shelfpage/internal/validation"
)

// EnvPrefix is the environment variable prefix.
const EnvPrefix = "SHELFPAGE"

// DefaultFile is the config file written by init and searched by default.
const DefaultFile = ".shelfpage.yml"

type Config struct {
	Page        PageConfig        `mapstructure:"page" yaml:"page"`
	Selectors   SelectorsConfig   `mapstructure:"selectors" yaml:"selectors"`
	Theme       ThemeConfig       `mapstructure:"theme" yaml:"theme"`
	Covers      CoversConfig      `mapstructure:"covers" yaml:"covers"`
	Server      ServerConfig      `mapstructure:"server" yaml:"server"`
	Development DevelopmentConfig `mapstructure:"development" yaml:"development"`
	Log         LogConfig         `mapstructure:"log" yaml:"log"`
}

type PageConfig struct {
	// Source is the host page; empty uses the built-in page.
	Source string `mapstructure:"source" yaml:"source"`
	// Output is where render writes; empty or "-" is stdout.
	Output string `mapstructure:"output" yaml:"output"`
}

type SelectorsConfig struct {
	Categories   []string `mapstructure:"categories" yaml:"categories" validate:"min=1,dive,required"`
	Bestsellers  []string `mapstructure:"bestsellers" yaml:"bestsellers" validate:"min=1,dive,required"`
	SearchInput  []string `mapstructure:"search_input" yaml:"search_input" validate:"min=1,dive,required"`
	SearchButton []string `mapstructure:"search_button" yaml:"search_button" validate:"min=1,dive,required"`
}

type ThemeConfig struct {
	HighlightColor string `mapstructure:"highlight_color" yaml:"highlight_color" validate:"required,hexcolor"`
}

type CoversConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url" validate:"required,http_url"`
}

type ServerConfig struct {
	Host           string   `mapstructure:"host" yaml:"host"`
	Port           int      `mapstructure:"port" yaml:"port" validate:"gte=0,lte=65535"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

type DevelopmentConfig struct {
	HotReload  bool `mapstructure:"hot_reload" yaml:"hot_reload"`
	DebounceMS int  `mapstructure:"debounce_ms" yaml:"debounce_ms" validate:"gte=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	sel := page.DefaultSelectors()
	return &Config{
		Selectors: SelectorsConfig{
			Categories:   sel.Categories,
			Bestsellers:  sel.Bestsellers,
			SearchInput:  sel.SearchInput,
			SearchButton: sel.SearchButton,
		},
		Theme:  ThemeConfig{HighlightColor: page.DefaultHighlightColor},
		Covers: CoversConfig{BaseURL: "https://via.placeholder.com/150x220"},
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
		Development: DevelopmentConfig{
			HotReload:  true,
			DebounceMS: 200,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// SetDefaults registers every default with viper so environment variables
// are seen for keys that no file sets.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("page.source", d.Page.Source)
	v.SetDefault("page.output", d.Page.Output)
	v.SetDefault("selectors.categories", d.Selectors.Categories)
	v.SetDefault("selectors.bestsellers", d.Selectors.Bestsellers)
	v.SetDefault("selectors.search_input", d.Selectors.SearchInput)
	v.SetDefault("selectors.search_button", d.Selectors.SearchButton)
	v.SetDefault("theme.highlight_color", d.Theme.HighlightColor)
	v.SetDefault("covers.base_url", d.Covers.BaseURL)
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.allowed_origins", d.Server.AllowedOrigins)
	v.SetDefault("development.hot_reload", d.Development.HotReload)
	v.SetDefault("development.debounce_ms", d.Development.DebounceMS)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// BindEnv makes v read SHELFPAGE_<SECTION>_<OPTION> variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// Load reads the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads v, fills defaults and validates.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, shelferrors.WrapConfig(err, shelferrors.ErrCodeConfigInvalid, "cannot decode configuration")
	}

	cfg.Selectors.Categories = normalizeList(cfg.Selectors.Categories)
	cfg.Selectors.Bestsellers = normalizeList(cfg.Selectors.Bestsellers)
	cfg.Selectors.SearchInput = normalizeList(cfg.Selectors.SearchInput)
	cfg.Selectors.SearchButton = normalizeList(cfg.Selectors.SearchButton)
	cfg.Server.AllowedOrigins = normalizeList(cfg.Server.AllowedOrigins)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// PageSelectors converts the selector section for the page package.
func (c *Config) PageSelectors() page.Selectors {
	return page.Selectors{
		Categories:   c.Selectors.Categories,
		Bestsellers:  c.Selectors.Bestsellers,
		SearchInput:  c.Selectors.SearchInput,
		SearchButton: c.Selectors.SearchButton,
	}
}

// PageOptions builds the page options for one render.
func (c *Config) PageOptions(logger logging.Logger, notifier page.Notifier) page.Options {
	return page.Options{
		Selectors:      c.PageSelectors(),
		HighlightColor: c.Theme.HighlightColor,
		CoverBase:      c.Covers.BaseURL,
		Notifier:       notifier,
		Logger:         logger,
	}
}

// NewLogger builds the logger described by the log section.
func (c *Config) NewLogger(w io.Writer) logging.Logger {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		level = logging.LevelInfo
	}
	return logging.NewLogger(&logging.LoggerConfig{
		Level:     level,
		Format:    c.Log.Format,
		Output:    w,
		Component: "shelfpage",
	})
}

// Address is host:port for the preview server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// normalizeList splits comma-separated entries, as env vars arrive, and
// trims each item. Selector groups containing commas are therefore not
// supported; list the alternatives as separate entries instead.
func normalizeList(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, p := range strings.Split(item, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

var validate = validator.New()

// Validate checks cfg for correctness and unsafe values.
func Validate(cfg *Config) error {
	if err := validateInputs(cfg); err != nil {
		return shelferrors.WrapConfig(err, shelferrors.ErrCodeConfigInvalid, "invalid configuration")
	}

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return shelferrors.WrapConfig(err, shelferrors.ErrCodeConfigInvalid, "invalid configuration")
	}

	se := shelferrors.NewConfigError(shelferrors.ErrCodeConfigInvalid, "invalid configuration")
	for _, fe := range validationErrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		se.WithContext(field, fmt.Sprintf("failed %q (got %v)", fe.Tag(), fe.Value()))
	}
	return se
}

func validateInputs(cfg *Config) error {
	if err := validation.ValidateHost(cfg.Server.Host); err != nil {
		return fmt.Errorf("server.host: %w", err)
	}
	if cfg.Page.Source != "" {
		if err := validation.ValidatePath(cfg.Page.Source); err != nil {
			return fmt.Errorf("page.source: %w", err)
		}
	}
	if cfg.Page.Output != "" && cfg.Page.Output != "-" {
		if err := validation.ValidatePath(cfg.Page.Output); err != nil {
			return fmt.Errorf("page.output: %w", err)
		}
	}
	for _, origin := range cfg.Server.AllowedOrigins {
		if err := validation.ValidateOriginPattern(origin); err != nil {
			return fmt.Errorf("server.allowed_origins: %w", err)
		}
	}
	return nil
}
