// Command formguard serves the validation rules of HTML forms and checks
// submitted values against them.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/formguard/internal/api"
	"github.com/dmitrymomot/formguard/pkg/config"
	"github.com/dmitrymomot/formguard/pkg/formschema"
	"github.com/dmitrymomot/formguard/pkg/formvalidator"
	"github.com/dmitrymomot/formguard/pkg/httpserver"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

type appConfig struct {
	HTTP httpserver.Config

	FormsDir      string `env:"FORMS_DIR" envDefault:"./forms"`
	PatternsFile  string `env:"PATTERNS_FILE"`
	InputSelector string `env:"SCHEMA_INPUT_SELECTOR" envDefault:"input, select, textarea"`
	OptionalClass string `env:"SCHEMA_OPTIONAL_CLASS" envDefault:"optional"`
	TagAttribute  string `env:"SCHEMA_TAG_ATTRIBUTE" envDefault:"class"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

func loadConfig(opts ...config.Option) (appConfig, error) {
	var cfg appConfig
	err := config.Load(&cfg, append([]config.Option{config.WithPrefix(formvalidator.EnvPrefix)}, opts...)...)
	return cfg, err
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "formguard:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithAttr(slog.String("service", "formguard")),
		logger.WithContextExtractors(httpserver.RequestIDExtractor),
	)

	forms, err := loadForms(cfg, log)
	if err != nil {
		return err
	}
	log.Info("forms loaded", slog.String("dir", cfg.FormsDir), slog.Any("forms", forms.Names()))

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, api.NewRouter(forms, log))
}

func loadForms(cfg appConfig, log *slog.Logger) (formschema.Set, error) {
	reg := validator.DefaultRegistry()
	if cfg.PatternsFile != "" {
		if err := validator.LoadPatternFile(cfg.PatternsFile, reg); err != nil {
			return nil, err
		}
	}

	vopts := formvalidator.DefaultOptions()
	vopts.InputSelector = cfg.InputSelector
	vopts.OptionalClass = cfg.OptionalClass
	vopts.AttributeForType = cfg.TagAttribute

	return formschema.LoadDir(cfg.FormsDir,
		formschema.WithRegistry(reg),
		formschema.WithValidatorOptions(vopts),
		formschema.WithLogger(log),
	)
}
