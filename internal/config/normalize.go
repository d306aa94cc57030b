package config

import (
	"strings"

	"git.home.luguber.info/inful/classpage/internal/foundation/errors"
)

// Normalize case-folds enumerations and trims free-form strings. Unknown
// enumeration values are rejected.
func Normalize(cfg *Config) error {
	level, err := logLevelNormalizer.NormalizeWithError(string(cfg.Logging.Level))
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid logging.level").Build()
	}
	format, err := logFormatNormalizer.NormalizeWithError(string(cfg.Logging.Format))
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid logging.format").Build()
	}
	cfg.Logging.Level = level
	cfg.Logging.Format = format

	cfg.Render.Extension = strings.TrimSpace(cfg.Render.Extension)
	cfg.Render.PackageIndex = strings.TrimSpace(cfg.Render.PackageIndex)
	cfg.Render.ImplicitRoot = strings.TrimSpace(cfg.Render.ImplicitRoot)
	cfg.Output.Directory = strings.TrimSpace(cfg.Output.Directory)
	cfg.Metrics.Textfile = strings.TrimSpace(cfg.Metrics.Textfile)
	return nil
}
