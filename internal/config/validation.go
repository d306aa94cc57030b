package config

import (
	"strings"

	"git.home.luguber.info/inful/classpage/internal/foundation/errors"
	"git.home.luguber.info/inful/classpage/internal/model"
)

// Validate checks a defaulted configuration.
func Validate(cfg *Config) error {
	switch {
	case !strings.HasPrefix(cfg.Render.Extension, ".") || len(cfg.Render.Extension) < 2:
		return invalid("render.extension", cfg.Render.Extension, "must start with '.'")
	case strings.ContainsAny(cfg.Render.Extension, `/\`):
		return invalid("render.extension", cfg.Render.Extension, "must not contain path separators")
	case cfg.Render.PackageIndex == "":
		return invalid("render.package_index", "", "must not be empty")
	case cfg.Output.Directory == "":
		return invalid("output.directory", "", "must not be empty")
	case cfg.Build.Concurrency < 0:
		return invalid("build.concurrency", cfg.Build.Concurrency, "must not be negative")
	}
	return nil
}

func invalid(field string, value any, reason string) error {
	return errors.ValidationError("invalid configuration: " + field + " " + reason).
		WithContext("field", field).
		WithContext("value", value).
		Build()
}

// RenderContext converts the render section for the page builder.
func (c *Config) RenderContext() model.RenderContext {
	return model.RenderContext{
		Extension:       c.Render.Extension,
		PackageIndex:    c.Render.PackageIndex,
		ImplicitRoot:    c.Render.ImplicitRoot,
		SummarizeFields: c.Render.SummarizeFields,
		Frontmatter:     c.Render.Frontmatter,
	}
}
