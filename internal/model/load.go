package model

import (
	"bytes"
	"io"
	"os"
	"strings"

	"git.home.luguber.info/inful/classpage/internal/foundation/errors"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a model file. JSON input decodes as well, since
// YAML is a superset of JSON.
type File struct {
	Types []*TypeEntity `yaml:"types" json:"types"`
}

// Decode reads a model document from r.
//
// Only type-level problems are rejected here. Malformed members are kept so that
// page builds can isolate and report them individually.
func Decode(r io.Reader) ([]*TypeEntity, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.WrapError(err, errors.CategoryValidation, "failed to decode type model").Build()
	}
	for i, t := range f.Types {
		if err := validateType(t); err != nil {
			return nil, err.WithContext("index", i)
		}
		if t.Kind == "" {
			t.Kind = KindClass
		}
	}
	return f.Types, nil
}

// LoadFile reads and decodes the model file at path.
func LoadFile(path string) ([]*TypeEntity, error) {
	// #nosec G304 -- path is supplied by the operator.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read type model").
			WithContext("path", path).
			Build()
	}
	types, err := Decode(bytes.NewReader(data))
	if err != nil {
		if classified, ok := errors.AsClassified(err); ok {
			return nil, classified.WithContext("path", path)
		}
		return nil, err
	}
	return types, nil
}

func validateType(t *TypeEntity) *errors.ClassifiedError {
	if t == nil {
		return errors.ValidationError("type entry is empty").Build()
	}
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return errors.ValidationError("type has no name").
			WithContext("package", t.Package.Name).
			Build()
	}
	// The simple name becomes a file name.
	if name != t.Name || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.ValidationError("type name is not a valid page name").
			WithContext("type", t.Name).
			Build()
	}
	switch t.Kind {
	case "", KindClass, KindInterface, KindEnum:
	default:
		return errors.ValidationError("unknown type kind").
			WithContext("type", t.Name).
			WithContext("kind", string(t.Kind)).
			Build()
	}
	return nil
}
