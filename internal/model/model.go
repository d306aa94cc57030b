// Package model holds the read-only documentation model consumed by page builds.
//
// Values are produced upstream (by a source parser or a model file) and are treated
// as immutable snapshots for the duration of a build. Nothing in classpage mutates
// a TypeEntity after it has been handed to a page builder.
package model

import "strings"

// TypeKind distinguishes the declaration form of a type.
type TypeKind string

const (
	KindClass     TypeKind = "class"
	KindInterface TypeKind = "interface"
	KindEnum      TypeKind = "enum"
)

// PackageRef names the package a type belongs to.
type PackageRef struct {
	Name string `yaml:"name" json:"name"`
}

// Dir returns the package's output directory, relative to the documentation root.
func (p PackageRef) Dir() string {
	return strings.ReplaceAll(p.Name, ".", "/")
}

// TypeRef points at a type by name. Documented is true when a page is generated for it.
type TypeRef struct {
	Name       string `yaml:"name" json:"name"`
	Package    string `yaml:"package,omitempty" json:"package,omitempty"`
	Documented bool   `yaml:"documented,omitempty" json:"documented,omitempty"`
}

// QualifiedName returns package.Name, or Name for the default package.
func (r TypeRef) QualifiedName() string {
	if r.Package == "" {
		return r.Name
	}
	return r.Package + "." + r.Name
}

// TypeEntity is the documentation model for one declared class, interface or enum.
type TypeEntity struct {
	Name    string     `yaml:"name" json:"name"`
	Package PackageRef `yaml:"package" json:"package"`
	Kind    TypeKind   `yaml:"kind,omitempty" json:"kind,omitempty"`
	Comment string     `yaml:"comment,omitempty" json:"comment,omitempty"`

	// Ancestors is ordered nearest-first: the direct parent comes first and the
	// implicit root, when present, last.
	Ancestors []TypeRef `yaml:"ancestors,omitempty" json:"ancestors,omitempty"`

	Methods []*Method `yaml:"methods,omitempty" json:"methods,omitempty"`
	Fields  []*Field  `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// QualifiedName returns the fully qualified type name.
func (t *TypeEntity) QualifiedName() string {
	return t.Ref().QualifiedName()
}

// Ref returns a documented reference to t.
func (t *TypeEntity) Ref() TypeRef {
	return TypeRef{Name: t.Name, Package: t.Package.Name, Documented: true}
}

// HasMethods reports whether t declares at least one method.
func (t *TypeEntity) HasMethods() bool { return len(t.Methods) > 0 }

// HasFields reports whether t declares at least one field.
func (t *TypeEntity) HasFields() bool { return len(t.Fields) > 0 }

// Param is one declared method parameter.
type Param struct {
	Name string  `yaml:"name" json:"name"`
	Type TypeRef `yaml:"type" json:"type"`
}

// Signature describes a method's parameter and return shape.
type Signature struct {
	Modifiers []string  `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	Params    []Param   `yaml:"params,omitempty" json:"params,omitempty"`
	Returns   TypeRef   `yaml:"returns" json:"returns"`
	Throws    []TypeRef `yaml:"throws,omitempty" json:"throws,omitempty"`
}

// Method is the documentation model for one method.
type Method struct {
	Name      string            `yaml:"name" json:"name"`
	Signature Signature         `yaml:"signature" json:"signature"`
	Comment   string            `yaml:"comment,omitempty" json:"comment,omitempty"`
	ParamDocs map[string]string `yaml:"param_docs,omitempty" json:"param_docs,omitempty"`
	ReturnDoc string            `yaml:"return_doc,omitempty" json:"return_doc,omitempty"`
}

// Field is the documentation model for one field.
type Field struct {
	Name      string   `yaml:"name" json:"name"`
	Type      TypeRef  `yaml:"type" json:"type"`
	Static    bool     `yaml:"static,omitempty" json:"static,omitempty"`
	Modifiers []string `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	Comment   string   `yaml:"comment,omitempty" json:"comment,omitempty"`
}
