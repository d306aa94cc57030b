package page

// SectionName is a strongly-typed identifier for a page section.
type SectionName string

// Canonical section names, in page order.
const (
	SectionHeader  SectionName = "header"
	SectionSummary SectionName = "summary"
	SectionFields  SectionName = "fields"
	SectionMethods SectionName = "methods"
)

// Section writes one part of a page through the page's sink.
type Section func(ps *pageState) error

// SectionDef pairs a section name with its builder.
type SectionDef struct {
	Name SectionName
	Fn   Section
}

// Pipeline is a fluent builder for ordered section definitions.
type Pipeline struct{ Defs []SectionDef }

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline { return &Pipeline{Defs: make([]SectionDef, 0, 4)} }

// Add appends a section unconditionally.
func (p *Pipeline) Add(name SectionName, fn Section) *Pipeline {
	p.Defs = append(p.Defs, SectionDef{Name: name, Fn: fn})
	return p
}

// AddIf appends a section only if cond is true.
func (p *Pipeline) AddIf(cond bool, name SectionName, fn Section) *Pipeline {
	if cond {
		p.Add(name, fn)
	}
	return p
}

// Names returns the section names in execution order.
func (p *Pipeline) Names() []SectionName {
	out := make([]SectionName, len(p.Defs))
	for i, d := range p.Defs {
		out[i] = d.Name
	}
	return out
}
