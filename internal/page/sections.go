package page

import (
	"strings"

	"git.home.luguber.info/inful/classpage/internal/logfields"
	"git.home.luguber.info/inful/classpage/internal/markdown"
	"git.home.luguber.info/inful/classpage/internal/model"
	"git.home.luguber.info/inful/classpage/internal/order"
)

// DefaultPipeline returns the sections rendered for typ, in page order.
// Sections with nothing to show are left out.
func DefaultPipeline(typ *model.TypeEntity) *Pipeline {
	return NewPipeline().
		Add(SectionHeader, buildHeader).
		AddIf(typ.HasFields() || typ.HasMethods(), SectionSummary, buildSummary).
		AddIf(typ.HasFields(), SectionFields, buildFields).
		AddIf(typ.HasMethods(), SectionMethods, buildMethods)
}

func buildHeader(ps *pageState) error {
	if err := ps.sink.AppendHeader(ps.typ.Name, 1); err != nil {
		return err
	}
	if err := ps.sink.AppendText("Package " + markdown.PackageLink(ps.typ.Package, ps.rc) + "<br>"); err != nil {
		return err
	}
	if line := markdown.Hierarchy(ps.typ, ps.rc); line != "" {
		if err := ps.sink.AppendText(line); err != nil {
			return err
		}
	}
	if strings.TrimSpace(ps.typ.Comment) == "" {
		return nil
	}
	// The comment is a block of its own, not a continuation of the package line.
	if err := ps.sink.NewLine(); err != nil {
		return err
	}
	return ps.sink.AppendText(ps.typ.Comment)
}

func buildSummary(ps *pageState) error {
	if err := ps.sink.NewLine(); err != nil {
		return err
	}
	if err := ps.sink.AppendHeader("Summary", 2); err != nil {
		return err
	}
	if ps.typ.HasMethods() {
		if err := ps.sink.InitializeMethodHeader(); err != nil {
			return err
		}
		if err := appendEach(ps, order.ByName(ps.typ.Methods), ps.sink.AppendMethodHeader); err != nil {
			return err
		}
	}
	if !ps.rc.SummarizeFields || !ps.typ.HasFields() {
		return nil
	}
	if err := ps.sink.InitializeFieldSummaryHeader(); err != nil {
		return err
	}
	return appendEach(ps, order.FieldsGrouped(ps.typ.Fields), ps.sink.AppendFieldSummary)
}

func buildFields(ps *pageState) error {
	if err := ps.sink.NewLine(); err != nil {
		return err
	}
	if err := ps.sink.AppendHeader("Fields", 2); err != nil {
		return err
	}
	if err := ps.sink.InitializeFieldHeader(); err != nil {
		return err
	}
	instance, static := order.Fields(ps.typ.Fields)
	if err := appendEach(ps, instance, ps.sink.AppendField); err != nil {
		return err
	}
	return appendEach(ps, static, ps.sink.AppendField)
}

func buildMethods(ps *pageState) error {
	if err := ps.sink.NewLine(); err != nil {
		return err
	}
	if err := ps.sink.AppendHeader("Methods", 2); err != nil {
		return err
	}
	return appendEach(ps, order.ByName(ps.typ.Methods), ps.sink.AppendMethod)
}

// appendEach folds elems through fn in order. Render failures are recorded on
// ps and the fold continues; the first other error stops it.
func appendEach[T model.Member](ps *pageState, elems []T, fn func(T) error) error {
	for _, e := range elems {
		err := fn(e)
		if err == nil {
			continue
		}
		if !isMemberFailure(err) {
			return err
		}
		ps.recordFailure(e, err)
	}
	return nil
}

func memberName(m model.Member) string {
	switch v := m.(type) {
	case *model.Method:
		if v != nil {
			return v.Name
		}
	case *model.Field:
		if v != nil {
			return v.Name
		}
	}
	return ""
}

func (ps *pageState) recordFailure(m model.Member, err error) {
	kind := m.Kind()
	f := &MemberRenderError{Section: ps.section, Kind: kind, Name: memberName(m), Err: err}
	ps.failures = append(ps.failures, f)
	ps.recorder.IncMemberFailure(string(ps.section), string(kind))
	ps.logger.Warn("Skipping member that could not be rendered",
		logfields.Type(ps.typ.QualifiedName()),
		logfields.Section(string(ps.section)),
		logfields.MemberKind(string(kind)),
		logfields.Member(f.Name),
		logfields.Error(err))
}
