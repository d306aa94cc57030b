package markdown

import (
	"fmt"
	"slices"
	"strings"

	"git.home.luguber.info/inful/classpage/internal/foundation/errors"
	"git.home.luguber.info/inful/classpage/internal/model"
)

// Table headers written by the sink before summary and field rows.
const (
	MethodSummaryHeader = "| Type | Method | Description |\n|------|--------|-------------|"
	FieldSummaryHeader  = "| Type | Field | Description |\n|------|-------|-------------|"
	FieldTableHeader    = "| Modifier and Type | Field | Description |\n|-------------------|-------|-------------|"
)

var cellEscaper = strings.NewReplacer("|", `\|`)

func cell(s string) string {
	return cellEscaper.Replace(strings.Join(strings.Fields(s), " "))
}

// Validate reports why m cannot be rendered, as a render error, or nil.
func Validate(m model.Member) error {
	switch v := m.(type) {
	case *model.Method:
		return validateMethod(v)
	case *model.Field:
		return validateField(v)
	default:
		return errors.RenderError("unsupported member").WithContext("kind", fmt.Sprintf("%T", m)).Build()
	}
}

func validateMethod(m *model.Method) error {
	if m == nil {
		return errors.RenderError("method is empty").WithContext("kind", string(model.MemberMethod)).Build()
	}
	fail := func(msg string) error {
		return errors.RenderError(msg).
			WithContext("kind", string(model.MemberMethod)).
			WithContext("member", m.Name).
			Build()
	}
	if strings.TrimSpace(m.Name) == "" {
		return fail("method has no name")
	}
	if m.Signature.Returns.Name == "" {
		return fail("method has no return type")
	}
	for i, p := range m.Signature.Params {
		if p.Name == "" || p.Type.Name == "" {
			return errors.RenderError("malformed parameter").
				WithContext("kind", string(model.MemberMethod)).
				WithContext("member", m.Name).
				WithContext("param", i).
				Build()
		}
	}
	for _, t := range m.Signature.Throws {
		if t.Name == "" {
			return fail("malformed throws clause")
		}
	}
	return nil
}

func validateField(f *model.Field) error {
	if f == nil {
		return errors.RenderError("field is empty").WithContext("kind", string(model.MemberField)).Build()
	}
	if strings.TrimSpace(f.Name) == "" {
		return errors.RenderError("field has no name").WithContext("kind", string(model.MemberField)).Build()
	}
	if f.Type.Name == "" {
		return errors.RenderError("field has no type").
			WithContext("kind", string(model.MemberField)).
			WithContext("member", f.Name).
			Build()
	}
	return nil
}

// SummaryRow renders the one-line table row for m in a Summary table.
func SummaryRow(from model.PackageRef, m model.Member, rc model.RenderContext) (string, error) {
	if err := Validate(m); err != nil {
		return "", err
	}
	switch v := m.(type) {
	case *model.Method:
		return MethodSummaryRow(from, v, MethodAnchor(v.Name, 0), rc), nil
	case *model.Field:
		return row(fieldTypeCell(from, v, rc), "`"+v.Name+"`", model.FirstSentence(v.Comment)), nil
	}
	return "", nil
}

// DetailBlock renders the full documentation of m: a Fields table row for a field,
// a heading plus signature and comment for a method.
func DetailBlock(from model.PackageRef, m model.Member, rc model.RenderContext) (string, error) {
	if err := Validate(m); err != nil {
		return "", err
	}
	switch v := m.(type) {
	case *model.Method:
		return MethodBlock(from, v, MethodAnchor(v.Name, 0), rc), nil
	case *model.Field:
		return row(fieldTypeCell(from, v, rc), "`"+v.Name+"`", v.Comment), nil
	}
	return "", nil
}

func row(cells ...string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = cell(c)
	}
	return "| " + strings.Join(escaped, " | ") + " |"
}

func visibleModifiers(mods []string) []string {
	return slices.DeleteFunc(slices.Clone(mods), func(m string) bool { return m == "public" })
}

func fieldTypeCell(from model.PackageRef, f *model.Field, rc model.RenderContext) string {
	mods := visibleModifiers(f.Modifiers)
	if f.Static && !slices.Contains(mods, "static") {
		mods = append([]string{"static"}, mods...)
	}
	return strings.TrimSpace(strings.Join(mods, " ") + " " + TypeLink(from, f.Type, rc))
}

// MethodSummaryRow renders the summary row of a validated method, linking to
// the block with the given anchor id.
func MethodSummaryRow(from model.PackageRef, m *model.Method, anchor string, rc model.RenderContext) string {
	mods := visibleModifiers(m.Signature.Modifiers)
	ret := strings.TrimSpace(strings.Join(mods, " ") + " " + TypeLink(from, m.Signature.Returns, rc))

	params := make([]string, 0, len(m.Signature.Params))
	for _, p := range m.Signature.Params {
		params = append(params, TypeLink(from, p.Type, rc)+" "+p.Name)
	}
	name := BuildLink(m.Name, "#"+anchor) + "(" + strings.Join(params, ", ") + ")"
	return row(ret, name, model.FirstSentence(m.Comment))
}

// Signature renders the declaration line of m without links.
func Signature(m *model.Method) string {
	var b strings.Builder
	for _, mod := range m.Signature.Modifiers {
		b.WriteString(mod)
		b.WriteByte(' ')
	}
	b.WriteString(m.Signature.Returns.Name)
	b.WriteByte(' ')
	b.WriteString(m.Name)
	b.WriteByte('(')
	for i, p := range m.Signature.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Type.Name)
		b.WriteByte(' ')
		b.WriteString(p.Name)
	}
	b.WriteByte(')')
	if len(m.Signature.Throws) > 0 {
		names := make([]string, len(m.Signature.Throws))
		for i, t := range m.Signature.Throws {
			names[i] = t.Name
		}
		b.WriteString(" throws ")
		b.WriteString(strings.Join(names, ", "))
	}
	return b.String()
}

// MethodBlock renders the documentation block of a validated method. The
// heading carries an explicit anchor so links do not depend on heading slugs.
func MethodBlock(from model.PackageRef, m *model.Method, anchor string, rc model.RenderContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### <a id=\"%s\"></a>%s\n\n```\n%s\n```\n", anchor, m.Name, Signature(m))

	if comment := strings.TrimRight(m.Comment, "\n"); strings.TrimSpace(comment) != "" {
		b.WriteString("\n")
		b.WriteString(comment)
		b.WriteString("\n")
	}

	if len(m.Signature.Params) > 0 {
		b.WriteString("\n**Parameters**\n\n")
		for _, p := range m.Signature.Params {
			fmt.Fprintf(&b, "- `%s`", p.Name)
			if doc := strings.Join(strings.Fields(m.ParamDocs[p.Name]), " "); doc != "" {
				b.WriteString(": ")
				b.WriteString(doc)
			}
			b.WriteString("\n")
		}
	}

	if m.Signature.Returns.Name != "void" {
		b.WriteString("\n**Returns**\n\n")
		b.WriteString(TypeLink(from, m.Signature.Returns, rc))
		if doc := strings.Join(strings.Fields(m.ReturnDoc), " "); doc != "" {
			b.WriteString(": ")
			b.WriteString(doc)
		}
		b.WriteString("\n")
	}

	if len(m.Signature.Throws) > 0 {
		b.WriteString("\n**Throws**\n\n")
		for _, t := range m.Signature.Throws {
			b.WriteString("- ")
			b.WriteString(TypeLink(from, t, rc))
			b.WriteString("\n")
		}
	}
	return b.String()
}
