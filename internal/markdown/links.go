package markdown

import (
	"strings"

	"git.home.luguber.info/inful/classpage/internal/model"
)

// LinkKind classifies a link found in a parsed page.
type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindAuto                LinkKind = "auto"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
)

// Link is a link-like construct extracted from a Markdown document.
type Link struct {
	Kind        LinkKind
	Label       string
	Destination string
}

var (
	labelEscaper  = strings.NewReplacer(`\`, `\\`, "[", `\[`, "]", `\]`)
	targetEscaper = strings.NewReplacer(" ", "%20", "(", "%28", ")", "%29")
)

// BuildLink renders an inline link of the form [label](target).
func BuildLink(label, target string) string {
	return "[" + labelEscaper.Replace(label) + "](" + targetEscaper.Replace(target) + ")"
}

// PackageLink links to the index document of pkg, relative to a page inside pkg.
func PackageLink(pkg model.PackageRef, rc model.RenderContext) string {
	label := pkg.Name
	if label == "" {
		label = "(default package)"
	}
	return BuildLink(label, rc.PackageIndex)
}

// RelativeDir returns the slash-separated path leading from directory from to
// directory to, with a trailing slash, or "" when both are the same.
func RelativeDir(from, to string) string {
	fromParts := splitDir(from)
	toParts := splitDir(to)

	common := 0
	for common < len(fromParts) && common < len(toParts) && fromParts[common] == toParts[common] {
		common++
	}

	var b strings.Builder
	for range fromParts[common:] {
		b.WriteString("../")
	}
	for _, p := range toParts[common:] {
		b.WriteString(p)
		b.WriteByte('/')
	}
	return b.String()
}

func splitDir(dir string) []string {
	return strings.FieldsFunc(dir, func(r rune) bool { return r == '/' })
}

// TypeLink renders ref as seen from a page in package from. Documented types link
// to their page; anything else is a plain token.
func TypeLink(from model.PackageRef, ref model.TypeRef, rc model.RenderContext) string {
	if !ref.Documented || ref.Name == "" {
		if ref.Package == "" || ref.Package == from.Name {
			return ref.Name
		}
		return ref.QualifiedName()
	}
	target := RelativeDir(from.Dir(), model.PackageRef{Name: ref.Package}.Dir()) + rc.PageName(ref.Name)
	return BuildLink(ref.Name, target)
}
