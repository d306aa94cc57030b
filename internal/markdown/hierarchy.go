package markdown

import (
	"strings"

	"git.home.luguber.info/inful/classpage/internal/model"
)

// HierarchySeparator joins hierarchy entries.
const HierarchySeparator = " > "

// Hierarchy renders the ancestor chain of t from the outermost ancestor down to t
// itself. The implicit root is never shown. It returns "" when t has no explicit
// ancestors, in which case no line is emitted.
func Hierarchy(t *model.TypeEntity, rc model.RenderContext) string {
	chain := make([]model.TypeRef, 0, len(t.Ancestors))
	for _, a := range t.Ancestors {
		if a.Name == "" || (rc.ImplicitRoot != "" && a.QualifiedName() == rc.ImplicitRoot) {
			continue
		}
		chain = append(chain, a)
	}
	if len(chain) == 0 {
		return ""
	}

	parts := make([]string, 0, len(chain)+1)
	for i := len(chain) - 1; i >= 0; i-- {
		parts = append(parts, TypeLink(t.Package, chain[i], rc))
	}
	parts = append(parts, "**"+t.Name+"**")
	return strings.Join(parts, HierarchySeparator)
}
