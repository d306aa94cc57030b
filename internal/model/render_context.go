package model

// Defaults for RenderContext fields.
const (
	DefaultExtension    = ".md"
	DefaultPackageIndex = "README.md"
	DefaultImplicitRoot = "java.lang.Object"
)

// RenderContext is the naming and formatting policy for one generation run.
// It is passed explicitly to every page build; there is no package-level state.
type RenderContext struct {
	// Extension is appended to the simple type name to form page file names.
	Extension string
	// PackageIndex is the file name of each package's index document.
	PackageIndex string
	// ImplicitRoot is the qualified name of the root every type extends implicitly.
	// It is never rendered in hierarchies.
	ImplicitRoot string
	// SummarizeFields adds a field subtable to the Summary section.
	SummarizeFields bool
	// Frontmatter prepends a YAML block with title, uid and fingerprint.
	Frontmatter bool
}

// DefaultRenderContext returns the conventional Markdown policy.
func DefaultRenderContext() RenderContext {
	return RenderContext{
		Extension:    DefaultExtension,
		PackageIndex: DefaultPackageIndex,
		ImplicitRoot: DefaultImplicitRoot,
	}
}

// PageName returns the file name of the page documenting the named type.
func (rc RenderContext) PageName(typeName string) string {
	return typeName + rc.Extension
}
