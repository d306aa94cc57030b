package frontmatter

import (
	"strings"

	"git.home.luguber.info/inful/classpage/internal/model"
	"github.com/google/uuid"
	"github.com/inful/mdfp"
)

// Keys written into page frontmatter.
const (
	KeyTitle   = "title"
	KeyKind    = "kind"
	KeyPackage = "package"
	KeyUID     = "uid"
)

// uidNamespace scopes name-based page UIDs.
var uidNamespace = uuid.MustParse("6f1c3f0e-2b7a-4c55-9d1e-8a3b5c7d9e21")

// UID returns the stable identifier of the page for qualifiedName. The same
// qualified name always yields the same UID.
func UID(qualifiedName string) string {
	return uuid.NewSHA1(uidNamespace, []byte(qualifiedName)).String()
}

// PageFields returns the descriptive frontmatter fields for t's page.
func PageFields(t *model.TypeEntity) map[string]any {
	fields := map[string]any{
		KeyTitle: t.Name,
		KeyKind:  string(t.Kind),
		KeyUID:   UID(t.QualifiedName()),
	}
	if t.Package.Name != "" {
		fields[KeyPackage] = t.Package.Name
	}
	return fields
}

// Fingerprint returns the content fingerprint over fields and body. The
// fingerprint key itself and uid are excluded from the hash.
func Fingerprint(fields map[string]any, body []byte) (string, error) {
	hashed := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == mdfp.FingerprintField || k == KeyUID {
			continue
		}
		hashed[k] = v
	}
	serialized, err := SerializeYAML(hashed)
	if err != nil {
		return "", err
	}
	fm := strings.TrimSuffix(string(serialized), "\n")
	return mdfp.CalculateFingerprintFromParts(fm, string(body)), nil
}

// Render prepends a frontmatter block built from fields plus the computed
// fingerprint to body. fields is not modified.
func Render(fields map[string]any, body []byte) ([]byte, error) {
	fp, err := Fingerprint(fields, body)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out[mdfp.FingerprintField] = fp

	serialized, err := SerializeYAML(out)
	if err != nil {
		return nil, err
	}
	return Join(serialized, body), nil
}
