package model

// MemberKind tags the variant behind a Member.
type MemberKind string

const (
	MemberMethod MemberKind = "method"
	MemberField  MemberKind = "field"
)

// Member is the capability shared by methods and fields: both are ordered by the
// same key and rendered through the same summary/detail shape.
type Member interface {
	SortKey() string
	Kind() MemberKind
}

// SortKey returns the method name.
func (m *Method) SortKey() string {
	if m == nil {
		return ""
	}
	return m.Name
}

// Kind returns MemberMethod.
func (m *Method) Kind() MemberKind { return MemberMethod }

// SortKey returns the field name.
func (f *Field) SortKey() string {
	if f == nil {
		return ""
	}
	return f.Name
}

// Kind returns MemberField.
func (f *Field) Kind() MemberKind { return MemberField }

// FirstSentence returns the leading sentence of a doc comment, collapsed to one line.
// It is used for summary table cells.
func FirstSentence(comment string) string {
	text := collapse(comment)
	for i := 0; i < len(text); i++ {
		if text[i] != '.' {
			continue
		}
		if i == len(text)-1 || text[i+1] == ' ' {
			return text[:i+1]
		}
	}
	return text
}

func collapse(s string) string {
	out := make([]byte, 0, len(s))
	space := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			space = len(out) > 0
			continue
		}
		if space {
			out = append(out, ' ')
			space = false
		}
		out = append(out, c)
	}
	return string(out)
}
