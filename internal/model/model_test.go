package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.home.luguber.info/inful/classpage/internal/foundation/errors"
	"github.com/stretchr/testify/require"
)

const sampleModel = `
types:
  - name: Foo
    package: {name: com.example.pkg}
    comment: |
      Foo does things.
      Second line.
    ancestors:
      - {name: Base, package: com.example.pkg, documented: true}
      - {name: Object, package: java.lang}
    methods:
      - name: bar
        signature:
          modifiers: [public]
          params:
            - {name: x, type: {name: int}}
          returns: {name: String, package: java.lang}
        comment: Bar it.
    fields:
      - name: COUNT
        type: {name: int}
        static: true
      - name: value
        type: {name: long}
`

func TestDecode_Sample(t *testing.T) {
	types, err := Decode(strings.NewReader(sampleModel))
	require.NoError(t, err)
	require.Len(t, types, 1)

	foo := types[0]
	require.Equal(t, "Foo", foo.Name)
	require.Equal(t, KindClass, foo.Kind)
	require.Equal(t, "com.example.pkg.Foo", foo.QualifiedName())
	require.Equal(t, "com/example/pkg", foo.Package.Dir())
	require.Equal(t, "Foo does things.\nSecond line.\n", foo.Comment)
	require.Len(t, foo.Ancestors, 2)
	require.Equal(t, "java.lang.Object", foo.Ancestors[1].QualifiedName())
	require.True(t, foo.HasMethods())
	require.True(t, foo.HasFields())
	require.Equal(t, "x", foo.Methods[0].Signature.Params[0].Name)
	require.True(t, foo.Fields[0].Static)
}

func TestDecode_JSON(t *testing.T) {
	types, err := Decode(strings.NewReader(`{"types":[{"name":"Bar","package":{"name":"p"},"kind":"interface"}]}`))
	require.NoError(t, err)
	require.Len(t, types, 1)
	require.Equal(t, KindInterface, types[0].Kind)
}

func TestDecode_Empty(t *testing.T) {
	types, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, types)
}

func TestDecode_RejectsInvalidTypes(t *testing.T) {
	cases := map[string]string{
		"missing name":  "types:\n  - package: {name: p}\n",
		"path in name":  "types:\n  - name: ../Foo\n",
		"unknown kind":  "types:\n  - name: Foo\n    kind: record\n",
		"unknown field": "types:\n  - name: Foo\n    colour: red\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			require.Error(t, err)
			require.True(t, errors.HasCategory(err, errors.CategoryValidation))
		})
	}
}

func TestDecode_KeepsMalformedMembers(t *testing.T) {
	doc := "types:\n  - name: Foo\n    methods:\n      - signature: {returns: {name: void}}\n"
	types, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, types[0].Methods, 1)
	require.Empty(t, types[0].Methods[0].Name)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleModel), 0o600))

	types, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, types, 1)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	classified, ok := errors.AsClassified(err)
	require.True(t, ok)
	require.Equal(t, errors.CategoryFileSystem, classified.Category())
	got, _ := classified.Context().GetString("path")
	require.Equal(t, filepath.Join(dir, "missing.yaml"), got)
}

func TestMemberCapability(t *testing.T) {
	var members []Member = []Member{&Method{Name: "run"}, &Field{Name: "size"}}
	require.Equal(t, "run", members[0].SortKey())
	require.Equal(t, MemberMethod, members[0].Kind())
	require.Equal(t, "size", members[1].SortKey())
	require.Equal(t, MemberField, members[1].Kind())

	var nilMethod *Method
	require.Empty(t, nilMethod.SortKey())
}

func TestFirstSentence(t *testing.T) {
	require.Equal(t, "Returns the size.", FirstSentence("Returns the size. Never negative."))
	require.Equal(t, "Spans two lines.", FirstSentence("Spans\n  two lines.\nMore."))
	require.Equal(t, "Uses v1.2 format", FirstSentence("Uses v1.2 format"))
	require.Empty(t, FirstSentence("   "))
}

func TestRenderContext(t *testing.T) {
	rc := DefaultRenderContext()
	require.Equal(t, "Foo.md", rc.PageName("Foo"))
	require.Equal(t, "README.md", rc.PackageIndex)
	require.False(t, rc.SummarizeFields)
}
