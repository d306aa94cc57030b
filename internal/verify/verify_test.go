package verify

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"git.home.luguber.info/inful/classpage/internal/model"
	"git.home.luguber.info/inful/classpage/internal/page"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestDir_ReportsProblemKinds(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "A.md", "---\ntitle: A\n---\n# A\n\n## Methods\n\n"+
		"[B](B.md) [gone](Gone.md) [pkg](README.md) [ext](https://example.com/x.md) "+
		"[ok](#methods) [bad](#nope) [sub](sub/C%20D.md#x)\n")
	write(t, dir, "B.md", "# B\n")
	write(t, dir, "sub/C D.md", "# C\n")

	res, err := Dir(dir, model.DefaultRenderContext())
	require.NoError(t, err)
	require.Equal(t, 3, res.Pages)
	require.Equal(t, 6, res.Links)
	require.Equal(t, []Problem{
		{Kind: ProblemMissingAnchor, Source: "A.md", Target: "#nope"},
		{Kind: ProblemMissingPage, Source: "A.md", Target: "Gone.md"},
		{Kind: ProblemMissingIndex, Source: "A.md", Target: "README.md"},
	}, res.Problems)
	require.Len(t, res.MissingIndexes(), 1)
	require.Len(t, res.Broken(), 2)
}

func TestDir_GeneratedPagesLinkToEachOther(t *testing.T) {
	dir := t.TempDir()
	rc := model.DefaultRenderContext()
	base := &model.TypeEntity{Name: "Base", Package: model.PackageRef{Name: "pkg"}}
	child := &model.TypeEntity{
		Name:      "Child",
		Package:   model.PackageRef{Name: "pkg"},
		Ancestors: []model.TypeRef{{Name: "Base", Package: "pkg", Documented: true}},
		Methods: []*model.Method{{
			Name:      "run",
			Signature: model.Signature{Returns: model.TypeRef{Name: "Base", Package: "pkg", Documented: true}},
		}},
	}
	for _, typ := range []*model.TypeEntity{base, child} {
		_, err := page.Build(context.Background(), rc, typ, dir)
		require.NoError(t, err)
	}

	res, err := Dir(dir, rc)
	require.NoError(t, err)
	require.Empty(t, res.Broken())
	require.Len(t, res.MissingIndexes(), 2)
}

func TestDir_NumbersDuplicateHeadings(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "A.md", "# A\n\n### run\n\n### run\n\n### <a id=\"custom\"></a>stop\n\n"+
		"[1](#run) [2](#run-1) [3](#run-2) [4](#custom) [5](#stop)\n")

	res, err := Dir(dir, model.DefaultRenderContext())
	require.NoError(t, err)
	require.Equal(t, []Problem{{Kind: ProblemMissingAnchor, Source: "A.md", Target: "#run-2"}}, res.Problems)
}

func TestDir_MethodLinksReachTheirBlocks(t *testing.T) {
	dir := t.TempDir()
	rc := model.DefaultRenderContext()
	void := model.TypeRef{Name: "void"}
	typ := &model.TypeEntity{
		Name:    "Foo",
		Package: model.PackageRef{Name: "pkg"},
		Fields:  []*model.Field{{Name: "size", Type: model.TypeRef{Name: "int"}}},
		Methods: []*model.Method{
			{Name: "foo", Signature: model.Signature{Returns: void}},
			{Name: "summary", Signature: model.Signature{Returns: void}},
			{Name: "methods", Signature: model.Signature{Returns: void}},
			{Name: "run", Signature: model.Signature{Returns: void}},
			{Name: "run", Signature: model.Signature{Returns: void, Params: []model.Param{{Name: "n", Type: model.TypeRef{Name: "int"}}}}},
		},
	}
	res, err := page.Build(context.Background(), rc, typ, dir)
	require.NoError(t, err)

	body, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	for _, id := range []string{"method-foo", "method-summary", "method-methods", "method-run", "method-run-1"} {
		require.Contains(t, string(body), "](#"+id+")")
		require.Contains(t, string(body), `<a id="`+id+`"></a>`)
	}

	verified, err := Dir(dir, rc)
	require.NoError(t, err)
	require.Empty(t, verified.Broken())
	require.Equal(t, 5, verified.Links-len(verified.MissingIndexes()))
}

func TestDir_MissingRoot(t *testing.T) {
	_, err := Dir(filepath.Join(t.TempDir(), "missing"), model.DefaultRenderContext())
	require.Error(t, err)
}
