package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractLinks_InlineLink(t *testing.T) {
	links, err := ExtractLinks([]byte("See [API](api.md) for details."))
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.Equal(t, LinkKindInline, links[0].Kind)
	require.Equal(t, "API", links[0].Label)
	require.Equal(t, "api.md", links[0].Destination)
}

func TestExtractLinks_AutoAndImage(t *testing.T) {
	links, err := ExtractLinks([]byte("<https://example.com/path> ![Diagram](diagram.png)"))
	require.NoError(t, err)
	require.Len(t, links, 2)
	require.Equal(t, LinkKindAuto, links[0].Kind)
	require.Equal(t, "https://example.com/path", links[0].Destination)
	require.Equal(t, LinkKindImage, links[1].Kind)
	require.Equal(t, "diagram.png", links[1].Destination)
}

func TestExtractLinks_ReferenceDefinition(t *testing.T) {
	links, err := ExtractLinks([]byte("See [API][ref].\n\n[ref]: api.md\n"))
	require.NoError(t, err)
	require.Len(t, links, 2)
	require.Equal(t, LinkKindInline, links[0].Kind)
	require.Equal(t, LinkKindReferenceDefinition, links[1].Kind)
	require.Equal(t, "api.md", links[1].Destination)
}

func TestExtractLinks_SkipsCode(t *testing.T) {
	src := []byte("Inline: `[Link](./ignored.md)`\n\n```\n[Link](./fenced.md)\n```\n\nReal: [OK](./real.md)\n")
	links, err := ExtractLinks(src)
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.Equal(t, "./real.md", links[0].Destination)
}

func TestExtractHeadings(t *testing.T) {
	src := []byte("# Foo\n\nPackage [pkg](README.md)<br>\n\n## Summary\n\n### `bar` method\n")
	headings, err := ExtractHeadings(src)
	require.NoError(t, err)
	require.Equal(t, []Heading{
		{Level: 1, Text: "Foo"},
		{Level: 2, Text: "Summary"},
		{Level: 3, Text: "bar method"},
	}, headings)
}

func TestExtractHeadings_IgnoresInlineAnchor(t *testing.T) {
	headings, err := ExtractHeadings([]byte("### <a id=\"method-run\"></a>run\n"))
	require.NoError(t, err)
	require.Equal(t, []Heading{{Level: 3, Text: "run"}}, headings)
}

func TestExtractAnchorIDs(t *testing.T) {
	src := []byte("# Foo\n\n" +
		"### <a id=\"method-run\"></a>run\n\n" +
		"<div name=\"block\">\ntext\n</div>\n\n" +
		"`<a id=\"code\">`\n")
	ids, err := ExtractAnchorIDs(src)
	require.NoError(t, err)
	require.Equal(t, []string{"method-run", "block"}, ids)
}
