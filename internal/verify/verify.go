// Package verify checks the links of generated pages.
package verify

import (
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/classpage/internal/foundation/errors"
	"git.home.luguber.info/inful/classpage/internal/frontmatter"
	"git.home.luguber.info/inful/classpage/internal/markdown"
	"git.home.luguber.info/inful/classpage/internal/model"
)

// Problem kinds.
const (
	ProblemMissingPage   = "missing_page"   // link to a page that does not exist
	ProblemMissingIndex  = "missing_index"  // link to a package index that does not exist
	ProblemMissingAnchor = "missing_anchor" // same-page fragment without a matching heading
)

// Problem is one unresolved link.
type Problem struct {
	Kind   string
	Source string // page containing the link, relative to the verified root
	Target string // link destination as written
}

// Result lists the problems found under one directory.
type Result struct {
	Pages    int
	Links    int
	Problems []Problem
}

// MissingIndexes returns the package index problems. Indexes are written by a
// separate tool, so callers may choose to tolerate them.
func (r *Result) MissingIndexes() []Problem { return r.filter(ProblemMissingIndex) }

// Broken returns every problem that is not a missing package index.
func (r *Result) Broken() []Problem {
	var out []Problem
	for _, p := range r.Problems {
		if p.Kind != ProblemMissingIndex {
			out = append(out, p)
		}
	}
	return out
}

func (r *Result) filter(kind string) []Problem {
	var out []Problem
	for _, p := range r.Problems {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// Dir verifies every page with rc.Extension under root. Only local links are
// checked; links with a scheme are ignored.
func Dir(root string, rc model.RenderContext) (*Result, error) {
	res := &Result{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), rc.Extension) {
			return nil
		}
		res.Pages++
		return checkPage(root, path, rc, res)
	})
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to verify pages").
			WithContext("path", root).
			Build()
	}
	sort.SliceStable(res.Problems, func(i, j int) bool {
		if res.Problems[i].Source != res.Problems[j].Source {
			return res.Problems[i].Source < res.Problems[j].Source
		}
		return res.Problems[i].Target < res.Problems[j].Target
	})
	return res, nil
}

func checkPage(root, path string, rc model.RenderContext, res *Result) error {
	// #nosec G304 -- path comes from walking the verified root
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, body, _, err := frontmatter.Split(content)
	if err != nil {
		return err
	}
	links, err := markdown.ExtractLinks(body)
	if err != nil {
		return err
	}
	rel, _ := filepath.Rel(root, path)
	rel = filepath.ToSlash(rel)

	var anchors map[string]bool
	for _, link := range links {
		dest := link.Destination
		if dest == "" || isExternal(dest) {
			continue
		}
		res.Links++

		target, fragment, _ := strings.Cut(dest, "#")
		if target == "" {
			if anchors == nil {
				if anchors, err = pageAnchors(body); err != nil {
					return err
				}
			}
			if !anchors[fragment] {
				res.Problems = append(res.Problems, Problem{Kind: ProblemMissingAnchor, Source: rel, Target: dest})
			}
			continue
		}

		target, _, _ = strings.Cut(target, "?")
		if unescaped, uerr := url.PathUnescape(target); uerr == nil {
			target = unescaped
		}
		if _, statErr := os.Stat(filepath.Join(filepath.Dir(path), filepath.FromSlash(target))); statErr == nil {
			continue
		}
		kind := ProblemMissingPage
		if filepath.Base(target) == rc.PackageIndex {
			kind = ProblemMissingIndex
		}
		res.Problems = append(res.Problems, Problem{Kind: kind, Source: rel, Target: dest})
	}
	return nil
}

// pageAnchors returns the fragments a page answers to: heading slugs, with
// repeated slugs numbered -1, -2, ... as GitHub does, plus explicit HTML ids.
func pageAnchors(body []byte) (map[string]bool, error) {
	headings, err := markdown.ExtractHeadings(body)
	if err != nil {
		return nil, err
	}
	ids, err := markdown.ExtractAnchorIDs(body)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(headings)+len(ids))
	seen := make(map[string]int, len(headings))
	for _, h := range headings {
		slug := markdown.Anchor(h.Text)
		if n := seen[slug]; n > 0 {
			out[slug+"-"+strconv.Itoa(n)] = true
		} else {
			out[slug] = true
		}
		seen[slug]++
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func isExternal(dest string) bool {
	u, err := url.Parse(dest)
	return err == nil && u.Scheme != ""
}
