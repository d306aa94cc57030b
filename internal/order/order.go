// Package order provides the deterministic member ordering used by page sections.
package order

import (
	"slices"
	"strings"

	"git.home.luguber.info/inful/classpage/internal/model"
)

// ByName returns a copy of elems sorted by SortKey in ascending byte order.
// The sort is stable: members sharing a name, such as overloads, keep their
// input order. The input slice is not modified.
func ByName[T model.Member](elems []T) []T {
	out := slices.Clone(elems)
	slices.SortStableFunc(out, func(a, b T) int {
		return strings.Compare(a.SortKey(), b.SortKey())
	})
	return out
}

// Fields orders fields by name once and splits the result into instance and
// static groups, each keeping the name order.
func Fields(fields []*model.Field) (instance, static []*model.Field) {
	ordered := ByName(fields)
	instance = filter(ordered, func(f *model.Field) bool { return f == nil || !f.Static })
	static = filter(ordered, func(f *model.Field) bool { return f != nil && f.Static })
	return instance, static
}

// FieldsGrouped returns Fields' two groups concatenated, instance first.
func FieldsGrouped(fields []*model.Field) []*model.Field {
	instance, static := Fields(fields)
	return append(instance, static...)
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
