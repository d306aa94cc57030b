package order

import (
	"math/rand"
	"slices"
	"testing"

	"git.home.luguber.info/inful/classpage/internal/model"
	"github.com/stretchr/testify/require"
)

func names[T model.Member](elems []T) []string {
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		out = append(out, e.SortKey())
	}
	return out
}

func TestByName_SortsAscending(t *testing.T) {
	methods := []*model.Method{{Name: "zeta"}, {Name: "Alpha"}, {Name: "beta"}, {Name: "alpha"}}
	got := ByName(methods)
	// Byte order: upper case sorts before lower case.
	require.Equal(t, []string{"Alpha", "alpha", "beta", "zeta"}, names(got))
}

func TestByName_DoesNotMutateInput(t *testing.T) {
	methods := []*model.Method{{Name: "b"}, {Name: "a"}}
	_ = ByName(methods)
	require.Equal(t, []string{"b", "a"}, names(methods))
}

func TestByName_StableForOverloads(t *testing.T) {
	first := &model.Method{Name: "put", Signature: model.Signature{Params: []model.Param{{Name: "k", Type: model.TypeRef{Name: "String"}}}}}
	second := &model.Method{Name: "put", Signature: model.Signature{Params: []model.Param{{Name: "k", Type: model.TypeRef{Name: "int"}}}}}
	third := &model.Method{Name: "put"}
	methods := []*model.Method{third, {Name: "get"}, first, second}

	for i := 0; i < 20; i++ {
		got := ByName(methods)
		require.Equal(t, []string{"get", "put", "put", "put"}, names(got))
		require.Same(t, third, got[1])
		require.Same(t, first, got[2])
		require.Same(t, second, got[3])
	}
}

func TestByName_RandomInputIsSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pool := []string{"a", "b", "c", "d", "e"}
	fields := make([]*model.Field, 0, 50)
	for i := 0; i < 50; i++ {
		fields = append(fields, &model.Field{Name: pool[rng.Intn(len(pool))]})
	}
	got := ByName(fields)
	require.True(t, slices.IsSorted(names(got)))

	// Equal keys keep input order.
	pos := make(map[*model.Field]int, len(fields))
	for i, f := range fields {
		pos[f] = i
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Name == got[i].Name {
			require.Less(t, pos[got[i-1]], pos[got[i]])
		}
	}
}

func TestFields_InstanceBeforeStatic(t *testing.T) {
	fields := []*model.Field{
		{Name: "MAX", Static: true},
		{Name: "value"},
		{Name: "COUNT", Static: true},
		{Name: "name"},
	}
	instance, static := Fields(fields)
	require.Equal(t, []string{"name", "value"}, names(instance))
	require.Equal(t, []string{"COUNT", "MAX"}, names(static))
	require.Equal(t, []string{"name", "value", "COUNT", "MAX"}, names(FieldsGrouped(fields)))
}

func TestFields_Empty(t *testing.T) {
	instance, static := Fields(nil)
	require.Empty(t, instance)
	require.Empty(t, static)
}
