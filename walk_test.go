package dcbor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestWalkVisitsEveryNodeExactlyOnce(t *testing.T) {
	tree := Array([]Value{
		Int(1),
		Array([]Value{Int(2), Int(3)}),
		Tagged(1, Text("x")),
	})

	count := 0
	Walk(tree, nil, func(WalkElement, int, Edge, any) (any, bool) {
		count++
		return nil, false
	})

	// root + array(1,[2,3],tag) + nested array's 2 elements + tagged content = 1 + 3 + 2 + 1
	require.Equal(t, 1+3+2+1, count)
}

func TestWalkEmitsExpectedEdgeSequence(t *testing.T) {
	tree := Array([]Value{Int(1), Int(2)})

	var edges []EdgeType
	Walk(tree, nil, func(_ WalkElement, _ int, edge Edge, state any) (any, bool) {
		edges = append(edges, edge.Type)
		return state, false
	})

	want := []EdgeType{EdgeRoot, EdgeArrayElement, EdgeArrayElement}
	if diff := cmp.Diff(want, edges); diff != "" {
		t.Errorf("edge sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkSkipDescentPrunesSubtree(t *testing.T) {
	tree := Array([]Value{
		Array([]Value{Int(1), Int(2)}),
		Int(3),
	})

	var visited []EdgeType
	Walk(tree, nil, func(_ WalkElement, _ int, edge Edge, state any) (any, bool) {
		visited = append(visited, edge.Type)
		skip := edge.Type == EdgeArrayElement && edge.Index == 0
		return state, skip
	})

	// root, element 0 (array, pruned), element 1 -- the pruned array's own
	// two children are never visited.
	require.Equal(t, []EdgeType{EdgeRoot, EdgeArrayElement, EdgeArrayElement}, visited)
}

func TestWalkMapEmitsPairThenKeyThenValue(t *testing.T) {
	m := NewMap()
	m.Insert(Text("k"), Int(1))
	tree := FromMap(m)

	var edges []EdgeType
	Walk(tree, nil, func(_ WalkElement, _ int, edge Edge, state any) (any, bool) {
		edges = append(edges, edge.Type)
		return state, false
	})

	require.Equal(t, []EdgeType{EdgeRoot, EdgeMapKeyValue, EdgeMapKey, EdgeMapValue}, edges)
}

func TestWalkStateThreadsThroughVisitor(t *testing.T) {
	tree := Array([]Value{Int(1), Int(2), Int(3)})

	total := Walk(tree, 0, func(element WalkElement, _ int, _ Edge, state any) (any, bool) {
		if v, ok := element.AsSingle(); ok && v.IsUnsigned() {
			u, _ := v.Unsigned()
			return state.(int) + int(u), false
		}
		return state, false
	})

	require.Equal(t, 6, total)
}
