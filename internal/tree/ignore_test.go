package tree_test

import (
	"reflect"
	"testing"

	"github.com/temirov/lsdir/internal/tree"
)

func TestDefaultIgnoreSetIsFreshPerCall(t *testing.T) {
	t.Parallel()

	first := tree.DefaultIgnoreSet()
	first["vendor"] = struct{}{}
	delete(first, ".git")

	second := tree.DefaultIgnoreSet()
	expected := []string{".git", "__pycache__", "node_modules"}
	if !reflect.DeepEqual(second.Names(), expected) {
		t.Fatalf("expected %v, got %v", expected, second.Names())
	}
}

func TestNewIgnoreSetNormalizesNames(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "trailing_slash_removed", input: []string{"vendor/"}, expected: []string{"vendor"}},
		{name: "blank_dropped", input: []string{" ", ""}, expected: []string{}},
		{name: "duplicates_collapse", input: []string{"dist", "dist/", " dist"}, expected: []string{"dist"}},
		{name: "no_input", input: nil, expected: []string{}},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			ignoreSet := tree.NewIgnoreSet(testCase.input...)
			if ignoreSet == nil {
				t.Fatalf("expected non-nil set")
			}
			if !reflect.DeepEqual(ignoreSet.Names(), testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, ignoreSet.Names())
			}
		})
	}
}

func TestIgnoreSetContains(t *testing.T) {
	t.Parallel()

	ignoreSet := tree.NewIgnoreSet("node_modules")
	if !ignoreSet.Contains("node_modules") {
		t.Fatalf("expected node_modules to be ignored")
	}
	if ignoreSet.Contains("Node_Modules") {
		t.Fatalf("expected case-sensitive match")
	}
	var nilSet tree.IgnoreSet
	if nilSet.Contains("node_modules") {
		t.Fatalf("nil set must not contain anything")
	}
}
