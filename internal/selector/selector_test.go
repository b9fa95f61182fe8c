package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coda-lang/coda/internal/ast"
)

func module(names ...string) *ast.Module {
	mod := &ast.Module{Name: "m", Includes: []*ast.Include{{Path: []string{"std", "io"}}}}
	for _, name := range names {
		mod.Decls = append(mod.Decls, &ast.FnDecl{Name: name})
	}
	return mod
}

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"", "anything", true},
		{"init", "init", true},
		{"init", "reinit", true},
		{"init", "main", false},
		{"^init$", "reinit", false},
		{"^init$", "init", true},
		{"^(add|sub)$", "sub", true},
		{"^(add|sub)$", "subtract", false},
		{`_\d+$`, "case_12", true},
		{`_\d+$`, "case_x", false},
		{"[A-Z]", "lower", false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.name, func(t *testing.T) {
			s, err := Compile(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Match(tt.name))
		})
	}
}

func TestLiteralPatterns(t *testing.T) {
	assert.True(t, isLiteral("main"))
	assert.True(t, isLiteral(""))
	assert.False(t, isLiteral("ma.n"))
	assert.False(t, isLiteral("^main"))

	s := MustCompile("main")
	assert.True(t, s.literal)
	assert.Equal(t, "main", s.Pattern())
}

func TestFindIndex(t *testing.T) {
	assert.Equal(t, []int{2, 6}, MustCompile("init").FindIndex("reinit"))
	assert.Nil(t, MustCompile("init").FindIndex("main"))
	assert.Equal(t, []int{5, 8}, MustCompile(`\d+`).FindIndex("case_123"))
	assert.Nil(t, MustCompile(`\d+`).FindIndex("case"))
}

func TestCompileError(t *testing.T) {
	_, err := Compile("(unclosed")
	assert.Error(t, err)
	assert.Panics(t, func() { MustCompile("[z-a]") })
}

func TestFunctions(t *testing.T) {
	mod := module("main", "parse_args", "parse_file", "exit")
	fns := MustCompile("^parse_").Functions(mod)
	require.Len(t, fns, 2)
	assert.Equal(t, "parse_args", fns[0].Name)
	assert.Equal(t, "parse_file", fns[1].Name)
}

func TestFilter(t *testing.T) {
	mod := module("main", "helper", "main_loop")
	out := MustCompile("main").Filter(mod)

	require.Len(t, out.Decls, 2)
	assert.Equal(t, "main", out.Decls[0].(*ast.FnDecl).Name)
	assert.Equal(t, "main_loop", out.Decls[1].(*ast.FnDecl).Name)
	assert.Equal(t, mod.Name, out.Name)
	assert.Len(t, out.Includes, 1)

	assert.Len(t, mod.Decls, 3, "original module is untouched")
}
