package coda_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coda-lang/coda"
)

const program = `module demo;
include std::io;

fn int square(int x) {
    return x * x;
}

fn void main() {
    for (int i = 0; i < 10; i += 1) {
        io::print(square(i));
    }
}
`

func TestCompile(t *testing.T) {
	unit, err := coda.Compile("demo.coda", []byte(program), nil)
	require.NoError(t, err)
	defer unit.Release()

	assert.Equal(t, "demo.coda", unit.Filename)
	require.NotNil(t, unit.Module)
	assert.Equal(t, "demo", unit.Module.Name)
	assert.Len(t, unit.Module.Functions(), 2)
	assert.Empty(t, unit.Diagnostics)
	assert.NoError(t, unit.Err())
	assert.Equal(t, "EOF", unit.Tokens[len(unit.Tokens)-1].Kind.String())
}

func TestCompileSyntaxErrors(t *testing.T) {
	src := "module m;\nfn void f() {\n    a = ;\n    b = 1\n}\n"
	unit, err := coda.Compile("bad.coda", []byte(src), nil)
	require.Error(t, err)
	require.NotNil(t, unit.Module, "partial tree is kept")

	diags, ok := coda.AsDiagnostics(err)
	require.True(t, ok)
	require.Len(t, diags, 2)
	assert.Equal(t, "Parse error at line 3, column 9: expected expression (got ;)", diags[0].Error())
	assert.Equal(t, "Parse error at line 5, column 1: expected ';' (got })", diags[1].Error())
	assert.Equal(t, coda.Syntax, diags[0].Kind)
	assert.Equal(t, diags, unit.Diagnostics)
	assert.Equal(t, diags[0].Error()+" (and 1 more errors)", err.Error())
}

func TestCompileLexErrorsSkipParsing(t *testing.T) {
	unit, err := coda.Compile("bad.coda", []byte("module m;\nfn void f() { x = \"open; }\n"), nil)
	require.Error(t, err)
	assert.Nil(t, unit.Module)
	require.Len(t, unit.Diagnostics, 1)
	assert.Equal(t, coda.Lexical, unit.Diagnostics[0].Kind)
	assert.Equal(t, "Lex error at line 2, column 19: unterminated string", unit.Diagnostics[0].Error())
	assert.NotEmpty(t, unit.Tokens)
}

func TestCompileConfig(t *testing.T) {
	deep := "module m; fn int f() { return " + strings.Repeat("(", 40) + "1" + strings.Repeat(")", 40) + "; }"

	_, err := coda.Compile("deep.coda", []byte(deep), &coda.Config{MaxDepth: 16})
	diags, ok := coda.AsDiagnostics(err)
	require.True(t, ok)
	require.Len(t, diags, 1)
	assert.Equal(t, coda.Structural, diags[0].Kind)

	unit, err := coda.Compile("deep.coda", []byte(deep), &coda.Config{MaxDepth: 64})
	require.NoError(t, err)
	unit.Release()

	_, err = coda.Compile("demo.coda", []byte(program), &coda.Config{ArenaBlockSize: 64, ArenaLimit: 256})
	diags, ok = coda.AsDiagnostics(err)
	require.True(t, ok)
	require.Len(t, diags, 1)
	assert.Equal(t, coda.Resource, diags[0].Kind)
}

func TestCompileDoesNotModifyConfig(t *testing.T) {
	cfg := &coda.Config{}
	_, err := coda.Compile("demo.coda", []byte(program), cfg)
	require.NoError(t, err)
	assert.Zero(t, cfg.MaxDepth)
	assert.Nil(t, cfg.Logger)
}

func TestCompileLogs(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := coda.Compile("demo.coda", []byte(program), &coda.Config{Logger: logger})
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Lexed source", entries[0].Message)
	assert.Equal(t, "demo.coda", entries[0].Data["file"])
	assert.Equal(t, "Parsed module", entries[1].Message)
	assert.Equal(t, "demo", entries[1].Data["module"])
	assert.Equal(t, 2, entries[1].Data["decls"])
	assert.Equal(t, 0, entries[1].Data["diagnostics"])
	assert.Equal(t, false, entries[1].Data["fatal"])
	assert.Equal(t, 32, entries[1].Data["nodes"])
}

func TestCompileLogsDiagnostics(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	src := "module m;\nfn void f() {\n    a = ;\n    b = 1\n}\nfn void g() { return"
	_, err := coda.Compile("bad.coda", []byte(src), &coda.Config{Logger: logger})
	require.Error(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Parsed module", entry.Message)
	assert.Equal(t, 3, entry.Data["diagnostics"])
	assert.Equal(t, 2, entry.Data["syntax_errors"])
	assert.Equal(t, true, entry.Data["fatal"])
}

func TestMustCompile(t *testing.T) {
	unit := coda.MustCompile("demo.coda", []byte(program))
	assert.Equal(t, "demo", unit.Module.Name)
	assert.Panics(t, func() { coda.MustCompile("bad.coda", []byte("module;")) })
}

func TestTokens(t *testing.T) {
	tokens, err := coda.Tokens([]byte("module foo;"))
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, "foo", tokens[1].Text)

	_, err = coda.Tokens([]byte("module $;"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected character")
}

func TestUnitDump(t *testing.T) {
	unit := coda.MustCompile("one.coda", []byte("module m;\nfn int one() { return 1; }\n"))
	var sb strings.Builder
	require.NoError(t, unit.Dump(&sb, false))
	assert.True(t, strings.HasPrefix(sb.String(), "Module m\n  FnDecl one\n"))

	sb.Reset()
	require.NoError(t, unit.Dump(&sb, true))
	assert.True(t, strings.HasPrefix(sb.String(), "Module m [1:1-2:27]\n"), sb.String())
}

func TestRelease(t *testing.T) {
	unit := coda.MustCompile("demo.coda", []byte(program))
	unit.Release()
	assert.Nil(t, unit.Module)
	unit.Release()

	var sb strings.Builder
	require.NoError(t, unit.Dump(&sb, false))
	assert.Empty(t, sb.String())
}

// Units share nothing, so independent sources compile in parallel.
func TestCompileConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make([]error, 8)
	names := make([]string, 8)
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			src := fmt.Sprintf("module m%d;\nfn void f%d() { return; }\n", i, i)
			unit, err := coda.Compile("gen.coda", []byte(src), nil)
			errs[i] = err
			if err == nil {
				names[i] = unit.Module.Name
				unit.Release()
			}
		}()
	}
	wg.Wait()
	for i := range 8 {
		require.NoError(t, errs[i])
		assert.Equal(t, fmt.Sprintf("m%d", i), names[i])
	}
}
