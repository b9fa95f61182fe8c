package parser_test

import (
	"testing"

	"github.com/coda-lang/coda/internal/ast"
	"github.com/coda-lang/coda/internal/lexer"
	"github.com/coda-lang/coda/internal/parser"
)

// FuzzParser checks that no input makes the parser panic, loop or produce a
// node that runs backwards.
func FuzzParser(f *testing.F) {
	seeds := []string{
		"",
		"module m;",
		"module m; include std::io;",
		"module m; fn void f();",
		"module m; fn int add(int a, int b) { return a + b; }",
		"module m; @inline @section(\"text\", 4) fn void f() {}",
		"module m; fn void f(@noalias mut int*?[] xs) { xs[0] = null; }",
		"module m; fn void f() { for (int i = 0; i < 10; i += 1) { continue; } }",
		"module m; fn void f() { while (a && !b) { break; } }",
		"module m; fn void f() { if (a) { } else if (b) { } else { } }",
		"module m; fn void f() { io::print(\"x\\n\", 'c', *p.q, &r[1]); }",
		"module m; fn int f( { return 0; }",
		"module m; fn void f() { int x = ; y = 1 +; }",
		"module m; fn void f() { a = b = c <<= 1 }",
		"fn",
		"module m; @",
		"module m; fn (((int",
		"module m; fn void f() { ((((((((((1",
		"}}}}",
		";;;;",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		if len(src) > 4096 {
			return
		}
		tokens, _ := lexer.Lex([]byte(src))

		mod, errs := parser.Parse(tokens, nil)
		if mod == nil {
			t.Fatal("Parse returned a nil module")
		}
		for _, err := range errs {
			if !err.Pos.IsValid() {
				t.Fatalf("diagnostic without position: %v", err)
			}
		}

		ast.Walk(mod, func(n ast.Node) bool {
			if n.End().Offset < n.Pos().Offset {
				t.Fatalf("%T ends before it starts: %s", n, ast.SpanOf(n))
			}
			return true
		})

		_, _ = parser.ParseExpr(tokens, nil)
		_, _ = parser.ParseType(tokens, nil)
		_, _ = parser.ParseStmt(tokens, nil)
	})
}
