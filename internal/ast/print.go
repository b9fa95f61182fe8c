package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/coda-lang/coda/internal/token"
)

// Printer writes an indented dump of a tree: one node per line with its
// kind, names, flags and span. The layout is meant for people and may change.
type Printer struct {
	w      io.Writer
	indent int
	label  string // field name for the next line
	spans  bool
	err    error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, spans: true}
}

// SetSpans turns the span suffix on or off.
func (p *Printer) SetSpans(on bool) {
	p.spans = on
}

// Print writes the dump of node and everything below it.
func (p *Printer) Print(node Node) error {
	p.printNode(node)
	return p.err
}

// Fprint dumps node to w.
func Fprint(w io.Writer, node Node) error {
	return NewPrinter(w).Print(node)
}

// String returns the dump of node without spans.
func String(node Node) string {
	var sb strings.Builder
	p := NewPrinter(&sb)
	p.SetSpans(false)
	_ = p.Print(node)
	return sb.String()
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) writeIndent() {
	if p.err != nil {
		return
	}
	for i := 0; i < p.indent; i++ {
		_, p.err = io.WriteString(p.w, "  ")
	}
}

// line writes one node line.
func (p *Printer) line(span token.Span, format string, args ...any) {
	p.writeIndent()
	if p.label != "" {
		p.printf("%s: ", p.label)
		p.label = ""
	}
	p.printf(format, args...)
	if p.spans {
		p.printf(" [%s]", span)
	}
	p.printf("\n")
}

// field prints a child node under a field name. Nil children are skipped.
func (p *Printer) field(name string, node Node) {
	if isNil(node) {
		return
	}
	p.label = name
	p.printNode(node)
}

func (p *Printer) children(fn func()) {
	p.indent++
	fn()
	p.indent--
}

func (p *Printer) printNode(node Node) {
	if isNil(node) {
		p.writeIndent()
		p.printf("<nil>\n")
		return
	}
	span := SpanOf(node)

	switch n := node.(type) {
	case *Module:
		p.line(span, "Module %s", n.Name)
		p.children(func() {
			for _, inc := range n.Includes {
				p.printNode(inc)
			}
			for _, d := range n.Decls {
				p.printNode(d)
			}
		})

	case *Include:
		p.line(span, "Include %s", strings.Join(n.Path, "::"))

	case *Attribute:
		if len(n.Args) == 0 {
			p.line(span, "@%s", n.Name)
		} else {
			p.line(span, "@%s(%s)", n.Name, strings.Join(n.Args, ", "))
		}

	case *FnDecl:
		p.line(span, "FnDecl %s%s", n.Name, fnFlags(n))
		p.children(func() {
			for _, a := range n.Attributes {
				p.printNode(a)
			}
			p.field("returns", n.Return)
			for _, param := range n.Params {
				p.printNode(param)
			}
			p.field("body", n.Body)
		})

	case *Param:
		p.line(span, "Param %s %s", typeText(n.Type), n.Name)
		p.children(func() {
			for _, a := range n.Attributes {
				p.printNode(a)
			}
		})

	case *VarDecl:
		p.line(span, "Var %s %s", typeText(n.Type), n.Name)
		p.children(func() {
			p.field("init", n.Init)
		})

	case TypeRef:
		p.line(span, "Type %s", TypeString(n))

	case Expr:
		p.printExpr(n, span)

	case Stmt:
		p.printStmt(n, span)

	default:
		p.line(span, "<%T>", node)
	}
}

func (p *Printer) printExpr(e Expr, span token.Span) {
	switch n := e.(type) {
	case *Literal:
		p.line(span, "Literal %s %s", n.Kind, literalText(n))

	case *Ident:
		p.line(span, "Ident %s", n.Name)

	case *Path:
		p.line(span, "Path %s", strings.Join(n.Segments, "::"))

	case *UnaryExpr:
		p.line(span, "Unary %s", n.Op)
		p.children(func() {
			p.printNode(n.Operand)
		})

	case *BinaryExpr:
		p.line(span, "Binary %s", n.Op)
		p.children(func() {
			p.printNode(n.Left)
			p.printNode(n.Right)
		})

	case *CallExpr:
		p.line(span, "Call (%d args)", len(n.Args))
		p.children(func() {
			p.field("callee", n.Callee)
			for _, arg := range n.Args {
				p.printNode(arg)
			}
		})

	case *IndexExpr:
		p.line(span, "Index")
		p.children(func() {
			p.printNode(n.Target)
			p.field("index", n.Index)
		})

	case *MemberExpr:
		p.line(span, "Member .%s", n.Name)
		p.children(func() {
			p.printNode(n.Target)
		})

	case *CastExpr:
		p.line(span, "Cast %s", typeText(n.Type))
		p.children(func() {
			p.printNode(n.Expr)
		})

	default:
		p.line(span, "<%T>", e)
	}
}

func (p *Printer) printStmt(s Stmt, span token.Span) {
	switch n := s.(type) {
	case *VarStmt:
		p.printNode(n.Decl)

	case *ExprStmt:
		p.line(span, "ExprStmt")
		p.children(func() {
			p.printNode(n.Expr)
		})

	case *BlockStmt:
		p.line(span, "Block (%d stmts)", len(n.Stmts))
		p.children(func() {
			for _, st := range n.Stmts {
				p.printNode(st)
			}
		})

	case *ReturnStmt:
		p.line(span, "Return")
		p.children(func() {
			p.field("value", n.Value)
		})

	case *IfStmt:
		p.line(span, "If")
		p.children(func() {
			p.field("cond", n.Cond)
			p.field("then", n.Then)
			p.field("else", n.Else)
		})

	case *ForStmt:
		p.line(span, "For")
		p.children(func() {
			p.field("init", n.Init)
			p.field("cond", n.Cond)
			p.field("post", n.Post)
			p.field("body", n.Body)
		})

	case *WhileStmt:
		p.line(span, "While")
		p.children(func() {
			p.field("cond", n.Cond)
			p.field("body", n.Body)
		})

	case *EmptyStmt:
		p.line(span, "Empty")

	case *BreakStmt:
		p.line(span, "Break")

	case *ContinueStmt:
		p.line(span, "Continue")

	default:
		p.line(span, "<%T>", s)
	}
}

func fnFlags(f *FnDecl) string {
	var flags []string
	if f.Export {
		flags = append(flags, "export")
	}
	if f.Extern {
		flags = append(flags, "extern")
	}
	if f.Unsafe {
		flags = append(flags, "unsafe")
	}
	if f.Body == nil {
		flags = append(flags, "signature")
	}
	if len(flags) == 0 {
		return ""
	}
	return " (" + strings.Join(flags, ", ") + ")"
}

func typeText(t TypeRef) string {
	if t == nil {
		return "<nil>"
	}
	return TypeString(t)
}

func literalText(l *Literal) string {
	switch l.Kind {
	case LitInt:
		return strconv.FormatUint(l.Int, 10)
	case LitFloat:
		return strconv.FormatFloat(l.Float, 'g', -1, 64)
	case LitString:
		return strconv.Quote(l.Str)
	case LitChar:
		return strconv.QuoteRune(l.Char)
	case LitBool:
		return strconv.FormatBool(l.Bool)
	default:
		return l.Raw
	}
}
