package paramname

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/scanner"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// GuardPath is the import path of the package declaring the Guard handle.
const GuardPath = "github.com/dmitrymomot/guard"

const doc = `infer guard parameter names from call sites

Reports guard checks called with a blank parameter name and suggests the
source text of the checked argument instead. With -strict, also reports
parameter names that do not match the argument.`

var Analyzer = &analysis.Analyzer{
	Name:     "guardname",
	Doc:      doc,
	URL:      "https://pkg.go.dev/github.com/dmitrymomot/guard/pkg/paramname",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var strict bool

func init() {
	Analyzer.Flags.BoolVar(&strict, "strict", false, "also report parameter names that differ from the argument expression")
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
		if !ok {
			return
		}
		input, param, ok := checkParams(fn)
		if !ok || param >= len(call.Args) {
			return
		}
		inspectCall(pass, call.Args[input], call.Args[param])
	})
	return nil, nil
}

// checkParams returns the indexes of the input and param parameters when fn is a guard check.
func checkParams(fn *types.Func) (input, param int, ok bool) {
	sig, _ := fn.Type().(*types.Signature)
	if sig == nil || sig.Recv() != nil {
		return 0, 0, false
	}
	params := sig.Params()
	if params.Len() < 3 || !isGuard(params.At(0).Type()) {
		return 0, 0, false
	}
	input, param = -1, -1
	for i := 1; i < params.Len(); i++ {
		if sig.Variadic() && i == params.Len()-1 {
			break
		}
		switch v := params.At(i); v.Name() {
		case "input":
			input = i
		case "param":
			if isString(v.Type()) {
				param = i
			}
		}
	}
	return input, param, input > 0 && param > 0
}

func isGuard(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Name() == "Guard" && obj.Pkg() != nil && obj.Pkg().Path() == GuardPath
}

func isString(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Info()&types.IsString != 0
}

func inspectCall(pass *analysis.Pass, inputArg, paramArg ast.Expr) {
	lit, ok := ast.Unparen(paramArg).(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return
	}
	name, err := strconv.Unquote(lit.Value)
	if err != nil {
		return
	}
	want := exprText(pass.Fset, inputArg)
	if want == "" {
		return
	}

	switch {
	case strings.TrimSpace(name) == "":
		report(pass, lit, want, fmt.Sprintf("missing parameter name for %s", want))
	case strict && name != want:
		report(pass, lit, want, fmt.Sprintf("parameter name %q does not match argument %s", name, want))
	}
}

func report(pass *analysis.Pass, lit *ast.BasicLit, want, msg string) {
	quoted := strconv.Quote(want)
	pass.Report(analysis.Diagnostic{
		Pos:     lit.Pos(),
		End:     lit.End(),
		Message: msg,
		SuggestedFixes: []analysis.SuggestedFix{{
			Message: fmt.Sprintf("Use %s as the parameter name", quoted),
			TextEdits: []analysis.TextEdit{{
				Pos:     lit.Pos(),
				End:     lit.End(),
				NewText: []byte(quoted),
			}},
		}},
	})
}

// exprText renders e the way gofmt prints it, on a single line. Line breaks
// and indentation between tokens become one space; literals are kept verbatim.
func exprText(fset *token.FileSet, e ast.Expr) string {
	var buf bytes.Buffer
	if err := format.Node(&buf, fset, ast.Unparen(e)); err != nil {
		return ""
	}
	src := buf.Bytes()
	if !bytes.ContainsRune(src, '\n') {
		return string(src)
	}

	file := token.NewFileSet().AddFile("", -1, len(src))
	var s scanner.Scanner
	s.Init(file, src, nil, scanner.ScanComments)

	var out strings.Builder
	last := 0
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}
		text := lit
		if text == "" {
			text = tok.String()
		}
		off := file.Offset(pos)
		end := min(off+len(text), len(src))
		if gap := src[last:off]; bytes.ContainsRune(gap, '\n') {
			out.WriteByte(' ')
		} else {
			out.Write(gap)
		}
		out.Write(src[off:end])
		last = end
	}
	return out.String()
}
