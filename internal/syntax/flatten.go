package syntax

// FlatShape tags the lexical role of a flattened token. It is a closed
// set: the completion dispatcher switches over every variant explicitly.
type FlatShape int

const (
	// ShapeVariable is a variable reference.
	ShapeVariable FlatShape = iota
	// ShapeCustom is an argument completed by a dynamic provider.
	ShapeCustom
	// ShapeExternal is an external command name.
	ShapeExternal
	// ShapeInternalCall is a declared internal command name.
	ShapeInternalCall
	// ShapeString is a bare or quoted string.
	ShapeString
	// ShapeFilepath is a filesystem path token.
	ShapeFilepath
	// ShapeGlobPattern is a glob pattern token.
	ShapeGlobPattern
	// ShapeExternalArg is an argument to an external command.
	ShapeExternalArg
	// ShapeKeyword is a language keyword such as let.
	ShapeKeyword
	// ShapeGarbage is an unparseable remnant.
	ShapeGarbage
)

func (s FlatShape) String() string {
	switch s {
	case ShapeVariable:
		return "variable"
	case ShapeCustom:
		return "custom"
	case ShapeExternal:
		return "external"
	case ShapeInternalCall:
		return "internal-call"
	case ShapeString:
		return "string"
	case ShapeFilepath:
		return "filepath"
	case ShapeGlobPattern:
		return "glob-pattern"
	case ShapeExternalArg:
		return "external-arg"
	case ShapeKeyword:
		return "keyword"
	case ShapeGarbage:
		return "garbage"
	default:
		return "unknown"
	}
}

// FlatEntry is one flattened token: its span, lexical shape, and, for
// ShapeCustom only, the source of the dynamic provider to evaluate.
type FlatEntry struct {
	Span      Span
	Shape     FlatShape
	Completer string
}

// FlattenExpression reduces an expression tree to its flattened token
// sequence in document order.
func FlattenExpression(ws *WorkingSet, e *Expr) []FlatEntry {
	switch e.Kind {
	case ExprCall:
		out := []FlatEntry{{Span: e.Head, Shape: ShapeInternalCall}}
		for _, arg := range e.Args {
			out = append(out, flattenCallArg(ws, arg, e.Sig)...)
		}
		return out
	case ExprExternal:
		out := []FlatEntry{{Span: e.Head, Shape: ShapeExternal}}
		for _, arg := range e.Args {
			out = append(out, flattenExternalArg(ws, arg)...)
		}
		return out
	case ExprLet:
		out := []FlatEntry{{Span: e.Head, Shape: ShapeKeyword}}
		for _, arg := range e.Args {
			out = append(out, FlattenExpression(ws, arg)...)
		}
		return out
	case ExprVar:
		out := []FlatEntry{{Span: e.Head, Shape: ShapeVariable}}
		for _, arg := range e.Args {
			out = append(out, flattenExternalArg(ws, arg)...)
		}
		return out
	case ExprString:
		out := []FlatEntry{{Span: e.Head, Shape: ShapeString}}
		for _, arg := range e.Args {
			out = append(out, flattenExternalArg(ws, arg)...)
		}
		return out
	case ExprFilepath:
		return []FlatEntry{{Span: e.Span, Shape: ShapeFilepath}}
	case ExprGlob:
		return []FlatEntry{{Span: e.Span, Shape: ShapeGlobPattern}}
	case ExprGarbage:
		return []FlatEntry{{Span: e.Span, Shape: ShapeGarbage}}
	default:
		return []FlatEntry{{Span: e.Span, Shape: ShapeGarbage}}
	}
}

// flattenCallArg flattens an internal-call argument. A signature that
// declares a completion provider turns bare arguments into ShapeCustom;
// variable references keep their own shape.
func flattenCallArg(ws *WorkingSet, arg *Expr, sig *CommandSig) []FlatEntry {
	if arg.Kind == ExprVar {
		return FlattenExpression(ws, arg)
	}
	if sig != nil && sig.Completer != "" {
		switch arg.Kind {
		case ExprString, ExprFilepath, ExprGlob:
			return []FlatEntry{{Span: arg.Span, Shape: ShapeCustom, Completer: sig.Completer}}
		}
	}
	return FlattenExpression(ws, arg)
}

// flattenExternalArg flattens an external-command argument: bare strings
// become ShapeExternalArg, everything else keeps its intrinsic shape.
func flattenExternalArg(ws *WorkingSet, arg *Expr) []FlatEntry {
	if arg.Kind == ExprString && len(arg.Args) == 0 {
		return []FlatEntry{{Span: arg.Span, Shape: ShapeExternalArg}}
	}
	return FlattenExpression(ws, arg)
}
