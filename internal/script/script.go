// Package script compiles small Lua expressions into numeric key
// functions for the gridplot command line, so chart keys can be supplied
// at run time without recompiling.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Expr is a compiled Lua expression in one variable x. The standard Lua
// libraries are open, so expressions like "math.sin(x/3)" work. An Expr
// owns a Lua state and is not safe for concurrent use.
type Expr struct {
	l  *lua.LState
	fn *lua.LFunction
}

// Compile wraps expr in a function of x and compiles it.
func Compile(expr string) (*Expr, error) {
	L := lua.NewState()
	if err := L.DoString("return function(x) return " + expr + " end"); err != nil {
		L.Close()
		return nil, fmt.Errorf("compile %q: %w", expr, err)
	}
	fn, ok := L.Get(-1).(*lua.LFunction)
	L.Pop(1)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("compile %q: expected a function result", expr)
	}
	return &Expr{l: L, fn: fn}, nil
}

// Eval applies the expression to x. A non-number result is an error.
func (e *Expr) Eval(x float64) (float64, error) {
	err := e.l.CallByParam(lua.P{Fn: e.fn, NRet: 1, Protect: true}, lua.LNumber(x))
	if err != nil {
		return 0, fmt.Errorf("eval at %g: %w", x, err)
	}
	ret := e.l.Get(-1)
	e.l.Pop(1)
	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("eval at %g: expression returned %s, want number", x, ret.Type())
	}
	return float64(n), nil
}

// Map applies the expression to every sample, stopping at the first error.
func (e *Expr) Map(xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	for i, x := range xs {
		v, err := e.Eval(x)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Close releases the Lua state.
func (e *Expr) Close() {
	e.l.Close()
}
