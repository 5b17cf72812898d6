// Copyright 2026 The Dhall-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package typecheck

import (
	"fmt"

	"dhall-lang.org/go/dhall/dhallast"
	"dhall-lang.org/go/dhall/nameenv"
	"dhall-lang.org/go/dhall/value"
)

// fakeNormalizer is a minimal value.Normalizer double good enough to
// exercise the judgment table without a real evaluator: it interprets
// exactly the forms type_one_layer's tests build (builtins, Pi/record/
// union types applied to other closed type expressions) and leaves
// dependent free-variable quoting to the caller picking non-dependent
// test scenarios, the same scope restriction the external normalizer
// carries across this whole module.
type fakeNormalizer struct{}

func (fakeNormalizer) NormalizeWHNF(v value.Value, env value.NzEnv) value.Value { return v }
func (fakeNormalizer) NormalizeNF(v value.Value, env value.NzEnv) value.Value   { return v }

func (fakeNormalizer) MergeMaps(a, b map[dhallast.Label]value.Value, conflict func(dhallast.Label, value.Value, value.Value) value.Value) map[dhallast.Label]value.Value {
	out := make(map[dhallast.Label]value.Value, len(a)+len(b))
	for l, v := range a {
		out[l] = v
	}
	for l, v := range b {
		if existing, ok := out[l]; ok {
			out[l] = conflict(l, existing, v)
		} else {
			out[l] = v
		}
	}
	return out
}

func (fakeNormalizer) FromConst(c dhallast.Const) value.Value { return value.ConstVal{Const: c} }

func (fakeNormalizer) FromBuiltin(b dhallast.Builtin) value.Value {
	return value.AppliedBuiltin{Builtin: b}
}

func (n fakeNormalizer) FromKindAndType(e dhallast.Expr, env value.NzEnv) value.Value {
	switch t := e.(type) {
	case *dhallast.ConstExpr:
		return value.ConstVal{Const: t.Const}
	case *dhallast.BuiltinExpr:
		return value.AppliedBuiltin{Builtin: t.Builtin}
	case *dhallast.NaturalLit:
		return value.Opaque{Data: t.Value.String()}
	case *dhallast.BoolLit:
		return value.Opaque{Data: t.Value}
	case *dhallast.Var:
		idx := len(env.Vals) - 1 - t.V.Idx
		if idx < 0 || idx >= len(env.Vals) || env.Vals[idx] == nil {
			panic(fmt.Sprintf("fakeNormalizer: unresolved free variable %s", t.V.Name))
		}
		return env.Vals[idx]
	case *dhallast.App:
		fn := n.FromKindAndType(t.Fn, env)
		arg := n.FromKindAndType(t.Arg, env)
		return n.App(fn, arg)
	case *dhallast.Pi:
		annot := n.FromKindAndType(t.Annot, env)
		return value.PiClosure{
			Binder: t.Binder,
			Annot:  annot,
			Closure: &fakeExprClosure{
				norm:   n,
				binder: t.Binder,
				body:   t.Body,
				env:    env,
			},
		}
	case *dhallast.RecordType:
		fields := make(map[dhallast.Label]value.Value, len(t.Order))
		for _, l := range t.Order {
			fields[l] = n.FromKindAndType(t.Fields[l], env)
		}
		return value.RecordType{Fields: fields, Order: append([]dhallast.Label(nil), t.Order...)}
	case *dhallast.UnionType:
		alts := make(map[dhallast.Label]value.Value, len(t.Order))
		for _, l := range t.Order {
			if t.Alternatives[l] == nil {
				alts[l] = nil
				continue
			}
			alts[l] = n.FromKindAndType(t.Alternatives[l], env)
		}
		return value.UnionType{Alternatives: alts, Order: append([]dhallast.Label(nil), t.Order...)}
	case *dhallast.BinOp:
		if t.Op == dhallast.Equivalence {
			return value.Equivalence{L: n.FromKindAndType(t.L, env), R: n.FromKindAndType(t.R, env)}
		}
		if t.Op == dhallast.RecordRecursiveTypeMerge {
			l := n.FromKindAndType(t.L, env).(value.RecordType)
			r := n.FromKindAndType(t.R, env).(value.RecordType)
			merged := n.MergeMaps(l.Fields, r.Fields, func(_ dhallast.Label, x, y value.Value) value.Value {
				xr, xok := x.(value.RecordType)
				yr, yok := y.(value.RecordType)
				if xok && yok {
					sub := n.MergeMaps(xr.Fields, yr.Fields, func(_ dhallast.Label, _, b value.Value) value.Value { return b })
					return value.RecordType{Fields: sub, Order: append(append([]dhallast.Label(nil), xr.Order...), yr.Order...)}
				}
				return y
			})
			return value.RecordType{Fields: merged, Order: mergedOrder(l.Order, r.Order)}
		}
		panic(fmt.Sprintf("fakeNormalizer: unsupported BinOp %s", t.Op))
	default:
		panic(fmt.Sprintf("fakeNormalizer: unsupported type-level expression %T", e))
	}
}

func (n fakeNormalizer) App(fn, arg value.Value) value.Value {
	switch f := fn.(type) {
	case value.AppliedBuiltin:
		return value.AppliedBuiltin{Builtin: f.Builtin, Args: append(append([]value.Value(nil), f.Args...), arg)}
	case value.PiClosure:
		return f.Closure.Apply(arg)
	default:
		panic(fmt.Sprintf("fakeNormalizer: cannot apply %T", fn))
	}
}

func (fakeNormalizer) TypeOfBuiltin(b dhallast.Builtin) dhallast.Expr {
	typeConst := dhallast.NewConst(dhallast.NoSpan, dhallast.Type)
	switch b {
	case dhallast.Bool, dhallast.Natural, dhallast.Integer, dhallast.Double, dhallast.Text:
		return typeConst
	case dhallast.List, dhallast.Optional:
		return dhallast.NewPi(dhallast.NoSpan, "a", typeConst, typeConst)
	case dhallast.NaturalIsZero, dhallast.NaturalEven, dhallast.NaturalOdd:
		return dhallast.NewPi(dhallast.NoSpan, "_", dhallast.NewBuiltin(dhallast.NoSpan, dhallast.Natural), dhallast.NewBuiltin(dhallast.NoSpan, dhallast.Bool))
	default:
		panic(fmt.Sprintf("fakeNormalizer: unsupported builtin %s", b))
	}
}

func (n fakeNormalizer) Quote(v value.Value, env value.VarEnv) dhallast.Expr {
	switch t := v.(type) {
	case value.ConstVal:
		return dhallast.NewConst(dhallast.NoSpan, t.Const)
	case value.AppliedBuiltin:
		expr := dhallast.Expr(dhallast.NewBuiltin(dhallast.NoSpan, t.Builtin))
		for _, a := range t.Args {
			expr = dhallast.NewApp(dhallast.NoSpan, expr, n.Quote(a, env))
		}
		return expr
	case value.RecordType:
		fields := make(map[dhallast.Label]dhallast.Expr, len(t.Order))
		for _, l := range t.Order {
			fields[l] = n.Quote(t.Fields[l], env)
		}
		return dhallast.NewRecordType(dhallast.NoSpan, append([]dhallast.Label(nil), t.Order...), fields)
	case value.UnionType:
		alts := make(map[dhallast.Label]dhallast.Expr, len(t.Order))
		for _, l := range t.Order {
			if t.Alternatives[l] == nil {
				alts[l] = nil
				continue
			}
			alts[l] = n.Quote(t.Alternatives[l], env)
		}
		return dhallast.NewUnionType(dhallast.NoSpan, append([]dhallast.Label(nil), t.Order...), alts)
	case value.PiClosure:
		// Non-dependent case only: apply the closure without ever
		// supplying a real placeholder value, valid as long as the
		// closure never inspects its argument (value.ConstClosure, or
		// a body provably free of its own binder).
		body, ok := t.Closure.RemoveBinder()
		if !ok {
			panic("fakeNormalizer: Quote of a dependent PiClosure is unsupported in tests")
		}
		return dhallast.NewPi(dhallast.NoSpan, t.Binder, n.Quote(t.Annot, env), n.Quote(body, env))
	default:
		panic(fmt.Sprintf("fakeNormalizer: unsupported Quote target %T", v))
	}
}

// fakeExprClosure is FromKindAndType's Pi-expression counterpart to
// typecheck's own exprClosure: it re-evaluates body under env extended
// with whatever argument Apply is given.
type fakeExprClosure struct {
	norm   fakeNormalizer
	binder dhallast.Label
	body   dhallast.Expr
	env    value.NzEnv
}

func (c *fakeExprClosure) Apply(arg value.Value) value.Value {
	env := value.NzEnv{Vals: append(append([]value.Value(nil), c.env.Vals...), arg)}
	return c.norm.FromKindAndType(c.body, env)
}

func (c *fakeExprClosure) RemoveBinder() (value.Value, bool) {
	ne := nameenv.Empty().Insert(c.binder)
	if dependsOnDepthZero(ne, c.body) {
		return nil, false
	}
	env := value.NzEnv{Vals: append(append([]value.Value(nil), c.env.Vals...), nil)}
	return c.norm.FromKindAndType(c.body, env), true
}
