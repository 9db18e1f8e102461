// Package eval implements the DIY Lang evaluator: special forms, primitive
// operators and closure application over lexical environments.
package eval

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/Xovval/diy-lang/pkg/environ"
	"github.com/Xovval/diy-lang/pkg/lisp"
	"github.com/Xovval/diy-lang/pkg/symbol"
)

// Special form keywords.
var (
	symQuote  = symbol.Intern("quote")
	symDefine = symbol.Intern("define")
	symLambda = symbol.Intern("lambda")
	symIf     = symbol.Intern("if")
	symAtom   = symbol.Intern("atom")
	symCons   = symbol.Intern("cons")
	symHead   = symbol.Intern("head")
	symTail   = symbol.Intern("tail")
	symEmpty  = symbol.Intern("empty")
	symCond   = symbol.Intern("cond")
	symLet    = symbol.Intern("let")
	symDefn   = symbol.Intern("defn")
	symPrint  = symbol.Intern("print")
)

// binary operators taking two evaluated operands
var binaryOps = map[symbol.ID]string{
	symbol.Intern("+"):   "+",
	symbol.Intern("-"):   "-",
	symbol.Intern("*"):   "*",
	symbol.Intern("/"):   "/",
	symbol.Intern(">"):   ">",
	symbol.Intern("eq"):  "eq",
	symbol.Intern("mod"): "mod",
}

// Keywords returns the sorted names of the special forms and operators
// handled by the evaluator itself.
func Keywords() []string {
	forms := []symbol.ID{
		symQuote, symDefine, symLambda, symIf, symAtom, symCons, symHead,
		symTail, symEmpty, symCond, symLet, symDefn, symPrint,
	}
	names := make([]string, 0, len(forms)+len(binaryOps))
	for _, id := range forms {
		names = append(names, id.String())
	}
	for _, name := range binaryOps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Evaluator evaluates expressions.  An Evaluator is not safe for concurrent
// use.
type Evaluator struct {
	printer  Printer
	maxDepth int
	depth    int
	stack    CallStack
}

// New returns an Evaluator configured with configs.
func New(configs ...Config) (*Evaluator, error) {
	ev := newEvaluator()
	for _, config := range configs {
		err := config(ev)
		if err != nil {
			return nil, err
		}
	}
	return ev, nil
}

func newEvaluator() *Evaluator {
	return &Evaluator{
		printer:  &WriterPrinter{W: os.Stdout},
		maxDepth: DefaultMaxDepth,
	}
}

// Evaluate evaluates expr in env with a default Evaluator.
func Evaluate(expr lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	return newEvaluator().Eval(expr, env)
}

// Eval evaluates expr in the scope of env and returns the resulting value.
func (ev *Evaluator) Eval(expr lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	ev.depth++
	defer func() { ev.depth-- }()
	if ev.depth > ev.maxDepth {
		return lisp.LVal{}, &lisp.StackExhaustedError{Depth: ev.maxDepth}
	}

	switch expr.Type {
	case lisp.LBool, lisp.LInt, lisp.LString, lisp.LClosure:
		return expr, nil
	case lisp.LSymbol:
		id, _ := lisp.GetSymbol(expr)
		return env.Lookup(id)
	case lisp.LList:
		cells, _ := lisp.GetList(expr)
		if len(cells) == 0 {
			return lisp.LVal{}, lisp.ErrEmptyExpression
		}
		return ev.evalForm(cells[0], cells[1:], env)
	default:
		return lisp.LVal{}, fmt.Errorf("cannot evaluate %v value", expr.Type)
	}
}

// evalForm evaluates the non-empty list expression (op args...).
func (ev *Evaluator) evalForm(op lisp.LVal, args []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	switch op.Type {
	case lisp.LClosure:
		argv, err := ev.evalEach(args, env)
		if err != nil {
			return lisp.LVal{}, err
		}
		return ev.apply("lambda", op, argv)
	case lisp.LList:
		if cells, _ := lisp.GetList(op); len(cells) > 0 {
			fn, err := ev.Eval(op, env)
			if err != nil {
				return lisp.LVal{}, err
			}
			return ev.call("lambda", fn, args, env)
		}
	}

	id, ok := lisp.GetSymbol(op)
	if !ok {
		return lisp.LVal{}, &lisp.NotAFunctionError{Value: op}
	}
	switch id {
	case symQuote:
		return evalQuote(args)
	case symDefine:
		return ev.evalDefine(args, env)
	case symLambda:
		return evalLambda(args, env)
	case symIf:
		return ev.evalIf(args, env)
	case symAtom:
		return ev.evalAtom(args, env)
	case symCons:
		return ev.evalCons(args, env)
	case symHead:
		return ev.evalHead(args, env)
	case symTail:
		return ev.evalTail(args, env)
	case symEmpty:
		return ev.evalEmpty(args, env)
	case symCond:
		return ev.evalCond(args, env)
	case symLet:
		return ev.evalLet(args, env)
	case symDefn:
		return ev.evalDefn(args, env)
	case symPrint:
		return ev.evalPrint(args, env)
	}
	if name, ok := binaryOps[id]; ok {
		return ev.evalBinary(name, args, env)
	}

	fn, err := env.Lookup(id)
	if err != nil {
		return lisp.LVal{}, err
	}
	return ev.call(id.String(), fn, args, env)
}

func (ev *Evaluator) evalEach(exprs []lisp.LVal, env *environ.Environ) ([]lisp.LVal, error) {
	vals := make([]lisp.LVal, len(exprs))
	for i := range exprs {
		var err error
		vals[i], err = ev.Eval(exprs[i], env)
		if err != nil {
			return nil, err
		}
	}
	return vals, nil
}

func checkArity(form string, args []lisp.LVal, n int) error {
	if len(args) != n {
		return &lisp.ArityError{Form: form, Expected: n, Got: len(args)}
	}
	return nil
}

func evalQuote(args []lisp.LVal) (lisp.LVal, error) {
	if err := checkArity("quote", args, 1); err != nil {
		return lisp.LVal{}, err
	}
	return args[0], nil
}

// evalDefine binds a symbol in env and returns the unevaluated value
// expression.
func (ev *Evaluator) evalDefine(args []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	if err := checkArity("define", args, 2); err != nil {
		return lisp.LVal{}, err
	}
	id, ok := lisp.GetSymbol(args[0])
	if !ok {
		return lisp.LVal{}, &lisp.NotASymbolError{Value: args[0]}
	}
	v, err := ev.Eval(args[1], env)
	if err != nil {
		return lisp.LVal{}, err
	}
	env.Set(id, v)
	return args[1], nil
}

func evalLambda(args []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	if err := checkArity("lambda", args, 2); err != nil {
		return lisp.LVal{}, err
	}
	return makeClosure(args[0], args[1], env)
}

func makeClosure(formals lisp.LVal, body lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	cells, ok := lisp.GetList(formals)
	if !ok {
		return lisp.LVal{}, &lisp.NotAListError{Value: formals}
	}
	params := make([]symbol.ID, len(cells))
	for i := range cells {
		params[i], ok = lisp.GetSymbol(cells[i])
		if !ok {
			return lisp.LVal{}, &lisp.NotASymbolError{Value: cells[i]}
		}
	}
	return environ.NewClosure(env, params, body), nil
}

// evalIf evaluates exactly one of its branches.
func (ev *Evaluator) evalIf(args []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	if err := checkArity("if", args, 3); err != nil {
		return lisp.LVal{}, err
	}
	test, err := ev.Eval(args[0], env)
	if err != nil {
		return lisp.LVal{}, err
	}
	if lisp.IsTrue(test) {
		return ev.Eval(args[1], env)
	}
	return ev.Eval(args[2], env)
}

func (ev *Evaluator) evalAtom(args []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	if err := checkArity("atom", args, 1); err != nil {
		return lisp.LVal{}, err
	}
	v, err := ev.Eval(args[0], env)
	if err != nil {
		return lisp.LVal{}, err
	}
	return lisp.Bool(lisp.IsAtom(v)), nil
}

// evalCond returns the result of the first clause whose condition is true.
// Clauses after it are never inspected.  When no clause matches evalCond
// returns false.
func (ev *Evaluator) evalCond(args []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	if err := checkArity("cond", args, 1); err != nil {
		return lisp.LVal{}, err
	}
	clauses, ok := lisp.GetList(args[0])
	if !ok {
		return lisp.LVal{}, &lisp.NotAListError{Value: args[0]}
	}
	for _, clause := range clauses {
		pair, ok := lisp.GetList(clause)
		if !ok {
			return lisp.LVal{}, &lisp.NotAListError{Value: clause}
		}
		if err := checkArity("cond", pair, 2); err != nil {
			return lisp.LVal{}, err
		}
		test, err := ev.Eval(pair[0], env)
		if err != nil {
			return lisp.LVal{}, err
		}
		if lisp.IsTrue(test) {
			return ev.Eval(pair[1], env)
		}
	}
	return lisp.False(), nil
}

// evalLet binds names sequentially.  Each value expression sees the names
// bound before it, through a snapshot taken when it is evaluated, and the
// body sees all of them.
func (ev *Evaluator) evalLet(args []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	if err := checkArity("let", args, 2); err != nil {
		return lisp.LVal{}, err
	}
	specs, ok := lisp.GetList(args[0])
	if !ok {
		return lisp.LVal{}, &lisp.NotAListError{Value: args[0]}
	}
	bindings := environ.NewBindings(len(specs))
	for _, spec := range specs {
		pair, ok := lisp.GetList(spec)
		if !ok {
			return lisp.LVal{}, &lisp.NotAListError{Value: spec}
		}
		if err := checkArity("let", pair, 2); err != nil {
			return lisp.LVal{}, err
		}
		id, ok := lisp.GetSymbol(pair[0])
		if !ok {
			return lisp.LVal{}, &lisp.NotASymbolError{Value: pair[0]}
		}
		v, err := ev.Eval(pair[1], env.Extend(bindings.Copy()))
		if err != nil {
			return lisp.LVal{}, err
		}
		bindings.Put(id, v)
	}
	return ev.Eval(args[1], env.Extend(bindings))
}

func (ev *Evaluator) evalDefn(args []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	if err := checkArity("defn", args, 3); err != nil {
		return lisp.LVal{}, err
	}
	id, ok := lisp.GetSymbol(args[0])
	if !ok {
		return lisp.LVal{}, &lisp.NotASymbolError{Value: args[0]}
	}
	fn, err := makeClosure(args[1], args[2], env)
	if err != nil {
		return lisp.LVal{}, err
	}
	env.Set(id, fn)
	return fn, nil
}

func (ev *Evaluator) evalPrint(args []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	if err := checkArity("print", args, 1); err != nil {
		return lisp.LVal{}, err
	}
	v, err := ev.Eval(args[0], env)
	if err != nil {
		return lisp.LVal{}, err
	}
	err = ev.printer.Print(v)
	if err != nil {
		return lisp.LVal{}, fmt.Errorf("print: %w", err)
	}
	return v, nil
}

// Call evaluates argExprs in env and applies the closure fn to the results.
// Call returns an ArityError without evaluating any argument if the number
// of argument expressions differs from the number of parameters.
func (ev *Evaluator) Call(fn lisp.LVal, argExprs []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	return ev.call("lambda", fn, argExprs, env)
}

func (ev *Evaluator) call(name string, fn lisp.LVal, argExprs []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	c, ok := environ.GetClosure(fn)
	if !ok {
		return lisp.LVal{}, &lisp.NotAFunctionError{Value: fn}
	}
	if len(argExprs) != c.Arity() {
		return lisp.LVal{}, &lisp.ArityError{Expected: c.Arity(), Got: len(argExprs)}
	}
	args, err := ev.evalEach(argExprs, env)
	if err != nil {
		return lisp.LVal{}, err
	}
	return ev.apply(name, fn, args)
}

// Apply applies the closure fn to already evaluated arguments.
func (ev *Evaluator) Apply(fn lisp.LVal, args []lisp.LVal) (lisp.LVal, error) {
	return ev.apply("lambda", fn, args)
}

func (ev *Evaluator) apply(name string, fn lisp.LVal, args []lisp.LVal) (lisp.LVal, error) {
	c, ok := environ.GetClosure(fn)
	if !ok {
		return lisp.LVal{}, &lisp.NotAFunctionError{Value: fn}
	}
	bindings, err := environ.ZipBindings(c.Params, args)
	if err != nil {
		return lisp.LVal{}, err
	}
	ev.stack.Push(name, c.Arity())
	defer ev.stack.Pop()
	v, err := ev.Eval(c.Body, c.Env.Extend(bindings))
	if err != nil {
		return lisp.LVal{}, ev.traceError(err)
	}
	return v, nil
}

// traceError attaches the current call stack to err unless a stack is
// already attached.
func (ev *Evaluator) traceError(err error) error {
	var trace *TraceError
	if errors.As(err, &trace) {
		return err
	}
	return &TraceError{Err: err, Stack: ev.stack.Copy()}
}
