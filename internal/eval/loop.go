package eval

import "github.com/golfscript-go/golfscript/internal/value"

// doLoop implements `do`: pop a block, run it, pop the result; repeat
// while that result is truthy. Running out of stack ends the loop.
func (e *Evaluator) doLoop() {
	body, ok := e.popOk()
	if !ok {
		return
	}
	var loops uint64
	for loops < e.MaxLoops {
		loops++
		e.goValue(body)
		f, ok := e.popOk()
		if !ok || f.Falsey() {
			return
		}
	}
}

// whileLoop implements `while` (which=true) and `until` (which=false):
// pop the step block and the condition block, then repeatedly run the
// condition, check its result against which, and run the step.
func (e *Evaluator) whileLoop(which bool) {
	b := e.Pop()
	a := e.Pop()
	var loops uint64
	for loops < e.MaxLoops {
		loops++
		e.goValue(a)
		f, ok := e.popOk()
		if ok {
			if f.Falsey() == which {
				return
			}
		} else if !which {
			return
		}
		e.goValue(b)
	}
}

// andOp implements `and`: pop b then a; go a if a is falsey, else go b.
func (e *Evaluator) andOp() {
	b, ok := e.popOk()
	if !ok {
		e.Push(value.Bool(false))
		return
	}
	a, ok := e.popOk()
	if !ok {
		e.goValue(b)
		return
	}
	if a.Truthy() {
		e.goValue(b)
	} else {
		e.goValue(a)
	}
}

// orOp implements `or`: pop b then a; go a if a is truthy, else go b.
func (e *Evaluator) orOp() {
	b, ok := e.popOk()
	if !ok {
		e.Push(value.Bool(false))
		return
	}
	a, ok := e.popOk()
	if !ok {
		e.goValue(b)
		return
	}
	if a.Truthy() {
		e.goValue(a)
	} else {
		e.goValue(b)
	}
}

// xorOp implements `xor`: go a if a is truthy and b is falsey; go b if
// b is truthy and a is falsey; otherwise push false.
func (e *Evaluator) xorOp() {
	b := e.popOrFalse()
	a := e.popOrFalse()
	switch {
	case a.Truthy() && b.Falsey():
		e.goValue(a)
	case a.Falsey() && b.Truthy():
		e.goValue(b)
	default:
		e.Push(value.Bool(false))
	}
}

func (e *Evaluator) popOrFalse() value.Value {
	v, ok := e.popOk()
	if !ok {
		return value.Bool(false)
	}
	return v
}

// ifOp implements `if`: pop c, b, a; go b when a is truthy, else go c.
func (e *Evaluator) ifOp() {
	c := e.popOrFalse()
	b := e.popOrFalse()
	a := e.popOrFalse()
	if a.Truthy() {
		e.goValue(b)
	} else {
		e.goValue(c)
	}
}
