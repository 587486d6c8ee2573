// Package functor shows two ways to pass behaviour to [Transform]: a plain
// function and a value carrying its own parameter.
package functor

import (
	"fmt"
	"io"
	"strings"
)

func Increment(x int) int {
	return x + 1
}

// IncrementFunctor adds a fixed unit to every value it is called with.
type IncrementFunctor struct {
	unit int
}

func NewIncrementFunctor(n int) IncrementFunctor {
	return IncrementFunctor{unit: n}
}

func (f IncrementFunctor) Unit() int {
	return f.unit
}

func (f IncrementFunctor) Call(x int) int {
	return f.unit + x
}

// Func returns the functor as a function value bound to its unit.
func (f IncrementFunctor) Func() func(int) int {
	return f.Call
}

// Transform replaces every element of values with fn applied to it.
func Transform(values []int, fn func(int) int) {
	for i, v := range values {
		values[i] = fn(v)
	}
}

// Display writes values separated by spaces, e.g. "1 2 3 \n".
func Display(out io.Writer, values []int) error {
	var sb strings.Builder
	for _, v := range values {
		fmt.Fprintf(&sb, "%d ", v)
	}
	sb.WriteString("\n")
	_, err := io.WriteString(out, sb.String())
	return err
}
