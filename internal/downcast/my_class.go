package downcast

import (
	"fmt"
	"io"
)

type Fooer interface {
	Foo()
}

// MyClass implements [Fooer] and has an extra Bar method which is only
// reachable through a concrete handle.
type MyClass struct {
	out io.Writer
}

var _ Fooer = (*MyClass)(nil)

func NewMyClass(out io.Writer) *MyClass {
	if out == nil {
		out = io.Discard
	}
	fmt.Fprintln(out, " MyClass object created")
	return &MyClass{out: out}
}

func (c *MyClass) Foo() {
	fmt.Fprintln(c.out, " foo() called")
}

func (c *MyClass) Bar() {
	fmt.Fprintln(c.out, " bar() called")
}
