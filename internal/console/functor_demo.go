package console

import (
	"io"
	"log/slog"

	"github.com/AdrianMos/cpp-examples/internal/functor"
)

type FunctorDemoCommand struct {
	out io.Writer
}

func NewFunctorDemoCommand(out io.Writer) *FunctorDemoCommand {
	cmd := FunctorDemoCommand{out: out}
	return &cmd
}

func (cmd *FunctorDemoCommand) Name() string {
	return "functor:demo"
}

func (cmd *FunctorDemoCommand) Description() string {
	return "transforms an array with a plain function and with a functor"
}

func (cmd *FunctorDemoCommand) Run() error {
	slog.Info("running functor demo")

	values := []int{1, 2, 3, 4, 5, 6, 7}

	// No functor
	functor.Transform(values, functor.Increment)
	if err := functor.Display(cmd.out, values); err != nil {
		return err
	}

	// Functor
	increment := functor.NewIncrementFunctor(10)
	functor.Transform(values, increment.Func())
	if err := functor.Display(cmd.out, values); err != nil {
		return err
	}

	slog.Debug("functor demo finished", "unit", increment.Unit())

	return nil
}
