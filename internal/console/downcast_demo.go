package console

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/AdrianMos/cpp-examples/internal/downcast"
)

type DowncastDemoCommand struct {
	out io.Writer
}

func NewDowncastDemoCommand(out io.Writer) *DowncastDemoCommand {
	cmd := DowncastDemoCommand{out: out}
	return &cmd
}

func (cmd *DowncastDemoCommand) Name() string {
	return "downcast:demo"
}

func (cmd *DowncastDemoCommand) Description() string {
	return "converts shared handles between an interface and its concrete type"
}

func (cmd *DowncastDemoCommand) Run() error {
	slog.Info("running downcast demo")

	// Situation 1: created behind the interface, narrowed to the concrete type
	throughInterface := downcast.MakeShared[downcast.Fooer](downcast.NewMyClass(cmd.out))
	defer throughInterface.Release()
	throughInterface.Get().Foo()

	toClass, ok := downcast.Cast[*downcast.MyClass](throughInterface)
	if !ok {
		return fmt.Errorf("unable to narrow %T to *downcast.MyClass", throughInterface.Get())
	}
	defer toClass.Release()
	toClass.Get().Foo()
	toClass.Get().Bar()
	slog.Debug("narrowed shared handle", "use_count", toClass.UseCount(),
		"same_object", downcast.SameObject(throughInterface, toClass))

	// Situation 2: created as the concrete type, widened to the interface
	toClass2 := downcast.MakeShared(downcast.NewMyClass(cmd.out))
	defer toClass2.Release()
	throughInterface2, ok := downcast.Cast[downcast.Fooer](toClass2)
	if !ok {
		return fmt.Errorf("unable to widen %T to downcast.Fooer", toClass2.Get())
	}
	defer throughInterface2.Release()

	throughInterface2.Get().Foo()
	toClass2.Get().Foo()
	toClass2.Get().Bar()
	slog.Debug("widened shared handle", "use_count", toClass2.UseCount(),
		"same_object", downcast.SameObject(toClass2, throughInterface2))

	return nil
}
