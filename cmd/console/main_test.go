package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand_RegistersCommands(t *testing.T) {
	root := newRootCommand(initCommands())

	for _, name := range []string{"news:demo", "functor:demo", "downcast:demo"} {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := root.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, cmd.Name())
		})
	}
}

func TestNewRootCommand_RejectsArguments(t *testing.T) {
	root := newRootCommand(initCommands())
	root.SetArgs([]string{"functor:demo", "unexpected"})

	assert.Error(t, root.Execute())
}
