package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestYAMLUnmarshal_CommandAliases(t *testing.T) {
	var step commandStep
	require.NoError(t, yamlUnmarshal([]byte("cmd: flake8\nargs: [google, tests]\n"), &step))
	require.Equal(t, "flake8", step.Command)
	require.Equal(t, []string{"google", "tests"}, step.Args)

	// "command" wins when both are present
	step = commandStep{}
	require.NoError(t, yamlUnmarshal([]byte("command: black\ncmd: flake8\n"), &step))
	require.Equal(t, "black", step.Command)
}

func TestYAMLUnmarshal_StepOptions(t *testing.T) {
	var step commandStep
	in := "command: py.test\ntimeout: 30s\nposargs: true\nskip_unless_path: tests/system.py\ntitle: System tests\n"
	require.NoError(t, yamlUnmarshal([]byte(in), &step))
	require.Equal(t, "30s", step.Timeout)
	require.True(t, step.Posargs)
	require.Equal(t, "tests/system.py", step.SkipUnlessPath)
	require.Equal(t, "System tests", step.Title)
}

func TestYAMLUnmarshal_InvalidYAML_Error(t *testing.T) {
	var step commandStep
	err := yamlUnmarshal([]byte(":\n-::bad"), &step)
	require.Error(t, err)
}
