package util_test

import (
	"testing"

	"github.com/arielmakestuff/pathlib-sub000/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type exampleConfiguration struct {
	Name       string   `json:"name"`
	Iterations int      `json:"iterations"`
	Paths      []string `json:"paths"`
}

func TestUnmarshalConfigurationFromSnippet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var configuration exampleConfiguration
		require.NoError(t, util.UnmarshalConfigurationFromSnippet(
			"example.jsonnet",
			`{
				name: std.extVar('NAME'),
				iterations: 2 * 3,
				paths: ['/usr/' + p for p in ['bin', 'lib']],
			}`,
			[]string{"NAME=hello"},
			&configuration))
		require.Equal(t, exampleConfiguration{
			Name:       "hello",
			Iterations: 6,
			Paths:      []string{"/usr/bin", "/usr/lib"},
		}, configuration)
	})

	t.Run("InvalidEnvironment", func(t *testing.T) {
		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromSnippet("example.jsonnet", "{}", []string{"NOEQUALS"}, &configuration)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("EvaluationFailure", func(t *testing.T) {
		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromSnippet("example.jsonnet", "{ name: error 'nope' }", nil, &configuration)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
		require.Contains(t, status.Convert(err).Message(), "Failed to evaluate configuration")
	})

	t.Run("UnknownField", func(t *testing.T) {
		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromSnippet("example.jsonnet", "{ nmae: 'typo' }", nil, &configuration)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
		require.Contains(t, status.Convert(err).Message(), "Failed to unmarshal configuration")
	})
}
