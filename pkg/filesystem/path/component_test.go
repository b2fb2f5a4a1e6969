package path_test

import (
	"testing"
	"unsafe"

	"github.com/arielmakestuff/pathlib-sub000/pkg/filesystem/path"
	"github.com/stretchr/testify/require"
)

func TestComponent(t *testing.T) {
	t.Run("Invalid", func(t *testing.T) {
		_, ok := path.NewNormalComponent("")
		require.False(t, ok)

		_, ok = path.NewNormalComponent(".")
		require.False(t, ok)

		_, ok = path.NewNormalComponent("..")
		require.False(t, ok)

		require.Panics(t, func() { path.MustNewNormalComponent("") })
	})

	t.Run("Valid", func(t *testing.T) {
		c, ok := path.NewNormalComponent("hello")
		require.True(t, ok)
		require.Equal(t, path.ComponentKindNormal, c.Kind())
		require.Equal(t, "hello", c.Name())
		require.Equal(t, "Normal(hello)", c.String())
	})

	t.Run("Special", func(t *testing.T) {
		require.Equal(t, path.ComponentKindRootDir, path.RootDir.Kind())
		require.Equal(t, "RootDir", path.RootDir.String())
		require.Equal(t, ".", path.CurDir.Name())
		require.Equal(t, "CurDir", path.CurDir.String())
		require.Equal(t, "..", path.ParentDir.Name())
		require.Equal(t, "ParentDir", path.ParentDir.String())
	})

	t.Run("Clone", func(t *testing.T) {
		text := "hello/world"
		c := path.MustNewNormalComponent(text[6:])
		clone := c.Clone()
		require.Equal(t, c, clone)
		require.False(t, unsafe.StringData(c.Name()) == unsafe.StringData(clone.Name()))

		// Components without a name of their own are left alone.
		require.Equal(t, path.ParentDir, path.ParentDir.Clone())
	})
}
