package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSuite(t *testing.T) {
	suite, err := Default()
	require.NoError(t, err)
	assert.Len(t, suite.Cases, 31)

	for _, c := range suite.Cases {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Black)
		assert.NotEmpty(t, c.White)
		assert.NotEmpty(t, c.Expect)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.hcl")
	content := `
case "high card" {
  black  = "Black: 2H 3D 5S 9C KD"
  white  = "White: 2C 3H 4S 8C AH"
  expect = "Win White, High Card: A over K"
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	suite, err := Load(path)
	require.NoError(t, err)
	require.Len(t, suite.Cases, 1)
	assert.Equal(t, "high card", suite.Cases[0].Name)
	assert.Equal(t, "Win White, High Card: A over K", suite.Cases[0].Expect)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
		assert.Error(t, err)
	})

	t.Run("empty suite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.hcl")
		require.NoError(t, os.WriteFile(path, []byte("# no cases\n"), 0644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("malformed hcl", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.hcl")
		require.NoError(t, os.WriteFile(path, []byte("case {{{"), 0644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
