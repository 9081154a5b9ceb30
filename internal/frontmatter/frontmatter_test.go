package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("note with frontmatter", func(t *testing.T) {
		t.Parallel()
		src := []byte("---\ntitle: My Note\npandoc-toc: true\n---\n# Heading\n\nBody text.\n")

		fields, body, err := Extract(src)
		require.NoError(t, err)
		require.Len(t, fields, 2)
		assert.Equal(t, "title", fields[0].Key)
		assert.Equal(t, "My Note", fields[0].Value)
		assert.Equal(t, "pandoc-toc", fields[1].Key)
		assert.Equal(t, true, fields[1].Value)
		assert.Equal(t, "# Heading\n\nBody text.\n", string(body))
	})

	t.Run("note without frontmatter", func(t *testing.T) {
		t.Parallel()
		src := []byte("# Just a heading\n")

		fields, body, err := Extract(src)
		require.NoError(t, err)
		assert.Empty(t, fields)
		assert.Equal(t, src, body)
	})

	t.Run("unterminated block is treated as body", func(t *testing.T) {
		t.Parallel()
		src := []byte("---\ntitle: Oops\nno closing delimiter\n")

		fields, body, err := Extract(src)
		require.NoError(t, err)
		assert.Empty(t, fields)
		assert.Equal(t, src, body)
	})

	t.Run("header order is preserved", func(t *testing.T) {
		t.Parallel()
		src := []byte("---\nz: 1\na: 2\nm: 3\n---\nbody\n")

		fields, _, err := Extract(src)
		require.NoError(t, err)
		require.Len(t, fields, 3)
		assert.Equal(t, []string{"z", "a", "m"}, []string{fields[0].Key, fields[1].Key, fields[2].Key})
	})

	t.Run("invalid yaml reports an error", func(t *testing.T) {
		t.Parallel()
		src := []byte("---\ntitle: [unclosed\n---\nbody\n")

		_, _, err := Extract(src)
		assert.Error(t, err)
	})

	t.Run("non-mapping header rejected", func(t *testing.T) {
		t.Parallel()
		src := []byte("---\n- just\n- a list\n---\nbody\n")

		_, _, err := Extract(src)
		assert.Error(t, err)
	})
}
