package batch

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestReadInputs(t *testing.T) {
	t.Run("skips blank lines and trims", func(t *testing.T) {
		inputs, err := ReadInputs(strings.NewReader("find sql errors\n\n  blue widgets  \r\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"find sql errors", "blue widgets"}, inputs)
	})

	t.Run("last line without newline", func(t *testing.T) {
		inputs, err := ReadInputs(strings.NewReader("find phpmyadmin\nblue widgets"))
		require.NoError(t, err)
		assert.Equal(t, []string{"find phpmyadmin", "blue widgets"}, inputs)
	})

	t.Run("empty input", func(t *testing.T) {
		inputs, err := ReadInputs(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, inputs)
	})

	t.Run("line longer than 64KiB", func(t *testing.T) {
		long := "find pdfs about " + strings.Repeat("x", 70*1024)
		inputs, err := ReadInputs(strings.NewReader("blue widgets\n" + long + "\nfind sql errors\n"))
		require.NoError(t, err)
		require.Len(t, inputs, 3)
		assert.Equal(t, "blue widgets", inputs[0])
		assert.Equal(t, long, inputs[1])
		assert.Equal(t, "find sql errors", inputs[2])
	})

	t.Run("read error", func(t *testing.T) {
		_, err := ReadInputs(failingReader{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read inputs")
	})
}

func TestWriteResults(t *testing.T) {
	var buf bytes.Buffer
	err := WriteResults(&buf, []Result{
		{Input: "find phpmyadmin", Query: `inurl:"/phpmyadmin" intitle:"phpMyAdmin"`},
		{Input: "blue widgets", Query: `"blue widgets"`},
	})
	require.NoError(t, err)
	assert.Equal(t, "find phpmyadmin\tinurl:\"/phpmyadmin\" intitle:\"phpMyAdmin\"\nblue widgets\t\"blue widgets\"\n", buf.String())
}
