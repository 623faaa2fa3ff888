package table

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolkit/cladegen/pkg/clades"
)

func TestTableCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	for _, c := range clades.Clades {
		assert.Contains(t, out.String(), c)
	}
	assert.Contains(t, out.String(), clades.Attribution)
}
