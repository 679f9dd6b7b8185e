package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintBuildData(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)

	out := buf.String()
	require.Contains(t, out, "Build version: "+Version)
	require.Contains(t, out, "Build date: "+Date)
	require.Contains(t, out, "Build commit: "+Commit)
}
