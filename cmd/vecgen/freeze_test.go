package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFrozenIsValidGo(t *testing.T) {
	src, err := generateFrozen("veccaps")
	require.NoError(t, err)

	fset := token.NewFileSet()
	_, err = parser.ParseFile(fset, "veccaps.go", src, parser.AllErrors)
	require.NoError(t, err, "generated source must parse:\n%s", src)

	out := string(src)
	assert.Contains(t, out, "package veccaps")
	assert.Contains(t, out, "Code generated by vecgen freeze")
	assert.Contains(t, out, "FrozenDispatchName")
	assert.Contains(t, out, "FrozenUnaligned")
	assert.Contains(t, out, "FrozenExtended")
	assert.Contains(t, out, "FrozenCrypto")
	assert.Contains(t, out, "FrozenBigendian")
}

func TestGenerateFrozenCustomPackage(t *testing.T) {
	src, err := generateFrozen("caps")
	require.NoError(t, err)
	assert.Contains(t, string(src), "package caps")
}

func TestReportCommandOutput(t *testing.T) {
	cmd := newReportCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "dispatch:")
	assert.Contains(t, out, "unaligned:")
	assert.Contains(t, out, "crypto:")
	assert.Contains(t, out, "big-endian:")
}

func TestFreezeCommandWritesFile(t *testing.T) {
	path := t.TempDir() + "/caps.go"
	cmd := newFreezeCmd()
	cmd.SetArgs([]string{"-o", path, "--pkg", "caps"})
	require.NoError(t, cmd.Execute())

	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, path, nil, parser.AllErrors)
	require.NoError(t, err)
}
