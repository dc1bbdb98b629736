// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDeclarations(t *testing.T) {
	src, err := render("variant", 3)
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "// Code generated by variantgen. DO NOT EDIT.")
	assert.Contains(t, out, "type storage3[T0, T1, T2 any] struct {")
	assert.Contains(t, out, "rest storage2[T1, T2]")
	assert.Contains(t, out, "type Variant3[T0, T1, T2 any] struct {")
	assert.Contains(t, out, "func Match3[R, T0, T1, T2 any](")
	for _, m := range []string{"Get0()", "Get1()", "Get2()", "GetIf2()", "Emplace2(", "Set2("} {
		assert.Contains(t, out, m)
	}
	assert.NotContains(t, out, "Get3()")
	assert.Contains(t, out, "return v.storage.rest.rest.head, nil")
}

func TestRenderArityOneEndsRecursion(t *testing.T) {
	src, err := render("variant", 1)
	require.NoError(t, err)
	out := string(src)
	assert.NotContains(t, out, "rest")
	assert.Contains(t, out, "return []*altOps{altOf[T0]()}")
	assert.Contains(t, out, "default:")
}

func TestRenderPackageName(t *testing.T) {
	src, err := render("sum", 2)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(src), "\npackage sum\n"))
}

func TestGeneratedFilesUpToDate(t *testing.T) {
	for n := 1; n <= 8; n++ {
		want, err := render("variant", n)
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join("..", "..", "variant"+string(rune('0'+n))+".go"))
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got), "variant%d.go is stale; run go generate", n)
	}
}

func TestGenerateWritesFiles(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"--min", "2", "--max", "3", "--out", dir})
	require.NoError(t, rootCmd.Execute())

	for _, name := range []string{"variant2.go", "variant3.go"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), name)
	}
	_, err := os.Stat(filepath.Join(dir, "variant1.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateRejectsInvalidRange(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--min", "4", "--max", "3", "--out", t.TempDir()})
	assert.Error(t, rootCmd.Execute())
}
