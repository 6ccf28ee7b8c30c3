package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTasks(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "tasks.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeTasks(t, dir, "3 5\n2 3\n3 4\n4 5\n")

	t.Run("menu choice from stdin", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), []string{path}, strings.NewReader("2\n"), &stdout, &stderr)
		assert.Equal(t, 0, code, stderr.String())
		assert.Contains(t, stdout.String(), "Maximum value: 7\nSelected tasks: 0 1\nExecution time: ")
	})

	t.Run("env selects the algorithm", func(t *testing.T) {
		t.Setenv("TASKPICK_ALGORITHM", "greedy")
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), []string{path}, strings.NewReader(""), &stdout, &stderr)
		assert.Equal(t, 0, code, stderr.String())
		assert.NotContains(t, stdout.String(), "Enter your choice")
	})

	t.Run("invalid menu choice", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), []string{path}, strings.NewReader("9\n"), &stdout, &stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "invalid choice")
	})

	t.Run("wrong argument count", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), nil, strings.NewReader(""), &stdout, &stderr)
		assert.Equal(t, 1, code)
		assert.NotEmpty(t, stderr.String())
	})

	t.Run("unopenable file", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), []string{filepath.Join(dir, "nope.txt"), "--algo", "1"}, strings.NewReader(""), &stdout, &stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "error opening file")
	})

	t.Run("generate then compare", func(t *testing.T) {
		var gen, stderr bytes.Buffer
		code := run(context.Background(), []string{"generate", "-n", "10", "--seed", "3"}, strings.NewReader(""), &gen, &stderr)
		require.Equal(t, 0, code, stderr.String())

		instance := writeTasks(t, t.TempDir(), gen.String())
		var stdout bytes.Buffer
		code = run(context.Background(), []string{"compare", instance}, strings.NewReader(""), &stdout, &stderr)
		require.Equal(t, 0, code, stderr.String())
		assert.Equal(t, 4, strings.Count(stdout.String(), "value="))
		assert.Empty(t, stderr.String())
	})
}
