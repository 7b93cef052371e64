package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/llm"
)

// fakeClient answers completions from a script and records what it was asked
type fakeClient struct {
	replies []string
	err     error
	models  []string
	calls   [][]llm.Message
	closed  bool
}

func (c *fakeClient) Complete(_ context.Context, _ string, messages []llm.Message) (string, error) {
	c.calls = append(c.calls, messages)
	if c.err != nil {
		return "", c.err
	}
	if len(c.calls) > len(c.replies) {
		return "", errors.New("unexpected call")
	}
	return c.replies[len(c.calls)-1], nil
}

func (c *fakeClient) ListModels(_ context.Context) ([]string, error) {
	return c.models, c.err
}

func (c *fakeClient) Close() error {
	c.closed = true
	return nil
}

// useFakeClient swaps the client constructor for the duration of the test.
// The returned counter reports how many clients were built.
func useFakeClient(t *testing.T, client *fakeClient) *int {
	t.Helper()
	created := 0
	original := newClient
	newClient = func(_ context.Context, _ *llm.Config, _ string) (llm.Client, error) {
		created++
		return client, nil
	}
	t.Cleanup(func() { newClient = original })
	return &created
}

// executeCommand runs the CLI in-process and returns its stdout and stderr
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeInputs creates a master résumé and job descriptions in a temp directory
func writeInputs(t *testing.T) (dir, resumePath, jobsPath string) {
	t.Helper()
	dir = t.TempDir()
	resumePath = filepath.Join(dir, "master_resume.csv")
	jobsPath = filepath.Join(dir, "job_descriptions.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte("Jane Doe, Python, SQL"), 0644))
	require.NoError(t, os.WriteFile(jobsPath, []byte("Data Engineer: Python, Spark, AWS\n"), 0644))
	return dir, resumePath, jobsPath
}
