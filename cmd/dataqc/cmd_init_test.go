package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/banglastudy/dataqc/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommand_WritesValidProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")

	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"init", path, "--base", "relaxed"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), path)

	p, err := profile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "relaxed", p.Name)
	assert.Equal(t, 0.40, p.MinOverall)
}

func TestInitCommand_ScaffoldUsableByAnalyze(t *testing.T) {
	dir := t.TempDir()
	profilePath := filepath.Join(dir, "custom.yaml")

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init", profilePath})
	require.NoError(t, cmd.Execute())

	datasetPath := filepath.Join(dir, "dataset.ndjson")
	require.NoError(t, os.WriteFile(datasetPath, []byte(goodLine(1)+"\n"), 0o644))

	var buf bytes.Buffer
	cmd = newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"analyze", datasetPath, "--profile", profilePath})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "1 valid, 0 invalid")
}

func TestInitCommand_UnknownBase(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init", filepath.Join(t.TempDir(), "x.yaml"), "--base", "nope"})
	require.Error(t, cmd.Execute())
}
