package main

import (
	"bytes"
	"testing"

	"github.com/banglastudy/dataqc/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestProfilesList(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"profiles", "list"})
	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "* production")
	assert.Contains(t, output, "strict")
	assert.Contains(t, output, "relaxed")
}

func TestProfilesShow_OutputIsLoadableProfile(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"profiles", "show", "strict"})
	require.NoError(t, cmd.Execute())

	var p profile.Profile
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &p))
	require.NoError(t, p.Validate())
	assert.Equal(t, "strict", p.Name)
	assert.Equal(t, 0.75, p.MinOverall)
}

func TestProfilesShow_UnknownName(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"profiles", "show", "nope"})
	require.Error(t, cmd.Execute())
}
