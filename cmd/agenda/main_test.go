package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sprintAgenda = `
title: Sprint review
date: 19/10/2026
start: "14:00"
items:
  - topic: Demo
    owner: Ana
    duration_min: 30
  - topic: Retro
    duration_min: 15
`

func TestRenderTableFromStdin(t *testing.T) {
	t.Setenv("AGENDA_CONFIG_PATH", "")

	var out bytes.Buffer
	require.NoError(t, cmdRender([]string{"-"}, strings.NewReader(sprintAgenda), &out))

	require.Contains(t, out.String(), "Demo")
	require.Contains(t, out.String(), "14:30")
	require.Contains(t, out.String(), "Sprint review · Date: 19/10/2026 · Start: 14:00 · Estimated total: 45 min")
	require.NotContains(t, out.String(), "example agenda")
}

func TestRenderCSVFromFile(t *testing.T) {
	t.Setenv("AGENDA_CONFIG_PATH", "")

	path := filepath.Join(t.TempDir(), "agenda.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sprintAgenda), 0o644))

	var out bytes.Buffer
	require.NoError(t, cmdRender([]string{"--format", "csv", path}, nil, &out))
	require.Equal(t,
		"Order,Topic,Owner,Start,End,Duration (min)\n"+
			"1,Demo,Ana,14:00,14:30,30\n"+
			"2,Retro,,14:30,14:45,15\n",
		out.String())
}

func TestRenderReturnsErrors(t *testing.T) {
	t.Setenv("AGENDA_CONFIG_PATH", "")
	var out bytes.Buffer

	err := cmdRender([]string{filepath.Join(t.TempDir(), "missing.yaml")}, nil, &out)
	require.ErrorContains(t, err, "opening agenda file")

	err = cmdRender([]string{"--format", "pdf", "-"}, strings.NewReader(sprintAgenda), &out)
	require.ErrorContains(t, err, "unknown format")

	err = cmdRender([]string{"-"}, strings.NewReader("items:\n  - topic: ''\n    duration_min: 5\n"), &out)
	require.ErrorContains(t, err, "invalid agenda file")

	err = cmdRender(nil, nil, &out)
	require.Error(t, err)
}
