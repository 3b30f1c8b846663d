package agenda

import (
	"strings"
	"testing"
	"time"

	"github.com/Mr-Dark-debug/agenda/pkg/timeutil"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	doc := `
title: Sprint review
date: 19/10/2026
start: "14:00"
items:
  - topic: "  Demo  "
    owner: Ana
    duration_min: 30
  - topic: Retro
    duration_min: 15
`
	m, items, err := ReadFile(strings.NewReader(doc), Meeting{Title: "default"}, time.UTC)
	require.NoError(t, err)
	require.Equal(t, "Sprint review", m.Title)
	require.Equal(t, time.Date(2026, time.October, 19, 14, 0, 0, 0, time.UTC), m.Start())
	require.Equal(t, []Item{
		{Topic: "Demo", Owner: "Ana", DurationMin: 30},
		{Topic: "Retro", DurationMin: 15},
	}, items)
}

func TestReadFileDefaults(t *testing.T) {
	defaults := Meeting{
		Title:     "Coordination meeting",
		Date:      time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		StartTime: timeutil.Clock{Hour: 9},
	}
	m, items, err := ReadFile(strings.NewReader(""), defaults, time.UTC)
	require.NoError(t, err)
	require.Equal(t, defaults, m)
	require.Empty(t, items)
}

func TestReadFileRejectsInvalidItems(t *testing.T) {
	_, _, err := ReadFile(strings.NewReader("items:\n  - topic: ''\n    duration_min: 5\n"), Meeting{}, time.UTC)
	require.ErrorIs(t, err, ErrEmptyTopic)

	_, _, err = ReadFile(strings.NewReader("items:\n  - topic: x\n    duration_min: 0\n"), Meeting{}, time.UTC)
	require.ErrorIs(t, err, ErrInvalidDuration)

	_, _, err = ReadFile(strings.NewReader("start: noon\n"), Meeting{}, time.UTC)
	require.ErrorIs(t, err, timeutil.ErrInvalidTime)
}
