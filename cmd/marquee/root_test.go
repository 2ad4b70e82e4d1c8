package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/prefs"
)

func TestParseMovieIDs(t *testing.T) {
	ids, err := parseMovieIDs([]string{"550", " 13 "})
	require.NoError(t, err)
	assert.Equal(t, []int64{550, 13}, ids)

	for _, bad := range []string{"abc", "0", "-4", ""} {
		_, err := parseMovieIDs([]string{bad})
		assert.Error(t, err, "parseMovieIDs(%q)", bad)
	}
}

func TestRootCmd_FlagsAndSubcommands(t *testing.T) {
	root := newRootCmd("1.0.0")

	for _, name := range []string{"config", "prefs", "log-level"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing --%s", name)
	}

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "show")
	assert.Contains(t, names, "logs")
	assert.Equal(t, "1.0.0", root.Version)
}

func TestRootCmd_FlagUsageNamesDefaultPaths(t *testing.T) {
	flags := newRootCmd("test").PersistentFlags()
	assert.Contains(t, flags.Lookup("config").Usage, config.DefaultPath())
	assert.Contains(t, flags.Lookup("prefs").Usage, prefs.DefaultPath())
}

func TestShowCmd_RejectsBadIDsBeforeLoadingConfig(t *testing.T) {
	root := newRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"show", "nope"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid movie id "nope"`)
}

func TestShowCmd_RequiresAnID(t *testing.T) {
	root := newRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"show"})

	require.Error(t, root.Execute())
}
