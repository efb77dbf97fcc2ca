package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCommand()

	require.NoError(t, cmd.ParseFlags([]string{"--file", "in.tsv", "--log", "--config", "/tmp/c.json"}))

	file, err := cmd.Flags().GetString("file")
	require.NoError(t, err)
	assert.Equal(t, "in.tsv", file)

	logOn, err := cmd.Flags().GetBool("log")
	require.NoError(t, err)
	assert.True(t, logOn)

	cfg, err := cmd.Flags().GetString("config")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/c.json", cfg)
}

func TestNewModelLoggerFlag(t *testing.T) {
	m := newModel(options{configPath: t.TempDir() + "/c.json", logger: true})
	assert.True(t, m.logEnabled)
	assert.NotNil(t, m.form)
	assert.Zero(t, m.form.Len())
}
