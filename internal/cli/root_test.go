package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandMetadata(t *testing.T) {
	assert.Equal(t, "crossdeploy", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestRootCommandFlags(t *testing.T) {
	debug := rootCmd.Flags().Lookup("debug")
	require.NotNil(t, debug)
	assert.Equal(t, "false", debug.DefValue)

	verbose := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "false", verbose.DefValue)
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dev", "dev"},
		{"", ""},
		{"1.2.3", "v1.2.3"},
		{"v2.0.0", "v2.0.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatVersion(tt.in))
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.4.0", "abc1234", "2026-08-21")

	assert.Equal(t, "1.4.0", Version())
	assert.Contains(t, rootCmd.Version, "v1.4.0")
	assert.Contains(t, rootCmd.Version, "abc1234")
	assert.Contains(t, rootCmd.Version, "2026-08-21")
}
