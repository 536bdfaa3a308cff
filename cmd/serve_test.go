package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loganko83/realcare/internal/config"
)

func TestServeCmd_Metadata(t *testing.T) {
	assert.Equal(t, "serve", serveCmd.Use)
	assert.NotEmpty(t, serveCmd.Short)
}

func TestServeCmd_DefaultPortFromConfig(t *testing.T) {
	// Verify that servePort flag default is 0 (meaning use config).
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "0", flag.DefValue)
}

func TestServeCmd_RunE_FailsOnValidation(t *testing.T) {
	// Config validation should fail fast before any listener is opened.
	oldCfg := cfg
	cfg = &config.Config{}
	defer func() { cfg = oldCfg }()

	serveCmd.SetContext(context.Background())
	defer serveCmd.SetContext(nil)

	err := serveCmd.RunE(serveCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: validation failed")
	assert.Contains(t, err.Error(), "server.port must be between 1 and 65535")
}
