package testutil

import (
	"testing"

	"github.com/MGTheTrain/rsa-decrypt-timing/internal/pkg/config"
	"github.com/MGTheTrain/rsa-decrypt-timing/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger sets up a logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	err := logger.InitLogger(config.DefaultLoggerSettings())
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}
