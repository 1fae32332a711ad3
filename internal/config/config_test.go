package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tourmovns/internal/errs"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateRejectsNonPositiveArchiveMax(t *testing.T) {
	cfg := Default()
	cfg.ArchiveMax = 0
	err := cfg.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.IsConfigurationError))
}

func TestValidateRejectsInitialArchiveSizeAboveArchiveMax(t *testing.T) {
	cfg := Default()
	cfg.InitialArchiveSize = cfg.ArchiveMax + 1
	require.Error(t, cfg.Validate())
}

func TestValidateRequiresATerminationBudget(t *testing.T) {
	cfg := Default()
	cfg.MaxTimeSeconds = 0
	cfg.MaxIterations = 0
	require.Error(t, cfg.Validate())
}

func TestValidateAllowsIterationCapWithNoTimeBudget(t *testing.T) {
	cfg := Default()
	cfg.MaxTimeSeconds = 0
	cfg.MaxIterations = 1000
	require.NoError(t, cfg.Validate())
}

func TestMaxTimeConvertsSecondsToDuration(t *testing.T) {
	cfg := Default()
	cfg.MaxTimeSeconds = 90
	require.Equal(t, 90*time.Second, cfg.MaxTime())
}

func TestMaxTimeZeroWhenNonPositive(t *testing.T) {
	cfg := Default()
	cfg.MaxTimeSeconds = 0
	require.Zero(t, cfg.MaxTime())
}

func TestExitCodeMapsConfigurationError(t *testing.T) {
	err := errs.New(errs.ConfigurationError, "bad config")
	require.NotZero(t, ExitCode(err))
}

func TestExitCodeZeroOnSuccess(t *testing.T) {
	require.Zero(t, ExitCode(nil))
}
