package clilog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alpsolve/alp/internal/clilog"
	"github.com/stretchr/testify/require"
)

func TestLogger_InfoLevelSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	lg := clilog.New(&buf, clilog.LevelInfo)
	lg.Debugf("hidden %d", 1)
	lg.Infof("shown %d", 2)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown 2")
}

func TestLogger_DebugLevelShowsEverything(t *testing.T) {
	var buf bytes.Buffer
	lg := clilog.New(&buf, clilog.LevelDebug)
	lg.Debugf("debug line")
	lg.Infof("info line")
	lg.Errorf("error line")
	out := buf.String()
	require.True(t, strings.Contains(out, "debug line"))
	require.True(t, strings.Contains(out, "info line"))
	require.True(t, strings.Contains(out, "error line"))
}

func TestLogger_ErrorAlwaysEmitted(t *testing.T) {
	var buf bytes.Buffer
	lg := clilog.New(&buf, clilog.LevelError)
	lg.Errorf("boom")
	lg.Infof("suppressed")
	require.Contains(t, buf.String(), "boom")
	require.NotContains(t, buf.String(), "suppressed")
}
