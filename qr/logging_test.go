// SPDX-License-Identifier: MIT

package qr_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/myousefi2016/libgeometry/qr"
)

// TestLogging_DebugEvents checks the events emitted through WithLogger.
func TestLogging_DebugEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	dec := mustNew(t, mustDense(t, 3, 3,
		1, 0, 0,
		0, 2, 0,
		0, 0, 0,
	), qr.WithLogger(zap.New(core)))

	deficient := logs.FilterMessage("qr: rank deficiency detected")
	require.Equal(t, 1, deficient.Len())
	require.Equal(t, int64(2), deficient.All()[0].ContextMap()["step"])
	require.Equal(t, 2.0, deficient.All()[0].ContextMap()["reference_max"])

	done := logs.FilterMessage("qr: decomposition complete")
	require.Equal(t, 1, done.Len())
	require.Equal(t, int64(2), done.All()[0].ContextMap()["rank"])

	_, err := dec.SolveVec([]float64{1, 4, 1})
	require.ErrorIs(t, err, qr.ErrInconsistent)
	inconsistent := logs.FilterMessage("qr: inconsistent system")
	require.Equal(t, 1, inconsistent.Len())
	require.Equal(t, 1.0, inconsistent.All()[0].ContextMap()["residual_max"])
}

// TestLogging_QuietAboveDebug emits nothing when the core filters Debug.
func TestLogging_QuietAboveDebug(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	mustNew(t, mustDense(t, 2, 2, 0, 0, 0, 0), qr.WithLogger(zap.New(core)))
	require.Equal(t, 0, logs.Len())
}

// TestLogging_DefaultIsNop keeps working without a configured logger.
func TestLogging_DefaultIsNop(t *testing.T) {
	dec := mustNew(t, mustDense(t, 1, 1, 0))
	rank, err := dec.Rank()
	require.NoError(t, err)
	require.Equal(t, 0, rank)
}
