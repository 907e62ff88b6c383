package breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campuslib/circulation/pkg/breaker"
)

func Test_circuitBreaker_Call(t *testing.T) {
	okService := func() error { return nil }
	failingService := func() error { return errors.New("service error") }

	cb := breaker.New(10, 50*time.Millisecond, 0.30, 3)

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(okService))
	}

	// enough failures in the tail to trip the breaker
	for i := 0; i < 4; i++ {
		_ = cb.Call(failingService)
	}
	require.ErrorIs(t, cb.Call(okService), breaker.ErrOpen)

	// after the timeout the breaker probes again and recovers
	time.Sleep(60 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, cb.Call(okService))
	}

	// a failure during recovery reopens it
	for i := 0; i < 4; i++ {
		_ = cb.Call(failingService)
	}
	require.ErrorIs(t, cb.Call(okService), breaker.ErrOpen)
}
