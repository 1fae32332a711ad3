package eventlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tourmovns/internal/ports"
)

func TestSubjectTokenReplacesNatsSpecialCharacters(t *testing.T) {
	require.Equal(t, "run-1-2", subjectToken("run.1 2"))
	require.Equal(t, "a-b-c", subjectToken("a*b>c"))
}

func TestSubjectTokenDefaultsToRunWhenEmpty(t *testing.T) {
	require.Equal(t, "run", subjectToken(""))
}

func TestSubjectTokenLeavesSafeCharactersUnchanged(t *testing.T) {
	require.Equal(t, "abc123", subjectToken("abc123"))
}

func TestPublishReturnsContextErrorWithoutTouchingTheConnection(t *testing.T) {
	p := &Publisher{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Publish(ctx, ports.LogRow{Iteration: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestNullSinkPublishIsAlwaysANoOp(t *testing.T) {
	var sink NullSink
	require.NoError(t, sink.Publish(context.Background(), ports.LogRow{}))
}
