package tagid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_Formatting(t *testing.T) {
	err := unknownKindError(Kind("mac"))
	require.Equal(t, `tagid.unknown_kind: unknown tag kind "mac"`, err.Error())

	wrapped := sourceError(errors.New("eof"))
	require.Equal(t, "tagid.source_failed: random source failed: eof", wrapped.Error())
}

func TestError_IsMatchesByCode(t *testing.T) {
	require.ErrorIs(t, invalidRangeError(0), ErrInvalidRange)
	require.NotErrorIs(t, invalidRangeError(0), ErrUnknownKind)
	require.NotErrorIs(t, errors.New("plain"), ErrSourceFailed)
}

func TestErrorCode(t *testing.T) {
	require.Equal(t, errorCodeSourceFailed, ErrorCode(sourceError(errors.New("x"))))
	require.Empty(t, ErrorCode(errors.New("plain")))
	require.Empty(t, ErrorCode(nil))
}
