package errors

import (
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	cause := stdErrors.New("connection refused")

	err := WrapIntoDomainError(cause, ErrUnavailable, "get product")
	require.Equal(t, ErrUnavailable, Code(err))
	require.True(t, Is(err, ErrUnavailable))
	require.ErrorIs(t, err, cause)
	require.Equal(t, cause, Unwrap(err))

	require.Equal(t, ErrorCode(""), Code(nil))
	require.Equal(t, ErrorCode(""), Code(cause))
	require.Equal(t, "product 7: no data found", NewDomainError(ErrNoDataFound, "product %d", 7).Error())
}
