package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))

	wrapped := WrapError(ErrDatabase, "record job")
	require.Error(t, wrapped)
	assert.ErrorIs(t, wrapped, ErrDatabase)
	assert.Equal(t, "record job: database error", wrapped.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("dial refused")
	err := NewAppError("CONFIG_ERROR", "DB_URL is required", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "CONFIG_ERROR")
	assert.Contains(t, err.Error(), "dial refused")

	bare := NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", nil)
	assert.Equal(t, "CONFIG_ERROR: GRPC_ADDR is required", bare.Error())
}

func TestGRPCStatusHelpers(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{InvalidArgumentError("bad input"), codes.InvalidArgument},
		{NotFoundError("no such workbook"), codes.NotFound},
		{InternalError("boom"), codes.Internal},
		{UnavailableError("backend down"), codes.Unavailable},
		{InvalidArgumentErrorf("field %s", "start_date"), codes.InvalidArgument},
		{InternalErrorf("analysis: %v", errors.New("boom")), codes.Internal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, status.Code(tt.err))
	}

	st, ok := status.FromError(InvalidArgumentErrorf("field %s", "start_date"))
	require.True(t, ok)
	assert.Equal(t, "field start_date", st.Message())
}
