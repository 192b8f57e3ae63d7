// Package apierr maps domain errors onto gRPC codes and HTTP statuses.
package apierr

import (
	"errors"

	"github.com/Domenick1991/airlines/internal/domain"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func Code(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrInvalidDate):
		return codes.InvalidArgument
	case errors.Is(err, domain.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, domain.ErrConflict):
		return codes.AlreadyExists
	case errors.Is(err, domain.ErrSeatLocked):
		return codes.Aborted
	}
	if s, ok := status.FromError(err); ok {
		return s.Code()
	}
	return codes.Internal
}

func HTTPStatus(err error) int {
	return runtime.HTTPStatusFromCode(Code(err))
}

// Status converts err into a gRPC status error. Internal errors hide their message.
func Status(err error) error {
	if err == nil {
		return nil
	}
	code := Code(err)
	if code == codes.Internal {
		return status.Error(code, "internal error")
	}
	return status.Error(code, err.Error())
}

// Message is the text exposed to clients for err.
func Message(err error) string {
	if Code(err) == codes.Internal {
		return "internal error"
	}
	return err.Error()
}
