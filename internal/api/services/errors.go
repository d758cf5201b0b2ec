package services

import (
	"context"
	"errors"

	"github.com/rohits-web03/filehub/internal/auth"
	"gorm.io/gorm"
)

// Error kinds. Anything that does not wrap one of these is an internal failure.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("not found")
)

// Error carries a caller-facing message for one of the error kinds.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func badRequest(msg string) error   { return &Error{Kind: ErrBadRequest, Message: msg} }
func notFound(msg string) error     { return &Error{Kind: ErrNotFound, Message: msg} }
func unauthorized(msg string) error { return &Error{Kind: ErrUnauthorized, Message: msg} }

func requireUser(ctx context.Context) (string, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return "", unauthorized("User not authenticated")
	}
	return userID, nil
}

// notFoundOr maps gorm.ErrRecordNotFound to a NotFound error and passes everything else through.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(msg)
	}
	return err
}
