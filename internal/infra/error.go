package infra

import (
	"errors"
	"log/slog"

	"hotel-front-desk/internal/pkg/errs"
)

type RemoteErrorKind string

// RemoteError is a categorized failure from the upstream hotel API. Message
// carries the server's own wording when the response body supplied one, so
// handlers can surface it verbatim.
type RemoteError struct {
	Kind       RemoteErrorKind
	StatusCode int
	Message    string
	err        error
}

func (e RemoteError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e RemoteError) Unwrap() error {
	return e.err
}

func WrapRemoteErr(slogger *slog.Logger, kind RemoteErrorKind, statusCode int, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.Int("status", statusCode),
	}

	slogger.Error("Hotel API error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RemoteError{Kind: kind, StatusCode: statusCode, Message: msg, err: err}
}

func IsKind(err error, kind RemoteErrorKind) bool {
	var e RemoteError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// RemoteMessage extracts the verbatim upstream message, empty if err is not a
// RemoteError.
func RemoteMessage(err error) string {
	var e RemoteError
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

// Upstream error kinds
const (
	KindNotFound    RemoteErrorKind = "NOT_FOUND"    // 404 on an entity expected to exist
	KindUnavailable RemoteErrorKind = "UNAVAILABLE"  // transport failure, never reached the server
	KindRemote      RemoteErrorKind = "REMOTE"       // non-2xx business failure
	KindDecode      RemoteErrorKind = "BAD_RESPONSE" // 2xx with an undecodable body
)
