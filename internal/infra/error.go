package infra

import (
	"errors"
	"log/slog"

	"transferpoints/internal/pkg/errs"
)

type FixtureErrorKind string

type FixtureError struct {
	Kind FixtureErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e FixtureError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e FixtureError) Unwrap() error {
	return e.err
}

func WrapFixtureErr(slogger *slog.Logger, kind FixtureErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	if slogger != nil {
		slogger.Error("Fixture error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return FixtureError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind FixtureErrorKind) bool {
	var e FixtureError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound      FixtureErrorKind = "NOT_FOUND"
	KindReadFailure   FixtureErrorKind = "READ_FAILURE"
	KindDecodeFailure FixtureErrorKind = "DECODE_FAILURE"
	KindInvalidRecord FixtureErrorKind = "INVALID_RECORD"
)
