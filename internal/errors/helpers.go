package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is reports whether err matches target. Two *Error values match on code.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// nearest returns the outermost *Error in the chain, or nil
func nearest(err error) *Error {
	var e *Error
	if err != nil && errors.As(err, &e) {
		return e
	}
	return nil
}

// GetCode extracts the error code. Errors from outside this package are Internal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e := nearest(err); e != nil {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of the outermost *Error
func GetMeta(err error) map[string]interface{} {
	if e := nearest(err); e != nil {
		return e.Meta
	}
	return nil
}

// GetMessage returns the message without code or cause, falling back to
// err.Error() for foreign errors
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := nearest(err); e != nil {
		return e.Message
	}
	return err.Error()
}

func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }

func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }

func IsInternal(err error) bool { return GetCode(err) == CodeInternal }

func IsUnavailable(err error) bool { return GetCode(err) == CodeUnavailable }

func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }

func IsDeadlineExceeded(err error) bool { return GetCode(err) == CodeDeadlineExceeded }

func IsCanceled(err error) bool { return GetCode(err) == CodeCanceled }
