package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/interfacing/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "Suggestion not found",
			expected: "NOT_FOUND: Suggestion not found",
		},
		{
			name:     "unavailable error",
			code:     errors.CodeUnavailable,
			message:  "skill engine not connected",
			expected: "UNAVAILABLE: skill engine not connected",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("Suggestion not found").
		WithMeta("suggestion_id", "sug_1_0").
		WithMeta("session_id", "abc")

	s.Assert().Equal("sug_1_0", err.Meta["suggestion_id"])
	s.Assert().Equal("abc", errors.GetMeta(err)["session_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to save session")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to save session", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.Unavailable("Roll failed").WithMeta("skill", "logic")
	wrapped := errors.Wrap(base, "failed to execute suggestion")

	s.Assert().True(errors.IsUnavailable(wrapped))
	s.Assert().Equal("logic", wrapped.Meta["skill"])
	s.Assert().Equal("failed to execute suggestion", errors.GetMessage(wrapped))
}

func (s *ErrorsTestSuite) TestWrapMetaIsCopied() {
	base := errors.NotFound("no session").WithMeta("session_id", "chat-1")
	wrapped := errors.Wrap(base, "load failed").WithMeta("attempt", 2)

	s.Assert().Equal("chat-1", wrapped.Meta["session_id"])
	s.Assert().NotContains(base.Meta, "attempt")
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "nothing"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
	s.Assert().Nil(errors.FromContext(nil, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := errors.NotFound("missing").WithMeta("key", "v")
	wrapped := errors.WrapWithCode(base, errors.CodeFailedPrecondition, "changed")

	s.Assert().True(errors.IsFailedPrecondition(wrapped))
	s.Assert().Equal("v", wrapped.Meta["key"])
	s.Assert().True(errors.Is(wrapped, errors.FailedPrecondition("")))
}

func (s *ErrorsTestSuite) TestFromContext() {
	s.Assert().True(errors.IsDeadlineExceeded(errors.FromContext(context.DeadlineExceeded, "generate")))
	s.Assert().True(errors.IsCanceled(errors.FromContext(context.Canceled, "generate")))
	s.Assert().True(errors.IsUnavailable(errors.FromContext(fmt.Errorf("boom"), "generate")))
}

func (s *ErrorsTestSuite) TestGetCodeForPlainError() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestExitCode() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 0},
		{errors.CodeInvalidArgument, 2},
		{errors.CodeNotFound, 3},
		{errors.CodeUnavailable, 4},
		{errors.CodeDeadlineExceeded, 4},
		{errors.CodeFailedPrecondition, 5},
		{errors.CodeInternal, 1},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Assert().Equal(tc.expected, tc.code.ExitCode())
		})
	}
}
