package domainerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite tests the domain error primitives.
//
// These are core error primitives used at every trust boundary. Unit tests
// ensure invariants like "wrapped domain errors preserve original code" and
// "errors.Is matches by code" are maintained.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeNotFound, Message: "vehicle not found"}
		s.Equal("vehicle not found", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeNotFound}
		s.Equal("not_found", err.Error())
	})
}

func (s *DomainErrorsSuite) TestUnwrap() {
	s.Run("returns wrapped error", func() {
		inner := errors.New("database connection failed")
		err := &Error{Code: CodeInternal, Message: "service error", Err: inner}
		s.Equal(inner, err.Unwrap())
	})

	s.Run("works with errors.Unwrap", func() {
		inner := errors.New("root cause")
		err := &Error{Code: CodeInternal, Err: inner}
		s.Equal(inner, errors.Unwrap(err))
	})
}

func (s *DomainErrorsSuite) TestIsMatching() {
	s.Run("matches by code only", func() {
		err1 := &Error{Code: CodeNotFound, Message: "vehicle not found"}
		err2 := &Error{Code: CodeNotFound, Message: "profile not found"}
		s.True(err1.Is(err2))
	})

	s.Run("does not match different codes", func() {
		err1 := &Error{Code: CodeNotFound}
		err2 := &Error{Code: CodeConflict}
		s.False(err1.Is(err2))
	})

	s.Run("works through errors.Is", func() {
		wrapped := Wrap(New(CodeConflict, "plate already registered"), CodeInternal, "register failed")
		s.True(errors.Is(wrapped, &Error{Code: CodeConflict}))
	})
}

func (s *DomainErrorsSuite) TestWrapPreservesCode() {
	s.Run("keeps the inner domain code", func() {
		inner := New(CodeNotFound, "no registry record")
		wrapped := Wrap(inner, CodeInternal, "lookup failed")

		var e *Error
		s.Require().True(errors.As(wrapped, &e))
		s.Equal(CodeNotFound, e.Code)
		s.Equal("lookup failed", e.Message)
	})

	s.Run("applies new code for plain errors", func() {
		wrapped := Wrap(errors.New("boom"), CodeTimeout, "registry timed out")
		s.True(HasCode(wrapped, CodeTimeout))
	})
}

func (s *DomainErrorsSuite) TestHasCode() {
	s.True(HasCode(New(CodeUnauthorized, ""), CodeUnauthorized))
	s.False(HasCode(errors.New("plain"), CodeUnauthorized))
	s.False(HasCode(nil, CodeUnauthorized))
}
