package errors_test

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/waaagh-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNew() {
	err := errors.New(errors.CodeNotFound, "army not found")

	s.Equal(errors.CodeNotFound, err.Code)
	s.Equal("army not found", err.Message)
	s.Nil(err.Cause)
	s.Equal("NOT_FOUND: army not found", err.Error())
}

func (s *ErrorsTestSuite) TestNewf() {
	err := errors.NotFoundf("army %s not found", "army_1")

	s.Equal(errors.CodeNotFound, err.Code)
	s.Equal("army army_1 not found", err.Message)
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.NotFound("unit not found").
		WithMeta("army_id", "army_1").
		WithMeta("instance_id", "u_1")

	s.Equal("army_1", err.Meta["army_id"])
	s.Equal("u_1", err.Meta["instance_id"])
	s.Equal("army_1", errors.GetMeta(err)["army_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	s.Run("keeps code of wrapped error", func() {
		base := errors.NotFound("army not found").WithMeta("army_id", "a")
		wrapped := errors.Wrap(base, "failed to load army")

		s.Equal(errors.CodeNotFound, wrapped.Code)
		s.Equal("failed to load army", wrapped.Message)
		s.Equal("a", wrapped.Meta["army_id"])
		s.True(stderrors.Is(wrapped, base))
		s.Contains(wrapped.Error(), "army not found")
	})

	s.Run("plain errors become internal", func() {
		wrapped := errors.Wrapf(stderrors.New("disk full"), "saving %s", "army_1")

		s.Equal(errors.CodeInternal, wrapped.Code)
		s.Equal("saving army_1", wrapped.Message)
		s.Equal("disk full", stderrors.Unwrap(wrapped).Error())
	})

	s.Run("nil stays nil", func() {
		s.Nil(errors.Wrap(nil, "nothing"))
		s.Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
	})
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := errors.InvalidArgument("bad json").WithMeta("line", 3)
	wrapped := errors.WrapWithCode(base, errors.CodeInternal, "catalogue corrupt")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal(3, wrapped.Meta["line"])
}

func (s *ErrorsTestSuite) TestIsMatchesCode() {
	err := errors.Wrap(errors.NotFound("army not found"), "get")

	s.True(errors.Is(err, errors.NotFound("anything")))
	s.False(errors.Is(err, errors.Internal("anything")))
}

func (s *ErrorsTestSuite) TestHelpers() {
	testCases := []struct {
		name  string
		err   error
		code  errors.Code
		check func(error) bool
	}{
		{"not found", errors.NotFound("x"), errors.CodeNotFound, errors.IsNotFound},
		{"invalid argument", errors.InvalidArgumentf("bad %d", 1), errors.CodeInvalidArgument, errors.IsInvalidArgument},
		{"already exists", errors.AlreadyExistsf("army %s", "a"), errors.CodeAlreadyExists, errors.IsAlreadyExists},
		{"internal", errors.Internalf("boom %s", "x"), errors.CodeInternal, errors.IsInternal},
		{"plain error", stderrors.New("boom"), errors.CodeInternal, errors.IsInternal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.code, errors.GetCode(tc.err))
			s.True(tc.check(tc.err))
		})
	}

	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal("", errors.GetMessage(nil))
	s.Equal("boom", errors.GetMessage(stderrors.New("boom")))
	s.Equal("x", errors.GetMessage(errors.NotFound("x")))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	s.Equal(http.StatusOK, errors.CodeOK.HTTPStatus())
	s.Equal(http.StatusBadRequest, errors.CodeInvalidArgument.HTTPStatus())
	s.Equal(http.StatusNotFound, errors.CodeNotFound.HTTPStatus())
	s.Equal(http.StatusConflict, errors.CodeAlreadyExists.HTTPStatus())
	s.Equal(http.StatusPreconditionFailed, errors.CodeFailedPrecondition.HTTPStatus())
	s.Equal(http.StatusServiceUnavailable, errors.CodeUnavailable.HTTPStatus())
	s.Equal(http.StatusInternalServerError, errors.CodeInternal.HTTPStatus())
}
