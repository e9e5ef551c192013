package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftmarket/base/ctx"
)

type middlewareSuite struct {
	suite.Suite
	e *echo.Echo
}

func TestMiddleware(t *testing.T) {
	suite.Run(t, new(middlewareSuite))
}

func (s *middlewareSuite) SetupTest() {
	m := InitMiddleware()
	s.e = echo.New()
	s.e.Use(m.CORS, m.AddContext(), m.ResponseLogger())
	s.e.GET("/nfts/:tokenId", func(c echo.Context) error {
		cont, ok := c.Get("ctx").(ctx.Ctx)
		s.True(ok)
		s.NoError(cont.Err())
		return c.String(http.StatusOK, c.Param("tokenId"))
	}, IsValidTokenId("tokenId"))
}

func (s *middlewareSuite) do(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (s *middlewareSuite) TestValidTokenId() {
	rec := s.do("/nfts/42")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("42", rec.Body.String())
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *middlewareSuite) TestInvalidTokenId() {
	for _, id := range []string{"abc", "0", "-3", "1.5"} {
		rec := s.do("/nfts/" + id)
		s.Equal(http.StatusBadRequest, rec.Code, id)
	}
}

func (s *middlewareSuite) TestNotFoundStillLogged() {
	rec := s.do("/nope")
	s.Equal(http.StatusNotFound, rec.Code)
}
