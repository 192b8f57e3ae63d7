package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLimiter struct {
	mock.Mock
}

func (m *MockLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	args := m.Called(ctx, key, limit, window)
	return args.Bool(0), args.Error(1)
}

func newEngine(middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", append(middleware, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": userID(c)})
	})...)
	return r
}

func TestRequireUser(t *testing.T) {
	r := newEngine(RequireUser())

	testCases := []struct {
		name   string
		header string
		status int
	}{
		{name: "valid", header: "3", status: http.StatusOK},
		{name: "missing", header: "", status: http.StatusUnauthorized},
		{name: "not a number", header: "abc", status: http.StatusUnauthorized},
		{name: "negative", header: "-1", status: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/probe", nil)
			if tc.header != "" {
				req.Header.Set(userIDHeader, tc.header)
			}

			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRequireUser_SetsUserID(t *testing.T) {
	r := newEngine(RequireUser())
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set(userIDHeader, "3")

	r.ServeHTTP(w, req)

	assert.JSONEq(t, `{"user":3}`, w.Body.String())
}

func TestRateLimit(t *testing.T) {
	limiter := &MockLimiter{}
	r := newEngine(RateLimit(limiter, "ways", 2, time.Minute))

	limiter.On("Allow", mock.Anything, "ways:7", 2, time.Minute).Return(true, nil).Once()
	limiter.On("Allow", mock.Anything, "ways:7", 2, time.Minute).Return(false, nil).Once()

	for _, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/probe", nil)
		req.Header.Set(userIDHeader, "7")
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code)
	}
	limiter.AssertExpectations(t)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	limiter := &MockLimiter{}
	r := newEngine(RateLimit(limiter, "ways", 2, time.Minute))

	limiter.On("Allow", mock.Anything, mock.Anything, 2, time.Minute).Return(false, errors.New("redis down"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/probe", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine(RateLimit(nil, "ways", 10, time.Minute)).ServeHTTP(w, httptest.NewRequest("GET", "/probe", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetPagination(t *testing.T) {
	testCases := []struct {
		query string
		want  Pagination
	}{
		{query: "", want: Pagination{Page: 1, Limit: 10, Skip: 0}},
		{query: "?page=3&limit=20", want: Pagination{Page: 3, Limit: 20, Skip: 40}},
		{query: "?page=-1&limit=abc", want: Pagination{Page: 1, Limit: 10, Skip: 0}},
		{query: "?limit=1000", want: Pagination{Page: 1, Limit: 100, Skip: 0}},
	}

	for _, tc := range testCases {
		c, _ := newTestContext("GET", "/flights"+tc.query)
		assert.Equal(t, tc.want, getPagination(c), tc.query)
	}
}
