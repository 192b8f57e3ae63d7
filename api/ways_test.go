package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/Domenick1991/airlines/internal/domain"
	"github.com/Domenick1991/airlines/internal/service/ways"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWaysUseCase struct {
	mock.Mock
}

func (m *MockWaysUseCase) FindWays(ctx context.Context, q ways.Query) (*domain.SearchResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchResult), args.Error(1)
}

func TestWaysHandler_find_Direct(t *testing.T) {
	finder := &MockWaysUseCase{}
	handler := NewWaysHandler(finder)
	c, w := newTestContext("GET", "/ways?airport1=1&airport2=2&date=2024-04-11")

	finder.On("FindWays", c.Request.Context(), ways.Query{Source: 1, Destination: 2, Date: "2024-04-11"}).
		Return(&domain.SearchResult{Kind: domain.ResultDirect, Direct: []domain.Flight{testFlight(4)}}, nil)

	handler.find(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Result []map[string]interface{} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Result, 1)
	assert.Equal(t, float64(4), response.Result[0]["id"])
	assert.Equal(t, "2h0m0s", response.Result[0]["time_of_flight"])
	finder.AssertExpectations(t)
}

func TestWaysHandler_find_Transfer(t *testing.T) {
	finder := &MockWaysUseCase{}
	handler := NewWaysHandler(finder)
	c, w := newTestContext("GET", "/ways?airport1=1&airport2=3&date=2024-04-11")

	finder.On("FindWays", c.Request.Context(), ways.Query{Source: 1, Destination: 3, Date: "2024-04-11"}).
		Return(&domain.SearchResult{Kind: domain.ResultTransfer, Transfers: []domain.Connection{
			{First: testFlight(1), Second: testFlight(2)},
		}}, nil)

	handler.find(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Result [][]map[string]interface{} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Result, 1)
	require.Len(t, response.Result[0], 2)
	assert.Equal(t, float64(1), response.Result[0][0]["id"])
	assert.Equal(t, float64(2), response.Result[0][1]["id"])
}

func TestWaysHandler_find_Empty(t *testing.T) {
	finder := &MockWaysUseCase{}
	handler := NewWaysHandler(finder)
	c, w := newTestContext("GET", "/ways?airport1=1&airport2=3&date=2021-01-01")

	finder.On("FindWays", c.Request.Context(), mock.Anything).
		Return(&domain.SearchResult{Kind: domain.ResultEmpty, Message: "There are no flights from Kean to Scarlett on 2021-01-01"}, nil)

	handler.find(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":"There are no flights from Kean to Scarlett on 2021-01-01"}`, w.Body.String())
}

func TestWaysHandler_find_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{name: "missing date", target: "/ways?airport1=1&airport2=2", err: fmt.Errorf("%w: date is required", domain.ErrInvalidRequest), status: http.StatusBadRequest},
		{name: "bad date", target: "/ways?airport1=1&airport2=2&date=2024/04/11", err: fmt.Errorf("%w: 2024/04/11", domain.ErrInvalidDate), status: http.StatusBadRequest},
		{name: "unknown airport", target: "/ways?airport1=1&airport2=99&date=2024-04-11", err: fmt.Errorf("airport 99: %w", domain.ErrNotFound), status: http.StatusNotFound},
		{name: "database down", target: "/ways?airport1=1&airport2=2&date=2024-04-11", err: fmt.Errorf("connection refused"), status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			finder := &MockWaysUseCase{}
			handler := NewWaysHandler(finder)
			c, w := newTestContext("GET", tc.target)
			finder.On("FindWays", c.Request.Context(), mock.Anything).Return(nil, tc.err)

			handler.find(c)

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestWaysHandler_find_NonNumericAirport(t *testing.T) {
	finder := &MockWaysUseCase{}
	handler := NewWaysHandler(finder)
	c, w := newTestContext("GET", "/ways?airport1=abc&airport2=2&date=2024-04-11")

	handler.find(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	finder.AssertNotCalled(t, "FindWays", mock.Anything, mock.Anything)
}
