package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/Domenick1991/airlines/internal/domain"
	"github.com/Domenick1991/airlines/internal/service/orders"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderUseCase struct {
	mock.Mock
}

func (m *MockOrderUseCase) CreateOrder(ctx context.Context, input orders.CreateOrderInput) (*domain.Order, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) GetOrder(ctx context.Context, userID, id int64) (*domain.Order, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) CancelOrder(ctx context.Context, userID, id int64) (*domain.Order, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func TestOrderHandler_create(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)
	c, w := newJSONContext("POST", "/orders", map[string]interface{}{
		"tickets": []map[string]interface{}{
			{"flight": 7, "row": 1, "seat": 2, "passenger": map[string]string{"first_name": "Anna", "last_name": "Petrova"}},
		},
	})
	c.Set(userIDKey, int64(3))

	input := orders.CreateOrderInput{
		UserID:  3,
		Tickets: []orders.TicketInput{{FlightID: 7, Row: 1, Seat: 2, FirstName: "Anna", LastName: "Petrova"}},
	}
	created := &domain.Order{ID: 42, UserID: 3, Tickets: []domain.Ticket{
		{ID: 1, FlightID: 7, Row: 1, Seat: 2, Passenger: domain.Passenger{FirstName: "Anna", LastName: "Petrova"}},
	}}
	mockService.On("CreateOrder", c.Request.Context(), input).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response domain.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(42), response.ID)
	mockService.AssertExpectations(t)
}

func TestOrderHandler_create_ValidationDetails(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)
	c, w := newJSONContext("POST", "/orders", map[string]interface{}{
		"tickets": []map[string]interface{}{
			{"flight": 7, "row": 0, "seat": 2, "passenger": map[string]string{"first_name": "Anna"}},
		},
	})
	c.Set(userIDKey, int64(3))

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response BadRequestErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	fields := make([]string, 0, len(response.Details))
	for _, d := range response.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"Row", "LastName"}, fields)
	mockService.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestOrderHandler_create_NoTickets(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)
	c, w := newJSONContext("POST", "/orders", map[string]interface{}{"tickets": []interface{}{}})
	c.Set(userIDKey, int64(3))

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_create_SeatTaken(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)
	c, w := newJSONContext("POST", "/orders", map[string]interface{}{
		"tickets": []map[string]interface{}{
			{"flight": 7, "row": 1, "seat": 2, "passenger": map[string]string{"first_name": "Anna", "last_name": "Petrova"}},
		},
	})
	c.Set(userIDKey, int64(3))

	mockService.On("CreateOrder", c.Request.Context(), mock.Anything).Return(nil, fmt.Errorf("ticket: %w", domain.ErrConflict))

	handler.create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOrderHandler_list(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)
	c, w := newTestContext("GET", "/orders")
	c.Set(userIDKey, int64(3))

	mockService.On("ListOrders", c.Request.Context(), int64(3)).Return([]domain.Order{{ID: 2, UserID: 3}, {ID: 1, UserID: 3}}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []domain.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 2)
}

func TestOrderHandler_get_OtherUser(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)
	c, w := newTestContext("GET", "/orders/42")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	c.Set(userIDKey, int64(4))

	mockService.On("GetOrder", c.Request.Context(), int64(4), int64(42)).Return(nil, fmt.Errorf("order 42: %w", domain.ErrNotFound))

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHandler_cancel(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)
	c, w := newTestContext("POST", "/orders/42/cancel")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	c.Set(userIDKey, int64(3))

	mockService.On("CancelOrder", c.Request.Context(), int64(3), int64(42)).
		Return(&domain.Order{ID: 42, UserID: 3, Cancelled: true, Tickets: []domain.Ticket{}}, nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response domain.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Cancelled)
}
