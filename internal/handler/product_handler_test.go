package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"kart-compare/internal/catalog"
	"kart-compare/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func TestProductHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()
	seed := catalog.SeedProducts()

	tests := []struct {
		name           string
		method         string
		query          string
		expectService  bool
		limit          int
		offset         int
		serviceReturn  []model.Product
		serviceError   error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Default pagination",
			method:         http.MethodGet,
			query:          "",
			expectService:  true,
			limit:          10,
			offset:         0,
			serviceReturn:  seed,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Explicit page",
			method:         http.MethodGet,
			query:          "?limit=2&offset=2",
			expectService:  true,
			limit:          2,
			offset:         2,
			serviceReturn:  seed[2:4],
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Negative limit and offset are left to the service",
			method:         http.MethodGet,
			query:          "?limit=-5&offset=-1",
			expectService:  true,
			limit:          -5,
			offset:         -1,
			serviceReturn:  seed,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Non-numeric limit",
			method:         http.MethodGet,
			query:          "?limit=ten",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidParameter,
		},
		{
			name:           "Fractional limit",
			method:         http.MethodGet,
			query:          "?limit=2.5",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidParameter,
		},
		{
			name:           "Non-numeric offset",
			method:         http.MethodGet,
			query:          "?limit=5&offset=next",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidParameter,
		},
		{
			name:           "Service failure",
			method:         http.MethodGet,
			query:          "",
			expectService:  true,
			limit:          10,
			offset:         0,
			serviceError:   errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternalError,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodPost,
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   model.ErrCodeMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetAll", mock.Anything, tt.limit, tt.offset).
					Return(tt.serviceReturn, tt.serviceError)
			}

			req := httptest.NewRequest(tt.method, "/api/products"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.GetAll(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedCode != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedCode, resp.Error)
			} else {
				var products []model.Product
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
				assert.Equal(t, tt.serviceReturn, products)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			} else {
				mockService.AssertNotCalled(t, "GetAll", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	seed := catalog.SeedProducts()

	tests := []struct {
		name           string
		method         string
		path           string
		productID      string
		expectService  bool
		serviceReturn  *model.Product
		serviceError   error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Product on sale",
			method:         http.MethodGet,
			path:           "/api/products/1",
			productID:      "1",
			expectService:  true,
			serviceReturn:  &seed[0],
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Product at full price",
			method:         http.MethodGet,
			path:           "/api/products/2",
			productID:      "2",
			expectService:  true,
			serviceReturn:  &seed[1],
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Out of stock product",
			method:         http.MethodGet,
			path:           "/api/products/6",
			productID:      "6",
			expectService:  true,
			serviceReturn:  &seed[5],
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Service reports not found",
			method:         http.MethodGet,
			path:           "/api/products/999",
			productID:      "999",
			expectService:  true,
			serviceError:   model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeProductNotFound,
		},
		{
			name:           "Service returns no product",
			method:         http.MethodGet,
			path:           "/api/products/999",
			productID:      "999",
			expectService:  true,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeProductNotFound,
		},
		{
			name:           "Service failure",
			method:         http.MethodGet,
			path:           "/api/products/1",
			productID:      "1",
			expectService:  true,
			serviceError:   errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternalError,
		},
		{
			name:           "Missing product ID",
			method:         http.MethodGet,
			path:           "/api/products/",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeMissingField,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodPost,
			path:           "/api/products/1",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   model.ErrCodeMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetByID", mock.Anything, tt.productID).
					Return(tt.serviceReturn, tt.serviceError)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedCode != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedCode, resp.Error)
			} else {
				var product model.Product
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
				assert.Equal(t, *tt.serviceReturn, product)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			} else {
				mockService.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestProductHandler_GetByID_JSONShape(t *testing.T) {
	seed := catalog.SeedProducts()

	fetch := func(t *testing.T, p model.Product) map[string]any {
		t.Helper()

		mockService := new(MockProductService)
		mockService.On("GetByID", mock.Anything, p.ID).Return(&p, nil)
		handler := NewProductHandler(mockService, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/products/"+p.ID, nil)
		w := httptest.NewRecorder()
		handler.GetByID(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return body
	}

	t.Run("Sale price and option lists are present", func(t *testing.T) {
		body := fetch(t, seed[0])

		assert.Equal(t, "經典牛仔外套", body["name"])
		assert.Equal(t, 1280.0, body["price"])
		assert.Equal(t, 1680.0, body["originalPrice"])
		assert.Equal(t, 4.5, body["rating"])
		assert.Equal(t, 128.0, body["reviews"])
		assert.Equal(t, true, body["inStock"])
		assert.Equal(t, []any{"100% 純棉丹寧", "經典水洗工藝", "多口袋設計", "可機洗"}, body["features"])
		assert.Equal(t, []any{"S", "M", "L", "XL"}, body["sizes"])
		assert.Equal(t, []any{"淺藍", "深藍", "黑色"}, body["colors"])
		assert.Len(t, body["images"], 2)
		assert.Contains(t, body, "createdAt")
	})

	t.Run("Missing sale price is omitted", func(t *testing.T) {
		body := fetch(t, seed[1])

		assert.NotContains(t, body, "originalPrice")
		assert.Equal(t, 390.0, body["price"])
	})

	t.Run("Out of stock is reported", func(t *testing.T) {
		body := fetch(t, seed[5])

		assert.Equal(t, false, body["inStock"])
	})
}
