package posts

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/m-drozd/arcadium/internal/domain"
	"github.com/m-drozd/arcadium/internal/dto"
	postservice "github.com/m-drozd/arcadium/internal/service/postservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PostHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetPostHandler(t *testing.T) {
	handler, service := NewMock(t)

	router := chi.NewRouter()
	router.Get("/post/{id}", handler.GetPost)

	tests := []struct {
		name          string
		url           string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.PostResponseDTO
	}{
		{
			name: "Successful retrieval",
			url:  "/post/1",
			prepareMock: func() {
				service.EXPECT().GetPost(gomock.Any(), 1).Return(&domain.Post{
					ID:      1,
					Title:   "Example blog post",
					Content: "Hello! This is a blog post",
					Views:   7,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.PostResponseDTO{
				PostID:  1,
				Title:   "Example blog post",
				Content: "Hello! This is a blog post",
				Views:   7,
			},
		},
		{
			name:          "Invalid post ID",
			url:           "/post/abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid post ID",
		},
		{
			name: "Post not found",
			url:  "/post/99",
			prepareMock: func() {
				service.EXPECT().GetPost(gomock.Any(), 99).Return(nil, postservice.ErrPostNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Post not found",
		},
		{
			name: "Internal server error",
			url:  "/post/1",
			prepareMock: func() {
				service.EXPECT().GetPost(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.PostResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestAddViewHandler(t *testing.T) {
	handler, service := NewMock(t)

	router := chi.NewRouter()
	router.Post("/view/{id}", handler.AddView)

	tests := []struct {
		name          string
		url           string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.ViewResponseDTO
	}{
		{
			name: "Successful view registration",
			url:  "/view/1",
			prepareMock: func() {
				service.EXPECT().RegisterView(gomock.Any(), 1).Return(&domain.Post{
					ID:      1,
					Title:   "Example blog post",
					Content: "Hello! This is a blog post",
					Views:   8,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ViewResponseDTO{
				CurrentViews: 8,
			},
		},
		{
			name:          "Invalid post ID",
			url:           "/view/abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid post ID",
		},
		{
			name: "Post not found",
			url:  "/view/99",
			prepareMock: func() {
				service.EXPECT().RegisterView(gomock.Any(), 99).Return(nil, postservice.ErrPostNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Post not found",
		},
		{
			name: "Internal server error",
			url:  "/view/1",
			prepareMock: func() {
				service.EXPECT().RegisterView(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.ViewResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
