package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/gamerfleet/merch-backend/internal/api/middleware"
	"github.com/gamerfleet/merch-backend/internal/models"
)

func NewTestIdentity() *models.Identity {
	return &models.Identity{Subject: "auth0|test-subject", Email: "test@example.com"}
}

func CreateTestRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}
