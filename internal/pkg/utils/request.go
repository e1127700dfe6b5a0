package utils

import (
	"context"
	"net/http"
	"strconv"

	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
)

// GetRequestIDFromContext returns the request ID injected by the request-id
// middleware, or an empty string outside an HTTP request.
func GetRequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// GetUserIDFromContext returns the authenticated user ID injected by the auth
// middleware.
func GetUserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(constvars.CONTEXT_USER_ID_KEY).(string)
	return userID
}

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("page_size")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}
