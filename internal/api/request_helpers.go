package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nvoronina/adboard-api/internal/store"
)

// getPathID extracts a numeric ID from the URL path parameters.
//
// A missing or non-numeric value maps to store.ErrNotFound: the route only
// exists for integer IDs, so anything else is a 404 rather than a 400.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, store.ErrNotFound
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id < 0 {
		return 0, store.ErrNotFound
	}

	return id, nil
}
