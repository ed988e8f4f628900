package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hospital-management-api/internal/converter"

	"github.com/gorilla/mux"
)

var errInvalidID = errors.New("invalid id")

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// queryID reads an optional positive integer query parameter.
func queryID(r *http.Request, key string) (*int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, errInvalidID
	}
	return &id, nil
}

func queryTime(r *http.Request, key string) (*time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	t, err := converter.ParseDateTime(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
