package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ralim/nxmissing/dataset"
	"github.com/ralim/nxmissing/query"
	"github.com/ralim/nxmissing/titledb"
	"github.com/rs/zerolog/hlog"
)

type countsResponse struct {
	Counts   dataset.Counts `json:"counts"`
	Total    int            `json:"total"`
	LoadedAt time.Time      `json:"loadedAt"`
}

type rowsResponse struct {
	Kind dataset.Kind `json:"kind"`
	query.Result
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(respWriter http.ResponseWriter, r *http.Request, status int, payload any) {
	respBytes, err := json.Marshal(payload)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("JSON creation failed")
		http.Error(respWriter, "JSON creation failed", http.StatusInternalServerError)
		return
	}
	respWriter.Header().Set("Content-Type", "application/json")
	respWriter.WriteHeader(status)
	_, _ = respWriter.Write(respBytes)
}

func writeJSONError(respWriter http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(respWriter, r, status, errorResponse{Error: err.Error()})
}

func (server *Server) httpHandleAPI(respWriter http.ResponseWriter, r *http.Request) {
	var head string
	head, r.URL.Path = ShiftPath(r.URL.Path)
	switch head {
	case "counts":
		server.httpHandleCounts(respWriter, r)
	case "rows":
		server.httpHandleRows(respWriter, r)
	case "info":
		server.httpHandleInfo(respWriter, r)
	default:
		http.NotFound(respWriter, r)
	}
}

func (server *Server) httpHandleCounts(respWriter http.ResponseWriter, r *http.Request) {
	ds, err := server.store.Snapshot()
	if err != nil {
		writeJSONError(respWriter, r, http.StatusServiceUnavailable, err)
		return
	}
	counts := ds.Counts()
	writeJSON(respWriter, r, http.StatusOK, countsResponse{
		Counts:   counts,
		Total:    counts.Total(),
		LoadedAt: server.store.LoadedAt(),
	})
}

// httpHandleRows answers the same view query the table page renders
func (server *Server) httpHandleRows(respWriter http.ResponseWriter, r *http.Request) {
	state, _ := server.viewFor(r)
	if !state.IsTable() {
		writeJSONError(respWriter, r, http.StatusBadRequest, errors.New("tab must name a dataset kind"))
		return
	}
	ds, err := server.store.Snapshot()
	if err != nil {
		writeJSONError(respWriter, r, http.StatusServiceUnavailable, err)
		return
	}
	_, result := state.Resolve(query.Flatten(ds, state.Kind()))
	writeJSON(respWriter, r, http.StatusOK, rowsResponse{Kind: state.Kind(), Result: result})
}

// httpHandleInfo looks up one title's details. A newer lookup from the same page view cancels this one,
// in which case there is nothing to say and 204 is returned
func (server *Server) httpHandleInfo(respWriter http.ResponseWriter, r *http.Request) {
	titleID := strings.Trim(r.URL.Path, "/")
	if !validTitleID(titleID) {
		writeJSONError(respWriter, r, http.StatusBadRequest, errors.New("missing or invalid title id"))
		return
	}
	// view is picked by each page load, without one the lookup only ends with its own request
	ctx := r.Context()
	if view := r.URL.Query().Get("view"); view != "" {
		var done func()
		ctx, done = server.tracker.Begin(ctx, view)
		defer done()
	}

	entry, err := server.titledb.Lookup(ctx, titleID)
	switch {
	case titledb.IsCancelled(err):
		respWriter.WriteHeader(http.StatusNoContent)
		return
	case err != nil:
		hlog.FromRequest(r).Warn().Err(err).Str("title", titleID).Msg("Info lookup failed")
		writeJSONError(respWriter, r, http.StatusBadGateway, err)
		return
	}
	if len(entry.Raw) > 0 {
		respWriter.Header().Set("Content-Type", "application/json")
		_, _ = respWriter.Write(entry.Raw)
		return
	}
	writeJSON(respWriter, r, http.StatusOK, entry)
}

func validTitleID(titleID string) bool {
	if titleID == "" {
		return false
	}
	for _, c := range titleID {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

func (server *Server) httpHandleTitlesDB(respWriter http.ResponseWriter, r *http.Request) {
	respWriter.Header().Set("Content-Type", "application/json")
	if err := server.titledb.DumpToJSON(respWriter); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Generating titledb dump failed")
		http.Error(respWriter, "Generating titledb dump failed", http.StatusInternalServerError)
	}
}
