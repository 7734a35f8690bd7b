package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"taskdesk.org/internal/tasks"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

type createTaskRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      *tasks.Status `json:"status"`
}

func (a *API) handleTasks(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/tasks/")
	if rest == "" {
		switch r.Method {
		case http.MethodPost:
			a.createTask(w, r)
		case http.MethodGet:
			a.listTasks(w, r)
		default:
			methodNotAllowed(w, r, http.MethodPost, http.MethodGet)
		}
		return
	}
	if strings.Contains(rest, "/") {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		a.getTask(w, r, rest)
	case http.MethodPut:
		a.updateTask(w, r, rest)
	case http.MethodDelete:
		a.deleteTask(w, r, rest)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

func (a *API) createTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	draft := tasks.NewTask{
		Title:       req.Title,
		Description: req.Description,
	}
	// A status key that is present must carry a valid value; an empty
	// string is not the same as omitting the field.
	if req.Status != nil {
		if !req.Status.Valid() {
			handleTaskError(w, r, fmt.Errorf("%w: status must be one of pending, in_progress, done", tasks.ErrInvalidInput))
			return
		}
		draft.Status = *req.Status
	}

	created, err := a.tasks.Create(r.Context(), draft)
	if err != nil {
		handleTaskError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) listTasks(w http.ResponseWriter, r *http.Request) {
	page, err := parseQueryInt(r.URL.Query().Get("page"), "page", defaultPage, 1, 0)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	pageSize, err := parseQueryInt(r.URL.Query().Get("page_size"), "page_size", defaultPageSize, 1, maxPageSize)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.tasks.List(r.Context(), page, pageSize)
	if err != nil {
		handleTaskError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) getTask(w http.ResponseWriter, r *http.Request, id string) {
	task, err := a.tasks.Get(r.Context(), id)
	if err != nil {
		handleTaskError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (a *API) updateTask(w http.ResponseWriter, r *http.Request, id string) {
	var patch tasks.Patch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := a.tasks.Update(r.Context(), id, patch)
	if err != nil {
		handleTaskError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (a *API) deleteTask(w http.ResponseWriter, r *http.Request, id string) {
	if err := a.tasks.Delete(r.Context(), id); err != nil {
		handleTaskError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func handleTaskError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, tasks.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, tasks.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "task not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// parseQueryInt parses an optional integer query parameter. max <= 0
// means unbounded above.
func parseQueryInt(raw, name string, def, min, max int) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return def, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	if val < min {
		return 0, fmt.Errorf("%s must be >= %d", name, min)
	}
	if max > 0 && val > max {
		return 0, fmt.Errorf("%s must be between %d and %d", name, min, max)
	}
	return val, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	reader := http.MaxBytesReader(w, r.Body, 1<<20)
	defer reader.Close()
	dec := json.NewDecoder(reader)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return errors.New("unexpected data after JSON body")
		}
		return err
	}
	return nil
}

func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	payload := map[string]any{
		"error": msg,
	}
	if rid := RequestIDFromContext(r.Context()); rid != "" {
		payload["request_id"] = rid
	}
	writeJSON(w, code, payload)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}
