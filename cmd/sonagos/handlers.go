package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/darkclainer/sonago/pkg/actions"
	"github.com/darkclainer/sonago/pkg/ankiweb"
	"github.com/darkclainer/sonago/pkg/sonapi"
)

type ResponseStatus int

const (
	ResponseOK ResponseStatus = iota
	ResponseBadRequest
	ResponseDataShape
	ResponseTransport
	ResponseError
)

type ResponseWord struct {
	Result *sonapi.Result `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
	Status ResponseStatus `json:"status"`
}

type ResponseAction struct {
	Result interface{}    `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
	Status ResponseStatus `json:"status"`
}

type ResponseActionList struct {
	Actions []string `json:"actions"`
}

// errorStatus maps an error to the response status and HTTP code.
func errorStatus(err error) (ResponseStatus, int) {
	switch {
	case errors.Is(err, sonapi.ErrEmptyWord),
		errors.Is(err, actions.ErrBadArguments),
		errors.Is(err, ankiweb.ErrMissingCredentials):
		return ResponseBadRequest, http.StatusBadRequest
	case errors.Is(err, actions.ErrUnknownAction):
		return ResponseBadRequest, http.StatusNotFound
	case errors.Is(err, sonapi.ErrDataShape):
		return ResponseDataShape, http.StatusBadGateway
	case errors.Is(err, sonapi.ErrTransport):
		return ResponseTransport, http.StatusBadGateway
	default:
		return ResponseError, http.StatusInternalServerError
	}
}

func (s *Server) handleWord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		query := r.URL.Query()
		word := query.Get("q")
		if word == "" {
			s.respondJSON(w, &ResponseWord{
				Error:  sonapi.ErrEmptyWord.Error(),
				Status: ResponseBadRequest,
			}, http.StatusBadRequest)
			return
		}
		isEnglish := false
		if raw := query.Get("english"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				s.respondJSON(w, &ResponseWord{
					Error:  "english must be a boolean",
					Status: ResponseBadRequest,
				}, http.StatusBadRequest)
				return
			}
			isEnglish = parsed
		}
		result, err := s.actions.GetWord(r.Context(), word, isEnglish)
		if err != nil {
			status, code := errorStatus(err)
			s.logger.Error("Lookup returned error",
				zap.Error(err),
				zap.String("word", word),
				zap.Bool("english", isEnglish),
			)
			s.respondJSON(w, &ResponseWord{Error: err.Error(), Status: status}, code)
			return
		}
		s.respondJSON(w, &ResponseWord{Result: result}, http.StatusOK)
	}
}

func (s *Server) handleActionList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		s.respondJSON(w, &ResponseActionList{Actions: actions.Names()}, http.StatusOK)
	}
}

func (s *Server) handleAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		name := strings.TrimPrefix(r.URL.Path, "/actions/")
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxActionBody))
		if err != nil {
			s.respondJSON(w, &ResponseAction{
				Error:  "can not read request body",
				Status: ResponseBadRequest,
			}, http.StatusBadRequest)
			return
		}
		result, err := s.actions.Invoke(r.Context(), name, json.RawMessage(body))
		if err != nil {
			status, code := errorStatus(err)
			if status != ResponseBadRequest {
				s.logger.Error("Action returned error",
					zap.Error(err),
					zap.String("action", name),
				)
			}
			s.respondJSON(w, &ResponseAction{Error: err.Error(), Status: status}, code)
			return
		}
		s.respondJSON(w, &ResponseAction{Result: result}, http.StatusOK)
	}
}
