package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/darkclainer/sonago/pkg/actions"
	"github.com/darkclainer/sonago/pkg/app"
	"github.com/darkclainer/sonago/pkg/sonapi"
)

// maxActionBody bounds the JSON arguments of a single action call.
const maxActionBody = 1 << 16

type Server struct {
	http.Server
	mux      http.ServeMux
	logger   *zap.Logger
	lookuper sonapi.Lookuper
	actions  *actions.Actions
}

func New(logger *zap.Logger, conf *Config) (*Server, error) {
	a, err := app.New(&conf.Config, logger)
	if err != nil {
		return nil, err
	}
	return newServer(logger, conf.Host, a.Lookuper, a.Actions), nil
}

func newServer(logger *zap.Logger, host string, lookuper sonapi.Lookuper, a *actions.Actions) *Server {
	s := Server{
		logger:   logger,
		lookuper: lookuper,
		actions:  a,
	}
	s.mux.HandleFunc("/word", s.middleLogging(s.handleWord()))
	s.mux.HandleFunc("/actions", s.middleLogging(s.handleActionList()))
	s.mux.HandleFunc("/actions/", s.middleLogging(s.handleAction()))
	s.Addr = host
	s.Server.Handler = &s.mux
	return &s
}

func (s *Server) Close(ctx context.Context) error {
	var reasons []string
	if serverErr := s.Server.Shutdown(ctx); serverErr != nil {
		reasons = append(reasons, "server shutdown failed: "+serverErr.Error())
	}
	if lookuperErr := s.lookuper.Close(ctx); lookuperErr != nil {
		reasons = append(reasons, "lookuper close failed: "+lookuperErr.Error())
	}
	if len(reasons) > 0 {
		return fmt.Errorf("close failed because: %s", strings.Join(reasons, " AND "))
	}
	return nil
}

func (s *Server) respondJSON(w http.ResponseWriter, vPtr interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	buffer := new(bytes.Buffer)
	if err := json.NewEncoder(buffer).Encode(vPtr); err != nil {
		s.logger.Error("encoding failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"encoding error"}`))
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write(buffer.Bytes())
}

// middleLogging logs request metadata. Bodies carry credentials and are never logged.
func (s *Server) middleLogging(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Info("request",
			zap.String("path", r.URL.Path),
			zap.String("query", r.URL.RawQuery),
			zap.String("client", r.RemoteAddr),
			zap.String("method", r.Method),
		)
		handler(w, r)
	}
}
