package v1

import "net/http"

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

// readyz mirrors healthz: the in-memory store has no external dependency to
// probe.
func (s *Server) readyz(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }
