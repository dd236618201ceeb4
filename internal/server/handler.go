package server

import (
	"net/http"
	"sync/atomic"
)

type handler struct {
	report atomic.Pointer[[]byte]
}

func (h *handler) Replace(report []byte) {
	h.report.Store(&report)
}

func (h *handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
	case http.MethodHead:
	default:
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	if req.URL.Path != "/" {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusNotFound)
		if req.Method == http.MethodGet {
			w.Write([]byte("not found"))
		}
		return
	}

	w.Header().Set("Content-Type", "text/html;charset=utf-8")
	if req.Method == http.MethodHead {
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(*h.report.Load())
}
