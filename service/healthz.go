package service

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/log"
	"github.com/rs/cors"
)

// HealthzServer reports whether the last smoke test run succeeded.
type HealthzServer struct {
	server  *http.Server
	healthy func() bool
	log     log.Logger
}

func NewHealthzServer(log log.Logger, healthy func() bool) *HealthzServer {
	return &HealthzServer{healthy: healthy, log: log}
}

// Start listens on addr:port and serves until Shutdown is called.
func (h *HealthzServer) Start(addr string, port int) error {
	listener, err := net.Listen("tcp", net.JoinHostPort(addr, strconv.Itoa(port)))
	if err != nil {
		return err
	}
	return h.Serve(listener)
}

// Serve serves on an existing listener until Shutdown is called.
func (h *HealthzServer) Serve(listener net.Listener) error {
	hdlr := http.NewServeMux()
	hdlr.HandleFunc("/healthz", h.Handle)
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
	})
	h.server = &http.Server{
		Handler: c.Handler(hdlr),
	}

	go func() {
		if err := h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.log.Error("Healthz server failed", "err", err)
		}
	}()
	h.log.Info("Started healthz server", "addr", listener.Addr().String())
	return nil
}

func (h *HealthzServer) Shutdown(ctx context.Context) error {
	if h.server == nil {
		return nil
	}
	return h.server.Shutdown(ctx)
}

func (h *HealthzServer) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.healthy() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("FAIL")) //nolint:errcheck
		return
	}
	w.Write([]byte("OK")) //nolint:errcheck
}
