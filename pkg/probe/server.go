package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"guess_game/pkg/contextx"
	"guess_game/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	httpServerReadHeaderTimeout = 5 * time.Second
	defaultCheckTimeout         = 2 * time.Second
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Check reports whether a dependency is usable. A nil error means ready.
type Check func(ctx context.Context) error

type Server struct {
	listenAddress string
	options       Options
	state         []byte
}

type Options struct {
	Name    string `json:"name"`
	Version string `json:"version"`

	// Checks are run by /ready, keyed by dependency name.
	Checks       map[string]Check `json:"-"`
	CheckTimeout time.Duration    `json:"-"`
}

type readyState struct {
	Name    string            `json:"name"`
	Version string            `json:"version"`
	Failed  map[string]string `json:"failed,omitempty"`
}

func NewServer(
	listenAddress string,
	options Options,
) Server {
	if options.CheckTimeout == 0 {
		options.CheckTimeout = defaultCheckTimeout
	}

	stateJSON, _ := json.Marshal(options) //nolint:errcheck,errchkjson

	return Server{
		listenAddress: listenAddress,
		options:       options,
		state:         stateJSON,
	}
}

func (s Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handlerHealthz)
	mux.HandleFunc("/ready", s.handlerReady)

	return mux
}

func (s Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              s.listenAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger(ctx).Error("httpServer.Shutdown", logx.Error(err))
		}
	}()

	logger(ctx).Info("probe server started", slog.String("address", s.listenAddress))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.ListenAndServe: %w", err)
	}

	logger(ctx).Info("probe server stopped")

	return nil
}

func (s Server) handlerHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write(s.state) //nolint:errcheck
}

func (s Server) handlerReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.options.CheckTimeout)
	defer cancel()

	state := readyState{
		Name:    s.options.Name,
		Version: s.options.Version,
	}

	for name, check := range s.options.Checks {
		if err := check(ctx); err != nil {
			if state.Failed == nil {
				state.Failed = make(map[string]string)
			}

			state.Failed[name] = err.Error()

			logger(ctx).Warn("dependency not ready", slog.String("dependency", name), logx.Error(err))
		}
	}

	body, _ := json.Marshal(state) //nolint:errcheck,errchkjson

	if len(state.Failed) > 0 {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	w.Write(body) //nolint:errcheck
}
