package cli

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/boxforge/boxforge/pkg/box"
	"github.com/boxforge/boxforge/pkg/errors"
	"github.com/boxforge/boxforge/pkg/preset"
	"github.com/boxforge/boxforge/pkg/sink"
)

const serveShutdownTimeout = 5 * time.Second

// serveCommand creates the serve command, a small HTTP server that renders
// boxes from query parameters. Useful for live-previewing dimensions in a
// browser before cutting.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve box drawings over HTTP",
		Long: `Serve box drawings over HTTP for browser preview.

Every spec field is a query parameter named like its generate flag:

  GET /box.svg?length=160&width=100&height=60&kerf=0.15
  GET /box.dxf?preset=parts-tray
  GET /box.json?type=open-top&div-l=2

Configuration mistakes return 400 with a plain-text explanation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           c.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return withLogger(ctx, c.Logger) },
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(errors.ErrCodeInternal, err, "http server")
	case <-ctx.Done():
	}

	c.Logger.Info("Shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "shutdown")
	}
	return nil
}

func (c *CLI) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(c.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})
	r.Get("/presets", c.handlePresets)
	r.Get("/box.svg", c.handleBox(sink.FormatSVG, "image/svg+xml"))
	r.Get("/box.dxf", c.handleBox(sink.FormatDXF, "application/dxf"))
	r.Get("/box.json", c.handleBox(sink.FormatJSON, "application/json"))
	return r
}

func (c *CLI) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		loggerFromContext(r.Context()).Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

func (c *CLI) handlePresets(w http.ResponseWriter, _ *http.Request) {
	out := make(map[string]string, len(preset.Names()))
	for _, name := range preset.Names() {
		out[name] = preset.Describe(name)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// handleBox builds a spec from the query string, generates the drawing and
// streams it in the requested format.
func (c *CLI) handleBox(format sink.Format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec, err := specFromQuery(r)
		if err != nil {
			http.Error(w, errors.UserMessage(err), http.StatusBadRequest)
			return
		}
		d, _, err := c.newGenerator().Generate(r.Context(), spec)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.IsConfiguration(err) || errors.IsGeometry(err) {
				status = http.StatusBadRequest
			}
			http.Error(w, errors.UserMessage(err), status)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("ETag", `"`+d.ID+`"`)
		if err := sink.Write(w, d, format); err != nil {
			loggerFromContext(r.Context()).Error("writing response", "err", err)
		}
	}
}

// specFromQuery assembles a spec from URL query parameters. Parameters share
// names with the generate flags; a preset parameter is applied first so other
// parameters can override it.
func specFromQuery(r *http.Request) (box.Spec, error) {
	q := r.URL.Query()
	spec := box.DefaultSpec()

	if name := q.Get("preset"); name != "" {
		p, err := preset.Get(name)
		if err != nil {
			return spec, err
		}
		if spec, err = p.Apply(spec); err != nil {
			return spec, err
		}
	}

	floats := map[string]*float64{
		"length":        &spec.Length,
		"width":         &spec.Width,
		"height":        &spec.Height,
		"thickness":     &spec.Thickness,
		"kerf":          &spec.Kerf,
		"clearance":     &spec.Clearance,
		"tab":           &spec.TabWidth,
		"dimple-height": &spec.DimpleHeight,
		"dimple-tip":    &spec.DimpleTip,
		"spacing":       &spec.Spacing,
	}
	for name, dst := range floats {
		if v := q.Get(name); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return spec, errors.New(errors.ErrCodeInvalidSpec, "parameter %q: %v", name, err)
			}
			*dst = f
		}
	}

	ints := map[string]*int{"div-l": &spec.DivL, "div-w": &spec.DivW}
	for name, dst := range ints {
		if v := q.Get(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return spec, errors.New(errors.ErrCodeInvalidSpec, "parameter %q: %v", name, err)
			}
			*dst = n
		}
	}

	if v := q.Get("inside"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return spec, errors.New(errors.ErrCodeInvalidSpec, "parameter %q: %v", "inside", err)
		}
		spec.Inside = b
	}

	var err error
	if v := q.Get("type"); v != "" {
		if spec.Type, err = box.ParseBoxType(v); err != nil {
			return spec, err
		}
	}
	if v := q.Get("symmetry"); v != "" {
		if spec.Symmetry, err = box.ParseSymmetry(v); err != nil {
			return spec, err
		}
	}
	if v := q.Get("tab-type"); v != "" {
		if spec.TabType, err = box.ParseTabType(v); err != nil {
			return spec, err
		}
	}
	if v := q.Get("tab-policy"); v != "" {
		if spec.TabPolicy, err = box.ParseTabPolicy(v); err != nil {
			return spec, err
		}
	}
	if v := q.Get("keying"); v != "" {
		if spec.Keying, err = box.ParseKeyPolicy(v); err != nil {
			return spec, err
		}
	}
	if v := q.Get("layout"); v != "" {
		if spec.Layout, err = box.ParseLayoutStyle(v); err != nil {
			return spec, err
		}
	}
	return spec, nil
}
