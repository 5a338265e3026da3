/*
 * serve.go, part of gonucleus.
 *
 * Copyright 2025 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	nucleus "github.com/rmera/gonucleus"
	"github.com/rmera/gonucleus/anim"
	"github.com/rmera/gonucleus/config"
)

//server serves the visualizations of a catalogue. Nuclei are built on each request,
//they are small.
type server struct {
	cat    *config.Catalogue
	logger *log.Logger
}

//framePayload is one animation frame, with the world positions of every particle.
type framePayload struct {
	anim.Frame
	Title     string         `json:"title,omitempty"`
	Particles []particleJSON `json:"particles"`
}

type particleJSON struct {
	Name     string `json:"name"`
	Species  string `json:"species"`
	Color    uint32 `json:"color"`
	Position r3.Vec `json:"position"`
}

func newRouter(cat *config.Catalogue, logger *log.Logger) http.Handler {
	s := &server{cat: cat, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/nuclei", s.list)
	r.Route("/nuclei/{name}", func(r chi.Router) {
		r.Get("/", s.instance)
		r.Get("/plan", s.plan)
		r.Get("/frame", s.frame)
		r.Get("/xyz", s.xyz)
	})
	return r
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request", "id", middleware.GetReqID(r.Context()), "method", r.Method, "path", r.URL.Path,
			"status", ww.Status(), "elapsed", time.Since(start).Round(time.Microsecond))
	})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("writing response", "err", err)
	}
}

func (s *server) fail(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *server) list(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.cat.Nuclei)
}

//lookup returns the instance named in the URL, writing a 404 if there is none.
func (s *server) lookup(w http.ResponseWriter, r *http.Request) (config.Instance, bool) {
	inst, err := s.cat.Get(chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, http.StatusNotFound, err)
		return inst, false
	}
	return inst, true
}

func (s *server) nucleusOf(w http.ResponseWriter, r *http.Request) (config.Instance, *nucleus.Nucleus, bool) {
	inst, ok := s.lookup(w, r)
	if !ok {
		return inst, nil, false
	}
	N, err := build(withLogger(r.Context(), s.logger), inst)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return inst, nil, false
	}
	return inst, N, true
}

func (s *server) instance(w http.ResponseWriter, r *http.Request) {
	if inst, ok := s.lookup(w, r); ok {
		s.writeJSON(w, http.StatusOK, inst)
	}
}

func (s *server) plan(w http.ResponseWriter, r *http.Request) {
	if _, N, ok := s.nucleusOf(w, r); ok {
		s.writeJSON(w, http.StatusOK, N.Plan)
	}
}

//frame returns the scene at the animation time given by the t query parameter,
//in seconds (0 if absent).
func (s *server) frame(w http.ResponseWriter, r *http.Request) {
	t := 0.0
	if q := r.URL.Query().Get("t"); q != "" {
		var err error
		t, err = strconv.ParseFloat(q, 64)
		if err != nil || t < 0 {
			s.fail(w, http.StatusBadRequest, errors.New("t must be a non-negative number of seconds"))
			return
		}
	}
	inst, N, ok := s.nucleusOf(w, r)
	if !ok {
		return
	}
	f := anim.New(inst.Distance()).FrameAt(t)
	coords := N.Spin(f.RingAngle)
	out := framePayload{Frame: f, Title: N.Title, Particles: make([]particleJSON, N.Len())}
	for i, p := range N.Particles {
		out.Particles[i] = particleJSON{Name: p.Name, Species: p.Species.String(), Color: p.Color, Position: coords.Vec(i)}
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *server) xyz(w http.ResponseWriter, r *http.Request) {
	_, N, ok := s.nucleusOf(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "chemical/x-xyz")
	if err := nucleus.XYZWrite(w, N.Coords, N); err != nil {
		s.logger.Warn("writing xyz", "err", err)
	}
}

func newServeCmd(o *options) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve plans and animation frames over HTTP",
		Long: `Serve the visualizations of the catalogue over HTTP, as JSON.

	GET /nuclei                   the catalogue
	GET /nuclei/{name}            one entry
	GET /nuclei/{name}/plan       its layout plan
	GET /nuclei/{name}/frame?t=   the particles at t seconds of animation
	GET /nuclei/{name}/xyz        the rest coordinates, as XYZ`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := o.catalogue()
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			return serve(cmd.Context(), addr, newRouter(cat, logger), logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "address to listen on")
	return cmd
}

//serve runs h on addr until ctx is done, then shuts the server down.
func serve(ctx context.Context, addr string, h http.Handler, logger *log.Logger) error {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
