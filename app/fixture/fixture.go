// Package fixture provides a stub of the application under test: a vault with createEntity,
// a ui store opening entities in zen mode and an image lightbox. It backs the e2e suite.
package fixture

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"sync"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"
)

//go:embed index.html
var indexHTML string

// Config holds stub behavior switches.
type Config struct {
	NeverIdle bool // vault status never leaves "loading"
	NoImage   bool // zen mode renders without the image button
}

// Entity is an entity created through the page's vault.
type Entity struct {
	Kind   string            `json:"kind"`
	Name   string            `json:"name"`
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Server serves the stub application.
type Server struct {
	Config
	tmpl  *template.Template
	image []byte

	mu       sync.Mutex
	entities []Entity
}

// New creates a stub application server.
func New(cfg Config) (*Server, error) {
	tmpl, err := template.New("index").Parse(indexHTML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}
	img, err := heroImage()
	if err != nil {
		return nil, fmt.Errorf("failed to make hero image: %w", err)
	}
	return &Server{Config: cfg, tmpl: tmpl, image: img}, nil
}

// Routes returns the HTTP handler of the stub application.
func (s *Server) Routes() http.Handler {
	router := routegroup.New(http.NewServeMux())
	router.Use(rest.Recoverer(log.Default()), rest.Ping)

	router.HandleFunc("GET /{$}", s.handleIndex)
	router.HandleFunc("GET /img/hero.png", s.handleImage)
	router.HandleFunc("POST /api/entities", s.handleCreate)
	router.HandleFunc("GET /api/entities", s.handleList)
	return router
}

// Entities returns entities created so far.
func (s *Server) Entities() []Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]Entity, len(s.entities))
	copy(res, s.entities)
	return res
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, s.Config); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}

func (s *Server) handleImage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(s.image); err != nil {
		log.Printf("[WARN] failed to write image: %v", err)
	}
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var e Entity
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid entity")
		return
	}
	if e.Kind == "" || e.Name == "" {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, errors.New("kind and name are required"), "invalid entity")
		return
	}

	s.mu.Lock()
	s.entities = append(s.entities, e)
	s.mu.Unlock()

	log.Printf("[DEBUG] fixture: created %s %q", e.Kind, e.Name)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	rest.RenderJSON(w, e)
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, s.Entities())
}

// heroImage renders a 300x300 png used as the entity image.
func heroImage() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 300, 300))
	for x := range 300 {
		for y := range 300 {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / 300), G: 90, B: uint8(y * 255 / 300), A: 255}) //nolint:gosec // values < 256
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
