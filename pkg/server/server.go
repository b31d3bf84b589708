package server

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jumppad-labs/matrixpanel/pkg/bridge"
	"github.com/jumppad-labs/matrixpanel/pkg/clients/logger"
	"github.com/jumppad-labs/matrixpanel/pkg/config"
)

var allowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
var allowedHeaders = []string{"Content-Type"}

type API struct {
	server *http.Server
	bridge *bridge.Bridge
	store  *config.Store
	dir    string
	log    logger.Logger
}

// New creates a new server which serves the front end from dir, relays
// commands through b and persists the device address in s
func New(addr, dir string, b *bridge.Bridge, s *config.Store, l logger.Logger) *API {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log.New(l.StandardWriter(), "", log.Default().Flags()), NoColor: true}))
	router.Use(middleware.Recoverer)
	router.Use(middleware.GetHead)
	// preflights continue to the OPTIONS route which always sets the fixed
	// CORS headers, also when the cors checks reject the request
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     allowedMethods,
		AllowedHeaders:     allowedHeaders,
		OptionsPassthrough: true,
	}))

	server := &http.Server{
		Addr:     addr,
		Handler:  router,
		ErrorLog: log.New(l.StandardWriter(), "", log.Default().Flags()),
	}

	api := &API{
		server: server,
		bridge: b,
		store:  s,
		dir:    dir,
		log:    l,
	}

	router.Post("/execute", api.execute)
	router.Post("/save-address", api.saveAddress)
	router.Get("/load-address", api.loadAddress)

	router.Get("/", api.index)
	router.Get("/index.html", api.index)
	router.Get("/*", api.static)

	router.Options("/*", api.preflight)

	router.NotFound(api.notFound)
	router.MethodNotAllowed(api.notFound)

	return api
}

// Handler returns the router with all middleware applied
func (a *API) Handler() http.Handler {
	return a.server.Handler
}

// Serve accepts connections on the given listener, when certFile and keyFile
// are set the connections are served with TLS. Serve blocks until the server
// is stopped.
func (a *API) Serve(ln net.Listener, certFile, keyFile string) error {
	var err error
	if certFile != "" && keyFile != "" {
		err = a.server.ServeTLS(ln, certFile, keyFile)
	} else {
		err = a.server.Serve(ln)
	}

	if err != nil && err != http.ErrServerClosed {
		a.log.Error("Listen exit with", "error", err)
		return err
	}

	a.log.Info("Listen exit")
	return nil
}

// Stop the API server
func (a *API) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.log.Info("Shutdown API server")
	a.server.Shutdown(ctx)
}
