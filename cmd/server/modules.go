package main

import (
	"encoding/json"
	"net/http"

	"github.com/JaimeStill/studize/internal/api"
	"github.com/JaimeStill/studize/internal/config"
	"github.com/JaimeStill/studize/internal/infrastructure"
	"github.com/JaimeStill/studize/pkg/middleware"
	"github.com/JaimeStill/studize/pkg/module"
	"github.com/JaimeStill/studize/web/app"
)

const appPath = "/app"

// Modules holds the mounted HTTP modules.
type Modules struct {
	API *module.Module
	App *module.Module
}

// NewModules creates the API and dashboard modules. Both share the API
// domain's analysis system so dashboard runs are recorded in history too.
func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, domain, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	appModule, err := app.NewModule(appPath, infra.Roster, domain.Analysis, infra.Logger)
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.Logger(infra.Logger.With("module", "app")))

	return &Modules{
		API: apiModule,
		App: appModule,
	}, nil
}

// Mount registers every module on router.
func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API, m.App)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, appPath+"/", http.StatusFound)
	})

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, "ok")
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			writeStatus(w, http.StatusServiceUnavailable, "not ready")
			return
		}
		writeStatus(w, http.StatusOK, "ready")
	})

	return router
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"status": status})
}
