// Package gui wires the shared checks to the Wails desktop front end.
package gui

import (
	"io/fs"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"overcheck/pkg/check"
	"overcheck/pkg/diskcheck"
	"overcheck/pkg/limits"
	"overcheck/pkg/memcheck"
)

// App binds the check methods for the frontend. It holds the threshold
// set and the live OS queriers; the frontend only renders results.
type App struct {
	limits limits.Limits
	mem    memcheck.MemoryQuerier
	disk   diskcheck.DiskQuerier
	assets fs.FS
	log    zerolog.Logger
}

// New builds the application with default thresholds and live queriers.
func New() *App {
	return NewWithAssets(nil)
}

// NewWithAssets builds the application and optionally configures embedded
// frontend assets.
func NewWithAssets(assets fs.FS) *App {
	return &App{
		limits: limits.Default(),
		mem:    &memcheck.RealMemoryQuerier{},
		disk:   &diskcheck.RealDiskQuerier{},
		assets: assets,
		log:    zerolog.New(os.Stderr).With().Timestamp().Str("component", "gui").Logger(),
	}
}

// Run starts the Wails desktop application and binds the check methods.
func (a *App) Run() error {
	assetOptions := &assetserver.Options{}
	if a.assets != nil {
		assetOptions.Assets = a.assets
	} else {
		assetOptions.Handler = http.FileServer(http.Dir("./frontend"))
	}

	a.log.Info().Msg("starting desktop front end")

	return wails.Run(&options.App{
		Title:       "Overflow Checker",
		Width:       900,
		Height:      640,
		AssetServer: assetOptions,
		Bind:        []interface{}{a},
	})
}

// Result is the JSON-friendly shape of a check outcome for the frontend.
type Result struct {
	Name     string   `json:"name"`
	Overflow bool     `json:"overflow"`
	Details  []string `json:"details"`
	Error    string   `json:"error,omitempty"`
}

func (a *App) render(r check.Result) Result {
	a.log.Debug().Str("check", r.Name).Str("status", string(r.Status)).Msg("check complete")

	out := Result{
		Name:     r.Name,
		Overflow: r.Overflow(),
		Details:  r.Details,
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return out
}
