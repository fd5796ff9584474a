package main

import (
	"embed"
	"os"

	"gmplayer/internal/api"
	"gmplayer/internal/config"
	"gmplayer/internal/logger"
	"gmplayer/internal/platform"
	"gmplayer/internal/storage"
	"gmplayer/internal/tray"
	"gmplayer/internal/window"
	"gmplayer/internal/window/wailshost"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

//go:embed all:frontend/dist
var assets embed.FS

//go:embed build/trayicon.png
var trayIcon []byte

func main() {
	// Initialize Logger
	log, wailsHandler, err := logger.New(os.Stdout)
	if err != nil {
		println("Error initializing logger:", err.Error())
		return
	}

	// Initialize Storage
	store, err := storage.NewStorage()
	if err != nil {
		log.Error("Failed to initialize storage", "error", err)
		return
	}
	defer store.Close()

	cfg := config.NewConfigManager(store)

	// Windowing host over the Wails runtime, plus platform capabilities
	host := wailshost.New(log)
	emitter := wailshost.NewEmitter(host)
	effects := platform.NewEffects(log)
	cursor := platform.NewCursor()
	titlebar := platform.NewTitlebar(emitter)

	mgr := window.NewManager(host, emitter, effects, titlebar, store, log)
	mgr.SetDefaultTint(cfg.GetEffectTint())

	// Create an instance of the app structure, injecting dependencies
	app := NewApp(log, wailsHandler, host, mgr, cursor, cfg, store)
	app.SetTray(tray.New(mgr, cursor, trayIcon, app.QuitApp, log))
	app.SetControlServer(api.NewControlServer(mgr, cfg, log))

	mainCfg := window.MainConfig()

	// Create application with options
	err = wails.Run(&options.App{
		Title:     mainCfg.Title,
		Width:     int(mainCfg.Width),
		Height:    int(mainCfg.Height),
		MinWidth:  int(mainCfg.MinWidth),
		MinHeight: int(mainCfg.MinHeight),
		Frameless: mainCfg.UseOverlayTitlebar,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 30, G: 30, B: 30, A: 255},
		OnStartup:        app.startup,
		OnBeforeClose:    app.beforeClose, // Hook the close event
		Windows: &windows.Options{
			WebviewGpuIsDisabled: false,
		},
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
