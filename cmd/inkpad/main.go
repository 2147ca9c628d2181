// Command inkpad is a drawing pad for handwritten digits. Strokes are
// captured on an ink.Surface, reduced to the normalized 28x28 grid and
// sent to a classifier service; predictions can be confirmed or corrected,
// feeding the service's training data.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/digitink/ink"
	"github.com/digitink/ink/classify"
	"github.com/digitink/ink/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to TOML config file")
		baseURL    = flag.String("url", "", "classifier service URL (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *baseURL != "" {
		cfg.Service.BaseURL = *baseURL
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := cfg.NewLogger(os.Stderr)
	ink.SetLogger(logger)

	client, err := classify.NewClient(cfg.Service.BaseURL, &http.Client{Timeout: cfg.Timeout()})
	if err != nil {
		log.Fatalf("Failed to create classifier client: %v", err)
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("inkpad"))
		w.Option(app.Size(unit.Dp(420), unit.Dp(640)))

		if err := loop(w, client); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window, classifier ink.Classifier) error {
	pad := newPad(classifier, w.Invalidate)

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			pad.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}
