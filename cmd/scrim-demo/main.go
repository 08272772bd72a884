package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vito/scrim/pkg/scrim"
	"github.com/vito/scrim/pkg/scrim/tcellback"
	"github.com/vito/scrim/pkg/scrim/termback"
)

// Config holds the demo configuration
type Config struct {
	Backend string
	Fps     int
	Theme   string
	Debug   bool
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "scrim-demo",
		Short: "Tour of the scrim widget set",
		Long: `scrim-demo walks through what the toolkit ships with: layered
dialogs, a menubar with nested dropdowns, screens, radio groups, themes,
and the in-UI debug console (F12).`,
		Example: `  # Run with the built-in ANSI backend
  scrim-demo

  # Run on tcell at 30 fps with a custom theme
  scrim-demo --backend tcell --fps 30 --theme theme.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	rootCmd.Flags().StringVarP(&cfg.Backend, "backend", "b", "term", "Terminal backend to use (term or tcell)")
	rootCmd.Flags().IntVar(&cfg.Fps, "fps", 0, "Idle redraw cap, 0 for uncapped")
	rootCmd.Flags().StringVar(&cfg.Theme, "theme", "", "Path to a TOML theme file")
	rootCmd.Flags().BoolVarP(&cfg.Debug, "debug", "d", false, "Capture debug-level logs")

	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = io.WriteString(w, err.Error()+"\n")
		}),
	); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config) error {
	backend, err := newBackend(cfg.Backend)
	if err != nil {
		return err
	}

	app := scrim.NewApp(backend, scrim.WithFps(cfg.Fps))
	if cfg.Theme != "" {
		if err := app.LoadThemeFile(cfg.Theme); err != nil {
			app.Close()
			return err
		}
	}

	// The UI owns the terminal, so logs go to the in-memory ring shown
	// by the debug console instead of stderr.
	handler := app.DebugHandler()
	if !cfg.Debug {
		handler.SetLevel(slog.LevelInfo)
	}
	slog.SetDefault(slog.New(handler))

	buildUI(app)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return tickClock(ctx, app.CbSink()) })

	slog.Info("demo starting", "backend", app.BackendName())
	started := time.Now()
	app.Run()
	cancel()
	if err := eg.Wait(); err != nil {
		return err
	}

	byeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	fmt.Println(byeStyle.Render("bye!"), dimStyle.Render(time.Since(started).Round(time.Second).String()))
	return nil
}

func newBackend(name string) (scrim.Backend, error) {
	switch name {
	case "term":
		return termback.New()
	case "tcell":
		return tcellback.New()
	default:
		return nil, errors.Errorf("unknown backend %q (try term or tcell)", name)
	}
}

// tickClock refreshes the clock line once a second from outside the
// loop, the way any background job would feed the UI.
func tickClock(ctx context.Context, sink *scrim.CbSink) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			sink.Send(func(app *scrim.App) {
				if clock, ok := scrim.Find[*scrim.TextView](app.Root(), "clock"); ok {
					clock.SetContent(time.Now().Format("15:04:05"))
				}
			})
		}
	}
}

func buildUI(app *scrim.App) {
	app.Menubar().SetAutohide(false)
	app.Menubar().
		AddSubtree("File",
			scrim.NewMenuTree().
				Leaf("Dialog", showDialog).
				Leaf("Other screen", showOtherScreen).
				Delimiter().
				Leaf("Quit", (*scrim.App).Quit)).
		AddSubtree("View",
			scrim.NewMenuTree().
				Subtree("Borders", scrim.NewMenuTree().
					Leaf("Simple", setBorders(scrim.BordersSimple)).
					Leaf("Outset", setBorders(scrim.BordersOutset)).
					Leaf("None", setBorders(scrim.BordersNone))).
				Leaf("Toggle shadows", func(app *scrim.App) {
					app.UpdateTheme(func(t *scrim.Theme) { t.Shadow = !t.Shadow })
				})).
		AddSubtree("Help",
			scrim.NewMenuTree().
				Leaf("Logs", func(app *scrim.App) { app.ToggleDebugConsole() }).
				Leaf("About", showAbout))

	shadows := scrim.NewRadioGroup[bool]()
	shadows.SetOnChange(func(app *scrim.App, on bool) {
		slog.Debug("shadows toggled", "on", on)
		app.UpdateTheme(func(t *scrim.Theme) { t.Shadow = on })
	})

	main := scrim.NewVerticalLayout().
		AddChild(scrim.NewTextView("scrim demo")).
		AddChild(scrim.Named("clock", scrim.NewTextView("--:--:--"))).
		AddChild(scrim.NewTextView("Esc opens the menu. F12 shows logs. q quits.")).
		AddChild(shadows.Button(true, "Shadows on")).
		AddChild(shadows.Button(false, "Shadows off")).
		AddChild(scrim.NewHorizontalLayout().
			AddChild(scrim.NewButton("Dialog", showDialog)).
			AddChild(scrim.NewButton("Quit", (*scrim.App).Quit)))

	app.AddFullscreenLayer(scrim.Padded(scrim.Margins{Left: 2, Top: 1}, main))

	app.SetGlobalCallback(scrim.Ch('q'), (*scrim.App).Quit)
	app.SetGlobalCallback(scrim.KeyEvent{Key: scrim.KeyEsc}, func(app *scrim.App) {
		app.SelectMenubar()
	})
	app.SetGlobalCallback(scrim.KeyEvent{Key: scrim.KeyF12}, func(app *scrim.App) {
		app.ToggleDebugConsole()
	})
}

func setBorders(style scrim.BorderStyle) scrim.Callback {
	return func(app *scrim.App) {
		app.UpdateTheme(func(t *scrim.Theme) { t.Borders = style })
	}
}

func showDialog(app *scrim.App) {
	slog.Info("opening dialog")
	body := scrim.NewVerticalLayout().
		AddChild(scrim.NewTextView("A floating layer.")).
		AddChild(scrim.NewTextView("It sits above the fullscreen layer")).
		AddChild(scrim.NewTextView("and casts a shadow.")).
		AddChild(scrim.NewButton("OK", func(app *scrim.App) { app.PopLayer() }))
	app.AddLayer(scrim.Panel(scrim.Padded(scrim.Margins{Left: 1, Right: 1}, body)).
		WithTitle("Dialog"))
}

func showAbout(app *scrim.App) {
	body := scrim.NewVerticalLayout().
		AddChild(scrim.NewTextView("scrim "+app.BackendName()+" backend")).
		AddChild(scrim.NewButton("Close", func(app *scrim.App) { app.PopLayer() }))
	app.AddLayer(scrim.Panel(body).WithTitle("About"))
}

// showOtherScreen flips to a second screen, creating it on first use.
// The first screen keeps its layers for when we come back.
func showOtherScreen(app *scrim.App) {
	if data, ok := app.UserData().(int); ok {
		_ = app.SetScreen(data)
		return
	}
	id := app.AddScreen()
	app.SetUserData(id)
	_ = app.SetScreen(id)
	app.AddFullscreenLayer(scrim.NewVerticalLayout().
		AddChild(scrim.NewTextView("The other screen.")).
		AddChild(scrim.NewButton("Back", func(app *scrim.App) {
			_ = app.SetScreen(0)
		})))
}
