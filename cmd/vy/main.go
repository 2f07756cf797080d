package main

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jacoelho/vy/internal/config"
	"github.com/jacoelho/vy/internal/exit"
	"github.com/jacoelho/vy/internal/render"
	"github.com/jacoelho/vy/internal/tree"
	"github.com/jacoelho/vy/internal/ui"
	"github.com/jacoelho/vy/internal/watch"
	"github.com/jacoelho/vy/internal/yamlparse"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, exitResult := config.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	if cfg.ExportHTML != "" {
		exitResult = export(cfg)
		exitResult.Print()
		return exitResult.ExitCode
	}

	var text, name string
	if cfg.File != "" {
		data, err := os.ReadFile(cfg.File)
		if err != nil {
			result := exit.Errorf("read %s: %v\n", cfg.File, err)
			result.Print()
			return result.ExitCode
		}
		text = string(data)
		name = filepath.Base(cfg.File)
	}

	var reloads <-chan watch.Reload
	if cfg.Watch {
		watcher, err := watch.New(cfg.File, cfg.ReloadRate)
		if err != nil {
			result := exit.Errorf("watch %s: %v\n", cfg.File, err)
			result.Print()
			return result.ExitCode
		}
		defer watcher.Close()
		reloads = watcher.Reloads()
	}

	model := ui.New(ui.Options{
		FileName: name,
		Text:     text,
		Quiet:    cfg.Debounce,
		NoColor:  cfg.NoColor,
		Reloads:  reloads,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		result := exit.Errorf("viewer: %v\n", err)
		result.Print()
		return result.ExitCode
	}

	return 0
}

// export renders the document once as a static HTML tree and exits.
func export(cfg *config.Config) *exit.Result {
	data, err := os.ReadFile(cfg.File)
	if err != nil {
		return exit.Errorf("read %s: %v\n", cfg.File, err)
	}

	value, err := yamlparse.Parse(string(data))
	if err != nil {
		return exit.Errorf("parse %s: %v\n", cfg.File, err)
	}

	out, err := os.Create(cfg.ExportHTML)
	if err != nil {
		return exit.Errorf("create %s: %v\n", cfg.ExportHTML, err)
	}
	defer out.Close()

	root := tree.Build(filepath.Base(cfg.File), value)
	if err := render.WriteHTML(out, root); err != nil {
		return exit.Errorf("write %s: %v\n", cfg.ExportHTML, err)
	}

	return exit.Success("wrote " + cfg.ExportHTML + "\n")
}
