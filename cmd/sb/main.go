package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/storefront-labs/storeboard/internal/datasource"
	"github.com/storefront-labs/storeboard/pkg/config"
	"github.com/storefront-labs/storeboard/pkg/export"
	"github.com/storefront-labs/storeboard/pkg/rollup"
	"github.com/storefront-labs/storeboard/pkg/session"
	"github.com/storefront-labs/storeboard/pkg/ui"
	"github.com/storefront-labs/storeboard/pkg/version"
	"github.com/storefront-labs/storeboard/pkg/watcher"
)

func main() {
	dataPath := flag.String("data", "", "Metrics snapshot file or directory (default: data.path from config, then cwd)")
	exportFlag := flag.Bool("export", false, "Run the interactive CSV export wizard instead of the TUI")
	noWatch := flag.Bool("no-watch", false, "Disable live reload when the snapshot changes")
	noSession := flag.Bool("no-session", false, "Start with fresh view state, ignore the session file")
	cpuProfile := flag.String("cpu-profile", "", "Write CPU profile to file")
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	flag.Parse()

	// CPU profiling support
	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *help {
		fmt.Println("Usage: sb [options]")
		fmt.Println("\nA terminal dashboard for your delivery metrics rollup.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("sb %s\n", version.Version)
		os.Exit(0)
	}

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		// Non-fatal: continue with defaults
		cfg = config.DefaultConfig()
	}

	path := *dataPath
	if path == "" {
		path = cfg.Data.Path
	}

	if *exportFlag {
		runExportWizard(path)
		return
	}

	// Verify a snapshot exists before entering the alt screen, so the
	// error lands on a usable terminal.
	snap, err := datasource.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading metrics: %v\n", err)
		fmt.Fprintln(os.Stderr, "Point --data at a metrics.db or snapshot.json from the aggregation service.")
		os.Exit(1)
	}

	var store session.Store
	if *noSession {
		store = session.NewMemoryStore()
	} else {
		store = session.OpenFileStore("")
	}

	m := ui.NewModel(cfg, store, path)

	if !*noWatch {
		w, werr := watcher.New(snap.Source.Path,
			watcher.WithPollInterval(cfg.Data.PollInterval),
		)
		if werr == nil && w.Start() == nil {
			defer w.Stop()
			m.SetWatcher(w)
		}
	}

	if err := runTUIProgram(m); err != nil {
		fmt.Printf("Error running storeboard: %v\n", err)
		os.Exit(1)
	}
}

// runExportWizard loads the snapshot and walks the interactive export.
func runExportWizard(path string) {
	snap, err := datasource.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading metrics: %v\n", err)
		os.Exit(1)
	}

	out, err := export.RunWizard(snap.Rows, rollup.NewGroupSet())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d rows to %s\n", len(snap.Rows), out)
}

func runTUIProgram(m *ui.Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for automated tests: set SB_TUI_AUTOCLOSE_MS.
	if v := os.Getenv("SB_TUI_AUTOCLOSE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			go func() {
				timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
				defer timer.Stop()

				select {
				case <-runDone:
					return
				case <-timer.C:
				}

				p.Quit()

				select {
				case <-runDone:
					return
				case <-time.After(2 * time.Second):
				}

				p.Kill()
			}()
		}
	}

	_, err := p.Run()
	if err != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted)) {
		return nil
	}
	return err
}
