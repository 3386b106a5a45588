package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/fr4nk3nst1ner/jobanalysis/internal/app"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/config"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/loader"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/logging"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/ui"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/web"
)

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 Job Analysis Usage Examples 📋")
	fmt.Println("\n1. List every job in a file, newest first:")
	fmt.Println("   jobanalysis -file jobs.json -sort-posted desc")

	fmt.Println("\n2. Show only full-time junior Go jobs:")
	fmt.Println("   jobanalysis -file jobs.json -type \"Full-time\" -level Junior -skill Go")

	fmt.Println("\n3. Sort by title Z-A, oldest first, as a table, without the banner:")
	fmt.Println("   jobanalysis -file jobs.json -sort-title desc -sort-posted asc -table -silence")

	fmt.Println("\n4. Show the details of the third job of the list:")
	fmt.Println("   jobanalysis -file jobs.json -detail 3")

	fmt.Println("\n5. Browse a file interactively:")
	fmt.Println("   jobanalysis -interactive")

	fmt.Println("\n6. Open the browser viewer on port 9000 with a file already loaded:")
	fmt.Println("   jobanalysis -serve -port 9000 -file jobs.json")
	os.Exit(0)
}

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config.yaml (default $JOBANALYSIS_CONFIG or ./config.yaml)")
	file := flag.String("file", "", "Job file to load (JSON array of postings)")
	jobType := flag.String("type", "", "Only show jobs of this type")
	level := flag.String("level", "", "Only show jobs of this level")
	skill := flag.String("skill", "", "Only show jobs requiring this skill")
	sortTitle := flag.String("sort-title", "", "Sort by title: asc or desc")
	sortPosted := flag.String("sort-posted", "", "Sort by posted time: asc or desc")
	detail := flag.Int("detail", 0, "Show the details of the Nth job of the list")
	table := flag.Bool("table", false, "Show results in table format")
	progress := flag.Bool("progress", false, "Show a progress bar while reading the file")
	interactive := flag.Bool("interactive", false, "Browse jobs with an interactive menu")
	serve := flag.Bool("serve", false, "Start the browser viewer")
	port := flag.Int("port", 0, "Port for the browser viewer (overrides config)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	examples := flag.Bool("examples", false, "Show usage examples")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if *port != 0 {
		cfg.Web.Port = *port
	}
	if *table {
		cfg.Display.Table = true
	}
	if *progress {
		cfg.Loader.Progress = true
	}

	logger, err := logging.New(cfg.Logging, *debug)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	// Display banner (skip if either -silence or -nobanner is set, or the config turns it off)
	ui.PrintBanner(*silence || *noBanner || !cfg.Display.Banner)

	if *examples {
		printExamples()
		return
	}

	a := app.New(logger)
	term := ui.NewTerminal(ui.WithTable(cfg.Display.Table), ui.WithTitleWidth(cfg.Display.TitleWidth))

	switch {
	case *serve:
		if *file != "" {
			loadFile(a, term, *file, cfg)
		}
		runServer(a, cfg, logger)

	case *interactive:
		if *file != "" {
			loadFile(a, term, *file, cfg)
		}
		session := &ui.Interactive{
			App:         a,
			Term:        term,
			Prompt:      ui.PtermPrompter{},
			MaxFileSize: cfg.Loader.MaxFileSize,
			Progress:    cfg.Loader.Progress,
		}
		if err := session.Run(); err != nil {
			log.Fatalf("Interactive session ended: %v", err)
		}

	default:
		if *file == "" {
			log.Fatal("A job file is required (-file), or use -interactive / -serve")
		}

		criteria := models.Criteria{Type: *jobType, Level: *level, Skill: *skill}
		spec, err := models.ResolveSortSpec(*sortTitle, *sortPosted, cfg.Display.DefaultSort)
		if err != nil {
			log.Fatalf("Invalid sort: %v", err)
		}

		// Load quietly; the list printed is the query result
		data, err := loader.ReadFile(*file, cfg.Loader.MaxFileSize, cfg.Loader.Progress)
		if err != nil {
			log.Fatalf("Error reading job file: %v", err)
		}
		a.Handle(app.Load{Data: data, Source: *file}, app.NotifyOnly(term))
		if !a.Snapshot().Loaded() {
			os.Exit(1)
		}
		term.Warnings(a.Snapshot().Warnings)

		a.Handle(app.Query{Criteria: criteria, Sort: spec}, term)

		if *detail > 0 {
			items := term.Last().Items
			if *detail > len(items) {
				log.Fatalf("Job %d does not exist, the list has %d jobs", *detail, len(items))
			}
			a.Handle(app.Select{ID: items[*detail-1].ID}, term)
		}
	}
}

// loadFile loads a file before an interactive or web session; a bad file is reported, not fatal
func loadFile(a *app.App, term *ui.Terminal, path string, cfg *config.AppConfig) {
	data, err := loader.ReadFile(path, cfg.Loader.MaxFileSize, cfg.Loader.Progress)
	if err != nil {
		term.Notify(err)
		return
	}
	a.Handle(app.Load{Data: data, Source: path}, app.NotifyOnly(term))
	term.Warnings(a.Snapshot().Warnings)
}

func runServer(a *app.App, cfg *config.AppConfig, logger *zap.Logger) {
	srv, err := web.NewServer(a, cfg, logger)
	if err != nil {
		log.Fatalf("Error creating web server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	fmt.Printf("Job viewer running at http://%s (Ctrl+C to stop)\n", cfg.Web.Addr())

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Web server failed: %v", err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("web server shutdown failed", zap.Error(err))
		}
	}
}
