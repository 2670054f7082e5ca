package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ndanilov/scoreline/internal/notify"
	"github.com/ndanilov/scoreline/internal/pkg/config"
	"github.com/ndanilov/scoreline/internal/pkg/export"
	"github.com/ndanilov/scoreline/internal/pkg/gameorder"
	"github.com/ndanilov/scoreline/internal/pkg/interfaces"
	"github.com/ndanilov/scoreline/internal/pkg/logging"
	"github.com/ndanilov/scoreline/internal/pkg/models"
	"github.com/ndanilov/scoreline/internal/poller"
	"github.com/ndanilov/scoreline/internal/sources/gamefeed"
	"github.com/ndanilov/scoreline/internal/sources/scoreboard"
)

type cliConfig struct {
	configPath string

	league   string
	year     int
	gametype string
	week     int
	homepage bool

	team     string
	jsonOut  bool
	csvPath  string
	feedOnly bool

	watch    bool
	interval time.Duration
	runFor   time.Duration
}

func main() {
	if err := run(); err != nil {
		slog.Error("scoreline failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cli := parseFlags()

	appConfig, err := loadConfig(cli.configPath)
	if err != nil {
		return err
	}
	logging.Setup(&appConfig.Logging, "scoreline")

	if cli.interval > 0 {
		appConfig.Poll.Interval = cli.interval
	}

	ctx, cancel := createContext(cli.runFor)
	defer cancel()

	feed := gamefeed.NewClient(appConfig.Feed)
	sink := buildSink(cli, appConfig)

	if cli.feedOnly {
		if cli.watch {
			return fmt.Errorf("-feed-only cannot be combined with -watch: polling needs the scoreboard baseline for team names")
		}
		return runFeedOnly(ctx, feed, sink)
	}

	board := scoreboard.NewClient(appConfig.Scoreboard, scoreboard.Query{
		League:      cli.league,
		Year:        cli.year,
		Gametype:    cli.gametype,
		Week:        cli.week,
		UseHomepage: cli.homepage,
	})
	slog.Debug("Scoreboard target", "url", board.URL())

	p := poller.New(board, feed, sink, appConfig.Poll.Interval)
	if cli.watch {
		slog.Info("Polling for score updates", "interval", appConfig.Poll.Interval)
		return p.Run(ctx)
	}
	return p.RunOnce(ctx)
}

// runFeedOnly dumps the raw update set once. Team names here come from the
// feed's URL slugs and are unverified; hybrid mode is the accurate path.
func runFeedOnly(ctx context.Context, feed *gamefeed.Client, sink interfaces.Sink) error {
	slog.Warn("Feed-only mode: team names are best-effort and may be wrong")
	records, err := feed.FetchUpdates(ctx)
	if err != nil {
		return err
	}
	return sink.Deliver(gameorder.Sort(records))
}

func parseFlags() cliConfig {
	var cli cliConfig

	flag.StringVar(&cli.configPath, "config", os.Getenv("CONFIG_PATH"), "Path to yaml config (can be set via CONFIG_PATH env var). Empty = built-in defaults")

	flag.StringVar(&cli.league, "league", "NFL", "League code for the scores page")
	flag.IntVar(&cli.year, "year", 0, "Season year (with -week selects an archive page)")
	flag.StringVar(&cli.gametype, "type", "reg", "Game type: reg, pre or post")
	flag.IntVar(&cli.week, "week", 0, "Week number (with -year selects an archive page)")
	flag.BoolVar(&cli.homepage, "homepage", false, "Force the homepage scoreboard regardless of -year/-week")

	flag.StringVar(&cli.team, "team", "", "Only show games where this team plays (substring match)")
	flag.BoolVar(&cli.jsonOut, "json", false, "Output JSON instead of text")
	flag.StringVar(&cli.csvPath, "csv", "", "Save results to a CSV file")
	flag.BoolVar(&cli.feedOnly, "feed-only", false, "Fetch the gamescores feed only (unverified team names)")

	flag.BoolVar(&cli.watch, "watch", false, "Keep polling the feed and re-render on each cycle")
	flag.DurationVar(&cli.interval, "interval", 0, "Poll interval override (e.g. 30s). 0 = use config")
	flag.DurationVar(&cli.runFor, "run-for", 0, "Auto-stop after duration (e.g. 10m). 0 = run until SIGINT/SIGTERM")
	flag.Parse()
	return cli
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func createContext(runFor time.Duration) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	if runFor > 0 {
		timed, cancel := context.WithTimeout(ctx, runFor)
		return timed, func() { cancel(); stop() }
	}
	return ctx, stop
}

// buildSink assembles the output chain: optional team filter, then the
// requested renderer, then the optional Telegram notifier.
func buildSink(cli cliConfig, appConfig *config.Config) interfaces.Sink {
	sinks := []interfaces.Sink{renderSink(cli)}

	if notifier := notify.NewTelegramNotifier(appConfig.Telegram); notifier != nil {
		slog.Info("Telegram notifications enabled", "chat_id", appConfig.Telegram.ChatID)
		sinks = append(sinks, notifier)
	}

	combined := multiSink(sinks)
	if cli.team == "" {
		return combined
	}
	return interfaces.SinkFunc(func(records []models.GameRecord) error {
		return combined.Deliver(models.FilterByTeam(records, cli.team))
	})
}

func renderSink(cli cliConfig) interfaces.Sink {
	return interfaces.SinkFunc(func(records []models.GameRecord) error {
		switch {
		case cli.csvPath != "":
			f, err := os.Create(cli.csvPath)
			if err != nil {
				return fmt.Errorf("create csv file: %w", err)
			}
			defer f.Close()
			if err := export.WriteCSV(f, records); err != nil {
				return err
			}
			slog.Info("Saved CSV", "path", cli.csvPath, "games", len(records))
			return nil
		case cli.jsonOut:
			return export.WriteJSON(os.Stdout, records)
		default:
			if cli.watch {
				fmt.Printf("--- %s (%d games) ---\n", time.Now().Format("15:04:05"), len(records))
			}
			return export.WriteText(os.Stdout, records)
		}
	})
}

type multiSink []interfaces.Sink

func (m multiSink) Deliver(records []models.GameRecord) error {
	for _, s := range m {
		if err := s.Deliver(records); err != nil {
			return err
		}
	}
	return nil
}
