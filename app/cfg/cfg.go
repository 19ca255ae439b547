// Package cfg holds the option structs for both binaries, parsed from
// command-line flags and environment variables.
package cfg

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

// DefaultFeedURL is ingested when neither a positional URL nor a sources
// file is given.
const DefaultFeedURL = "https://news.smol.ai/rss.xml"

// ServerOpts configures the read API server.
type ServerOpts struct {
	Port   string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	DBPath string `long:"db" env:"DB_PATH" default:"data/articles.db" description:"Path to the SQLite database file"`
	Debug  bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// CollectOpts configures a collector run.
type CollectOpts struct {
	DBPath      string  `long:"db" env:"DB_PATH" default:"data/articles.db" description:"Path to the SQLite database file"`
	Limit       int     `long:"limit" description:"Limit the number of processed entries"`
	SkipLLM     bool    `long:"skip-llm" description:"Skip translation and only store metadata"`
	DryRun      bool    `long:"dry-run" description:"Fetch and translate without writing to the database"`
	Model       string  `long:"model" env:"OPENAI_MODEL" default:"gpt-4o-mini" description:"Chat completions model name"`
	Temperature float64 `long:"temperature" default:"0.2" description:"Sampling temperature for the model"`
	APIKey      string  `long:"api-key" env:"OPENAI_API_KEY" description:"API key for the chat completions endpoint"`
	Language    string  `long:"lang" default:"zh-Hans" description:"BCP 47 tag of the summary language"`
	Sources     string  `long:"sources" description:"YAML file listing feeds to ingest sequentially"`
	Extract     bool    `long:"extract" description:"Fetch and extract the article page when an entry has no summary"`
	Timeout     int     `long:"timeout" default:"30" description:"Feed fetch timeout in seconds"`
	UserAgent   string  `long:"user-agent" env:"USER_AGENT" default:"ainews/1.0" description:"User agent string for HTTP requests"`
	Debug       bool    `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Args struct {
		FeedURL string `positional-arg-name:"FEED_URL" description:"RSS feed URL"`
	} `positional-args:"yes"`
}

// ParseServerOpts parses server options. A nil result without error means
// help was requested.
func ParseServerOpts() (*ServerOpts, error) {
	var opts ServerOpts
	if done, err := parse(&opts); done || err != nil {
		return nil, err
	}
	return &opts, nil
}

// ParseCollectOpts parses collector options. A nil result without error
// means help was requested.
func ParseCollectOpts() (*CollectOpts, error) {
	var opts CollectOpts
	if done, err := parse(&opts); done || err != nil {
		return nil, err
	}

	if opts.Sources != "" && opts.Args.FeedURL != "" {
		return nil, fmt.Errorf("a positional feed URL and --sources are mutually exclusive")
	}

	return &opts, nil
}

func parse(opts interface{}) (bool, error) {
	parser := flags.NewParser(opts, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return true, nil
		}
		return false, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return false, nil
}

// SetupLogging installs the default slog handler, at debug level when asked.
func SetupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
