// rotation-checker analyzes Pokemon TCG deck lists against the Standard
// format rotation schedule and suggests replacement cards.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ptcgtools/ptcg-companion/internal/config"
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/cards"
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/cards/tcgio"
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/deckimport"
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/rotation"
	"github.com/ptcgtools/ptcg-companion/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "rotation-checker",
	Short: "Check Pokemon TCG deck lists against Standard rotation",
	Long: `rotation-checker parses a deck list in PTCGO/Limitless format, flags
cards that are rotating out of the Standard format, and suggests
replacement cards from a newer set.`,
	Version:      version.GetVersion(),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(setsCmd)
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig loads and validates the user configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// buildTable resolves the regulation table from configuration: an
// override file when configured, the built-in table otherwise. A table
// file is authoritative, including its next_mark (defaulted when the
// file omits it); the configured next-rotation mark applies only to the
// built-in table.
func buildTable(cfg *config.Config) (*rotation.Table, error) {
	if cfg.Rotation.TableFile != "" {
		return rotation.LoadTable(cfg.Rotation.TableFile)
	}

	table := rotation.DefaultTable()
	if cfg.Rotation.NextMark != "" && cfg.Rotation.NextMark != table.NextMark() {
		table = table.WithNextMark(cfg.Rotation.NextMark)
	}
	return table, nil
}

// buildCardService wires the layered card data service from config.
func buildCardService(cfg *config.Config) (*cards.Service, error) {
	var opts []tcgio.Option
	if cfg.API.BaseURL != "" {
		opts = append(opts, tcgio.WithBaseURL(cfg.API.BaseURL))
	}
	if cfg.API.APIKey != "" {
		opts = append(opts, tcgio.WithAPIKey(cfg.API.APIKey))
	}
	client := tcgio.NewClient(opts...)

	var store *cards.Store
	if cfg.Cache.Enabled {
		dbPath := cfg.Cache.DBPath
		if dbPath == "" {
			var err error
			dbPath, err = config.DefaultDBPath()
			if err != nil {
				return nil, err
			}
		}
		var err error
		store, err = cards.OpenStore(dbPath)
		if err != nil {
			return nil, err
		}
	}

	svcConfig := cards.DefaultServiceConfig()
	svcConfig.EnableCache = cfg.Cache.Enabled
	if cfg.Cache.MaxSets > 0 {
		svcConfig.CacheSize = cfg.Cache.MaxSets
	}
	if ttl, err := cfg.GetCacheTTL(); err == nil {
		svcConfig.CacheTTL = ttl
	} else {
		svcConfig.CacheTTL = 24 * time.Hour
	}

	return cards.NewService(client, store, svcConfig), nil
}

// loadDeck reads and parses a deck list file, or stdin for "-".
func loadDeck(path string, table *rotation.Table) (*deckimport.ParseResult, error) {
	var text []byte
	var err error
	if path == "-" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read deck list: %w", err)
	}

	result := deckimport.NewParser(table).Parse(string(text))
	for _, warning := range result.Warnings {
		log.Printf("deck list: %s", warning)
	}
	return result, nil
}
