package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"flexdate/internal/config"
	"flexdate/internal/date"
	"flexdate/internal/extractor"
	"flexdate/internal/reconciler"
	"flexdate/internal/render"
	"flexdate/internal/scoring"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "flexdate",
		Short: "Partial-date extraction, matching and reconciliation",
	}
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML parameter file (defaults are built in)")

	combineCmd.Flags().StringVarP(&combineFile, "file", "f", "", "Read one candidate text per line from a file")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(combineCmd)
}

// loadConfig loads parameters for the current invocation (even if defaults).
func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

var extractCmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Extract a partial date from free text",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		ext := extractor.NewWithPivot(cfg.Extractor.CenturyPivot)

		d := ext.Extract(strings.Join(args, " "))
		fmt.Println(render.Format(d))
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score [text] [text]",
	Short: "Score the similarity of two dates extracted from text",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		ext := extractor.NewWithPivot(cfg.Extractor.CenturyPivot)
		scorer := scoring.New(cfg.Scoring)

		a := ext.Extract(args[0])
		b := ext.Extract(args[1])
		fmt.Printf("%s vs %s\n", render.Format(a), render.Format(b))

		v := scorer.Score(a, b)
		c := color.New(color.FgGreen)
		if v < 0 {
			c = color.New(color.FgRed)
		}
		c.Printf("score: %.1f\n", v)
	},
}

var combineFile string

var combineCmd = &cobra.Command{
	Use:   "combine [text]...",
	Short: "Reconcile multiple date candidates for one event",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		ext := extractor.NewWithPivot(cfg.Extractor.CenturyPivot)

		texts := args
		if combineFile != "" {
			lines, err := readLines(combineFile)
			if err != nil {
				log.Fatalf("Failed to read %s: %v", combineFile, err)
			}
			texts = append(texts, lines...)
		}
		if len(texts) == 0 {
			log.Fatalf("No candidates given: pass texts as arguments or use --file")
		}

		candidates := make([]date.PartialDate, 0, len(texts))
		for _, text := range texts {
			d := ext.Extract(text)
			candidates = append(candidates, d)
			fmt.Printf("  %-30s -> %s\n", text, render.Format(d))
		}

		rec := reconciler.New(scoring.New(cfg.Scoring))
		combined, err := rec.Combine(candidates)
		if err != nil {
			log.Fatalf("Combine failed: %v", err)
		}
		color.New(color.FgGreen).Printf("combined: %s\n", render.Format(combined))
	},
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
