package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stixkit/pattern"
)

var patternCmd = &cobra.Command{
	Use:   "pattern",
	Short: "Work with STIX indicator patterns",
}

var patternFile string

var patternValidateCmd = &cobra.Command{
	Use:   "validate [pattern ...]",
	Short: "Validate STIX pattern syntax",
	Long: `Validate one or more STIX pattern expressions, given as arguments or
one per line in a file (--file). Exit status is non-zero when any pattern
is invalid.`,
	RunE: runPatternValidate,
}

func init() {
	patternValidateCmd.Flags().StringVarP(&patternFile, "file", "f", "", "read patterns from file, one per line")
	patternCmd.AddCommand(patternValidateCmd)
	rootCmd.AddCommand(patternCmd)
}

type patternResult struct {
	Pattern string `json:"pattern"`
	Valid   bool   `json:"valid"`
	Error   string `json:"error,omitempty"`
}

func collectPatterns(args []string) ([]string, error) {
	patterns := append([]string(nil), args...)

	if patternFile != "" {
		f, err := os.Open(patternFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open pattern file: %w", err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			patterns = append(patterns, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read pattern file: %w", err)
		}
	}

	if len(patterns) == 0 {
		return nil, fmt.Errorf("no patterns given; pass them as arguments or via --file")
	}
	return patterns, nil
}

func runPatternValidate(cmd *cobra.Command, args []string) error {
	patterns, err := collectPatterns(args)
	if err != nil {
		return err
	}

	// Feed exports repeat patterns; the cached validator skips re-parsing.
	validator, err := pattern.NewCachedValidator(cfg.Pattern.CacheSize)
	if err != nil {
		return err
	}

	results := make([]patternResult, 0, len(patterns))
	invalid := 0
	for _, p := range patterns {
		result := patternResult{Pattern: p, Valid: true}
		if err := validator.Validate(p); err != nil {
			result.Valid = false
			result.Error = err.Error()
			invalid++
		}
		results = append(results, result)
	}

	if cfg.Output.JSON {
		encoded, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
	} else {
		for _, result := range results {
			if result.Valid {
				successColor.Print("valid    ")
				fmt.Println(result.Pattern)
			} else {
				errorColor.Print("invalid  ")
				fmt.Printf("%s\n", result.Pattern)
				warningColor.Printf("         %s\n", result.Error)
			}
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d patterns invalid", invalid, len(patterns))
	}
	return nil
}
