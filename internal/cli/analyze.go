package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"resume-analyzer/internal/ai/gemini"
	"resume-analyzer/internal/analyzer"
	"resume-analyzer/internal/logger"
	"resume-analyzer/internal/positions"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "analyze a plain-text resume and print the assessment as JSON",
	Long: "Reads resume text from the given file, or from stdin when the file " +
		"is omitted or '-', and prints the full analysis result as JSON.",
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringP("position", "p", "", "target position (prompts when omitted)")
	analyzeCmd.Flags().Bool("compact", false, "print compact JSON instead of indented")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	config, err := getConfig()
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	cfg := positions.Default()
	if config.Positions != "" {
		cfg, err = positions.Load(config.Positions)
		if err != nil {
			return err
		}
	}

	text, err := readResume(args)
	if err != nil {
		return err
	}

	position, err := resolvePosition(cmd, cfg)
	if err != nil {
		return err
	}

	opts := []analyzer.Option{analyzer.WithLogger(log)}
	if engine := buildEngine(cmd.Context(), config, log); engine != nil {
		opts = append(opts, analyzer.WithSimilarityEngine(engine))
	}

	requestID := uuid.NewString()
	log.Info("analyzing resume",
		zap.String("request_id", requestID),
		zap.String("position", position),
	)

	result, err := analyzer.New(cfg, opts...).Analyze(cmd.Context(), text, position)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	if compact, _ := cmd.Flags().GetBool("compact"); !compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(result)
}

func readResume(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read resume from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read resume file: %w", err)
	}
	return string(data), nil
}

// resolvePosition takes the --position flag when given, otherwise prompts
// interactively over the configured positions.
func resolvePosition(cmd *cobra.Command, cfg *positions.Config) (string, error) {
	position, _ := cmd.Flags().GetString("position")
	if position != "" {
		return position, nil
	}

	prompt := promptui.Select{
		Label: "Target position",
		Items: cfg.Names(),
	}
	_, selected, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("select position: %w", err)
	}
	return selected, nil
}

// buildEngine wires the Gemini similarity engine when the config enables it.
// Returning nil keeps the analyzer on its offline default.
func buildEngine(ctx context.Context, config *Config, log *zap.Logger) *gemini.Engine {
	if config.AI == nil || !config.AI.Enabled || config.AI.Gemini == nil {
		return nil
	}
	generator, err := gemini.NewGenerator(ctx, config.AI.Gemini.APIKey, config.AI.Gemini.Model)
	if err != nil {
		log.Warn("gemini engine unavailable, using offline similarity", zap.Error(err))
		return nil
	}
	log.Info("using gemini similarity engine", zap.String("model", generator.Model()))
	return gemini.NewEngine(generator, log)
}
