package cmd

import (
	"context"
	"encoding/json"
	"io"

	"stockwise/internal/risk"
	"stockwise/internal/service"
	"stockwise/pkg/logger"

	"github.com/spf13/cobra"
)

var assessAnswers map[string]string

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Score a risk questionnaire answer set and print the profile",
	Example: `  stockwise assess --answer experience=some,risk=wait,goal=balanced \
    --answer timeHorizon=long,volatility=maybe`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssess(cmd.Context(), cmd.OutOrStdout(), assessAnswers)
	},
}

func init() {
	assessCmd.Flags().StringToStringVarP(&assessAnswers, "answer", "a", nil, "question=value pairs")
}

func runAssess(ctx context.Context, out io.Writer, answers map[string]string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	svc := service.NewRiskService(logger.NewNop(), nil)

	result, err := svc.Assess(ctx, risk.AnswerSet(answers))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
