package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"ia-service/internal/domain/entity"
	"ia-service/internal/domain/simulation"
	"ia-service/internal/usecase"
)

// newSimulateCmd runs the engine locally, without auth or the HTTP layer.
func newSimulateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one simulated prediction and print it as JSON",
	}

	var month, year int
	sales := &cobra.Command{
		Use:   "sales",
		Short: "Sales prediction for a month and year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := newLocalService(opts, simulation.PolicySeed).PredictSales(cmd.Context(), entity.Caller{}, month, year)
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
	sales.Flags().IntVar(&month, "month", 0, "month (1-12)")
	sales.Flags().IntVar(&year, "year", 0, "year (1900-3000)")
	_ = sales.MarkFlagRequired("month")
	_ = sales.MarkFlagRequired("year")

	var cpf, policy string
	client := &cobra.Command{
		Use:   "client",
		Short: "Credit classification for a CPF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := simulation.ParseClientPolicy(policy)
			if err != nil {
				return err
			}
			out, err := newLocalService(opts, p).ClassifyClient(cmd.Context(), entity.Caller{}, cpf)
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
	client.Flags().StringVar(&cpf, "cpf", "", "CPF, formatted or digits only")
	client.Flags().StringVar(&policy, "policy", string(simulation.PolicySeed), "classification policy: seed or last_digit")
	_ = client.MarkFlagRequired("cpf")

	var product, period string
	demand := &cobra.Command{
		Use:   "demand",
		Short: "Demand forecast for a product over YYYY-MM or YYYY-MM:YYYY-MM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := newLocalService(opts, simulation.PolicySeed).ForecastDemand(cmd.Context(), entity.Caller{}, product, period)
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
	demand.Flags().StringVar(&product, "product", "", "product id")
	demand.Flags().StringVar(&period, "period", "", "YYYY-MM or YYYY-MM:YYYY-MM")
	_ = demand.MarkFlagRequired("product")
	_ = demand.MarkFlagRequired("period")

	var text string
	sentiment := &cobra.Command{
		Use:   "sentiment",
		Short: "Lexicon sentiment for a text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("text") {
				return errors.New("--text is required")
			}
			out, err := newLocalService(opts, simulation.PolicySeed).ClassifySentiment(cmd.Context(), entity.Caller{}, text)
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
	sentiment.Flags().StringVar(&text, "text", "", "text to classify")

	cmd.AddCommand(sales, client, demand, sentiment)
	return cmd
}

func newLocalService(opts *rootOptions, policy simulation.ClientPolicy) *usecase.PredictionService {
	return usecase.NewPredictionService(opts.logger, usecase.WithClientPolicy(policy))
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
