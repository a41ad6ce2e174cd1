package insightctl

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/pkg/types"
)

// buildRootCmd is a convenience for the stock configuration.
func buildRootCmd() *cobra.Command { return buildRootCmdWith(defaultConfig()) }

// buildRootCmdWith constructs the Cobra command tree over cfg. Persistent
// flags write straight into cfg, so every RunE sees the final values.
func buildRootCmdWith(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "insightctl",
		Short:         "Operator CLI for the insightd FHIR data API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.Server, "server", cfg.Server, "insightd base URL (defaults INSIGHTCTL_SERVER or http://127.0.0.1:8000)")
	root.PersistentFlags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Request timeout")

	databasesCmd := &cobra.Command{Use: "databases", Short: "List databases in the data catalog", Example: "  insightctl databases", RunE: func(cmd *cobra.Command, args []string) error {
		dbs, err := cfg.client().Databases(cmd.Context())
		if err != nil {
			return err
		}
		printLines(cmd, dbs)
		return nil
	}}
	root.AddCommand(databasesCmd)

	tablesCmd := &cobra.Command{Use: "tables [database]", Short: "List tables of a database", Example: "  insightctl tables healthlake_db", Args: cobra.MaximumNArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		tables, err := cfg.client().Tables(cmd.Context(), databaseArg(args))
		if err != nil {
			return err
		}
		printLines(cmd, tables)
		return nil
	}}
	root.AddCommand(tablesCmd)

	patientsCmd := &cobra.Command{Use: "patients [database]", Short: "List patient ids of a database", Example: "  insightctl patients healthlake_db", Args: cobra.MaximumNArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := cfg.client().Patients(cmd.Context(), databaseArg(args))
		if err != nil {
			return err
		}
		printLines(cmd, ids)
		return nil
	}}
	root.AddCommand(patientsCmd)

	var (
		sumDatabase     string
		sumTables       string
		sumPatient      string
		sumTemplateFile string
		sumModel        string
		sumSummaryModel string
		sumJSON         bool
	)
	summaryCmd := &cobra.Command{Use: "summary", Short: "Summarize one patient's FHIR sections", Example: "  insightctl summary --patient 52f7cd65 --tables patient,condition", RunE: func(cmd *cobra.Command, args []string) error {
		req := types.SummaryRequest{
			Database:     sumDatabase,
			Tables:       splitList(sumTables),
			PatientID:    sumPatient,
			Model:        sumModel,
			SummaryModel: sumSummaryModel,
		}
		if sumTemplateFile != "" {
			b, err := os.ReadFile(sumTemplateFile)
			if err != nil {
				return fmt.Errorf("read template: %w", err)
			}
			req.PromptTemplate = string(b)
		}
		resp, err := cfg.client().Summary(cmd.Context(), req)
		if err != nil {
			return err
		}
		if sumJSON {
			return printJSON(cmd, resp)
		}
		fmt.Fprintln(cmd.OutOrStdout(), resp.ConsolidatedSummary)
		for table, text := range resp.FHIRSectionSummary {
			fmt.Fprintf(cmd.OutOrStdout(), "\n[%s]\n%s\n", table, text)
		}
		return nil
	}}
	summaryCmd.Flags().StringVar(&sumDatabase, "database", "", "Database holding the FHIR tables (default server-side)")
	summaryCmd.Flags().StringVar(&sumTables, "tables", "", "Comma-separated FHIR resource tables to summarize")
	summaryCmd.Flags().StringVar(&sumPatient, "patient", "", "Patient id")
	summaryCmd.Flags().StringVar(&sumTemplateFile, "template-file", "", "File holding a consolidation prompt template")
	summaryCmd.Flags().StringVar(&sumModel, "model", "", "Consolidation model id (default server-side)")
	summaryCmd.Flags().StringVar(&sumSummaryModel, "summary-model", "", "Per-section model id (default server-side)")
	summaryCmd.Flags().BoolVar(&sumJSON, "json", false, "Print the raw JSON response")
	_ = summaryCmd.MarkFlagRequired("patient")
	_ = summaryCmd.MarkFlagRequired("tables")
	root.AddCommand(summaryCmd)

	var (
		chatQuestion    string
		chatContextFile string
		chatModel       string
		chatJSON        bool
	)
	chatCmd := &cobra.Command{Use: "chat", Short: "Ask a question about a medical record", Example: "  insightctl chat --question 'Which medications?' --context-file record.txt", RunE: func(cmd *cobra.Command, args []string) error {
		req := types.ChatRequest{Question: chatQuestion, Model: chatModel}
		if chatContextFile != "" {
			b, err := os.ReadFile(chatContextFile)
			if err != nil {
				return fmt.Errorf("read context: %w", err)
			}
			req.Context = string(b)
		}
		resp, err := cfg.client().Chat(cmd.Context(), req)
		if err != nil {
			return err
		}
		if chatJSON {
			return printJSON(cmd, resp)
		}
		fmt.Fprintln(cmd.OutOrStdout(), resp.Response)
		return nil
	}}
	chatCmd.Flags().StringVar(&chatQuestion, "question", "", "Question to ask")
	chatCmd.Flags().StringVar(&chatContextFile, "context-file", "", "File holding the record text the question is about")
	chatCmd.Flags().StringVar(&chatModel, "model", "", "Model id (default server-side)")
	chatCmd.Flags().BoolVar(&chatJSON, "json", false, "Print the raw JSON response")
	_ = chatCmd.MarkFlagRequired("question")
	root.AddCommand(chatCmd)

	healthCmd := &cobra.Command{Use: "health", Short: "Check whether the server is ready", RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.client().Health(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ready")
		return nil
	}}
	root.AddCommand(healthCmd)

	// completion command
	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(os.Stdout, true) }})
	completionCmd.AddCommand(&cobra.Command{Use: "powershell", Short: "PowerShell completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenPowerShellCompletionWithDesc(os.Stdout) }})
	root.AddCommand(completionCmd)

	return root
}

func databaseArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "healthlake_db"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func printLines(cmd *cobra.Command, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
