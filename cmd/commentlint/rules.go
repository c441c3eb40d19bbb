package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"commentlint/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the available content rules",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type ruleInfo struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Default  bool   `json:"default"`
	Message  string `json:"message"`
}

func collectRuleInfo() []ruleInfo {
	all := rules.All()
	out := make([]ruleInfo, 0, len(all))
	for _, r := range all {
		out = append(out, ruleInfo{
			Name:     r.Name,
			Code:     r.Code.ID(),
			Severity: r.Severity.String(),
			Default:  rules.IsDefault(r.Name),
			Message:  r.Message,
		})
	}
	return out
}

func runRules(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	infos := collectRuleInfo()

	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	case "pretty":
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tCODE\tDEFAULT\tMESSAGE")
		for _, r := range infos {
			def := "no"
			if r.Default {
				def = "yes"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Code, def, r.Message)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
