package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tripleswitch/complianceos/pkg/config"
	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/rbac"
	"github.com/tripleswitch/complianceos/pkg/store"
	"github.com/tripleswitch/complianceos/pkg/store/memory"
)

// permissionsCmd represents the permissions command
var permissionsCmd = &cobra.Command{
	Use:   "permissions [role]",
	Short: "Show the role by permission matrix",
	Long: `Show the role by permission matrix.

With COMPLY_DATABASE_URL set the stored grants are shown, including changes
made from the settings page. Otherwise the grants come from
COMPLY_POLICY_FILE or the built-in policy.

Example:
  complyctl permissions
  complyctl permissions BREWER --output json`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		var role string
		if len(args) > 0 {
			role = args[0]
		}
		if err := showPermissions(os.Stdout, role, output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to show permissions: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(permissionsCmd)
	permissionsCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

func showPermissions(w io.Writer, role, output string) error {
	cfg := config.Get()

	var grants store.GrantStore
	if cfg.DatabaseURL != "" {
		g, err := connectGrants()
		if err != nil {
			return err
		}
		grants = g
	} else {
		g := memory.NewGrantStore()
		if err := loadPolicyFile(g, cfg.PolicyFile); err != nil {
			return err
		}
		grants = g
	}
	return writeMatrix(w, rbac.NewEvaluator(grants), role, output)
}

func writeMatrix(w io.Writer, ev *rbac.Evaluator, role, output string) error {
	rows, err := ev.Matrix()
	if err != nil {
		return err
	}
	if role != "" {
		r, err := model.RoleString(role)
		if err != nil {
			return fmt.Errorf("%w: role %q", model.ErrUnknownEnumValue, role)
		}
		for _, row := range rows {
			if row.Role == r {
				rows = []rbac.MatrixRow{row}
				break
			}
		}
	}

	if output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	for _, row := range rows {
		header := row.Role.String()
		if row.Immutable {
			header += " (immutable)"
		}
		fmt.Fprintln(w, header)
		for _, p := range rbac.Catalog() {
			mark := " "
			if row.Grants[p.ID.String()] {
				mark = "x"
			}
			fmt.Fprintf(w, "  [%s] %-20s %s\n", mark, p.ID, p.Label)
		}
	}
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "%d role(s), %d permission(s)\n", len(rows), len(rbac.Catalog()))
	return nil
}
