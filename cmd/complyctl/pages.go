package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/rbac"
)

// pagesCmd represents the pages command
var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Inspect page access rules",
	Long:  `Inspect which pages and navigation entries a role can reach.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'pages' requires a subcommand (check, nav)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

var pagesCheckCmd = &cobra.Command{
	Use:   "check <role> <page>",
	Short: "Check whether a role may open a page",
	Long: `Check whether a role may open a page. Exits non-zero when denied.

Example:
  complyctl pages check BREWER /settings`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		allowed, err := checkPage(os.Stdout, args[0], args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if !allowed {
			os.Exit(1)
		}
	},
}

var pagesNavCmd = &cobra.Command{
	Use:   "nav <role>",
	Short: "Print the sidebar a role sees",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := printNavigation(os.Stdout, args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(pagesCmd)
	pagesCmd.AddCommand(pagesCheckCmd)
	pagesCmd.AddCommand(pagesNavCmd)
}

func parseRole(name string) (model.Role, error) {
	role, err := model.RoleString(name)
	if err != nil {
		return 0, fmt.Errorf("%w: role %q", model.ErrUnknownEnumValue, name)
	}
	return role, nil
}

func checkPage(w io.Writer, roleName, page string) (bool, error) {
	role, err := parseRole(roleName)
	if err != nil {
		return false, err
	}
	allowed := rbac.IsPageAllowed(role, page)
	verdict := "denied"
	if allowed {
		verdict = "allowed"
	}
	fmt.Fprintf(w, "%s %s: %s\n", role, page, verdict)
	return allowed, nil
}

func printNavigation(w io.Writer, roleName string) error {
	role, err := parseRole(roleName)
	if err != nil {
		return err
	}
	for _, section := range rbac.NavigationFor(role) {
		fmt.Fprintln(w, section.Title)
		for _, item := range section.Items {
			fmt.Fprintf(w, "  %-16s %s\n", item.Label, item.Path)
		}
	}
	return nil
}
