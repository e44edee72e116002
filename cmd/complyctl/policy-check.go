package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tripleswitch/complianceos/pkg/rbac"
)

// policyCheckCmd represents the policy check command
var policyCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a policy file and print its grants",
	Long: `Validate a policy file and print the grants it declares.

Unknown roles or permissions and owner entries are rejected. Without a
file the built-in policy is printed.

Example:
  complyctl policy check policy.yml`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var filename string
		if len(args) > 0 {
			filename = args[0]
		}
		if err := checkPolicy(os.Stdout, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid policy: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	policyCmd.AddCommand(policyCheckCmd)
}

func checkPolicy(w io.Writer, filename string) error {
	p, err := rbac.LoadPolicy(filename)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}
