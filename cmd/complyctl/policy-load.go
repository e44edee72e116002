package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tripleswitch/complianceos/pkg/db"
	"github.com/tripleswitch/complianceos/pkg/rbac"
	"github.com/tripleswitch/complianceos/pkg/store"
	gormstore "github.com/tripleswitch/complianceos/pkg/store/gorm"
)

// policyLoadCmd represents the policy load command
var policyLoadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Replace the stored role grants with a policy file",
	Long: `Replace the role grants in the database with those of a policy file.

Grants toggled from the settings page are overwritten. Roles the file does
not mention lose every permission. Requires COMPLY_DATABASE_URL.

Example:
  complyctl policy load policy.yml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		grants, err := connectGrants()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load policy: %v\n", err)
			os.Exit(1)
		}
		if err := loadPolicyFile(grants, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load policy: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Policy loaded from %s\n", args[0])
	},
}

func init() {
	policyCmd.AddCommand(policyLoadCmd)
}

func connectGrants() (store.GrantStore, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return nil, err
	}
	return gormstore.NewGrantStore(database), nil
}

func loadPolicyFile(grants store.GrantStore, filename string) error {
	p, err := rbac.LoadPolicy(filename)
	if err != nil {
		return err
	}
	return rbac.Seed(grants, p)
}
