package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/tripleswitch/complianceos/pkg/rbac"
	"github.com/tripleswitch/complianceos/pkg/store"
)

// policyWatchCmd represents the policy watch command
var policyWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a policy file and reload the grants when it changes",
	Long: `Watch a policy file and replace the stored role grants whenever it is
written or replaced. A file that fails to parse is reported and the previous
grants stay in effect. Requires COMPLY_DATABASE_URL.

Example:
  complyctl policy watch /etc/complianceos/policy.yml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		grants, err := connectGrants()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch policy: %v\n", err)
			os.Exit(1)
		}

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		if err := watchPolicy(os.Stdout, grants, args[0], stop); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch policy: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	policyCmd.AddCommand(policyWatchCmd)
}

// watchPolicy loads filename once, then again on every change, until stop
// receives
func watchPolicy(w io.Writer, grants store.GrantStore, filename string, stop <-chan os.Signal) error {
	if err := loadPolicyFile(grants, filename); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors replace files, so watch the directory
	dir := filepath.Dir(filename)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	target := filepath.Clean(filename)

	fmt.Fprintf(w, "Watching %s for policy changes\n", filename)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			content, err := os.ReadFile(filename)
			if err != nil {
				fmt.Fprintf(w, "Error reading file: %v\n", err)
				continue
			}
			// Truncation shows up as a write of an empty file
			if len(bytes.TrimSpace(content)) == 0 {
				continue
			}
			fmt.Fprintf(w, "[%s] File modified, reloading policy...\n", time.Now().Format(time.RFC3339))
			if err := reseed(grants, content); err != nil {
				fmt.Fprintf(w, "Error loading policy: %v\n", err)
				continue
			}
			fmt.Fprintf(w, "Policy loaded successfully from %s\n", filename)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(w, "Watcher error: %v\n", err)
		case <-stop:
			fmt.Fprintln(w, "Shutting down...")
			return nil
		}
	}
}

func reseed(grants store.GrantStore, content []byte) error {
	p, err := rbac.ParsePolicy(bytes.NewReader(content))
	if err != nil {
		return err
	}
	return rbac.Seed(grants, p)
}
