package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/launchpad/internal/venture"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage startup projects",
}

func init() {
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectSelectCmd)
	projectCmd.AddCommand(projectRenameCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects with progress and badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}

		current, err := a.store.CurrentID()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPROGRESS\tBADGES\tCURRENT")
		for _, p := range a.store.List() {
			marker := ""
			if p.ID == current {
				marker = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%d%%\t%d\t%s\n",
				p.ID, p.Name, venture.Progress(&p.Data), len(venture.Badges(&p.Data)), marker)
		}
		return w.Flush()
	},
}

var projectCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a project and make it current",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}

		p, err := a.store.Create(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("created %s (%s)\n", p.Name, p.ID)
		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a project as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}

		p, err := a.store.Get(args[0])
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

var projectRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}

		p, err := a.store.Rename(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("renamed %s to %s\n", p.ID, p.Name)
		return nil
	},
}

var projectSelectCmd = &cobra.Command{
	Use:   "select <id>",
	Short: "Switch the current project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}

		p, err := a.session.Use(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("current project: %s (%s)\n", p.Name, p.ID)
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}

		if err := a.store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Println("deleted", args[0])
		return nil
	},
}
