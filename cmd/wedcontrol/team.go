package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmynk/wedcontrol/internal/models"
)

func newTeamCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage the organizer roster",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List team members",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			store, closeStore, err := opts.openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, m := range store.Team() {
				fmt.Fprintf(w, "%s\t%s\n", m.ID, m.Name)
			}
			return w.Flush()
		},
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a team member",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return fmt.Errorf("name required")
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			store, closeStore, err := opts.openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			m := store.AddMember(cmd.Context(), models.TeamMember{Name: name})
			fmt.Fprintln(cmd.OutOrStdout(), m.ID)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <member-id>",
		Short: "Remove a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			store, closeStore, err := opts.openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			before := len(store.Team())
			if after := store.RemoveMember(cmd.Context(), args[0]); len(after) == before {
				return fmt.Errorf("member %q not found", args[0])
			}
			return nil
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}
