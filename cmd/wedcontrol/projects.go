package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmynk/wedcontrol/internal/calculator"
	"github.com/mmynk/wedcontrol/internal/export"
	"github.com/mmynk/wedcontrol/internal/models"
)

func newProjectsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Inspect stored projects",
	}

	var archived bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List active (or archived) projects",
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

			active, arch := calculator.Partition(store.List())
			projects := active
			if archived {
				projects = arch
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCOUPLE\tDATE\tVENUE\tORGANIZER\tPAID")
			for _, p := range projects {
				fmt.Fprintf(w, "%s\t%s & %s\t%s\t%s\t%s\t%.0f%%\n",
					p.ID,
					p.GroomName, p.BrideName,
					p.Date.Format("2006-01-02"),
					p.VenueName,
					p.OrganizerName,
					calculator.PercentPaid(p.Expenses)*100,
				)
			}
			return w.Flush()
		},
	}
	list.Flags().BoolVar(&archived, "archived", false, "list archived projects instead")

	cmd.AddCommand(list)
	return cmd
}

func newExportCmd(opts *options) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export <project-id> <tasks|budget|guests|timing>",
		Short: "Export one view of a project as CSV or XLSX",
		Args:  cobra.ExactArgs(2),
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

			p, ok := store.Get(args[0])
			if !ok {
				return fmt.Errorf("project %q not found", args[0])
			}
			return writeExport(cmd, p, export.View(args[1]), export.Format(format), out)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatCSV), "file format (csv, xlsx)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: <view>.<format>)")
	return cmd
}

func writeExport(cmd *cobra.Command, p models.Project, view export.View, format export.Format, out string) error {
	if out == "" {
		out = export.Filename(view, format)
	}
	if out == "-" {
		return export.Write(cmd.OutOrStdout(), p, view, format)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := export.Write(f, p, view, format); err != nil {
		f.Close()
		os.Remove(out)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
	return nil
}
