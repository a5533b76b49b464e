package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/config"
	"github.com/goutam1234567890/nirogGyan-Assignment/internal/service/directory"
	"github.com/goutam1234567890/nirogGyan-Assignment/internal/state"
	getAvailability "github.com/goutam1234567890/nirogGyan-Assignment/internal/usecase/get_availability"
	"github.com/goutam1234567890/nirogGyan-Assignment/pkg/logger"
)

func doctorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctors [term]",
		Short: "Search the doctor catalog by name or specialization",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			withDates, _ := cmd.Flags().GetBool("dates")

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log := logger.NewNop()

			doctors, err := loadCatalog(cmd.Context(), cfg, log)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			store := state.NewStore(doctors)
			dir := directory.NewService(store, log)
			resolver := getAvailability.NewResolver(log)

			term := ""
			if len(args) == 1 {
				term = args[0]
			}
			found := dir.Search(term)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			header := "ID\tNAME\tSPECIALIZATION\tSTATUS\tRATING"
			if withDates {
				header += "\tDATES"
			}
			fmt.Fprintln(w, header)

			for _, d := range found {
				line := fmt.Sprintf("%s\t%s\t%s\t%s\t%.1f", d.ID, d.Name, d.Specialization, d.AvailabilityStatus, d.Rating)
				if withDates {
					line += "\t" + strings.Join(resolver.AvailableDates(d), ",")
				}
				fmt.Fprintln(w, line)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d doctor(s) found\n", len(found))
			return nil
		},
	}
	cmd.Flags().Bool("dates", false, "Also print bookable dates (today onwards)")

	return cmd
}
