package cli

import (
	"skill-manager/internal/database/seeder"

	"github.com/spf13/cobra"
)

func newSeedCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add the default skill catalogue. Labels already present are skipped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := s.stores(cmd.Context())
			if err != nil {
				return err
			}
			res, err := seeder.Runner{Seeders: seeder.Defaults()}.Run(cmd.Context(), seeder.Target{Skills: c.Skills})
			if err != nil {
				return err
			}
			return s.print(res)
		},
	}
}
