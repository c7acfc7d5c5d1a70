package cli

import (
	"skill-manager/internal/store"

	"github.com/spf13/cobra"
)

func pageFromFlags(cmd *cobra.Command, page, size int, def store.Page) store.Page {
	p := def
	if cmd.Flags().Changed("page") {
		p.Number = page
	}
	if cmd.Flags().Changed("size") {
		p.Size = size
	}
	return p
}
