package cli

import (
	"fmt"

	"skill-manager/internal/domain/skill"
	"skill-manager/internal/usecase"

	"github.com/spf13/cobra"
)

func newSkillCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill",
		Short: "Add, find, get and delete skills",
	}

	add := &cobra.Command{
		Use:   "add <label>",
		Short: "Add a skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.stores(cmd.Context())
			if err != nil {
				return err
			}
			created, err := c.Skills.AddSkill(cmd.Context(), usecase.AddSkillInput{Label: args[0]})
			if err != nil {
				return err
			}
			return s.print(created)
		},
	}

	var page, size int
	find := &cobra.Command{
		Use:   "find",
		Short: "List skills in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := s.stores(cmd.Context())
			if err != nil {
				return err
			}
			found, err := c.Skills.FindSkills(cmd.Context(), pageFromFlags(cmd, page, size, usecase.DefaultSkillPage))
			if err != nil {
				return err
			}
			return s.print(found)
		},
	}
	find.Flags().IntVarP(&page, "page", "p", 0, "Page number, starting at 0")
	find.Flags().IntVarP(&size, "size", "s", usecase.DefaultSkillPage.Size, "Page size, 0 for all")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := skill.ParseID(args[0])
			if err != nil {
				return err
			}
			c, err := s.stores(cmd.Context())
			if err != nil {
				return err
			}
			found, err := c.Skills.GetSkill(cmd.Context(), id)
			if err != nil {
				return err
			}
			return s.print(found)
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a skill. Deleting an unknown id succeeds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := skill.ParseID(args[0])
			if err != nil {
				return err
			}
			c, err := s.stores(cmd.Context())
			if err != nil {
				return err
			}
			if err := c.Skills.DeleteSkill(cmd.Context(), id); err != nil {
				return err
			}
			return s.print(fmt.Sprintf("Deleted skill %s", id))
		},
	}

	cmd.AddCommand(add, find, get, del)
	return cmd
}
