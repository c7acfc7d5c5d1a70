package cli

import (
	"fmt"

	"skill-manager/internal/domain/project"
	"skill-manager/internal/store"
	"skill-manager/internal/usecase"

	"github.com/spf13/cobra"
)

func newProjectCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Add, find, get and delete projects",
	}

	var label, description string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := s.stores(cmd.Context())
			if err != nil {
				return err
			}
			created, err := c.Projects.AddProject(cmd.Context(), usecase.AddProjectInput{Label: label, Description: description})
			if err != nil {
				return err
			}
			return s.print(created)
		},
	}
	add.Flags().StringVarP(&label, "label", "l", "", "Project label")
	add.Flags().StringVarP(&description, "description", "d", "", "Project description")
	_ = add.MarkFlagRequired("label")

	var page, size int
	find := &cobra.Command{
		Use:   "find",
		Short: "List projects in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := s.stores(cmd.Context())
			if err != nil {
				return err
			}
			found, err := c.Projects.FindProjects(cmd.Context(), pageFromFlags(cmd, page, size, store.All))
			if err != nil {
				return err
			}
			return s.print(found)
		},
	}
	find.Flags().IntVarP(&page, "page", "p", 0, "Page number, starting at 0")
	find.Flags().IntVarP(&size, "size", "s", 0, "Page size, 0 for all")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := project.ParseID(args[0])
			if err != nil {
				return err
			}
			c, err := s.stores(cmd.Context())
			if err != nil {
				return err
			}
			found, err := c.Projects.GetProject(cmd.Context(), id)
			if err != nil {
				return err
			}
			return s.print(found)
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project. Employees keep their copies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := project.ParseID(args[0])
			if err != nil {
				return err
			}
			c, err := s.stores(cmd.Context())
			if err != nil {
				return err
			}
			if err := c.Projects.DeleteProject(cmd.Context(), id); err != nil {
				return err
			}
			return s.print(fmt.Sprintf("Deleted project %s", id))
		},
	}

	cmd.AddCommand(add, find, get, del)
	return cmd
}
