package cli

import (
	"fmt"

	"skill-manager/internal/domain"
	"skill-manager/internal/domain/employee"
	"skill-manager/internal/domain/project"
	"skill-manager/internal/domain/skill"
	"skill-manager/internal/store"
	"skill-manager/internal/usecase"

	"github.com/spf13/cobra"
)

func newEmployeeCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage employees and their project and skill assignments",
	}
	cmd.AddCommand(
		newEmployeeAddCommand(s),
		newEmployeeFindCommand(s),
		newEmployeeGetCommand(s),
		newEmployeeDeleteCommand(s),
		newAssignProjectCommand(s),
		newAssignSkillCommand(s),
	)
	return cmd
}

func newEmployeeAddCommand(s *session) *cobra.Command {
	var in usecase.AddEmployeeInput
	add := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := s.stores(cmd.Context())
			if err != nil {
				return err
			}
			created, err := c.Employees.AddEmployee(cmd.Context(), in)
			if err != nil {
				return err
			}
			return s.print(created)
		},
	}
	add.Flags().StringVarP(&in.FirstName, "first-name", "f", "", "First name")
	add.Flags().StringVarP(&in.LastName, "last-name", "l", "", "Last name")
	add.Flags().StringVar(&in.Title, "title", "", "Job title")
	add.Flags().StringVar(&in.Email, "email", "", "Email address")
	add.Flags().StringVar(&in.Telephone, "telephone", "", "Telephone number")
	_ = add.MarkFlagRequired("first-name")
	return add
}

func newEmployeeFindCommand(s *session) *cobra.Command {
	var page, size int
	find := &cobra.Command{
		Use:   "find",
		Short: "List employees in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := s.stores(cmd.Context())
			if err != nil {
				return err
			}
			found, err := c.Employees.FindEmployees(cmd.Context(), pageFromFlags(cmd, page, size, store.All))
			if err != nil {
				return err
			}
			return s.print(found)
		},
	}
	find.Flags().IntVarP(&page, "page", "p", 0, "Page number, starting at 0")
	find.Flags().IntVarP(&size, "size", "s", 0, "Page size, 0 for all")
	return find
}

func newEmployeeGetCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := employee.ParseID(args[0])
			if err != nil {
				return err
			}
			c, err := s.stores(cmd.Context())
			if err != nil {
				return err
			}
			found, err := c.Employees.GetEmployee(cmd.Context(), id)
			if err != nil {
				return err
			}
			return s.print(found)
		},
	}
}

func newEmployeeDeleteCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := employee.ParseID(args[0])
			if err != nil {
				return err
			}
			c, err := s.stores(cmd.Context())
			if err != nil {
				return err
			}
			if err := c.Employees.DeleteEmployee(cmd.Context(), id); err != nil {
				return err
			}
			return s.print(fmt.Sprintf("Deleted employee %s", id))
		},
	}
}

func newAssignProjectCommand(s *session) *cobra.Command {
	var employeeID, projectID, startDate, endDate string
	assign := &cobra.Command{
		Use:   "assign-project <contribution>",
		Short: "Record that an employee worked on a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eid, err := employee.ParseID(employeeID)
			if err != nil {
				return err
			}
			pid, err := project.ParseID(projectID)
			if err != nil {
				return err
			}
			start, err := domain.ParseDate("start_date", startDate)
			if err != nil {
				return err
			}
			end, err := domain.ParseOptionalDate("end_date", endDate)
			if err != nil {
				return err
			}

			c, err := s.stores(cmd.Context())
			if err != nil {
				return err
			}
			assigned, err := c.Assignments.AssignProjectToEmployee(cmd.Context(), eid, usecase.AssignProjectInput{
				ProjectID:    pid,
				Contribution: args[0],
				StartDate:    start,
				EndDate:      end,
			})
			if err != nil {
				return err
			}
			return s.print(assigned)
		},
	}
	assign.Flags().StringVarP(&employeeID, "employee-id", "e", "", "Employee id")
	assign.Flags().StringVarP(&projectID, "project-id", "p", "", "Project id")
	assign.Flags().StringVarP(&startDate, "start-date", "d", "", "Start date, YYYY-MM-DD")
	assign.Flags().StringVar(&endDate, "end-date", "", "End date, YYYY-MM-DD")
	_ = assign.MarkFlagRequired("employee-id")
	_ = assign.MarkFlagRequired("project-id")
	_ = assign.MarkFlagRequired("start-date")
	return assign
}

func newAssignSkillCommand(s *session) *cobra.Command {
	var employeeID, skillID string
	var level int
	assign := &cobra.Command{
		Use:   "assign-skill",
		Short: "Set an employee's level for a skill",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eid, err := employee.ParseID(employeeID)
			if err != nil {
				return err
			}
			sid, err := skill.ParseID(skillID)
			if err != nil {
				return err
			}

			c, err := s.stores(cmd.Context())
			if err != nil {
				return err
			}
			assigned, err := c.Assignments.AssignSkillToEmployee(cmd.Context(), eid, usecase.AssignSkillInput{
				SkillID: sid,
				Level:   level,
			})
			if err != nil {
				return err
			}
			return s.print(assigned)
		},
	}
	assign.Flags().StringVarP(&employeeID, "employee-id", "e", "", "Employee id")
	assign.Flags().StringVarP(&skillID, "skill-id", "s", "", "Skill id")
	assign.Flags().IntVarP(&level, "skill-level", "l", 0, "Skill level")
	_ = assign.MarkFlagRequired("employee-id")
	_ = assign.MarkFlagRequired("skill-id")
	_ = assign.MarkFlagRequired("skill-level")
	return assign
}
