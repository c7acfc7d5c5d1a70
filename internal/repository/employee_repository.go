package repository

import (
	"skill-manager/internal/domain"
	"skill-manager/internal/domain/employee"
	"skill-manager/internal/store"
)

type EmployeeStore = store.Memory[employee.ID, employee.Employee]

type EmployeeRepository interface {
	CreateEmployee(in employee.Employee) employee.Employee
	GetEmployee(id employee.ID) (employee.Employee, bool)
	DeleteEmployee(id employee.ID) bool
	FindEmployees(page store.Page) []employee.Employee
	// ModifyEmployee holds the employee store's write lock while fn runs and
	// keeps fn's edits only when it returns nil.
	ModifyEmployee(id employee.ID, fn func(e *employee.Employee) error) error
}

func NewEmployeeStore() *EmployeeStore {
	return store.NewMemory(domain.NewID[employee.Employee], employee.Employee.Clone)
}

type MemoryEmployeeRepository struct {
	store *EmployeeStore
}

func NewMemoryEmployeeRepository(s *EmployeeStore) *MemoryEmployeeRepository {
	return &MemoryEmployeeRepository{store: s}
}

func (r *MemoryEmployeeRepository) CreateEmployee(in employee.Employee) employee.Employee {
	return r.store.Add(func(id employee.ID) employee.Employee {
		in.ID = id
		if in.Skills == nil {
			in.Skills = map[string]employee.Knowledge{}
		}
		if in.Projects == nil {
			in.Projects = []employee.ProjectAssignment{}
		}
		return in
	})
}

func (r *MemoryEmployeeRepository) GetEmployee(id employee.ID) (employee.Employee, bool) {
	return r.store.Get(id)
}

func (r *MemoryEmployeeRepository) DeleteEmployee(id employee.ID) bool {
	return r.store.Delete(id)
}

func (r *MemoryEmployeeRepository) FindEmployees(page store.Page) []employee.Employee {
	return r.store.Find(page)
}

func (r *MemoryEmployeeRepository) ModifyEmployee(id employee.ID, fn func(e *employee.Employee) error) error {
	return r.store.Update(func(tx *store.Tx[employee.ID, employee.Employee]) error {
		cur, ok := tx.Get(id)
		if !ok {
			return domain.ErrEmployeeNotFound
		}
		if err := fn(&cur); err != nil {
			return err
		}
		tx.Put(id, cur)
		return nil
	})
}
