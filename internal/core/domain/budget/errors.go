package budget

import "errors"

var (
	ErrBudgetDoesNotExist      = errors.New("budget does not exist")
	ErrBudgetNameAlreadyExists = errors.New("budget name already exists")
	ErrBudgetPermission        = errors.New("budget belongs to another user")
	ErrProfileRequired         = errors.New("profile is required to create a budget")
)
