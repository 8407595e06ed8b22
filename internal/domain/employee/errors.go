package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee record not found")
	ErrEmployeeCodeExists = errors.New("employee ID already exists")
	ErrEmailExists        = errors.New("email already registered to another employee")
	ErrShiftNotFound      = errors.New("assigned shift does not exist")
	ErrCannotDeleteSelf   = errors.New("cannot delete your own employee record")
	ErrNoLinkedEmployee   = errors.New("no employee record is linked to this account")
)
