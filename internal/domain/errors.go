package domain

import "errors"

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrSelfDependency      = errors.New("task cannot depend on itself")
	ErrDependencyCycle     = errors.New("dependency would create a cycle")
	ErrDuplicateDependency = errors.New("dependency already exists")
	ErrDependencyNotFound  = errors.New("dependency not found")
	ErrInvalidEndpoint     = errors.New("invalid endpoint combination")
	ErrInvalidRelation     = errors.New("invalid relation kind")
	ErrEmptyTitle          = errors.New("task title is empty")
	ErrIndexOutOfRange     = errors.New("row index out of range")
	ErrNoDrawInProgress    = errors.New("no dependency draw in progress")
)
