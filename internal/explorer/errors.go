package explorer

import (
	"errors"
	"fmt"
)

// Failure categories for explorer operations. Every fallible operation
// validates before touching the store; failures leave the column sequence
// renderable and the vault unchanged.
var (
	ErrNotFound      = errors.New("not found")
	ErrNameCollision = errors.New("name already exists")
	ErrInvalidName   = errors.New("invalid name")
	ErrCyclicMove    = errors.New("cannot move a folder into itself")
	ErrStorage       = errors.New("storage failure")
)

func notFound(path string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, path)
}

func nameCollision(path string) error {
	return fmt.Errorf("%w: %s", ErrNameCollision, path)
}

func invalidName(name string) error {
	return fmt.Errorf("%w: %q", ErrInvalidName, name)
}

func cyclicMove(source, target string) error {
	return fmt.Errorf("%w: %s into %s", ErrCyclicMove, source, target)
}

func storageFailure(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
