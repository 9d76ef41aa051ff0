package pack

import "errors"

var (
	// ErrEmptyID is returned when appending a component without an id.
	ErrEmptyID = errors.New("component has an empty id")
	// ErrDuplicateID is returned when appending a component whose id is already present.
	ErrDuplicateID = errors.New("component is already present")
	// ErrNotFound is returned for unknown indexes, ids or versions.
	ErrNotFound = errors.New("component not found")
	// ErrNotRemovable is returned when removing a component that must stay.
	ErrNotRemovable = errors.New("component is not removable")
	// ErrNotCustomizable is returned when customizing a component without resolvable metadata.
	ErrNotCustomizable = errors.New("component is not customizable")
	// ErrNotRevertible is returned when reverting a component that has nothing to revert to.
	ErrNotRevertible = errors.New("component is not revertible")
	// ErrVersionNotChangeable is returned when pinning a version on a custom
	// component or one without selectable versions.
	ErrVersionNotChangeable = errors.New("component version is not changeable")
	// ErrInvalidPackFile is returned when mmc-pack.json cannot be used. The
	// whole file is rejected.
	ErrInvalidPackFile = errors.New("invalid pack file")
	// ErrNoPackFile is returned by Load when there is no pack file and no
	// migrator to create one.
	ErrNoPackFile = errors.New("pack file does not exist")
)
