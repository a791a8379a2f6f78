package config

import "errors"

// Sentinel errors returned (wrapped) by Read. Match with errors.Is.
var (
	// ErrPathIsDirectory indicates the config path exists but is not a file.
	ErrPathIsDirectory = errors.New("config path is a directory")

	// ErrParse indicates the config file is not valid TOML or does not match
	// the expected structure.
	ErrParse = errors.New("config parse error")

	// ErrDuplicateItemName indicates two items share a name.
	ErrDuplicateItemName = errors.New("duplicate item name")

	// ErrHomeDirUnresolvable indicates a ~/ path could not be expanded.
	ErrHomeDirUnresolvable = errors.New("home directory unresolvable")

	// ErrInvalidItemPath indicates an item path is neither a URL nor an
	// existing directory.
	ErrInvalidItemPath = errors.New("invalid item path")

	// ErrMissingShellPlaceholder indicates the shell template lacks "{}".
	ErrMissingShellPlaceholder = errors.New("missing shell placeholder")
)
