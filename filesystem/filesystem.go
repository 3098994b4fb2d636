// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// It utilizes the afero library so that configuration, logs and Lua scripts can be
// served from either the OS or an in-memory backend.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs installs a volatile in-memory filesystem backend for unit testing.
func SetMemMapFs() {
	Use(afero.NewMemMapFs())
}

// Use installs an arbitrary afero.Fs as the active backend.
func Use(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}
