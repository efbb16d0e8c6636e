// Package theme loads colour palettes and resolves them into semantic roles.
// A palette is read from a JSON file (or a bundled palette) once per
// configuration run, and the resulting Scheme is immutable. Hot-reload is
// provided by Loader and Watcher for hosts that re-evaluate their
// configuration on change.
package theme
