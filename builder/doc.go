// Package builder is the front controller of oopbuilder.
//
// A Builder is created from a *Config, resolves a text notation from its
// NotationRegistry, parses the source, lints the resulting diagram and hands
// back a Project. Progress is reported through an EventEmitter and a
// *slog.Logger. File I/O and rendering of the project are left to callers.
package builder
