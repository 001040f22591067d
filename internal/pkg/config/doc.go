// Package config provides the validated settings of the timing harness commands.
//
// Settings structs carry mapstructure keys and validation tags; each exposes a
// Validate method so commands can reject bad flag combinations before any file
// is opened.
package config
