// Package internal contains the infrastructure shared by the stickmap
// packages: the process-wide logger, label localization, and the analog
// direction resolver. Types and functions in this package are not part of
// the public API.
package internal
