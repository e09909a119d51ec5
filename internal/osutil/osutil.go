// Package osutil holds platform constants shared across packages
package osutil

const (
	Windows = "windows"
	Darwin  = "darwin"
)

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

// DirPermission is the mode of the directories created for the config,
// database, and log files.
const DirPermission = 0o750
