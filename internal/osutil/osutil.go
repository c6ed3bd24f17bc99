// Package osutil holds operating system constants shared by tally's packages
package osutil

const (
	Windows = "windows"
)

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

const (
	DirPermission  = 0o755
	FilePermission = 0o644
)
