//go:build linux
// +build linux

package privexec

import "golang.org/x/sys/unix"

// euid is a variable so tests can pin the privilege level.
var euid = unix.Geteuid
