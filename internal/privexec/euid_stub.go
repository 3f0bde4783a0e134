//go:build !linux
// +build !linux

package privexec

// ufw only exists on Linux; elsewhere we always route through the helper.
var euid = func() int { return -1 }
