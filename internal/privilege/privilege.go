// Package privilege gates operations that only root can perform completely.
//
// The profiles utility silently omits computer-level profiles for ordinary
// users, so a check run against it without root would under-report.
package privilege

import (
	"errors"
	"os"
)

// ErrNotRoot indicates the process is not running as root.
var ErrNotRoot = errors.New("this binary must be run as root")

// Checker verifies the process has the privilege it needs.
type Checker interface {
	// Check returns ErrNotRoot when privilege is insufficient.
	Check() error
}

// EUIDChecker requires an effective user ID of 0.
type EUIDChecker struct {
	geteuid func() int
}

// NewEUIDChecker creates an EUIDChecker reading the real effective UID.
func NewEUIDChecker() *EUIDChecker {
	return &EUIDChecker{geteuid: os.Geteuid}
}

// Check returns ErrNotRoot unless running as root.
func (c *EUIDChecker) Check() error {
	if c.geteuid() != 0 {
		return ErrNotRoot
	}
	return nil
}

// FakeChecker returns a fixed result, for tests.
type FakeChecker struct {
	Err   error
	Calls int
}

// Check records the call and returns c.Err.
func (c *FakeChecker) Check() error {
	c.Calls++
	return c.Err
}
