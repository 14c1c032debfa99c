// Package gbcore is the module root: the Console aggregate and the error
// taxonomy every other package reports through (spec.md §7).
package gbcore

import "fmt"

// InitError wraps a failure that happens before the run loop starts: a
// malformed boot ROM image, a truncated cartridge header. Constructors
// return these as plain errors — never log.Fatal — so cmd/gbcore can
// print a usage-appropriate message and exit with a non-zero status
// (spec.md §7, "initialization errors... returned as plain error values").
type InitError struct {
	Component string // e.g. "cartridge", "bootrom"
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("gbcore: %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// NewInitError wraps err with the component that produced it. Returns nil
// if err is nil, so callers can write `return NewInitError("cartridge", err)`
// unconditionally after a constructor call.
func NewInitError(component string, err error) error {
	if err == nil {
		return nil
	}
	return &InitError{Component: component, Err: err}
}

// FatalError is a run-loop failure: an undefined opcode, or a renderer
// that can no longer accept frames. It carries enough state for the
// drive loop and CLI to print a diagnostic and distinguish a crash from a
// clean shutdown (spec.md §7).
type FatalError struct {
	PC     uint16
	Opcode byte
	Err    error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("gbcore: fatal at PC=0x%04X opcode=0x%02X: %v", e.PC, e.Opcode, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

// NewFatalError wraps a run-loop failure with the CPU state at the time
// it occurred.
func NewFatalError(pc uint16, opcode byte, err error) error {
	return &FatalError{PC: pc, Opcode: opcode, Err: err}
}
