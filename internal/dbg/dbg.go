// Package dbg provides a debug-only logging facade. Printf/Println/Dump are
// no-ops unless the binary is built with the "debug" tag, so hot paths like
// Bus.Read8 and CPU.Step never pay for formatting in a normal build.
package dbg

// DebugLogger is an interface that defines our debug logging functions.
// This allows us to have different implementations based on build tags.
type DebugLogger interface {
	Printf(format string, a ...interface{})
	Println(a ...interface{})
	Dump(a ...interface{})
}

// Global variable for our debug logger instance.
// This will be initialized by either debug-log.go or nodebug-log.go depending on build tags.
var debugLog DebugLogger

func Printf(format string, a ...interface{}) {
	debugLog.Printf(format, a...)
}

func Println(a ...interface{}) {
	debugLog.Println(a...)
}

// Dump pretty-prints its arguments (registers, PPU state, ...) via go-spew.
func Dump(a ...interface{}) {
	debugLog.Dump(a...)
}
