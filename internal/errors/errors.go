package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/chronox22/eco-gamer-collective/internal/logger"
)

var (
	// ErrStorageUnavailable marks a failure of the local kv substrate (quota,
	// closed database, unreachable server). Callers treat it as a miss.
	ErrStorageUnavailable = stderrors.New("storage unavailable")
	// ErrCorruptSnapshot marks stored text that is not a snapshot: not JSON,
	// not an object, or missing the day identity.
	ErrCorruptSnapshot = stderrors.New("corrupt snapshot")
	// ErrNoGenerator is returned when a key is mutated before any generator
	// was registered for it.
	ErrNoGenerator = stderrors.New("no generator registered for key")
)

// Is reports whether any error in err's tree matches target
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
