package utils

import (
	"fmt"
	"os"
)

// EnsureDir creates a directory (and any parents) if it doesn't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// PrintSuccess prints a green success message
func PrintSuccess(msg string) {
	fmt.Printf("\033[32m %s\033[0m\n", msg)
}

// PrintError prints a red error message
func PrintError(msg string) {
	fmt.Fprintf(os.Stderr, "\033[31m %s\033[0m\n", msg)
}
