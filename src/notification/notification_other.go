//go:build !windows && !darwin

package notification

import (
	"fmt"
	"os"
)

func systemDialog(title, message string) error {
	_, err := fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
	return err
}
