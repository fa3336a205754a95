package notification

import (
	"fmt"
	"os/exec"
	"strconv"
)

func systemDialog(title, message string) error {
	script := fmt.Sprintf("display alert %s message %s as critical", strconv.Quote(title), strconv.Quote(message))
	if out, err := exec.Command("osascript", "-e", script).CombinedOutput(); err != nil {
		return fmt.Errorf("osascript: %w: %s", err, out)
	}
	return nil
}
