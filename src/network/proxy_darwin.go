//go:build darwin

package network

import (
	"context"
	"os/exec"
	"time"
)

func systemProxy() ProxySettings {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	out, err := exec.CommandContext(ctx, "scutil", "--proxy").Output()
	if err != nil {
		return ProxySettings{}
	}
	return parseScutilProxy(string(out))
}
