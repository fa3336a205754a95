//go:build !windows && !darwin

package network

// Desktop proxy settings on Linux arrive through the environment.
func systemProxy() ProxySettings { return ProxySettings{} }
