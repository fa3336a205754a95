//go:build windows

package network

import "golang.org/x/sys/windows/registry"

const internetSettingsKey = `Software\Microsoft\Windows\CurrentVersion\Internet Settings`

func systemProxy() ProxySettings {
	k, err := registry.OpenKey(registry.CURRENT_USER, internetSettingsKey, registry.QUERY_VALUE)
	if err != nil {
		return ProxySettings{}
	}
	defer k.Close()

	enabled, _, err := k.GetIntegerValue("ProxyEnable")
	if err != nil || enabled == 0 {
		return ProxySettings{}
	}
	server, _, err := k.GetStringValue("ProxyServer")
	if err != nil {
		return ProxySettings{}
	}
	return parseProxyServer(server)
}
