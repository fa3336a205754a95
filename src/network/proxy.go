package network

import (
	"bufio"
	"net"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/http/httpproxy"
)

// ProxySettings holds host:port proxies discovered from the OS.
type ProxySettings struct {
	HTTP  string
	HTTPS string
}

func (p ProxySettings) empty() bool { return p.HTTP == "" && p.HTTPS == "" }

// SystemProxy returns the OS-configured proxy, or empty settings when none is enabled.
func SystemProxy() ProxySettings { return systemProxy() }

// proxyFunc picks the OS proxy first and falls back to HTTP_PROXY/HTTPS_PROXY/NO_PROXY.
func proxyFunc(sys ProxySettings) func(*http.Request) (*url.URL, error) {
	env := httpproxy.FromEnvironment().ProxyFunc()
	return func(req *http.Request) (*url.URL, error) {
		if !sys.empty() && !isLoopback(req.URL.Hostname()) {
			hostport := sys.HTTP
			if req.URL.Scheme == "https" && sys.HTTPS != "" {
				hostport = sys.HTTPS
			}
			if hostport != "" {
				return url.Parse("http://" + hostport)
			}
		}
		return env(req.URL)
	}
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// parseProxyServer reads a WinINet ProxyServer value: either "host:port" for all
// schemes or "http=host:port;https=host:port".
func parseProxyServer(v string) ProxySettings {
	v = strings.TrimSpace(v)
	if v == "" {
		return ProxySettings{}
	}
	if !strings.Contains(v, "=") {
		return ProxySettings{HTTP: v, HTTPS: v}
	}
	var p ProxySettings
	for _, part := range strings.Split(v, ";") {
		scheme, hostport, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.ToLower(scheme) {
		case "http":
			p.HTTP = hostport
		case "https":
			p.HTTPS = hostport
		}
	}
	return p
}

// parseScutilProxy reads the output of `scutil --proxy`.
func parseScutilProxy(out string) ProxySettings {
	kv := map[string]string{}
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		k, v, ok := strings.Cut(sc.Text(), " : ")
		if !ok {
			continue
		}
		kv[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	var p ProxySettings
	if kv["HTTPEnable"] == "1" && kv["HTTPProxy"] != "" {
		p.HTTP = net.JoinHostPort(kv["HTTPProxy"], portOr(kv["HTTPPort"], "80"))
	}
	if kv["HTTPSEnable"] == "1" && kv["HTTPSProxy"] != "" {
		p.HTTPS = net.JoinHostPort(kv["HTTPSProxy"], portOr(kv["HTTPSPort"], "443"))
	}
	return p
}

func portOr(port, def string) string {
	if port == "" {
		return def
	}
	return port
}
