package eater

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// SourceToken reduces a URL to its registrable domain minus the public
// suffix: "https://sf.eater.com/maps/..." → "eater". Hosts that sit
// outside the public suffix list (localhost, bare IPs, test servers)
// fall back to the first host label.
func SourceToken(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := u.Hostname()
	if host == "" {
		return ""
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return strings.SplitN(host, ".", 2)[0]
	}
	return strings.SplitN(etld1, ".", 2)[0]
}
