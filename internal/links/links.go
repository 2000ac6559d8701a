// Package links builds the outbound URLs the page hands to the browser:
// the dialer, the chat deep link and the map search.
package links

import (
	"net/url"
	"strings"
)

const (
	chatBase      = "https://zalo.me/"
	mapSearchBase = "https://www.google.com/maps/search/"
)

// Tel returns a tel: URL for the phone number as written.
func Tel(phone string) string { return "tel:" + phone }

// Chat returns the Zalo deep link for phone, keeping digits only.
func Chat(phone string) string { return chatBase + Digits(phone) }

// MapSearch returns a map search URL with the address percent-encoded
// the way encodeURIComponent does it (space becomes %20, not +).
func MapSearch(address string) string {
	return mapSearchBase + EncodeComponent(address)
}

// Digits keeps ASCII 0-9 only.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EncodeComponent escapes s like JavaScript's encodeURIComponent.
func EncodeComponent(s string) string {
	e := url.QueryEscape(s)
	e = strings.ReplaceAll(e, "+", "%20")
	// encodeURIComponent leaves these unescaped
	for _, r := range []string{"!", "'", "(", ")", "*"} {
		e = strings.ReplaceAll(e, url.QueryEscape(r), r)
	}
	return e
}
