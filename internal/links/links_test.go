package links_test

import (
	"testing"

	"betu_homestay/internal/links"
)

func TestTel(t *testing.T) {
	if got := links.Tel("0931 077 099"); got != "tel:0931 077 099" {
		t.Fatalf("unexpected tel link: %q", got)
	}
}

func TestChat_DigitsOnly(t *testing.T) {
	if got := links.Chat("0931 077 099"); got != "https://zalo.me/0931077099" {
		t.Fatalf("unexpected chat link: %q", got)
	}
}

func TestDigits_ASCIIOnly(t *testing.T) {
	// Arabic-Indic and fullwidth digits are not dialable in a Zalo link
	if got := links.Digits("+84 ٠١ ９ 931-077"); got != "84931077" {
		t.Fatalf("unexpected digits: %q", got)
	}
}

func TestMapSearch_EncodesLikeURIComponent(t *testing.T) {
	got := links.MapSearch("357/10/13 Nguyễn Thị Thập, Phường 6, Mỹ Tho")
	want := "https://www.google.com/maps/search/357%2F10%2F13%20Nguy%E1%BB%85n%20Th%E1%BB%8B%20Th%E1%BA%ADp%2C%20Ph%C6%B0%E1%BB%9Dng%206%2C%20M%E1%BB%B9%20Tho"
	if got != want {
		t.Fatalf("unexpected map link:\n got %s\nwant %s", got, want)
	}
}

func TestEncodeComponent_KeepsUnreservedMarks(t *testing.T) {
	if got := links.EncodeComponent("a (b)!*'"); got != "a%20(b)!*'" {
		t.Fatalf("unexpected encoding: %q", got)
	}
}
