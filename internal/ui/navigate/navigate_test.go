package navigate

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betu_homestay/internal/clock"
)

type fakeDoc map[string]int

func (d fakeDoc) Offset(anchor string) (int, bool) {
	top, ok := d[anchor]
	return top, ok
}

type fakeView struct{ scrolls []int }

func (v *fakeView) ScrollTo(y int) { v.scrolls = append(v.scrolls, y) }

func newNav(t *testing.T, doc fakeDoc, opts ...Option) (*Navigator, *clock.Fake, *fakeView) {
	t.Helper()
	clk := clock.NewFake(time.Unix(0, 0))
	view := &fakeView{}
	return New(clk, doc, view, opts...), clk, view
}

func TestNavigate_NoAnchorScrollsToTopNow(t *testing.T) {
	n, clk, view := newNav(t, fakeDoc{})
	n.Navigate("home", "")
	assert.Equal(t, []int{0}, view.scrolls)
	assert.Equal(t, 0, clk.Pending())
	assert.Equal(t, "home", n.Section())
}

func TestNavigate_ScrollsBelowHeaderAfterSettle(t *testing.T) {
	n, clk, view := newNav(t, fakeDoc{"rooms-section": 1200})
	n.Navigate("rooms", "rooms-section")

	clk.Advance(149 * time.Millisecond)
	assert.Empty(t, view.scrolls)

	clk.Advance(time.Millisecond)
	assert.Equal(t, []int{1120}, view.scrolls)
}

func TestNavigate_ClampsAtZero(t *testing.T) {
	n, clk, view := newNav(t, fakeDoc{"home": 30})
	n.Navigate("home", "home")
	clk.Advance(DefaultSettleDelay)
	assert.Equal(t, []int{0}, view.scrolls)
}

func TestNavigate_MissingAnchorIsLoggedNotScrolled(t *testing.T) {
	var buf bytes.Buffer
	n, clk, view := newNav(t, fakeDoc{}, WithLogger(zerolog.New(&buf)))

	require.NotPanics(t, func() {
		n.Navigate("about", "nowhere")
		clk.Advance(time.Second)
	})
	assert.Empty(t, view.scrolls)
	assert.Contains(t, buf.String(), `"anchor":"nowhere"`)
}

func TestNavigate_NewerNavigationSupersedes(t *testing.T) {
	n, clk, view := newNav(t, fakeDoc{"contact": 3000, "stats-section": 900})
	n.Navigate("contact", "contact")
	clk.Advance(100 * time.Millisecond)
	n.Navigate("stats", "stats-section")
	clk.Advance(time.Second)

	assert.Equal(t, []int{820}, view.scrolls)
	assert.Equal(t, "stats", n.Section())
}

func TestNavigate_CustomOffsets(t *testing.T) {
	n, clk, view := newNav(t, fakeDoc{"contact": 500},
		WithSettleDelay(10*time.Millisecond), WithHeaderOffset(100))
	n.Navigate("contact", "contact")
	clk.Advance(10 * time.Millisecond)
	assert.Equal(t, []int{400}, view.scrolls)
}

func TestNavigate_CloseCancelsPending(t *testing.T) {
	n, clk, view := newNav(t, fakeDoc{"contact": 500})
	n.Navigate("contact", "contact")
	n.Close()
	clk.Advance(time.Second)
	assert.Empty(t, view.scrolls)

	n.Navigate("home", "")
	assert.Empty(t, view.scrolls)
}

func TestNavbar_SolidPastThreshold(t *testing.T) {
	var b Navbar
	assert.False(t, b.Solid())
	assert.False(t, b.Sample(50))
	assert.True(t, b.Sample(51))
	assert.True(t, b.Solid())
	assert.False(t, b.Sample(400))
	assert.True(t, b.Sample(0))
	assert.False(t, b.Solid())
}
