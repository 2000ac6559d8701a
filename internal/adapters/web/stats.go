package web

import (
	"strconv"

	"github.com/rohanthewiz/element"

	"betu_homestay/internal/content"
	"betu_homestay/internal/domain"
	"betu_homestay/internal/ui/counter"
)

// Stats renders each headline figure at its pre-animation display. The
// client reports visibility once and then mirrors the session's frames.
type Stats struct {
	Items []domain.Stat
}

func (s Stats) Render(b *element.Builder) any {
	b.Section("id", content.AnchorStats, "class", "stats").R(
		b.DivClass("stats-grid").R(
			b.Wrap(func() {
				for i, st := range s.Items {
					b.DivClass("stat").R(
						b.DivClass("stat-icon").R(icon(b, st.Icon)),
						b.Div("class", "stat-value", "data-stat", strconv.Itoa(i)).T(
							text(counter.Parse(st.Value).Format(0)),
						),
						b.PClass("stat-label").T(text(st.Label)),
					)
				}
			}),
		),
	)
	return nil
}
