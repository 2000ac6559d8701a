package web

import (
	"strconv"

	"github.com/rohanthewiz/element"

	"betu_homestay/internal/content"
	"betu_homestay/internal/domain"
)

// Hero renders every slide up front; the session's slide index decides
// which one carries the "active" class.
type Hero struct {
	Slides []domain.Slide
}

func (h Hero) Render(b *element.Builder) any {
	b.Section("id", content.AnchorHome, "class", "hero").R(
		b.DivClass("hero-slides").R(
			b.Wrap(func() {
				for i, s := range h.Slides {
					b.Div("class", slideClass(i), "data-slide", strconv.Itoa(i),
						"style", "background-image: url('"+s.Image+"')").R()
				}
			}),
		),
		b.DivClass("hero-content").R(
			b.Wrap(func() {
				for i, s := range h.Slides {
					b.Div("class", join("hero-copy", activeIf(i == 0)), "data-slide-copy", strconv.Itoa(i)).R(
						element.RenderComponents(b, Badge{Text: s.Badge, Variant: "outline", Size: Large}),
						b.H1().R(
							b.SpanClass("hero-title").T(text(s.Title)),
							b.Br(),
							b.SpanClass("hero-subtitle").T(text(s.Subtitle)),
						),
						b.PClass("hero-description").T(text(s.Description)),
					)
				}
			}),
			b.DivClass("hero-actions").R(
				element.RenderComponents(b,
					Button{
						Label: "Khám Phá Phòng", Icon: "chevron-right", Size: Large,
						Attrs: []string{"data-event", "navigate", "data-section", "home", "data-anchor", content.AnchorRooms},
					},
					Button{
						Label: "Ưu Đãi Đặc Biệt", Icon: "gift", Variant: Outline, Size: Large,
						Attrs: []string{"data-event", "navigate", "data-section", "contact", "data-anchor", content.AnchorContact},
					},
				),
			),
		),
		b.Button("type", "button", "class", "hero-arrow hero-prev", "aria-label", "Previous slide",
			"data-event", "slide.prev").R(icon(b, "chevron-left")),
		b.Button("type", "button", "class", "hero-arrow hero-next", "aria-label", "Next slide",
			"data-event", "slide.next").R(icon(b, "chevron-right")),
		b.DivClass("hero-dots").R(
			b.Wrap(func() {
				for i := range h.Slides {
					b.Button("type", "button", "class", join("hero-dot", activeIf(i == 0)),
						"aria-label", "Slide "+strconv.Itoa(i+1),
						"data-event", "slide.jump", "data-index", strconv.Itoa(i)).R()
				}
			}),
		),
		b.Div("class", "hero-autoplay", "id", "hero-autoplay").R(
			b.DivClass("hero-autoplay-bar").R(),
		),
	)
	return nil
}

func slideClass(i int) string { return join("hero-slide", activeIf(i == 0)) }

func activeIf(ok bool) string {
	if ok {
		return "active"
	}
	return ""
}
