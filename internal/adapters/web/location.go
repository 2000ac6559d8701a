package web

import (
	"github.com/rohanthewiz/element"

	"betu_homestay/internal/content"
	"betu_homestay/internal/domain"
)

type LocationSection struct {
	Name     string
	Address  string
	Location domain.Location
}

func (l LocationSection) Render(b *element.Builder) any {
	b.Section("id", content.AnchorLocation, "class", "location").R(
		b.DivClass("section-head").R(
			b.H2().T("Vị Trí Thuận Lợi"),
			b.P().T(text("Nằm tại vị trí đắc địa, "+l.Name+" mang đến sự tiện lợi cho mọi chuyến đi")),
		),
		b.DivClass("location-grid").R(
			element.RenderComponents(b, Card{Class: "map-card", Flat: true, Body: []element.Component{
				Fragment(func(b *element.Builder) {
					b.DivClass("map").R(
						b.Iframe("src", l.Location.MapEmbedURL, "width", "100%", "height", "300",
							"style", "border:0", "allowfullscreen", "true", "loading", "lazy",
							"referrerpolicy", "no-referrer-when-downgrade", "title", text(l.Name)).R(),
						b.DivClass("map-label").R(
							icon(b, "map-pin"),
							b.Div().R(
								b.H3().T(text(l.Name)),
								b.P().T(text(l.Address)),
							),
						),
					)
					b.A("href", l.Location.MapSearchURL, "target", "_blank", "rel", "noopener noreferrer",
						"class", "btn btn-primary btn-md btn-block directions").R(
						icon(b, "navigation"),
						b.Span().T("Xem Chỉ Đường"),
					)
				}),
			}}),
			b.DivClass("landmarks").R(
				b.Wrap(func() {
					for _, lm := range l.Location.Landmarks {
						b.DivClass("landmark").R(
							b.DivClass("landmark-icon").R(icon(b, lm.Icon)),
							b.DivClass("landmark-text").R(
								b.H3().T(text(lm.Place)),
								b.P().T(text(lm.Distance)),
							),
							element.RenderComponents(b, Badge{Text: lm.Time}),
						)
					}
				}),
			),
		),
	)
	return nil
}
