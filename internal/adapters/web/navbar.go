package web

import (
	"github.com/rohanthewiz/element"

	"betu_homestay/internal/content"
	"betu_homestay/internal/domain"
)

// Navbar is fixed to the top of the viewport. app.js toggles the "solid"
// class from the session's navbar flag.
type Navbar struct {
	Site domain.SiteView
}

func (n Navbar) Render(b *element.Builder) any {
	b.Nav("id", "navbar", "class", "navbar").R(
		b.DivClass("navbar-inner").R(
			b.A("href", "#"+content.AnchorHome, "class", "brand",
				"data-event", "navigate", "data-section", "home").R(
				b.DivClass("brand-logo").R(
					b.Img("src", n.Site.Logo, "alt", text(n.Site.Profile.Name+" Logo")),
				),
				b.DivClass("brand-text").R(
					b.SpanClass("brand-name").T(text(n.Site.Profile.Name)),
					b.SpanClass("brand-tagline").T("✨ Luxury Experience"),
				),
			),
			b.UlClass("nav-links").R(
				b.Wrap(func() {
					for _, item := range n.Site.Navigation {
						b.Li().R(
							b.A("href", "#"+item.Target, "data-event", "navigate",
								"data-section", item.Target, "data-anchor", item.Target).T(text(item.Label)),
						)
					}
				}),
			),
			element.RenderComponents(b, Button{
				Label: "Đặt Phòng",
				Icon:  "phone",
				Class: "nav-cta",
				Attrs: []string{"data-event", "navigate", "data-section", "home", "data-anchor", content.AnchorRooms},
			}),
			b.Button("type", "button", "class", "nav-toggle", "aria-label", "Menu",
				"onclick", "app.toggleMenu()").R(icon(b, "menu")),
		),
	)
	return nil
}
