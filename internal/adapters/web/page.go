// Package web renders the homestay page with element and embeds the thin
// client script that binds it to a view session.
package web

import (
	"strings"

	"github.com/rohanthewiz/element"

	"betu_homestay/internal/content"
	"betu_homestay/internal/domain"
)

// Page is the whole single-page site.
type Page struct {
	Site  domain.SiteView
	Rooms []domain.Room
}

func (p Page) Render(b *element.Builder) any {
	b.DivClass("app").R(
		element.RenderComponents(b,
			Navbar{Site: p.Site},
		),
		b.Main().R(
			element.RenderComponents(b,
				Hero{Slides: p.Site.Slides},
				Stats{Items: p.Site.Stats},
				RoomsSection{Rooms: p.Rooms},
				LocationSection{Name: p.Site.Profile.Name, Address: p.Site.Profile.Address, Location: p.Site.Location},
				ContactSection{Profile: p.Site.Profile, Contact: p.Site.Contact},
			),
		),
		element.RenderComponents(b,
			Footer{Profile: p.Site.Profile},
			FloatingButtons{Phone: p.Site.Profile.Phone, TelURL: p.Site.Contact.TelURL},
			Overlays{Site: p.Site, Rooms: p.Rooms},
		),
	)
	return nil
}

// RenderPage returns the full HTML document.
func RenderPage(site domain.SiteView, rooms []domain.Room) string {
	b := element.NewBuilder()

	b.Html("lang", "vi").R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
			b.Meta("name", "description", "content", text(site.Profile.Description)),
			b.Title().T(text(site.Profile.Name)),
			b.Link("rel", "icon", "href", site.Logo),
			b.Link("rel", "stylesheet", "href", "/static/app.css"),
		),
		b.Body("data-anchors", strings.Join(content.Anchors, ",")).R(
			element.RenderComponents(b, Page{Site: site, Rooms: rooms}),
			b.Script("src", "/static/app.js").R(),
		),
	)

	out := b.String()
	if !strings.HasPrefix(strings.ToLower(out), "<!doctype") {
		out = "<!DOCTYPE html>\n" + out
	}
	return out
}
