package web

import (
	"github.com/rohanthewiz/element"

	"betu_homestay/internal/content"
	"betu_homestay/internal/domain"
)

type ContactSection struct {
	Profile domain.BusinessProfile
	Contact domain.Contact
}

func (c ContactSection) Render(b *element.Builder) any {
	b.Section("id", content.AnchorContact, "class", "contact").R(
		b.DivClass("section-head").R(
			b.H2().T("Liên Hệ"),
			b.P().T(text(c.Profile.Description)),
		),
		b.DivClass("contact-grid").R(
			contactLink(b, c.Contact.TelURL, "phone", "Gọi Điện", c.Profile.Phone, false),
			contactLink(b, c.Contact.ChatURL, "zalo", "Chat Zalo", c.Profile.Phone, true),
			b.DivClass("contact-facts").R(
				b.P().R(icon(b, "map-pin"), b.Span().T(text(c.Profile.Address))),
				b.P().R(icon(b, "mail"), b.A("href", "mailto:"+c.Profile.Email).T(text(c.Profile.Email))),
			),
		),
	)
	return nil
}

func contactLink(b *element.Builder, href, kind, title, phone string, external bool) any {
	attrs := []string{"href", href, "class", "contact-option contact-" + kind}
	if external {
		attrs = append(attrs, "target", "_blank", "rel", "noopener noreferrer")
	}
	return b.A(attrs...).R(
		b.DivClass("contact-option-icon").R(icon(b, kind)),
		b.DivClass("contact-option-text").R(
			b.H4().T(text(title)),
			b.P().T(text(phone)),
		),
		b.SpanClass("contact-option-arrow").T("→"),
	)
}

type Footer struct {
	Profile domain.BusinessProfile
}

func (f Footer) Render(b *element.Builder) any {
	b.Footer("class", "footer").R(
		b.DivClass("footer-inner").R(
			b.DivClass("footer-brand").R(
				b.H3().T(text(f.Profile.Name)),
				b.P().T(text(f.Profile.Description)),
			),
			b.UlClass("footer-features").R(
				b.Wrap(func() {
					for _, feat := range f.Profile.Features {
						b.Li().T(text(feat))
					}
				}),
			),
			b.DivClass("footer-contact").R(
				b.P().T(text(f.Profile.Address)),
				b.P().T(text(f.Profile.Phone)),
				b.P().T(text(f.Profile.Email)),
			),
		),
	)
	return nil
}

// FloatingButtons stay pinned to the bottom-right corner: chat opens the
// QR overlay, phone dials directly.
type FloatingButtons struct {
	Phone  string
	TelURL string
}

func (fb FloatingButtons) Render(b *element.Builder) any {
	b.DivClass("floating").R(
		b.Button("type", "button", "class", "floating-btn floating-chat", "title", "Chat Zalo",
			"data-event", "chat.open").R(icon(b, "zalo")),
		b.A("href", fb.TelURL, "class", "floating-btn floating-phone", "title", text(fb.Phone)).R(
			icon(b, "phone"),
			b.SpanClass("floating-tip").T(text(fb.Phone)),
		),
	)
	return nil
}
