package web

import (
	"html"

	"github.com/rohanthewiz/element"
)

type Variant string

const (
	Primary   Variant = "primary"
	Secondary Variant = "secondary"
	Outline   Variant = "outline"
)

type Size string

const (
	Small  Size = "sm"
	Medium Size = "md"
	Large  Size = "lg"
)

// Button is the page's call-to-action button. Attrs are extra attribute
// pairs, typically the data-event wiring read by app.js.
type Button struct {
	Label   string
	Icon    string
	Variant Variant
	Size    Size
	Class   string
	Attrs   []string
}

func (bt Button) Render(b *element.Builder) any {
	v, s := bt.Variant, bt.Size
	if v == "" {
		v = Primary
	}
	if s == "" {
		s = Medium
	}
	attrs := append([]string{"type", "button", "class", join("btn", "btn-"+string(v), "btn-"+string(s), bt.Class)}, bt.Attrs...)
	b.Button(attrs...).R(
		b.Wrap(func() {
			if bt.Icon != "" {
				icon(b, bt.Icon)
			}
		}),
		b.Span().T(text(bt.Label)),
	)
	return nil
}

type Badge struct {
	Text    string
	Variant string // default|secondary|outline|destructive
	Size    Size
}

func (bd Badge) Render(b *element.Builder) any {
	v, s := bd.Variant, bd.Size
	if v == "" {
		v = "default"
	}
	if s == "" {
		s = Medium
	}
	b.Span("class", join("badge", "badge-"+v, "badge-"+string(s))).T(text(bd.Text))
	return nil
}

// Card wraps Body in a rounded, shadowed panel. Hover lift is on unless
// Flat is set.
type Card struct {
	Class string
	Flat  bool
	Body  []element.Component
}

func (c Card) Render(b *element.Builder) any {
	cls := join("card", c.Class)
	if !c.Flat {
		cls = join(cls, "card-hover")
	}
	b.DivClass(cls).R(
		element.RenderComponents(b, c.Body...),
	)
	return nil
}

// Fragment adapts an inline render func to element.Component.
type Fragment func(b *element.Builder)

func (f Fragment) Render(b *element.Builder) any {
	f(b)
	return nil
}

func icon(b *element.Builder, name string) any {
	return b.Span("class", "icon icon-"+name, "data-icon", name, "aria-hidden", "true").R()
}

func text(s string) string { return html.EscapeString(s) }

func join(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}
