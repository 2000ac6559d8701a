package web

import (
	"strconv"

	"github.com/rohanthewiz/element"

	"betu_homestay/internal/domain"
	"betu_homestay/internal/ui/overlay"
)

// Overlays renders every modal layer hidden. app.js shows and hides them
// from the session's overlay state; z-order follows overlay.Layer.
type Overlays struct {
	Site  domain.SiteView
	Rooms []domain.Room
}

func (o Overlays) Render(b *element.Builder) any {
	b.DivClass("overlays").R(
		b.Wrap(func() {
			for _, r := range o.Rooms {
				roomDetail(b, r)
			}
		}),
		contactPopup(b, o.Site),
		chatQR(b, o.Site),
		lightbox(b),
	)
	return nil
}

// backdrop opens a hidden overlay layer. Clicks on the backdrop itself are
// reported as overlay.background; clicks inside data-content are not.
func backdrop(b *element.Builder, l overlay.Layer, extra ...string) element.Element {
	attrs := append([]string{
		"class", "overlay overlay-" + l.String(),
		"data-overlay", l.String(),
		"data-backdrop", l.String(),
		"style", "z-index:" + strconv.Itoa(50+int(l)),
		"hidden", "hidden",
	}, extra...)
	return b.Div(attrs...)
}

func closeButton(b *element.Builder, l overlay.Layer) any {
	return b.Button("type", "button", "class", "overlay-close", "aria-label", "Close",
		"data-event", "overlay.close", "data-layer", l.String()).T("✕")
}

func roomDetail(b *element.Builder, r domain.Room) any {
	id := strconv.FormatInt(r.ID, 10)
	return backdrop(b, overlay.RoomDetail, "data-room", id).R(
		b.Div("class", "overlay-box room-detail", "data-content", overlay.RoomDetail.String()).R(
			b.DivClass("room-detail-cover").R(
				b.Img("src", r.Image, "alt", text(r.Name)),
				closeButton(b, overlay.RoomDetail),
				b.DivClass("room-detail-heading").R(
					b.H3().T(text(r.Name)),
					b.DivClass("room-prices").R(
						b.SpanClass("price price-night").T(text(r.PriceNight+"₫/đêm")),
						b.SpanClass("price price-daynight").T(text(r.PriceDayNight+"₫/ngày đêm")),
					),
				),
			),
			b.DivClass("room-detail-body").R(
				b.PClass("room-description").R(
					b.Span().T(text(r.Description)),
					b.Br(),
					b.Span().T(text(r.Description1)),
				),
				features(b, "Tiện nghi đầy đủ:", r.Features),
				b.H4().R(icon(b, "picture-in-picture"), b.Span().T("Hình ảnh phòng:")),
				b.Div("class", "gallery", "data-room-gallery", id).R(
					b.Wrap(func() {
						for i, src := range r.Gallery {
							b.Button("type", "button", "class", "gallery-item",
								"data-event", "image.open", "data-room-id", id, "data-src", src).R(
								b.Img("src", src, "alt", text(r.Name+" view "+strconv.Itoa(i+1)), "loading", "lazy"),
							)
						}
					}),
				),
				b.DivClass("overlay-actions").R(
					element.RenderComponents(b,
						Button{Label: "Đặt Phòng Ngay", Attrs: []string{"data-event", "contact.open"}},
						Button{Label: "Đóng", Variant: Outline,
							Attrs: []string{"data-event", "overlay.close", "data-layer", overlay.RoomDetail.String()}},
					),
				),
			),
		),
	)
}

func contactPopup(b *element.Builder, site domain.SiteView) any {
	l := overlay.ContactOptions
	return backdrop(b, l).R(
		b.Div("class", "overlay-box contact-popup", "data-content", l.String()).R(
			b.DivClass("popup-head").R(
				b.DivClass("popup-logo").R(b.Img("src", site.Logo, "alt", "Logo")),
				b.H3().T("Liên Hệ Đặt Phòng"),
				b.P().T("Hãy liên hệ với chúng tôi để đặt phòng và nhận ưu đãi tốt nhất!"),
			),
			b.DivClass("popup-options").R(
				contactLink(b, site.Contact.TelURL, "phone", "Gọi Điện", site.Profile.Phone, false),
				contactLink(b, site.Contact.ChatURL, "zalo", "Chat Zalo", site.Profile.Phone, true),
			),
			element.RenderComponents(b, Button{Label: "Đóng", Variant: Outline, Class: "btn-block",
				Attrs: []string{"data-event", "overlay.close", "data-layer", l.String()}}),
		),
	)
}

func chatQR(b *element.Builder, site domain.SiteView) any {
	l := overlay.ChatQR
	steps := []string{
		"Mở ứng dụng Zalo trên điện thoại",
		"Chọn biểu tượng QR và quét mã",
		"Nhắn tin để được tư vấn ngay!",
	}
	return backdrop(b, l).R(
		b.Div("class", "overlay-box chat-qr", "data-content", l.String()).R(
			closeButton(b, l),
			b.DivClass("popup-head").R(
				b.DivClass("popup-logo").R(icon(b, "zalo")),
				b.H3().T("Kết nối Zalo"),
				b.P().T("Quét mã QR để kết bạn và chat trực tiếp với chúng tôi"),
			),
			b.DivClass("qr").R(b.Img("src", site.Contact.QRImage, "alt", "QR Code")),
			b.Ol("class", "qr-steps").R(
				b.Wrap(func() {
					for _, s := range steps {
						b.Li().T(text(s))
					}
				}),
			),
			b.DivClass("qr-alt").R(
				b.P().T("Hoặc gọi điện trực tiếp:"),
				b.A("href", site.Contact.TelURL, "class", "btn btn-primary btn-md btn-block").R(
					icon(b, "phone"),
					b.Span().T(text(site.Profile.Phone)),
				),
			),
		),
	)
}

func lightbox(b *element.Builder) any {
	l := overlay.Lightbox
	return backdrop(b, l).R(
		b.Div("class", "overlay-box lightbox", "data-content", l.String()).R(
			closeButton(b, l),
			b.Img("id", "lightbox-img", "src", "", "alt", "Room view"),
		),
	)
}
