package web

import (
	"strconv"

	"github.com/rohanthewiz/element"

	"betu_homestay/internal/content"
	"betu_homestay/internal/domain"
)

type RoomsSection struct {
	Rooms []domain.Room
}

func (r RoomsSection) Render(b *element.Builder) any {
	b.Section("id", content.AnchorRooms, "class", "rooms").R(
		b.DivClass("section-head").R(
			b.H2().T("Phòng Nghỉ Sang Trọng"),
			b.P().T("Khám phá các phòng nghỉ được thiết kế tinh tế với đầy đủ tiện nghi hiện đại"),
		),
		b.Div("id", content.AnchorRoomGrid, "class", "room-grid").R(
			b.Wrap(func() {
				for _, room := range r.Rooms {
					element.RenderComponents(b, RoomCard{Room: room})
				}
			}),
		),
	)
	return nil
}

// RoomCard is one catalog entry in the grid. The thumbnail strip holds one
// button per gallery image; each opens the room and then the lightbox.
type RoomCard struct {
	Room domain.Room
}

func (rc RoomCard) Render(b *element.Builder) any {
	room := rc.Room
	id := strconv.FormatInt(room.ID, 10)
	b.Div("class", "room", "data-room-card", id).R(
		element.RenderComponents(b, Card{Body: []element.Component{
			Fragment(func(b *element.Builder) {
				b.DivClass("room-cover").R(
					b.Img("src", room.Image, "alt", text(room.Name), "loading", "lazy"),
					b.DivClass("room-prices").R(
						b.SpanClass("price price-night").T(text(room.PriceNight+"₫/đêm (21:00 - 8:00)")),
						b.SpanClass("price price-daynight").T(text(room.PriceDayNight+"₫/ngày đêm (14:00 - 12:00)")),
					),
					b.SpanClass("room-rating").R(icon(b, "star"), b.Span().T("5.0")),
					b.DivClass("room-cover-hover").R(
						element.RenderComponents(b, Button{
							Label: "Xem Chi Tiết", Icon: "eye",
							Attrs: []string{"data-event", "room.open", "data-room-id", id},
						}),
					),
				)
				b.DivClass("room-body").R(
					b.DivClass("room-title").R(
						b.H3().T(text(room.Name)),
						b.SpanClass("room-crown").R(icon(b, "crown")),
					),
					b.PClass("room-description").R(
						b.Span().T(text(room.Description)),
						b.Br(),
						b.Span().T(text(room.Description1)),
					),
					features(b, "Tiện nghi đẳng cấp:", room.Features),
					thumbnails(b, room),
					element.RenderComponents(b, Button{
						Label: "Đặt Phòng Ngay", Class: "btn-block",
						Attrs: []string{"data-event", "contact.open"},
					}),
				)
			}),
		}}),
	)
	return nil
}

func features(b *element.Builder, heading string, items []string) any {
	return b.DivClass("room-features").R(
		b.H4().R(icon(b, "award"), b.Span().T(text(heading))),
		b.DivClass("feature-grid").R(
			b.Wrap(func() {
				for _, f := range items {
					b.DivClass("feature").R(
						icon(b, content.FeatureIcon(f)),
						b.Span().T(text(f)),
					)
				}
			}),
		),
	)
}

func thumbnails(b *element.Builder, room domain.Room) any {
	id := strconv.FormatInt(room.ID, 10)
	return b.Div("class", "room-thumbs", "data-room-thumbs", id).R(
		b.Wrap(func() {
			for i, src := range room.Gallery {
				b.Button("type", "button", "class", "thumb",
					"data-event", "image.open", "data-room-id", id, "data-src", src, "data-open-room", "true").R(
					b.Img("src", src, "alt", text(room.Name+" view "+strconv.Itoa(i+1)), "loading", "lazy"),
				)
			}
		}),
	)
}
