// Package content holds the homestay's fixed facts: the business profile,
// navigation, hero slides, headline stats, landmarks and the room catalog.
// Everything here is read-only for the lifetime of the process.
package content

import (
	"betu_homestay/internal/domain"
	"betu_homestay/internal/links"
)

// Anchor ids present in the rendered document.
const (
	AnchorHome     = "home"
	AnchorRooms    = "rooms-section"
	AnchorRoomGrid = "room-selection"
	AnchorStats    = "stats-section"
	AnchorLocation = "location-section"
	AnchorContact  = "contact"
)

var Anchors = []string{AnchorHome, AnchorStats, AnchorRooms, AnchorRoomGrid, AnchorLocation, AnchorContact}

const (
	LogoImage = "/logo.webp"
	QRImage   = "/QR.png"

	MapEmbedURL = "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3916.1610894867494!2d106.3380173!3d10.3569503!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x310aa5db8a01e731%3A0x24e42467791f671!2sBeTu%20Homestay%20-%20Nguy%E1%BB%85n%20Th%E1%BB%8B%20Th%E1%BA%ADp!5e0!3m2!1sen!2s!4v1720518392895!5m2!1sen!2s"
)

var Profile = domain.BusinessProfile{
	Name:    "BeTu Homestay",
	Address: "357/10/13 Nguyễn Thị Thập, Phường 6, Mỹ Tho",
	Phone:   "0931 077 099",
	Email:   "contact@betuhomestay.com",
	Description: "Trải nghiệm không gian ấm cúng và hiện đại tại BeTu Homestay - " +
		"nơi mang đến cho bạn cảm giác như ở nhà giữa lòng Mỹ Tho.",
	Features: []string{
		"Phòng nghỉ tiện nghi",
		"Wi-Fi miễn phí",
		"Bãi đậu xe",
		"Hỗ trợ 24/7",
	},
}

var Navigation = []domain.NavigationItem{
	{Label: "Trang Chủ", Target: AnchorHome},
	{Label: "Liên Hệ", Target: AnchorContact},
}

var Slides = []domain.Slide{
	{
		ID:          1,
		Image:       "/slides/slide1.png",
		Title:       "Chào Mừng Đến",
		Subtitle:    Profile.Name,
		Description: "Trải nghiệm không gian sống sang trọng, hiện đại với dịch vụ 5 sao giữa lòng thành phố Mỹ Tho",
		Badge:       "Homestay Hạng Sang tại Mỹ Tho",
	},
	{
		ID:          2,
		Image:       "/slides/slide2.png",
		Title:       "Phòng Nghỉ",
		Subtitle:    "Đẳng Cấp Thượng Lưu",
		Description: "Những căn phòng được thiết kế tinh tế với đầy đủ tiện nghi hiện đại, mang đến trải nghiệm nghỉ dưỡng hoàn hảo",
		Badge:       "Tiện Nghi 5 Sao",
	},
	{
		ID:          3,
		Image:       "/slides/slide3.png",
		Title:       "Dịch Vụ",
		Subtitle:    "Hoàn Hảo 24/7",
		Description: "Đội ngũ nhân viên chuyên nghiệp, tận tâm phục vụ khách hàng với thái độ nhiệt tình và chu đáo nhất",
		Badge:       "Chăm Sóc Tận Tình",
	},
	{
		ID:          4,
		Image:       "/slides/slide4.png",
		Title:       "Vị Trí",
		Subtitle:    "Đắc Địa Thuận Lợi",
		Description: "Tọa lạc tại trung tâm Mỹ Tho, thuận tiện di chuyển đến các điểm du lịch nổi tiếng và trung tâm thương mại",
		Badge:       "Trung Tâm Mỹ Tho",
	},
}

var Stats = []domain.Stat{
	{Value: "1000+", Label: "Khách Hài Lòng", Icon: "users"},
	{Value: "5.0/5", Label: "Đánh Giá Trung Bình", Icon: "star"},
	{Value: "98%", Label: "Tỷ Lệ Quay Lại", Icon: "heart"},
	{Value: "24.7", Label: "Hỗ Trợ Khách Hàng", Icon: "shield"},
}

var Landmarks = []domain.Landmark{
	{Place: "Trung tâm Mỹ Tho", Time: "5 phút", Distance: "2.1 km", Icon: "building"},
	{Place: "Chợ Mỹ Tho", Time: "3 phút", Distance: "1.5 km", Icon: "shopping-bag"},
	{Place: "Bến xe Mỹ Tho", Time: "8 phút", Distance: "3.2 km", Icon: "bus"},
	{Place: "Sông Tiền", Time: "10 phút", Distance: "4.1 km", Icon: "waves"},
	{Place: "Cù lao Thới Sơn", Time: "15 phút", Distance: "8.3 km", Icon: "trees"},
}

var Rooms = []domain.Room{
	{
		ID:            1,
		Name:          "Phòng DELUXE Ban Công",
		PriceNight:    "500.000",
		PriceDayNight: "550.000",
		Image:         "/deluxe/deluxe.png",
		Gallery: []string{
			"/deluxe/deluxe1.png",
			"/deluxe/deluxe2.png",
			"/deluxe/deluxe3.png",
			"/slides/slide3.png",
			"/deluxe/deluxe4.png",
			"/deluxe/deluxe.png",
		},
		Features: []string{
			"Tivi",
			"Tủ lạnh",
			"Điều hòa",
			"Nhà tắm riêng",
			"Bếp chung",
			"Bàn trang điểm",
			"Tủ quần áo",
			"Máy sấy, bàn ủi",
			"Ghế bập bênh đôi",
			"Ban công",
		},
		Description:  "Giá giờ: 290.000đ/ combo 2h",
		Description1: "Giờ tiếp theo 80k/h | 430.000đ/ combo 4h",
	},
	{
		ID:            2,
		Name:          "Phòng Standard Plus Máy chiếu",
		PriceNight:    "450.000",
		PriceDayNight: "500.000",
		Image:         "/standard/standard1.png",
		Gallery: []string{
			"/standard/standard1.png",
			"/standard/standard2.png",
			"/standard/standard3.png",
			"/standard/standard4.png",
			"/standard/standard5.png",
		},
		Features: []string{
			"Nhà tắm riêng",
			"Bếp chung",
			"Tủ lạnh",
			"Tủ quần áo",
			"Bàn trang điểm",
			"Máy sấy, bàn ủi",
			"Ghế thư giãn",
			"Máy chiếu",
			"Điều hòa",
		},
		Description:  "Giá giờ: 260.000đ/ combo 2h",
		Description1: "Giờ tiếp theo 80k/h | 400.000đ/ combo 4h",
	},
}

// Site assembles the read model for the page from the registry.
func Site() domain.SiteView {
	return domain.SiteView{
		Profile:    Profile,
		Navigation: Navigation,
		Slides:     Slides,
		Stats:      Stats,
		Location: domain.Location{
			MapEmbedURL:  MapEmbedURL,
			MapSearchURL: links.MapSearch(Profile.Address),
			Landmarks:    Landmarks,
		},
		Contact: domain.Contact{
			TelURL:  links.Tel(Profile.Phone),
			ChatURL: links.Chat(Profile.Phone),
			QRImage: QRImage,
		},
		Logo: LogoImage,
	}
}
