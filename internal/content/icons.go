package content

import "strings"

// featureIcons is checked in order; the first keyword contained in a
// feature label wins.
var featureIcons = []struct{ keyword, icon string }{
	{"Tivi", "tv"},
	{"Ghế bập bênh", "rocking-chair"},
	{"Tủ lạnh", "refrigerator"},
	{"tắm", "bath"},
	{"Bếp", "chef-hat"},
	{"trang điểm", "flower"},
	{"quần áo", "shirt"},
	{"sấy", "wind"},
	{"ủi", "wind"},
	{"chiếu", "film"},
	{"Sofa", "sofa"},
	{"Ghế", "sofa"},
	{"Ban công", "home"},
	{"Điều hòa", "sun-snow"},
}

// FeatureIcon maps a room feature label to an icon name.
func FeatureIcon(feature string) string {
	for _, fi := range featureIcons {
		if strings.Contains(feature, fi.keyword) {
			return fi.icon
		}
	}
	return "award"
}
