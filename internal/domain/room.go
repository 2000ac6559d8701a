package domain

type Room struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	PriceNight    string   `json:"price_night"`     // overnight, 21:00 - 8:00
	PriceDayNight string   `json:"price_day_night"` // full day, 14:00 - 12:00
	Image         string   `json:"image"`
	Gallery       []string `json:"gallery"`
	Features      []string `json:"features"`
	Description   string   `json:"description"`
	Description1  string   `json:"description1"`
}

// HasImage reports whether src is part of the room's gallery or its cover.
func (r Room) HasImage(src string) bool {
	if src == r.Image {
		return true
	}
	for _, g := range r.Gallery {
		if g == src {
			return true
		}
	}
	return false
}

type RoomsPage struct {
	Items []Room `json:"items"`
}
