package domain

// BusinessProfile is the homestay's fixed identity shown across the page.
type BusinessProfile struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

type NavigationItem struct {
	Label  string `json:"label"`
	Target string `json:"target"` // in-page anchor id
}

type Slide struct {
	ID          int    `json:"id"`
	Image       string `json:"image"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Badge       string `json:"badge"`
}

// Stat is a headline figure rendered through an animated counter, e.g. "98%".
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type Landmark struct {
	Place    string `json:"place"`
	Time     string `json:"time"`
	Distance string `json:"distance"`
	Icon     string `json:"icon"`
}

type Location struct {
	MapEmbedURL  string     `json:"map_embed_url"`
	MapSearchURL string     `json:"map_search_url"`
	Landmarks    []Landmark `json:"landmarks"`
}

type Contact struct {
	TelURL  string `json:"tel_url"`
	ChatURL string `json:"chat_url"`
	QRImage string `json:"qr_image"`
}

// SiteView is the read model behind GET /v1/site and the page renderer.
type SiteView struct {
	Profile    BusinessProfile  `json:"profile"`
	Navigation []NavigationItem `json:"navigation"`
	Slides     []Slide          `json:"slides"`
	Stats      []Stat           `json:"stats"`
	Location   Location         `json:"location"`
	Contact    Contact          `json:"contact"`
	Logo       string           `json:"logo"`
}
