package dto

import "time"

type CountdownResponse struct {
	Days    int64     `json:"days"`
	Hours   int64     `json:"hours"`
	Minutes int64     `json:"minutes"`
	Seconds int64     `json:"seconds"`
	Padded  [4]string `json:"padded"`
	Done    bool      `json:"done"`
	Message string    `json:"message,omitempty"`
	Target  time.Time `json:"target"`
}

type PartnerResponse struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Father      string `json:"father"`
	Mother      string `json:"mother"`
	Address     string `json:"address"`
	MapURL      string `json:"map_url"`
	Description string `json:"description"`
	BioHTML     string `json:"bio_html"`
	ImageURL    string `json:"image_url"`
}

type TimelineEventResponse struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type VenueResponse struct {
	Title    string `json:"title"`
	Address  string `json:"address"`
	ImageURL string `json:"image_url"`
	MapURL   string `json:"map_url"`
}

type GiftResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Holder     string `json:"holder"`
	Bank       string `json:"bank"`
	Number     string `json:"number"`
	Accent     string `json:"accent"`
	QRImageURL string `json:"qr_image_url"`
	QRLocalURL string `json:"qr_local_url"`
}

type WeddingDetailsResponse struct {
	Brand        string                  `json:"brand"`
	Bride        PartnerResponse         `json:"bride"`
	Groom        PartnerResponse         `json:"groom"`
	Date         time.Time               `json:"date"`
	DisplayDate  string                  `json:"display_date"`
	Venue        string                  `json:"venue"`
	Location     string                  `json:"location"`
	HeroImageURL string                  `json:"hero_image_url"`
	RSVPImageURL string                  `json:"rsvp_image_url"`
	MusicURL     string                  `json:"music_url"`
	MusicVolume  float64                 `json:"music_volume"`
	Timeline     []TimelineEventResponse `json:"timeline"`
	Venues       []VenueResponse         `json:"venues"`
	Gifts        []GiftResponse          `json:"gifts"`
}
