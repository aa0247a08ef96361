package models

import (
	"time"
	_ "time/tzdata"
)

// Partner describes the bride or the groom.
type Partner struct {
	Name          string `mapstructure:"name" json:"name"`
	FullName      string `mapstructure:"full_name" json:"fullName"`
	Father        string `mapstructure:"father" json:"father"`
	Mother        string `mapstructure:"mother" json:"mother"`
	DetailAddress string `mapstructure:"detail_address" json:"detailAddress"`
	Address       string `mapstructure:"address" json:"address"`
	Description   string `mapstructure:"description" json:"description"`
	Image         string `mapstructure:"image" json:"image"`
}

// FullAddress is the address used for map searches.
func (p Partner) FullAddress() string {
	if p.DetailAddress == "" {
		return p.Address
	}
	return p.DetailAddress + ", " + p.Address
}

type TimelineEvent struct {
	Time        string `mapstructure:"time" json:"time"`
	Title       string `mapstructure:"title" json:"title"`
	Description string `mapstructure:"description" json:"description"`
	Icon        string `mapstructure:"icon" json:"icon"`
}

// Venue is one map card.
type Venue struct {
	Title   string `mapstructure:"title" json:"title"`
	Address string `mapstructure:"address" json:"address"`
	Image   string `mapstructure:"image" json:"image"`
}

// GiftAccount is a bank account shown with its payment QR code.
type GiftAccount struct {
	ID     string `mapstructure:"id" json:"id"`
	Title  string `mapstructure:"title" json:"title"`
	Holder string `mapstructure:"holder" json:"holder"`
	Bank   string `mapstructure:"bank" json:"bank"`
	Number string `mapstructure:"number" json:"number"`
	QRData string `mapstructure:"qr_data" json:"qrData"`
	Accent string `mapstructure:"accent" json:"accent"`
}

// WeddingDetails is the read-only record every section renders from.
type WeddingDetails struct {
	Brand       string          `mapstructure:"brand" json:"brand"`
	Bride       Partner         `mapstructure:"bride" json:"bride"`
	Groom       Partner         `mapstructure:"groom" json:"groom"`
	Date        string          `mapstructure:"date" json:"date"`
	TimeZone    string          `mapstructure:"time_zone" json:"timeZone"`
	Venue       string          `mapstructure:"venue" json:"venue"`
	Location    string          `mapstructure:"location" json:"location"`
	HeroImage   string          `mapstructure:"hero_image" json:"heroImage"`
	RSVPImage   string          `mapstructure:"rsvp_image" json:"rsvpImage"`
	MusicPath   string          `mapstructure:"music_path" json:"musicPath"`
	MusicVolume float64         `mapstructure:"music_volume" json:"musicVolume"`
	Timeline    []TimelineEvent `mapstructure:"timeline" json:"timeline"`
	Venues      []Venue         `mapstructure:"venues" json:"venues"`
	Gifts       []GiftAccount   `mapstructure:"gifts" json:"gifts"`
	Photos      []PhotoSpec     `mapstructure:"photos" json:"photos"`
}

// PhotoSpec is the configured part of a photo. Image keys are bound at start-up.
type PhotoSpec struct {
	ID       int      `mapstructure:"id" json:"id"`
	Category Category `mapstructure:"category" json:"category"`
	Title    string   `mapstructure:"title" json:"title"`
	Fragment string   `mapstructure:"fragment" json:"fragment,omitempty"`
}

// Target parses Date in TimeZone. The date carries no offset of its own.
func (w WeddingDetails) Target() (time.Time, error) {
	loc := time.Local
	if w.TimeZone != "" {
		l, err := time.LoadLocation(w.TimeZone)
		if err != nil {
			return time.Time{}, err
		}
		loc = l
	}
	return time.ParseInLocation("2006-01-02T15:04:05", w.Date, loc)
}

// Gift returns the gift account with the given id.
func (w WeddingDetails) Gift(id string) (GiftAccount, bool) {
	for _, g := range w.Gifts {
		if g.ID == id {
			return g, true
		}
	}
	return GiftAccount{}, false
}
