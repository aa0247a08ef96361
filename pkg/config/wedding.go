package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"wedding-invitation/domain/models"
)

// DefaultWedding is the invitation as published.
func DefaultWedding() models.WeddingDetails {
	bride := models.Partner{
		Name:          "Thu Thủy",
		FullName:      "Nguyễn Thu Thủy",
		Father:        "Nguyễn Văn Phong",
		Mother:        "Phạm Thị Hà",
		DetailAddress: "Rạp Kim Mâu, Năm Dân",
		Address:       "Kim Sơn, Ninh Bình, Việt Nam",
		Description:   "Gentle and warm, she loves the simple little things in life and always believes in the magic of true love.",
		Image:         "HERO0164",
	}
	groom := models.Partner{
		Name:          "Đức Linh",
		FullName:      "Nguyễn Đức Linh",
		Father:        "Nguyễn Như Thơ",
		Mother:        "Bùi Thị Phóng",
		DetailAddress: "Số 7 Ngách 6 Ngõ 132 Đường Đinh Điền",
		Address:       "Hoa Lư, Ninh Bình, Việt Nam",
		Description:   "Mature and sincere. For him, happiness is simply walking together and sharing every moment with the one he loves.",
		Image:         "HERO0332",
	}

	return models.WeddingDetails{
		Brand:       "L & T",
		Bride:       bride,
		Groom:       groom,
		Date:        "2026-01-12T09:00:00",
		TimeZone:    "Asia/Ho_Chi_Minh",
		Venue:       "Hoa Lư & Kim Sơn",
		Location:    "Ninh Bình, Việt Nam",
		HeroImage:   "HERO9942",
		RSVPImage:   "HERO9809",
		MusicPath:   "/music/honcayeu.mp3",
		MusicVolume: 0.3,
		Timeline: []models.TimelineEvent{
			{Time: "09:00 AM", Title: "Welcome Guests", Icon: "heart", Description: "Guests arrive and enjoy welcome drinks."},
			{Time: "10:00 AM", Title: "The Ceremony", Icon: "heart", Description: "Exchange of vows and rings."},
			{Time: "11:00 AM", Title: "Photo Session", Icon: "camera", Description: "Group photos with family and friends."},
			{Time: "12:00 PM", Title: "Lunch Reception", Icon: "utensils", Description: "Enjoy a delicious meal together."},
			{Time: "02:00 PM", Title: "Party Time", Icon: "music", Description: "Music, dancing, and celebration."},
		},
		Venues: []models.Venue{
			{Title: "Groom's Family Home", Address: groom.DetailAddress, Image: "/maps/groom.png"},
			{Title: "Bride's Family Home", Address: bride.DetailAddress, Image: "/maps/image.png"},
		},
		Gifts: []models.GiftAccount{
			{
				ID:     "bride",
				Title:  "The Bride",
				Holder: "Nguyễn Thu Thủy",
				Bank:   "TPBank",
				Number: "0060 6386 001",
				QRData: "0002010102111531397007040052044600000060638600138550010A000000727012500069704230111006063860010208QRIBFTTA5204513753037045802VN5915NGUYEN THU THUY6006Ha Noi8707CLASSIC630483BD",
				Accent: "rose",
			},
			{
				ID:     "groom",
				Title:  "The Groom",
				Holder: "Nguyễn Đức Linh",
				Bank:   "TPBank",
				Number: "2842 2031 998",
				QRData: "0002010102111531397007040052044600002842203199838550010A000000727012500069704230111284220319980208QRIBFTTA5204513753037045802VN5915NGUYEN DUC LINH6006Ha Noi8707CLASSIC630457E3",
				Accent: "blue",
			},
		},
		Photos: []models.PhotoSpec{
			{ID: 1, Category: models.CategoryCeremony, Title: "The Ceremony"},
			{ID: 2, Category: models.CategoryCouple, Title: "First Look"},
			{ID: 3, Category: models.CategoryReception, Title: "Reception Hall"},
			{ID: 4, Category: models.CategoryCouple, Title: "Love Story"},
			{ID: 5, Category: models.CategoryCeremony, Title: "The Vows"},
			{ID: 6, Category: models.CategoryReception, Title: "First Dance"},
			{ID: 7, Category: models.CategoryDetails, Title: "Wedding Rings"},
			{ID: 8, Category: models.CategoryCouple, Title: "Golden Hour"},
			{ID: 9, Category: models.CategoryCeremony, Title: "Walking Down Aisle"},
			{ID: 10, Category: models.CategoryReception, Title: "Celebration"},
			{ID: 11, Category: models.CategoryDetails, Title: "Bouquet"},
			{ID: 12, Category: models.CategoryCouple, Title: "Sunset Romance"},
			{ID: 13, Category: models.CategoryCeremony, Title: "The Kiss"},
			{ID: 14, Category: models.CategoryReception, Title: "Party Time"},
			{ID: 15, Category: models.CategoryDetails, Title: "Table Setting"},
		},
	}
}

// LoadWedding layers an optional YAML file and WEDDING_* environment
// variables over DefaultWedding. A missing file is not an error.
func LoadWedding(path string) (*models.WeddingDetails, error) {
	details := DefaultWedding()

	v := viper.New()
	setWeddingDefaults(v, details)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read wedding file: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat wedding file: %w", err)
		}
	}

	v.SetEnvPrefix("WEDDING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&details); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wedding details: %w", err)
	}
	if err := ValidateWedding(details); err != nil {
		return nil, err
	}
	return &details, nil
}

// setWeddingDefaults registers the scalar keys so environment overrides
// reach them. List sections come from the pre-filled struct.
func setWeddingDefaults(v *viper.Viper, d models.WeddingDetails) {
	v.SetDefault("brand", d.Brand)
	v.SetDefault("date", d.Date)
	v.SetDefault("time_zone", d.TimeZone)
	v.SetDefault("venue", d.Venue)
	v.SetDefault("location", d.Location)
	v.SetDefault("hero_image", d.HeroImage)
	v.SetDefault("rsvp_image", d.RSVPImage)
	v.SetDefault("music_path", d.MusicPath)
	v.SetDefault("music_volume", d.MusicVolume)

	for prefix, p := range map[string]models.Partner{"bride": d.Bride, "groom": d.Groom} {
		v.SetDefault(prefix+".name", p.Name)
		v.SetDefault(prefix+".full_name", p.FullName)
		v.SetDefault(prefix+".father", p.Father)
		v.SetDefault(prefix+".mother", p.Mother)
		v.SetDefault(prefix+".detail_address", p.DetailAddress)
		v.SetDefault(prefix+".address", p.Address)
		v.SetDefault(prefix+".description", p.Description)
		v.SetDefault(prefix+".image", p.Image)
	}
}

// ValidateWedding rejects details the page cannot render.
func ValidateWedding(d models.WeddingDetails) error {
	if _, err := d.Target(); err != nil {
		return fmt.Errorf("invalid wedding date %q: %w", d.Date, err)
	}
	seen := make(map[int]bool, len(d.Photos))
	for _, p := range d.Photos {
		if seen[p.ID] {
			return fmt.Errorf("duplicate photo id %d", p.ID)
		}
		seen[p.ID] = true
		if !p.Category.IsPhotoCategory() {
			return fmt.Errorf("photo %d has unknown category %q", p.ID, p.Category)
		}
	}
	for _, g := range d.Gifts {
		if g.ID == "" {
			return errors.New("gift account without id")
		}
	}
	return nil
}
