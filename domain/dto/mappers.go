package dto

import (
	"time"

	"wedding-invitation/domain/countdown"
	"wedding-invitation/domain/gallery"
	"wedding-invitation/domain/models"
)

const displayDateLayout = "Monday, January 2, 2006"

func PhotoToPhotoResponse(photo models.Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:       photo.ID,
		Title:    photo.Title,
		Category: string(photo.Category),
	}
	if photo.ThumbKey != "" {
		resp.ThumbURL = ThumbnailPath + photo.ThumbKey
	}
	if photo.FullKey != "" {
		resp.FullURL = LargePath + photo.FullKey
	}
	return resp
}

func PhotosToPhotoResponses(photos []models.Photo) []PhotoResponse {
	out := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		out[i] = PhotoToPhotoResponse(p)
	}
	return out
}

func GalleryViewToResponse(v gallery.View, locked bool) *GalleryStateResponse {
	categories := make([]CategoryResponse, len(models.FilterCategories))
	for i, c := range models.FilterCategories {
		categories[i] = CategoryResponse{
			ID:     string(c),
			Label:  c.Label(),
			Active: c == v.State.ActiveCategory,
		}
	}

	resp := &GalleryStateResponse{
		ActiveCategory: string(v.State.ActiveCategory),
		Categories:     categories,
		Expanded:       v.State.Expanded,
		CanExpand:      v.CanExpand,
		Total:          len(v.Filtered),
		Visible:        PhotosToPhotoResponses(v.Visible),
		SelectedIndex:  -1,
		ScrollLocked:   locked,
	}
	if v.State.Selected != nil {
		selected := PhotoToPhotoResponse(*v.State.Selected)
		resp.Selected = &selected
		for i, p := range v.Filtered {
			if p.ID == v.State.Selected.ID {
				resp.SelectedIndex = i
				break
			}
		}
	}
	return resp
}

func RSVPRecordToResponse(r models.RSVPRecord) RSVPResponse {
	return RSVPResponse{
		ID:          r.ID,
		Name:        r.Name,
		Guests:      r.Guests,
		Phone:       r.Phone,
		Message:     r.Message,
		SubmittedAt: r.SubmittedAt,
	}
}

func RSVPRecordsToListResponse(records []models.RSVPRecord) *RSVPListResponse {
	resp := &RSVPListResponse{
		RSVPs: make([]RSVPResponse, len(records)),
		Total: len(records),
	}
	for i, r := range records {
		resp.RSVPs[i] = RSVPRecordToResponse(r)
		resp.TotalGuests += r.Guests
	}
	return resp
}

func CountdownToResponse(b countdown.Breakdown, target time.Time) *CountdownResponse {
	resp := &CountdownResponse{
		Days:    b.Days,
		Hours:   b.Hours,
		Minutes: b.Minutes,
		Seconds: b.Seconds,
		Padded:  b.Padded(),
		Done:    b.Done,
		Target:  target,
	}
	if b.Done {
		resp.Message = countdown.ArrivedMessage
	}
	return resp
}

// DetailsResolver turns stored references into page URLs.
type DetailsResolver struct {
	Image      func(fragment string) string
	Bio        func(text string) string
	MapURL     func(address string) string
	QRImageURL func(payload string) string
	QRLocalURL func(giftID string) string
}

func PartnerToResponse(p models.Partner, r DetailsResolver) PartnerResponse {
	address := p.FullAddress()
	return PartnerResponse{
		Name:        p.Name,
		FullName:    p.FullName,
		Father:      p.Father,
		Mother:      p.Mother,
		Address:     address,
		MapURL:      r.MapURL(address),
		Description: p.Description,
		BioHTML:     r.Bio(p.Description),
		ImageURL:    r.Image(p.Image),
	}
}

func WeddingDetailsToResponse(d models.WeddingDetails, target time.Time, r DetailsResolver) *WeddingDetailsResponse {
	resp := &WeddingDetailsResponse{
		Brand:        d.Brand,
		Bride:        PartnerToResponse(d.Bride, r),
		Groom:        PartnerToResponse(d.Groom, r),
		Date:         target,
		DisplayDate:  target.Format(displayDateLayout),
		Venue:        d.Venue,
		Location:     d.Location,
		HeroImageURL: r.Image(d.HeroImage),
		RSVPImageURL: r.Image(d.RSVPImage),
		MusicURL:     d.MusicPath,
		MusicVolume:  d.MusicVolume,
	}

	for _, e := range d.Timeline {
		resp.Timeline = append(resp.Timeline, TimelineEventResponse{
			Time:        e.Time,
			Title:       e.Title,
			Description: e.Description,
			Icon:        e.Icon,
		})
	}
	for _, v := range d.Venues {
		resp.Venues = append(resp.Venues, VenueResponse{
			Title:    v.Title,
			Address:  v.Address,
			ImageURL: v.Image,
			MapURL:   r.MapURL(v.Address),
		})
	}
	for _, g := range d.Gifts {
		resp.Gifts = append(resp.Gifts, GiftResponse{
			ID:         g.ID,
			Title:      g.Title,
			Holder:     g.Holder,
			Bank:       g.Bank,
			Number:     g.Number,
			Accent:     g.Accent,
			QRImageURL: r.QRImageURL(g.QRData),
			QRLocalURL: r.QRLocalURL(g.ID),
		})
	}
	return resp
}
