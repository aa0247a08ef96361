// Package web renders the invitation page and serves its stylesheet and script.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"wedding-invitation/domain/dto"
	"wedding-invitation/domain/models"
	"wedding-invitation/domain/navigation"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// wishRows is how many marquee rows the RSVP backdrop draws.
const wishRows = 4

// RSVPView is the reply form as this guest should see it.
type RSVPView struct {
	Replied   bool
	Submitted bool
	Form      dto.RSVPRequest
	Errors    map[string]string
}

// PageData is everything the index template reads.
type PageData struct {
	Details       *dto.WeddingDetailsResponse
	Countdown     *dto.CountdownResponse
	Gallery       *dto.GalleryStateResponse
	Wishes        []string
	RSVP          RSVPView
	Sections      []navigation.Section
	ActiveSection string
	Scrolled      bool
	Year          int
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"wishRows":     buildWishRows,
		"guestOptions": guestOptions,
		"plural":       plural,
		"partnerCard":  newPartnerCard,
		"mod":          func(a, b int) int { return a % b },
		"inc":          func(n int) int { return n + 1 },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render executes name into w. The output is buffered so a template error
// never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// StaticFS holds site.css and site.js.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// buildWishRows alternates the list and its reverse, one per marquee row.
func buildWishRows(wishes []string) [][]string {
	reversed := make([]string, len(wishes))
	for i, w := range wishes {
		reversed[len(wishes)-1-i] = w
	}
	rows := make([][]string, wishRows)
	for i := range rows {
		if i%2 == 0 {
			rows[i] = wishes
		} else {
			rows[i] = reversed
		}
	}
	return rows
}

type partnerCard struct {
	Partner dto.PartnerResponse
	Role    string
	Bio     template.HTML
}

// newPartnerCard marks the bio safe. It is rendered from the wedding
// details file, never from guest input.
func newPartnerCard(p dto.PartnerResponse, role string) partnerCard {
	return partnerCard{Partner: p, Role: role, Bio: template.HTML(p.BioHTML)}
}

func guestOptions() []int {
	out := make([]int, 0, models.MaxGuests)
	for n := models.MinGuests; n <= models.MaxGuests; n++ {
		out = append(out, n)
	}
	return out
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
