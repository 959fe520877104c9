// Package catalog holds the hotel's static content: rooms, attractions,
// shopping venues and house rules. Everything here is loaded once and
// read-only at runtime; accessors hand out the shared backing data and
// callers must not mutate it.
package catalog

import (
	"net/url"
	"strings"

	"shalfa/i18n"
)

// RoomType is the category tag of a room.
type RoomType string

const (
	RoomStandard  RoomType = "Standard"
	RoomComfort   RoomType = "Conforto"
	RoomFamily    RoomType = "Família"
	RoomApartment RoomType = "Apartamento"
	RoomStudio    RoomType = "Estúdio Gourmet"
)

// RoomContent is a translated rendition of a room's display fields.
type RoomContent struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
}

// Room describes one bookable unit. Base fields are Portuguese; the
// Translations map carries English and Spanish renditions.
type Room struct {
	ID          string                          `json:"id"`
	Name        string                          `json:"name"`
	Type        RoomType                        `json:"type"`
	Description string                          `json:"description"`
	Price       float64                         `json:"price"`
	Capacity    int                             `json:"capacity"`
	ImageURL    string                          `json:"imageUrl"`
	Images      []string                        `json:"images"`
	Amenities   []string                        `json:"amenities"`
	Translations map[i18n.Language]RoomContent  `json:"-"`
}

// HasKitchen reports whether the room offers a kitchen, derived from the
// amenity list the same way the booking filter and the concierge prompt
// read it.
func (r Room) HasKitchen() bool {
	for _, a := range r.Amenities {
		lower := strings.ToLower(a)
		if strings.Contains(lower, "cozinha") || strings.Contains(lower, "micro-ondas") {
			return true
		}
	}
	return false
}

// Localized returns the room's display content for the given language,
// falling back to the Portuguese base fields.
func (r Room) Localized(lang i18n.Language) RoomContent {
	if lang != i18n.Portuguese {
		if c, ok := r.Translations[lang]; ok {
			return c
		}
	}
	return RoomContent{Name: r.Name, Description: r.Description, Amenities: r.Amenities}
}

// PlaceContent is a translated rendition of an attraction's display fields.
type PlaceContent struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Story       string `json:"story,omitempty"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Attraction is a local tourism highlight.
type Attraction struct {
	ID           int                             `json:"id"`
	Name         string                          `json:"name"`
	Distance     string                          `json:"distance"`
	Image        string                          `json:"image"`
	VideoURL     string                          `json:"videoUrl,omitempty"`
	Story        string                          `json:"story,omitempty"`
	Description  string                          `json:"description"`
	Coordinates  *Coordinates                    `json:"coordinates,omitempty"`
	Translations map[i18n.Language]PlaceContent  `json:"-"`
}

// Localized returns the attraction's display content for the given language.
func (a Attraction) Localized(lang i18n.Language) PlaceContent {
	if lang != i18n.Portuguese {
		if c, ok := a.Translations[lang]; ok {
			return c
		}
	}
	return PlaceContent{Name: a.Name, Description: a.Description, Story: a.Story}
}

// ShoppingSpot is a cross-border shopping venue in Ciudad del Este.
type ShoppingSpot struct {
	ID           int                             `json:"id"`
	Name         string                          `json:"name"`
	Description  string                          `json:"description"`
	Image        string                          `json:"image"`
	Tags         []string                        `json:"tags"`
	URL          string                          `json:"url"`
	Translations map[i18n.Language]PlaceContent  `json:"-"`
}

// Localized returns the spot's display content for the given language.
func (s ShoppingSpot) Localized(lang i18n.Language) PlaceContent {
	if lang != i18n.Portuguese {
		if c, ok := s.Translations[lang]; ok {
			return c
		}
	}
	return PlaceContent{Name: s.Name, Description: s.Description}
}

// TipContent is a translated rendition of a shopping tip.
type TipContent struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ShoppingTip is a practical hint for shoppers crossing into Paraguay.
type ShoppingTip struct {
	Title        string                        `json:"title"`
	Text         string                        `json:"text"`
	Icon         string                        `json:"icon"`
	Translations map[i18n.Language]TipContent  `json:"-"`
}

// Localized returns the tip's display content for the given language.
func (t ShoppingTip) Localized(lang i18n.Language) TipContent {
	if lang != i18n.Portuguese {
		if c, ok := t.Translations[lang]; ok {
			return c
		}
	}
	return TipContent{Title: t.Title, Text: t.Text}
}

// SlideContent is a translated rendition of a hero slide.
type SlideContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// HeroSlide is one image of the landing carousel.
type HeroSlide struct {
	ID           int                             `json:"id"`
	Image        string                          `json:"image"`
	Alt          string                          `json:"alt"`
	Title        string                          `json:"title"`
	Subtitle     string                          `json:"subtitle"`
	Translations map[i18n.Language]SlideContent  `json:"-"`
}

// Localized returns the slide's display content for the given language.
func (h HeroSlide) Localized(lang i18n.Language) SlideContent {
	if lang != i18n.Portuguese {
		if c, ok := h.Translations[lang]; ok {
			return c
		}
	}
	return SlideContent{Title: h.Title, Subtitle: h.Subtitle}
}

// HotelInfo is the hotel's contact card.
type HotelInfo struct {
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email"`
	Coordinates Coordinates `json:"coordinates"`
}

// HotelRules are the house rules surfaced to guests and to the concierge.
type HotelRules struct {
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	ReceptionInfo string `json:"receptionInfo"`
}

// Info is the hotel contact card.
var Info = HotelInfo{
	Name:    "Residencial Shalfa",
	Address: "R. Cassiano Ricardo, 675 - Vila Portes, Foz do Iguaçu - PR, 85865-050",
	Phone:   "+55 45 99135-8262",
	Email:   "reservasrshalfa@gmail.com",
	Coordinates: Coordinates{
		Lat: -25.511361,
		Lng: -54.592083,
	},
}

// Rules are the house rules.
var Rules = HotelRules{
	CheckIn:       "15:00 às 05:00",
	CheckOut:      "Até às 11:00",
	ReceptionInfo: "Check-in presencial na recepção",
}

// Rooms returns the full room inventory in catalog order.
func Rooms() []Room {
	return rooms
}

// RoomByID looks a room up by its id.
func RoomByID(id string) (Room, bool) {
	for _, r := range rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// Attractions returns the tourism highlights.
func Attractions() []Attraction {
	return attractions
}

// ShoppingSpots returns the shopping venues.
func ShoppingSpots() []ShoppingSpot {
	return shoppingSpots
}

// ShoppingTips returns the cross-border shopping tips.
func ShoppingTips() []ShoppingTip {
	return shoppingTips
}

// HeroSlides returns the landing carousel slides.
func HeroSlides() []HeroSlide {
	return heroSlides
}

// PriceSearchURL builds the ComprasParaguai price search link for a query.
func PriceSearchURL(query string) string {
	return "https://www.comprasparaguai.com.br/busca/?q=" + url.QueryEscape(query)
}
