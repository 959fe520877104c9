package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shalfa/catalog"
	"shalfa/i18n"
)

type roomDTO struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Type        catalog.RoomType `json:"type"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Capacity    int              `json:"capacity"`
	ImageURL    string           `json:"imageUrl"`
	Images      []string         `json:"images"`
	Amenities   []string         `json:"amenities"`
	HasKitchen  bool             `json:"hasKitchen"`
}

func toRoomDTO(r catalog.Room, lang i18n.Language) roomDTO {
	content := r.Localized(lang)
	return roomDTO{
		ID:          r.ID,
		Name:        content.Name,
		Type:        r.Type,
		Description: content.Description,
		Price:       r.Price,
		Capacity:    r.Capacity,
		ImageURL:    r.ImageURL,
		Images:      r.Images,
		Amenities:   content.Amenities,
		HasKitchen:  r.HasKitchen(),
	}
}

func toRoomDTOs(rooms []catalog.Room, lang i18n.Language) []roomDTO {
	out := make([]roomDTO, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, toRoomDTO(r, lang))
	}
	return out
}

// GetRooms lists the room inventory in the requested language.
func (hb *HandlerBundle) GetRooms(c *gin.Context) {
	lang := langFrom(c.Query("lang"))
	c.JSON(http.StatusOK, gin.H{"rooms": toRoomDTOs(catalog.Rooms(), lang)})
}

// GetRoom returns one room by id.
func (hb *HandlerBundle) GetRoom(c *gin.Context) {
	lang := langFrom(c.Query("lang"))
	room, ok := catalog.RoomByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": toRoomDTO(room, lang)})
}

type attractionDTO struct {
	ID          int                  `json:"id"`
	Name        string               `json:"name"`
	Distance    string               `json:"distance"`
	Image       string               `json:"image"`
	VideoURL    string               `json:"videoUrl,omitempty"`
	Story       string               `json:"story,omitempty"`
	Description string               `json:"description"`
	Coordinates *catalog.Coordinates `json:"coordinates,omitempty"`
}

// GetAttractions lists the local tourism highlights.
func (hb *HandlerBundle) GetAttractions(c *gin.Context) {
	lang := langFrom(c.Query("lang"))
	attractions := catalog.Attractions()
	out := make([]attractionDTO, 0, len(attractions))
	for _, a := range attractions {
		content := a.Localized(lang)
		out = append(out, attractionDTO{
			ID:          a.ID,
			Name:        content.Name,
			Distance:    a.Distance,
			Image:       a.Image,
			VideoURL:    a.VideoURL,
			Story:       content.Story,
			Description: content.Description,
			Coordinates: a.Coordinates,
		})
	}
	c.JSON(http.StatusOK, gin.H{"attractions": out})
}

type shoppingSpotDTO struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	URL         string   `json:"url"`
}

type shoppingTipDTO struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Icon  string `json:"icon"`
}

// GetShopping lists the Ciudad del Este venues and the crossing tips.
func (hb *HandlerBundle) GetShopping(c *gin.Context) {
	lang := langFrom(c.Query("lang"))

	spots := catalog.ShoppingSpots()
	spotDTOs := make([]shoppingSpotDTO, 0, len(spots))
	for _, s := range spots {
		content := s.Localized(lang)
		spotDTOs = append(spotDTOs, shoppingSpotDTO{
			ID:          s.ID,
			Name:        content.Name,
			Description: content.Description,
			Image:       s.Image,
			Tags:        s.Tags,
			URL:         s.URL,
		})
	}

	tips := catalog.ShoppingTips()
	tipDTOs := make([]shoppingTipDTO, 0, len(tips))
	for _, t := range tips {
		content := t.Localized(lang)
		tipDTOs = append(tipDTOs, shoppingTipDTO{Title: content.Title, Text: content.Text, Icon: t.Icon})
	}

	c.JSON(http.StatusOK, gin.H{"spots": spotDTOs, "tips": tipDTOs})
}

// GetPriceSearch builds the external price comparison link for a query.
func (hb *HandlerBundle) GetPriceSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": catalog.PriceSearchURL(query)})
}

type slideDTO struct {
	ID       int    `json:"id"`
	Image    string `json:"image"`
	Alt      string `json:"alt"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// GetHeroSlides lists the landing carousel slides.
func (hb *HandlerBundle) GetHeroSlides(c *gin.Context) {
	lang := langFrom(c.Query("lang"))
	slides := catalog.HeroSlides()
	out := make([]slideDTO, 0, len(slides))
	for _, h := range slides {
		content := h.Localized(lang)
		out = append(out, slideDTO{ID: h.ID, Image: h.Image, Alt: h.Alt, Title: content.Title, Subtitle: content.Subtitle})
	}
	c.JSON(http.StatusOK, gin.H{"slides": out})
}

// GetHotelInfo returns the contact card and house rules.
func (hb *HandlerBundle) GetHotelInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"info": catalog.Info, "rules": catalog.Rules})
}

// GetTranslations serves the full string table for a language.
func (hb *HandlerBundle) GetTranslations(c *gin.Context) {
	lang := i18n.Language(c.Param("lang"))
	if !lang.Valid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "unsupported language"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": lang, "strings": hb.Bundle.Table(lang)})
}
