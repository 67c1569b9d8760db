package dto

import (
	"formulab/internal/models"
)

// CreateRequestBody is the submitted form. Field names match the stored
// attribute set one to one.
type CreateRequestBody struct {
	ProductName   string   `json:"product_name"`
	ProductType   string   `json:"product_type"`
	Texture       string   `json:"texture"`
	Claims        []string `json:"claims"`
	Ingredients   string   `json:"ingredients"`
	Fragrance     string   `json:"fragrance"`
	Vegan         string   `json:"vegan"`
	SkinType      string   `json:"skin_type"`
	Positioning   string   `json:"positioning"`
	Feel          string   `json:"feel"`
	Customer      string   `json:"customer"`
	ContactEmails []string `json:"contact_emails"`
	ShipDate      string   `json:"ship_date"`
}

func (b CreateRequestBody) ToFields() models.Fields {
	return models.Fields{
		ProductName:   b.ProductName,
		ProductType:   b.ProductType,
		Texture:       b.Texture,
		Claims:        b.Claims,
		Ingredients:   b.Ingredients,
		Fragrance:     b.Fragrance,
		Vegan:         b.Vegan,
		SkinType:      b.SkinType,
		Positioning:   b.Positioning,
		Feel:          b.Feel,
		Customer:      b.Customer,
		ContactEmails: b.ContactEmails,
		ShipDate:      b.ShipDate,
	}
}

// RequestResponse is one stored request.
type RequestResponse struct {
	ID        string        `json:"id"`
	CreatedAt string        `json:"created_at"`
	Fields    models.Fields `json:"fields"`
}

func NewRequestResponse(req models.Request) RequestResponse {
	return RequestResponse{
		ID:        req.ID,
		CreatedAt: req.CreatedAt.Format("2006-01-02 15:04:05"),
		Fields:    req.Fields,
	}
}

func NewRequestListResponse(reqs []models.Request) []RequestResponse {
	out := make([]RequestResponse, len(reqs))
	for i, r := range reqs {
		out[i] = NewRequestResponse(r)
	}
	return out
}
