package models

import (
	"time"
)

// Fields is the flat attribute set shared by development requests and catalog
// entries. All values are free-text strings except Claims, which is an
// unordered set of functional-claim labels (각질제거, 진정, 보습, ...).
type Fields struct {
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

// Request is one customer-submitted development request. The ID is assigned
// by the store at creation time and never changes afterwards, even across
// edits.
type Request struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Fields    Fields    `json:"fields"`
}

// FieldPatch is a partial update to a Request. Nil members are left
// untouched; non-nil members replace the existing value.
type FieldPatch struct {
	ProductName   *string   `json:"product_name,omitempty"`
	ProductType   *string   `json:"product_type,omitempty"`
	Texture       *string   `json:"texture,omitempty"`
	Claims        *[]string `json:"claims,omitempty"`
	Ingredients   *string   `json:"ingredients,omitempty"`
	Fragrance     *string   `json:"fragrance,omitempty"`
	Vegan         *string   `json:"vegan,omitempty"`
	SkinType      *string   `json:"skin_type,omitempty"`
	Positioning   *string   `json:"positioning,omitempty"`
	Feel          *string   `json:"feel,omitempty"`
	Customer      *string   `json:"customer,omitempty"`
	ContactEmails *[]string `json:"contact_emails,omitempty"`
	ShipDate      *string   `json:"ship_date,omitempty"`
}

// Apply merges the patch into f.
func (p FieldPatch) Apply(f *Fields) {
	if p.ProductName != nil {
		f.ProductName = *p.ProductName
	}
	if p.ProductType != nil {
		f.ProductType = *p.ProductType
	}
	if p.Texture != nil {
		f.Texture = *p.Texture
	}
	if p.Claims != nil {
		f.Claims = append([]string(nil), (*p.Claims)...)
	}
	if p.Ingredients != nil {
		f.Ingredients = *p.Ingredients
	}
	if p.Fragrance != nil {
		f.Fragrance = *p.Fragrance
	}
	if p.Vegan != nil {
		f.Vegan = *p.Vegan
	}
	if p.SkinType != nil {
		f.SkinType = *p.SkinType
	}
	if p.Positioning != nil {
		f.Positioning = *p.Positioning
	}
	if p.Feel != nil {
		f.Feel = *p.Feel
	}
	if p.Customer != nil {
		f.Customer = *p.Customer
	}
	if p.ContactEmails != nil {
		f.ContactEmails = append([]string(nil), (*p.ContactEmails)...)
	}
	if p.ShipDate != nil {
		f.ShipDate = *p.ShipDate
	}
}

// Clone returns a deep copy of f.
func (f Fields) Clone() Fields {
	out := f
	out.Claims = append([]string(nil), f.Claims...)
	out.ContactEmails = append([]string(nil), f.ContactEmails...)
	return out
}
