package models

import "strings"

// FlatKeys is the serialization order of a flattened request: identifier
// first, then the form fields in submission order, then the entry timestamp.
var FlatKeys = []string{
	"접수ID",
	"제품명",
	"제품유형",
	"제형",
	"기능성",
	"주요성분",
	"향",
	"비건",
	"피부타입추천",
	"포지셔닝",
	"사용감설명",
	"고객사",
	"담당자이메일",
	"출시희망일",
	"입력일",
}

// Flatten converts a request into the flat key-value form handed to document
// renderers and external transports. List-valued fields are comma-joined.
func Flatten(req Request) map[string]string {
	return map[string]string{
		"접수ID":   req.ID,
		"제품명":    req.Fields.ProductName,
		"제품유형":   req.Fields.ProductType,
		"제형":     req.Fields.Texture,
		"기능성":    strings.Join(req.Fields.Claims, ", "),
		"주요성분":   req.Fields.Ingredients,
		"향":      req.Fields.Fragrance,
		"비건":     req.Fields.Vegan,
		"피부타입추천": req.Fields.SkinType,
		"포지셔닝":   req.Fields.Positioning,
		"사용감설명":  req.Fields.Feel,
		"고객사":    req.Fields.Customer,
		"담당자이메일": strings.Join(req.Fields.ContactEmails, ", "),
		"출시희망일":  req.Fields.ShipDate,
		"입력일":    req.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
