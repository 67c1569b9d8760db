package upload

import (
	"strings"

	"formulab/internal/models"
)

// Field identifies one target record field for bulk autofill.
type Field string

const (
	FieldProductName Field = "product_name"
	FieldProductType Field = "product_type"
	FieldTexture     Field = "texture"
	FieldClaims      Field = "claims"
	FieldIngredients Field = "ingredients"
	FieldFragrance   Field = "fragrance"
	FieldVegan       Field = "vegan"
	FieldSkinType    Field = "skin_type"
	FieldPositioning Field = "positioning"
	FieldFeel        Field = "feel"
	FieldCustomer    Field = "customer"
	FieldEmails      Field = "contact_emails"
	FieldShipDate    Field = "ship_date"
)

// fieldOrder fixes the evaluation order of the mapping so the result never
// depends on map iteration.
var fieldOrder = []Field{
	FieldProductName,
	FieldProductType,
	FieldTexture,
	FieldClaims,
	FieldIngredients,
	FieldFragrance,
	FieldVegan,
	FieldSkinType,
	FieldPositioning,
	FieldFeel,
	FieldCustomer,
	FieldEmails,
	FieldShipDate,
}

// aliases is the declarative mapping table: target field to the set of
// acceptable source column headers. Matching is case-insensitive on the
// trimmed header; the first matching column (left to right) wins per field.
var aliases = map[Field][]string{
	FieldProductName: {"제품명", "product name", "name"},
	FieldProductType: {"제품유형", "제품 유형", "product type"},
	FieldTexture:     {"제형", "texture"},
	FieldClaims:      {"기능성", "claims", "functions"},
	FieldIngredients: {"주요성분", "주요 성분", "ingredients"},
	FieldFragrance:   {"향", "fragrance"},
	FieldVegan:       {"비건여부", "비건 여부", "비건", "vegan"},
	FieldSkinType:    {"피부타입추천", "피부타입", "skin type"},
	FieldPositioning: {"포지셔닝", "positioning"},
	FieldFeel:        {"사용감설명", "사용감 설명", "사용감", "feel"},
	FieldCustomer:    {"고객사", "고객", "customer"},
	FieldEmails:      {"이메일", "담당자이메일", "email", "emails"},
	FieldShipDate:    {"출시희망일", "납기일", "ship date"},
}

// ColumnMap resolves target fields to source column indexes.
type ColumnMap map[Field]int

// MapColumns evaluates the alias table against a header row. Fields with no
// matching column are absent from the result; a header matching no field at
// all yields an empty (not nil-error) map.
func MapColumns(headers []string) ColumnMap {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	cm := make(ColumnMap)
	for _, field := range fieldOrder {
		for col, header := range normalized {
			if header == "" {
				continue
			}
			if matchesAlias(field, header) {
				cm[field] = col
				break
			}
		}
	}
	return cm
}

func matchesAlias(field Field, header string) bool {
	for _, a := range aliases[field] {
		if header == strings.ToLower(a) {
			return true
		}
	}
	return false
}

// MappedFields lists the resolved target fields in declaration order.
func (cm ColumnMap) MappedFields() []Field {
	var out []Field
	for _, f := range fieldOrder {
		if _, ok := cm[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// FieldsFromRow projects one data row through the column map. List-valued
// fields (claims, contact emails) are split on commas.
func (cm ColumnMap) FieldsFromRow(row []string) models.Fields {
	cell := func(field Field) string {
		col, ok := cm[field]
		if !ok || col >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[col])
	}

	return models.Fields{
		ProductName:   cell(FieldProductName),
		ProductType:   cell(FieldProductType),
		Texture:       cell(FieldTexture),
		Claims:        splitList(cell(FieldClaims)),
		Ingredients:   cell(FieldIngredients),
		Fragrance:     cell(FieldFragrance),
		Vegan:         cell(FieldVegan),
		SkinType:      cell(FieldSkinType),
		Positioning:   cell(FieldPositioning),
		Feel:          cell(FieldFeel),
		Customer:      cell(FieldCustomer),
		ContactEmails: splitList(cell(FieldEmails)),
		ShipDate:      cell(FieldShipDate),
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
