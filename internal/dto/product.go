package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"itemcompare/internal/domain"
)

type ProductDTO struct {
	ID             *int64          `json:"id"`
	Name           string          `json:"name"`
	ImageURL       string          `json:"imageUrl"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Classification string          `json:"classification"`
	Specifications string          `json:"specifications"`
}

// MarshalJSON writes price as a JSON number, matching the bundled catalog,
// without touching decimal's package-level quoting switch.
func (d ProductDTO) MarshalJSON() ([]byte, error) {
	type plain ProductDTO
	return json.Marshal(struct {
		plain
		Price json.Number `json:"price"`
	}{
		plain: plain(d),
		Price: json.Number(d.Price.String()),
	})
}

func NewProductDTO(p domain.Product) ProductDTO {
	id := p.ID
	return ProductDTO{
		ID:             &id,
		Name:           p.Name,
		ImageURL:       p.ImageURL,
		Description:    p.Description,
		Price:          p.Price,
		Classification: p.Classification,
		Specifications: p.Specifications,
	}
}

func NewProductDTOs(products []domain.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductDTO(p))
	}
	return out
}

// ToDomain converts a decoded record. A missing id becomes zero so the
// catalog assigns one.
func (d ProductDTO) ToDomain() domain.Product {
	var id int64
	if d.ID != nil {
		id = *d.ID
	}
	return domain.Product{
		ID:             id,
		Name:           d.Name,
		ImageURL:       d.ImageURL,
		Description:    d.Description,
		Price:          d.Price,
		Classification: d.Classification,
		Specifications: d.Specifications,
	}
}
