// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strings"
	"time"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const dateOnlyLayout = "2006-01-02"

// dateOnly marshals as "YYYY-MM-DD", the storefront's date wire format.
type dateOnly struct {
	time.Time
}

func (d *dateOnly) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		d.Time = time.Time{}

		return nil
	}

	parsed, err := time.Parse(dateOnlyLayout, raw)
	if err != nil {
		return errors.Wrap(err, "invalid date, expected YYYY-MM-DD")
	}
	d.Time = parsed

	return nil
}

func (d dateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + d.Format(dateOnlyLayout) + `"`), nil
}

// userResponse is the outward shape of a user account. The senha field is
// always empty; it exists so clients relying on the original payload shape
// keep working.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nome"`
	Username  string    `json:"usuario"`
	Password  string    `json:"senha"`
	Photo     string    `json:"foto,omitempty"`
	BirthDate dateOnly  `json:"dataNascimento"`
}

func newUserResponse(user *entity.User) *userResponse {
	return &userResponse{
		ID:        user.ID,
		Name:      user.Name,
		Username:  user.Username,
		Password:  "",
		Photo:     user.Photo,
		BirthDate: dateOnly{user.BirthDate},
	}
}

type categoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"nome"`
	Description string    `json:"descricao,omitempty"`
}

func newCategoryResponse(category *entity.Category) *categoryResponse {
	return &categoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}

func newCategoryListResponse(categories []*entity.Category) []*categoryResponse {
	out := make([]*categoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, newCategoryResponse(category))
	}

	return out
}

type productResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"nome"`
	Description string            `json:"descricao,omitempty"`
	Quantity    int               `json:"quantidade"`
	Price       float64           `json:"preco"`
	Photo       string            `json:"foto,omitempty"`
	Category    *categoryResponse `json:"categoria,omitempty"`
}

func newProductResponse(product *entity.Product) *productResponse {
	out := &productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Quantity:    product.Quantity,
		Price:       product.Price,
		Photo:       product.Photo,
	}
	if product.Category != nil {
		out.Category = newCategoryResponse(product.Category)
	}

	return out
}

func newProductListResponse(products []*entity.Product) []*productResponse {
	out := make([]*productResponse, 0, len(products))
	for _, product := range products {
		out = append(out, newProductResponse(product))
	}

	return out
}
