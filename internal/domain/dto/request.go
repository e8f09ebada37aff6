// Package dto defines the request and response bodies of the HTTP API.
//
// Field names mirror the storefront form so a browser client can post the
// form values as they are.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/guttosm/flashe-service/internal/domain/model"
)

// Quantity is the piece count as typed into the form. Clients may send it
// as a JSON number or as a string; either way it is kept as text and parsed
// the way the form field is.
type Quantity string

// UnmarshalJSON accepts a JSON string, number or null.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*q = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = Quantity(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("quantity: expected number or string: %w", err)
		}
		*q = Quantity(n.String())
	}
	return nil
}

// Int returns the parsed piece count, 0 when missing or unusable.
func (q Quantity) Int() int {
	return model.ParseQuantity(string(q))
}

// QuoteRequest asks for the price of the current selection. It binds from
// a JSON body or from query parameters.
//
// @Description Current selection to price
type QuoteRequest struct {
	FlashTypeID string   `json:"flash_type_id" form:"flash_type_id" example:"basic"`
	Quantity    Quantity `json:"quantity" form:"quantity" swaggertype:"string" example:"2"`
	CustomTypes string   `json:"custom_types" form:"custom_types" example:"1 رسم و 1 تأسيس"`
	Region      string   `json:"region" form:"region" example:"القاهرة"`
} // @name QuoteRequest

// ToModel converts the request to a pricing request.
func (r QuoteRequest) ToModel() model.QuoteRequest {
	return model.OrderForm{
		Quantity:        string(r.Quantity),
		SelectedTypeID:  r.FlashTypeID,
		CustomTypesText: r.CustomTypes,
		Region:          r.Region,
	}.Normalized().QuoteRequest()
}

// OrderRequest is a submitted order form.
//
// @Description Order form submitted by the customer
type OrderRequest struct {
	Name           string   `json:"name" example:"أحمد علي"`
	Quantity       Quantity `json:"quantity" swaggertype:"string" example:"1"`
	FlashTypeID    string   `json:"flash_type_id" example:"basic"`
	CustomTypes    string   `json:"custom_types"`
	Phone          string   `json:"phone" example:"01012345678"`
	SecondaryPhone string   `json:"secondary_phone"`
	Region         string   `json:"region" example:"القاهرة"`
	Address        string   `json:"address" example:"شارع التحرير"`
	Notes          string   `json:"notes"`
} // @name OrderRequest

// ToForm converts the request to an order form.
func (r OrderRequest) ToForm() model.OrderForm {
	return model.OrderForm{
		Name:            r.Name,
		Quantity:        string(r.Quantity),
		SelectedTypeID:  r.FlashTypeID,
		CustomTypesText: r.CustomTypes,
		Phone:           r.Phone,
		SecondaryPhone:  r.SecondaryPhone,
		Region:          r.Region,
		Address:         r.Address,
		Notes:           r.Notes,
	}
}

// PublishCatalogRequest replaces the active catalog snapshot.
//
// @Description Catalog document to publish as the active snapshot
type PublishCatalogRequest struct {
	Catalog   model.CatalogDocument `json:"catalog"`
	CreatedBy string                `json:"created_by,omitempty" example:"admin"`
} // @name PublishCatalogRequest

// QuantityFromInt is a convenience for building requests in code.
func QuantityFromInt(n int) Quantity {
	return Quantity(strconv.Itoa(n))
}
