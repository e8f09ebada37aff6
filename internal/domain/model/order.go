package model

import "strings"

// CustomerFields are the contact details printed in the order message.
type CustomerFields struct {
	Name           string
	Phone          string
	SecondaryPhone string
	Region         string
	Address        string
	Notes          string
}

// OrderForm is a submitted order as entered by the customer.
// Field order matches the order in which the form is validated.
type OrderForm struct {
	Name            string `validate:"required"`
	Quantity        string `validate:"required,quantity"`
	SelectedTypeID  string
	CustomTypesText string
	Phone           string `validate:"required"`
	SecondaryPhone  string
	Region          string `validate:"required"`
	Address         string `validate:"required"`
	Notes           string
}

// Normalized returns a copy with surrounding whitespace removed from every field.
func (f OrderForm) Normalized() OrderForm {
	return OrderForm{
		Name:            strings.TrimSpace(f.Name),
		Quantity:        strings.TrimSpace(f.Quantity),
		SelectedTypeID:  strings.TrimSpace(f.SelectedTypeID),
		CustomTypesText: strings.TrimSpace(f.CustomTypesText),
		Phone:           strings.TrimSpace(f.Phone),
		SecondaryPhone:  strings.TrimSpace(f.SecondaryPhone),
		Region:          strings.TrimSpace(f.Region),
		Address:         strings.TrimSpace(f.Address),
		Notes:           strings.TrimSpace(f.Notes),
	}
}

// QuoteRequest derives the pricing request for the form.
func (f OrderForm) QuoteRequest() QuoteRequest {
	return QuoteRequest{
		SelectedTypeID:  f.SelectedTypeID,
		Quantity:        ParseQuantity(f.Quantity),
		CustomTypesText: f.CustomTypesText,
		Region:          f.Region,
	}
}

// Customer extracts the message contact details.
func (f OrderForm) Customer() CustomerFields {
	return CustomerFields{
		Name:           f.Name,
		Phone:          f.Phone,
		SecondaryPhone: f.SecondaryPhone,
		Region:         f.Region,
		Address:        f.Address,
		Notes:          f.Notes,
	}
}

// OrderConfirmation is everything produced for a valid order.
//
// @Description Prepared order ready to be sent over WhatsApp
type OrderConfirmation struct {
	Description string      `json:"description"`
	Message     string      `json:"message"`
	ShareLink   string      `json:"share_link" example:"https://wa.me/201117635075?text=..."`
	Quote       QuoteResult `json:"quote"`
}
