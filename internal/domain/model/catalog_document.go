package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// CatalogDocument is the external configuration document as published at the
// catalog source (data/flashe.json). Field names follow the published shape.
//
// @Description Storefront configuration document
type CatalogDocument struct {
	FlashTypes              []ProductTypeDocument `json:"flashTypes" yaml:"flashTypes"`
	Discount                float64               `json:"discount" yaml:"discount"`
	WhatsApp                string                `json:"whatsapp" yaml:"whatsapp"`
	Shipping                ShippingTable         `json:"shipping" yaml:"shipping"`
	FreeShippingThreshold   int                   `json:"freeShippingThreshold" yaml:"freeShippingThreshold"`
	UnavailableGovernorates []string              `json:"unavailableGovernorates" yaml:"unavailableGovernorates"`
}

// ProductTypeDocument is a single entry of flashTypes.
type ProductTypeDocument struct {
	ID    string  `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Price float64 `json:"price" yaml:"price"`
}

// ShippingEntry is one region and its shipping cost.
type ShippingEntry struct {
	Region string  `json:"region" yaml:"region" bson:"region"`
	Cost   float64 `json:"cost" yaml:"cost" bson:"cost"`
}

// ShippingTable keeps the shipping object in document order.
// The order is what customers see in the region picker.
type ShippingTable []ShippingEntry

// UnmarshalJSON decodes a {"region": cost} object without losing key order.
func (t *ShippingTable) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = nil
		return nil
	}
	if len(data) == 0 || data[0] != '{' {
		return fmt.Errorf("shipping: expected object, got %.20s", data)
	}

	costs := orderedmap.New[string, float64]()
	if err := costs.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("shipping: %w", err)
	}

	table := make(ShippingTable, 0, costs.Len())
	for pair := costs.Oldest(); pair != nil; pair = pair.Next() {
		table = append(table, ShippingEntry{Region: pair.Key, Cost: pair.Value})
	}
	*t = table
	return nil
}

// MarshalJSON encodes the table back into an ordered JSON object.
func (t ShippingTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Region)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(entry.Cost)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes a YAML mapping in document order.
func (t *ShippingTable) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("shipping: expected mapping at line %d", value.Line)
	}

	table := make(ShippingTable, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var cost float64
		if err := value.Content[i+1].Decode(&cost); err != nil {
			return fmt.Errorf("shipping: region %q: %w", value.Content[i].Value, err)
		}
		table = append(table, ShippingEntry{Region: value.Content[i].Value, Cost: cost})
	}

	*t = table
	return nil
}

// WithUnifiedPrice returns a copy of the document where every product type
// carries the same price.
func (d CatalogDocument) WithUnifiedPrice(price float64) CatalogDocument {
	types := make([]ProductTypeDocument, len(d.FlashTypes))
	for i, pt := range d.FlashTypes {
		pt.Price = price
		types[i] = pt
	}
	d.FlashTypes = types
	return d
}
