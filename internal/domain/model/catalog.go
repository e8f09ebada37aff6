// Package model defines the core domain entities for the storefront service.
package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidCatalog is returned when a catalog document does not have the expected shape.
var ErrInvalidCatalog = errors.New("invalid catalog")

// ProductType is a sellable flash drive variant.
type ProductType struct {
	ID    string          `json:"id" example:"basic"`
	Name  string          `json:"name" example:"فلاشة الحاسب الالي والبرمجة للأطفال"`
	Price decimal.Decimal `json:"price" swaggertype:"string" example:"515"`
}

// RegionRate is a deliverable region with its shipping cost.
type RegionRate struct {
	Region string          `json:"region" example:"القاهرة"`
	Cost   decimal.Decimal `json:"cost" swaggertype:"string" example:"70"`
}

// Catalog is the product and shipping configuration for a session.
// It is built once and never mutated; accessors hand out copies.
type Catalog struct {
	productTypes          []ProductType
	typeIndex             map[string]int
	discountRate          decimal.Decimal
	contactNumber         string
	regions               []RegionRate
	shipping              map[string]decimal.Decimal
	freeShippingThreshold int
	unavailable           []string
	unavailableSet        map[string]struct{}
	source                string
}

// NewCatalog validates a document and builds an immutable Catalog from it.
// Repeated shipping keys keep their first position and their last cost.
func NewCatalog(doc CatalogDocument, source string) (*Catalog, error) {
	if len(doc.FlashTypes) == 0 {
		return nil, fmt.Errorf("%w: no product types", ErrInvalidCatalog)
	}
	if doc.Discount < 0 || doc.Discount >= 1 {
		return nil, fmt.Errorf("%w: discount %v outside [0,1)", ErrInvalidCatalog, doc.Discount)
	}
	if doc.FreeShippingThreshold < 1 {
		return nil, fmt.Errorf("%w: free shipping threshold must be positive", ErrInvalidCatalog)
	}
	if strings.TrimSpace(doc.WhatsApp) == "" {
		return nil, fmt.Errorf("%w: missing contact number", ErrInvalidCatalog)
	}

	c := &Catalog{
		productTypes:          make([]ProductType, 0, len(doc.FlashTypes)),
		typeIndex:             make(map[string]int, len(doc.FlashTypes)),
		discountRate:          decimal.NewFromFloat(doc.Discount),
		contactNumber:         strings.TrimSpace(doc.WhatsApp),
		regions:               make([]RegionRate, 0, len(doc.Shipping)),
		shipping:              make(map[string]decimal.Decimal, len(doc.Shipping)),
		freeShippingThreshold: doc.FreeShippingThreshold,
		unavailable:           make([]string, 0, len(doc.UnavailableGovernorates)),
		unavailableSet:        make(map[string]struct{}, len(doc.UnavailableGovernorates)),
		source:                source,
	}

	for _, pt := range doc.FlashTypes {
		if pt.ID == "" || pt.Name == "" {
			return nil, fmt.Errorf("%w: product type needs id and name", ErrInvalidCatalog)
		}
		if pt.Price < 0 {
			return nil, fmt.Errorf("%w: product type %q has negative price", ErrInvalidCatalog, pt.ID)
		}
		if _, dup := c.typeIndex[pt.ID]; dup {
			continue
		}
		c.typeIndex[pt.ID] = len(c.productTypes)
		c.productTypes = append(c.productTypes, ProductType{
			ID:    pt.ID,
			Name:  pt.Name,
			Price: decimal.NewFromFloat(pt.Price),
		})
	}

	for _, entry := range doc.Shipping {
		if entry.Cost < 0 {
			return nil, fmt.Errorf("%w: region %q has negative shipping", ErrInvalidCatalog, entry.Region)
		}
		cost := decimal.NewFromFloat(entry.Cost)
		if _, seen := c.shipping[entry.Region]; seen {
			for i := range c.regions {
				if c.regions[i].Region == entry.Region {
					c.regions[i].Cost = cost
				}
			}
		} else {
			c.regions = append(c.regions, RegionRate{Region: entry.Region, Cost: cost})
		}
		c.shipping[entry.Region] = cost
	}

	for _, region := range doc.UnavailableGovernorates {
		if _, seen := c.unavailableSet[region]; seen {
			continue
		}
		c.unavailableSet[region] = struct{}{}
		c.unavailable = append(c.unavailable, region)
	}

	return c, nil
}

// ProductTypes returns the product types in catalog order.
func (c *Catalog) ProductTypes() []ProductType {
	out := make([]ProductType, len(c.productTypes))
	copy(out, c.productTypes)
	return out
}

// FirstProductType returns the first product type; a built catalog always has one.
func (c *Catalog) FirstProductType() ProductType {
	return c.productTypes[0]
}

// FindType looks up a product type by id.
func (c *Catalog) FindType(id string) (ProductType, bool) {
	idx, ok := c.typeIndex[id]
	if !ok {
		return ProductType{}, false
	}
	return c.productTypes[idx], true
}

// DiscountRate returns the discount as a fraction in [0,1).
func (c *Catalog) DiscountRate() decimal.Decimal {
	return c.discountRate
}

// ContactNumber returns the WhatsApp number orders are sent to.
func (c *Catalog) ContactNumber() string {
	return c.contactNumber
}

// Regions returns the deliverable regions in document order.
func (c *Catalog) Regions() []RegionRate {
	out := make([]RegionRate, len(c.regions))
	copy(out, c.regions)
	return out
}

// ShippingFor returns the shipping cost of a region and whether it is known.
func (c *Catalog) ShippingFor(region string) (decimal.Decimal, bool) {
	cost, ok := c.shipping[region]
	return cost, ok
}

// FreeShippingThreshold returns the quantity from which shipping is waived.
func (c *Catalog) FreeShippingThreshold() int {
	return c.freeShippingThreshold
}

// UnavailableRegions returns the regions that cannot be delivered to.
func (c *Catalog) UnavailableRegions() []string {
	out := make([]string, len(c.unavailable))
	copy(out, c.unavailable)
	return out
}

// IsUnavailable reports whether delivery to the region is refused.
func (c *Catalog) IsUnavailable(region string) bool {
	_, ok := c.unavailableSet[region]
	return ok
}

// Source names where the catalog was loaded from.
func (c *Catalog) Source() string {
	return c.source
}
