//go:build !integration

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/flashe-service/internal/domain/model"
	"github.com/guttosm/flashe-service/internal/i18n"
)

func validForm() model.OrderForm {
	return model.OrderForm{
		Name:           "أحمد",
		Quantity:       "1",
		SelectedTypeID: "basic",
		Phone:          "01012345678",
		Region:         "القاهرة",
		Address:        "شارع التحرير",
	}
}

func TestOrderValidator_Validate(t *testing.T) {
	v := NewOrderValidator()
	catalog := model.DefaultCatalog()

	tests := []struct {
		name    string
		edit    func(*model.OrderForm)
		field   string
		key     string
		wantErr error
	}{
		{
			name: "valid single piece",
			edit: func(*model.OrderForm) {},
		},
		{
			name: "valid custom types without a type",
			edit: func(f *model.OrderForm) {
				f.Quantity = "3"
				f.SelectedTypeID = ""
				f.CustomTypesText = "رسم و تأسيس"
			},
		},
		{
			name:    "missing name",
			edit:    func(f *model.OrderForm) { f.Name = "" },
			field:   FieldName,
			key:     i18n.ValidationKeyNameRequired,
			wantErr: ErrMissingField,
		},
		{
			name:    "missing quantity",
			edit:    func(f *model.OrderForm) { f.Quantity = "" },
			field:   FieldQuantity,
			key:     i18n.ValidationKeyQuantityRequired,
			wantErr: ErrMissingField,
		},
		{
			name:    "zero quantity",
			edit:    func(f *model.OrderForm) { f.Quantity = "0" },
			field:   FieldQuantity,
			key:     i18n.ValidationKeyQuantityRequired,
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "non-numeric quantity",
			edit:    func(f *model.OrderForm) { f.Quantity = "كثير" },
			field:   FieldQuantity,
			key:     i18n.ValidationKeyQuantityRequired,
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "single piece without type",
			edit:    func(f *model.OrderForm) { f.SelectedTypeID = "" },
			field:   FieldProductType,
			key:     i18n.ValidationKeyTypeRequiredSingle,
			wantErr: ErrMissingField,
		},
		{
			name:    "single piece custom text is not enough",
			edit:    func(f *model.OrderForm) { f.SelectedTypeID = ""; f.CustomTypesText = "رسم" },
			field:   FieldProductType,
			key:     i18n.ValidationKeyTypeRequiredSingle,
			wantErr: ErrMissingField,
		},
		{
			name:    "several pieces with neither type nor text",
			edit:    func(f *model.OrderForm) { f.Quantity = "2"; f.SelectedTypeID = "" },
			field:   FieldProductType,
			key:     i18n.ValidationKeyTypeRequiredMultiple,
			wantErr: ErrMissingField,
		},
		{
			name:    "missing phone",
			edit:    func(f *model.OrderForm) { f.Phone = "" },
			field:   FieldPhone,
			key:     i18n.ValidationKeyPhoneRequired,
			wantErr: ErrMissingField,
		},
		{
			name:    "missing region",
			edit:    func(f *model.OrderForm) { f.Region = "" },
			field:   FieldRegion,
			key:     i18n.ValidationKeyRegionRequired,
			wantErr: ErrMissingField,
		},
		{
			name:    "unavailable region",
			edit:    func(f *model.OrderForm) { f.Region = "الوادي الجديد" },
			field:   FieldRegion,
			key:     i18n.ValidationKeyRegionUnavailable,
			wantErr: ErrRegionUnavailable,
		},
		{
			name:    "missing address",
			edit:    func(f *model.OrderForm) { f.Address = "" },
			field:   FieldAddress,
			key:     i18n.ValidationKeyAddressRequired,
			wantErr: ErrMissingField,
		},
		{
			name:    "first failure wins",
			edit:    func(f *model.OrderForm) { f.Phone = ""; f.Address = "" },
			field:   FieldPhone,
			key:     i18n.ValidationKeyPhoneRequired,
			wantErr: ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.edit(&form)

			err := v.Validate(catalog, form)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.key, verr.Key)
			assert.NotEmpty(t, verr.Message())
		})
	}
}

func TestOrderValidator_UnavailableRegionMessage(t *testing.T) {
	form := validForm()
	form.Quantity = "2"
	form.SelectedTypeID = ""
	form.CustomTypesText = "فلاشة رسم وفلاشة تأسيس"
	form.Region = "شمال سيناء"

	err := NewOrderValidator().Validate(model.DefaultCatalog(), form)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ErrorIs(t, err, ErrRegionUnavailable)
	assert.Equal(t, "شمال سيناء", verr.Region)
	assert.Contains(t, verr.Message(), "شمال سيناء")
	assert.Contains(t, verr.Error(), "شمال سيناء")
}

func TestOrderValidator_TypeIsNotLookedUp(t *testing.T) {
	form := validForm()
	form.SelectedTypeID = "retired-type"

	assert.NoError(t, NewOrderValidator().Validate(model.DefaultCatalog(), form))
}
