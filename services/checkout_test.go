package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniellbaii/mp-fishnchips/entity"
)

func TestValidateCustomerInfo(t *testing.T) {
	tests := []struct {
		name       string
		info       entity.CustomerInfo
		wantFields []string
	}{
		{
			name: "valid_mobile",
			info: entity.CustomerInfo{Name: "Alex Chen", Phone: "0412345678"},
		},
		{
			name: "valid_plus61_with_spaces",
			info: entity.CustomerInfo{Name: "Alex Chen", Phone: "+61 412 345 678"},
		},
		{
			name: "valid_with_email",
			info: entity.CustomerInfo{Name: "Alex Chen", Phone: "0412345678", Email: "a@b.com"},
		},
		{
			name:       "missing_name",
			info:       entity.CustomerInfo{Name: "  ", Phone: "0412345678"},
			wantFields: []string{"name"},
		},
		{
			name:       "missing_phone",
			info:       entity.CustomerInfo{Name: "Alex Chen"},
			wantFields: []string{"phone"},
		},
		{
			name:       "phone_no_leading_zero",
			info:       entity.CustomerInfo{Name: "Alex Chen", Phone: "123456789"},
			wantFields: []string{"phone"},
		},
		{
			name:       "phone_second_digit_out_of_range",
			info:       entity.CustomerInfo{Name: "Alex Chen", Phone: "0112345678"},
			wantFields: []string{"phone"},
		},
		{
			name:       "bad_email",
			info:       entity.CustomerInfo{Name: "Alex Chen", Phone: "0412345678", Email: "not-an-email"},
			wantFields: []string{"email"},
		},
		{
			name:       "fields_fail_independently",
			info:       entity.CustomerInfo{Email: "not-an-email"},
			wantFields: []string{"name", "phone", "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCustomerInfo(tt.info)
			assert.Len(t, errs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func TestPickupSlots(t *testing.T) {
	now := time.Date(2025, 6, 14, 11, 0, 0, 0, time.UTC)
	slots := PickupSlots(now)

	require.Len(t, slots, 8)
	assert.Equal(t, now.Add(30*time.Minute), slots[0].Value)
	assert.Equal(t, "11:30 AM", slots[0].Label)
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, 15*time.Minute, slots[i].Value.Sub(slots[i-1].Value))
	}
	assert.Equal(t, now.Add(135*time.Minute), slots[len(slots)-1].Value)
}

func TestValidatePickupTime(t *testing.T) {
	now := time.Date(2025, 6, 14, 11, 0, 0, 0, time.UTC)

	_, ok := ValidatePickupTime(time.Time{}, now)
	assert.False(t, ok)

	_, ok = ValidatePickupTime(now.Add(45*time.Minute), now)
	assert.True(t, ok)

	_, ok = ValidatePickupTime(now.Add(5*time.Minute), now)
	assert.False(t, ok)

	_, ok = ValidatePickupTime(now.Add(6*time.Hour), now)
	assert.False(t, ok)
}
