package services

import (
	"regexp"
	"strings"
	"time"

	"github.com/daniellbaii/mp-fishnchips/entity"
)

// Australian mobile or landline: +61 or a leading 0, second digit 2-9,
// then 8 more digits. Whitespace is stripped before matching.
var phonePattern = regexp.MustCompile(`^(\+61|0)[2-9]\d{8}$`)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateCustomerInfo returns one message per failing field, keyed by
// field name. Fields validate independently so the user can correct them
// in any order. An empty map means the info is acceptable.
func ValidateCustomerInfo(ci entity.CustomerInfo) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(ci.Name) == "" {
		errs["name"] = "Name is required"
	}

	phone := strings.ReplaceAll(ci.Phone, " ", "")
	if strings.TrimSpace(ci.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if !phonePattern.MatchString(phone) {
		errs["phone"] = "Please enter a valid Australian phone number"
	}

	if ci.Email != "" && !emailPattern.MatchString(ci.Email) {
		errs["email"] = "Please enter a valid email address"
	}

	return errs
}

type PickupSlot struct {
	Value time.Time `json:"value"`
	Label string    `json:"label"`
}

const (
	pickupLeadTime  = 30 * time.Minute
	pickupSlotStep  = 15 * time.Minute
	pickupSlotCount = 8
)

// PickupSlots generates the offered pickup times: 30 minutes out, then
// 15-minute steps up to roughly two hours ahead.
func PickupSlots(now time.Time) []PickupSlot {
	slots := make([]PickupSlot, 0, pickupSlotCount)
	start := now.Add(pickupLeadTime)
	for i := 0; i < pickupSlotCount; i++ {
		t := start.Add(time.Duration(i) * pickupSlotStep)
		slots = append(slots, PickupSlot{Value: t, Label: t.Format("3:04 PM")})
	}
	return slots
}

// ValidatePickupTime checks a requested time against the slot window. The
// zero time means none was chosen.
func ValidatePickupTime(pickup, now time.Time) (string, bool) {
	if pickup.IsZero() {
		return "Please select a pickup time", false
	}
	slots := PickupSlots(now)
	first := slots[0].Value
	last := slots[len(slots)-1].Value
	// allow a minute of slack for form round trips
	if pickup.Before(first.Add(-time.Minute)) || pickup.After(last.Add(time.Minute)) {
		return "Pickup time is outside the available window", false
	}
	return "", true
}
