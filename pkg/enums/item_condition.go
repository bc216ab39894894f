package enums

import (
	"fmt"
	"strings"
)

// ItemCondition is the physical condition recorded on an item detail.
type ItemCondition string

const (
	ItemConditionGood ItemCondition = "Good"
	ItemConditionFair ItemCondition = "Fair"
	ItemConditionPoor ItemCondition = "Poor"
)

var validItemConditions = []ItemCondition{
	ItemConditionGood,
	ItemConditionFair,
	ItemConditionPoor,
}

// String implements fmt.Stringer.
func (c ItemCondition) String() string {
	return string(c)
}

// IsValid reports whether the value matches a canonical condition.
func (c ItemCondition) IsValid() bool {
	for _, candidate := range validItemConditions {
		if candidate == c {
			return true
		}
	}
	return false
}

// AllowsDamage reports whether damage labels are meaningful for the condition.
func (c ItemCondition) AllowsDamage() bool {
	return c == ItemConditionFair || c == ItemConditionPoor
}

// ParseItemCondition converts raw input into ItemCondition, ignoring case.
func ParseItemCondition(value string) (ItemCondition, error) {
	trimmed := strings.TrimSpace(value)
	for _, candidate := range validItemConditions {
		if strings.EqualFold(string(candidate), trimmed) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item condition %q", value)
}
