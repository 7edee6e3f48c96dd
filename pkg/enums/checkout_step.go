package enums

import "fmt"

// CheckoutStep tracks which phase of the checkout dialogue is active.
// CheckoutStepNone means no checkout is in progress.
type CheckoutStep string

const (
	CheckoutStepNone    CheckoutStep = ""
	CheckoutStepDetails CheckoutStep = "details"
	CheckoutStepPayment CheckoutStep = "payment"
)

var validCheckoutSteps = []CheckoutStep{
	CheckoutStepNone,
	CheckoutStepDetails,
	CheckoutStepPayment,
}

// Active reports whether a checkout dialogue is in progress.
func (c CheckoutStep) Active() bool {
	return c == CheckoutStepDetails || c == CheckoutStepPayment
}

// String implements fmt.Stringer.
func (c CheckoutStep) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CheckoutStep.
func (c CheckoutStep) IsValid() bool {
	for _, candidate := range validCheckoutSteps {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCheckoutStep converts raw input into a CheckoutStep.
func ParseCheckoutStep(value string) (CheckoutStep, error) {
	for _, candidate := range validCheckoutSteps {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid checkout step %q", value)
}
