package chat

import (
	"fmt"

	"github.com/angelmondragon/orderchat-backend/pkg/enums"
	"github.com/angelmondragon/orderchat-backend/pkg/types"
)

// Checkout dialogue prompts, in the fixed order the fields are collected.
const (
	promptAddress    = "Great! What's your delivery address?"
	promptPhone      = "Perfect! And your phone number?"
	promptCardNumber = "Great! Now for payment. Please enter your card number:"
	promptExpiry     = "Please enter the card expiry date (MM/YY):"
	promptCVV        = "Finally, please enter the CVV:"

	confirmationFormat = "Thank you for your order! Your total is $%s. Your order will be delivered to %s. We'll send updates to %s."
)

// AdvanceResult is the outcome of one checkout dialogue turn.
type AdvanceResult struct {
	// Patch holds the single field the input filled, if any.
	Patch types.OrderDetails
	// NextStep is the checkout step after this turn.
	NextStep enums.CheckoutStep
	// Prompt is the next bot message, empty when the turn produced none.
	Prompt string
	// Completed is set on the terminal turn, when the confirmation is
	// emitted and the dialogue resets.
	Completed bool
}

// AdvanceCheckout runs one turn of the checkout dialogue. Fields fill in
// the fixed order name, address, phone, cardNumber, expiryDate, cvv; the
// driver never validates content, never re-asks a filled field and never
// skips ahead. Empty input fills nothing and prompts nothing. cartTotal is
// the display total embedded in the terminal confirmation.
func AdvanceCheckout(step enums.CheckoutStep, details types.OrderDetails, input string, cartTotal string) AdvanceResult {
	result := AdvanceResult{NextStep: step}
	if input == "" {
		return result
	}

	switch step {
	case enums.CheckoutStepDetails:
		switch {
		case details.Name == "":
			result.Patch.Name = input
			result.Prompt = promptAddress
		case details.Address == "":
			result.Patch.Address = input
			result.Prompt = promptPhone
		case details.Phone == "":
			result.Patch.Phone = input
			result.NextStep = enums.CheckoutStepPayment
			result.Prompt = promptCardNumber
		}
	case enums.CheckoutStepPayment:
		switch {
		case details.CardNumber == "":
			result.Patch.CardNumber = input
			result.Prompt = promptExpiry
		case details.ExpiryDate == "":
			result.Patch.ExpiryDate = input
			result.Prompt = promptCVV
		case details.CVV == "":
			result.Patch.CVV = input
			result.NextStep = enums.CheckoutStepNone
			result.Completed = true
			result.Prompt = fmt.Sprintf(confirmationFormat, cartTotal, details.Address, details.Phone)
		}
	}
	return result
}
