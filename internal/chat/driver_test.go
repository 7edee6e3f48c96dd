package chat

import (
	"strings"
	"testing"

	"github.com/angelmondragon/orderchat-backend/pkg/enums"
	"github.com/angelmondragon/orderchat-backend/pkg/types"
)

func TestAdvanceCheckoutFieldOrder(t *testing.T) {
	t.Parallel()

	inputs := []string{"Alice", "221B Baker Street", "5551234", "4111111111111111", "12/30", "123"}
	wantPrompts := []string{
		"Great! What's your delivery address?",
		"Perfect! And your phone number?",
		"Great! Now for payment. Please enter your card number:",
		"Please enter the card expiry date (MM/YY):",
		"Finally, please enter the CVV:",
	}

	step := enums.CheckoutStepDetails
	details := types.OrderDetails{}

	for i, input := range inputs {
		res := AdvanceCheckout(step, details, input, "67.50")
		details = merge(details, res.Patch)
		step = res.NextStep

		if i < len(wantPrompts) {
			if res.Prompt != wantPrompts[i] {
				t.Fatalf("turn %d: prompt %q, want %q", i, res.Prompt, wantPrompts[i])
			}
			if res.Completed {
				t.Fatalf("turn %d must not complete", i)
			}
			continue
		}

		if !res.Completed {
			t.Fatal("terminal turn must complete")
		}
		if step != enums.CheckoutStepNone {
			t.Fatalf("terminal turn must reset step, got %s", step)
		}
		if !strings.Contains(res.Prompt, "$67.50") {
			t.Fatalf("confirmation missing total: %q", res.Prompt)
		}
		if !strings.Contains(res.Prompt, "221B Baker Street") {
			t.Fatalf("confirmation missing address: %q", res.Prompt)
		}
		if !strings.Contains(res.Prompt, "5551234") {
			t.Fatalf("confirmation missing phone: %q", res.Prompt)
		}
	}

	if details.Name != "Alice" || details.CVV != "123" {
		t.Fatalf("fields not collected in order: %+v", details)
	}
}

func TestAdvanceCheckoutStepTransition(t *testing.T) {
	t.Parallel()

	details := types.OrderDetails{Name: "Alice", Address: "somewhere"}
	res := AdvanceCheckout(enums.CheckoutStepDetails, details, "5551234", "0.00")
	if res.NextStep != enums.CheckoutStepPayment {
		t.Fatalf("phone fill must move to payment, got %s", res.NextStep)
	}
	if res.Patch.Phone != "5551234" {
		t.Fatalf("expected phone patch, got %+v", res.Patch)
	}
}

func TestAdvanceCheckoutEmptyInputFillsNothing(t *testing.T) {
	t.Parallel()

	res := AdvanceCheckout(enums.CheckoutStepDetails, types.OrderDetails{}, "", "0.00")
	if res.Prompt != "" || res.Patch != (types.OrderDetails{}) {
		t.Fatalf("empty input must be inert, got %+v", res)
	}
	if res.NextStep != enums.CheckoutStepDetails {
		t.Fatalf("step must not move on empty input, got %s", res.NextStep)
	}
}

func TestAdvanceCheckoutNeverRegresses(t *testing.T) {
	t.Parallel()

	details := types.OrderDetails{Name: "Alice"}
	res := AdvanceCheckout(enums.CheckoutStepDetails, details, "new value", "0.00")
	if res.Patch.Name != "" {
		t.Fatal("filled name must never be re-asked or overwritten")
	}
	if res.Patch.Address != "new value" {
		t.Fatalf("expected address fill, got %+v", res.Patch)
	}
}

func TestAdvanceCheckoutInactiveStepIsInert(t *testing.T) {
	t.Parallel()

	res := AdvanceCheckout(enums.CheckoutStepNone, types.OrderDetails{}, "hello", "0.00")
	if res.Prompt != "" || res.Completed || res.NextStep != enums.CheckoutStepNone {
		t.Fatalf("driver must not act without an active step, got %+v", res)
	}
}

func merge(current, patch types.OrderDetails) types.OrderDetails {
	if patch.Name != "" {
		current.Name = patch.Name
	}
	if patch.Address != "" {
		current.Address = patch.Address
	}
	if patch.Phone != "" {
		current.Phone = patch.Phone
	}
	if patch.CardNumber != "" {
		current.CardNumber = patch.CardNumber
	}
	if patch.ExpiryDate != "" {
		current.ExpiryDate = patch.ExpiryDate
	}
	if patch.CVV != "" {
		current.CVV = patch.CVV
	}
	return current
}
