package service

import (
	"errors"
	"testing"

	"github.com/shophub-next/internal/constants"
	"github.com/shophub-next/internal/models"
)

func setupCheckoutServiceTest(t *testing.T) (*CheckoutService, *CartService, *models.Product, string) {
	t.Helper()
	cartSvc, db := setupCartServiceTest(t)
	product := seedCartTestProduct(t, db, "blue-shirt", "29.99", 50)
	session := "session_1700000000000_abc123def"
	if _, err := cartSvc.AddToCart(session, product.ID, 2); err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}
	return NewCheckoutService(cartSvc, nil), cartSvc, product, session
}

func validDetails() CheckoutDetails {
	return CheckoutDetails{
		FullName: "Jamie Doe",
		Email:    "jamie@example.com",
		Phone:    "555-0101",
		Address:  "1 Main St",
		City:     "Springfield",
		ZipCode:  "12345",
	}
}

func validPayment() CheckoutPayment {
	return CheckoutPayment{
		CardNumber: "4242424242424242",
		CardExpiry: "12/28",
		CardCVV:    "123",
	}
}

func TestCheckoutStartsAtDetails(t *testing.T) {
	svc, _, _, session := setupCheckoutServiceTest(t)

	state, err := svc.Start(session)
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if state.Step != constants.CheckoutStepDetails {
		t.Fatalf("step want details got %s", state.Step)
	}
}

func TestCheckoutGetBeforeStart(t *testing.T) {
	svc, _, _, session := setupCheckoutServiceTest(t)

	if _, err := svc.Get(session); !errors.Is(err, ErrCheckoutNotStarted) {
		t.Fatalf("expected ErrCheckoutNotStarted, got %v", err)
	}
}

func TestCheckoutLinearFlow(t *testing.T) {
	svc, cartSvc, _, session := setupCheckoutServiceTest(t)

	if _, err := svc.Start(session); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	state, err := svc.SubmitDetails(session, validDetails())
	if err != nil {
		t.Fatalf("submit details failed: %v", err)
	}
	if state.Step != constants.CheckoutStepPayment {
		t.Fatalf("step want payment got %s", state.Step)
	}

	state, err = svc.SubmitPayment(session, validPayment())
	if err != nil {
		t.Fatalf("submit payment failed: %v", err)
	}
	if state.Step != constants.CheckoutStepConfirmation {
		t.Fatalf("step want confirmation got %s", state.Step)
	}
	if state.Summary == nil || state.Summary.Count != 2 || state.Summary.Total.String() != "59.98" {
		t.Fatalf("unexpected confirmation summary: %+v", state.Summary)
	}

	items, err := cartSvc.ListBySession(session)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("cart should be cleared after payment, got %d items", len(items))
	}
}

func TestCheckoutSubmitDetailsIncomplete(t *testing.T) {
	svc, _, _, session := setupCheckoutServiceTest(t)

	if _, err := svc.Start(session); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	details := validDetails()
	details.Email = "   "
	if _, err := svc.SubmitDetails(session, details); !errors.Is(err, ErrCheckoutFormIncomplete) {
		t.Fatalf("expected ErrCheckoutFormIncomplete, got %v", err)
	}
}

func TestCheckoutPaymentRequiresPaymentStep(t *testing.T) {
	svc, _, _, session := setupCheckoutServiceTest(t)

	if _, err := svc.Start(session); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if _, err := svc.SubmitPayment(session, validPayment()); !errors.Is(err, ErrCheckoutStepInvalid) {
		t.Fatalf("expected ErrCheckoutStepInvalid from details step, got %v", err)
	}
}

func TestCheckoutBackOnlyFromPayment(t *testing.T) {
	svc, _, _, session := setupCheckoutServiceTest(t)

	if _, err := svc.Start(session); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if _, err := svc.Back(session); !errors.Is(err, ErrCheckoutStepInvalid) {
		t.Fatalf("expected ErrCheckoutStepInvalid from details step, got %v", err)
	}

	if _, err := svc.SubmitDetails(session, validDetails()); err != nil {
		t.Fatalf("submit details failed: %v", err)
	}
	state, err := svc.Back(session)
	if err != nil {
		t.Fatalf("back failed: %v", err)
	}
	if state.Step != constants.CheckoutStepDetails {
		t.Fatalf("step want details got %s", state.Step)
	}
	if state.Details.FullName != "Jamie Doe" {
		t.Fatalf("details should survive going back, got %+v", state.Details)
	}
}

func TestCheckoutStartResetsState(t *testing.T) {
	svc, _, _, session := setupCheckoutServiceTest(t)

	if _, err := svc.Start(session); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if _, err := svc.SubmitDetails(session, validDetails()); err != nil {
		t.Fatalf("submit details failed: %v", err)
	}

	state, err := svc.Start(session)
	if err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	if state.Step != constants.CheckoutStepDetails {
		t.Fatalf("restart should reset to details, got %s", state.Step)
	}
	if state.Details.FullName != "" {
		t.Fatalf("restart should discard form data, got %+v", state.Details)
	}
}

func TestCheckoutCloseDiscardsState(t *testing.T) {
	svc, _, _, session := setupCheckoutServiceTest(t)

	if _, err := svc.Start(session); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	svc.Close(session)
	if _, err := svc.Get(session); !errors.Is(err, ErrCheckoutNotStarted) {
		t.Fatalf("expected ErrCheckoutNotStarted after close, got %v", err)
	}
}

func TestCheckoutPaymentIncomplete(t *testing.T) {
	svc, _, _, session := setupCheckoutServiceTest(t)

	if _, err := svc.Start(session); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if _, err := svc.SubmitDetails(session, validDetails()); err != nil {
		t.Fatalf("submit details failed: %v", err)
	}
	payment := validPayment()
	payment.CardCVV = ""
	if _, err := svc.SubmitPayment(session, payment); !errors.Is(err, ErrCheckoutFormIncomplete) {
		t.Fatalf("expected ErrCheckoutFormIncomplete, got %v", err)
	}
}
