package enum

import "testing"

func TestOrderStatusIsValid(t *testing.T) {
	valid := []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusServed, OrderStatusCompleted, OrderStatusCancelled,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if OrderStatus("refunded").IsValid() {
		t.Error("unknown status should not be valid")
	}
}

func TestOrderStatusProgressTargets(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPreparing, OrderStatusReady, OrderStatusServed, OrderStatusCompleted} {
		if !s.IsProgressTarget() {
			t.Errorf("%s should be a progression target", s)
		}
	}
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusCancelled} {
		if s.IsProgressTarget() {
			t.Errorf("%s should not be a progression target", s)
		}
	}
}

func TestOrderStatusKitchenTargets(t *testing.T) {
	if !OrderStatusPreparing.IsKitchenTarget() || !OrderStatusReady.IsKitchenTarget() {
		t.Error("kitchen should be able to set preparing and ready")
	}
	if OrderStatusServed.IsKitchenTarget() || OrderStatusCompleted.IsKitchenTarget() {
		t.Error("kitchen should not be able to set served or completed")
	}
}

func TestOrderStatusReleases(t *testing.T) {
	if !OrderStatusServed.Releases() || !OrderStatusCompleted.Releases() {
		t.Error("served and completed should release the table")
	}
	if OrderStatusCancelled.Releases() {
		t.Error("cancelled is released by the cancel operation itself")
	}
}
