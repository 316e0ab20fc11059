package order

import (
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	pending ──> assigned ──> picked_up ──> in_transit ──> delivered
//	   ^           │
//	   └───────────┘
//	 (released by the shipper)
//
// An admin may move an order to any status, including cancelled.
type Status string

const (
	Pending   Status = "pending"
	Assigned  Status = "assigned"
	PickedUp  Status = "picked_up"
	InTransit Status = "in_transit"
	Delivered Status = "delivered"
	Cancelled Status = "cancelled"
)

// shipperTransitions is the forward progression an assigned shipper may drive.
var shipperTransitions = map[Status]Status{
	Assigned:  PickedUp,
	PickedUp:  InTransit,
	InTransit: Delivered,
}

// ActiveStatuses are the statuses that occupy a shipper.
func ActiveStatuses() []Status {
	return []Status{Assigned, PickedUp, InTransit}
}

// ParseStatus converts raw input into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

func (s Status) Validate() error {
	switch s {
	case Pending, Assigned, PickedUp, InTransit, Delivered, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidError("status")
	}
}

func (s Status) String() string {
	return string(s)
}

// IsActive reports whether a shipper is currently working on the order.
func (s Status) IsActive() bool {
	return s == Assigned || s == PickedUp || s == InTransit
}

func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// RequiresShipper reports whether the status can only exist with a shipper attached.
func (s Status) RequiresShipper() bool {
	return s.IsActive() || s == Delivered
}

// ValidateCanHaveShipper checks the shipper/status consistency rule.
func (s Status) ValidateCanHaveShipper(hasShipper bool) error {
	if hasShipper != s.RequiresShipper() {
		return errs.NewValueIsInvalidError("shipper_id is inconsistent with status " + s.String())
	}
	return nil
}

// Assign moves pending or assigned orders to assigned.
func (s Status) Assign() (Status, error) {
	if s != Pending && s != Assigned {
		return "", errs.NewInvalidTransitionError(s, Assigned)
	}
	return Assigned, nil
}

// AdvanceTo validates one step of the shipper progression.
// Skipping a step, e.g. assigned -> in_transit, is rejected.
func (s Status) AdvanceTo(to Status) (Status, error) {
	if next, ok := shipperTransitions[s]; ok && next == to {
		return to, nil
	}
	return "", errs.NewInvalidTransitionError(s, to)
}

// Release moves an assigned order back to pending.
func (s Status) Release() (Status, error) {
	if s != Assigned {
		return "", errs.NewInvalidTransitionError(s, Pending)
	}
	return Pending, nil
}

// AcceptsProof reports whether a proof image may be attached in this status.
func (s Status) AcceptsProof() bool {
	return s == PickedUp || s == InTransit || s == Delivered
}
