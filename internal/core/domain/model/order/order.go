package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created via
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrIDIsAlreadySet = errors.New("order id is already set")
)

// Order is the aggregate root of the delivery lifecycle.
//
// Order follows these invariants:
//   - customer, pickup, delivery, category, weight and pricing are fixed at creation
//   - shipperID is non-nil exactly when the status requires a shipper
//   - status changes only through the transition methods below
//   - every status change raises a ChangedEvent
type Order struct {
	// id is assigned by storage on first insert
	id int64

	customerID int64

	// shipperID is nil while the order is unassigned
	shipperID *int64

	pickup   Stop
	delivery Stop
	category Category
	weight   Weight

	// pricing is computed once and never recalculated
	pricing Pricing

	status     Status
	notes      string
	proofImage string
	createdAt  time.Time
	updatedAt  time.Time

	events        []ChangedEvent
	isConstructed bool
}

// NewOrder creates a pending order without a shipper.
//
// Example:
//
//	pricing := services.NewPricingEngine().Compute(5)
//	o, err := order.NewOrder(customerID, pickup, delivery, order.Food, weight, pricing, "", time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	customerID int64,
	pickup, delivery Stop,
	category Category,
	weight Weight,
	pricing Pricing,
	notes string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		category:      category,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setStops(pickup, delivery),
		o.setWeight(weight),
		o.setPricing(pricing),
		o.setNotes(notes),
	); err != nil {
		return nil, err
	}
	if _, ok := knownCategories[category]; !ok {
		o.category = Regular
	}

	o.raise(EventCreated, "", now)
	return o, nil
}

// RestoreOrder rehydrates an order from storage. It checks the same
// invariants as NewOrder plus the shipper/status consistency rule.
func RestoreOrder(
	id, customerID int64,
	shipperID *int64,
	pickup, delivery Stop,
	category Category,
	weight Weight,
	pricing Pricing,
	status Status,
	notes, proofImage string,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		id:            id,
		shipperID:     shipperID,
		category:      category,
		status:        status,
		proofImage:    proofImage,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("order id")
	}
	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setStops(pickup, delivery),
		o.setWeight(weight),
		o.setPricing(pricing),
		status.Validate(),
		status.ValidateCanHaveShipper(shipperID != nil),
	); err != nil {
		return nil, err
	}
	o.notes = notes

	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// SetID records the storage-assigned identifier. It can be called once.
func (o *Order) SetID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}
	if o.id != 0 {
		return ErrIDIsAlreadySet
	}
	o.id = id
	return nil
}

// ID returns the storage-assigned identifier, or 0 before the first insert.
func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) CustomerID() int64 {
	return o.customerID
}

func (o *Order) Pickup() Stop {
	return o.pickup
}

func (o *Order) Delivery() Stop {
	return o.delivery
}

func (o *Order) Category() Category {
	return o.category
}

func (o *Order) Weight() Weight {
	return o.weight
}

// Pricing returns the fare breakdown frozen at creation.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) ProofImage() string {
	return o.proofImage
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Shipper returns the assigned shipper id, or nil.
func (o *Order) Shipper() *int64 {
	if o.shipperID == nil {
		return nil
	}
	id := *o.shipperID
	return &id
}

// IsAssignedTo reports whether shipperID currently holds the order.
func (o *Order) IsAssignedTo(shipperID int64) bool {
	return o.shipperID != nil && *o.shipperID == shipperID
}

// EnsureAssignedTo returns a PermissionDeniedError unless shipperID holds the order.
func (o *Order) EnsureAssignedTo(shipperID int64, action string) error {
	if !o.IsAssignedTo(shipperID) {
		return errs.NewPermissionDeniedError(action, "order is not assigned to this shipper")
	}
	return nil
}

// Assign attaches shipperID and moves the order to assigned.
// Pending orders and already assigned orders (reassignment) are accepted.
func (o *Order) Assign(shipperID int64, now time.Time) error {
	if shipperID <= 0 {
		return errs.NewValueIsRequiredError("shipper_id")
	}

	next, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.shipperID = &shipperID
	o.transition(next, now)
	return nil
}

// Advance moves the order one step forward on behalf of its shipper.
// A non-empty proofImage is stored with the step. When proofRequired is set,
// delivery needs a proof image either now or from an earlier step.
func (o *Order) Advance(shipperID int64, to Status, proofImage string, proofRequired bool, now time.Time) error {
	if err := o.EnsureAssignedTo(shipperID, "update order status"); err != nil {
		return err
	}

	next, err := o.status.AdvanceTo(to)
	if err != nil {
		return err
	}

	proofImage = strings.TrimSpace(proofImage)
	if next == Delivered && proofRequired && proofImage == "" && o.proofImage == "" {
		return errs.NewValueIsRequiredError("proof image")
	}
	if proofImage != "" {
		o.proofImage = proofImage
	}

	o.transition(next, now)
	return nil
}

// Release returns an assigned order to the pending pool and detaches its shipper.
func (o *Order) Release(shipperID int64, now time.Time) error {
	if err := o.EnsureAssignedTo(shipperID, "cancel order"); err != nil {
		return err
	}

	next, err := o.status.Release()
	if err != nil {
		return err
	}

	o.shipperID = nil
	o.transition(next, now)
	return nil
}

// Override sets any status on behalf of an admin. Pending and cancelled
// detach the shipper; statuses that need a shipper are rejected when none
// is attached.
func (o *Order) Override(to Status, now time.Time) error {
	if err := to.Validate(); err != nil {
		return err
	}

	switch {
	case to == Pending || to == Cancelled:
		o.shipperID = nil
	case to.RequiresShipper() && o.shipperID == nil:
		return errs.NewInvalidTransitionError(o.status, to)
	}

	o.transition(to, now)
	return nil
}

// AttachProof stores a delivery proof image without changing the status.
func (o *Order) AttachProof(image string, now time.Time) error {
	image = strings.TrimSpace(image)
	if image == "" {
		return errs.NewValueIsRequiredError("proof image")
	}
	if !o.status.AcceptsProof() {
		return errs.NewValueIsInvalidError("proof image can only be attached during or at the end of a delivery")
	}

	o.proofImage = image
	o.updatedAt = now
	return nil
}

// PullEvents returns and clears the pending domain events. The order id is
// stamped at pull time since a new order only learns it after insert.
func (o *Order) PullEvents() []ChangedEvent {
	events := o.events
	o.events = nil
	for i := range events {
		events[i].OrderID = o.id
	}
	return events
}

func (o *Order) transition(to Status, now time.Time) {
	previous := o.status
	o.status = to
	o.updatedAt = now
	o.raise(EventStatusChanged, previous, now)
}

func (o *Order) raise(eventType string, previous Status, now time.Time) {
	o.events = append(o.events, ChangedEvent{
		ID:             uuid.New(),
		Type:           eventType,
		CustomerID:     o.customerID,
		ShipperID:      o.Shipper(),
		Status:         o.status,
		PreviousStatus: previous,
		OccurredAt:     now,
	})
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsRequiredError("customer_id")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStops(pickup, delivery Stop) error {
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return err
	}
	o.pickup = pickup
	o.delivery = delivery
	return nil
}

func (o *Order) setWeight(weight Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	o.weight = weight
	return nil
}

func (o *Order) setPricing(pricing Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	o.pricing = pricing
	return nil
}

func (o *Order) setNotes(notes string) error {
	if err := ValidateNotes(notes); err != nil {
		return err
	}
	o.notes = notes
	return nil
}
