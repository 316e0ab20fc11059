package services

import (
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// Action is an operation guarded by role.
type Action string

const (
	ActionCreateOrder       Action = "create order"
	ActionAcceptOrder       Action = "accept order"
	ActionAssignOrder       Action = "assign order"
	ActionUpdateOrderStatus Action = "update order status"
	ActionReleaseOrder      Action = "cancel order"
	ActionAttachProof       Action = "attach proof"
	ActionListActiveOrders  Action = "list active orders"
	ActionRecordLocation    Action = "record location"
	ActionListOnlineShipper Action = "list online shippers"
)

var permissions = map[kernel.Role]map[Action]struct{}{
	kernel.RoleCustomer: {
		ActionCreateOrder: {},
	},
	kernel.RoleShipper: {
		ActionAcceptOrder:       {},
		ActionUpdateOrderStatus: {},
		ActionReleaseOrder:      {},
		ActionAttachProof:       {},
		ActionListActiveOrders:  {},
		ActionRecordLocation:    {},
	},
	kernel.RoleAdmin: {
		ActionCreateOrder:       {},
		ActionAssignOrder:       {},
		ActionUpdateOrderStatus: {},
		ActionAttachProof:       {},
		ActionListOnlineShipper: {},
	},
}

// Authorize returns a PermissionDeniedError unless actor's role may perform action.
// Ownership checks stay with the aggregates.
func Authorize(actor kernel.Actor, action Action) error {
	if _, ok := permissions[actor.Role][action]; !ok {
		return errs.NewPermissionDeniedError(string(action), "not allowed for role "+actor.Role.String())
	}
	return nil
}
