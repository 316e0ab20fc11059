// Package http exposes the use cases over a JSON REST API served by echo.
package http

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/application/usecases/commands"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/application/usecases/queries"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/user"
	"github.com/FIT-dev-AI/Delivery-app/internal/generated/servers"
)

// CommandHandler runs a command that produces no result.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler runs a command or query that produces a result.
type ResultHandler[I, R any] interface {
	Handle(ctx context.Context, in I) (R, error)
}

// Handlers lists every use case reachable over HTTP.
type Handlers struct {
	// Commands
	CreateOrder        ResultHandler[commands.CreateOrderCommand, commands.CreateOrderResult]
	AcceptOrder        CommandHandler[commands.AcceptOrderCommand]
	AssignOrder        CommandHandler[commands.AssignOrderCommand]
	UpdateOrderStatus  CommandHandler[commands.UpdateOrderStatusCommand]
	CancelOrder        CommandHandler[commands.CancelOrderCommand]
	AttachProof        CommandHandler[commands.AttachProofCommand]
	Register           ResultHandler[commands.RegisterUserCommand, commands.AuthResult]
	Login              ResultHandler[commands.LoginCommand, commands.AuthResult]
	UpdateOnlineStatus ResultHandler[commands.UpdateOnlineStatusCommand, *user.User]
	ForgotPassword     CommandHandler[commands.ForgotPasswordCommand]
	VerifyOTP          CommandHandler[commands.VerifyOTPCommand]
	ResetPassword      CommandHandler[commands.ResetPasswordCommand]
	RecordLocation     CommandHandler[commands.RecordLocationCommand]

	// Queries
	ListOrders              ResultHandler[queries.ListOrdersQuery, []queries.OrderView]
	GetActiveOrders         ResultHandler[queries.GetActiveOrdersQuery, []queries.OrderView]
	GetOrder                ResultHandler[queries.GetOrderQuery, queries.OrderView]
	GetOrderHistory         ResultHandler[queries.GetOrderHistoryQuery, []queries.HistoryEntryView]
	GetDashboard            ResultHandler[queries.GetDashboardQuery, queries.Dashboard]
	GetShipperLocation      ResultHandler[queries.GetShipperLocationQuery, *queries.LocationView]
	GetOrderLocationHistory ResultHandler[queries.GetOrderLocationHistoryQuery, []queries.LocationView]
	GetOnlineShippers       ResultHandler[queries.GetOnlineShippersQuery, []queries.ShipperView]
}

// Server implements servers.ServerInterface on top of the use case handlers.
type Server struct {
	h      Handlers
	logger *logrus.Entry
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *logrus.Entry) *Server {
	return &Server{h: handlers, logger: logger}
}
