package http

import (
	"github.com/FIT-dev-AI/Delivery-app/internal/core/application/usecases/commands"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/application/usecases/queries"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/user"
	"github.com/FIT-dev-AI/Delivery-app/internal/generated/servers"
)

func toOrder(v queries.OrderView) servers.Order {
	return servers.Order{
		Id:              v.ID,
		CustomerId:      v.CustomerID,
		CustomerName:    v.CustomerName,
		CustomerPhone:   v.CustomerPhone,
		ShipperId:       v.ShipperID,
		ShipperName:     v.ShipperName,
		ShipperPhone:    v.ShipperPhone,
		PickupAddress:   v.PickupAddress,
		PickupLat:       &v.PickupLat,
		PickupLng:       &v.PickupLng,
		DeliveryAddress: v.DeliveryAddress,
		DeliveryLat:     &v.DeliveryLat,
		DeliveryLng:     &v.DeliveryLng,
		Category:        v.Category,
		Weight:          v.WeightKg,
		Pricing: servers.Pricing{
			DistanceKm:    v.DistanceKm,
			BaseAmount:    v.BaseAmount,
			DistanceFee:   v.DistanceFee,
			TotalAmount:   v.TotalAmount,
			ShipperAmount: v.ShipperAmount,
			AppCommission: v.AppCommission,
		},
		Status:     servers.OrderStatus(v.Status),
		Notes:      optional(v.Notes),
		ProofImage: optional(v.ProofImage),
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func toPricing(p order.Pricing) servers.Pricing {
	return servers.Pricing{
		DistanceKm:    p.DistanceKm,
		BaseAmount:    p.BaseAmount,
		DistanceFee:   p.DistanceFee,
		TotalAmount:   p.TotalAmount,
		ShipperAmount: p.ShipperAmount,
		AppCommission: p.AppCommission,
	}
}

func toHistoryEntry(v queries.HistoryEntryView) servers.HistoryEntry {
	return servers.HistoryEntry{
		Id:        v.ID,
		OrderId:   v.OrderID,
		Status:    v.Status,
		ShipperId: v.ShipperID,
		Note:      optional(v.Note),
		CreatedAt: v.CreatedAt,
	}
}

func toLocation(v queries.LocationView) servers.LocationPoint {
	return servers.LocationPoint{
		Id:         v.ID,
		ShipperId:  v.ShipperID,
		Latitude:   v.Latitude,
		Longitude:  v.Longitude,
		Accuracy:   v.AccuracyM,
		OrderId:    v.OrderID,
		RecordedAt: v.RecordedAt,
	}
}

func toShipper(v queries.ShipperView) servers.Shipper {
	return servers.Shipper{
		Id:           v.ID,
		Name:         v.Name,
		Email:        v.Email,
		Phone:        optional(v.Phone),
		LastOnline:   v.LastOnline,
		ActiveOrders: v.ActiveOrders,
	}
}

func toUser(u *user.User) servers.User {
	return servers.User{
		Id:         u.ID(),
		Name:       u.Name(),
		Email:      u.Email(),
		Role:       u.Role().String(),
		Phone:      optional(u.Phone()),
		IsOnline:   u.IsOnline(),
		LastOnline: u.LastOnline(),
	}
}

func toAuthResponse(r commands.AuthResult) servers.AuthResponse {
	return servers.AuthResponse{Token: r.Token, User: toUser(r.User)}
}

func toDashboard(d queries.Dashboard) servers.Dashboard {
	return servers.Dashboard{
		TotalOrders:        d.TotalOrders,
		Pending:            d.Pending,
		Assigned:           d.Assigned,
		PickedUp:           d.PickedUp,
		InTransit:          d.InTransit,
		Delivered:          d.Delivered,
		Cancelled:          d.Cancelled,
		CancelledByShipper: d.CancelledByShipper,
		MonthRevenue:       d.MonthRevenue,
		LastMonthRevenue:   d.LastMonthRevenue,
		RevenueGrowth:      d.RevenueGrowth,
	}
}

// mapSlice never returns nil so empty lists encode as [].
func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
