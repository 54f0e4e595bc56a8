package api

import (
	"net/http"

	"fixitplus-be/internal/issue"
	"fixitplus-be/internal/middleware"
	"fixitplus-be/internal/order"
)

type checkoutLine struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"quantity"`
}

// checkoutRequest carries only the lines and the delivery class. Any
// totals a client includes are ignored; pricing is recomputed here.
type checkoutRequest struct {
	OrderItems    []checkoutLine `json:"orderItems"`
	LocationClass string         `json:"locationType"`
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, errBadRequestBody)
		return
	}

	lines := make([]order.CheckoutLine, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		lines = append(lines, order.CheckoutLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	o, err := s.orderSvc.Checkout(r.Context(), id.UserID, lines, issue.LocationClass(req.LocationClass))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, o)
}

func (s *Server) handleMyOrders(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	orders, err := s.orderSvc.ListByUser(r.Context(), id.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, orders)
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateOrderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, errBadRequestBody)
		return
	}

	o, err := s.orderSvc.UpdateStatus(r.Context(), r.PathValue("id"), order.Status(req.Status))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, o)
}
