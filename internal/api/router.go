package api

import (
	"fmt"
	"net/http"

	"fixitplus-be/internal/classify"
	"fixitplus-be/internal/config"
	"fixitplus-be/internal/issue"
	"fixitplus-be/internal/logger"
	"fixitplus-be/internal/middleware"
	"fixitplus-be/internal/order"
	"fixitplus-be/internal/product"
	"fixitplus-be/internal/user"
)

type Server struct {
	cfg        *config.Config
	userSvc    user.Service
	issueSvc   issue.Service
	productSvc product.Service
	orderSvc   order.Service
	suggester  *classify.Suggester
}

func NewServer(
	cfg *config.Config,
	userSvc user.Service,
	issueSvc issue.Service,
	productSvc product.Service,
	orderSvc order.Service,
	suggester *classify.Suggester,
) *Server {
	return &Server{
		cfg:        cfg,
		userSvc:    userSvc,
		issueSvc:   issueSvc,
		productSvc: productSvc,
		orderSvc:   orderSvc,
		suggester:  suggester,
	}
}

// Handler assembles the route table and the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	authed := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}
	employee := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireEmployee(h)
	}

	// Accounts
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.Handle("GET /auth/me", authed(s.handleMe))
	mux.Handle("PUT /auth/profile", authed(s.handleUpdateProfile))

	// Issues
	mux.Handle("GET /issues", employee(s.handleListIssues))
	mux.Handle("GET /issues/mine", authed(s.handleMyIssues))
	mux.Handle("POST /issues", authed(s.handleCreateIssue))
	mux.Handle("PUT /issues/{id}", employee(s.handleUpdateIssue))
	mux.Handle("POST /issues/categorize", authed(s.handleCategorize))

	// Products: listing is public, mutation is employee-only
	mux.HandleFunc("GET /products", s.handleListProducts)
	mux.HandleFunc("GET /products/{id}", s.handleGetProduct)
	mux.Handle("POST /products", employee(s.handleCreateProduct))
	mux.Handle("PUT /products/{id}", employee(s.handleUpdateProduct))
	mux.Handle("DELETE /products/{id}", employee(s.handleDeleteProduct))

	// Orders
	mux.Handle("POST /orders", authed(s.handleCheckout))
	mux.Handle("GET /orders/mine", authed(s.handleMyOrders))
	mux.Handle("PUT /orders/{id}", employee(s.handleUpdateOrderStatus))

	// Health check on the exact root; anything else unmatched is a 404.
	mux.HandleFunc("/", s.handleFallback)

	var h http.Handler = mux
	h = middleware.RateLimitMiddleware(h)
	h = logger.RequestLoggingMiddleware(h)
	h = middleware.AuthMiddleware(h)
	h = logger.RequestIDMiddleware(h)
	return h
}

func (s *Server) handleFallback(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "FixIt+ API is running...")
		return
	}

	s.writeJSON(w, http.StatusNotFound, errorResponse{
		Message: "Not Found - " + r.URL.Path,
	})
}
