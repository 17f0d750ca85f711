package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"meetingdesk-backend/internal/domain"
)

// NewRouter wires every handler under /api/v1. Auth endpoints are public;
// everything else requires a valid access token, and catalog mutation is
// admin only.
func NewRouter(
	authMw *AuthMiddleware,
	authHandler *AuthHandler,
	requestHandler *RequestHandler,
	catalogHandler *CatalogHandler,
	notificationHandler *NotificationHandler,
) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(authMw.Authenticate)

	authed.HandleFunc("/requests", requestHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/requests", requestHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/requests/{id:[0-9]+}", requestHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/requests/{id:[0-9]+}/tracks/{track}/approve", requestHandler.Approve).Methods(http.MethodPost)
	authed.HandleFunc("/requests/{id:[0-9]+}/tracks/{track}/reject", requestHandler.Reject).Methods(http.MethodPost)
	authed.HandleFunc("/availability", requestHandler.Availability).Methods(http.MethodGet)

	authed.HandleFunc("/rooms", catalogHandler.ListRooms).Methods(http.MethodGet)
	authed.HandleFunc("/rooms/{id:[0-9]+}", catalogHandler.GetRoom).Methods(http.MethodGet)
	authed.HandleFunc("/rooms", RequireRole(domain.RoleAdmin, catalogHandler.CreateRoom)).Methods(http.MethodPost)
	authed.HandleFunc("/rooms/{id:[0-9]+}", RequireRole(domain.RoleAdmin, catalogHandler.UpdateRoom)).Methods(http.MethodPut)
	authed.HandleFunc("/rooms/{id:[0-9]+}/active", RequireRole(domain.RoleAdmin, catalogHandler.SetRoomActive)).Methods(http.MethodPut)

	authed.HandleFunc("/zoom-accounts", catalogHandler.ListZoomAccounts).Methods(http.MethodGet)
	authed.HandleFunc("/zoom-accounts/{id:[0-9]+}", catalogHandler.GetZoomAccount).Methods(http.MethodGet)
	authed.HandleFunc("/zoom-accounts", RequireRole(domain.RoleAdmin, catalogHandler.CreateZoomAccount)).Methods(http.MethodPost)
	authed.HandleFunc("/zoom-accounts/{id:[0-9]+}", RequireRole(domain.RoleAdmin, catalogHandler.UpdateZoomAccount)).Methods(http.MethodPut)
	authed.HandleFunc("/zoom-accounts/{id:[0-9]+}/active", RequireRole(domain.RoleAdmin, catalogHandler.SetZoomAccountActive)).Methods(http.MethodPut)

	authed.HandleFunc("/notifications", notificationHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id:[0-9]+}/read", notificationHandler.MarkAsRead).Methods(http.MethodPost)

	return router
}
