package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/example/order-alert-service/internal/domain"
	"github.com/example/order-alert-service/internal/usecase"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	Router     *mux.Router
	UCGet      usecase.GetOrderByID
	UCRegister usecase.RegisterDeviceToken
}

func NewServer(ucGet usecase.GetOrderByID, ucRegister usecase.RegisterDeviceToken) *Server {
	s := &Server{Router: mux.NewRouter(), UCGet: ucGet, UCRegister: ucRegister}
	s.Router.HandleFunc("/api/order/{id}", s.handleGetOrder).Methods(http.MethodGet)
	s.Router.HandleFunc("/api/notifications/device", s.handleRegisterDevice).Methods(http.MethodPost)
	s.Router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.Router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return s
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	o, ok := s.UCGet.Execute(id)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(o)
}

type registerDeviceRequest struct {
	Token string `json:"token"`
}

func (s *Server) handleRegisterDevice(w http.ResponseWriter, r *http.Request) {
	var req registerDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	err := s.UCRegister.Execute(r.Context(), req.Token)
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, "token required", http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "admin account not found", http.StatusNotFound)
	case err != nil:
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
