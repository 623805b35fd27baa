package handler

import (
	_ "embed"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

//go:embed dashboard.html
var dashboardPage []byte

// Dashboard serves the operator UI. The page is static; it polls the
// JSON API from the browser.
func (h *ParkingHandler) Dashboard(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(dashboardPage)
}
