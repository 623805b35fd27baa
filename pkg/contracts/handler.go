package contracts

import "github.com/julienschmidt/httprouter"

// Handler is implemented by every service's HTTP handler so the shared
// application wiring can mount its routes.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}
