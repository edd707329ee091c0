package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nikolayk812/tilequote/internal/domain"
	"go.uber.org/zap"
)

type Services struct {
	Users      UserLookup
	Catalog    CatalogService
	Carts      CartService
	Quotations QuotationService
	Dashboard  DashboardService
	Staff      StaffService
}

func NewRouter(svc Services, logger *zap.Logger, requestTimeout time.Duration) chi.Router {
	tiles := NewTileHandler(svc.Catalog, logger)
	carts := NewCartHandler(svc.Carts, logger)
	quotations := NewQuotationHandler(svc.Quotations, svc.Dashboard, logger)
	staff := NewStaffHandler(svc.Staff, logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health)
		r.Post("/signup", staff.SignUp)

		r.Group(func(r chi.Router) {
			r.Use(Authenticate(svc.Users, logger))

			r.Get("/dashboard", quotations.Dashboard)
			r.Post("/calculator/room", tiles.RoomCalculator)

			r.Route("/tiles", func(r chi.Router) {
				r.Get("/", tiles.ListTiles)
				r.Get("/categories", tiles.Categories)
				r.Get("/{id}", tiles.GetTile)

				r.Group(func(r chi.Router) {
					r.Use(RequireRole(domain.RoleAdmin))
					r.Post("/", tiles.CreateTile)
					r.Post("/register", tiles.RegisterTile)
					r.Put("/{id}", tiles.UpdateTile)
					r.Delete("/{id}", tiles.DeleteTile)
				})
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", carts.GetCart)
				r.Delete("/", carts.ClearCart)
				r.Post("/items", carts.AddItem)
				r.Post("/items/room", carts.AddRoom)
				r.Put("/items/{tileID}", carts.UpdateQuantity)
				r.Delete("/items/{tileID}", carts.RemoveItem)
			})

			r.Route("/quotations", func(r chi.Router) {
				r.Post("/", quotations.Checkout)
				r.Get("/", quotations.ListQuotations)
				r.Get("/{id}", quotations.GetQuotation)
			})

			r.Route("/workers", func(r chi.Router) {
				r.Use(RequireRole(domain.RoleAdmin))
				r.Get("/", staff.ListWorkers)
				r.Post("/", staff.AddWorker)
				r.Delete("/{id}", staff.RemoveWorker)
			})
		})
	})

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
