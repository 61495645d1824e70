package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_port "listings-gateway/internal/core/port"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	listingsHandler *ListingsHandler,
	auctionsHandler *AuctionsHandler,
	openHomesHandler *OpenHomesHandler,
	agentsHandler *AgentsHandler,
	categoriesHandler *CategoriesHandler,
	enquiriesHandler *EnquiriesHandler,
	allowedOrigins []string,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/listings", listingsHandler.GetListings)
		r.Get("/listings/{listingID}", listingsHandler.GetListingByID)

		r.Get("/auctions", auctionsHandler.GetAuctions)
		r.Get("/auctions/{listingID}", auctionsHandler.GetAuctionByID)

		r.Get("/open-homes", openHomesHandler.GetOpenHomes)

		r.Get("/agents", agentsHandler.GetAgents)
		r.Get("/agents/{agentID}", agentsHandler.GetAgentByID)
		r.Get("/agents/{agentID}/listings", agentsHandler.GetAgentListings)

		r.Get("/categories", categoriesHandler.GetCategories)

		r.Post("/contact", enquiriesHandler.SubmitContact)
		r.Post("/contact/appraisal", enquiriesHandler.SubmitAppraisal)
		r.Post("/contact/maintenance", enquiriesHandler.SubmitMaintenance)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
