package public

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/langowen/cnbrates/deploy/config"
	mwLogger "github.com/langowen/cnbrates/internal/api_service/ports/http/public/middleware/logger"
	"github.com/langowen/cnbrates/internal/entities"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	Server  *http.Server
	service Service
	now     func() time.Time
}

type RatesResponse struct {
	Day   string                  `json:"day"`
	Base  entities.Currency       `json:"base"`
	Rates []entities.ExchangeRate `json:"rates"`
}

type CompareResponse struct {
	FirstDay    string                            `json:"first_day"`
	SecondDay   string                            `json:"second_day"`
	Base        entities.Currency                 `json:"base"`
	Differences []entities.ExchangeRateDifference `json:"differences"`
}

type CurrenciesResponse struct {
	Base      entities.Currency   `json:"base"`
	Supported []entities.Currency `json:"supported"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func NewServer(server *http.Server, service Service) *Server {
	return &Server{
		Server:  server,
		service: service,
		now:     time.Now,
	}
}

// NewRouter registers the public routes on a fresh chi router.
func (s *Server) NewRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mwLogger.New())
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/currencies", s.GetCurrencies)
	r.Get("/rates", s.GetLatestRates)
	r.Get("/rates/compare", s.CompareRates)
	r.Get("/rates/{date}", s.GetRatesOnDay)

	return r
}

func StartServer(ctx context.Context, service Service, cfg *config.Config) <-chan struct{} {
	server := NewServer(nil, service)

	server.Server = &http.Server{
		Addr:         ":" + cfg.HTTPServer.Port,
		Handler:      server.NewRouter(),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	doneChan := make(chan struct{})

	go func() {
		if err := server.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Http server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to stop server", "error", err)
		}

		close(doneChan)
	}()

	return doneChan
}

func (s *Server) GetCurrencies(w http.ResponseWriter, _ *http.Request) {
	supported := s.service.SupportedCurrencies()

	RespondWithJSON(w, http.StatusOK, CurrenciesResponse{
		Base:      supported.Base(),
		Supported: supported.All(),
	})
}

func (s *Server) GetLatestRates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	currencies, err := s.requestedCurrencies(r)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid currencies", err.Error())
		return
	}

	rates, err := s.service.ExchangeRates(ctx, currencies)
	if err != nil {
		respondWithSourceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, RatesResponse{
		Day:   entities.Latest().String(),
		Base:  s.service.SupportedCurrencies().Base(),
		Rates: rates,
	})
}

func (s *Server) GetRatesOnDay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	day, err := entities.ParseDay(chi.URLParam(r, "date"), s.now())
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	currencies, err := s.requestedCurrencies(r)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid currencies", err.Error())
		return
	}

	rates, err := s.service.ExchangeRatesOnDay(ctx, currencies, day)
	if err != nil {
		respondWithSourceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, RatesResponse{
		Day:   day.String(),
		Base:  s.service.SupportedCurrencies().Base(),
		Rates: rates,
	})
}

func (s *Server) CompareRates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := s.now()

	first, err := entities.ParseDay(r.URL.Query().Get("first"), now)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid first date", err.Error())
		return
	}

	second, err := entities.ParseDay(r.URL.Query().Get("second"), now)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid second date", err.Error())
		return
	}

	currencies, err := s.requestedCurrencies(r)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid currencies", err.Error())
		return
	}

	diffs, err := s.service.CompareExchangeRates(ctx, currencies, first, second)
	if err != nil {
		respondWithSourceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, CompareResponse{
		FirstDay:    first.String(),
		SecondDay:   second.String(),
		Base:        s.service.SupportedCurrencies().Base(),
		Differences: diffs,
	})
}

// requestedCurrencies reads the comma separated currencies query. Nil means
// every supported currency.
func (s *Server) requestedCurrencies(r *http.Request) ([]entities.Currency, error) {
	codes := config.Split(r.URL.Query().Get("currencies"))
	if len(codes) == 0 {
		return nil, nil
	}

	currencies, err := entities.ParseCurrencies(codes)
	if err != nil {
		return nil, err
	}

	supported := make(map[entities.Currency]struct{})
	for _, c := range s.service.SupportedCurrencies().All() {
		supported[c] = struct{}{}
	}

	for _, c := range currencies {
		if _, ok := supported[c]; !ok {
			return nil, fmt.Errorf("%w: %s is not supported", entities.ErrInvalidCurrency, c.Code())
		}
	}

	return currencies, nil
}

func respondWithSourceError(w http.ResponseWriter, err error) {
	var srcErr *entities.SourceError
	if !errors.As(err, &srcErr) {
		slog.Error("Unexpected service error", "error", err)
		RespondWithError(w, http.StatusInternalServerError, "internal error")
		return
	}

	code := http.StatusBadGateway
	if srcErr.Kind == entities.SourceTimeout {
		code = http.StatusGatewayTimeout
	}

	RespondWithError(w, code, srcErr.Kind.String(), srcErr.Error())
}

func RespondWithJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string, details ...string) {
	resp := ErrorResponse{Error: message}
	if len(details) > 0 {
		resp.Details = details[0]
	}

	RespondWithJSON(w, code, resp)
}
