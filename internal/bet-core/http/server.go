package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radieske/f1-bet-core-poc/internal/bet-core/domain"
	"github.com/radieske/f1-bet-core-poc/internal/bet-core/http/dto"
	"github.com/radieske/f1-bet-core-poc/internal/bet-core/provider"
	"github.com/radieske/f1-bet-core-poc/internal/bet-core/service"
	"github.com/radieske/f1-bet-core-poc/internal/bet-core/store"
)

type Server struct {
	log     *zap.Logger
	place   *service.PlaceBet
	settle  *service.RecordOutcome
	list    *service.ListEvents
	balance *service.UserBalance
	bets    *store.Bets
}

func NewServer(log *zap.Logger, place *service.PlaceBet, settle *service.RecordOutcome,
	list *service.ListEvents, balance *service.UserBalance, bets *store.Bets) *Server {
	return &Server{log: log, place: place, settle: settle, list: list, balance: balance, bets: bets}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/bets", s.placeBet)        // POST
	mux.HandleFunc("/api/v1/bets/", s.getBet)         // GET /api/v1/bets/{id}
	mux.HandleFunc("/api/v1/events", s.listEvents)    // GET
	mux.HandleFunc("/api/v1/events/", s.eventOutcome) // POST /api/v1/events/{id}/outcome
	mux.HandleFunc("/api/v1/users/", s.userBalance)   // GET /api/v1/users/{id}/balance
	return mux
}

func (s *Server) placeBet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.PlaceBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad request", "invalid json body")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "bad request", "userId must be a uuid")
		return
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "bad request", "eventId must be a uuid")
		return
	}
	selectionID, err := uuid.Parse(req.SelectionID)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "bad request", "selectionId must be a uuid")
		return
	}

	bet, err := s.place.Place(r.Context(), service.PlaceBetCommand{
		UserID:         userID,
		EventID:        eventID,
		SelectionID:    selectionID,
		StakeAmount:    req.StakeAmount,
		Currency:       req.Currency,
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toBetResponse(bet))
}

func (s *Server) getBet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	// path: /api/v1/bets/{id}
	raw := strings.TrimPrefix(r.URL.Path, "/api/v1/bets/")
	id, err := uuid.Parse(raw)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "bad request", "betId must be a uuid")
		return
	}
	bet, ok := s.bets.Get(id)
	if !ok {
		writeProblem(w, http.StatusNotFound, "not found", "bet "+raw+" not found")
		return
	}
	writeJSON(w, toBetResponse(bet))
}

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()

	var filter provider.SessionFilter
	if v := q.Get("sessionType"); v != "" {
		st, err := domain.ParseSessionType(v)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "bad request", "sessionType must be RACE, QUALIFYING or PRACTICE")
			return
		}
		filter.SessionType = &st
	}
	if v := q.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "bad request", "year must be a number")
			return
		}
		filter.Year = &year
	}
	if v := q.Get("country"); v != "" {
		filter.Country = &v
	}
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("size"))

	result, err := s.list.List(r.Context(), filter, page, size)
	if err != nil {
		s.writeError(w, err)
		return
	}

	items := make([]dto.EventResponse, 0, len(result.Items))
	for _, ev := range result.Items {
		items = append(items, toEventResponse(ev))
	}
	writeJSON(w, dto.ListEventsResponse{Items: items, Page: result.Page, Size: result.Size, Total: result.Total})
}

func (s *Server) eventOutcome(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	// path: /api/v1/events/{id}/outcome
	raw := strings.TrimPrefix(r.URL.Path, "/api/v1/events/")
	raw, ok := strings.CutSuffix(raw, "/outcome")
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "bad request", "eventId must be a uuid")
		return
	}
	var req dto.RecordOutcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad request", "invalid json body")
		return
	}
	if req.WinningDriverID == "" {
		writeProblem(w, http.StatusBadRequest, "bad request", "winningDriverId required")
		return
	}

	if err := s.settle.Record(r.Context(), id, req.WinningDriverID); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) userBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	// path: /api/v1/users/{id}/balance
	raw := strings.TrimPrefix(r.URL.Path, "/api/v1/users/")
	raw, ok := strings.CutSuffix(raw, "/balance")
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "bad request", "userId must be a uuid")
		return
	}
	user := s.balance.Get(id)
	writeJSON(w, dto.UserBalanceResponse{
		UserID:   user.ID.String(),
		Balance:  user.Balance.Amount,
		Currency: user.Balance.Currency,
	})
}

// writeError traduz o kind do erro de domínio para o status HTTP.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		s.log.Error("internal error", zap.Error(err))
		writeProblem(w, http.StatusInternalServerError, "internal error", "unexpected failure")
		return
	}
	switch derr.Kind {
	case domain.KindEventNotFound, domain.KindBetNotFound:
		writeProblem(w, http.StatusNotFound, "not found", derr.Detail)
	case domain.KindOptimisticLock:
		writeProblem(w, http.StatusConflict, "conflict", derr.Detail)
	default:
		writeProblem(w, http.StatusUnprocessableEntity, derr.Kind.String(), derr.Detail)
	}
}

func toBetResponse(bet domain.Bet) dto.BetResponse {
	return dto.BetResponse{
		BetID:        bet.ID.String(),
		Status:       string(bet.Status),
		Stake:        bet.Stake.Amount,
		Currency:     bet.Stake.Currency,
		CapturedOdds: bet.CapturedOdds.Decimal(),
		EventID:      bet.EventID.String(),
		SelectionID:  bet.SelectionID.String(),
	}
}

func toEventResponse(ev domain.Event) dto.EventResponse {
	market := make([]dto.SelectionResponse, 0, len(ev.Market.Selections))
	for _, sel := range ev.Market.Selections {
		market = append(market, dto.SelectionResponse{
			SelectionID: sel.ID.String(),
			DriverID:    sel.DriverID,
			DriverName:  sel.DriverName,
			Odds:        sel.Odds.Decimal(),
		})
	}
	return dto.EventResponse{
		ID:           ev.ID.String(),
		Name:         ev.Name,
		SessionType:  string(ev.SessionType),
		Country:      ev.Country,
		Year:         ev.Year,
		StartTime:    ev.StartTime,
		State:        string(ev.State),
		DriverMarket: market,
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.Problem{Status: status, Title: title, Detail: detail})
}
