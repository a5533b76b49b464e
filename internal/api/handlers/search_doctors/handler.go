package search_doctors

import (
	"net/http"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/api/handlers"
	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
)

const searchParam = "search"

type Handler struct {
	store  SearchTermSetter
	lister DoctorLister
	logger Logger
}

func NewHandler(store SearchTermSetter, lister DoctorLister, logger Logger) *Handler {
	return &Handler{
		store:  store,
		lister: lister,
		logger: logger,
	}
}

// Handle GET /api/v1/doctors
// Query params: search (optional). Если параметр передан, он становится
// текущим поисковым запросом и ответ фильтруется именно по нему,
// иначе используется сохраненный запрос.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var doctors []domain.Doctor
	if query.Has(searchParam) {
		term := query.Get(searchParam)
		h.store.SetSearchTerm(term)
		h.logger.Info("GET /doctors - Search term set: term=%q", term)
		doctors = h.lister.Search(term)
	} else {
		doctors = h.lister.Listing()
	}

	h.logger.Info("GET /doctors - Doctors listed: count=%d", len(doctors))
	handlers.RespondJSON(w, http.StatusOK, SearchDoctorsResponse{
		Doctors: handlers.FromDoctors(doctors),
		Count:   len(doctors),
	})
}
