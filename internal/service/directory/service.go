package directory

import (
	"strings"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
)

// Service каталог врачей: поиск по ID и текстовый поиск.
// Данные берутся из хранилища состояния, поэтому SetDoctors виден сразу.
type Service struct {
	store  StateReader
	logger Logger
}

// NewService создает новый экземпляр каталога
func NewService(store StateReader, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// FindByID ищет врача по ID.
// Отсутствие врача - это (Doctor{}, false), а не ошибка.
// Возвращается копия: изменения не затрагивают каталог.
func (s *Service) FindByID(id string) (domain.Doctor, bool) {
	for _, d := range s.store.State().Doctors {
		if d.ID == id {
			return d.Clone(), true
		}
	}

	s.logger.Warn("FindByID: doctor id=%s not found", id)
	return domain.Doctor{}, false
}

// Search возвращает врачей, у которых имя или специализация содержат term
// без учета регистра. Пустой term возвращает весь каталог в исходном порядке.
func (s *Service) Search(term string) []domain.Doctor {
	return filterDoctors(s.store.State().Doctors, term)
}

// Listing результат поиска по текущему поисковому запросу из состояния
func (s *Service) Listing() []domain.Doctor {
	st := s.store.State()
	result := filterDoctors(st.Doctors, st.SearchTerm)

	s.logger.Info("Listing: %d doctors found for term=%q", len(result), st.SearchTerm)
	return result
}

func filterDoctors(doctors []domain.Doctor, term string) []domain.Doctor {
	if term == "" {
		out := make([]domain.Doctor, len(doctors))
		for i, d := range doctors {
			out[i] = d.Clone()
		}
		return out
	}

	needle := strings.ToLower(term)
	out := make([]domain.Doctor, 0)
	for _, d := range doctors {
		if strings.Contains(strings.ToLower(d.Name), needle) ||
			strings.Contains(strings.ToLower(d.Specialization), needle) {
			out = append(out, d.Clone())
		}
	}
	return out
}
