package catalog

import (
	"fmt"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
)

// Validate проверяет загруженный каталог: уникальные непустые ID,
// рейтинг в диапазоне [0, 5] и известный статус доступности.
// Порядок дат и дубликаты дат допустимы.
func Validate(doctors []domain.Doctor) error {
	seen := make(map[string]struct{}, len(doctors))

	for i, d := range doctors {
		if d.ID == "" {
			return fmt.Errorf("%w: doctor #%d has empty id", ErrInvalidCatalog, i)
		}
		if _, ok := seen[d.ID]; ok {
			return fmt.Errorf("%w: duplicate doctor id %q", ErrInvalidCatalog, d.ID)
		}
		seen[d.ID] = struct{}{}

		if d.Rating < domain.MinRating || d.Rating > domain.MaxRating {
			return fmt.Errorf("%w: doctor %q has rating %.1f out of range", ErrInvalidCatalog, d.ID, d.Rating)
		}
		if !d.AvailabilityStatus.IsValid() {
			return fmt.Errorf("%w: doctor %q has unknown availability status %q",
				ErrInvalidCatalog, d.ID, d.AvailabilityStatus)
		}
	}

	return nil
}
