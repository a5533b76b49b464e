package catalog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
)

// psql билдер с плейсхолдерами $1, $2, ...
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repository загружает начальный каталог из PostgreSQL.
// Только чтение: бронирования в базу не пишутся.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// availabilityRow строка таблицы doctor_availability
type availabilityRow struct {
	DoctorID string
	Date     string
	Slots    []string
}

// Load получает всех врачей с их расписанием.
// Порядок врачей задается колонкой position, порядок дат внутри врача - тоже.
func (r *Repository) Load(ctx context.Context) ([]domain.Doctor, error) {
	doctors, err := r.listDoctors(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.listAvailability(ctx)
	if err != nil {
		return nil, err
	}

	doctors = attachAvailability(doctors, rows)

	if err := Validate(doctors); err != nil {
		return nil, err
	}

	return doctors, nil
}

func (r *Repository) listDoctors(ctx context.Context) ([]domain.Doctor, error) {
	query, args, err := buildDoctorsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: listDoctors - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listDoctors - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	doctors := make([]domain.Doctor, 0)
	for rows.Next() {
		var (
			d      domain.Doctor
			status string
		)
		if err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.Specialization,
			&d.ProfileImage,
			&status,
			&d.Experience,
			&d.Rating,
			&d.Location,
			&d.About,
		); err != nil {
			return nil, fmt.Errorf("%w: listDoctors - scan doctor: %v", ErrScanRow, err)
		}
		d.AvailabilityStatus = domain.AvailabilityStatus(status)
		d.Availability = []domain.TimeSlot{}
		doctors = append(doctors, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listDoctors - iterate rows: %v", ErrScanRow, err)
	}

	return doctors, nil
}

func (r *Repository) listAvailability(ctx context.Context) ([]availabilityRow, error) {
	query, args, err := buildAvailabilityQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: listAvailability - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listAvailability - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]availabilityRow, 0)
	for rows.Next() {
		var row availabilityRow
		if err := rows.Scan(&row.DoctorID, &row.Date, pq.Array(&row.Slots)); err != nil {
			return nil, fmt.Errorf("%w: listAvailability - scan row: %v", ErrScanRow, err)
		}
		if row.Slots == nil {
			row.Slots = []string{}
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listAvailability - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}

func buildDoctorsQuery() (string, []interface{}, error) {
	return psql.Select(
		"id",
		"name",
		"specialization",
		"profile_image",
		"availability_status",
		"experience",
		"rating",
		"location",
		"about",
	).
		From("doctors").
		OrderBy("position ASC", "id ASC").
		ToSql()
}

func buildAvailabilityQuery() (string, []interface{}, error) {
	return psql.Select(
		"doctor_id",
		"to_char(available_on, 'YYYY-MM-DD')",
		"slots",
	).
		From("doctor_availability").
		OrderBy("doctor_id ASC", "position ASC").
		ToSql()
}

// attachAvailability раскладывает строки расписания по врачам.
// Строки для неизвестных врачей игнорируются.
func attachAvailability(doctors []domain.Doctor, rows []availabilityRow) []domain.Doctor {
	index := make(map[string]int, len(doctors))
	for i, d := range doctors {
		index[d.ID] = i
	}

	for _, row := range rows {
		i, ok := index[row.DoctorID]
		if !ok {
			continue
		}
		doctors[i].Availability = append(doctors[i].Availability, domain.TimeSlot{
			Date:  row.Date,
			Slots: row.Slots,
		})
	}

	return doctors
}
