package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

const tableAppointments = "appointments"

var appointmentColumns = []string{
	"id",
	"business_id",
	"scheduled_at",
	"duration_minutes",
	"status",
	"client_name",
	"service_name",
	"price",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для чтения записей
// Записи принадлежат внешнему сервису, здесь только выборка согласованного снимка
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusinessWithFilter получает записи бизнеса за период [From, To)
// Результат отсортирован по времени начала, затем по ID
func (r *Repository) GetByBusinessWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]domain.Appointment, error) {
	query, args, err := buildFilterQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func buildFilterQuery(filter domain.AppointmentsFilter) (string, []interface{}, error) {
	if filter.BusinessID <= 0 {
		return "", nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidFilter)
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && !filter.From.Before(filter.To) {
		return "", nil, fmt.Errorf("%w: period start must be before period end", ErrInvalidFilter)
	}

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From(tableAppointments).
		Where(squirrel.Eq{"business_id": filter.BusinessID})

	// Фильтрация по периоду
	if !filter.From.IsZero() {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"scheduled_at": filter.From})
	}
	if !filter.To.IsZero() {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"scheduled_at": filter.To})
	}

	// Фильтрация по статусам
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			if !s.IsValid() {
				return "", nil, fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, s)
			}
			statuses[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Expr("status = ANY(?)", pq.Array(statuses)))
	}

	query, args, err := selectBuilder.OrderBy("scheduled_at ASC", "id ASC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: GetByBusinessWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	return query, args, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appointment domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appointment.ID,
		&appointment.BusinessID,
		&appointment.ScheduledAt,
		&appointment.DurationMinutes,
		&appointment.Status,
		&appointment.ClientName,
		&appointment.ServiceName,
		&appointment.Price,
		&appointment.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return &appointment, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]domain.Appointment, error) {
	appointments := make([]domain.Appointment, 0)

	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, *appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
