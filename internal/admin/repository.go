package admin

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	CountByColumn(ctx context.Context, table, column string) (map[string]int, error)
	CountRows(ctx context.Context, table string) (int, error)
	MostBooked(ctx context.Context, limit int) ([]ResourceUsage, error)
	UsageByCategory(ctx context.Context) ([]CategoryUsage, error)
	UsageByDepartment(ctx context.Context) ([]DepartmentUsage, error)
	InsertLog(ctx context.Context, e *LogEntry) error
	ListLogs(ctx context.Context, page, pageSize int) ([]*LogEntry, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// CountByColumn groups a table by one column and counts the rows per
// value. table and column are compile-time constants in all callers,
// never user input.
func (r *pgxRepository) CountByColumn(ctx context.Context, table, column string) (map[string]int, error) {
	query := fmt.Sprintf(`SELECT %s, COUNT(*) FROM %s GROUP BY %s`, column, table, column)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count %s by %s failed: %w", table, column, err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var value string
		var count int
		if err := rows.Scan(&value, &count); err != nil {
			return nil, fmt.Errorf("scan count failed: %w", err)
		}
		out[value] = count
	}
	return out, nil
}

func (r *pgxRepository) CountRows(ctx context.Context, table string) (int, error) {
	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s failed: %w", table, err)
	}
	return count, nil
}

func (r *pgxRepository) MostBooked(ctx context.Context, limit int) ([]ResourceUsage, error) {
	if limit < 1 {
		limit = 5
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select("r.id", "r.title", "r.category", "COUNT(b.id) AS bookings").
		From("public.resources r").
		Join("public.bookings b ON b.resource_id = r.id").
		GroupBy("r.id", "r.title", "r.category").
		OrderBy("bookings DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build most booked query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("most booked query failed: %w", err)
	}
	defer rows.Close()

	var out []ResourceUsage
	for rows.Next() {
		var u ResourceUsage
		if err := rows.Scan(&u.ResourceID, &u.Title, &u.Category, &u.Bookings); err != nil {
			return nil, fmt.Errorf("scan resource usage failed: %w", err)
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *pgxRepository) UsageByCategory(ctx context.Context) ([]CategoryUsage, error) {
	const query = `
		SELECT r.category, COUNT(DISTINCT r.id), COUNT(b.id)
		FROM public.resources r
		LEFT JOIN public.bookings b ON b.resource_id = r.id
		WHERE r.category <> ''
		GROUP BY r.category
		ORDER BY COUNT(b.id) DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("usage by category failed: %w", err)
	}
	defer rows.Close()

	var out []CategoryUsage
	for rows.Next() {
		var u CategoryUsage
		if err := rows.Scan(&u.Category, &u.Resources, &u.Bookings); err != nil {
			return nil, fmt.Errorf("scan category usage failed: %w", err)
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *pgxRepository) UsageByDepartment(ctx context.Context) ([]DepartmentUsage, error) {
	const query = `
		SELECT u.department, COUNT(DISTINCT u.id), COUNT(b.id)
		FROM public.users u
		JOIN public.bookings b ON b.requester_id = u.id
		WHERE u.department <> ''
		GROUP BY u.department
		ORDER BY COUNT(b.id) DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("usage by department failed: %w", err)
	}
	defer rows.Close()

	var out []DepartmentUsage
	for rows.Next() {
		var u DepartmentUsage
		if err := rows.Scan(&u.Department, &u.Requesters, &u.Bookings); err != nil {
			return nil, fmt.Errorf("scan department usage failed: %w", err)
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *pgxRepository) InsertLog(ctx context.Context, e *LogEntry) error {
	const query = `
		INSERT INTO public.admin_logs (admin_id, action, target_table, details)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, e.AdminID, e.Action, e.TargetTable, e.Details).
		Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert admin log failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ListLogs(ctx context.Context, page, pageSize int) ([]*LogEntry, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(
		"l.id", "l.admin_id", "u.name", "l.action", "l.target_table", "l.details", "l.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.admin_logs l").
		Join("public.users u ON l.admin_id = u.id").
		OrderBy("l.created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list logs query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list admin logs failed: %w", err)
	}
	defer rows.Close()

	var logs []*LogEntry
	var total int
	for rows.Next() {
		var e LogEntry
		if err := rows.Scan(&e.ID, &e.AdminID, &e.AdminName, &e.Action, &e.TargetTable, &e.Details, &e.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan admin log failed: %w", err)
		}
		logs = append(logs, &e)
	}
	return logs, total, nil
}
