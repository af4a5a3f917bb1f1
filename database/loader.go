package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/rfmlens/rfmlens/engine"
	"github.com/rfmlens/rfmlens/schema"

	_ "github.com/go-sql-driver/mysql"
	"github.com/schollz/progressbar/v3"
)

// ============================================================================
// DATABASE SOURCE — loads raw order rows from MariaDB/MySQL
// ============================================================================
// Read-only: orders are loaded once per analysis run; derived RFM rows are
// never written back.
// ============================================================================

var tableNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Open accepts a mariadb:// or mysql:// URL (or a raw driver DSN) and
// returns a pooled connection plus the normalized DSN actually used.
func Open(dsn string) (*sql.DB, string, error) {
	mysqlDSN, err := toMySQLDSN(dsn)
	if err != nil {
		return nil, "", err
	}
	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		return nil, "", err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, mysqlDSN, nil
}

func toMySQLDSN(dsn string) (string, error) {
	if strings.HasPrefix(dsn, "mariadb://") || strings.HasPrefix(dsn, "mysql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("parse dsn: %w", err)
		}
		user := ""
		pass := ""
		if u.User != nil {
			user = u.User.Username()
			pw, _ := u.User.Password()
			pass = pw
		}
		host := u.Host
		db := strings.TrimPrefix(u.Path, "/")
		if user == "" || host == "" || db == "" {
			return "", fmt.Errorf("incomplete dsn (user/host/db required)")
		}
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&interpolateParams=true",
			user, pass, host, db), nil
	}
	return dsn, nil
}

// LoadOrders reads the base order columns from the given table.
// A progress bar tracks row loading for large datasets.
func LoadOrders(ctx context.Context, db *sql.DB, table string) ([]engine.OrderRecord, error) {
	return load(ctx, db, table, false)
}

// LoadOrdersExtended additionally reads the category and quantity columns.
func LoadOrdersExtended(ctx context.Context, db *sql.DB, table string) ([]engine.OrderRecord, error) {
	return load(ctx, db, table, true)
}

func load(ctx context.Context, db *sql.DB, table string, extended bool) ([]engine.OrderRecord, error) {
	if !tableNameRe.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	var count int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return nil, fmt.Errorf("count rows: %w", err)
	}

	cols := []string{
		schema.ColCustomerID, schema.ColOrderID, schema.ColOrderDate,
		schema.ColProduct, schema.ColValue, schema.ColDiscount,
	}
	if extended {
		cols = append(cols, schema.ColCategory, schema.ColQuantity)
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	bar := progressbar.Default(count, "loading orders")
	records := make([]engine.OrderRecord, 0, count)

	for rows.Next() {
		var rec engine.OrderRecord
		var orderDate time.Time
		dest := []any{
			&rec.CustomerID, &rec.OrderID, &orderDate,
			&rec.Product, &rec.Value, &rec.Discount,
		}
		if extended {
			dest = append(dest, &rec.Category, &rec.Quantity)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		rec.OrderDate = orderDate
		records = append(records, rec)
		_ = bar.Add(1)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read order rows: %w", err)
	}

	return records, nil
}
