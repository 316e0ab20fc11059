package queries_test

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// schema mirrors the PostgreSQL tables with SQLite types.
const schema = `
CREATE TABLE users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	is_online BOOLEAN NOT NULL DEFAULT 0,
	last_online TIMESTAMP NULL,
	otp_code TEXT NULL,
	otp_expires_at TIMESTAMP NULL,
	otp_attempts INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE orders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	customer_id INTEGER NOT NULL,
	shipper_id INTEGER NULL,
	pickup_address TEXT NOT NULL,
	pickup_lat REAL NOT NULL,
	pickup_lng REAL NOT NULL,
	delivery_address TEXT NOT NULL,
	delivery_lat REAL NOT NULL,
	delivery_lng REAL NOT NULL,
	distance_km REAL NOT NULL,
	category TEXT NOT NULL,
	weight_kg REAL NOT NULL,
	base_amount INTEGER NOT NULL,
	distance_fee INTEGER NOT NULL,
	total_amount INTEGER NOT NULL,
	shipper_amount INTEGER NOT NULL,
	app_commission INTEGER NOT NULL,
	status TEXT NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	proof_image TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE order_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	order_id INTEGER NOT NULL,
	status TEXT NOT NULL,
	shipper_id INTEGER NULL,
	note TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE shipper_locations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	shipper_id INTEGER NOT NULL,
	latitude REAL NOT NULL,
	longitude REAL NOT NULL,
	accuracy_m REAL NULL,
	order_id INTEGER NULL,
	recorded_at TIMESTAMP NOT NULL
);`

var testNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(schema)
	require.NoError(t, err)
	return db
}

func seedUser(t *testing.T, db *sqlx.DB, name, role string, online bool) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO users (name, email, password_hash, role, phone, is_online, created_at, updated_at)
		VALUES (?, ?, 'h', ?, '0901234567', ?, ?, ?)`,
		name, name+"@example.com", role, online, testNow, testNow)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

type seededOrder struct {
	customerID int64
	shipperID  *int64
	status     string
	total      int64
	shipper    int64
	createdAt  time.Time
}

func seedOrder(t *testing.T, db *sqlx.DB, o seededOrder) int64 {
	t.Helper()
	if o.createdAt.IsZero() {
		o.createdAt = testNow
	}
	if o.total == 0 {
		o.total = 25000
		o.shipper = 20000
	}
	res, err := db.Exec(`INSERT INTO orders (
			customer_id, shipper_id, pickup_address, pickup_lat, pickup_lng,
			delivery_address, delivery_lat, delivery_lng, distance_km, category, weight_kg,
			base_amount, distance_fee, total_amount, shipper_amount, app_commission,
			status, created_at, updated_at)
		VALUES (?, ?, 'A', 10.7, 106.7, 'B', 10.8, 106.8, 1, 'food', 2,
			15000, ?, ?, ?, ?, ?, ?, ?)`,
		o.customerID, o.shipperID, o.total-15000, o.total, o.shipper, o.total-o.shipper,
		o.status, o.createdAt, o.createdAt)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func seedHistory(t *testing.T, db *sqlx.DB, orderID int64, status string, shipperID *int64, at time.Time) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO order_history (order_id, status, shipper_id, note, created_at)
		VALUES (?, ?, ?, '', ?)`, orderID, status, shipperID, at)
	require.NoError(t, err)
}

func seedLocation(t *testing.T, db *sqlx.DB, shipperID int64, lat, lng float64, at time.Time) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO shipper_locations (shipper_id, latitude, longitude, recorded_at)
		VALUES (?, ?, ?, ?)`, shipperID, lat, lng, at)
	require.NoError(t, err)
}

func ptr[T any](v T) *T {
	return &v
}
