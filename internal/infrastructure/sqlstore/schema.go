package sqlstore

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id    INTEGER PRIMARY KEY AUTOINCREMENT,
		name  TEXT NOT NULL,
		phone TEXT NOT NULL,
		UNIQUE (name, phone)
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id    INTEGER PRIMARY KEY AUTOINCREMENT,
		name  TEXT NOT NULL UNIQUE,
		price REAL NOT NULL CHECK (price >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id INTEGER NOT NULL REFERENCES customers (id),
		item_id     INTEGER NOT NULL REFERENCES items (id),
		notes       TEXT,
		"timestamp" INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders (customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_item_id ON orders (item_id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id    BIGSERIAL PRIMARY KEY,
		name  TEXT NOT NULL,
		phone TEXT NOT NULL,
		UNIQUE (name, phone)
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id    BIGSERIAL PRIMARY KEY,
		name  TEXT NOT NULL UNIQUE,
		price NUMERIC(12, 2) NOT NULL CHECK (price >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id          BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL REFERENCES customers (id),
		item_id     BIGINT NOT NULL REFERENCES items (id),
		notes       TEXT,
		"timestamp" BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders (customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_item_id ON orders (item_id)`,
}

// orders primero por las llaves foráneas.
var dropSchema = []string{
	`DROP TABLE IF EXISTS orders`,
	`DROP TABLE IF EXISTS items`,
	`DROP TABLE IF EXISTS customers`,
}
