package database

var postgresMigrations = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		genres TEXT NOT NULL DEFAULT '[]',
		city VARCHAR(120) NOT NULL,
		state VARCHAR(120) NOT NULL,
		address VARCHAR(120) NOT NULL DEFAULT '',
		phone VARCHAR(120) NOT NULL DEFAULT '',
		seeking_talent BOOLEAN NOT NULL DEFAULT FALSE,
		seeking_description VARCHAR(500) NOT NULL DEFAULT '',
		image_link VARCHAR(500) NOT NULL DEFAULT '',
		website VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link VARCHAR(120) NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS artists (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		city VARCHAR(120) NOT NULL,
		state VARCHAR(120) NOT NULL,
		phone VARCHAR(120) NOT NULL DEFAULT '',
		genres TEXT NOT NULL DEFAULT '[]',
		seeking_venue BOOLEAN NOT NULL DEFAULT FALSE,
		seeking_description VARCHAR(500) NOT NULL DEFAULT '',
		image_link VARCHAR(500) NOT NULL DEFAULT '',
		website VARCHAR(500) NOT NULL DEFAULT '',
		facebook_link VARCHAR(120) NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS shows (
		id SERIAL PRIMARY KEY,
		venue_id INTEGER NOT NULL REFERENCES venues(id),
		artist_id INTEGER NOT NULL REFERENCES artists(id),
		start_time TIMESTAMPTZ NOT NULL
	)`,

	// Indexes
	`CREATE INDEX IF NOT EXISTS idx_shows_venue_id ON shows(venue_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_artist_id ON shows(artist_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_start_time ON shows(start_time)`,
}

var sqliteMigrations = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		genres TEXT NOT NULL DEFAULT '[]',
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		seeking_talent BOOLEAN NOT NULL DEFAULT 0,
		seeking_description TEXT NOT NULL DEFAULT '',
		image_link TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		facebook_link TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS artists (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		genres TEXT NOT NULL DEFAULT '[]',
		seeking_venue BOOLEAN NOT NULL DEFAULT 0,
		seeking_description TEXT NOT NULL DEFAULT '',
		image_link TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		facebook_link TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS shows (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		venue_id INTEGER NOT NULL REFERENCES venues(id),
		artist_id INTEGER NOT NULL REFERENCES artists(id),
		start_time TIMESTAMP NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_shows_venue_id ON shows(venue_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_artist_id ON shows(artist_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_start_time ON shows(start_time)`,
}
