package db

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		full_name VARCHAR(255) NOT NULL DEFAULT '',
		course VARCHAR(64) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	) ENGINE=InnoDB;`,
	`CREATE TABLE IF NOT EXISTS notes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		color VARCHAR(32) NOT NULL DEFAULT '#fff7b1',
		is_starred BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	) ENGINE=InnoDB;`,
	`CREATE TABLE IF NOT EXISTS quizzes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		subject VARCHAR(64) NOT NULL DEFAULT '',
		grade INT NOT NULL DEFAULT 0,
		description TEXT
	) ENGINE=InnoDB;`,
	`CREATE TABLE IF NOT EXISTS questions (
		id INT AUTO_INCREMENT PRIMARY KEY,
		quiz_id INT NOT NULL,
		text TEXT NOT NULL,
		options TEXT NOT NULL,
		correct VARCHAR(255) NOT NULL,
		FOREIGN KEY (quiz_id) REFERENCES quizzes(id) ON DELETE CASCADE
	) ENGINE=InnoDB;`,
	`CREATE TABLE IF NOT EXISTS progress (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		quiz_id INT NOT NULL,
		score DOUBLE NOT NULL,
		total_questions INT NOT NULL,
		correct_answers INT NOT NULL,
		completed_at DATETIME NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	) ENGINE=InnoDB;`,
}

// initMySQL expects a DSN in the go-sql-driver format, e.g.
// user:pass@tcp(host:3306)/dbname. parseTime is forced on so DATETIME
// columns scan into time.Time.
func initMySQL(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("mysql driver requires a DSN")
	}
	db, err := sql.Open("mysql", dsn+"?parseTime=true")
	if err != nil {
		return nil, fmt.Errorf("opening mysql db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("mysql ping: %w", err)
	}
	if err := migrate(db, mysqlSchema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
