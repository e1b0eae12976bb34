package trace

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	// Records are written through SQLite connections.
	_ "github.com/mattn/go-sqlite3"
)

// recorderBatchSize is the number of records buffered before they are
// written to the database in one transaction.
const recorderBatchSize = 100000

// An SQLiteRecorder stores the outcome of every replayed access in an
// SQLite database, one row per access.
type SQLiteRecorder struct {
	db      *sql.DB
	pending []Record
}

// NewSQLiteRecorder creates a recorder backed by a new database file. An
// empty path picks a unique name in the working directory. The recorder
// flushes its buffer when the process exits.
func NewSQLiteRecorder(path string) (*SQLiteRecorder, error) {
	if path == "" {
		path = "cachesim_trace_" + xid.New().String() + ".sqlite3"
	} else if !strings.HasSuffix(path, ".sqlite3") {
		path += ".sqlite3"
	}

	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("file %s already exists", path)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(os.Stderr, "Database created for recording: %s\n", path)

	return NewSQLiteRecorderWithDB(db)
}

// NewSQLiteRecorderWithDB creates a recorder over an existing database
// connection.
func NewSQLiteRecorderWithDB(db *sql.DB) (*SQLiteRecorder, error) {
	r := &SQLiteRecorder{db: db}

	if err := r.createTable(); err != nil {
		return nil, err
	}

	atexit.Register(func() { r.Flush() })

	return r, nil
}

func (r *SQLiteRecorder) createTable() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS access_trace (
			seq     INTEGER PRIMARY KEY,
			kind    TEXT,
			address INTEGER,
			hit     INTEGER
		)`)

	return err
}

// Record buffers one access outcome. The buffer is written out once it
// reaches the batch size.
func (r *SQLiteRecorder) Record(record Record) {
	r.pending = append(r.pending, record)

	if len(r.pending) >= recorderBatchSize {
		r.Flush()
	}
}

// Flush writes all buffered records to the database.
func (r *SQLiteRecorder) Flush() {
	if len(r.pending) == 0 {
		return
	}

	tx, err := r.db.Begin()
	if err != nil {
		panic(err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO access_trace (seq, kind, address, hit)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		panic(err)
	}

	for _, record := range r.pending {
		_, err := stmt.Exec(
			record.Seq,
			record.Kind.String(),
			int64(record.Address),
			record.Hit,
		)
		if err != nil {
			panic(err)
		}
	}

	if err := stmt.Close(); err != nil {
		panic(err)
	}

	if err := tx.Commit(); err != nil {
		panic(err)
	}

	r.pending = r.pending[:0]
}

// Close flushes buffered records and closes the database.
func (r *SQLiteRecorder) Close() error {
	r.Flush()
	return r.db.Close()
}
