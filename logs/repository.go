package logs

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

type Repository struct {
	db *sqlx.DB
}

// Outcome summarizes one replayed script: who played, how far the replay
// got and what was left on the board.
type Outcome struct {
	ID        int64     `db:"id"`
	Script    string    `db:"script"`
	Timestamp time.Time `db:"time"`
	Black     string    `db:"black"`
	White     string    `db:"white"`
	Layout    string    `db:"layout"`
	Actions   int       `db:"actions"`
	ToMove    string    `db:"to_move"`

	WhiteMen   int `db:"white_men"`
	WhiteKings int `db:"white_kings"`
	BlackMen   int `db:"black_men"`
	BlackKings int `db:"black_kings"`

	Diagram string `db:"diagram"`
	Error   string `db:"error"`
}

type PlayerOutcome struct {
	Script         string `db:"script"`
	Player         string `db:"player"`
	Opponent       string `db:"opponent"`
	Color          string `db:"color"`
	Pieces         int    `db:"pieces"`
	OpponentPieces int    `db:"opponent_pieces"`
}

func Open(db string) (*Repository, error) {
	sql, err := sqlx.Open("sqlite3", db)
	if err != nil {
		return nil, err
	}
	// every connection to ":memory:" is a separate database
	sql.SetMaxOpenConns(1)
	_, err = sql.Exec(createOutcomeTable)
	if err != nil {
		sql.Close()
		return nil, fmt.Errorf("create outcomes table: %w", err)
	}
	_, err = sql.Exec(createPlayerView)
	if err != nil {
		sql.Close()
		return nil, fmt.Errorf("create player_outcomes view: %w", err)
	}
	return &Repository{db: sql}, nil
}

func (r *Repository) InsertOutcome(o *Outcome) error {
	return insertOutcome(r.db, o)
}

func insertOutcome(e sqlx.Ext, o *Outcome) error {
	res, err := sqlx.NamedExec(e, insertStmt, o)
	if err != nil {
		return err
	}
	o.ID, err = res.LastInsertId()
	return err
}

func (r *Repository) InsertOutcomes(outs []*Outcome) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	for _, o := range outs {
		if e := insertOutcome(txn, o); e != nil {
			return fmt.Errorf("insert %q: %w", o.Script, e)
		}
	}
	return txn.Commit()
}

func (r *Repository) Outcomes() ([]Outcome, error) {
	var out []Outcome
	err := r.db.Select(&out, selectOutcomes)
	return out, err
}

func (r *Repository) PlayerOutcomes(player string) ([]PlayerOutcome, error) {
	var out []PlayerOutcome
	err := r.db.Select(&out, selectPlayerOutcomes, player)
	return out, err
}

func (r *Repository) Close() {
	r.db.Close()
}
