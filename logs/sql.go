package logs

const createOutcomeTable = `
CREATE TABLE IF NOT EXISTS outcomes (
  id integer primary key autoincrement,
  script varchar not null,
  time datetime,
  black varchar,
  white varchar,
  layout varchar,
  actions int,
  to_move varchar,
  white_men int,
  white_kings int,
  black_men int,
  black_kings int,
  diagram varchar,
  error varchar
)`

const createPlayerView = `
CREATE VIEW IF NOT EXISTS player_outcomes (
  id, script, player, opponent, color, pieces, opponent_pieces
) AS
SELECT id, script, black, white, 'black',
       black_men + black_kings, white_men + white_kings
 FROM outcomes
UNION ALL
SELECT id, script, white, black, 'white',
       white_men + white_kings, black_men + black_kings
 FROM outcomes
`

const insertStmt = `
INSERT INTO outcomes (
  script, time, black, white, layout, actions, to_move,
  white_men, white_kings, black_men, black_kings, diagram, error
) VALUES (
  :script, :time, :black, :white, :layout, :actions, :to_move,
  :white_men, :white_kings, :black_men, :black_kings, :diagram, :error
)
`

const selectOutcomes = `
SELECT id, script, time, black, white, layout, actions, to_move,
       white_men, white_kings, black_men, black_kings, diagram, error
 FROM outcomes
 ORDER BY id
`

const selectPlayerOutcomes = `
SELECT script, player, opponent, color, pieces, opponent_pieces
 FROM player_outcomes
 WHERE player = ?
 ORDER BY id, color
`
