package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("team_id", "points_earned").
		From("lineup_history").
		Where(Eq("matchday_number", 3), In("team_id", []any{"u1", "u2"})).
		OrderBy("team_id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT team_id, points_earned FROM lineup_history WHERE matchday_number = $1 AND team_id IN ($2, $3) ORDER BY team_id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != 3 || args[2] != "u2" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInMatchesNothing(t *testing.T) {
	query, args, err := Select("id").From("players").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM players WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected query %q args %+v", query, args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("matchdays").
		Columns("id", "number").
		Values("md-1", 1).
		Suffix("ON CONFLICT (number) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO matchdays (id, number) VALUES ($1, $2) ON CONFLICT (number) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "md-1" || args[1] != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("fantasy_teams").
		SetExpr("total_points", "total_points + ?", "10.5").
		Set("is_lineup_confirmed", false).
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "team-x")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE fantasy_teams SET total_points = total_points + $1, is_lineup_confirmed = $2, updated_at = NOW() WHERE id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "10.5" || args[1] != false || args[2] != "team-x" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_VersionGuard(t *testing.T) {
	query, args, err := Update("fantasy_teams").
		Set("roster", "[]").
		SetExpr("roster_version", "roster_version + 1").
		Where(Eq("id", "u1"), Eq("roster_version", 4)).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}
	want := "UPDATE fantasy_teams SET roster = $1, roster_version = roster_version + 1 WHERE id = $2 AND roster_version = $3"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 3 || args[2] != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_ValueCountMismatch(t *testing.T) {
	if _, _, err := InsertInto("players").Columns("id", "name").Values("1").ToSQL(); err == nil {
		t.Fatalf("expected error when values do not match columns")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("lineup_history").
		Where(Eq("matchday_number", 4)).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM lineup_history WHERE matchday_number = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("lineup_history").ToSQL(); err == nil {
		t.Fatalf("expected error for unconditioned delete")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID     string `db:"id"`
		Number int    `db:"number"`
		Note   string `db:"-"`
		hidden string
	}

	query, args, err := InsertModel("matchdays", row{ID: "md-1", Number: 2, Note: "x", hidden: "y"}, "")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	if query != "INSERT INTO matchdays (id, number) VALUES ($1, $2)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModel("matchdays", (*row)(nil), ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}
