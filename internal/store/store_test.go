package store

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Options{InMemory: true})
	if err != nil {
		t.Fatalf("Open(in-memory) error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func playedGame(t *testing.T, moves string) *game.Game {
	t.Helper()
	g, err := game.Replay(testutil.StartFEN, testutil.Mvs(t, moves))
	if err != nil {
		t.Fatalf("Replay(%q) error: %v", moves, err)
	}
	return g
}

func TestCreateAndLoad(t *testing.T) {
	s := openTestStore(t)

	g := playedGame(t, "e2e4 e7e5")
	rec, err := s.Create(g)
	testutil.AssertNoError(t, err)
	if _, err := uuid.Parse(rec.ID); err != nil {
		t.Errorf("record ID %q is not a UUID", rec.ID)
	}
	testutil.AssertEqual(t, rec.Moves, []string{"e2e4", "e7e5"})
	testutil.AssertEqual(t, rec.Status, "in_progress")

	loaded, got, err := s.Load(rec.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, loaded.FEN(), g.FEN())
	testutil.AssertEqual(t, got.ID, rec.ID)
	testutil.AssertEqual(t, len(loaded.History()), 2)
}

func TestSave(t *testing.T) {
	s := openTestStore(t)

	g := game.New()
	rec, err := s.Create(g)
	testutil.AssertNoError(t, err)

	_, err = g.MoveText("d2d4")
	testutil.AssertNoError(t, err)
	updated, err := s.Save(rec.ID, g)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, updated.CreatedAt, rec.CreatedAt)
	testutil.AssertTrue(t, !updated.UpdatedAt.Before(rec.UpdatedAt))
	testutil.AssertEqual(t, updated.FEN, g.FEN())

	_, err = s.Save(uuid.NewString(), g)
	testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)
}

func TestGet_NotFound(t *testing.T) {
	s := openTestStore(t)

	for _, id := range []string{uuid.NewString(), "not-a-uuid", ""} {
		_, err := s.Get(id)
		testutil.AssertErrorIs(t, err, errors.ErrGameNotFound, "Get(%q)", id)
	}
}

func TestList(t *testing.T) {
	s := openTestStore(t)

	records, err := s.List()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(records), 0)

	first, err := s.Create(game.New())
	testutil.AssertNoError(t, err)
	second, err := s.Create(playedGame(t, "g1f3"))
	testutil.AssertNoError(t, err)

	// Touching the first game makes it the most recent.
	_, err = s.Save(first.ID, playedGame(t, "e2e4"))
	testutil.AssertNoError(t, err)

	records, err = s.List()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(records), 2)
	testutil.AssertEqual(t, records[0].ID, first.ID)
	testutil.AssertEqual(t, records[1].ID, second.ID)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	rec, err := s.Create(game.New())
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, s.Delete(rec.ID))

	_, err = s.Get(rec.ID)
	testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)
	testutil.AssertErrorIs(t, s.Delete(rec.ID), errors.ErrGameNotFound)
}

func TestResignedGameSurvivesReload(t *testing.T) {
	s := openTestStore(t)

	g := playedGame(t, "e2e4")
	testutil.AssertNoError(t, g.Resign(chess.Black))
	rec, err := s.Create(g)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Winner, "White")

	loaded, _, err := s.Load(rec.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, loaded.Status(), chess.Resigned)
	winner, ok := loaded.Winner()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, winner, chess.White)
}

func TestCheckmateRecord(t *testing.T) {
	s := openTestStore(t)

	rec, err := s.Create(playedGame(t, testutil.FoolsMateLine))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Status, "checkmate")
	testutil.AssertEqual(t, rec.Winner, "Black")
	testutil.AssertEqual(t, rec.FEN, testutil.FoolsMateFEN)
}

func TestRecordGame_BadMoves(t *testing.T) {
	rec := &Record{StartFEN: testutil.StartFEN, Moves: []string{"e2e4", "e2e4"}}
	_, err := rec.Game()
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)

	rec.Moves = []string{"bogus"}
	_, err = rec.Game()
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
}

func TestOpen_OnDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")

	s, err := Open(Options{Dir: dir})
	testutil.AssertNoError(t, err)
	rec, err := s.Create(playedGame(t, "c2c4"))
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, s.Close())

	reopened, err := Open(Options{Dir: dir})
	testutil.AssertNoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(rec.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.Moves, []string{"c2c4"})
}
