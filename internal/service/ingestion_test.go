package service

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Karun12234/mlb-inning-report/internal/datasource"
	"github.com/Karun12234/mlb-inning-report/internal/models"
)

type stubSource struct {
	schedule    []datasource.GameData
	scheduleErr error
	innings     map[int64]*datasource.GameInnings
}

func (s *stubSource) FetchSchedule(ctx context.Context, date time.Time) ([]datasource.GameData, error) {
	return s.schedule, s.scheduleErr
}

func (s *stubSource) FetchGameInnings(ctx context.Context, gameID int64) (*datasource.GameInnings, error) {
	g, ok := s.innings[gameID]
	if !ok {
		return nil, errors.New("game not found")
	}
	return g, nil
}

func (s *stubSource) Name() string    { return "stub" }
func (s *stubSource) IsEnabled() bool { return true }

type memGameRepo struct {
	games []*models.GamePairing
	err   error
}

func (m *memGameRepo) Upsert(ctx context.Context, game *models.GamePairing) error {
	m.games = append(m.games, game)
	return m.err
}

func (m *memGameRepo) UpsertBatch(ctx context.Context, games []*models.GamePairing) error {
	if m.err != nil {
		return m.err
	}
	m.games = append(m.games, games...)
	return nil
}

func (m *memGameRepo) GetByDate(ctx context.Context, date time.Time) ([]*models.GamePairing, error) {
	return m.games, nil
}

func (m *memGameRepo) GetByID(ctx context.Context, gameID int64) (*models.GamePairing, error) {
	return nil, models.ErrNotFound
}

type memPitcherRepo struct {
	rows    []*models.PitcherFactRow
	batches int
}

func (m *memPitcherRepo) InsertBatch(ctx context.Context, rows []*models.PitcherFactRow) error {
	m.rows = append(m.rows, rows...)
	m.batches++
	return nil
}

func (m *memPitcherRepo) GetHistory(ctx context.Context, pitcherName string, inning int, before time.Time) ([]models.PitcherFactRow, error) {
	return nil, nil
}

func (m *memPitcherRepo) GetForGame(ctx context.Context, gameID int64, pitcherName string, inning int) (*models.PitcherFactRow, error) {
	return nil, models.ErrNotFound
}

type memBattingRepo struct {
	rows []*models.BattingFactRow
}

func (m *memBattingRepo) InsertBatch(ctx context.Context, rows []*models.BattingFactRow) error {
	m.rows = append(m.rows, rows...)
	return nil
}

func (m *memBattingRepo) GetHistory(ctx context.Context, teamID string, inning int, before time.Time) ([]models.BattingFactRow, error) {
	return nil, nil
}

func (m *memBattingRepo) GetForGame(ctx context.Context, gameID int64, teamID string, inning int) (*models.BattingFactRow, error) {
	return nil, models.ErrNotFound
}

func newTestIngestion(source *stubSource, games *memGameRepo, pitchers *memPitcherRepo, batting *memBattingRepo, batchSize int) *IngestionService {
	quiet := log.New(io.Discard, "", 0)
	return NewIngestionService(
		source, games, pitchers, batting,
		NewDataValidator(quiet),
		NewDataNormalizer(NewNameFormatter(time.Minute), nil),
		quiet, batchSize,
	)
}

func scheduledGame(id int64, status string) datasource.GameData {
	return datasource.GameData{
		GameID:   id,
		Date:     time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		Status:   status,
		HomeTeam: "New York Yankees",
		AwayTeam: "Boston Red Sox",
		HomePitcher: &datasource.ProbablePitcher{
			ID:   543037,
			Name: "Gerrit Cole",
		},
	}
}

func pitchingLine(inning, strikeouts int) datasource.PitchingLine {
	return datasource.PitchingLine{
		Inning:         inning,
		PitcherID:      543037,
		PitcherName:    "Gerrit Cole",
		TeamID:         "NYY",
		OpponentTeamID: "BOS",
		IsHome:         true,
		Strikeouts:     strikeouts,
		BattersFaced:   3 + strikeouts,
	}
}

func TestIngestSchedule(t *testing.T) {
	source := &stubSource{schedule: []datasource.GameData{
		scheduledGame(745123, "Scheduled"),
		scheduledGame(745124, "Scheduled"),
	}}
	games := &memGameRepo{}
	svc := newTestIngestion(source, games, &memPitcherRepo{}, &memBattingRepo{}, 100)

	stored, err := svc.IngestSchedule(context.Background(), time.Now())
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Len(t, games.games, 2)
	assert.Equal(t, "NYY", stored[0].HomeTeam)
	require.NotNil(t, stored[0].HomePitcher)
	assert.Equal(t, "Cole, Gerrit", *stored[0].HomePitcher)
	assert.Equal(t, 2, svc.GetMetrics().TotalGames)
}

func TestIngestScheduleDropsUnknownTeams(t *testing.T) {
	bad := scheduledGame(745125, "Scheduled")
	bad.HomeTeam = "Springfield Isotopes"
	source := &stubSource{schedule: []datasource.GameData{
		scheduledGame(745123, "Scheduled"),
		bad,
	}}
	games := &memGameRepo{}
	svc := newTestIngestion(source, games, &memPitcherRepo{}, &memBattingRepo{}, 100)

	stored, err := svc.IngestSchedule(context.Background(), time.Now())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, int64(745123), stored[0].GameID)
	assert.Equal(t, 1, svc.GetMetrics().ValidationErrors)
}

func TestIngestScheduleFetchFailure(t *testing.T) {
	source := &stubSource{scheduleErr: errors.New("rate limit exceeded")}
	svc := newTestIngestion(source, &memGameRepo{}, &memPitcherRepo{}, &memBattingRepo{}, 100)

	_, err := svc.IngestSchedule(context.Background(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch schedule")
	assert.Equal(t, 1, svc.GetMetrics().Errors)
}

func TestIngestGameFacts(t *testing.T) {
	source := &stubSource{innings: map[int64]*datasource.GameInnings{
		745123: {
			GameID: 745123,
			Date:   time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
			Pitching: []datasource.PitchingLine{
				pitchingLine(1, 2),
				pitchingLine(2, 1),
			},
			Batting: []datasource.BattingLine{
				{Inning: 1, TeamID: "BOS", OpponentTeamID: "NYY", BattersToPlate: 3, Strikeouts: 2},
			},
		},
	}}
	pitchers := &memPitcherRepo{}
	batting := &memBattingRepo{}
	svc := newTestIngestion(source, &memGameRepo{}, pitchers, batting, 100)

	require.NoError(t, svc.IngestGameFacts(context.Background(), 745123))
	require.Len(t, pitchers.rows, 2)
	assert.Equal(t, "Cole, Gerrit", pitchers.rows[0].PitcherName)
	assert.Equal(t, 1, pitchers.rows[0].Inning)
	require.Len(t, batting.rows, 1)
	assert.Equal(t, "BOS", batting.rows[0].TeamID)
	assert.Equal(t, 2, svc.GetMetrics().PitcherRows)
	assert.Equal(t, 1, svc.GetMetrics().BattingRows)
}

func TestIngestGameFactsRejectsInvalidLines(t *testing.T) {
	badLine := pitchingLine(10, 2) // out-of-range inning
	source := &stubSource{innings: map[int64]*datasource.GameInnings{
		745123: {
			GameID:   745123,
			Date:     time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
			Pitching: []datasource.PitchingLine{pitchingLine(1, 2), badLine},
		},
	}}
	pitchers := &memPitcherRepo{}
	svc := newTestIngestion(source, &memGameRepo{}, pitchers, &memBattingRepo{}, 100)

	require.NoError(t, svc.IngestGameFacts(context.Background(), 745123))
	assert.Len(t, pitchers.rows, 1)
	assert.Equal(t, 1, svc.GetMetrics().ValidationErrors)
}

func TestIngestGameFactsBatchesInserts(t *testing.T) {
	innings := &datasource.GameInnings{
		GameID: 745123,
		Date:   time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
	}
	for i := 1; i <= 5; i++ {
		innings.Pitching = append(innings.Pitching, pitchingLine(i, 1))
	}
	source := &stubSource{innings: map[int64]*datasource.GameInnings{745123: innings}}
	pitchers := &memPitcherRepo{}
	svc := newTestIngestion(source, &memGameRepo{}, pitchers, &memBattingRepo{}, 2)

	require.NoError(t, svc.IngestGameFacts(context.Background(), 745123))
	assert.Len(t, pitchers.rows, 5)
	assert.Equal(t, 3, pitchers.batches)
}

func TestIngestDateRange(t *testing.T) {
	source := &stubSource{
		schedule: []datasource.GameData{
			scheduledGame(745123, "Final"),
			scheduledGame(745124, "Scheduled"),
		},
		innings: map[int64]*datasource.GameInnings{
			745123: {
				GameID:   745123,
				Date:     time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
				Pitching: []datasource.PitchingLine{pitchingLine(1, 2)},
			},
		},
	}
	games := &memGameRepo{}
	pitchers := &memPitcherRepo{}
	svc := newTestIngestion(source, games, pitchers, &memBattingRepo{}, 100)

	day := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	m, err := svc.IngestDateRange(context.Background(), day, day)
	require.NoError(t, err)
	// Only the finished game gets fact ingestion.
	assert.Equal(t, 1, m.CompletedGames)
	assert.Equal(t, 2, m.TotalGames)
	assert.Len(t, pitchers.rows, 1)
	assert.NotZero(t, m.Duration)
}

func TestGameFinished(t *testing.T) {
	assert.True(t, gameFinished("Final"))
	assert.True(t, gameFinished("Game Over"))
	assert.True(t, gameFinished("Completed Early"))
	assert.False(t, gameFinished("Scheduled"))
	assert.False(t, gameFinished("In Progress"))
	assert.False(t, gameFinished(""))
}
