package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Karun12234/mlb-inning-report/internal/catalog"
	"github.com/Karun12234/mlb-inning-report/internal/metrics"
	"github.com/Karun12234/mlb-inning-report/internal/models"
	"github.com/Karun12234/mlb-inning-report/internal/repository"
)

// Generator produces report tables from the stored game slate and fact
// history. It holds no per-request state; one instance serves concurrent
// requests.
type Generator struct {
	games   repository.GameRepository
	pitcher repository.PitcherFactRepository
	batting repository.BattingFactRepository
	logger  *logrus.Logger
}

func NewGenerator(games repository.GameRepository, pitcher repository.PitcherFactRepository, batting repository.BattingFactRepository, logger *logrus.Logger) *Generator {
	return &Generator{
		games:   games,
		pitcher: pitcher,
		batting: batting,
		logger:  logger,
	}
}

// Table builds the full report for one (date, inning). The slate is ordered
// by game ID and within a game away pitcher first, so repeated runs over the
// same stored facts produce identical tables. A pitcher whose history lookup
// fails costs that one row, never the batch.
func (g *Generator) Table(ctx context.Context, date time.Time, inning int) (Table, error) {
	if inning < 1 || inning > 9 {
		return nil, fmt.Errorf("inning %d: %w", inning, models.ErrInvalidInning)
	}
	start := time.Now()

	games, err := g.games.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("loading slate for %s: %w", date.Format("2006-01-02"), err)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].GameID < games[j].GameID })

	table := make(Table, 0, 2*len(games))
	for _, game := range games {
		if game.AwayPitcher != nil {
			row, err := g.buildRow(ctx, game, *game.AwayPitcher, game.AwayTeam, game.HomeTeam, false, inning)
			if err != nil {
				g.skipRow(game, *game.AwayPitcher, err)
			} else {
				table = append(table, row)
			}
		}
		if game.HomePitcher != nil {
			row, err := g.buildRow(ctx, game, *game.HomePitcher, game.HomeTeam, game.AwayTeam, true, inning)
			if err != nil {
				g.skipRow(game, *game.HomePitcher, err)
			} else {
				table = append(table, row)
			}
		}
	}

	metrics.ReportsGeneratedTotal.Inc()
	metrics.ReportRowsTotal.Add(float64(len(table)))
	metrics.ReportGenerationDuration.Observe(time.Since(start).Seconds())
	g.logger.WithFields(logrus.Fields{
		"date":   date.Format("2006-01-02"),
		"inning": inning,
		"games":  len(games),
		"rows":   len(table),
	}).Info("Report table generated")
	return table, nil
}

func (g *Generator) skipRow(game *models.GamePairing, pitcher string, err error) {
	metrics.ReportRowErrorsTotal.Inc()
	g.logger.WithError(err).WithFields(logrus.Fields{
		"game_id": game.GameID,
		"pitcher": pitcher,
	}).Warn("Skipping report row")
}

func (g *Generator) buildRow(ctx context.Context, game *models.GamePairing, pitcherName, pitcherTeam, oppTeam string, isHome bool, inning int) (Row, error) {
	history, err := g.pitcher.GetHistory(ctx, pitcherName, inning, game.Date)
	if err != nil {
		return Row{}, fmt.Errorf("pitcher history: %w", err)
	}
	oppHistory, err := g.batting.GetHistory(ctx, oppTeam, inning, game.Date)
	if err != nil {
		return Row{}, fmt.Errorf("batting history: %w", err)
	}

	today, err := g.pitcher.GetForGame(ctx, game.GameID, pitcherName, inning)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return Row{}, fmt.Errorf("pitcher game row: %w", err)
	}
	oppToday, err := g.batting.GetForGame(ctx, game.GameID, oppTeam, inning)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return Row{}, fmt.Errorf("batting game row: %w", err)
	}

	pAgg := AggregatePitcher(history, inning, game.Date, isHome, today)
	// The batting team's venue flag is the inverse of the opposing pitcher's.
	oAgg := AggregateBatting(oppHistory, inning, game.Date, !isHome, oppToday)

	return BuildRow(game, pitcherName, pitcherTeam, oppTeam, inning, pAgg, oAgg), nil
}

// BuildRow grades one pitcher matchup from its finished aggregates. Split out
// from the storage plumbing so the classification pipeline is testable on
// in-memory data.
func BuildRow(game *models.GamePairing, pitcherName, pitcherTeam, oppTeam string, inning int, pAgg, oAgg map[models.Stat]Aggregate) Row {
	row := Row{
		GameID:        game.GameID,
		Game:          game.Label(),
		Pitcher:       pitcherName,
		PitcherTeam:   pitcherTeam,
		Opponent:      oppTeam,
		Inning:        inning,
		TotalStarts:   pAgg[models.StatRuns].Games,
		OpponentGames: oAgg[models.StatRuns].Games,
		PitcherStats:  pAgg,
		OpponentStats: oAgg,
		PitcherConf:   make(map[models.Stat]models.Confidence),
		OpponentConf:  make(map[models.Stat]models.Confidence),
		Overall:       make(map[models.Stat]models.Composite),
		PitcherBet:    make(map[models.Stat]models.Bet),
		OpponentBet:   make(map[models.Stat]models.Bet),
	}

	// Strikeouts. Ladders, escalation and bets all read occurrence
	// percentages: games with at least one strikeout over games.
	pK, oK := pAgg[models.StatStrikeouts], oAgg[models.StatStrikeouts]
	row.PitcherConf[models.StatStrikeouts] = PitcherKConfidence(pK.PositivePct)
	row.OpponentConf[models.StatStrikeouts] = OpponentKConfidence(oK.PositivePct)
	row.Overall[models.StatStrikeouts] = StrikeoutComposite(
		pK.VenuePositivePct, pK.PositivePct,
		oK.VenuePositivePct, oK.PositivePct,
		row.PitcherConf[models.StatStrikeouts], row.OpponentConf[models.StatStrikeouts],
	)
	row.PitcherBet[models.StatStrikeouts] = KBet(pK.VenuePositivePct, pK.PositivePct, row.PitcherConf[models.StatStrikeouts])
	row.OpponentBet[models.StatStrikeouts] = KBet(oK.VenuePositivePct, oK.PositivePct, row.OpponentConf[models.StatStrikeouts])

	// Runs: NRFI/YRFI plus the run-prevention signal.
	pR, oR := pAgg[models.StatRuns], oAgg[models.StatRuns]
	row.NRFIConf = ZeroPctConfidence(pR.ZeroPct)
	row.RunsAllowedConf = RunsAllowedConfidence(pR.PositivePct)
	row.OppRunsPerGameConf = OppRunsPerGameConfidence(oR.Average)
	row.RunPrevention = RunPreventionConfidence(pR.PositivePct, pR.ZeroPct, oR.Average)
	row.Overall[models.StatRuns] = RunsComposite(pR.VenueZeroPct, oR.VenueZeroPct, row.RunPrevention)
	runsBet := RunsBet(row.Overall[models.StatRuns])
	row.PitcherBet[models.StatRuns] = runsBet
	row.OpponentBet[models.StatRuns] = runsBet

	// Hits: NRHI ladders on both splits plus the percentage composite.
	pH, oH := pAgg[models.StatHits], oAgg[models.StatHits]
	row.PitcherNRHIConf = ZeroPctConfidence(pH.ZeroPct)
	row.PitcherVenueNRHIConf = ZeroPctConfidence(pH.VenueZeroPct)
	row.OpponentNRHIConf = ZeroPctConfidence(oH.ZeroPct)
	row.OpponentVenueNRHIConf = ZeroPctConfidence(oH.VenueZeroPct)
	if rule, ok := catalog.PitcherRule(models.StatHits); ok {
		row.PitcherConf[models.StatHits] = Classify(pH, rule)
	}
	if rule, ok := catalog.OpponentRule(models.StatHits); ok {
		row.OpponentConf[models.StatHits] = Classify(oH, rule)
	}
	row.Overall[models.StatHits] = HitsComposite(pH.ZeroPct, oH.ZeroPct)
	hitsBet := OverUnderBet(models.StatHits, row.Overall[models.StatHits])
	row.PitcherBet[models.StatHits] = hitsBet
	row.OpponentBet[models.StatHits] = hitsBet

	// The remaining over/under stats share one rule-driven path.
	for _, s := range catalog.OverUnderStats {
		if rule, ok := catalog.PitcherRule(s); ok {
			row.PitcherConf[s] = Classify(pAgg[s], rule)
		}
		if rule, ok := catalog.OpponentRule(s); ok {
			row.OpponentConf[s] = Classify(oAgg[s], rule)
		}
		row.Overall[s] = OverUnderComposite(row.PitcherConf[s], row.OpponentConf[s])
		bet := OverUnderBet(s, row.Overall[s])
		row.PitcherBet[s] = bet
		row.OpponentBet[s] = bet
	}
	return row
}
