package service

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/Karun12234/mlb-inning-report/internal/models"
)

// DataValidator validates normalized game and fact data before persistence
type DataValidator struct {
	validate *validator.Validate
	logger   *log.Logger
}

// NewDataValidator creates a new data validator
func NewDataValidator(logger *log.Logger) *DataValidator {
	return &DataValidator{
		validate: validator.New(),
		logger:   logger,
	}
}

// ValidateGame validates a game pairing for required fields and constraints
func (v *DataValidator) ValidateGame(game *models.GamePairing) []string {
	var errors []string

	if err := v.validate.Struct(game); err != nil {
		errors = append(errors, err.Error())
	}

	if game.Date.IsZero() {
		errors = append(errors, "game date is required")
	}

	if game.HomeTeam == game.AwayTeam {
		errors = append(errors, fmt.Sprintf("home and away team are both %q", game.HomeTeam))
	}

	return errors
}

// ValidatePitcherFact validates a pitcher fact row for internal consistency
func (v *DataValidator) ValidatePitcherFact(fact *models.PitcherFactRow) []string {
	var errors []string

	if err := v.validate.Struct(fact); err != nil {
		errors = append(errors, err.Error())
	}

	errors = append(errors, validateCounts(inningCounts{
		Hits: fact.HitsAllowed, Singles: fact.SinglesAllowed,
		Doubles: fact.DoublesAllowed, Triples: fact.TriplesAllowed,
		Homers: fact.HomersAllowed, TotalBases: fact.TotalBasesAllowed,
		Plate: fact.BattersFaced, Walks: fact.WalksAllowed,
		Strikeouts: fact.Strikeouts, Runs: fact.RunsAllowed,
	})...)

	return errors
}

// ValidateBattingFact validates a batting fact row for internal consistency
func (v *DataValidator) ValidateBattingFact(fact *models.BattingFactRow) []string {
	var errors []string

	if err := v.validate.Struct(fact); err != nil {
		errors = append(errors, err.Error())
	}

	errors = append(errors, validateCounts(inningCounts{
		Hits: fact.Hits, Singles: fact.Singles, Doubles: fact.Doubles,
		Triples: fact.Triples, Homers: fact.Homers, TotalBases: fact.TotalBases,
		Plate: fact.BattersToPlate, Walks: fact.Walks,
		Strikeouts: fact.Strikeouts, Runs: fact.RunsScored,
	})...)

	return errors
}

// inningCounts carries the raw counts shared by both fact row shapes
type inningCounts struct {
	Hits, Singles, Doubles, Triples, Homers int
	TotalBases, Plate, Walks                int
	Strikeouts, Runs                        int
}

// validateCounts checks the arithmetic identities every inning line obeys
func validateCounts(c inningCounts) []string {
	var errors []string

	for _, v := range []int{c.Hits, c.Singles, c.Doubles, c.Triples, c.Homers,
		c.TotalBases, c.Plate, c.Walks, c.Strikeouts, c.Runs} {
		if v < 0 {
			errors = append(errors, fmt.Sprintf("negative count %d", v))
			break
		}
	}

	if c.Singles+c.Doubles+c.Triples+c.Homers != c.Hits {
		errors = append(errors, fmt.Sprintf("hit breakdown %d+%d+%d+%d does not sum to hits %d",
			c.Singles, c.Doubles, c.Triples, c.Homers, c.Hits))
	}

	if want := c.Singles + 2*c.Doubles + 3*c.Triples + 4*c.Homers; c.TotalBases != want {
		errors = append(errors, fmt.Sprintf("total bases %d does not match hit breakdown (want %d)", c.TotalBases, want))
	}

	if c.Plate < c.Hits+c.Walks {
		errors = append(errors, fmt.Sprintf("plate appearances %d below hits %d plus walks %d", c.Plate, c.Hits, c.Walks))
	}

	return errors
}
