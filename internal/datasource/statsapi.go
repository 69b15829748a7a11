package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Karun12234/mlb-inning-report/internal/metrics"
)

const statsAPISourceName = "mlb_stats_api"

// StatsAPIClient implements DataSource for the MLB Stats API
type StatsAPIClient struct {
	httpClient *RateLimitedHTTPClient
	baseURL    string
	enabled    bool
	logger     *log.Logger
}

// NewStatsAPIClient creates a new MLB Stats API client
func NewStatsAPIClient(httpClient *RateLimitedHTTPClient, baseURL string, enabled bool, logger *log.Logger) *StatsAPIClient {
	if baseURL == "" {
		baseURL = "https://statsapi.mlb.com/api/v1"
	}
	return &StatsAPIClient{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		enabled:    enabled,
		logger:     logger,
	}
}

// Name returns the name of the data source
func (c *StatsAPIClient) Name() string {
	return statsAPISourceName
}

// IsEnabled returns whether this data source is currently enabled
func (c *StatsAPIClient) IsEnabled() bool {
	return c.enabled
}

// scheduleResponse models the /schedule endpoint
type scheduleResponse struct {
	Dates []struct {
		Date  string         `json:"date"`
		Games []scheduleGame `json:"games"`
	} `json:"dates"`
}

type scheduleGame struct {
	GamePk int64 `json:"gamePk"`
	Status struct {
		DetailedState string `json:"detailedState"`
	} `json:"status"`
	Teams struct {
		Home scheduleSide `json:"home"`
		Away scheduleSide `json:"away"`
	} `json:"teams"`
}

type scheduleSide struct {
	Team struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"team"`
	ProbablePitcher *struct {
		ID       int64  `json:"id"`
		FullName string `json:"fullName"`
	} `json:"probablePitcher"`
}

// FetchSchedule retrieves the game slate for one calendar date
func (c *StatsAPIClient) FetchSchedule(ctx context.Context, date time.Time) ([]GameData, error) {
	if !c.enabled {
		return nil, NewDataSourceError(statsAPISourceName, ErrCodeNetworkError, dataSourceDisabledMsg, nil)
	}

	url := fmt.Sprintf("%s/schedule?sportId=1&date=%s&hydrate=probablePitcher",
		c.baseURL, date.Format("2006-01-02"))

	var parsed scheduleResponse
	if err := c.getJSON(ctx, url, &parsed); err != nil {
		return nil, err
	}

	var games []GameData
	for _, d := range parsed.Dates {
		day, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			return nil, NewDataSourceError(statsAPISourceName, ErrCodeInvalidData, "unparseable schedule date", err)
		}
		for _, g := range d.Games {
			game := GameData{
				GameID:   g.GamePk,
				Date:     day,
				Status:   g.Status.DetailedState,
				HomeTeam: g.Teams.Home.Team.Name,
				AwayTeam: g.Teams.Away.Team.Name,
			}
			if p := g.Teams.Home.ProbablePitcher; p != nil {
				game.HomePitcher = &ProbablePitcher{ID: p.ID, Name: p.FullName}
			}
			if p := g.Teams.Away.ProbablePitcher; p != nil {
				game.AwayPitcher = &ProbablePitcher{ID: p.ID, Name: p.FullName}
			}
			games = append(games, game)
		}
	}

	return games, nil
}

// liveFeedResponse models the subset of the /game/{id}/feed/live endpoint the
// ingestion pipeline reads.
type liveFeedResponse struct {
	GameData struct {
		Datetime struct {
			OfficialDate string `json:"officialDate"`
		} `json:"datetime"`
		Teams struct {
			Home feedTeam `json:"home"`
			Away feedTeam `json:"away"`
		} `json:"teams"`
	} `json:"gameData"`
	LiveData struct {
		Plays struct {
			AllPlays []feedPlay `json:"allPlays"`
		} `json:"plays"`
		Boxscore struct {
			Teams struct {
				Home feedBoxTeam `json:"home"`
				Away feedBoxTeam `json:"away"`
			} `json:"teams"`
		} `json:"boxscore"`
	} `json:"liveData"`
}

type feedTeam struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type feedBoxTeam struct {
	Players map[string]struct {
		Person struct {
			ID       int64  `json:"id"`
			FullName string `json:"fullName"`
		} `json:"person"`
		Stats struct {
			Pitching struct {
				InningsPitched string `json:"inningsPitched"`
			} `json:"pitching"`
		} `json:"stats"`
	} `json:"players"`
}

type feedPlay struct {
	Result struct {
		EventType string `json:"eventType"`
	} `json:"result"`
	About struct {
		Inning     int    `json:"inning"`
		HalfInning string `json:"halfInning"`
		IsComplete bool   `json:"isComplete"`
	} `json:"about"`
	Matchup struct {
		Pitcher struct {
			ID       int64  `json:"id"`
			FullName string `json:"fullName"`
		} `json:"pitcher"`
	} `json:"matchup"`
	Runners []struct {
		Movement struct {
			End string `json:"end"`
		} `json:"movement"`
	} `json:"runners"`
}

// FetchGameInnings retrieves per-inning pitching and batting lines for a
// completed game, reduced from the play-by-play feed
func (c *StatsAPIClient) FetchGameInnings(ctx context.Context, gameID int64) (*GameInnings, error) {
	if !c.enabled {
		return nil, NewDataSourceError(statsAPISourceName, ErrCodeNetworkError, dataSourceDisabledMsg, nil)
	}

	// The live feed lives under /v1.1 while everything else is /v1.
	feedBase := strings.Replace(c.baseURL, "/v1", "/v1.1", 1)
	url := fmt.Sprintf("%s/game/%d/feed/live", feedBase, gameID)

	var feed liveFeedResponse
	if err := c.getJSON(ctx, url, &feed); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", feed.GameData.Datetime.OfficialDate)
	if err != nil {
		return nil, NewDataSourceError(statsAPISourceName, ErrCodeInvalidData, "unparseable game date", err)
	}

	return reduceFeed(gameID, date, &feed), nil
}

// reduceFeed folds the play-by-play into per-inning lines. Top halves are the
// away team batting against the home pitcher; bottoms the reverse. Pitching
// lines are keyed per pitcher, so a mid-inning relief appearance gets its own
// line instead of inflating the starter's.
func reduceFeed(gameID int64, date time.Time, feed *liveFeedResponse) *GameInnings {
	home := feed.GameData.Teams.Home.Abbreviation
	away := feed.GameData.Teams.Away.Abbreviation

	type half struct {
		inning int
		top    bool
	}
	type appearance struct {
		half
		pitcherID int64
	}
	pitchers := make(map[appearance]*PitchingLine)
	batters := make(map[half]*BattingLine)
	var pitchOrder []appearance
	var batOrder []half

	for _, play := range feed.LiveData.Plays.AllPlays {
		if !play.About.IsComplete {
			continue
		}
		h := half{inning: play.About.Inning, top: play.About.HalfInning == "top"}
		pitchTeam, batTeam := home, away
		if !h.top {
			pitchTeam, batTeam = away, home
		}

		b, ok := batters[h]
		if !ok {
			b = &BattingLine{
				Inning:         h.inning,
				TeamID:         batTeam,
				OpponentTeamID: pitchTeam,
				IsHome:         !h.top,
			}
			batters[h] = b
			batOrder = append(batOrder, h)
		}

		a := appearance{half: h, pitcherID: play.Matchup.Pitcher.ID}
		p, ok := pitchers[a]
		if !ok {
			p = &PitchingLine{
				Inning:         h.inning,
				PitcherID:      play.Matchup.Pitcher.ID,
				PitcherName:    play.Matchup.Pitcher.FullName,
				TeamID:         pitchTeam,
				OpponentTeamID: batTeam,
				IsHome:         h.top,
				InningsPitched: inningsPitchedFor(feed, h.top, play.Matchup.Pitcher.ID),
			}
			pitchers[a] = p
			pitchOrder = append(pitchOrder, a)
		}

		p.BattersFaced++
		b.BattersToPlate++

		runs := 0
		for _, r := range play.Runners {
			if r.Movement.End == "score" {
				runs++
			}
		}
		p.Runs += runs
		b.Runs += runs

		switch play.Result.EventType {
		case "strikeout", "strikeout_double_play":
			p.Strikeouts++
			b.Strikeouts++
		case "walk", "intent_walk":
			p.Walks++
			b.Walks++
		case "single":
			addHit(p, b, 1)
			p.Singles++
			b.Singles++
		case "double":
			addHit(p, b, 2)
			p.Doubles++
			b.Doubles++
		case "triple":
			addHit(p, b, 3)
			p.Triples++
			b.Triples++
		case "home_run":
			addHit(p, b, 4)
			p.Homers++
			b.Homers++
		}
	}

	out := &GameInnings{GameID: gameID, Date: date}
	for _, a := range pitchOrder {
		out.Pitching = append(out.Pitching, *pitchers[a])
	}
	for _, h := range batOrder {
		out.Batting = append(out.Batting, *batters[h])
	}
	return out
}

func addHit(p *PitchingLine, b *BattingLine, bases int) {
	p.Hits++
	b.Hits++
	p.TotalBases += bases
	b.TotalBases += bases
}

// inningsPitchedFor reads the pitcher's fractional innings total from the
// boxscore. The pitching team in a top half is the home side.
func inningsPitchedFor(feed *liveFeedResponse, topHalf bool, pitcherID int64) decimal.Decimal {
	box := feed.LiveData.Boxscore.Teams.Away
	if topHalf {
		box = feed.LiveData.Boxscore.Teams.Home
	}
	for _, player := range box.Players {
		if player.Person.ID != pitcherID {
			continue
		}
		ip, err := decimal.NewFromString(player.Stats.Pitching.InningsPitched)
		if err == nil {
			return ip
		}
	}
	return decimal.Zero
}

// getJSON fetches a URL and decodes the JSON body
func (c *StatsAPIClient) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return NewDataSourceError(statsAPISourceName, ErrCodeNetworkError, "failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	defer func() {
		metrics.RecordStatsAPIRequest(endpointLabel(req.URL.Path), time.Since(start).Seconds())
	}()

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return NewDataSourceError(statsAPISourceName, ErrCodeNetworkError, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return NewDataSourceError(statsAPISourceName, ErrCodeNotFound, "resource not found", nil)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return NewDataSourceError(statsAPISourceName, ErrCodeRateLimitExceeded, "rate limit exceeded", nil)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return NewDataSourceError(statsAPISourceName, ErrCodeServerError,
			fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(body)), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewDataSourceError(statsAPISourceName, ErrCodeInvalidData, "failed to parse response", err)
	}
	return nil
}

// endpointLabel collapses a request path to a low-cardinality metric label.
func endpointLabel(path string) string {
	if strings.Contains(path, "/feed/live") {
		return "feed_live"
	}
	if strings.Contains(path, "/schedule") {
		return "schedule"
	}
	return "other"
}
