package datasource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHTTPClient() *RateLimitedHTTPClient {
	cfg := DefaultHTTPClientConfig()
	cfg.MaxRetries = 0
	cfg.RateLimit = 1000
	return NewRateLimitedHTTPClient(cfg, nil)
}

func TestFetchScheduleParsesSlate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/schedule", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("sportId"))
		assert.Equal(t, "2024-07-04", r.URL.Query().Get("date"))
		assert.Equal(t, "probablePitcher", r.URL.Query().Get("hydrate"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"dates": [{
				"date": "2024-07-04",
				"games": [{
					"gamePk": 745123,
					"status": {"detailedState": "Scheduled"},
					"teams": {
						"home": {
							"team": {"id": 147, "name": "New York Yankees"},
							"probablePitcher": {"id": 543037, "fullName": "Gerrit Cole"}
						},
						"away": {
							"team": {"id": 111, "name": "Boston Red Sox"}
						}
					}
				}]
			}]
		}`))
	}))
	defer server.Close()

	client := NewStatsAPIClient(testHTTPClient(), server.URL+"/api/v1", true, nil)

	games, err := client.FetchSchedule(context.Background(), time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, games, 1)

	game := games[0]
	assert.Equal(t, int64(745123), game.GameID)
	assert.Equal(t, "Scheduled", game.Status)
	assert.Equal(t, "New York Yankees", game.HomeTeam)
	assert.Equal(t, "Boston Red Sox", game.AwayTeam)
	require.NotNil(t, game.HomePitcher)
	assert.Equal(t, "Gerrit Cole", game.HomePitcher.Name)
	assert.Nil(t, game.AwayPitcher)
	assert.Equal(t, time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC), game.Date)
}

func TestFetchScheduleDisabled(t *testing.T) {
	client := NewStatsAPIClient(testHTTPClient(), "", false, nil)

	_, err := client.FetchSchedule(context.Background(), time.Now())
	require.Error(t, err)

	var dsErr DataSourceError
	require.ErrorAs(t, err, &dsErr)
	assert.Equal(t, ErrCodeNetworkError, dsErr.Code)
}

func TestFetchGameInningsUsesLiveFeedPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"gameData": {
				"datetime": {"officialDate": "2024-07-04"},
				"teams": {
					"home": {"id": 147, "name": "New York Yankees", "abbreviation": "NYY"},
					"away": {"id": 111, "name": "Boston Red Sox", "abbreviation": "BOS"}
				}
			},
			"liveData": {"plays": {"allPlays": []}, "boxscore": {"teams": {"home": {"players": {}}, "away": {"players": {}}}}}
		}`))
	}))
	defer server.Close()

	client := NewStatsAPIClient(testHTTPClient(), server.URL+"/api/v1", true, nil)

	innings, err := client.FetchGameInnings(context.Background(), 745123)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1.1/game/745123/feed/live", gotPath)
	assert.Equal(t, int64(745123), innings.GameID)
	assert.Empty(t, innings.Pitching)
}

func TestGetJSONErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode string
	}{
		{"not found", http.StatusNotFound, ErrCodeNotFound},
		{"server error", http.StatusInternalServerError, ErrCodeServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewStatsAPIClient(testHTTPClient(), server.URL+"/api/v1", true, nil)

			_, err := client.FetchSchedule(context.Background(), time.Now())
			require.Error(t, err)

			var dsErr DataSourceError
			require.ErrorAs(t, err, &dsErr)
			assert.Equal(t, tt.wantCode, dsErr.Code)
		})
	}
}

func feedPlayFor(inning int, half, eventType string, pitcherID int64, scored int) feedPlay {
	var play feedPlay
	play.Result.EventType = eventType
	play.About.Inning = inning
	play.About.HalfInning = half
	play.About.IsComplete = true
	play.Matchup.Pitcher.ID = pitcherID
	play.Matchup.Pitcher.FullName = "Cole, Gerrit"
	for i := 0; i < scored; i++ {
		play.Runners = append(play.Runners, struct {
			Movement struct {
				End string `json:"end"`
			} `json:"movement"`
		}{})
		play.Runners[i].Movement.End = "score"
	}
	return play
}

func testFeed(plays ...feedPlay) *liveFeedResponse {
	feed := &liveFeedResponse{}
	feed.GameData.Teams.Home.Abbreviation = "NYY"
	feed.GameData.Teams.Away.Abbreviation = "BOS"
	feed.LiveData.Plays.AllPlays = plays
	return feed
}

func TestReduceFeedCountsEvents(t *testing.T) {
	feed := testFeed(
		feedPlayFor(1, "top", "strikeout", 100, 0),
		feedPlayFor(1, "top", "home_run", 100, 1),
		feedPlayFor(1, "top", "walk", 100, 0),
		feedPlayFor(1, "bottom", "single", 200, 0),
		feedPlayFor(1, "bottom", "strikeout_double_play", 200, 0),
		feedPlayFor(2, "top", "double", 100, 0),
	)

	innings := reduceFeed(745123, time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC), feed)

	require.Len(t, innings.Pitching, 3)
	require.Len(t, innings.Batting, 3)

	// Top 1: home pitcher faces the away lineup.
	top1 := innings.Pitching[0]
	assert.Equal(t, 1, top1.Inning)
	assert.Equal(t, "NYY", top1.TeamID)
	assert.Equal(t, "BOS", top1.OpponentTeamID)
	assert.True(t, top1.IsHome)
	assert.Equal(t, 3, top1.BattersFaced)
	assert.Equal(t, 1, top1.Strikeouts)
	assert.Equal(t, 1, top1.Homers)
	assert.Equal(t, 1, top1.Hits)
	assert.Equal(t, 4, top1.TotalBases)
	assert.Equal(t, 1, top1.Walks)
	assert.Equal(t, 1, top1.Runs)

	bat1 := innings.Batting[0]
	assert.Equal(t, "BOS", bat1.TeamID)
	assert.False(t, bat1.IsHome)
	assert.Equal(t, 3, bat1.BattersToPlate)
	assert.Equal(t, 1, bat1.Runs)

	// Bottom 1: away pitcher, home batters.
	bottom1 := innings.Pitching[1]
	assert.Equal(t, "BOS", bottom1.TeamID)
	assert.False(t, bottom1.IsHome)
	assert.Equal(t, 1, bottom1.Singles)
	assert.Equal(t, 1, bottom1.Strikeouts)

	// Top 2 is a separate line.
	top2 := innings.Pitching[2]
	assert.Equal(t, 2, top2.Inning)
	assert.Equal(t, 1, top2.Doubles)
	assert.Equal(t, 2, top2.TotalBases)
}

func TestReduceFeedSplitsMidInningRelief(t *testing.T) {
	starter := feedPlayFor(1, "top", "strikeout", 100, 0)
	starter.Matchup.Pitcher.FullName = "Cole, Gerrit"
	reliefWalk := feedPlayFor(1, "top", "walk", 300, 0)
	reliefWalk.Matchup.Pitcher.FullName = "Weaver, Luke"
	reliefSingle := feedPlayFor(1, "top", "single", 300, 1)
	reliefSingle.Matchup.Pitcher.FullName = "Weaver, Luke"

	innings := reduceFeed(745123, time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC),
		testFeed(starter, reliefWalk, reliefSingle))

	// Each pitcher in the half-inning carries his own line.
	require.Len(t, innings.Pitching, 2)
	first := innings.Pitching[0]
	assert.Equal(t, "Cole, Gerrit", first.PitcherName)
	assert.Equal(t, 1, first.BattersFaced)
	assert.Equal(t, 1, first.Strikeouts)
	assert.Equal(t, 0, first.Runs)

	relief := innings.Pitching[1]
	assert.Equal(t, "Weaver, Luke", relief.PitcherName)
	assert.Equal(t, 1, relief.Inning)
	assert.Equal(t, "NYY", relief.TeamID)
	assert.True(t, relief.IsHome)
	assert.Equal(t, 2, relief.BattersFaced)
	assert.Equal(t, 1, relief.Walks)
	assert.Equal(t, 1, relief.Singles)
	assert.Equal(t, 1, relief.Runs)

	// The batting side stays one line per half-inning.
	require.Len(t, innings.Batting, 1)
	assert.Equal(t, "BOS", innings.Batting[0].TeamID)
	assert.Equal(t, 3, innings.Batting[0].BattersToPlate)
	assert.Equal(t, 1, innings.Batting[0].Runs)
}

func TestReduceFeedSkipsIncompletePlays(t *testing.T) {
	incomplete := feedPlayFor(1, "top", "strikeout", 100, 0)
	incomplete.About.IsComplete = false

	innings := reduceFeed(745123, time.Now(), testFeed(incomplete))
	assert.Empty(t, innings.Pitching)
	assert.Empty(t, innings.Batting)
}

func TestFactoryCreate(t *testing.T) {
	factory := NewFactory(nil, nil)

	_, err := factory.Create(StatsAPISourceType)
	assert.Error(t, err) // no config

	_, err = factory.Create(SourceType("unknown"))
	assert.Error(t, err)
}
