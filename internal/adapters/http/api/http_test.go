package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/dugoutlabs/fieldscore/internal/adapters/http/api"
	service "github.com/dugoutlabs/fieldscore/internal/app"
	"github.com/dugoutlabs/fieldscore/pkg/logger"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

const analyzePayload = `[
	{"player_name":"Sal Barren","fielding_pct":0.996,"errors":5,"putouts":1147,"positions":"1B"},
	{"player_name":"Iggy Suarez","fielding_pct":0.992,"errors":4,"putouts":501,"passed_balls":3,"caught_stealing_pct":0.31,"positions":"C"}
]`

const matchupPayload = `{
	"batters":[{"name":"Lou Ricks","ba":0.310,"strikeouts":70,"obp":0.390,"slg":0.520,"home_runs":28,"rbi":95,"handedness":"R"}],
	"pitcher":{"name":"Cy Hollis","era":3.10,"whip":1.10,"k_rate":0.27,"walk_rate":0.07,"handedness":"LHP"}
}`

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := service.New(service.WithPredictAllPositions(false))
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(svc.Stop)
	return api.NewServer(svc).Router()
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	Convey("Given the API router", t, func() {
		router := newTestRouter(t)

		Convey("When GET /healthz is requested", func() {
			rec := doRequest(router, http.MethodGet, "/healthz", "")

			Convey("Then it reports ok", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, `"status":"ok"`)
			})
		})
	})
}

func TestAnalyzeEndpoint(t *testing.T) {
	Convey("Given the API router", t, func() {
		router := newTestRouter(t)

		Convey("When a bare array of records is posted", func() {
			rec := doRequest(router, http.MethodPost, "/api/v1/analyze", analyzePayload)

			Convey("Then the batch is analyzed", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var summary service.Summary
				So(json.Unmarshal(rec.Body.Bytes(), &summary), ShouldBeNil)
				So(summary.Players, ShouldEqual, 2)
				So(summary.Facts, ShouldEqual, 2)
			})
		})

		Convey("When the records are wrapped in an object", func() {
			rec := doRequest(router, http.MethodPost, "/api/v1/analyze",
				`{"records":`+analyzePayload+`}`)

			Convey("Then the batch is analyzed the same way", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
			})
		})

		Convey("When the body is empty JSON", func() {
			rec := doRequest(router, http.MethodPost, "/api/v1/analyze", `[]`)

			Convey("Then it is rejected", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Body.String(), ShouldContainSubstring, "empty_batch")
			})
		})

		Convey("When the body is not JSON", func() {
			rec := doRequest(router, http.MethodPost, "/api/v1/analyze", "not-json")

			Convey("Then it is rejected", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}

func TestPlayerEndpoints(t *testing.T) {
	Convey("Given a router with analyzed players", t, func() {
		router := newTestRouter(t)
		So(doRequest(router, http.MethodPost, "/api/v1/analyze", analyzePayload).Code,
			ShouldEqual, http.StatusOK)

		Convey("When the player list is requested", func() {
			rec := doRequest(router, http.MethodGet, "/api/v1/players", "")

			Convey("Then both players are listed", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, "Sal Barren")
				So(rec.Body.String(), ShouldContainSubstring, "Iggy Suarez")
				So(rec.Body.String(), ShouldContainSubstring, `"count":2`)
			})
		})

		Convey("When one player's scores are requested", func() {
			rec := doRequest(router, http.MethodGet, "/api/v1/players/Sal%20Barren/scores", "")

			Convey("Then the per-position scores come back", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, `"position":"1B"`)
			})
		})

		Convey("When an unknown player is requested", func() {
			rec := doRequest(router, http.MethodGet, "/api/v1/players/nobody/scores", "")

			Convey("Then it is a 404", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
				So(rec.Body.String(), ShouldContainSubstring, "player_not_found")
			})
		})

		Convey("When the leaderboard is requested", func() {
			rec := doRequest(router, http.MethodGet, "/api/v1/leaderboard/1B?limit=5", "")

			Convey("Then ranked entries come back", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, `"rank":1`)
				So(rec.Body.String(), ShouldContainSubstring, "Sal Barren")
			})
		})

		Convey("When the leaderboard position is invalid", func() {
			rec := doRequest(router, http.MethodGet, "/api/v1/leaderboard/DH", "")

			Convey("Then it is rejected", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Body.String(), ShouldContainSubstring, "invalid_position")
			})
		})

		Convey("When the leaderboard limit is not a number", func() {
			rec := doRequest(router, http.MethodGet, "/api/v1/leaderboard/1B?limit=ten", "")

			Convey("Then it is rejected", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Body.String(), ShouldContainSubstring, "invalid_limit")
			})
		})
	})
}

func TestRulesEndpoint(t *testing.T) {
	Convey("Given the API router", t, func() {
		router := newTestRouter(t)

		Convey("When catcher rules are requested", func() {
			rec := doRequest(router, http.MethodGet, "/api/v1/rules/C", "")

			Convey("Then the catcher rule set is described", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, "passed balls")
			})
		})

		Convey("When an unknown position is requested", func() {
			rec := doRequest(router, http.MethodGet, "/api/v1/rules/P", "")

			Convey("Then it is rejected", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}

func TestMatchupEndpoint(t *testing.T) {
	Convey("Given the API router", t, func() {
		router := newTestRouter(t)

		Convey("When a valid matchup is posted", func() {
			rec := doRequest(router, http.MethodPost, "/api/v1/matchup", matchupPayload)

			Convey("Then each batter is scored", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var resp struct {
					Pitcher string             `json:"pitcher"`
					Scores  map[string]float64 `json:"scores"`
				}
				So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.Pitcher, ShouldEqual, "Cy Hollis")
				So(resp.Scores["Lou Ricks"], ShouldBeBetweenOrEqual, 0.0, 100.0)
			})
		})

		Convey("When a batter fails validation", func() {
			payload := strings.Replace(matchupPayload, `"ba":0.310`, `"ba":3.10`, 1)
			rec := doRequest(router, http.MethodPost, "/api/v1/matchup", payload)

			Convey("Then it is rejected with the batter index", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Body.String(), ShouldContainSubstring, "invalid_batter")
			})
		})

		Convey("When the lineup is empty", func() {
			rec := doRequest(router, http.MethodPost, "/api/v1/matchup",
				`{"batters":[],"pitcher":{"era":3.1,"whip":1.1,"k_rate":0.2,"walk_rate":0.1,"handedness":"RHP"}}`)

			Convey("Then it is rejected", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Body.String(), ShouldContainSubstring, "empty_lineup")
			})
		})
	})
}
