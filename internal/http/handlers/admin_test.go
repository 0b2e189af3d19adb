package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/phl-league-service/internal/app/admin"
	domain "github.com/preston-bernstein/phl-league-service/internal/domain/league"
	"github.com/preston-bernstein/phl-league-service/internal/metrics"
	"github.com/preston-bernstein/phl-league-service/internal/providers"
	"github.com/preston-bernstein/phl-league-service/internal/teststubs"
	"github.com/preston-bernstein/phl-league-service/internal/testutil"
)

type adminFixture struct {
	handler   *AdminHandler
	upstream  *teststubs.StubUpstream
	refresher *testutil.StubPoller
}

func newAdminFixture(uploadMaxBytes int64) adminFixture {
	upstream := &teststubs.StubUpstream{MatchID: 42, UploadURL: "https://cdn.example/logo.png"}
	refresher := &testutil.StubPoller{}
	svc := admin.NewService(upstream, refresher, nil, metrics.NewRecorder())
	return adminFixture{
		handler:   NewAdminHandler(svc, nil, uploadMaxBytes),
		upstream:  upstream,
		refresher: refresher,
	}
}

func adminHeaders() map[string]string {
	return map[string]string{"X-Admin-Password": "secret"}
}

func TestAdminUpsertTeamForwardsPasswordAndRefetches(t *testing.T) {
	f := newAdminFixture(0)

	rr := testutil.ServeJSON(t, http.HandlerFunc(f.handler.UpsertTeam), http.MethodPut, "/admin/teams",
		map[string]any{"name": "  Ястребы  "}, adminHeaders())
	testutil.AssertStatus(t, rr, http.StatusOK)

	call, ok := f.upstream.Last()
	require.True(t, ok)
	assert.Equal(t, "secret", call.Password)
	assert.Equal(t, domain.KindTeam, call.Kind)
	team, ok := call.Payload.(domain.TeamUpsert)
	require.True(t, ok)
	assert.Equal(t, "Ястребы", team.Name)
	assert.Equal(t, domain.DivisionFirst, team.Division)
	assert.Equal(t, 1, f.refresher.RefreshCalls)
}

func TestAdminInvalidPayloadIsBadRequest(t *testing.T) {
	f := newAdminFixture(0)

	rr := testutil.ServeJSON(t, http.HandlerFunc(f.handler.UpsertChampion), http.MethodPut, "/admin/champions",
		map[string]any{"season": ""}, adminHeaders())
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	assert.Empty(t, f.upstream.Calls)
	assert.Zero(t, f.refresher.RefreshCalls)
}

func TestAdminMalformedJSON(t *testing.T) {
	f := newAdminFixture(0)
	req := httptest.NewRequest(http.MethodPut, "/admin/info", strings.NewReader("{"))
	rr := testutil.ServeRequest(http.HandlerFunc(f.handler.UpdateInfo), req)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	assert.Contains(t, rr.Body.String(), "invalid JSON body")
}

func TestAdminUpstreamForbidden(t *testing.T) {
	f := newAdminFixture(0)
	f.upstream.Err = &providers.StatusError{Op: "league-data put", StatusCode: http.StatusForbidden, Body: "Invalid password"}

	rr := testutil.ServeJSON(t, http.HandlerFunc(f.handler.UpdateInfo), http.MethodPut, "/admin/info",
		map[string]any{"title": "PHL"}, map[string]string{"X-Admin-Password": "wrong"})
	testutil.AssertStatus(t, rr, http.StatusForbidden)
	assert.Contains(t, rr.Body.String(), "invalid admin password")
	assert.Zero(t, f.refresher.RefreshCalls)
}

func TestAdminPathIDOverridesBody(t *testing.T) {
	f := newAdminFixture(0)

	req := httptest.NewRequest(http.MethodPut, "/admin/teams/7/stats",
		strings.NewReader(`{"id":99,"played":3,"wins":2,"losses":1,"points":4}`))
	req.SetPathValue("id", "7")
	rr := testutil.ServeRequest(http.HandlerFunc(f.handler.UpdateTeamStats), req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	call, _ := f.upstream.Last()
	stats, ok := call.Payload.(domain.TeamStatsUpdate)
	require.True(t, ok)
	assert.Equal(t, 7, stats.ID)
	assert.Equal(t, 4, stats.Points)
}

func TestAdminTeamLogo(t *testing.T) {
	f := newAdminFixture(0)

	req := httptest.NewRequest(http.MethodPut, "/admin/teams/3/logo",
		strings.NewReader(`{"logo_url":"https://cdn.example/3.png"}`))
	req.SetPathValue("id", "3")
	rr := testutil.ServeRequest(http.HandlerFunc(f.handler.UpdateTeamLogo), req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	call, _ := f.upstream.Last()
	assert.Equal(t, domain.KindTeamLogo, call.Kind)
	assert.Equal(t, domain.TeamLogoUpdate{TeamID: 3, LogoURL: "https://cdn.example/3.png"}, call.Payload)
}

func TestAdminInvalidPathID(t *testing.T) {
	f := newAdminFixture(0)
	for _, raw := range []string{"abc", "0", "-1"} {
		req := httptest.NewRequest(http.MethodDelete, "/admin/teams/"+raw, nil)
		req.SetPathValue("id", raw)
		rr := testutil.ServeRequest(http.HandlerFunc(f.handler.DeleteTeam), req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, raw)
	}
	assert.Empty(t, f.upstream.Calls)
}

func TestAdminDeletes(t *testing.T) {
	f := newAdminFixture(0)

	req := httptest.NewRequest(http.MethodDelete, "/admin/regulations/5", nil)
	req.SetPathValue("id", "5")
	req.Header.Set("X-Admin-Password", "secret")
	rr := testutil.ServeRequest(http.HandlerFunc(f.handler.DeleteRegulation), req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	call, _ := f.upstream.Last()
	assert.Equal(t, "DELETE", call.Method)
	assert.Equal(t, domain.KindRegulation, call.Kind)
	assert.Equal(t, 5, call.Payload)
}

func TestAdminUpsertRegulationDefaultsPosition(t *testing.T) {
	f := newAdminFixture(0)

	rr := testutil.ServeJSON(t, http.HandlerFunc(f.handler.UpsertRegulation), http.MethodPut, "/admin/regulations",
		map[string]any{"title": "Overtime", "content": "5 minutes 3x3"}, adminHeaders())
	testutil.AssertStatus(t, rr, http.StatusOK)

	call, _ := f.upstream.Last()
	reg, ok := call.Payload.(domain.RegulationUpsert)
	require.True(t, ok)
	require.NotNil(t, reg.Position)
	assert.Equal(t, domain.DefaultRegulationPosition, *reg.Position)
}

func TestAdminCreateMatch(t *testing.T) {
	f := newAdminFixture(0)

	rr := testutil.ServeJSON(t, http.HandlerFunc(f.handler.CreateMatch), http.MethodPost, "/admin/matches",
		map[string]any{"home_team_id": 1, "away_team_id": 2, "match_date": "2025-03-05 19:00:00", "home_score": 9},
		adminHeaders())
	testutil.AssertStatus(t, rr, http.StatusCreated)

	var body okResponse
	testutil.DecodeJSON(t, rr, &body)
	assert.Equal(t, 42, body.ID)

	call, _ := f.upstream.Last()
	created, ok := call.Payload.(domain.MatchCreate)
	require.True(t, ok)
	assert.Equal(t, domain.StatusScheduled, created.Status)
	assert.Zero(t, created.HomeScore)
}

func TestAdminCreateMatchSameTeams(t *testing.T) {
	f := newAdminFixture(0)

	rr := testutil.ServeJSON(t, http.HandlerFunc(f.handler.CreateMatch), http.MethodPost, "/admin/matches",
		map[string]any{"home_team_id": 1, "away_team_id": 1, "match_date": "2025-03-05 19:00:00"}, adminHeaders())
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	assert.Empty(t, f.upstream.Calls)
}

func TestAdminUpdateMatch(t *testing.T) {
	f := newAdminFixture(0)

	req := httptest.NewRequest(http.MethodPut, "/admin/matches/11", strings.NewReader(
		`{"home_score":3,"away_score":2,"status":"finished","result_type":"overtime","match_date":"2025-03-05 19:00:00"}`))
	req.SetPathValue("id", "11")
	rr := testutil.ServeRequest(http.HandlerFunc(f.handler.UpdateMatch), req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	call, _ := f.upstream.Last()
	update, ok := call.Payload.(domain.MatchUpdate)
	require.True(t, ok)
	assert.Equal(t, 11, update.ID)
	assert.Equal(t, domain.ResultOvertime, update.ResultType)
}

func multipartUpload(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestAdminUploadImage(t *testing.T) {
	f := newAdminFixture(0)

	body, contentType := multipartUpload(t, "file", "logo.png", "png-bytes")
	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Admin-Password", "secret")
	rr := testutil.ServeRequest(http.HandlerFunc(f.handler.UploadImage), req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp okResponse
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "https://cdn.example/logo.png", resp.URL)

	call, _ := f.upstream.Last()
	assert.Equal(t, "logo.png:png-bytes", call.Payload)
	assert.Equal(t, "secret", call.Password)
	assert.Zero(t, f.refresher.RefreshCalls)
}

func TestAdminUploadRequiresFile(t *testing.T) {
	f := newAdminFixture(0)

	body, contentType := multipartUpload(t, "image", "logo.png", "png-bytes")
	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rr := testutil.ServeRequest(http.HandlerFunc(f.handler.UploadImage), req)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestAdminUploadRejectsNonMultipart(t *testing.T) {
	f := newAdminFixture(0)
	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", strings.NewReader("raw"))
	rr := testutil.ServeRequest(http.HandlerFunc(f.handler.UploadImage), req)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestAdminUploadTooLarge(t *testing.T) {
	f := newAdminFixture(16)

	body, contentType := multipartUpload(t, "file", "logo.png", strings.Repeat("x", 17))
	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rr := testutil.ServeRequest(http.HandlerFunc(f.handler.UploadImage), req)

	testutil.AssertStatus(t, rr, http.StatusRequestEntityTooLarge)
	assert.Empty(t, f.upstream.Calls)
}

func TestAdminUploadAcceptsFileAtLimit(t *testing.T) {
	f := newAdminFixture(16)

	body, contentType := multipartUpload(t, "file", "logo.png", strings.Repeat("x", 16))
	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Admin-Password", "secret")
	rr := testutil.ServeRequest(http.HandlerFunc(f.handler.UploadImage), req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.Len(t, f.upstream.Calls, 1)
}

func TestAdminUploadRejectsOversizedBody(t *testing.T) {
	f := newAdminFixture(16)

	body, contentType := multipartUpload(t, "file", "logo.png", strings.Repeat("x", multipartOverhead+64))
	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rr := testutil.ServeRequest(http.HandlerFunc(f.handler.UploadImage), req)

	testutil.AssertStatus(t, rr, http.StatusRequestEntityTooLarge)
	assert.Empty(t, f.upstream.Calls)
}

func TestAdminRefresh(t *testing.T) {
	f := newAdminFixture(0)
	rr := testutil.Serve(http.HandlerFunc(f.handler.Refresh), http.MethodPost, "/admin/refresh", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.Equal(t, 1, f.refresher.RefreshCalls)

	f.refresher.RefreshErr = providers.ErrUpstreamUnavailable
	rr = testutil.Serve(http.HandlerFunc(f.handler.Refresh), http.MethodPost, "/admin/refresh", nil)
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
}

func TestAdminRefetchFailureStillSucceeds(t *testing.T) {
	f := newAdminFixture(0)
	f.refresher.RefreshErr = errors.New("refetch failed")

	rr := testutil.ServeJSON(t, http.HandlerFunc(f.handler.UpdateInfo), http.MethodPut, "/admin/info",
		map[string]any{"title": "PHL"}, adminHeaders())
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.Equal(t, 1, f.refresher.RefreshCalls)
}
