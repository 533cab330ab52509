package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/h2grid/h2grid-api/internal/charts"
	"github.com/h2grid/h2grid-api/internal/charts/render"
	"github.com/h2grid/h2grid-api/internal/constants"
	"github.com/h2grid/h2grid-api/internal/mocks"
	"github.com/h2grid/h2grid-api/internal/services"
	"github.com/h2grid/h2grid-api/internal/types/api/requests"
	"github.com/h2grid/h2grid-api/internal/types/api/responses"
	"github.com/h2grid/h2grid-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func sessionRouter(h *DashboardHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := newTestRouter(http.MethodGet, "/dashboard/overview", h.GetOverview)
	router.POST("/dashboard/sessions", h.CreateSession)
	router.GET("/dashboard/sessions/:session_id", h.GetSession)
	router.PUT("/dashboard/sessions/:session_id/tab", h.SetTab)
	router.POST("/dashboard/sessions/:session_id/data", h.PushData)
	router.GET("/dashboard/sessions/:session_id/charts", h.ListCharts)
	router.GET("/dashboard/sessions/:session_id/charts/:slot", h.GetChartImage)
	router.DELETE("/dashboard/sessions/:session_id", h.DeleteSession)
	return router
}

func TestDashboardHandler_Overview(t *testing.T) {
	svc := mocks.NewMockDashboardServiceForTest(t)
	svc.EXPECT().Overview().Return(services.SampleOverview())

	w := doRequest(sessionRouter(NewDashboardHandler(svc, zap.NewNop())), http.MethodGet, "/dashboard/overview", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var overview business.Overview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
	assert.Equal(t, 8, overview.Stats.ActiveProjects)
	assert.Len(t, overview.Activities, 5)
}

func TestDashboardHandler_CreateSession(t *testing.T) {
	projectID := uuid.New()

	t.Run("created", func(t *testing.T) {
		svc := mocks.NewMockDashboardServiceForTest(t)
		session := mocks.NewMockDashboardSessionForTest(t)
		info := business.SessionInfo{ID: uuid.New(), ProjectID: projectID, Tab: constants.TabAnalytics}
		svc.EXPECT().OpenSession(gomock.Any(), projectID, constants.TabAnalytics).Return(session, nil)
		session.EXPECT().Info().Return(info)

		w := doRequest(sessionRouter(NewDashboardHandler(svc, zap.NewNop())), http.MethodPost, "/dashboard/sessions",
			requests.CreateSessionRequest{ProjectID: projectID.String(), Tab: constants.TabAnalytics})
		require.Equal(t, http.StatusCreated, w.Code)

		var got business.SessionInfo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, info.ID, got.ID)
	})

	t.Run("invalid project id", func(t *testing.T) {
		svc := mocks.NewMockDashboardServiceForTest(t)
		w := doRequest(sessionRouter(NewDashboardHandler(svc, zap.NewNop())), http.MethodPost, "/dashboard/sessions",
			`{"project_id":"abc"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		decodeError(t, w)
	})

	t.Run("invalid tab", func(t *testing.T) {
		svc := mocks.NewMockDashboardServiceForTest(t)
		svc.EXPECT().OpenSession(gomock.Any(), projectID, "billing").Return(nil, services.ErrInvalidTab)

		w := doRequest(sessionRouter(NewDashboardHandler(svc, zap.NewNop())), http.MethodPost, "/dashboard/sessions",
			requests.CreateSessionRequest{ProjectID: projectID.String(), Tab: "billing"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid dashboard tab", decodeError(t, w).Error)
	})
}

func TestDashboardHandler_SessionLookup(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		svc := mocks.NewMockDashboardServiceForTest(t)
		w := doRequest(sessionRouter(NewDashboardHandler(svc, zap.NewNop())), http.MethodGet, "/dashboard/sessions/xyz", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		svc := mocks.NewMockDashboardServiceForTest(t)
		id := uuid.New()
		svc.EXPECT().GetSession(id).Return(nil, services.ErrSessionNotFound)

		w := doRequest(sessionRouter(NewDashboardHandler(svc, zap.NewNop())), http.MethodGet, "/dashboard/sessions/"+id.String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Dashboard session not found", decodeError(t, w).Error)
	})
}

func TestDashboardHandler_SetTabAndPushData(t *testing.T) {
	id := uuid.New()
	base := "/dashboard/sessions/" + id.String()

	t.Run("set tab", func(t *testing.T) {
		svc := mocks.NewMockDashboardServiceForTest(t)
		session := mocks.NewMockDashboardSessionForTest(t)
		svc.EXPECT().GetSession(id).Return(session, nil)
		session.EXPECT().SetTab(constants.TabAnalytics).Return(nil)
		session.EXPECT().Info().Return(business.SessionInfo{ID: id, Tab: constants.TabAnalytics, Mounted: true})

		w := doRequest(sessionRouter(NewDashboardHandler(svc, zap.NewNop())), http.MethodPut, base+"/tab", requests.SetTabRequest{Tab: constants.TabAnalytics})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"mounted":true`)
	})

	t.Run("set tab on closed session", func(t *testing.T) {
		svc := mocks.NewMockDashboardServiceForTest(t)
		session := mocks.NewMockDashboardSessionForTest(t)
		svc.EXPECT().GetSession(id).Return(session, nil)
		session.EXPECT().SetTab(constants.TabReports).Return(services.ErrSessionClosed)

		w := doRequest(sessionRouter(NewDashboardHandler(svc, zap.NewNop())), http.MethodPut, base+"/tab", requests.SetTabRequest{Tab: constants.TabReports})
		assert.Equal(t, http.StatusGone, w.Code)
	})

	t.Run("push data", func(t *testing.T) {
		svc := mocks.NewMockDashboardServiceForTest(t)
		session := mocks.NewMockDashboardSessionForTest(t)
		svc.EXPECT().GetSession(id).Return(session, nil)
		session.EXPECT().Deliver(gomock.Not(gomock.Nil())).Return(nil)
		session.EXPECT().Info().Return(business.SessionInfo{ID: id, HasData: true})

		w := doRequest(sessionRouter(NewDashboardHandler(svc, zap.NewNop())), http.MethodPost, base+"/data", map[string]interface{}{"snapshot": testSnapshot()})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"has_data":true`)
	})
}

func TestDashboardHandler_Charts(t *testing.T) {
	id := uuid.New()
	base := "/dashboard/sessions/" + id.String()
	updated := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("list", func(t *testing.T) {
		svc := mocks.NewMockDashboardServiceForTest(t)
		session := mocks.NewMockDashboardSessionForTest(t)
		svc.EXPECT().GetSession(id).Return(session, nil)
		session.EXPECT().ID().Return(id).AnyTimes()
		session.EXPECT().Charts().Return([]charts.Config{
			{Slot: charts.SlotTrend, Kind: charts.KindLine, Title: "Production Trend", Values: []float64{1}},
			{Slot: charts.SlotUtilization, Kind: charts.KindRadar, Title: "Resource Utilization", YMax: 100},
		})
		session.EXPECT().ChartImage(charts.SlotTrend).Return(render.Image{ContentType: render.ContentTypePNG, UpdatedAt: updated}, true)
		session.EXPECT().ChartImage(charts.SlotUtilization).Return(render.Image{}, false)

		w := doRequest(sessionRouter(NewDashboardHandler(svc, zap.NewNop())), http.MethodGet, base+"/charts", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var list struct {
			Object string                    `json:"object"`
			Data   []responses.ChartResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Equal(t, "list", list.Object)
		require.Len(t, list.Data, 2)
		assert.Equal(t, "trend", list.Data[0].Slot)
		assert.Equal(t, "/api/v1/dashboard/sessions/"+id.String()+"/charts/trend", list.Data[0].ImageURL)
		assert.True(t, updated.Equal(list.Data[0].UpdatedAt))
		assert.Equal(t, float64(100), list.Data[1].YMax)
	})

	t.Run("empty list", func(t *testing.T) {
		svc := mocks.NewMockDashboardServiceForTest(t)
		session := mocks.NewMockDashboardSessionForTest(t)
		svc.EXPECT().GetSession(id).Return(session, nil)
		session.EXPECT().Charts().Return(nil)

		w := doRequest(sessionRouter(NewDashboardHandler(svc, zap.NewNop())), http.MethodGet, base+"/charts", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"object":"list","data":[]}`, w.Body.String())
	})

	t.Run("image", func(t *testing.T) {
		svc := mocks.NewMockDashboardServiceForTest(t)
		session := mocks.NewMockDashboardSessionForTest(t)
		svc.EXPECT().GetSession(id).Return(session, nil)
		session.EXPECT().ChartImage(charts.SlotBreakdown).Return(render.Image{
			ContentType: render.ContentTypeSVG,
			Data:        []byte("<svg/>"),
			UpdatedAt:   updated,
		}, true)

		// "cost" is an alias of the breakdown slot
		w := doRequest(sessionRouter(NewDashboardHandler(svc, zap.NewNop())), http.MethodGet, base+"/charts/cost", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, render.ContentTypeSVG, w.Header().Get("Content-Type"))
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		assert.Equal(t, "<svg/>", w.Body.String())
	})

	t.Run("image of empty slot", func(t *testing.T) {
		svc := mocks.NewMockDashboardServiceForTest(t)
		session := mocks.NewMockDashboardSessionForTest(t)
		svc.EXPECT().GetSession(id).Return(session, nil)
		session.EXPECT().ChartImage(charts.SlotTrend).Return(render.Image{}, false)

		w := doRequest(sessionRouter(NewDashboardHandler(svc, zap.NewNop())), http.MethodGet, base+"/charts/trend", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Chart is not drawn", decodeError(t, w).Error)
	})

	t.Run("unknown slot", func(t *testing.T) {
		svc := mocks.NewMockDashboardServiceForTest(t)
		w := doRequest(sessionRouter(NewDashboardHandler(svc, zap.NewNop())), http.MethodGet, base+"/charts/pie", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDashboardHandler_DeleteSession(t *testing.T) {
	id := uuid.New()

	svc := mocks.NewMockDashboardServiceForTest(t)
	first := svc.EXPECT().CloseSession(id).Return(nil)
	svc.EXPECT().CloseSession(id).Return(services.ErrSessionNotFound).After(first)
	router := sessionRouter(NewDashboardHandler(svc, zap.NewNop()))

	w := doRequest(router, http.MethodDelete, "/dashboard/sessions/"+id.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, http.MethodDelete, "/dashboard/sessions/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
