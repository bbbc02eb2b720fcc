package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ildanga/internal/models/request_models"
	"ildanga/pkg/utils"
)

func TestTourWithoutServiceKeyFailsBeforeAnyRequest(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	svc := NewTourServiceWithBaseURL("", server.URL)
	_, err := svc.ListAttractionsByArea(context.Background(), request_models.TourQuery{AreaCode: "32"})

	assert.ErrorIs(t, err, utils.ErrMissingAPIKey)
	assert.False(t, called)
}

func TestListAttractionsByAreaForwardsFixedParams(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		got = map[string]string{
			"path":       r.URL.Path,
			"serviceKey": q.Get("serviceKey"),
			"MobileOS":   q.Get("MobileOS"),
			"MobileApp":  q.Get("MobileApp"),
			"_type":      q.Get("_type"),
			"arrange":    q.Get("arrange"),
			"areaCode":   q.Get("areaCode"),
		}
		w.Write([]byte(`{"response": {"body": {"items": "", "totalCount": 0}}}`))
	}))
	defer server.Close()

	svc := NewTourServiceWithBaseURL("test-key", server.URL)
	resp, err := svc.ListAttractionsByArea(context.Background(), request_models.TourQuery{
		AreaCode:      "32",
		ContentTypeID: "12",
		NumOfRows:     "20",
		PageNo:        "1",
	})
	require.NoError(t, err)

	assert.Equal(t, "/areaBasedList2", got["path"])
	assert.Equal(t, "test-key", got["serviceKey"])
	assert.Equal(t, "ETC", got["MobileOS"])
	assert.Equal(t, "Ildanga", got["MobileApp"])
	assert.Equal(t, "json", got["_type"])
	assert.Equal(t, "P", got["arrange"])
	assert.Equal(t, "32", got["areaCode"])

	assert.True(t, resp.Success)
	assert.Empty(t, resp.Items)
}

func TestListAttractionsNearLocationUsesDistanceOrder(t *testing.T) {
	var gotArrange, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotArrange = r.URL.Query().Get("arrange")
		w.Write([]byte(`{"response": {"body": {"items": "", "totalCount": 0}}}`))
	}))
	defer server.Close()

	svc := NewTourServiceWithBaseURL("test-key", server.URL)
	_, err := svc.ListAttractionsNearLocation(context.Background(), request_models.TourQuery{
		MapX: "128.8961", MapY: "37.8043", Radius: "20000", ContentTypeID: "12", NumOfRows: "100",
	})
	require.NoError(t, err)

	assert.Equal(t, "/locationBasedList2", gotPath)
	assert.Equal(t, "E", gotArrange)
}

func TestTourXMLErrorIsSniffedAndExtracted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<OpenAPI_ServiceResponse>
	<cmmMsgHeader>
		<returnAuthMsg>SERVICE_KEY_IS_NOT_REGISTERED_ERROR</returnAuthMsg>
		<returnReasonCode>30</returnReasonCode>
	</cmmMsgHeader>
</OpenAPI_ServiceResponse>`))
	}))
	defer server.Close()

	svc := NewTourServiceWithBaseURL("unregistered-key", server.URL)
	resp, err := svc.SearchAttractionsByKeyword(context.Background(), request_models.TourQuery{Keyword: "경포대", NumOfRows: "20"})

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "TourAPI 오류: SERVICE_KEY_IS_NOT_REGISTERED_ERROR", resp.Error)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
}

func TestTourXMLErrorWithoutAuthMsgFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<OpenAPI_ServiceResponse><resultCode>22</resultCode></OpenAPI_ServiceResponse>`))
	}))
	defer server.Close()

	svc := NewTourServiceWithBaseURL("test-key", server.URL)
	resp, err := svc.ListAreaCodes(context.Background(), "")

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "TourAPI 오류: API 인증 오류", resp.Error)
}

func TestTourMalformedBodyBecomesParseFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": {`))
	}))
	defer server.Close()

	svc := NewTourServiceWithBaseURL("test-key", server.URL)
	resp, err := svc.GetAttractionDetail(context.Background(), "126508")

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "API 응답 파싱 오류", resp.Error)
}

func TestTourItemListIsNormalized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": {"body": {"items": {"item": [
			{"contentid": "126508", "contenttypeid": "12", "title": "경포대", "addr1": "강원특별자치도 강릉시", "mapx": "128.8961", "mapy": "37.8043"},
			{"contentid": "126509", "contenttypeid": "12", "title": "오죽헌", "addr1": "강원특별자치도 강릉시", "mapx": "128.8790", "mapy": "37.7792"}
		]}, "totalCount": 2}}}`))
	}))
	defer server.Close()

	svc := NewTourServiceWithBaseURL("test-key", server.URL)
	resp, err := svc.ListAttractionsByArea(context.Background(), request_models.TourQuery{AreaCode: "32", ContentTypeID: "12", NumOfRows: "20", PageNo: "1"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.TotalCount)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "126508", resp.Items[0].ID)
	assert.Equal(t, "경포대", resp.Items[0].Title)
	assert.Equal(t, 128.8961, resp.Items[0].MapX)
	assert.Equal(t, 37.8043, resp.Items[0].MapY)
}

func TestTourSingleItemIsWrappedIntoList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": {"body": {"items": {"item":
			{"contentid": "126508", "contenttypeid": "12", "title": "경포대", "mapx": "128.8961", "mapy": "37.8043"}
		}, "totalCount": 1}}}`))
	}))
	defer server.Close()

	svc := NewTourServiceWithBaseURL("test-key", server.URL)
	resp, err := svc.GetAttractionDetail(context.Background(), "126508")
	require.NoError(t, err)

	assert.True(t, resp.Success)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "경포대", resp.Items[0].Title)
}

func TestTourEmptyStringItemsMeansNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": {"body": {"items": "", "totalCount": 0}}}`))
	}))
	defer server.Close()

	svc := NewTourServiceWithBaseURL("test-key", server.URL)
	resp, err := svc.SearchAttractionsByKeyword(context.Background(), request_models.TourQuery{Keyword: "없는곳", NumOfRows: "20"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
}

func TestTourEmptyItemsForcesZeroTotalCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": {"body": {"items": "", "totalCount": 734}}}`))
	}))
	defer server.Close()

	svc := NewTourServiceWithBaseURL("test-key", server.URL)
	resp, err := svc.ListAttractionsByArea(context.Background(), request_models.TourQuery{AreaCode: "32", ContentTypeID: "12", NumOfRows: "20", PageNo: "1"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Zero(t, resp.TotalCount)
	assert.Empty(t, resp.Items)
}
