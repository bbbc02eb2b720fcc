package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"ildanga/internal/models/db_models"
	"ildanga/internal/models/request_models"
	"ildanga/internal/models/response_models"
	"ildanga/pkg/utils"
)

// TourAPI KorService2 (version 2) base.
const tourAPIBase = "http://apis.data.go.kr/B551011/KorService2"

// TourKeyGuide is returned verbatim when the TourAPI credential is absent.
var TourKeyGuide = response_models.KeyGuide{
	Title: "🔑 TourAPI 서비스 키 발급 방법",
	Steps: []string{
		"1. data.go.kr 접속 후 회원가입/로그인",
		"2. \"한국관광공사_국문 관광정보 서비스\" 검색",
		"3. 활용신청 클릭 후 승인 대기",
		"4. 마이페이지에서 일반 인증키(Decoding) 복사",
		"5. 환경변수에 TOUR_API_KEY=키값 추가",
	},
	URL: "https://www.data.go.kr/data/15101578/openapi.do",
}

var returnAuthMsgPattern = regexp.MustCompile(`<returnAuthMsg>([^<]+)</returnAuthMsg>`)

// TourServiceInterface proxies the TourAPI attraction listings. The upstream
// answers JSON on success but XML on auth/quota errors, so every response body
// is sniffed before parsing.
type TourServiceInterface interface {
	ListAttractionsByArea(ctx context.Context, q request_models.TourQuery) (*response_models.TourListResponse, error)
	ListAttractionsNearLocation(ctx context.Context, q request_models.TourQuery) (*response_models.TourListResponse, error)
	SearchAttractionsByKeyword(ctx context.Context, q request_models.TourQuery) (*response_models.TourListResponse, error)
	GetAttractionDetail(ctx context.Context, contentID string) (*response_models.TourListResponse, error)
	ListAreaCodes(ctx context.Context, areaCode string) (*response_models.TourListResponse, error)
}

type TourService struct {
	httpClient *http.Client
	baseURL    string
	serviceKey string
}

func NewTourService(serviceKey string) TourServiceInterface {
	return &TourService{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    tourAPIBase,
		serviceKey: serviceKey,
	}
}

// NewTourServiceWithBaseURL exists for tests against a fake upstream.
func NewTourServiceWithBaseURL(serviceKey, baseURL string) TourServiceInterface {
	return &TourService{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		serviceKey: serviceKey,
	}
}

func (s *TourService) baseParams() url.Values {
	params := url.Values{}
	params.Set("serviceKey", s.serviceKey)
	params.Set("MobileOS", "ETC")
	params.Set("MobileApp", "Ildanga")
	params.Set("_type", "json")
	return params
}

func (s *TourService) ListAttractionsByArea(ctx context.Context, q request_models.TourQuery) (*response_models.TourListResponse, error) {
	if s.serviceKey == "" {
		return nil, utils.ErrMissingAPIKey
	}

	params := s.baseParams()
	params.Set("areaCode", q.AreaCode)
	params.Set("contentTypeId", q.ContentTypeID)
	params.Set("numOfRows", q.NumOfRows)
	params.Set("pageNo", q.PageNo)
	params.Set("arrange", "P")
	if q.SigunguCode != "" {
		params.Set("sigunguCode", q.SigunguCode)
	}

	return s.call(ctx, "/areaBasedList2", params)
}

func (s *TourService) ListAttractionsNearLocation(ctx context.Context, q request_models.TourQuery) (*response_models.TourListResponse, error) {
	if s.serviceKey == "" {
		return nil, utils.ErrMissingAPIKey
	}

	params := s.baseParams()
	params.Set("mapX", q.MapX)
	params.Set("mapY", q.MapY)
	params.Set("radius", q.Radius)
	params.Set("contentTypeId", q.ContentTypeID)
	params.Set("numOfRows", q.NumOfRows)
	params.Set("arrange", "E")

	return s.call(ctx, "/locationBasedList2", params)
}

func (s *TourService) SearchAttractionsByKeyword(ctx context.Context, q request_models.TourQuery) (*response_models.TourListResponse, error) {
	if s.serviceKey == "" {
		return nil, utils.ErrMissingAPIKey
	}

	params := s.baseParams()
	params.Set("keyword", q.Keyword)
	params.Set("numOfRows", q.NumOfRows)
	if q.ContentTypeID != "" {
		params.Set("contentTypeId", q.ContentTypeID)
	}

	return s.call(ctx, "/searchKeyword2", params)
}

func (s *TourService) GetAttractionDetail(ctx context.Context, contentID string) (*response_models.TourListResponse, error) {
	if s.serviceKey == "" {
		return nil, utils.ErrMissingAPIKey
	}

	params := s.baseParams()
	params.Set("contentId", contentID)
	params.Set("defaultYN", "Y")
	params.Set("firstImageYN", "Y")
	params.Set("areacodeYN", "Y")
	params.Set("catcodeYN", "Y")
	params.Set("addrinfoYN", "Y")
	params.Set("mapinfoYN", "Y")
	params.Set("overviewYN", "Y")

	return s.call(ctx, "/detailCommon2", params)
}

func (s *TourService) ListAreaCodes(ctx context.Context, areaCode string) (*response_models.TourListResponse, error) {
	if s.serviceKey == "" {
		return nil, utils.ErrMissingAPIKey
	}

	params := s.baseParams()
	params.Set("numOfRows", "100")
	if areaCode != "" {
		params.Set("areaCode", areaCode)
	}

	return s.call(ctx, "/areaCode2", params)
}

// tourItem is the strict schema of one KorService2 list item. Coordinates
// arrive as strings.
type tourItem struct {
	ContentID     string `json:"contentid"`
	ContentTypeID string `json:"contenttypeid"`
	Title         string `json:"title"`
	Addr1         string `json:"addr1"`
	Addr2         string `json:"addr2"`
	Tel           string `json:"tel"`
	FirstImage    string `json:"firstimage"`
	FirstImage2   string `json:"firstimage2"`
	MapX          string `json:"mapx"`
	MapY          string `json:"mapy"`
	Overview      string `json:"overview"`
}

type tourEnvelope struct {
	Response struct {
		Body struct {
			Items      json.RawMessage `json:"items"`
			TotalCount int             `json:"totalCount"`
		} `json:"body"`
	} `json:"response"`
}

func (s *TourService) call(ctx context.Context, path string, params url.Values) (*response_models.TourListResponse, error) {
	apiURL := s.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamRequest, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamRequest, err)
	}
	text := string(body)

	// The upstream answers XML on auth or quota failures regardless of the
	// requested _type, so sniff before touching the JSON parser.
	if strings.HasPrefix(text, "<?xml") ||
		strings.Contains(text, "<OpenAPI_ServiceResponse>") ||
		strings.Contains(text, "<resultCode>") {
		log.Printf("TourAPI returned XML error: %.500s", text)
		errorMsg := "API 인증 오류"
		if m := returnAuthMsgPattern.FindStringSubmatch(text); m != nil {
			errorMsg = m[1]
		}
		return &response_models.TourListResponse{
			Success: false,
			Error:   "TourAPI 오류: " + errorMsg,
			Items:   []db_models.Attraction{},
		}, nil
	}

	var envelope tourEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Printf("TourAPI JSON parse error: %.300s", text)
		return &response_models.TourListResponse{
			Success: false,
			Error:   "API 응답 파싱 오류",
			Items:   []db_models.Attraction{},
		}, nil
	}

	items := decodeTourItems(envelope.Response.Body.Items)

	// An empty items node reports zero results regardless of the upstream count.
	totalCount := envelope.Response.Body.TotalCount
	if len(items) == 0 {
		totalCount = 0
	}

	out := &response_models.TourListResponse{
		Success:    true,
		TotalCount: totalCount,
		Items:      make([]db_models.Attraction, 0, len(items)),
	}
	for _, item := range items {
		out.Items = append(out.Items, db_models.Attraction{
			ID:            item.ContentID,
			ContentID:     item.ContentID,
			ContentTypeID: item.ContentTypeID,
			Title:         item.Title,
			Addr1:         item.Addr1,
			Addr2:         item.Addr2,
			Tel:           item.Tel,
			FirstImage:    item.FirstImage,
			FirstImage2:   item.FirstImage2,
			MapX:          parseCoordinate(item.MapX),
			MapY:          parseCoordinate(item.MapY),
			Overview:      item.Overview,
		})
	}
	return out, nil
}

// decodeTourItems unwraps response.body.items.item, which may be an array, a
// single object, or an empty string when there are no results.
func decodeTourItems(raw json.RawMessage) []tourItem {
	if len(raw) == 0 {
		return nil
	}

	var wrapper struct {
		Item json.RawMessage `json:"item"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil || len(wrapper.Item) == 0 {
		return nil
	}

	var list []tourItem
	if err := json.Unmarshal(wrapper.Item, &list); err == nil {
		return list
	}

	var single tourItem
	if err := json.Unmarshal(wrapper.Item, &single); err == nil {
		return []tourItem{single}
	}
	return nil
}
