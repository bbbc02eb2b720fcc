package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ildanga/internal/models/db_models"
	"ildanga/internal/models/request_models"
	"ildanga/internal/models/response_models"
	"ildanga/pkg/utils"
)

const kakaoLocalAPI = "https://dapi.kakao.com/v2/local"

// KakaoKeyGuide is returned verbatim when the Kakao credential is absent.
var KakaoKeyGuide = response_models.KeyGuide{
	Title: "🔑 카카오 REST API 키 발급 방법",
	Steps: []string{
		"1. developers.kakao.com 접속",
		"2. 카카오 계정으로 로그인",
		"3. 상단 \"앱\" 메뉴 클릭",
		"4. \"애플리케이션 추가하기\" 클릭",
		"5. 앱 이름, 회사명 등 입력 후 저장",
		"6. 생성된 앱 클릭 → \"앱 키\"에서 REST API 키 복사",
		"7. 환경변수에 KAKAO_API_KEY=키값 추가",
	},
	URL: "https://developers.kakao.com/console/app",
}

// PlacesServiceInterface proxies the Kakao Local API. Every reply is the
// uniform PlaceSearchResponse; a sentinel error distinguishes configuration
// and client-input failures from plain success:false payloads.
type PlacesServiceInterface interface {
	SearchPlacesByKeyword(ctx context.Context, q request_models.PlaceKeywordQuery) (*response_models.PlaceSearchResponse, error)
	SearchPlacesByCategory(ctx context.Context, q request_models.PlaceCategoryQuery) (*response_models.PlaceSearchResponse, error)
	SearchAddress(ctx context.Context, query string) (*response_models.PlaceSearchResponse, error)
	Coord2Address(ctx context.Context, x, y string) (*response_models.PlaceSearchResponse, error)
}

type PlacesService struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewPlacesService(apiKey string) PlacesServiceInterface {
	return &PlacesService{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    kakaoLocalAPI,
		apiKey:     apiKey,
	}
}

// NewPlacesServiceWithBaseURL exists for tests against a fake upstream.
func NewPlacesServiceWithBaseURL(apiKey, baseURL string) PlacesServiceInterface {
	return &PlacesService{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// kakaoDocument is the strict schema of one Kakao Local document. Upstream
// sends every field as a string.
type kakaoDocument struct {
	ID                string `json:"id"`
	PlaceName         string `json:"place_name"`
	CategoryName      string `json:"category_name"`
	CategoryGroupCode string `json:"category_group_code"`
	CategoryGroupName string `json:"category_group_name"`
	Phone             string `json:"phone"`
	AddressName       string `json:"address_name"`
	RoadAddressName   string `json:"road_address_name"`
	X                 string `json:"x"`
	Y                 string `json:"y"`
	PlaceURL          string `json:"place_url"`
	Distance          string `json:"distance"`
}

type kakaoEnvelope struct {
	Documents []kakaoDocument `json:"documents"`
	Meta      *struct {
		TotalCount    int  `json:"total_count"`
		PageableCount int  `json:"pageable_count"`
		IsEnd         bool `json:"is_end"`
	} `json:"meta"`
	// Error envelope fields; presence of either marks a semantic failure.
	ErrorType string `json:"errorType"`
	Code      int    `json:"code"`
	Message   string `json:"message"`
}

func (s *PlacesService) SearchPlacesByKeyword(ctx context.Context, q request_models.PlaceKeywordQuery) (*response_models.PlaceSearchResponse, error) {
	if s.apiKey == "" {
		return nil, utils.ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("query", q.Query)
	if q.X != "" && q.Y != "" {
		params.Set("x", q.X)
		params.Set("y", q.Y)
		params.Set("radius", q.Radius)
	}
	params.Set("page", q.Page)
	params.Set("size", q.Size)
	params.Set("sort", q.Sort)

	return s.call(ctx, "/search/keyword.json", params)
}

func (s *PlacesService) SearchPlacesByCategory(ctx context.Context, q request_models.PlaceCategoryQuery) (*response_models.PlaceSearchResponse, error) {
	if s.apiKey == "" {
		return nil, utils.ErrMissingAPIKey
	}
	// Category search is coordinate-based; reject before any upstream call.
	if q.X == "" || q.Y == "" {
		return nil, utils.ErrMissingCoordinates
	}

	params := url.Values{}
	params.Set("category_group_code", q.Category)
	params.Set("x", q.X)
	params.Set("y", q.Y)
	params.Set("radius", q.Radius)
	params.Set("page", q.Page)
	params.Set("size", q.Size)
	params.Set("sort", q.Sort)

	return s.call(ctx, "/search/category.json", params)
}

func (s *PlacesService) SearchAddress(ctx context.Context, query string) (*response_models.PlaceSearchResponse, error) {
	if s.apiKey == "" {
		return nil, utils.ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("query", query)
	return s.call(ctx, "/search/address.json", params)
}

func (s *PlacesService) Coord2Address(ctx context.Context, x, y string) (*response_models.PlaceSearchResponse, error) {
	if s.apiKey == "" {
		return nil, utils.ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("x", x)
	params.Set("y", y)
	return s.call(ctx, "/geo/coord2address.json", params)
}

// call issues the single outbound request and normalizes the reply. No
// retries, no caching; a failure surfaces immediately with an empty item list.
func (s *PlacesService) call(ctx context.Context, path string, params url.Values) (*response_models.PlaceSearchResponse, error) {
	apiURL := s.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamRequest, err)
	}
	req.Header.Set("Authorization", "KakaoAK "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamRequest, err)
	}

	var envelope kakaoEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &response_models.PlaceSearchResponse{
			Success: false,
			Error:   "API 응답 파싱 오류",
			Items:   []db_models.Restaurant{},
		}, nil
	}

	if envelope.ErrorType != "" || envelope.Code != 0 {
		log.Printf("Kakao API error: type=%s code=%d message=%s", envelope.ErrorType, envelope.Code, envelope.Message)
		message := envelope.Message
		if message == "" {
			message = "API 호출 중 오류가 발생했습니다"
		}
		return &response_models.PlaceSearchResponse{
			Success: false,
			Error:   message,
			Items:   []db_models.Restaurant{},
		}, nil
	}

	items := make([]db_models.Restaurant, 0, len(envelope.Documents))
	for _, doc := range envelope.Documents {
		items = append(items, db_models.Restaurant{
			ID:                doc.ID,
			PlaceName:         doc.PlaceName,
			CategoryName:      doc.CategoryName,
			CategoryGroupCode: doc.CategoryGroupCode,
			CategoryGroupName: doc.CategoryGroupName,
			Phone:             doc.Phone,
			AddressName:       doc.AddressName,
			RoadAddressName:   doc.RoadAddressName,
			X:                 parseCoordinate(doc.X),
			Y:                 parseCoordinate(doc.Y),
			PlaceURL:          doc.PlaceURL,
			Distance:          doc.Distance,
		})
	}

	out := &response_models.PlaceSearchResponse{
		Success: true,
		Items:   items,
	}
	if envelope.Meta != nil {
		out.Meta = &response_models.PlaceSearchMeta{
			TotalCount:    envelope.Meta.TotalCount,
			PageableCount: envelope.Meta.PageableCount,
			IsEnd:         envelope.Meta.IsEnd,
		}
	}
	return out, nil
}

func parseCoordinate(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
