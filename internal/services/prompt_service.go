package services

import (
	"fmt"
	"strings"

	"ildanga/internal/models/db_models"
	"ildanga/pkg/utils"
)

// Fixed labels for each trip style; an unset style renders as free travel.
var tripStyleLabels = map[db_models.TripStyle]string{
	db_models.TripStyleRelaxed: "여유롭게 (휴양 위주) 🌿",
	db_models.TripStyleNormal:  "적당히 (밸런스형) ⚖️",
	db_models.TripStylePacked:  "알차게 (바쁘게) 🏃‍♂️",
}

const defaultStyleLabel = "자유 여행"

const (
	emptyAttractionsPlaceholder = "(선택한 관광지 없음)"
	emptyRestaurantsPlaceholder = "(선택한 맛집 없음)"
)

// PromptServiceInterface synthesizes the copyable planning prompt from a
// session snapshot. Pure and idempotent: identical snapshots yield
// byte-identical text.
type PromptServiceInterface interface {
	BuildPrompt(session db_models.TripSession) (string, error)
}

type PromptService struct{}

func NewPromptService() PromptServiceInterface {
	return &PromptService{}
}

func TripStyleLabel(style db_models.TripStyle) string {
	if label, ok := tripStyleLabels[style]; ok {
		return label
	}
	return defaultStyleLabel
}

func (p *PromptService) BuildPrompt(session db_models.TripSession) (string, error) {
	if session.Destination == nil {
		return "", utils.ErrNoDestination
	}

	dest := session.Destination
	duration := session.Duration
	styleLabel := TripStyleLabel(session.TripStyle)

	attractionLines := make([]string, 0, len(session.SelectedAttractions))
	for i, a := range session.SelectedAttractions {
		attractionLines = append(attractionLines, fmt.Sprintf("%d. %s (%s)", i+1, a.Title, a.Addr1))
	}
	attractionsList := strings.Join(attractionLines, "\n")
	if attractionsList == "" {
		attractionsList = emptyAttractionsPlaceholder
	}

	restaurantLines := make([]string, 0, len(session.SelectedRestaurants))
	for i, r := range session.SelectedRestaurants {
		restaurantLines = append(restaurantLines, fmt.Sprintf("%d. %s (%s, %s)", i+1, r.PlaceName, r.CategoryName, r.AddressName))
	}
	restaurantsList := strings.Join(restaurantLines, "\n")
	if restaurantsList == "" {
		restaurantsList = emptyRestaurantsPlaceholder
	}

	sloganPart := ""
	if dest.Slogan != "" {
		sloganPart = fmt.Sprintf("(\"%s\")", dest.Slogan)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# [%s] %d박 %d일 여행 계획 요청\n\n", dest.Name, duration-1, duration)

	b.WriteString("## 1. 여행 개요\n")
	fmt.Fprintf(&b, "- **여행지**: %s %s\n", dest.Name, sloganPart)
	fmt.Fprintf(&b, "- **여행 기간**: %d박 %d일\n", duration-1, duration)
	fmt.Fprintf(&b, "- **여행 스타일**: %s\n\n", styleLabel)

	b.WriteString("## 2. 선택한 장소\n")
	fmt.Fprintf(&b, "### 🏛️ 관광지 (%d곳)\n%s\n\n", len(session.SelectedAttractions), attractionsList)
	fmt.Fprintf(&b, "### 🍽️ 맛집 (%d곳)\n%s\n\n", len(session.SelectedRestaurants), restaurantsList)

	b.WriteString(`## 3. 요청 사항
위 정보를 바탕으로 다음 내용을 포함한 여행 계획 문서(Markdown)와 프레젠테이션(PPT) 구성안을 생성해주세요.

1. **상세 여행 일정표 (Markdown Table)**
   - 시간대별 최적의 동선 (이동 시간 포함)
   - 각 장소에서의 예상 체류 시간 및 활동 내용
   - 식사 시간 배분 (맛집 동선 고려)

2. **일자별 상세 가이드**
   - 각 장소 방문 시 유용한 꿀팁
   - 사진 찍기 좋은 포인트
   - 추천 메뉴 및 예산 (대략적)

3. **프레젠테이션 페이지 구성안**
   - 슬라이드 1: 표지 (제목, 기간, 컨셉)
   - 슬라이드 2: 여행 코스 요약 (지도 동선)
   - 슬라이드 3~N: 일차별 상세 일정 및 사진
   - 마지막 슬라이드: 예산 및 준비물 체크리스트

`)
	fmt.Fprintf(&b, "여행 스타일(%s)에 맞춰서, 너무 빡빡하지 않고 즐길 수 있는 현실적인 일정으로 제안해서 작성해주세요.", styleLabel)

	return b.String(), nil
}
