package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ildanga/internal/models/request_models"
	"ildanga/internal/models/response_models"
	"ildanga/pkg/utils"
)

// GeminiKeyGuide is returned verbatim when the generation credential is
// absent.
var GeminiKeyGuide = response_models.KeyGuide{
	Title: "🔑 Gemini API 키 발급 방법",
	Steps: []string{
		"1. aistudio.google.com 접속",
		"2. Google 계정으로 로그인",
		"3. 좌측 메뉴에서 \"Get API key\" 클릭",
		"4. \"Create API key\" 클릭",
		"5. 생성된 API 키 복사",
		"6. 환경변수에 GEMINI_API_KEY=키값 추가",
	},
	URL: "https://aistudio.google.com/app/apikey",
}

// PlanServiceInterface turns a trip summary into generated plan text via the
// configured AI provider.
type PlanServiceInterface interface {
	GeneratePlanText(ctx context.Context, req request_models.GeneratePlanRequest) (*response_models.PlanResponse, error)
}

type PlanService struct {
	planClient utils.PlanClientInterface
}

func NewPlanService(planClient utils.PlanClientInterface) PlanServiceInterface {
	return &PlanService{
		planClient: planClient,
	}
}

func (p *PlanService) GeneratePlanText(ctx context.Context, req request_models.GeneratePlanRequest) (*response_models.PlanResponse, error) {
	prompt := BuildPlanInstruction(req)

	text, err := p.planClient.GeneratePlan(ctx, prompt)
	if err != nil {
		if errors.Is(err, utils.ErrMissingAPIKey) {
			return nil, utils.ErrMissingAPIKey
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamRequest, err)
	}

	return &response_models.PlanResponse{
		Success: true,
		Plan:    text,
	}, nil
}

// FormatTripLength renders a duration in the conventional Korean form:
// 당일치기 for a day trip, otherwise "N박 N+1일".
func FormatTripLength(duration int) string {
	if duration == 1 {
		return "당일치기"
	}
	return fmt.Sprintf("%d박 %d일", duration-1, duration)
}

// BuildPlanInstruction assembles the fixed instruction sent to the generative
// upstream. The template is deliberately frozen; the model receives the same
// structure for every trip.
func BuildPlanInstruction(req request_models.GeneratePlanRequest) string {
	attractionLines := make([]string, 0, len(req.Attractions))
	for i, a := range req.Attractions {
		attractionLines = append(attractionLines, fmt.Sprintf("%d. %s - %s", i+1, a.Title, a.Addr1))
	}

	restaurantLines := make([]string, 0, len(req.Restaurants))
	for i, r := range req.Restaurants {
		restaurantLines = append(restaurantLines, fmt.Sprintf("%d. %s (%s) - %s", i+1, r.PlaceName, r.CategoryName, r.AddressName))
	}

	var b strings.Builder
	b.WriteString("당신은 국내 여행 전문가입니다. 아래 정보를 바탕으로 상세한 여행 계획서를 작성해주세요.\n\n")

	b.WriteString("## 여행 정보\n")
	fmt.Fprintf(&b, "- 여행지: %s (%s)\n", req.Destination.Name, req.Destination.Province)
	fmt.Fprintf(&b, "- 슬로건: %s\n", req.Destination.Slogan)
	fmt.Fprintf(&b, "- 특징: %s\n", strings.Join(req.Destination.Highlights, ", "))
	fmt.Fprintf(&b, "- 여행 기간: %s\n\n", FormatTripLength(req.Duration))

	fmt.Fprintf(&b, "## 선택한 관광지 (%d곳)\n", len(req.Attractions))
	b.WriteString(strings.Join(attractionLines, "\n"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "## 선택한 맛집 (%d곳)\n", len(req.Restaurants))
	b.WriteString(strings.Join(restaurantLines, "\n"))
	b.WriteString("\n\n")

	b.WriteString("## 작성 요청\n")
	fmt.Fprintf(&b, "위 정보를 기반으로 %d일간의 상세 여행 일정을 작성해주세요.\n\n", req.Duration)

	b.WriteString(`### 형식 요구사항:
1. **일차별 제목**: "### 1일차: [테마 제목]" 형식으로 작성
2. **타임라인**: 각 일정은 시간대별로 작성
   - 🕘 시간: **10:00 ~ 11:30** 형식으로 체류 시간 또는 활동 시간을 범위로 명시 (볼드체)
   - 📍 장소: **[장소명]** 형식
   - 🚗 이동: **11:30 이동**: [이동 수단] (약 00분 소요) 형식으로 출발 시간 명시
   - 🍚 식사: 식당 이름 및 메뉴 추천
   - 💡 팁: 유용한 팁은 별도 항목으로 작성
3. **가독성**: 긴 줄글보다는 불렛 포인트(- )를 활용하여 간결하게 작성
4. **스타일**:
   - 구분선(---, ***)은 사용하지 마세요.
   - 각 장소나 활동 사이에 빈 줄을 넣어 여백 확보
   - 중요 키워드는 **볼드체**로 강조
5. 한국어로 작성
6. Markdown 형식으로 작성

**작성 예시:**

### 1일차: 강릉의 바다와 커피 즐기기

- 🕘 **10:00 ~ 11:30** 📍 **[강문해변]**
  - 바다가 보이는 포토존에서 사진 촬영
  - 해변 산책로 걷기
  - 💡 팁: 아침 햇살이 좋을 때 사진이 가장 잘 나옵니다.

- 🚗 **11:30 이동**: 택시 이용 (약 10분 소요)

- 🕘 **11:40 ~ 12:40** 🍚 **[동화가든]**
  - 강릉의 대표 메뉴 짬뽕순두부 식사
  - 💡 팁: 웨이팅이 길 수 있으니 테이블링 앱 활용 추천

(이어서 작성)

일정은 현실적이고 여유로운 계획이 되도록 해주세요.`)

	return b.String()
}
