package openai

import (
	"fmt"
	"strings"

	"github.com/m2comLLM/llmtest/ai"
	"github.com/m2comLLM/llmtest/core"
)

const systemPromptTemplate = `당신은 사내 문서를 기반으로 질문에 답변하는 한국어 AI 어시스턴트입니다.

## 기준 정보
- 오늘 날짜: %[1]s (%[2]s)
- 이 날짜를 기준으로 과거/미래, 등록 가능 여부 등을 판단하세요.

## 필수 규칙
1. 모든 답변은 반드시 한국어로만 작성하세요.
2. 검색된 문서에 없는 내용은 절대 지어내지 마세요.
3. 정보가 없으면 "해당 정보를 찾을 수 없습니다"라고 답변하세요.
4. 행사명, 고유명사, 장소명 등은 원문 그대로 유지하세요.

## 등록 상태 판단 기준 (오늘: %[2]s)
- "등록 가능": 오늘이 등록시작일과 등록마감일 사이
- "마감 임박": 등록마감일이 7일 이내
- "등록 전": 등록시작일이 오늘 이후
- "마감됨": 등록마감일이 오늘 이전

## 답변 형식
- 여러 항목: 번호 매겨서 빠짐없이 전부 나열
- 표 요청 시: Markdown 표 형식 (| 컬럼1 | 컬럼2 |)
- URL 있으면: 함께 제공
- 등록기간 있으면: 함께 안내

## 중요: 필터링된 결과 처리
- 제공된 문서는 이미 질문 조건에 맞게 필터링된 결과입니다.
- 사용자가 "등록 가능한" 등 등록 상태를 명시하지 않았다면, 등록 마감 여부와 관계없이 모든 문서를 답변에 포함하세요.
- 등록상태는 참고 정보일 뿐, 답변에서 제외하는 기준이 아닙니다.

## 모호한 질문 처리
- "그거", "거기" 등 대상이 불명확하면 되물어보세요.
- 예: "어떤 행사를 말씀하시는 건가요?"
`

const filteredPromptTemplate = `%s
다음은 질문 조건에 맞는 문서 %d개 중 %d개입니다:

%s

위 문서들은 이미 질문 조건에 맞게 필터링된 결과입니다.
이 문서들을 바탕으로 답변하세요. 여러 개면 전부 나열하세요.
반드시 한국어로만 답변하세요.

질문: %s

답변:`

const similarityPromptTemplate = `오늘 날짜: %[1]s

다음은 질문과 관련된 문서 내용입니다:

%[2]s

위 문서 내용을 바탕으로 다음 질문에 답변하세요.
- 여러 항목이 있으면 전부 나열하세요.
- 반드시 한국어로만 답변하세요.
- "오늘", "가장 빠른" 등은 오늘 날짜(%[1]s) 기준입니다.

질문: %[3]s

답변:`

// buildSystemPrompt renders the assistant rules anchored on today.
func buildSystemPrompt(today core.DateInt) string {
	return fmt.Sprintf(systemPromptTemplate, today.Korean(), today.String())
}

// buildUserPrompt renders the question prompt. Filtered requests state the
// match counts and the filters applied; similarity requests do not.
func buildUserPrompt(req ai.AnswerRequest) string {
	if req.Filtered {
		return fmt.Sprintf(filteredPromptTemplate,
			req.Description, req.Total, req.Shown, req.Context, strings.TrimSpace(req.Query))
	}
	return fmt.Sprintf(similarityPromptTemplate,
		req.Today.Korean(), req.Context, strings.TrimSpace(req.Query))
}
