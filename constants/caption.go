package constants

// SurveyMarker is the label printed before a record code on a survey sheet.
const SurveyMarker = "조사번호"

// CaptionKeywords gate caption candidates: a fragment must contain at least one.
var CaptionKeywords = []string{
	"분포지도", // distribution map
	"사진",   // photo
	"전경",   // overview
	"산출",   // outcrop
	"위치",   // location
	"단면도",  // cross-section
	"동굴",   // cave
}

// BoilerplateLabels are form labels and headers; any line containing one is never a caption.
var BoilerplateLabels = []string{
	"지질유산 분포지도 구축",
	"지질유산 현장 조사표",
	"조사번호",
	"지질유산명",
	"유형 분류",
	"문 헌 명",
	"문헌명",
	"참고자료",
	"기존자료",
	"페이지",
	"소속 및 연락처",
}

// DefaultCaptionKeywords returns a copy safe to hand to config defaults.
func DefaultCaptionKeywords() []string {
	return append([]string(nil), CaptionKeywords...)
}

// DefaultBoilerplateLabels returns a copy safe to hand to config defaults.
func DefaultBoilerplateLabels() []string {
	return append([]string(nil), BoilerplateLabels...)
}
