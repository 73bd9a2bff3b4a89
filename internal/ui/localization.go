package ui

import "github.com/ytget/yt-downloader-lite/internal/controller"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Supported language codes
const (
	LangEnglish = "en"
	LangKorean  = "ko"
)

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyInputGroup         = "input_group"
	KeyStatusGroup        = "status_group"
	KeyLogGroup           = "log_group"
	KeyURL                = "url"
	KeyEnterURL           = "enter_url"
	KeyDestination        = "destination"
	KeyDestinationHint    = "destination_hint"
	KeyBrowse             = "browse"
	KeyStart              = "start"
	KeyOpenFolder         = "open_folder"
	KeyMergeFound         = "merge_found"
	KeyMergeMissing       = "merge_missing"
	KeyMergeInstallLink   = "merge_install_link"
	KeyInputError         = "input_error"
	KeyErrorOpeningFolder = "error_opening_folder"

	KeyReady              = "ready"
	KeyStarting           = "starting"
	KeyDone               = "done"
	KeyFailed             = "failed"
	KeyProgressFormat     = "progress_format"
	KeyFailedLogFormat    = "failed_log_format"
	KeyEmptySource        = "empty_source"
	KeyEmptyDestination   = "empty_destination"
	KeyInvalidDestination = "invalid_destination"
	KeyJobActive          = "job_active"
	KeyCollectingInfo     = "collecting_info"
	KeyMerging            = "merging"
	KeyWarningPrefix      = "warning_prefix"
	KeyErrorPrefix        = "error_prefix"
)

// NewLocalization creates a localization manager set to English
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage switches the current language; unknown codes are ignored
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts[LangEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns the language codes with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangEnglish: "English",
		LangKorean:  "한국어",
	}
}

// Messages returns the controller texts in the current language
func (l *Localization) Messages() controller.Messages {
	msgs := controller.DefaultMessages()
	msgs.Ready = l.GetText(KeyReady)
	msgs.Starting = l.GetText(KeyStarting)
	msgs.Done = l.GetText(KeyDone)
	msgs.Failed = l.GetText(KeyFailed)
	msgs.ProgressFormat = l.GetText(KeyProgressFormat)
	msgs.FailedLogFormat = l.GetText(KeyFailedLogFormat)
	msgs.EmptySource = l.GetText(KeyEmptySource)
	msgs.EmptyDestination = l.GetText(KeyEmptyDestination)
	msgs.InvalidDestination = l.GetText(KeyInvalidDestination)
	msgs.JobActive = l.GetText(KeyJobActive)
	msgs.CollectingInfo = l.GetText(KeyCollectingInfo)
	msgs.Merging = l.GetText(KeyMerging)
	msgs.WarningPrefix = l.GetText(KeyWarningPrefix)
	msgs.ErrorPrefix = l.GetText(KeyErrorPrefix)
	return msgs
}

func (l *Localization) initializeTexts() {
	l.texts[LangEnglish] = map[string]string{
		KeyAppTitle:           "YouTube Downloader",
		KeyInputGroup:         "Input",
		KeyStatusGroup:        "Status",
		KeyLogGroup:           "Log",
		KeyURL:                "URL",
		KeyEnterURL:           "Video or playlist URL",
		KeyDestination:        "Save to",
		KeyDestinationHint:    "Download folder",
		KeyBrowse:             "Browse",
		KeyStart:              "Start download",
		KeyOpenFolder:         "Open folder",
		KeyMergeFound:         "ffmpeg detected: merging into mp4",
		KeyMergeMissing:       "ffmpeg not found: saving single streams only.",
		KeyMergeInstallLink:   "Download FFmpeg for Windows",
		KeyInputError:         "Input error",
		KeyErrorOpeningFolder: "Could not open folder",

		KeyReady:              "Ready",
		KeyStarting:           "Starting",
		KeyDone:               "Done",
		KeyFailed:             "Error",
		KeyProgressFormat:     "Progress %d%%",
		KeyFailedLogFormat:    "Error: %s",
		KeyEmptySource:        "Please enter a URL.",
		KeyEmptyDestination:   "Please choose a download folder.",
		KeyInvalidDestination: "The download folder is not a valid directory.",
		KeyJobActive:          "A download is already running.",
		KeyCollectingInfo:     "Collecting video information",
		KeyMerging:            "merging",
		KeyWarningPrefix:      "WARNING: ",
		KeyErrorPrefix:        "ERROR: ",
	}

	l.texts[LangKorean] = map[string]string{
		KeyAppTitle:           "YouTube 다운로더",
		KeyInputGroup:         "입력",
		KeyStatusGroup:        "상태",
		KeyLogGroup:           "로그",
		KeyURL:                "URL",
		KeyEnterURL:           "유튜브 영상 또는 재생목록 URL",
		KeyDestination:        "저장 위치",
		KeyDestinationHint:    "다운로드 폴더",
		KeyBrowse:             "폴더 선택",
		KeyStart:              "다운로드 시작",
		KeyOpenFolder:         "폴더 열기",
		KeyMergeFound:         "ffmpeg 감지됨: mp4 병합 사용",
		KeyMergeMissing:       "ffmpeg 미감지: 단일 스트림으로 저장됨",
		KeyMergeInstallLink:   "Windows FFmpeg 다운로드",
		KeyInputError:         "입력 오류",
		KeyErrorOpeningFolder: "폴더를 열 수 없습니다",

		KeyReady:              "대기 중",
		KeyStarting:           "시작 중",
		KeyDone:               "완료",
		KeyFailed:             "오류",
		KeyProgressFormat:     "진행률 %d%%",
		KeyFailedLogFormat:    "오류: %s",
		KeyEmptySource:        "URL을 입력하세요.",
		KeyEmptyDestination:   "다운로드 폴더를 선택하세요.",
		KeyInvalidDestination: "유효한 폴더가 아닙니다.",
		KeyJobActive:          "이미 다운로드가 진행 중입니다.",
		KeyCollectingInfo:     "정보 수집 중",
		KeyMerging:            "병합 중",
		KeyWarningPrefix:      "경고: ",
		KeyErrorPrefix:        "오류: ",
	}
}
