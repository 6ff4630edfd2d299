package api

// Risk is one concern the service found in the document.
type Risk struct {
	RiskLevel   string `json:"risk_level" yaml:"risk_level"`
	Description string `json:"description" yaml:"description"`
}

// DocumentAnalysis is the service's result for one uploaded document.
// The client never edits it; a new upload replaces it wholesale.
type DocumentAnalysis struct {
	SessionID           string `json:"session_id" yaml:"session_id"`
	OriginalText        string `json:"original_text" yaml:"original_text"`
	SimplifiedText      string `json:"simplified_text" yaml:"simplified_text"`
	Risks               []Risk `json:"risks" yaml:"risks"`
	DocumentHealthScore int    `json:"document_health_score" yaml:"document_health_score"`
}

type QARequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
}

type QAResponse struct {
	Answer string `json:"answer"`
}

type TranslateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}

type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
}

// Document is a file picked for upload.
type Document struct {
	Name  string
	Data  []byte
	Pages int
}
