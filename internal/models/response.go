package models

// Bundle sources reported by the generation endpoint. The tag names the
// actual producer of the files: a parse failure of upstream output is
// reported as fallback even when the transport call succeeded.
const (
	SourceOpenRouter = "openrouter"
	SourceFallback   = "fallback"
)

type GenerateResponse struct {
	Source string      `json:"source"`
	Files  FilesBundle `json:"files"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type MetaResponse struct {
	AppTypes  []string `json:"appTypes"`
	Templates []string `json:"templates"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
