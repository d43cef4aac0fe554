package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is validated identically to registration.
type LoginRequest = RegisterRequest

type GenerateRequest struct {
	Prompt   string `json:"prompt" binding:"required,min=5"`
	AppType  string `json:"appType" binding:"required"`
	Template string `json:"template" binding:"required"`
}

type ProjectRequest struct {
	Name  string      `json:"name" binding:"required"`
	Files FilesBundle `json:"files" binding:"required,dive"`
}

type PreviewRequest struct {
	Files FilesBundle `json:"files" binding:"required"`
}

type ExportRequest struct {
	Name  string      `json:"name"`
	Files FilesBundle `json:"files" binding:"required,dive"`
}
