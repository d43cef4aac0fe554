package generate

import (
	"fmt"

	"ai-app-builder-backend/internal/models"
)

// SystemPrompt instructs the model to emit strictly a JSON object with a
// files array. The wording is fixed; changing it changes what the
// normalizer can expect.
const SystemPrompt = `You are a code generator. Generate a minimal full-stack app scaffold based on the user's request. Output strictly a JSON object with a 'files' array. Each item: { path: string, content: string }. Include at least: index.html, styles.css, app.js. Do not include explanations.`

// UserMessage renders the canonical user message for a generation request.
func UserMessage(req models.GenerateRequest) string {
	return fmt.Sprintf(
		"App type: %s\nTemplate: %s\nPrompt: %s\nConstraints: Keep it minimal but functional. Vanilla JS only for the generated app layer. Use Tailwind CDN if needed.",
		req.AppType, req.Template, req.Prompt,
	)
}
