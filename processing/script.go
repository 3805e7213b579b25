package processing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// ScriptResponse represents the JSON response from OpenAI
type ScriptResponse struct {
	Script string `json:"script" jsonschema_description:"The narration script, with blank lines between scenes"`
}

// GenerateSchema generates a JSON schema for structured outputs
func GenerateSchema[T any]() interface{} {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return schema
}

// scriptResponseSchema is the cached schema
var scriptResponseSchema = GenerateSchema[ScriptResponse]()

// GenerateScript calls OpenAI to draft a narration script for a topic.
// The draft keeps scenes separated by blank lines so the segmenter can
// pick them up directly.
func GenerateScript(ctx context.Context, apiKey, topic, tone string) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not configured")
	}
	if tone == "" {
		tone = "informative and engaging"
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	// Build the prompt
	prompt := fmt.Sprintf(`You are writing a narration script for a slideshow-style video.

Topic: %s
Tone: %s

Write the script as 3 to 6 short paragraphs of 2-4 sentences each.
Each paragraph becomes one scene with its own image, so keep every
paragraph visually concrete. Separate paragraphs with a blank line.
Do not include scene numbers, headings, or stage directions.

Respond in JSON format with this structure:
{
  "script": "your script here"
}`, topic, tone)

	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "video_script",
		Description: openai.String("A narration script for a slideshow video"),
		Schema:      scriptResponseSchema,
		Strict:      openai.Bool(true),
	}

	chatCompletion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModelGPT4oMini,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: schemaParam,
			},
		},
	})

	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(chatCompletion.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	rawResponse := chatCompletion.Choices[0].Message.Content
	if rawResponse == "" {
		return "", fmt.Errorf("OpenAI returned empty response. Finish reason: %s", chatCompletion.Choices[0].FinishReason)
	}

	// Parse the JSON response
	var scriptResp ScriptResponse
	if err := json.Unmarshal([]byte(rawResponse), &scriptResp); err != nil {
		return "", fmt.Errorf("failed to parse OpenAI JSON response: %w", err)
	}

	script := strings.TrimSpace(scriptResp.Script)
	if script == "" {
		return "", fmt.Errorf("OpenAI returned empty script")
	}

	return script, nil
}
