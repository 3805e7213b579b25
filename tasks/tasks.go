package tasks

import "encoding/json"

// ---
// QUEUE DEFINITIONS
// ---
const (
	// QueueVideoRender carries one task per requested render.
	QueueVideoRender = "q_video_render"
)

// ---
// TASK PAYLOADS
// ---
// These are the structs that will be JSON-marshalled and sent to Redis.

// RenderTaskPayload is the payload for QueueVideoRender
type RenderTaskPayload struct {
	RenderID uint `json:"render_id"`
}

// Marshal creates a JSON payload for a task.
func Marshal(payload interface{}) (string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
