package http

// FortuneResponse is the JSON shape returned by GET {base}/api/fortune.
// Failures use the same shape with a fallback message.
type FortuneResponse struct {
	Fortune string `json:"fortune"`
}
