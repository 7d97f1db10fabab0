package schema

// MethodologyStep describes one stage of the forecasting sequence.
type MethodologyStep struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
	Formula string `json:"formula"`
}

// MethodologyRenderModel is the processed methodology description ready
// for rendering in any output format.
type MethodologyRenderModel struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Steps       []MethodologyStep `json:"steps"`
	Notes       map[string]string `json:"notes"`
}
