package types

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params" binding:"required"`
}

// QuantityData is the wire form of a propagated quantity
type QuantityData struct {
	Name        string  `json:"name,omitempty"`
	Value       float64 `json:"value"`
	Uncertainty float64 `json:"uncertainty"`
	Text        string  `json:"text"`
}
