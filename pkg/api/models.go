package api

// RecommendRequest holds the arguments of the recommend-fuel tool.
type RecommendRequest struct {
	GasolinePrice float64  `json:"gasoline_price"`
	EthanolPrice  float64  `json:"ethanol_price"`
	GasPrice      *float64 `json:"gas_price,omitempty"`
	OutputMode    string   `json:"output_mode,omitempty"`
}

// VolumeRequest holds the arguments of the compare-volume-savings tool.
type VolumeRequest struct {
	GasolinePrice float64  `json:"gasoline_price"`
	EthanolPrice  float64  `json:"ethanol_price"`
	Liters        float64  `json:"liters"`
	GasPrice      *float64 `json:"gas_price,omitempty"`
}

// TripRequest holds the arguments of the compare-trip-cost tool.
type TripRequest struct {
	Distance            float64  `json:"distance"`
	GasolineConsumption float64  `json:"gasoline_consumption"`
	GasolinePrice       float64  `json:"gasoline_price"`
	EthanolPrice        float64  `json:"ethanol_price"`
	GasPrice            *float64 `json:"gas_price,omitempty"`
}

// ToolResult is the text produced by a tool call.
type ToolResult struct {
	Tool           string `json:"tool"`
	Text           string `json:"text"`
	Recommendation string `json:"recommendation,omitempty"`
}

// HealthStatus is returned by the health endpoint.
type HealthStatus struct {
	Status  string   `json:"status"`
	Version string   `json:"version"`
	Tools   []string `json:"tools"`
}

// ToolInfo describes a tool and its parameters.
type ToolInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Params      []ParamInfo `json:"params"`
}

// ParamInfo describes one tool parameter.
type ParamInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	Default     string   `json:"default,omitempty"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
