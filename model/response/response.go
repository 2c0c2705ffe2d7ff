package response

// ResponseModel is the common JSON envelope returned by controllers.
type ResponseModel struct {
	RetCode string      `json:"retCode"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
