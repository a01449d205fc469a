package dto

// UploadAnalysisResponse is the success envelope of the upload endpoint:
// a structured verification report and a separate conversational analysis,
// both localized to the language detected in the document.
type UploadAnalysisResponse struct {
	Verification string `json:"verification"`
	Analysis     string `json:"analysis"`
}

// UploadReplyResponse is returned when an upload contains no readable text.
type UploadReplyResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse is the error envelope of the upload endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
