// Package domain defines the core types and interfaces of the API.
package domain

// AskRequest is the JSON body of POST /ask.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResult is the success payload of POST /ask.
type AskResult struct {
	Answer string `json:"answer"`
}

// UploadResult is the success payload of POST /upload-pdf.
type UploadResult struct {
	Status string `json:"status"`
}

// HealthStatus is the payload of GET /.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
