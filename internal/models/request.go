package models

// IngestCompletionsRequest carries a batch of bid completion records
type IngestCompletionsRequest struct {
	Records []BidCompletionRecord `json:"records"`
}

// IngestResponsesRequest carries a batch of vendor response records
type IngestResponsesRequest struct {
	Records []VendorResponseRecord `json:"records"`
}

// IngestStatusesRequest carries a batch of status transition records
type IngestStatusesRequest struct {
	Records []StatusDurationRecord `json:"records"`
}
