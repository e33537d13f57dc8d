package response

// WriteResult is the best-effort envelope returned by dataset overwrites.
// Push clients fire and forget, so nothing beyond success/error is carried.
type WriteResult struct {
	Status string `json:"status"`
}

func WriteOK() WriteResult {
	return WriteResult{Status: "success"}
}
