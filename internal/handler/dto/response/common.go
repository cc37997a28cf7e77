package response

// Envelope wraps successful list/detail payloads: `{"status":"success",...}`.
type Envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

func Success(data any) Envelope {
	return Envelope{Status: "success", Data: data}
}
