package api

// errorEnvelope is the JSON shape of a non-2xx response body:
// {"error": {"status": ..., "type": ..., "message": ..., "code"?, "param"?}}.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Status  int    `json:"status"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Param   string `json:"param"`
}
