package api

import (
	"encoding/json"
)

type ApiResponse struct {
	Data any `json:"data"`
}

func (r ApiResponse) Byte() []byte {
	b, _ := json.Marshal(r)
	return b
}
