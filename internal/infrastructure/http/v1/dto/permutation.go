package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"nextperm/internal/domain/permutation"
)

// NoAnswer is the message returned when the input has no greater arrangement.
const NoAnswer = "No Answer"

// InputNum is the raw input value. The JSON form accepts a string or a bare
// number; a number is kept as its literal text so no precision is lost.
type InputNum string

// UnmarshalJSON implements json.Unmarshaler.
func (n *InputNum) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = InputNum(s)
	case len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')):
		*n = InputNum(data)
	default:
		return fmt.Errorf("input_num must be a string or a number, got %s", data)
	}
	return nil
}

// NextPermutationRequest is the JSON body of POST /api/v1/next-permutation.
// The field name matches the path parameter of the GET form.
type NextPermutationRequest struct {
	InputNum InputNum `json:"input_num"`
}

// NextPermutationResponse is returned for every successfully processed input.
type NextPermutationResponse struct {
	InputNum    string `json:"inputNum"`
	Found       bool   `json:"found"`
	NextPermNum string `json:"nextPermNum,omitempty"`
	Message     string `json:"message,omitempty"`
}

// FromResult creates NextPermutationResponse from permutation.Result.
func FromResult(r permutation.Result) NextPermutationResponse {
	resp := NextPermutationResponse{
		InputNum: r.Input.String(),
		Found:    r.Found,
	}
	if r.Found {
		resp.NextPermNum = r.Output.String()
	} else {
		resp.Message = NoAnswer
	}
	return resp
}
