package provider

import "encoding/json"

// huggingFaceRequest is the inference API payload.
type huggingFaceRequest struct {
	Inputs string `json:"inputs"`
}

type huggingFaceCandidate struct {
	Label *string  `json:"label"`
	Score *float64 `json:"score"`
}

func buildHuggingFaceRequest(text string) any {
	return huggingFaceRequest{Inputs: text}
}

// normalizeHuggingFace accepts the three shapes the inference API is seen
// to return for a single input: a bare {label,score} object, a candidate
// list, or a list of candidate lists. The top candidate is taken.
func normalizeHuggingFace(raw json.RawMessage) (*Result, error) {
	candidate, err := topHuggingFaceCandidate(raw)
	if err != nil {
		return nil, err
	}
	if candidate.Label == nil || candidate.Score == nil {
		return nil, malformed("huggingface candidate missing label or score")
	}
	if *candidate.Label == "" {
		return nil, malformed("huggingface label is empty")
	}
	if *candidate.Score < 0 || *candidate.Score > 1 {
		return nil, malformed("huggingface score %v outside [0,1]", *candidate.Score)
	}
	return &Result{
		API:         HuggingFace,
		HuggingFace: &LabelScore{Label: *candidate.Label, Score: *candidate.Score},
	}, nil
}

func topHuggingFaceCandidate(raw json.RawMessage) (*huggingFaceCandidate, error) {
	var single huggingFaceCandidate
	if err := json.Unmarshal(raw, &single); err == nil {
		return &single, nil
	}

	var list []huggingFaceCandidate
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return nil, malformed("huggingface candidate list is empty")
		}
		return &list[0], nil
	}

	var nested [][]huggingFaceCandidate
	if err := json.Unmarshal(raw, &nested); err == nil {
		if len(nested) == 0 || len(nested[0]) == 0 {
			return nil, malformed("huggingface candidate list is empty")
		}
		return &nested[0][0], nil
	}

	return nil, malformed("huggingface response is neither an object nor a candidate list")
}
