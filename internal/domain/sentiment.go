package domain

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "Positive"
	SentimentNeutral  SentimentLabel = "Neutral"
	SentimentNegative SentimentLabel = "Negative"
)

// Valid indica se o rótulo é um dos valores conhecidos
func (s SentimentLabel) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

type SentimentRequest struct {
	Text string `json:"text"`
}

// SentimentResponse traz Error preenchido quando o backend responde 2xx com
// {"error": "..."} em vez do resultado.
type SentimentResponse struct {
	Sentiment  *SentimentLabel `json:"sentiment,omitempty"`
	Confidence *float64        `json:"confidence,omitempty"`
	Error      *string         `json:"error,omitempty"`
}
