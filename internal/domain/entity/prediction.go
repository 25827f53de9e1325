package entity

import "time"

// Model names reported in every simulated result.
const (
	ModelSales     = "predicaoVenda_sim"
	ModelClient    = "classificacaoCliente_sim"
	ModelDemand    = "predicaoDemanda_sim"
	ModelSentiment = "classificacaoSentimento_sim"
)

// Sentiment labels.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// Stamp holds the per-call fields that are excluded from determinism.
type Stamp struct {
	PredictionID string    `json:"prediction_id,omitempty"`
	GeneratedAt  time.Time `json:"generated_at"`
}

type SalePrediction struct {
	Model          string  `json:"model"`
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	PredictedSales int64   `json:"predicted_sales"`
	Confidence     float64 `json:"confidence"`
	Stamp
}

type ClientClassification struct {
	Model      string  `json:"model"`
	CPF        string  `json:"cpf"`        // as received
	CPFDigits  string  `json:"cpf_digits"` // digits only
	ValidCPF   bool    `json:"valid_cpf"`
	Score      int     `json:"score"`
	Category   string  `json:"category"`
	RiskLevel  string  `json:"risk_level"`
	Confidence float64 `json:"confidence"`
	Stamp
}

type DemandForecast struct {
	Model           string  `json:"model"`
	ProductID       string  `json:"product_id"`
	Period          string  `json:"period"`
	Months          int     `json:"months"`
	MonthlyEstimate []int64 `json:"monthly_estimate"`
	TotalEstimate   int64   `json:"total_estimate"`
	Confidence      float64 `json:"confidence"`
	Stamp
}

type SentimentResult struct {
	Model      string  `json:"model"`
	Text       string  `json:"text"`
	PosCount   int     `json:"pos_count"`
	NegCount   int     `json:"neg_count"`
	Score      float64 `json:"score"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Stamp
}

// Caller is the identity established by the auth gate for one request.
type Caller struct {
	Token string
}

// UsageReport lists call counts per endpoint for one caller.
type UsageReport struct {
	Caller    string           `json:"caller"`
	Endpoints map[string]int64 `json:"endpoints"`
}
