package simulation

import (
	"fmt"
	"strings"

	"ia-service/internal/domain/entity"
)

const tagClient = "classificacao_cliente"

// ClientPolicy selects how the credit category is derived.
type ClientPolicy string

const (
	// PolicySeed buckets the seed-derived score. Any identifier is classified.
	PolicySeed ClientPolicy = "seed"
	// PolicyLastDigit buckets the last digit of an 11-digit identifier and
	// rejects anything else.
	PolicyLastDigit ClientPolicy = "last_digit"
)

func ParseClientPolicy(s string) (ClientPolicy, error) {
	switch p := ClientPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", PolicySeed:
		return PolicySeed, nil
	case PolicyLastDigit:
		return PolicyLastDigit, nil
	default:
		return "", fmt.Errorf("unknown client classification policy %q", s)
	}
}

// ClassifyClient classifies raw under the seed policy. Invalid identifiers
// are still classified; ValidCPF flags them.
func ClassifyClient(raw string) entity.ClientClassification {
	c := newClassification(raw)
	c.Category, c.RiskLevel = CategoryForScore(c.Score)
	return c
}

func ClassifyClientWith(policy ClientPolicy, raw string) (entity.ClientClassification, error) {
	if policy != PolicyLastDigit {
		return ClassifyClient(raw), nil
	}
	c := newClassification(raw)
	if len(c.CPFDigits) != 11 {
		return entity.ClientClassification{}, entity.ErrInvalidIdentifier
	}
	c.Category, c.RiskLevel = CategoryForLastDigit(c.CPFDigits[10])
	return c, nil
}

func newClassification(raw string) entity.ClientClassification {
	digits := CleanDigits(raw)
	seed := DeriveSeed(tagClient, digits)
	return entity.ClientClassification{
		Model:      entity.ModelClient,
		CPF:        raw,
		CPFDigits:  digits,
		ValidCPF:   ValidCPF(digits),
		Score:      int(seed % 1000),
		Confidence: Confidence(seed),
	}
}

// CategoryForScore uses inclusive lower bounds 800, 600 and 400.
func CategoryForScore(score int) (category, risk string) {
	switch {
	case score >= 800:
		return "A", "Baixo"
	case score >= 600:
		return "B", "Moderado"
	case score >= 400:
		return "C", "Alto"
	default:
		return "D", "Muito Alto"
	}
}

func CategoryForLastDigit(d byte) (category, risk string) {
	switch d {
	case '0', '1':
		return "D", "Alto"
	case '2', '3', '4':
		return "C", "Moderado"
	case '5', '6', '7':
		return "B", "Baixo"
	default:
		return "A", "Muito Baixo"
	}
}
