package simulation

import (
	"math"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"ia-service/internal/domain/entity"
)

// Unicode letters, numbers and underscore.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

var positiveWords = lexicon(
	"bom", "ótimo", "otimo", "excelente", "gostei", "adorei",
	"satisfeito", "fantástico", "positivo", "feliz", "maravilhoso",
)

var negativeWords = lexicon(
	"ruim", "péssimo", "pessimo", "detestei", "ódio", "odio",
	"insatisfeito", "horrível", "horrivel", "negativo", "triste",
)

func lexicon(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[norm.NFC.String(w)] = struct{}{}
	}
	return m
}

// ClassifySentiment counts lexicon hits in text. Text is NFC-normalized
// before lower-casing so decomposed accents still match.
func ClassifySentiment(text string) entity.SentimentResult {
	var pos, neg int
	for _, w := range wordPattern.FindAllString(strings.ToLower(norm.NFC.String(text)), -1) {
		if _, ok := positiveWords[w]; ok {
			pos++
		}
		if _, ok := negativeWords[w]; ok {
			neg++
		}
	}

	var score float64
	if hits := pos + neg; hits > 0 {
		score = float64(pos-neg) / float64(hits)
	}

	// thresholds apply to the unrounded score
	label := entity.LabelNeutral
	switch {
	case score > 0.3:
		label = entity.LabelPositive
	case score < -0.3:
		label = entity.LabelNegative
	}

	return entity.SentimentResult{
		Model:      entity.ModelSentiment,
		Text:       text,
		PosCount:   pos,
		NegCount:   neg,
		Score:      Round3(score),
		Label:      label,
		Confidence: Round3(math.Min(0.99, 0.5+float64(0.1*float64(pos+neg)))),
	}
}
