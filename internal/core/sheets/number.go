package sheets

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	unitMarkerPattern = regexp.MustCompile(`(?i)(R\$|KM|\s)`)
	letterPattern     = regexp.MustCompile(`[a-zA-Z]`)
)

// ParseSheetNumber normaliza uma célula numérica de texto livre em um
// float64. A função é total: entrada vazia, ausente ou ilegível vale 0.
//
// A ordem das etapas é contrato — mudar a heurística muda os totais
// históricos exibidos no painel:
//
//  1. remove marcadores de moeda/unidade (R$, KM, espaços) só para o teste
//     de lixo; se sobrar qualquer letra, a célula é texto (ex.: um nome
//     digitado na coluna errada) e vale 0;
//  2. do valor original, mantém apenas dígitos, ponto, vírgula e menos;
//  3. vírgula presente → convenção brasileira: pontos são milhar, a vírgula
//     é o decimal ("1.500,00" → 1500.00);
//  4. sem vírgula, com ponto e exatamente 3 dígitos após o último ponto →
//     pontos são separadores de milhar ("1.500" → 1500);
//  5. caso contrário, parse direto ("1.5" → 1.5).
func ParseSheetNumber(value string) float64 {
	if value == "" {
		return 0
	}

	textToCheck := unitMarkerPattern.ReplaceAllString(value, "")
	if letterPattern.MatchString(textToCheck) {
		return 0
	}

	clean := stripNonNumeric(value)
	if clean == "" {
		return 0
	}

	if strings.Contains(clean, ",") {
		normalized := strings.ReplaceAll(clean, ".", "")
		normalized = strings.Replace(normalized, ",", ".", 1)
		return parseFloatOrZero(normalized)
	}

	if strings.Contains(clean, ".") {
		parts := strings.Split(clean, ".")
		if len(parts[len(parts)-1]) == 3 {
			return parseFloatOrZero(strings.ReplaceAll(clean, ".", ""))
		}
	}

	return parseFloatOrZero(clean)
}

func stripNonNumeric(value string) string {
	var b strings.Builder
	for _, r := range value {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseFloatOrZero é estrito: restos degenerados dos separadores, como
// "1.2,3" ou "5-", valem 0 inteiro em vez do prefixo numérico. Células
// reais nunca chegam aqui nesse estado; o comportamento está fixado em
// teste para não mudar sem querer.
func parseFloatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
