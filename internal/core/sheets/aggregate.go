package sheets

import (
	"math"
	"sort"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"dashboard-service/internal/domain"
)

// monthLabels são as abreviações pt-BR usadas nos rótulos "MMM/YY".
var monthLabels = [12]string{"JAN", "FEV", "MAR", "ABR", "MAI", "JUN", "JUL", "AGO", "SET", "OUT", "NOV", "DEZ"}

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// sumColumn aplica a normalização numérica célula a célula e acumula o
// total de uma coluna sobre o subconjunto de linhas.
func sumColumn(rows [][]string, col int) float64 {
	var total float64
	for _, row := range rows {
		total += ParseSheetNumber(cellAt(row, col))
	}
	return total
}

// calcTrend devolve a variação percentual inteira entre o período atual e o
// anterior. Sair de zero para algum valor conta como +100%, não como
// infinito; zero para zero é 0%. Empates de meio por cento arredondam para
// cima (-0.5 vira 0, não -1), preservando os percentuais históricos.
func calcTrend(current, previous float64) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Floor((current-previous)/previous*100 + 0.5))
}

// formatValue renders a summed metric for display: totals of a thousand or
// more get pt-BR thousands grouping ("1.500"), smaller totals print as
// plain digits with no forced decimals.
func formatValue(v float64) string {
	if v >= 1000 {
		return ptBR.Sprint(number.Decimal(v))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// metricValue soma a mesma coluna nos dois períodos e produz o valor
// formatado com a tendência ano contra ano.
type metricValue struct {
	Value string
	Trend int
}

func metricWithTrend(currentRows, priorRows [][]string, col int) metricValue {
	current := sumColumn(currentRows, col)
	prior := sumColumn(priorRows, col)
	return metricValue{
		Value: formatValue(current),
		Trend: calcTrend(current, prior),
	}
}

// timelineBucket acumula o volume composto de um mês de calendário.
type timelineBucket struct {
	year  int
	month int // 0-based, posição no calendário
	total float64
}

// buildTimeline agrupa as linhas por "MMM/YY" da data da linha e acumula o
// volume composto (soma das colunas de contagem de boletins). O resultado é
// ordenado por ano e posição do mês no calendário; ordenar pelo rótulo
// colocaria JAN/24 antes de DEZ/23.
func buildTimeline(rows [][]string, cols columnMap, volumeKeys []string) []domain.TimelinePoint {
	buckets := make(map[string]*timelineBucket)

	for _, row := range rows {
		date, ok := ParseSheetDate(cellAt(row, cols[ColTimestamp]))
		if !ok {
			continue
		}

		monthIdx := int(date.Month()) - 1
		key := monthLabels[monthIdx] + "/" + twoDigitYear(date.Year())

		var volume float64
		for _, k := range volumeKeys {
			volume += ParseSheetNumber(cellAt(row, cols[k]))
		}

		bucket, exists := buckets[key]
		if !exists {
			bucket = &timelineBucket{year: date.Year(), month: monthIdx}
			buckets[key] = bucket
		}
		bucket.total += volume
	}

	ordered := make([]*timelineBucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].year != ordered[j].year {
			return ordered[i].year < ordered[j].year
		}
		return ordered[i].month < ordered[j].month
	})

	timeline := make([]domain.TimelinePoint, 0, len(ordered))
	for _, b := range ordered {
		timeline = append(timeline, domain.TimelinePoint{
			Month: monthLabels[b.month] + "/" + twoDigitYear(b.year),
			Value: int(math.Round(b.total)),
		})
	}
	return timeline
}

func twoDigitYear(year int) string {
	yy := year % 100
	if yy < 10 {
		return "0" + strconv.Itoa(yy)
	}
	return strconv.Itoa(yy)
}
