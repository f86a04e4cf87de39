package sheets

import (
	"strconv"
	"strings"
	"time"
)

// ParseSheetDate interpreta o carimbo de data/hora que a planilha envia
// ("DD/MM/YYYY HH:MM:SS" ou apenas "DD/MM/YYYY") como uma data de
// calendário. A hora é descartada e o resultado é sempre construído ao
// meio-dia local, para que comparações por dia nunca atravessem a meia-noite
// por efeito de fuso horário.
//
// Entrada vazia, com número errado de segmentos ou com segmento não numérico
// retorna ok=false, nunca erro. Datas estruturalmente inválidas (31/02)
// normalizam por rolagem de calendário, o comportamento nativo de time.Date.
func ParseSheetDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	datePart := strings.SplitN(strings.TrimSpace(raw), " ", 2)[0]
	parts := strings.Split(datePart, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, errD := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	year, errY := strconv.Atoi(parts[2])
	if errD != nil || errM != nil || errY != nil {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.Local), true
}

// Window is a closed date range compared at day granularity. A nil bound
// means unbounded on that side.
type Window struct {
	Start *time.Time
	End   *time.Time
}

// truncateToDay strips the time-of-day component in place.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Contains reporta se a data cai dentro da janela, comparando só o dia.
func (w Window) Contains(t time.Time) bool {
	day := truncateToDay(t)
	if w.Start != nil && day.Before(truncateToDay(*w.Start)) {
		return false
	}
	if w.End != nil && day.After(truncateToDay(*w.End)) {
		return false
	}
	return true
}

// PriorYear devolve a janela espelho do ano anterior: mesmo mês e dia, ano-1.
// O espelho é ancorado no calendário, não em 365 dias corridos; 29/02 rola
// para 01/03 pela normalização de time.Date.
func (w Window) PriorYear() Window {
	var prior Window
	if w.Start != nil {
		t := time.Date(w.Start.Year()-1, w.Start.Month(), w.Start.Day(), 12, 0, 0, 0, w.Start.Location())
		prior.Start = &t
	}
	if w.End != nil {
		t := time.Date(w.End.Year()-1, w.End.Month(), w.End.Day(), 12, 0, 0, 0, w.End.Location())
		prior.End = &t
	}
	return prior
}

// filterRows seleciona as linhas cujo carimbo na coluna de data cai dentro
// da janela. Linhas com data ilegível ficam de fora de qualquer agregação
// limitada por período.
func filterRows(rows [][]string, dateCol int, w Window) [][]string {
	var filtered [][]string
	for _, row := range rows {
		rowDate, ok := ParseSheetDate(cellAt(row, dateCol))
		if !ok {
			continue
		}
		if w.Contains(rowDate) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
