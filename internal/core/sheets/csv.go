package sheets

import "strings"

// ParseCSV converte o texto bruto exportado da planilha em uma grade de
// células. O scanner é um autômato de caracteres ciente de aspas: vírgulas e
// quebras de linha dentro de campos entre aspas não separam células, e aspas
// duplicadas dentro de um campo viram uma aspa literal.
//
// Entrada malformada nunca gera erro. Aspas não fechadas no fim do texto são
// simplesmente finalizadas, e uma última linha sem \n terminal ainda é
// emitida se tiver conteúdo.
func ParseCSV(csvText string) [][]string {
	var (
		rows       [][]string
		currentRow []string
		cell       strings.Builder
	)
	inQuotes := false

	text := strings.ReplaceAll(csvText, "\r\n", "\n")

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				// "" dentro de aspas é uma aspa literal escapada
				cell.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			currentRow = append(currentRow, finishCell(cell.String()))
			cell.Reset()
		case ch == '\n' && !inQuotes:
			currentRow = append(currentRow, finishCell(cell.String()))
			rows = append(rows, currentRow)
			currentRow = nil
			cell.Reset()
		default:
			cell.WriteByte(ch)
		}
	}

	if len(currentRow) > 0 || cell.Len() > 0 {
		currentRow = append(currentRow, finishCell(cell.String()))
		rows = append(rows, currentRow)
	}

	return rows
}

// finishCell trims surrounding whitespace and strips a single pair of
// wrapping quotes left over from fields the scanner copied verbatim.
func finishCell(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}

// cellAt acessa uma coluna tolerando linhas mais curtas que o cabeçalho:
// células ausentes são tratadas como vazias, nunca como índice inválido.
func cellAt(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}
