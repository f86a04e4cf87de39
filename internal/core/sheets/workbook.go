package sheets

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// LoadUploadedGrid converte um export de planilha enviado pelo usuário
// (.csv, .xlsx ou .xls) na mesma grade de células que a exportação CSV
// publicada produz, para que a agregação rode idêntica nos dois caminhos.
func LoadUploadedGrid(file io.Reader, filename string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler arquivo CSV: %w", err)
		}
		return ParseCSV(string(data)), nil
	case ".xlsx", ".xls":
		return loadWorkbookGrid(file)
	default:
		return nil, fmt.Errorf("formato de arquivo não suportado: %s", filepath.Ext(filename))
	}
}

// loadWorkbookGrid tenta abrir o arquivo como .xlsx e, falhando, como .xls
// legado. Só a primeira aba interessa: a planilha de produtividade tem uma.
func loadWorkbookGrid(file io.Reader) ([][]string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo de planilha: %w", err)
	}

	if f, err := excelize.OpenReader(bytes.NewReader(data)); err == nil {
		defer f.Close()
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("o arquivo não contém planilhas")
		}
		rows, err := f.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linhas da planilha: %w", err)
		}
		return trimGrid(rows), nil
	}

	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unsupported workbook file format")
	}
	if len(workbook.GetSheets()) == 0 {
		return nil, fmt.Errorf("o arquivo .xls não contém planilhas")
	}
	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter planilha do arquivo .xls: %w", err)
	}

	var rows [][]string
	for _, row := range sheet.GetRows() {
		var cells []string
		for _, cell := range row.GetCols() {
			cells = append(cells, cell.GetString())
		}
		rows = append(rows, cells)
	}
	return trimGrid(rows), nil
}

// trimGrid aplica às células de workbook o mesmo trim que o tokenizador CSV
// aplica, mantendo os dois caminhos de ingestão equivalentes.
func trimGrid(rows [][]string) [][]string {
	for _, row := range rows {
		for i, cell := range row {
			row[i] = strings.TrimSpace(cell)
		}
	}
	return rows
}
