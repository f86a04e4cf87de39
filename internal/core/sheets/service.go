package sheets

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"dashboard-service/internal/domain"
)

// Service define a interface do pipeline de ingestão e agregação da planilha
// de produtividade. Cada chamada é uma unidade de trabalho independente:
// busca o CSV, reconstrói todas as estruturas do zero e não guarda estado
// entre chamadas.
type Service interface {
	Productivity(ctx context.Context, window Window) (*domain.SheetData, error)
	ProductivityFromGrid(rows [][]string, window Window) (*domain.SheetData, error)
	Reports(ctx context.Context, window Window) ([]domain.DailyReport, error)
	LatestVehicleKm(ctx context.Context, vehicleID string) (float64, bool, error)
}

type service struct {
	fetcher Fetcher
	logger  *zap.Logger
}

// NewService creates a new sheet ingestion service.
func NewService(fetcher Fetcher, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{fetcher: fetcher, logger: logger}
}

// metricDef liga um rótulo de exibição à chave semântica da coluna somada.
type metricDef struct {
	label      string
	key        string
	icon       string
	customIcon string
}

var drugDefs = []metricDef{
	{label: "Maconha - G", key: ColMaconha, icon: "psychiatry"},
	{label: "Skank - G", key: ColSkank, icon: "spa"},
	{label: "Haxixe - G", key: ColHaxixe, icon: "grain"},
	{label: "Cocaína - G", key: ColCocaina, icon: "science"},
	{label: "LSD - Unid.", key: ColLSD, icon: "mood"},
	{label: "Crack - G", key: ColCrack, icon: "layers"},
	{label: "Ecstasy - Unid.", key: ColEcstasy, icon: "pill"},
}

var seizureDefs = []metricDef{
	{label: "Armas", key: ColArmas, icon: "swords", customIcon: "/armas-icon.png"},
	{label: "Munições", key: ColMunicoes, icon: "target", customIcon: "/municoes-icon.png"},
	{label: "Veículos Recup.", key: ColVeicRecup, icon: "local_shipping"},
	{label: "Dinheiro (R$)", key: ColDinheiro, icon: "payments"},
	{label: "Mercadorias (R$)", key: ColMercIlegais, icon: "inventory_2"},
	{label: "Cigarros (Maços)", key: ColCigarros, icon: "smoking_rooms"},
}

// boletimDefs traz as categorias fixas de boletim com as cores dos gráficos.
var boletimDefs = []struct {
	name  string
	key   string
	color string
}{
	{"PA", ColPA, "#f59e0b"},
	{"TC", ColTC, "#ef4444"},
	{"COP", ColCOP, "#8b5cf6"},
	{"BO", ColBO, "#10b981"},
}

// timelineVolumeKeys compõem a métrica de volume da timeline: a contagem de
// boletins lançados no mês.
var timelineVolumeKeys = []string{ColPA, ColTC, ColCOP, ColBO}

var reportDrugKeys = []string{
	ColMaconha, ColHaxixe, ColSkank, ColCocaina,
	ColEcstasy, ColLSD, ColMDMA, ColCrack, ColOutrasDrogas,
}

var reportSeizureKeys = []string{
	ColArmas, ColMunicoes, ColVeicRecup, ColDinheiro,
	ColMoedaEstrang, ColMercIlegais, ColCigarros, ColMultaAdm,
}

// Productivity busca a exportação CSV publicada e agrega o período pedido.
func (s *service) Productivity(ctx context.Context, window Window) (*domain.SheetData, error) {
	rows, err := s.fetchGrid(ctx)
	if err != nil {
		return nil, err
	}
	return s.ProductivityFromGrid(rows, window)
}

// ProductivityFromGrid roda a mesma agregação sobre uma grade já
// materializada, seja da exportação publicada ou de um arquivo enviado.
func (s *service) ProductivityFromGrid(rows [][]string, window Window) (*domain.SheetData, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("planilha vazia, sem cabeçalho para resolver colunas")
	}

	cols := resolveColumns(rows[0], s.logger)
	dataRows := dataRowsOf(rows)

	currentRows := filterRows(dataRows, cols[ColTimestamp], window)
	priorRows := filterRows(dataRows, cols[ColTimestamp], window.PriorYear())

	metric := func(key string) metricValue {
		return metricWithTrend(currentRows, priorRows, cols[key])
	}

	drugs := make([]domain.Metric, 0, len(drugDefs))
	for _, def := range drugDefs {
		m := metric(def.key)
		drugs = append(drugs, domain.Metric{Label: def.label, Value: m.Value, Icon: def.icon, Trend: m.Trend})
	}

	seizures := make([]domain.Metric, 0, len(seizureDefs))
	for _, def := range seizureDefs {
		m := metric(def.key)
		seizures = append(seizures, domain.Metric{
			Label: def.label, Value: m.Value, Icon: def.icon,
			CustomIcon: def.customIcon, Trend: m.Trend,
		})
	}

	boletins := make([]domain.BoletimCount, 0, len(boletimDefs))
	for _, def := range boletimDefs {
		boletins = append(boletins, domain.BoletimCount{
			Name:  def.name,
			Value: sumColumn(currentRows, cols[def.key]),
			Color: def.color,
		})
	}

	summary := domain.Summary{
		Prisoes:          metric(ColPessDetidas).Value,
		Mandados:         metric(ColMandados).Value,
		Autos:            metric(ColAutos).Value,
		Abordagens:       metric(ColPessAbordadas).Value,
		AbordagensVeic:   metric(ColVeicAbordados).Value,
		PessoasDetidas:   metric(ColPessDetidas).Value,
		Acidentes:        metric(ColBO).Value,
		ARVC:             metric(ColARVC).Value,
		Retencoes:        metric(ColRetencoes).Value,
		RecusaIGP:        metric(ColRecusaIGP).Value,
		MultaAdm:         metric(ColMultaAdm).Value,
		MoedaEstrangeira: metric(ColMoedaEstrang).Value,
		Trends: map[string]int{
			"prisoes":    metric(ColPessDetidas).Trend,
			"abordagens": metric(ColPessAbordadas).Trend,
			"veic":       metric(ColVeicRecup).Trend,
		},
	}

	return &domain.SheetData{
		Drugs:    drugs,
		Seizures: seizures,
		Boletins: boletins,
		Summary:  summary,
		Timeline: buildTimeline(currentRows, cols, timelineVolumeKeys),
	}, nil
}

// Reports projeta cada linha da planilha como um relatório diário com os
// totais de apreensão somados, mais recentes primeiro.
func (s *service) Reports(ctx context.Context, window Window) ([]domain.DailyReport, error) {
	rows, err := s.fetchGrid(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("planilha vazia, sem cabeçalho para resolver colunas")
	}

	cols := resolveColumns(rows[0], s.logger)
	dataRows := dataRowsOf(rows)

	var reports []domain.DailyReport
	for idx, row := range dataRows {
		timestamp := cellAt(row, cols[ColTimestamp])

		// Linhas com data ilegível não são filtráveis por período e entram
		// sempre, como sempre entraram na listagem original.
		if rowDate, ok := ParseSheetDate(timestamp); ok && !window.Contains(rowDate) {
			continue
		}

		var drugsSum float64
		for _, k := range reportDrugKeys {
			drugsSum += ParseSheetNumber(cellAt(row, cols[k]))
		}
		var seizuresSum float64
		for _, k := range reportSeizureKeys {
			seizuresSum += ParseSheetNumber(cellAt(row, cols[k]))
		}

		reports = append(reports, domain.DailyReport{
			ID:            reportID(timestamp, idx),
			Timestamp:     timestamp,
			Team:          cellOrDefault(row, 1, "Equipe TOR"),
			VTR:           cellOrDefault(row, 2, "VTR"),
			KM:            cellOrDefault(row, 3, "0"),
			TotalDrugs:    math.Round(drugsSum*10) / 10,
			TotalSeizures: seizuresSum,
			Status:        domain.StatusConcluido,
		})
	}

	// Mais recentes primeiro.
	for i, j := 0, len(reports)-1; i < j; i, j = i+1, j-1 {
		reports[i], reports[j] = reports[j], reports[i]
	}
	return reports, nil
}

// LatestVehicleKm varre a planilha de baixo para cima atrás do último
// lançamento da viatura pedida e devolve a quilometragem final registrada.
// As colunas de VTR e KM são descobertas pelo cabeçalho, com fallback para
// as posições históricas 2 e 3.
func (s *service) LatestVehicleKm(ctx context.Context, vehicleID string) (float64, bool, error) {
	rows, err := s.fetchGrid(ctx)
	if err != nil {
		return 0, false, err
	}
	if len(rows) < 2 {
		return 0, false, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToUpper(strings.TrimSpace(h))
	}

	vtrCol := findColumnAny(header, "VTR UTILIZADA", "VTR")
	if vtrCol == -1 {
		vtrCol = 2
	}
	kmCol := findColumnAny(header, "KM FINAL", "QUILOMETRAGEM FINAL")
	if kmCol == -1 {
		kmCol = 3
	}

	needle := strings.ToLower(vehicleID)
	for i := len(rows) - 1; i >= 1; i-- {
		row := rows[i]
		if len(row) <= max(vtrCol, kmCol) {
			continue
		}
		if !strings.Contains(strings.ToLower(row[vtrCol]), needle) {
			continue
		}
		if km := ParseSheetNumber(row[kmCol]); km > 0 {
			return km, true, nil
		}
	}
	return 0, false, nil
}

func (s *service) fetchGrid(ctx context.Context) ([][]string, error) {
	csvText, err := s.fetcher.FetchCSV(ctx)
	if err != nil {
		return nil, err
	}
	return ParseCSV(csvText), nil
}

// dataRowsOf descarta o cabeçalho e as linhas vazias ou sem carimbo de data.
func dataRowsOf(rows [][]string) [][]string {
	var dataRows [][]string
	for _, row := range rows[1:] {
		if len(row) > 1 && row[0] != "" {
			dataRows = append(dataRows, row)
		}
	}
	return dataRows
}

func cellOrDefault(row []string, index int, fallback string) string {
	if v := cellAt(row, index); v != "" {
		return v
	}
	return fallback
}

func reportID(timestamp string, idx int) string {
	datePart := strings.SplitN(timestamp, " ", 2)[0]
	return "TOR-" + strings.ReplaceAll(datePart, "/", "") + "-" + strconv.Itoa(idx)
}
