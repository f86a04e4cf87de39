// package domain/models.go
package domain

// Metric is one formatted dashboard counter with its year-over-year trend.
type Metric struct {
	Label      string `json:"label"`
	Value      string `json:"value"`
	Icon       string `json:"icon"`
	CustomIcon string `json:"customIcon,omitempty"`
	Trend      int    `json:"trend"`
}

// BoletimCount holds the occurrence count of one report category in the
// selected period, with the display color used by the charts.
type BoletimCount struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// TimelinePoint is one month bucket of the volume timeline, labeled "MMM/YY".
type TimelinePoint struct {
	Month string `json:"month"`
	Value int    `json:"value"`
}

// Summary agrupa os contadores gerais do período selecionado.
// As chaves JSON seguem o contrato já consumido pelo front-end.
type Summary struct {
	Prisoes          string         `json:"prisões"`
	Mandados         string         `json:"mandados"`
	Autos            string         `json:"autos"`
	Abordagens       string         `json:"abordagens"`
	AbordagensVeic   string         `json:"abordagensVeic"`
	PessoasDetidas   string         `json:"pessoasDetidas"`
	Acidentes        string         `json:"acidentes"`
	ARVC             string         `json:"arvc"`
	Retencoes        string         `json:"retencoes"`
	RecusaIGP        string         `json:"recusaIgp"`
	MultaAdm         string         `json:"multaAdm"`
	MoedaEstrangeira string         `json:"moedaEstrangeira"`
	Trends           map[string]int `json:"trends,omitempty"`
}

// SheetData is the full aggregation result for one period, ready for the
// presentation layer.
type SheetData struct {
	Drugs    []Metric        `json:"drugs"`
	Seizures []Metric        `json:"seizures"`
	Boletins []BoletimCount  `json:"boletins"`
	Summary  Summary         `json:"summary"`
	Timeline []TimelinePoint `json:"timeline"`
}

// ReportStatus descreve a situação de um relatório diário.
type ReportStatus string

// StatusConcluido é o único estado possível: a planilha só recebe
// lançamentos de turnos já encerrados.
const StatusConcluido ReportStatus = "Concluído"

// DailyReport is one data row of the sheet projected as a daily activity
// report entry.
type DailyReport struct {
	ID            string       `json:"id"`
	Timestamp     string       `json:"timestamp"`
	Team          string       `json:"team"`
	VTR           string       `json:"vtr"`
	KM            string       `json:"km"`
	TotalDrugs    float64      `json:"totalDrugs"`
	TotalSeizures float64      `json:"totalSeizures"`
	Status        ReportStatus `json:"status"`
}
