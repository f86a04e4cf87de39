package sheets

import (
	"strings"

	"github.com/schollz/closestmatch"
	"go.uber.org/zap"
)

// Semantic field keys resolved against the sheet header. The header wording
// and column order of the published sheet are not contractually fixed, so
// every key carries the substring we expect to find and the historical
// position to fall back to when it is absent.
const (
	ColTimestamp     = "TIMESTAMP"
	ColPA            = "PA"
	ColTC            = "TC"
	ColCOP           = "COP"
	ColBO            = "BO"
	ColAutos         = "AUTOS"
	ColARVC          = "ARVC"
	ColRetencoes     = "RETENCOES"
	ColRecusaIGP     = "RECUSA_IGP"
	ColVeicAbordados = "VEIC_ABORDADOS"
	ColPessAbordadas = "PESS_ABORDADAS"
	ColMandados      = "MANDADOS"
	ColPessDetidas   = "PESS_DETIDAS"
	ColMaconha       = "MACONHA"
	ColHaxixe        = "HAXIXE"
	ColSkank         = "SKANK"
	ColCocaina       = "COCAINA"
	ColEcstasy       = "ECSTASY"
	ColLSD           = "LSD"
	ColMDMA          = "MDMA"
	ColCrack         = "CRACK"
	ColOutrasDrogas  = "OUTRAS_DROGAS"
	ColArmas         = "ARMAS"
	ColMunicoes      = "MUNICOES"
	ColVeicRecup     = "VEIC_RECUP"
	ColDinheiro      = "DINHEIRO"
	ColMoedaEstrang  = "MOEDA_ESTRANG"
	ColMercIlegais   = "MERC_ILEGAIS"
	ColCigarros      = "CIGARROS"
	ColMultaAdm      = "MULTA_ADM"
)

// fieldSpec declara como uma chave semântica encontra sua coluna: busca por
// substring (sem diferenciar maiúsculas) no cabeçalho e, na ausência, o
// índice posicional histórico da planilha.
type fieldSpec struct {
	key       string
	substring string
	fallback  int
}

// fieldSpecs é a tabela completa de campos da planilha de produtividade.
// Os índices de fallback refletem o layout conhecido da aba publicada.
var fieldSpecs = []fieldSpec{
	{ColPA, "PA", 8},
	{ColTC, "TC", 9},
	{ColCOP, "COP", 10},
	{ColBO, "BO E ACIDENTES", 11},
	{ColAutos, "AUTOS DE INFRAÇÕES", 12},
	{ColARVC, "ARVC", 13},
	{ColRetencoes, "RETENÇÕES DE CLA", 14},
	{ColRecusaIGP, "RECUSA IGP", 15},
	{ColVeicAbordados, "VEÍCULOS ABORDADOS", 16},
	{ColPessAbordadas, "PESSOAS ABORDADOS", 17},
	{ColMandados, "CUMPRIMENTOS DE MANDADOS", 18},
	{ColPessDetidas, "PESSOAS DETIDAS", 19},
	{ColMaconha, "MACONHA", 20},
	{ColHaxixe, "HAXIXE", 21},
	{ColSkank, "SKANK", 22},
	{ColCocaina, "COCAÍNA", 23},
	{ColEcstasy, "ECSTASY", 24},
	{ColLSD, "LSD", 25},
	{ColMDMA, "MDMA", 26},
	{ColCrack, "CRACK", 27},
	{ColOutrasDrogas, "OUTRAS DROGAS", 28},
	{ColArmas, "ARMAS", 30},
	{ColMunicoes, "MUNIÇÕES", 31},
	{ColVeicRecup, "VEÍCULOS RECUPERADOS", 32},
	{ColDinheiro, "DINHEIRO - R$", 33},
	{ColMoedaEstrang, "MOEDA ESTRANGEIRA", 34},
	{ColMercIlegais, "MERCADORIAS ILEGAIS", 36},
	{ColCigarros, "CIGARROS", 37},
	{ColMultaAdm, "MULTA ADMINISTRATIVA", 39},
}

// columnMap é o resultado imutável da resolução de colunas de uma grade.
// O carimbo de data ocupa sempre a coluna 0.
type columnMap map[string]int

// resolveColumns builds the column map for one fetched grid. Each field
// resolves independently: the first header cell containing the expected
// substring wins, and two fields may legitimately land on the same column.
// Missing substrings fall back to the positional index and are logged with
// the closest-looking header cell as a hint, so silent layout drift leaves
// at least a trace.
func resolveColumns(header []string, logger *zap.Logger) columnMap {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToUpper(strings.TrimSpace(h))
	}

	cols := columnMap{ColTimestamp: 0}
	var cm *closestmatch.ClosestMatch

	for _, spec := range fieldSpecs {
		idx := findColumn(normalized, spec.substring)
		if idx == -1 {
			idx = spec.fallback
			if logger != nil {
				if cm == nil && len(normalized) > 0 {
					cm = closestmatch.New(normalized, []int{2, 3})
				}
				suggestion := ""
				if cm != nil {
					suggestion = cm.Closest(spec.substring)
				}
				logger.Warn("coluna não encontrada no cabeçalho, usando índice posicional",
					zap.String("campo", spec.key),
					zap.String("esperado", spec.substring),
					zap.Int("fallback", spec.fallback),
					zap.String("mais_proximo", suggestion),
				)
			}
		}
		cols[spec.key] = idx
	}

	return cols
}

func findColumn(normalizedHeader []string, substring string) int {
	return findColumnAny(normalizedHeader, substring)
}

// findColumnAny varre o cabeçalho uma única vez e devolve a primeira célula
// que contenha qualquer uma das substrings. Uma célula anterior com a
// variante curta ganha de uma posterior com a variante longa.
func findColumnAny(normalizedHeader []string, substrings ...string) int {
	for i, h := range normalizedHeader {
		for _, s := range substrings {
			if strings.Contains(h, strings.ToUpper(s)) {
				return i
			}
		}
	}
	return -1
}
