package sheets

import (
	"testing"

	"go.uber.org/zap"
)

func TestResolveColumnsBySubstring(t *testing.T) {
	header := []string{
		"Carimbo de data/hora", "Equipe", "VTR utilizada", "KM final",
		"pa", "tc", "cop", "BO e Acidentes", "Maconha (g)", "Cocaína (g)",
	}
	cols := resolveColumns(header, zap.NewNop())

	if cols[ColTimestamp] != 0 {
		t.Fatalf("timestamp column = %d, want 0", cols[ColTimestamp])
	}
	if cols[ColPA] != 4 {
		t.Fatalf("PA column = %d, want 4", cols[ColPA])
	}
	if cols[ColBO] != 7 {
		t.Fatalf("BO column = %d, want 7", cols[ColBO])
	}
	if cols[ColMaconha] != 8 {
		t.Fatalf("MACONHA column = %d, want 8", cols[ColMaconha])
	}
	if cols[ColCocaina] != 9 {
		t.Fatalf("COCAÍNA column = %d, want 9 (case-insensitive accent match)", cols[ColCocaina])
	}
}

func TestResolveColumnsFallback(t *testing.T) {
	header := []string{"Carimbo de data/hora", "Equipe"}
	cols := resolveColumns(header, zap.NewNop())

	// Nenhum campo presente: todos caem nos índices posicionais históricos.
	if cols[ColMaconha] != 20 {
		t.Fatalf("MACONHA fallback = %d, want 20", cols[ColMaconha])
	}
	if cols[ColDinheiro] != 33 {
		t.Fatalf("DINHEIRO fallback = %d, want 33", cols[ColDinheiro])
	}
	if cols[ColMultaAdm] != 39 {
		t.Fatalf("MULTA_ADM fallback = %d, want 39", cols[ColMultaAdm])
	}
}

func TestResolveColumnsFirstMatchWins(t *testing.T) {
	header := []string{"Data", "CRACK", "CRACK (g)"}
	cols := resolveColumns(header, zap.NewNop())
	if cols[ColCrack] != 1 {
		t.Fatalf("CRACK column = %d, want first match 1", cols[ColCrack])
	}
}

func TestResolveColumnsSharedColumn(t *testing.T) {
	// Campos resolvem de forma independente: duas chaves podem apontar para
	// a mesma coluna sem que isso seja erro.
	header := []string{"Data", "LSD E MDMA"}
	cols := resolveColumns(header, zap.NewNop())
	if cols[ColLSD] != 1 || cols[ColMDMA] != 1 {
		t.Fatalf("LSD=%d MDMA=%d, want both 1", cols[ColLSD], cols[ColMDMA])
	}
}

func TestResolveColumnsNilLogger(t *testing.T) {
	// Resolver sem logger não pode entrar em pânico no caminho de fallback.
	cols := resolveColumns([]string{"Data"}, nil)
	if cols[ColArmas] != 30 {
		t.Fatalf("ARMAS fallback = %d, want 30", cols[ColArmas])
	}
}
