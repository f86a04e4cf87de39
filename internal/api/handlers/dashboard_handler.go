// internal/api/handlers/dashboard_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"dashboard-service/internal/api/responses"
	"dashboard-service/internal/core/sheets"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles productivity dashboard API requests.
type DashboardHandler struct {
	service sheets.Service
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service sheets.Service) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// parseWindow lê os parâmetros opcionais start/end (DD/MM/YYYY) da query.
func parseWindow(c *gin.Context) (sheets.Window, error) {
	var window sheets.Window

	if raw := c.Query("start"); raw != "" {
		start, ok := sheets.ParseSheetDate(raw)
		if !ok {
			return window, fmt.Errorf("data inicial inválida: %q (esperado DD/MM/AAAA)", raw)
		}
		window.Start = &start
	}
	if raw := c.Query("end"); raw != "" {
		end, ok := sheets.ParseSheetDate(raw)
		if !ok {
			return window, fmt.Errorf("data final inválida: %q (esperado DD/MM/AAAA)", raw)
		}
		window.End = &end
	}
	return window, nil
}

// HandleProductivity aggregates the published sheet over the requested period.
func (h *DashboardHandler) HandleProductivity(c *gin.Context) {
	window, err := parseWindow(c)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Período inválido", err.Error())
		return
	}

	data, err := h.service.Productivity(c.Request.Context(), window)
	if err != nil {
		responses.NoData(c, err.Error())
		return
	}

	responses.Success(c, data, "Produtividade agregada com sucesso")
}

// HandleProductivityUpload runs the same aggregation over an uploaded
// workbook export (.csv, .xlsx or .xls) instead of the live sheet.
func (h *DashboardHandler) HandleProductivityUpload(c *gin.Context) {
	window, err := parseWindow(c)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Período inválido", err.Error())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Arquivo de planilha não encontrado ou inválido")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Não foi possível abrir o arquivo enviado")
		return
	}
	defer file.Close()

	grid, err := sheets.LoadUploadedGrid(file, fileHeader.Filename)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Não foi possível ler o arquivo enviado", err.Error())
		return
	}

	data, err := h.service.ProductivityFromGrid(grid, window)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Planilha sem dados agregáveis", err.Error())
		return
	}

	responses.Success(c, data, "Produtividade agregada a partir do arquivo enviado")
}

// HandleReports lists the daily activity reports for the requested period.
func (h *DashboardHandler) HandleReports(c *gin.Context) {
	window, err := parseWindow(c)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Período inválido", err.Error())
		return
	}

	reports, err := h.service.Reports(c.Request.Context(), window)
	if err != nil {
		responses.NoData(c, err.Error())
		return
	}

	responses.Success(c, reports, "Relatórios listados com sucesso")
}

// HandleVehicleKm returns the latest recorded odometer reading of a vehicle.
func (h *DashboardHandler) HandleVehicleKm(c *gin.Context) {
	vehicleID := c.Param("id")

	km, found, err := h.service.LatestVehicleKm(c.Request.Context(), vehicleID)
	if err != nil {
		responses.NoData(c, err.Error())
		return
	}
	if !found {
		responses.Error(c, http.StatusNotFound, fmt.Sprintf("Nenhuma quilometragem encontrada para a viatura %q", vehicleID))
		return
	}

	responses.Success(c, gin.H{"vehicle": vehicleID, "km": km}, "Quilometragem localizada")
}
