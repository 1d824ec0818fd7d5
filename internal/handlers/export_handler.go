package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportStudentsHandler downloads the roster as a spreadsheet for the
// secretary's offline bookkeeping.
func (h *StudentHandler) ExportStudentsHandler(c *gin.Context) {
	students, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar os alunos."})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Alunos"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Nome", "Idade", "Responsável", "CPF do Responsável", "Telefone", "Mensalidade (R$)", "Vencimento", "Início", "Status"}
	for i, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, title)
	}

	for row, s := range students {
		values := []interface{}{
			s.ID, s.Name, s.Age, s.Guardian, s.ResponsibleCPF, s.Phone,
			s.Fee, s.DueDate.Format("02/01/2006"), s.StartDate.Format("02/01/2006"), string(s.Status),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("alunos-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(c.Writer); err != nil {
		slog.Error("Falha ao gerar planilha de alunos", "error", err)
	}
}
