package export

import (
	"fmt"
	"regexp"
	"time"

	"github.com/autoquote/backend/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Sheet and label constants match the spreadsheet layout buyers already
// use downstream, so they stay in Portuguese.
const (
	priceMapSheet = "Mapa de Preços"
	summarySheet  = "Resumo Financeiro"
	orderSheet    = "Pedido"

	winnerYes = "SIM"
	winnerNo  = "NÃO"
	noValue   = "N/A"
)

// BuildWorkbook renders the full quote map plus the financial summary into
// a two-sheet workbook.
func BuildWorkbook(items []domain.QuoteItem, summary domain.Summary) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", priceMapSheet); err != nil {
		return nil, err
	}

	if err := writePriceMap(f, items); err != nil {
		return nil, err
	}
	if err := writeSummary(f, summary); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// writePriceMap fills the full quote map sheet, one row per item with the
// winner flag first.
func writePriceMap(f *excelize.File, items []domain.QuoteItem) error {
	headers := []interface{}{"GANHADOR", "PRODUTO", "MARCA", "FORNECEDOR", "PREÇO UNITÁRIO", "DATA EXTRAÇÃO"}
	if err := f.SetSheetRow(priceMapSheet, "A1", &headers); err != nil {
		return err
	}

	date := time.Now().Format("02/01/2006")
	for i, item := range items {
		winner := winnerNo
		if item.Selected {
			winner = winnerYes
		}
		var price interface{} = noValue
		if item.HasPrice() {
			price = item.Price()
		}

		row := []interface{}{
			winner,
			orDefault(item.ProductName, noValue),
			orDefault(item.Brand, noValue),
			orDefault(item.SupplierName, "Desconhecido"),
			price,
			date,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(priceMapSheet, cell, &row); err != nil {
			return err
		}
	}

	widths := []float64{12, 45, 15, 30, 18, 15}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(priceMapSheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

// writeSummary fills the per-supplier rollup sheet with the grand total of
// the selected items at the bottom.
func writeSummary(f *excelize.File, summary domain.Summary) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"RESUMO DE COMPRA"},
		{"Data da Geração:", time.Now().Format("02/01/2006")},
		{},
		{"FORNECEDOR", "QTD ITENS", "TOTAL FORNECEDOR"},
	}
	for _, rollup := range summary.Suppliers {
		rows = append(rows, []interface{}{rollup.Supplier, rollup.Items, rollup.Total})
	}
	rows = append(rows, []interface{}{}, []interface{}{"TOTAL GERAL DO PEDIDO", "", summary.SelectedTotal})

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &rows[i]); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 35); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "B", "B", 15); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "C", "C", 20)
}

// BuildSupplierOrder renders a purchase order workbook for one supplier.
func BuildSupplierOrder(supplier string, items []domain.QuoteItem) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", orderSheet); err != nil {
		return nil, err
	}

	headers := []interface{}{"DESCRIÇÃO DO PRODUTO", "MARCA", "PREÇO UNIT. (R$)", "QUANTIDADE", "TOTAL (R$)"}
	if err := f.SetSheetRow(orderSheet, "A1", &headers); err != nil {
		return nil, err
	}

	total := 0.0
	row := 2
	for _, item := range items {
		var price interface{} = noValue
		if item.HasPrice() {
			price = item.Price()
			total += item.Price()
		}
		values := []interface{}{
			orDefault(item.ProductName, noValue),
			orDefault(item.Brand, "Original/N/A"),
			price,
			1,
			price,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(orderSheet, cell, &values); err != nil {
			return nil, err
		}
		row++
	}

	footer := []interface{}{"", "", "", "TOTAL DO PEDIDO:", total}
	cell, err := excelize.CoordinatesToCellName(1, row+1)
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(orderSheet, cell, &footer); err != nil {
		return nil, err
	}

	widths := []float64{50, 20, 15, 12, 15}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(orderSheet, col, col, w); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Filename builds a timestamped download name for the full workbook.
func Filename() string {
	return fmt.Sprintf("Mapa_Completo_AutoQuote_%s.xlsx", time.Now().Format("2006-01-02T15-04"))
}

// SupplierFilename builds the download name for one supplier's order,
// stripping characters that break filesystems.
func SupplierFilename(supplier string) string {
	safe := unsafeFilenameRegex.ReplaceAllString(supplier, "_")
	if len(safe) > 25 {
		safe = safe[:25]
	}
	return fmt.Sprintf("Pedido_%s_%s.xlsx", safe, time.Now().Format("02-01-2006"))
}

var unsafeFilenameRegex = regexp.MustCompile(`[\\/:*?"<>|]`)

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
