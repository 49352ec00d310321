package invoice

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// 請求書の1行
type Line struct {
	Product   string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// 請求書に必要な情報。業務ロジックは持たず整形だけを行う
type Document struct {
	Number        int64
	CustomerName  string
	CustomerEmail string
	Address       string
	IssuedAt      time.Time
	Lines         []Line
	Total         decimal.Decimal
}

// 注文番号を5桁ゼロ埋めで返す
func FormatNumber(n int64) string {
	return fmt.Sprintf("%05d", n)
}

// RendererはPDFを公開ディレクトリに書き出す。
type Renderer struct {
	mediaDir string
}

func NewRenderer(mediaDir string) *Renderer {
	return &Renderer{mediaDir: mediaDir}
}

// Renderは固定レイアウトのPDFを書き、公開URLパスを返す。
func (r *Renderer) Render(doc Document) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	//タイトル
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Factura - Pedido #%s", FormatNumber(doc.Number)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	//顧客情報
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Cliente: %s", doc.CustomerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Email: %s", doc.CustomerEmail), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Direccion: %s", doc.Address), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Fecha: %s", doc.IssuedAt.Local().Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	//明細テーブルのヘッダ
	colW := []float64{80, 25, 40, 40}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(211, 211, 211)
	pdf.CellFormat(colW[0], 8, "Producto", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW[1], 8, "Cantidad", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[2], 8, "Precio Unitario", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[3], 8, "Subtotal", "1", 1, "C", true, 0, "")

	//明細行
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range doc.Lines {
		subtotal := line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity))

		pdf.CellFormat(colW[0], 8, line.Product, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[1], 8, fmt.Sprintf("%d", line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[2], 8, formatMoney(line.UnitPrice), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[3], 8, formatMoney(subtotal), "1", 1, "C", false, 0, "")
	}

	//合計行
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(colW[0]+colW[1], 8, "", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW[2], 8, "Total:", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[3], 8, formatMoney(doc.Total), "1", 1, "C", true, 0, "")

	dir := filepath.Join(r.mediaDir, "pedidos")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("pedido_%s.pdf", FormatNumber(doc.Number))
	if err := pdf.OutputFileAndClose(filepath.Join(dir, name)); err != nil {
		return "", err
	}

	return "/static/media/pedidos/" + name, nil
}

// 2桁固定の通貨表記
func formatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
