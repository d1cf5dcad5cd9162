package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/Renison-Gohel/food-orderly/entity"
	"github.com/Renison-Gohel/food-orderly/utils"
)

// BillService renders a paid order as a printable PDF bill.
type BillService struct {
	Orders *OrderService
	Title  string
}

func NewBillService(orders *OrderService, title string) *BillService {
	return &BillService{Orders: orders, Title: title}
}

// BillFilename is the download name: bill-<first 8 chars of the order id>.pdf
func BillFilename(o *entity.Order) string {
	return fmt.Sprintf("bill-%s.pdf", o.ShortID())
}

// Render produces the bill PDF for a paid order. Unpaid orders have no bill.
func (s *BillService) Render(orderID string) ([]byte, string, error) {
	o, err := s.Orders.Get(orderID)
	if err != nil {
		return nil, "", err
	}
	if o.Status != entity.StatusPaid {
		return nil, "", validationf("bill is only available for paid orders")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, s.Title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Order #%s", o.ShortID()), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", o.CreatedAt.Format("02 Jan 2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Customer Details:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Name: "+o.Customer.DisplayLabel(), "", 1, "L", false, 0, "")
	if o.Customer.Phone != "" {
		pdf.CellFormat(0, 6, "Phone: "+o.Customer.Phone, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Itemized table
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(80, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 8, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Subtotal", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, it := range o.OrderItems {
		pdf.CellFormat(80, 8, it.MenuItem.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", it.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, utils.FormatMoney(it.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, utils.FormatMoney(it.Subtotal()), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(140, 10, "Total Amount:", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 10, utils.FormatMoney(o.TotalAmount), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// QR code of the full order id, for till-side lookup.
	if png, err := qrcode.Encode(o.ID, qrcode.Medium, 128); err == nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("order-qr", opts, bytes.NewReader(png))
		pdf.ImageOptions("order-qr", 20, pdf.GetY(), 28, 28, false, opts, 0, "")
		pdf.Ln(30)
	}

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, "Thank you for your business!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), BillFilename(o), nil
}
