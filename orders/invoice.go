package orders

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"bakehouse/db"
	"bakehouse/middleware"
	"bakehouse/models"
	"bakehouse/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PrintInvoice renders an order as a PDF with a pickup QR code.
func PrintInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orderID := ps.ByName("orderid")

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var order models.Order
	err = db.OrdersCollection.FindOne(ctx, bson.M{"orderid": orderID, "userId": userID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("PrintInvoice FindOne error:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// QR payload lets the counter pull the order up on pickup
	qrData := fmt.Sprintf("order=%s&user=%s&ts=%d", order.OrderID, userID, order.OrderDate.Unix())
	qrPNG, err := qrcode.Encode(qrData, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "Bakehouse Order Invoice", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"Order ID: %s\nCustomer: %s\nPlaced: %s\nPayment: %s",
		order.OrderID,
		claims.Username,
		order.OrderDate.Format("02 Jan 2006 15:04"),
		order.PaymentMethod,
	), "", "L", false)
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(90, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Price", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, it := range order.Items {
		pdf.CellFormat(90, 8, fmt.Sprintf("%s (%s)", it.Name, it.SelectedOption), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", it.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, it.Price.String(), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Total: "+order.TotalAmount.String(), "T", 1, "R", false, 0, "")

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 230, 40, 40, false, imgOpts, 0, "")

	pdf.SetY(-25)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 10, "Show the QR code when collecting your order.", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=invoice-"+order.OrderID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
