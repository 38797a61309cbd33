package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"
	"time"

	"bakehouse/db"
	"bakehouse/models"
	"bakehouse/mq"
	"bakehouse/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Orders carry no delivery tracking; history reports this fixed label.
const deliveredStatus = "Delivered"

// SubmitRequest is the checkout payload for POST /api/submit.
type SubmitRequest struct {
	Address        models.Address        `json:"address"`
	PaymentMethod  string                `json:"paymentMethod"`
	PaymentDetails models.PaymentDetails `json:"paymentDetails"`
}

// PlaceOrder materializes the user's cart into an immutable order. The
// order insert and the cart delete run in one transaction so a failed
// checkout never leaves a stale cart or a half-written order.
func PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("PlaceOrder decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order payload")
		return
	}

	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Println("PlaceOrder user lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to place order. Please try again.")
		return
	}

	var userCart models.Cart
	err := db.CartsCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&userCart)
	if errors.Is(err, mongo.ErrNoDocuments) || (err == nil && len(userCart.Items) == 0) {
		utils.RespondWithError(w, http.StatusBadRequest, "Cart is empty")
		return
	}
	if err != nil {
		log.Println("PlaceOrder FindOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to place order. Please try again.")
		return
	}

	lines, total := Project(userCart.Items)

	order := models.Order{
		OrderID:        newOrderID(),
		UserID:         userID,
		Items:          lines,
		Address:        req.Address,
		PaymentMethod:  req.PaymentMethod,
		PaymentDetails: req.PaymentDetails,
		TotalAmount:    total,
		Status:         "placed",
		OrderDate:      time.Now(),
	}

	session, err := db.Client.StartSession()
	if err != nil {
		log.Println("PlaceOrder StartSession error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to place order. Please try again.")
		return
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		if _, err := db.OrdersCollection.InsertOne(sc, order); err != nil {
			return nil, err
		}
		if _, err := db.CartsCollection.DeleteOne(sc, bson.M{"userId": userID}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		log.Println("PlaceOrder transaction error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to place order. Please try again.")
		return
	}

	go mq.Emit("order-placed", models.Event{
		EntityID:  order.OrderID,
		UserID:    userID,
		CreatedAt: order.OrderDate,
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Order placed successfully!",
		"orderId": order.OrderID,
	})
}

// ListOrders returns the user's order history, newest first.
func ListOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized. Please log in.")
		return
	}

	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Println("ListOrders user lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})
	cursor, err := db.OrdersCollection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		log.Println("ListOrders Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	defer cursor.Close(ctx)

	var userOrders []models.Order
	if err := cursor.All(ctx, &userOrders); err != nil {
		log.Println("ListOrders cursor.All error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, SummarizeAll(userOrders))
}

// newOrderID returns an order identifier like ORD4815162342. The
// random suffix keeps IDs unique across orders placed in the same
// instant.
func newOrderID() string {
	return "ORD" + utils.GenerateRandomDigitString(10)
}

// SummarizeAll reshapes a user's orders for the history view, newest
// first regardless of input order.
func SummarizeAll(userOrders []models.Order) []models.OrderSummary {
	sorted := make([]models.Order, len(userOrders))
	copy(sorted, userOrders)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].OrderDate.After(sorted[j].OrderDate)
	})

	summaries := make([]models.OrderSummary, 0, len(sorted))
	for _, o := range sorted {
		summaries = append(summaries, Summarize(o))
	}
	return summaries
}

// Summarize reshapes a persisted order for the history view: money as
// plain numbers, fixed status label.
func Summarize(o models.Order) models.OrderSummary {
	items := make([]models.SummaryLine, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, models.SummaryLine{
			Name:           it.Name,
			Quantity:       it.Quantity,
			Price:          it.Price.InexactFloat64(),
			ImageURL:       it.ImageURL,
			Description:    it.Description,
			SelectedOption: it.SelectedOption,
		})
	}
	return models.OrderSummary{
		OrderID:     o.OrderID,
		OrderDate:   o.OrderDate,
		TotalAmount: o.TotalAmount.InexactFloat64(),
		Status:      deliveredStatus,
		Items:       items,
	}
}
