package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"bakehouse/catalog"
	"bakehouse/db"
	"bakehouse/models"
	"bakehouse/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Handler struct {
	Catalog *catalog.Catalog
}

func NewHandler(c *catalog.Catalog) *Handler {
	return &Handler{Catalog: c}
}

// AddToCart merges one item into the user's cart, creating the cart on
// first use. The unit price stored on a new line is always the catalog
// price, never the one the client sent.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("AddToCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	// Must be logged in
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Println("AddToCart user lookup error:", err)
		http.Error(w, "Failed to add to cart", http.StatusInternalServerError)
		return
	}

	if req.Name == "" {
		http.Error(w, "Missing product name", http.StatusBadRequest)
		return
	}

	unitPrice, ok := h.Catalog.Price(req.Name)
	if !ok {
		http.Error(w, "Unknown product", http.StatusBadRequest)
		return
	}

	var userCart models.Cart
	err := db.CartsCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&userCart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		userCart = models.Cart{UserID: userID, Items: []models.CartLine{}}
	} else if err != nil {
		log.Println("AddToCart FindOne error:", err)
		http.Error(w, "Failed to load cart", http.StatusInternalServerError)
		return
	}

	Accumulate(&userCart, req, unitPrice)
	userCart.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	if _, err := db.CartsCollection.ReplaceOne(ctx, bson.M{"userId": userID}, userCart, opts); err != nil {
		log.Println("AddToCart ReplaceOne error:", err)
		http.Error(w, "Failed to add to cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"message": "Added to cart",
		"cart":    userCart,
	})
}

// GetCart returns the user's current cart, empty if none exists yet.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var userCart models.Cart
	err := db.CartsCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&userCart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		userCart = models.Cart{UserID: userID, Items: []models.CartLine{}}
	} else if err != nil {
		log.Println("GetCart FindOne error:", err)
		http.Error(w, "Could not retrieve cart", http.StatusInternalServerError)
		return
	}

	if userCart.Items == nil {
		userCart.Items = []models.CartLine{}
	}

	utils.RespondWithJSON(w, http.StatusOK, userCart)
}
