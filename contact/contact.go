package contact

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"bakehouse/db"
	"bakehouse/models"
	"bakehouse/mq"
	"bakehouse/utils"

	"github.com/julienschmidt/httprouter"
)

// SubmitContact persists a contact-form message.
func SubmitContact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var form models.Contact
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Println("SubmitContact decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if form.Name == "" || form.Email == "" || form.Message == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{
			"success": false,
			"message": "Missing required fields.",
		})
		return
	}
	form.CreatedAt = time.Now()

	if _, err := db.ContactCollection.InsertOne(ctx, form); err != nil {
		log.Println("SubmitContact InsertOne error:", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{
			"success": false,
			"message": "Internal server error.",
		})
		return
	}

	go mq.Emit("contact-submitted", models.Event{
		EntityID:  form.Email,
		CreatedAt: form.CreatedAt,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Contact form submitted successfully.",
	})
}
