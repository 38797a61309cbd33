package profile

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"bakehouse/db"
	"bakehouse/models"
	"bakehouse/rdx"
	"bakehouse/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const profileCacheTTL = 10 * time.Minute

func cacheKey(userID string) string {
	return "profile:" + userID
}

// GetProfileData serves the caller's profile. The user document is the
// single source of truth; Redis only holds a read-through copy that is
// dropped whenever the profile changes.
func GetProfileData(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if cached, err := rdx.RdxGet(cacheKey(userID)); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Println("GetProfileData FindOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := models.ProfileResponse{
		UserID:   user.UserID,
		Username: user.Username,
		FullName: user.FullName,
		Email:    user.Email,
		Phone:    user.Phone,
		Address:  user.Address,
		Gender:   user.Gender,
		DOB:      user.DOB,
	}

	if data, err := json.Marshal(resp); err == nil {
		if err := rdx.SetWithExpiry(cacheKey(userID), string(data), profileCacheTTL); err != nil {
			log.Println("GetProfileData cache set error:", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// EditProfile updates the caller's contact details and invalidates the
// cached profile so the next read goes back to MongoDB.
func EditProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		Gender   string `json:"gender"`
		DOB      string `json:"dob"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	update := bson.M{}
	if input.FullName != "" {
		update["fullName"] = input.FullName
	}
	if input.Email != "" {
		update["email"] = input.Email
	}
	if input.Phone != "" {
		update["phone"] = input.Phone
	}
	if input.Address != "" {
		update["address"] = input.Address
	}
	if input.Gender != "" {
		update["gender"] = input.Gender
	}
	if input.DOB != "" {
		update["dob"] = input.DOB
	}
	if len(update) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	res, err := db.UserCollection.UpdateOne(ctx, bson.M{"userid": userID}, bson.M{"$set": update})
	if err != nil {
		log.Println("EditProfile UpdateOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	if err := rdx.RdxDel(cacheKey(userID)); err != nil {
		log.Println("EditProfile cache invalidation error:", err)
	}

	utils.SendResponse(w, http.StatusOK, nil, "Profile updated", nil)
}
