package catalog

import (
	"log"
	"net/http"

	"bakehouse/middleware"
	"bakehouse/utils"

	"github.com/julienschmidt/httprouter"
)

const productImageDir = "./static/productpic"

type Handler struct {
	Catalog *Catalog
}

func NewHandler(c *Catalog) *Handler {
	return &Handler{Catalog: c}
}

type productEntry struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ListProducts returns every product with its canonical price.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	entries := make([]productEntry, 0, h.Catalog.Len())
	for _, name := range h.Catalog.Products() {
		price, _ := h.Catalog.Price(name)
		entries = append(entries, productEntry{Name: name, Price: price.InexactFloat64()})
	}
	utils.RespondWithJSON(w, http.StatusOK, entries)
}

// UploadProductImage stores a product photo and its thumbnail.
// Catalog images are shared storefront content, so only admins may
// replace them.
func (h *Handler) UploadProductImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil || !utils.Contains(claims.Role, "admin") {
		http.Error(w, "Admin access required", http.StatusForbidden)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	if _, ok := h.Catalog.Price(name); !ok {
		http.Error(w, "Unknown product", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Image file missing", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return
	}

	fileName, thumbName, err := utils.SaveImageWithThumb(file, header, productImageDir, 300)
	if err != nil {
		log.Println("UploadProductImage save error:", err)
		http.Error(w, "Unable to save image", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"imageUrl": "/static/productpic/" + fileName,
		"thumbUrl": "/static/productpic/thumb/" + thumbName,
	})
}
