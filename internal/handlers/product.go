package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"artiflora_back_end/internal/models"
)

// 🟢 Créer un produit (admin)
func (h *Handler) CreateProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	id, err := h.Products.CreateProduct(ctx, p)
	if err != nil {
		log.Println("❌ Erreur insertion produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur insertion produit"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"inserted_id": id})
}

// Lecture publique, sans pagination ni filtre.
func (h *Handler) ListProducts(c *gin.Context) {
	ctx, cancel := opCtx(c)
	defer cancel()

	products, err := h.Products.ListProducts(ctx)
	if err != nil {
		log.Println("❌ Erreur listing produits:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération produits"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	ctx, cancel := opCtx(c)
	defer cancel()

	product, err := h.Products.GetProduct(ctx, c.Param("id"))
	if err != nil {
		log.Println("❌ Erreur lecture produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération produit"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// 🟠 Remplacement complet du document (admin). Zéro modifié — document
// absent ou identique — répond 404.
func (h *Handler) UpdateProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	modified, err := h.Products.UpdateProduct(ctx, c.Param("id"), p)
	if err != nil {
		log.Println("❌ Erreur mise à jour produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour produit"})
		return
	}
	if modified == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found or no changes made"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

// 🔴 Suppression (admin)
func (h *Handler) DeleteProduct(c *gin.Context) {
	ctx, cancel := opCtx(c)
	defer cancel()

	deleted, err := h.Products.DeleteProduct(ctx, c.Param("id"))
	if err != nil {
		log.Println("❌ Erreur suppression produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression produit"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
