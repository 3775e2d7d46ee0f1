package handlers

import (
	"net/http"

	"lumiere/services/address"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AddressHandler struct {
	Lookup address.Lookup
}

func NewAddressHandler(lookup address.Lookup) *AddressHandler {
	return &AddressHandler{Lookup: lookup}
}

// LookupPostalCodeHandler handles GET /api/address/:postalCode. Best effort:
// an unknown code is 404, an upstream failure is 502, neither is fatal.
func (h *AddressHandler) LookupPostalCodeHandler(c *gin.Context) {
	addr, err := h.Lookup.Resolve(c.Param("postalCode"))
	if err != nil {
		if _, ok := err.(address.NotFoundError); ok {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Warn("Postal lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Address lookup unavailable"})
		return
	}
	c.JSON(http.StatusOK, addr)
}
