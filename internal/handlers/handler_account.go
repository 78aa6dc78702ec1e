package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/SscSPs/retail_finance_core/internal/dto"
	"github.com/gin-gonic/gin"
)

type accountHandler struct {
	accountService portssvc.ChartOfAccountsSvc
}

func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.ChartOfAccountsSvc) {
	h := &accountHandler{accountService: accountService}
	rg.GET("/accounts", h.listAccounts)
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Description Lists every account ordered by code
// @Tags accounts
// @Produce json
// @Success 200 {array} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /finance/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), actor)
	if err != nil {
		respondWithError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}
